// Package store persists the little state that survives a demo run: user
// preferences as JSON under the user config dir, and the speedrun leaderboard
// in a local sqlite database. Everything here is best effort; a broken disk
// never breaks the show.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const appDir = "ticket-rush-cli"

// Prefs are the remembered filter settings and display name.
type Prefs struct {
	Name     string  `json:"name"`
	MaxPrice float64 `json:"max_price"`
}

// LoadPrefs reads saved preferences. A missing file returns zero prefs and no
// error.
func LoadPrefs() (Prefs, error) {
	path, err := configPath("prefs.json")
	if err != nil {
		return Prefs{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, err
	}
	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Prefs{}, err
	}
	return prefs, nil
}

// SavePrefs writes preferences, creating the config dir as needed.
func SavePrefs(prefs Prefs) error {
	path, err := configPath("prefs.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
