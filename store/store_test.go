package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func TestPrefs_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	prefs, err := LoadPrefs()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if prefs != (Prefs{}) {
		t.Fatalf("expected zero prefs on first load, got %+v", prefs)
	}

	want := Prefs{Name: "speedrunner", MaxPrice: 600}
	if err := SavePrefs(want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	prefs, err = LoadPrefs()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if prefs != want {
		t.Fatalf("expected %+v, got %+v", want, prefs)
	}
}

func TestLeaderboard_RecordAndRank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.db")
	board, err := OpenLeaderboardAt(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer board.Close()

	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	if err := board.RecordRun(ctx, "slow", 90*time.Second, now); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := board.RecordRun(ctx, "fast", 45*time.Second, now); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := board.RecordRun(ctx, "middle", 60*time.Second, now); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	runs, err := board.TopRuns(ctx, 2)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Name != "fast" || runs[1].Name != "middle" {
		t.Fatalf("expected fastest first, got %q then %q", runs[0].Name, runs[1].Name)
	}
	if runs[0].Duration != 45*time.Second {
		t.Fatalf("expected 45s, got %v", runs[0].Duration)
	}
	if !runs[0].CompletedAt.Equal(now) {
		t.Fatalf("expected %v, got %v", now, runs[0].CompletedAt)
	}
}

func TestLeaderboard_EmptyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.db")
	board, err := OpenLeaderboardAt(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer board.Close()

	runs, err := board.TopRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}
