package model

import "time"

// Cart hold and presale windows. Both are plain wall-clock arithmetic; the
// timers that display them live in the TUI.
const (
	HoldMinutes          = 8
	PresaleWindowMinutes = 20
)

// HoldExpiry returns when a cart hold placed now runs out.
func HoldExpiry(now time.Time) time.Time {
	return now.Add(HoldMinutes * time.Minute)
}

// HoldExpired reports whether a hold has lapsed. A zero expiry means no hold.
func HoldExpired(expiresAt time.Time, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}

// PresaleExpiry returns when a presale unlock granted now closes.
func PresaleExpiry(now time.Time) time.Time {
	return now.Add(PresaleWindowMinutes * time.Minute)
}

// PresaleExpired reports whether the presale window has closed.
func PresaleExpired(expiresAt time.Time, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}
