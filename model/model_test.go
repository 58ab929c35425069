package model

import (
	"testing"
	"time"
)

func TestHoldExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expiry := HoldExpiry(now)
	if expiry.Sub(now) != HoldMinutes*time.Minute {
		t.Fatalf("expected %d minute hold, got %v", HoldMinutes, expiry.Sub(now))
	}

	if HoldExpired(expiry, now) {
		t.Fatal("hold should not be expired immediately")
	}
	if !HoldExpired(expiry, expiry) {
		t.Fatal("hold should expire exactly at its deadline")
	}
	if HoldExpired(time.Time{}, now) {
		t.Fatal("zero expiry means no hold, never expired")
	}
}

func TestPresaleExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expiry := PresaleExpiry(now)
	if expiry.Sub(now) != PresaleWindowMinutes*time.Minute {
		t.Fatalf("expected %d minute window, got %v", PresaleWindowMinutes, expiry.Sub(now))
	}
	if !PresaleExpired(expiry, expiry.Add(time.Second)) {
		t.Fatal("presale should expire after its deadline")
	}
}

func TestOfferRank_StableAndBounded(t *testing.T) {
	for _, offer := range Offers() {
		rank := OfferRank(offer.ID)
		if rank < 0 || rank >= 1 {
			t.Fatalf("rank for offer %d out of range: %v", offer.ID, rank)
		}
		if rank != OfferRank(offer.ID) {
			t.Fatalf("rank for offer %d not stable", offer.ID)
		}
	}
}

func TestSeatSummarySubtotal(t *testing.T) {
	s := SeatSummary{Price: 100, Fee: 20}
	if s.Subtotal() != 120 {
		t.Fatalf("expected 120, got %v", s.Subtotal())
	}
}
