package tui

import (
	"testing"

	"ticket-rush-cli/model"
	"ticket-rush-cli/sim"
)

func TestVisibleOffers_PriceCeiling(t *testing.T) {
	visible := visibleOffers(model.Offers(), sim.Availability{}, 200)
	if len(visible) != 2 {
		t.Fatalf("expected 2 offers under CA $200, got %d", len(visible))
	}
	for _, offer := range visible {
		if offer.Price > 200 {
			t.Fatalf("expected price <= 200, got %v", offer.Price)
		}
	}
}

func TestVisibleOffers_SoldOutSectionHidden(t *testing.T) {
	availability := sim.Availability{"W101": 0}
	for _, offer := range visibleOffers(model.Offers(), availability, model.MaxTicketPrice) {
		if offer.Section == "W101" {
			t.Fatalf("expected W101 offers hidden when the section is sold out")
		}
	}
}

func TestVisibleOffers_RankFadesWithAvailability(t *testing.T) {
	// OfferRank(3) is about 0.33: visible above it, hidden below it.
	low := visibleOffers(model.Offers(), sim.Availability{"N113": 0.1}, model.MaxTicketPrice)
	for _, offer := range low {
		if offer.Section == "N113" {
			t.Fatalf("expected N113 offer faded out at 0.1 availability")
		}
	}

	high := visibleOffers(model.Offers(), sim.Availability{"N113": 0.5}, model.MaxTicketPrice)
	found := false
	for _, offer := range high {
		if offer.Section == "N113" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected N113 offer visible at 0.5 availability")
	}
}

func TestVisibleOffers_SortedByPrice(t *testing.T) {
	visible := visibleOffers(model.Offers(), sim.Availability{}, model.MaxTicketPrice)
	if len(visible) != len(model.Offers()) {
		t.Fatalf("expected all offers visible at full availability, got %d", len(visible))
	}
	for i := 1; i < len(visible); i++ {
		if visible[i].Price < visible[i-1].Price {
			t.Fatalf("expected cheapest first, got %v before %v", visible[i-1].Price, visible[i].Price)
		}
	}
}
