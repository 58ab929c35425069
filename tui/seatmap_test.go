package tui

import (
	"testing"

	"ticket-rush-cli/camera"
	"ticket-rush-cli/geo"
	"ticket-rush-cli/seatgen"
	"ticket-rush-cli/sim"
	"ticket-rush-cli/venue"
)

func newTestSeatMap() seatMap {
	sm := newSeatMap(1221)
	sm.setAvailability(sim.Availability{})
	return sm
}

func mustSection(t *testing.T, id string) venue.Section {
	t.Helper()
	section, ok := venue.FindByID(id)
	if !ok {
		t.Fatalf("expected section %s to exist", id)
	}
	return section
}

func TestSeatMap_SelectSectionFocusesCamera(t *testing.T) {
	sm := newTestSeatMap()
	section := mustSection(t, "W101")

	ev := sm.selectSection(section)
	if !ev.sectionChanged || ev.sectionID != "W101" {
		t.Fatalf("expected section change event for W101, got %+v", ev)
	}
	if sm.view != camera.FocusFor(section) {
		t.Fatalf("expected focused view %+v, got %+v", camera.FocusFor(section), sm.view)
	}
	if len(sm.seats) == 0 {
		t.Fatalf("expected seats generated for a fully available section")
	}
}

func TestSeatMap_ToggleSeatEmitsSummary(t *testing.T) {
	sm := newTestSeatMap()
	sm.selectSection(mustSection(t, "W101"))

	var seat seatgen.Seat
	found := false
	for _, s := range sm.seats {
		if s.Status == seatgen.StatusResale {
			seat = s
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one resale seat in a fully available section")
	}

	ev := sm.toggleSeat(seat)
	if ev.summary == nil {
		t.Fatalf("expected a seat summary on select")
	}
	if ev.summary.Section != "W101" || ev.summary.ID != seat.ID {
		t.Fatalf("expected summary for %s in W101, got %+v", seat.ID, ev.summary)
	}
	if ev.summary.Fee != seat.Price*0.2 {
		t.Fatalf("expected 20%% fee, got price %v fee %v", seat.Price, ev.summary.Fee)
	}
	if !sm.selectedSeats[seat.ID] {
		t.Fatalf("expected seat to be marked selected")
	}

	ev = sm.toggleSeat(seat)
	if ev.summary != nil || !ev.seatChanged {
		t.Fatalf("expected deselect event with nil summary, got %+v", ev)
	}
	if sm.selectedSeats[seat.ID] {
		t.Fatalf("expected seat to be deselected")
	}
}

func TestSeatMap_SoldSeatDoesNotToggle(t *testing.T) {
	sm := newTestSeatMap()
	sm.selectSection(mustSection(t, "W101"))

	seat := seatgen.Seat{ID: "W101-seat-0", Status: seatgen.StatusSold, Price: 500}
	ev := sm.toggleSeat(seat)
	if ev.seatChanged || ev.summary != nil {
		t.Fatalf("expected no event for a sold seat, got %+v", ev)
	}
	if len(sm.selectedSeats) != 0 {
		t.Fatalf("expected no selected seats, got %d", len(sm.selectedSeats))
	}
}

func TestSeatMap_SwitchingSectionsClearsSeatSelection(t *testing.T) {
	sm := newTestSeatMap()
	sm.selectSection(mustSection(t, "W101"))

	for _, s := range sm.seats {
		if s.Status == seatgen.StatusResale {
			sm.toggleSeat(s)
			break
		}
	}
	if len(sm.selectedSeats) != 1 {
		t.Fatalf("expected one selected seat, got %d", len(sm.selectedSeats))
	}

	ev := sm.selectSection(mustSection(t, "E121"))
	if !ev.sectionChanged || ev.sectionID != "E121" {
		t.Fatalf("expected section change to E121, got %+v", ev)
	}
	if len(sm.selectedSeats) != 0 {
		t.Fatalf("expected seat selection cleared on section switch, got %d", len(sm.selectedSeats))
	}
	if sm.selected == nil || sm.selected.ID != "E121" {
		t.Fatalf("expected E121 selected")
	}
}

func TestSeatMap_SelectSameSectionResets(t *testing.T) {
	sm := newTestSeatMap()
	section := mustSection(t, "W101")
	sm.selectSection(section)

	ev := sm.selectSection(section)
	if !ev.sectionChanged || ev.sectionID != "" {
		t.Fatalf("expected reset event, got %+v", ev)
	}
	if sm.selected != nil {
		t.Fatalf("expected no section selected after reset")
	}
	if sm.view != camera.Overview() {
		t.Fatalf("expected overview after reset, got %+v", sm.view)
	}
	if sm.seats != nil {
		t.Fatalf("expected no seats after reset")
	}
}

func TestSeatMap_ActivateOnSectionUnderCursor(t *testing.T) {
	sm := newTestSeatMap()

	// W101's label anchor, a point known to sit inside the polygon.
	col, row, ok := sm.cellOf(geo.Point{X: 230, Y: 670})
	if !ok {
		t.Fatalf("expected the anchor to be visible in the overview")
	}
	sm.cursorCol = col
	sm.cursorRow = row

	ev := sm.activate()
	if ev.sectionID != "W101" {
		t.Fatalf("expected W101 selected, got %+v", ev)
	}
}

func TestSeatMap_SoldOutSectionGeneratesOnlySoldSeats(t *testing.T) {
	sm := newSeatMap(1221)
	sm.setAvailability(sim.Availability{"W101": 0})
	sm.selectSection(mustSection(t, "W101"))

	if len(sm.seats) == 0 {
		t.Fatalf("expected seats drawn even when sold out")
	}
	for _, s := range sm.seats {
		if s.Status != seatgen.StatusSold {
			t.Fatalf("expected every seat sold, got %s for %s", s.Status, s.ID)
		}
	}
}

func TestSeatMap_AvailabilitySnapshotRegeneratesSeats(t *testing.T) {
	sm := newTestSeatMap()
	sm.selectSection(mustSection(t, "E121"))

	resaleBefore := 0
	for _, s := range sm.seats {
		if s.Status == seatgen.StatusResale {
			resaleBefore++
		}
	}

	sm.setAvailability(sim.Availability{"E121": 0.3})
	resaleAfter := 0
	for _, s := range sm.seats {
		if s.Status == seatgen.StatusResale {
			resaleAfter++
		}
	}
	if resaleAfter >= resaleBefore {
		t.Fatalf("expected fewer resale seats at 0.3 availability, got %d -> %d", resaleBefore, resaleAfter)
	}
}

func TestSeatMap_ZoomClampedToInteractiveRange(t *testing.T) {
	sm := newTestSeatMap()
	for i := 0; i < 30; i++ {
		sm.zoom(1)
	}
	if sm.view.Scale != camera.MaxScale {
		t.Fatalf("expected scale clamped to %v, got %v", camera.MaxScale, sm.view.Scale)
	}
	for i := 0; i < 60; i++ {
		sm.zoom(-1)
	}
	if sm.view.Scale != camera.MinScale {
		t.Fatalf("expected scale clamped to %v, got %v", camera.MinScale, sm.view.Scale)
	}
}
