// Package seatgen procedurally places seats inside a section's polygon. The
// whole point of the algorithm is reproducibility: for one (section,
// availability, price ceiling) input the generator must emit byte-identical
// seat lists every time, so scan order, grid pitch and the rank hash are all
// fixed.
package seatgen

import (
	"fmt"
	"math"
	"strings"

	"ticket-rush-cli/geo"
	"ticket-rush-cli/sim"
	"ticket-rush-cli/venue"
)

// Status of a generated seat. Resale seats are the only selectable ones;
// everything else renders as taken.
type Status string

const (
	StatusResale Status = "resale"
	StatusSold   Status = "sold"
)

// Seat is one procedurally placed seat. Ids are stable across regenerations
// of the same inputs but not globally unique.
type Seat struct {
	ID     string
	X      float64
	Y      float64
	Row    int
	Number int
	Price  float64
	Status Status
}

// Grid scan tuning. HalfExtent bounds the scan square around the section
// center, Pitch is the seat spacing, Radius the visual seat radius, and
// ProbePad the extra margin the boundary probes add on top of the radius.
const (
	HalfExtent = 150.0
	Pitch      = 3.5
	Radius     = 1.2
	ProbePad   = 0.8
)

// Generate scans a fixed grid around the section's bounding-box center and
// keeps the points whose seat disc fits fully inside the polygon. Returns nil
// for degenerate shapes. maxPrice <= 0 means no price ceiling.
func Generate(section venue.Section, availability sim.Availability, maxPrice float64) []Seat {
	polygon := section.Polygon()
	if len(polygon) < 3 {
		return nil
	}
	box, ok := geo.Bounds(polygon)
	if !ok {
		return nil
	}

	cx, cy := box.CenterX, box.CenterY
	fraction := sim.Of(availability, section.ID)
	base := basePriceFor(section.ID)
	probe := Radius + ProbePad

	var seats []Seat
	count := 0

	// Fixed scan order: x ascending outer, y ascending inner. Seat ids are
	// counter-derived, so reordering this loop would silently re-key every
	// seat.
	for x := cx - HalfExtent; x <= cx+HalfExtent; x += Pitch {
		for y := cy - HalfExtent; y <= cy+HalfExtent; y += Pitch {
			if !geo.PointInPolygon(geo.Point{X: x, Y: y}, polygon) {
				continue
			}
			if !geo.PointInPolygon(geo.Point{X: x + probe, Y: y}, polygon) ||
				!geo.PointInPolygon(geo.Point{X: x - probe, Y: y}, polygon) ||
				!geo.PointInPolygon(geo.Point{X: x, Y: y + probe}, polygon) ||
				!geo.PointInPolygon(geo.Point{X: x, Y: y - probe}, polygon) {
				continue
			}

			price := base + y/10 + x/20
			rank := seatRank(x*y, count)

			status := StatusResale
			if rank > fraction {
				status = StatusSold
			} else if maxPrice > 0 && price > maxPrice {
				// Priced out of the ceiling: available in principle but
				// rendered unselectable.
				status = StatusSold
			}

			seats = append(seats, Seat{
				ID:     fmt.Sprintf("%s-seat-%d", section.ID, count),
				X:      x,
				Y:      y,
				Row:    int(math.Floor((y - (cy - HalfExtent)) / Pitch)),
				Number: int(math.Floor((x-(cx-HalfExtent))/Pitch))%20 + 1,
				Price:  price,
				Status: status,
			})
			count++
		}
	}
	return seats
}

// BasePriceFor returns the price band minimum for a section id prefix.
func BasePriceFor(sectionID string) float64 {
	return basePriceFor(sectionID)
}

func basePriceFor(sectionID string) float64 {
	switch {
	case strings.HasPrefix(sectionID, "WC"):
		return 400
	case strings.HasPrefix(sectionID, "W"):
		return 500
	case strings.HasPrefix(sectionID, "E"):
		return 450
	default:
		return 350
	}
}

// seatRank derives a deterministic pseudo-random value in [0,1) from the seat
// position product and its scan counter. This is a splitmix-style bit mixer,
// not a real RNG; the only contract is same input, same output.
func seatRank(positionProduct float64, counter int) float64 {
	z := math.Float64bits(positionProduct) + uint64(counter)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
