// Package venue holds the static arena layout: the named sections, their
// shape descriptors, and the logical canvas the whole map is drawn in.
package venue

import "ticket-rush-cli/geo"

// Logical canvas dimensions. Camera math and the rendering surface express
// focus points as percentages of these exact values.
const (
	CanvasWidth  = 1000.0
	CanvasHeight = 850.0
)

// Section is one named, fixed-shape region of the arena. Sections are defined
// once at startup and never mutated.
type Section struct {
	ID     string
	Path   string
	Label  string
	LabelX float64
	LabelY float64
}

// Outline is the arena silhouette drawn behind the sections.
const Outline = "M300 50 L700 50 L900 250 L900 700 L700 820 L300 820 L100 700 L100 250 Z"

var sections = []Section{
	// North bowl
	{ID: "N113", Path: "M472 70 h56 v70 h-56 z", Label: "NORTH 113", LabelX: 500, LabelY: 100},
	{ID: "N112", Path: "M414 70 h56 v70 h-56 z", Label: "NORTH 112", LabelX: 440, LabelY: 100},
	{ID: "N114", Path: "M530 70 h56 v70 h-56 z", Label: "NORTH 114", LabelX: 560, LabelY: 100},
	{ID: "N111", Path: "M355 85 L412 70 L412 140 L370 140 Z", Label: "NORTH 111", LabelX: 380, LabelY: 110},
	{ID: "N110", Path: "M305 115 L353 85 L368 140 L320 160 Z", Label: "NORTH 110", LabelX: 330, LabelY: 140},
	{ID: "N109", Path: "M265 155 L303 116 L318 162 L275 190 Z", Label: "NORTH 109", LabelX: 290, LabelY: 180},
	{ID: "N108", Path: "M225 180 L263 156 L273 192 L235 220 Z", Label: "NORTH 108", LabelX: 250, LabelY: 210},
	{ID: "N115", Path: "M588 70 L645 85 L630 140 L588 140 Z", Label: "NORTH 115", LabelX: 620, LabelY: 110},
	{ID: "N116", Path: "M647 85 L695 115 L680 160 L632 140 Z", Label: "NORTH 116", LabelX: 670, LabelY: 140},
	{ID: "N117", Path: "M697 116 L735 155 L725 190 L682 162 Z", Label: "NORTH 117", LabelX: 710, LabelY: 180},
	{ID: "N118", Path: "M737 156 L775 180 L765 220 L727 192 Z", Label: "NORTH 118", LabelX: 750, LabelY: 210},

	// West grandstand
	{ID: "W107", Path: "M170 250 h120 v60 h-120 z", Label: "WEST 107", LabelX: 230, LabelY: 280},
	{ID: "W106", Path: "M170 315 h120 v60 h-120 z", Label: "WEST 106", LabelX: 230, LabelY: 345},
	{ID: "W105", Path: "M170 380 h120 v60 h-120 z", Label: "WEST 105", LabelX: 230, LabelY: 410},
	{ID: "W104", Path: "M170 445 h120 v60 h-120 z", Label: "WEST 104", LabelX: 230, LabelY: 475},
	{ID: "W103", Path: "M170 510 h120 v60 h-120 z", Label: "WEST 103", LabelX: 230, LabelY: 540},
	{ID: "W102", Path: "M170 575 h120 v60 h-120 z", Label: "WEST 102", LabelX: 230, LabelY: 605},
	{ID: "W101", Path: "M170 640 h120 v60 h-120 z", Label: "WEST 101", LabelX: 230, LabelY: 670},

	// East grandstand
	{ID: "E119", Path: "M710 250 h120 v60 h-120 z", Label: "EAST 119", LabelX: 770, LabelY: 280},
	{ID: "E120", Path: "M710 315 h120 v60 h-120 z", Label: "EAST 120", LabelX: 770, LabelY: 345},
	{ID: "E121", Path: "M710 380 h120 v60 h-120 z", Label: "EAST 121", LabelX: 770, LabelY: 410},
	{ID: "E122", Path: "M710 445 h120 v60 h-120 z", Label: "EAST 122", LabelX: 770, LabelY: 475},
	{ID: "E123", Path: "M710 510 h120 v60 h-120 z", Label: "EAST 123", LabelX: 770, LabelY: 540},
	{ID: "E124", Path: "M710 575 h120 v60 h-120 z", Label: "EAST 124", LabelX: 770, LabelY: 605},
	{ID: "E125", Path: "M710 640 h120 v60 h-120 z", Label: "EAST 125", LabelX: 770, LabelY: 670},

	// South bowl
	{ID: "S130", Path: "M480 720 h40 v90 h-40 z", Label: "SOUTH 130", LabelX: 500, LabelY: 760},
	{ID: "S129", Path: "M438 720 h40 v90 h-40 z", Label: "SOUTH 129", LabelX: 458, LabelY: 760},
	{ID: "S128", Path: "M396 720 h40 v90 h-40 z", Label: "SOUTH 128", LabelX: 415, LabelY: 760},
	{ID: "S131", Path: "M522 720 h40 v90 h-40 z", Label: "SOUTH 131", LabelX: 542, LabelY: 760},
	{ID: "S132", Path: "M564 720 h40 v90 h-40 z", Label: "SOUTH 132", LabelX: 584, LabelY: 760},

	// Wheelchair accessible strips
	{ID: "WC107", Path: "M292 250 h30 v90 h-30 z", Label: "107 WC", LabelX: 307, LabelY: 295},
	{ID: "WC102", Path: "M292 575 h30 v125 h-30 z", Label: "102 WC", LabelX: 307, LabelY: 637},
	{ID: "WC119", Path: "M678 250 h30 v90 h-30 z", Label: "119 WC", LabelX: 693, LabelY: 295},
	{ID: "WC124", Path: "M678 575 h30 v125 h-30 z", Label: "124 WC", LabelX: 693, LabelY: 637},
}

// Sections returns the catalog in its fixed display order.
func Sections() []Section {
	return sections
}

// FindByID returns the section with the given id.
func FindByID(id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Polygon parses the section's shape descriptor. Nil for degenerate shapes.
func (s Section) Polygon() []geo.Point {
	return geo.ParsePath(s.Path)
}

// BoundsOf returns the bounding box of the section's polygon; false when the
// descriptor is degenerate.
func BoundsOf(s Section) (geo.BoundingBox, bool) {
	polygon := s.Polygon()
	if len(polygon) < 3 {
		return geo.BoundingBox{}, false
	}
	return geo.Bounds(polygon)
}

// SectionAt returns the topmost section containing the given canvas point.
func SectionAt(pt geo.Point) (Section, bool) {
	for _, s := range sections {
		if geo.PointInPolygon(pt, s.Polygon()) {
			return s, true
		}
	}
	return Section{}, false
}
