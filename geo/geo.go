// Package geo parses the compact path descriptors used by the venue map and
// answers containment and bounds queries over the resulting polygons. All
// coordinates live in the fixed logical canvas space; nothing here converts
// units.
package geo

import (
	"strconv"
	"strings"
)

// Point is a position on the logical canvas.
type Point struct {
	X float64
	Y float64
}

// BoundingBox is the axis-aligned rectangle enclosing a polygon.
type BoundingBox struct {
	MinX    float64
	MaxX    float64
	MinY    float64
	MaxY    float64
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// ParsePath interprets a path descriptor into polygon vertices in traversal
// order. Supported instructions: absolute move "M x y", absolute line
// "L x y", relative horizontal "h dx" and relative vertical "v dy". Any other
// instruction is skipped. The first vertex is not repeated at the end; callers
// treat closure as implicit. Descriptors yielding fewer than 3 vertices
// return nil.
func ParsePath(d string) []Point {
	tokens := tokenizePath(d)
	if len(tokens) == 0 {
		return nil
	}

	var vertices []Point
	var x, y float64
	i := 0
	for i < len(tokens) {
		token := tokens[i]
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			// Stray number with no pending instruction.
			i++
			continue
		}
		i++
		switch token {
		case "M", "L":
			nx, ok1 := numberAt(tokens, i)
			ny, ok2 := numberAt(tokens, i+1)
			if !ok1 || !ok2 {
				return trimDegenerate(vertices)
			}
			x, y = nx, ny
			vertices = append(vertices, Point{X: x, Y: y})
			i += 2
		case "h":
			dx, ok := numberAt(tokens, i)
			if !ok {
				return trimDegenerate(vertices)
			}
			x += dx
			vertices = append(vertices, Point{X: x, Y: y})
			i++
		case "v":
			dy, ok := numberAt(tokens, i)
			if !ok {
				return trimDegenerate(vertices)
			}
			y += dy
			vertices = append(vertices, Point{X: x, Y: y})
			i++
		}
	}
	return trimDegenerate(vertices)
}

// PointInPolygon reports whether pt lies inside the polygon using the
// ray-casting parity test. Horizontal edges are guarded explicitly so the
// division below can never see a zero denominator. Polygons with fewer than 3
// vertices contain nothing.
func PointInPolygon(pt Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := polygon[i]
		vj := polygon[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) && vi.Y != vj.Y {
			crossX := (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if pt.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the axis-aligned bounding box of the polygon. The second
// return value is false when the polygon is empty.
func Bounds(polygon []Point) (BoundingBox, bool) {
	if len(polygon) == 0 {
		return BoundingBox{}, false
	}
	box := BoundingBox{
		MinX: polygon[0].X,
		MaxX: polygon[0].X,
		MinY: polygon[0].Y,
		MaxY: polygon[0].Y,
	}
	for _, p := range polygon[1:] {
		if p.X < box.MinX {
			box.MinX = p.X
		}
		if p.X > box.MaxX {
			box.MaxX = p.X
		}
		if p.Y < box.MinY {
			box.MinY = p.Y
		}
		if p.Y > box.MaxY {
			box.MaxY = p.Y
		}
	}
	box.Width = box.MaxX - box.MinX
	box.Height = box.MaxY - box.MinY
	box.CenterX = (box.MinX + box.MaxX) / 2
	box.CenterY = (box.MinY + box.MaxY) / 2
	return box, true
}

func tokenizePath(d string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range d {
		switch {
		case r == ' ' || r == ',' || r == '\t' || r == '\n':
			flush()
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			flush()
			tokens = append(tokens, string(r))
		case r == '-' || r == '+':
			// Signs start a new number even without whitespace ("h-120").
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func numberAt(tokens []string, i int) (float64, bool) {
	if i >= len(tokens) {
		return 0, false
	}
	v, err := strconv.ParseFloat(tokens[i], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trimDegenerate(vertices []Point) []Point {
	if len(vertices) < 3 {
		return nil
	}
	return vertices
}
