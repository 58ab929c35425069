// Package camera computes the pan/zoom transform that frames the venue map.
// Focus coordinates are percentages of the logical canvas so the rendering
// surface can scale freely.
package camera

import (
	"ticket-rush-cli/geo"
	"ticket-rush-cli/venue"
)

// Zoom limits. Interactive zoom steps stay within [MinScale, MaxScale];
// section framing additionally never zooms out past FocusMinScale so the
// selected section keeps some surrounding context.
const (
	MinScale      = 1.0
	MaxScale      = 14.0
	FocusMinScale = 5.0

	// FillFraction is how much of the viewport a focused section should
	// occupy; the rest is breathing room.
	FillFraction = 0.55

	// FallbackScale is used when a section's shape cannot be parsed and the
	// camera has to aim at the label anchor instead.
	FallbackScale = 10.0

	// ZoomStep is the increment applied by the zoom controls.
	ZoomStep = 1.0
)

// View is the camera state: a focus point in canvas percent (0-100 on both
// axes) and a zoom multiplier.
type View struct {
	X     float64
	Y     float64
	Scale float64
}

// Overview is the default wide shot of the whole arena.
func Overview() View {
	return View{X: 50, Y: 50, Scale: 1}
}

// FocusFor frames the given section: zoom so the section fills roughly
// FillFraction of the viewport, centered on its bounding box (not its
// centroid, so trapezoids frame the same as rectangles). Degenerate shapes
// fall back to the label anchor at FallbackScale.
func FocusFor(s venue.Section) View {
	polygon := s.Polygon()
	if len(polygon) < 3 {
		return labelFallback(s)
	}
	box, ok := geo.Bounds(polygon)
	if !ok || box.Width <= 0 || box.Height <= 0 {
		return labelFallback(s)
	}

	scaleX := venue.CanvasWidth * FillFraction / box.Width
	scaleY := venue.CanvasHeight * FillFraction / box.Height
	scale := clamp(min(scaleX, scaleY), FocusMinScale, MaxScale)

	return View{
		X:     box.CenterX / venue.CanvasWidth * 100,
		Y:     box.CenterY / venue.CanvasHeight * 100,
		Scale: scale,
	}
}

// ApplyPan shifts the focus by a pixel drag delta. The window moves against
// the drag direction, scaled down by the current zoom, and the focus stays
// inside the canvas on both axes.
func ApplyPan(v View, dxPixels, dyPixels, viewportWidth, viewportHeight float64) View {
	if viewportWidth <= 0 || viewportHeight <= 0 || v.Scale <= 0 {
		return v
	}
	v.X = clamp(v.X-dxPixels/viewportWidth*100/v.Scale, 0, 100)
	v.Y = clamp(v.Y-dyPixels/viewportHeight*100/v.Scale, 0, 100)
	return v
}

// ZoomBy adjusts the scale by delta, clamped to [minScale, maxScale]. The
// focus point does not move.
func ZoomBy(v View, delta, minScale, maxScale float64) View {
	v.Scale = clamp(v.Scale+delta, minScale, maxScale)
	return v
}

// FocusPoint returns the focus in canvas coordinates.
func (v View) FocusPoint() geo.Point {
	return geo.Point{
		X: v.X / 100 * venue.CanvasWidth,
		Y: v.Y / 100 * venue.CanvasHeight,
	}
}

func labelFallback(s venue.Section) View {
	return View{
		X:     s.LabelX / venue.CanvasWidth * 100,
		Y:     s.LabelY / venue.CanvasHeight * 100,
		Scale: FallbackScale,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
