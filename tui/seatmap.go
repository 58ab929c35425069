package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ticket-rush-cli/camera"
	"ticket-rush-cli/geo"
	"ticket-rush-cli/model"
	"ticket-rush-cli/seatgen"
	"ticket-rush-cli/sim"
	"ticket-rush-cli/venue"
)

// seatMap is the interactive arena map: camera state, cursor, current
// section selection and the generated seats for it. The hosting app feeds it
// availability snapshots and the price ceiling; it emits section/seat
// selection changes back up.
type seatMap struct {
	cols int // viewport width in map cells (each cell renders 2 chars wide)
	rows int

	view      camera.View
	cursorCol int
	cursorRow int

	selected      *venue.Section
	selectedSeats map[string]bool
	seats         []seatgen.Seat

	availability sim.Availability
	maxPrice     float64
}

func newSeatMap(maxPrice float64) seatMap {
	return seatMap{
		cols:          40,
		rows:          20,
		view:          camera.Overview(),
		selectedSeats: map[string]bool{},
		maxPrice:      maxPrice,
	}
}

func (m *seatMap) setViewport(cols, rows int) {
	if cols < 10 {
		cols = 10
	}
	if rows < 6 {
		rows = 6
	}
	m.cols = cols
	m.rows = rows
	m.clampCursor()
}

// worldWindow returns the canvas rectangle currently visible: the canvas
// shrunk by the zoom factor, centered on the focus point.
func (m *seatMap) worldWindow() (minX, minY, width, height float64) {
	width = venue.CanvasWidth / m.view.Scale
	height = venue.CanvasHeight / m.view.Scale
	focus := m.view.FocusPoint()
	return focus.X - width/2, focus.Y - height/2, width, height
}

// worldAt maps a viewport cell to its canvas-space center.
func (m *seatMap) worldAt(col, row int) geo.Point {
	minX, minY, width, height := m.worldWindow()
	return geo.Point{
		X: minX + (float64(col)+0.5)/float64(m.cols)*width,
		Y: minY + (float64(row)+0.5)/float64(m.rows)*height,
	}
}

// cellOf is the inverse of worldAt; ok is false outside the viewport.
func (m *seatMap) cellOf(pt geo.Point) (col, row int, ok bool) {
	minX, minY, width, height := m.worldWindow()
	col = int((pt.X - minX) / width * float64(m.cols))
	row = int((pt.Y - minY) / height * float64(m.rows))
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (m *seatMap) moveCursor(dCol, dRow int) {
	m.cursorCol += dCol
	m.cursorRow += dRow
	m.clampCursor()
}

func (m *seatMap) clampCursor() {
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol >= m.cols {
		m.cursorCol = m.cols - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorRow >= m.rows {
		m.cursorRow = m.rows - 1
	}
}

// pan drags the camera by whole cells. Allowed at any zoom level, including
// the overview.
func (m *seatMap) pan(dCol, dRow int) {
	m.view = camera.ApplyPan(m.view, float64(dCol), float64(dRow), float64(m.cols), float64(m.rows))
}

func (m *seatMap) zoom(delta float64) {
	m.view = camera.ZoomBy(m.view, delta, camera.MinScale, camera.MaxScale)
}

// selectionEvent describes what a cursor activation changed.
type selectionEvent struct {
	sectionChanged bool
	sectionID      string // empty when deselected
	seatChanged    bool
	summary        *model.SeatSummary // nil when a seat was deselected
}

// activate handles the cursor's enter press: toggle the seat under the
// cursor if there is a selectable one, otherwise treat it as a section click.
func (m *seatMap) activate() selectionEvent {
	if m.selected != nil {
		if seat, ok := m.seatAtCursor(); ok {
			return m.toggleSeat(seat)
		}
	}
	pt := m.worldAt(m.cursorCol, m.cursorRow)
	if section, ok := venue.SectionAt(pt); ok {
		return m.selectSection(section)
	}
	return selectionEvent{}
}

// selectSection focuses a section, or resets when it is already the selected
// one. Either way any seat selections from the previous section are gone.
func (m *seatMap) selectSection(section venue.Section) selectionEvent {
	if m.selected != nil && m.selected.ID == section.ID {
		return m.reset()
	}
	s := section
	m.selected = &s
	m.selectedSeats = map[string]bool{}
	m.view = camera.FocusFor(section)
	m.centerCursor()
	m.regenerate()
	return selectionEvent{sectionChanged: true, sectionID: section.ID, seatChanged: true}
}

// reset returns to the overview and drops all selections.
func (m *seatMap) reset() selectionEvent {
	changed := m.selected != nil
	m.selected = nil
	m.selectedSeats = map[string]bool{}
	m.seats = nil
	m.view = camera.Overview()
	m.centerCursor()
	return selectionEvent{sectionChanged: changed, seatChanged: changed}
}

func (m *seatMap) centerCursor() {
	m.cursorCol = m.cols / 2
	m.cursorRow = m.rows / 2
}

// toggleSeat flips one seat's membership in the selection. Only resale seats
// respond.
func (m *seatMap) toggleSeat(seat seatgen.Seat) selectionEvent {
	if seat.Status != seatgen.StatusResale {
		return selectionEvent{}
	}
	if m.selectedSeats[seat.ID] {
		delete(m.selectedSeats, seat.ID)
		return selectionEvent{seatChanged: true}
	}
	m.selectedSeats[seat.ID] = true
	summary := &model.SeatSummary{
		ID:      seat.ID,
		Section: m.selected.ID,
		Row:     seat.Row,
		Number:  seat.Number,
		Price:   seat.Price,
		Fee:     seat.Price * model.FeeRate,
		Type:    "Resale Ticket",
	}
	return selectionEvent{seatChanged: true, summary: summary}
}

// seatAtCursor finds the generated seat nearest the cursor's canvas
// position, within one grid pitch.
func (m *seatMap) seatAtCursor() (seatgen.Seat, bool) {
	pt := m.worldAt(m.cursorCol, m.cursorRow)
	best := -1
	bestDist := math.Inf(1)
	for i, seat := range m.seats {
		dx := seat.X - pt.X
		dy := seat.Y - pt.Y
		d := math.Hypot(dx, dy)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 || bestDist > seatgen.Pitch {
		return seatgen.Seat{}, false
	}
	return m.seats[best], true
}

// setAvailability installs a fresh snapshot and re-derives the seat list.
func (m *seatMap) setAvailability(snapshot sim.Availability) {
	m.availability = snapshot
	m.regenerate()
}

func (m *seatMap) setMaxPrice(maxPrice float64) {
	m.maxPrice = maxPrice
	m.regenerate()
}

// regenerate rebuilds the seat list from the three inputs that matter:
// selected section, availability snapshot, price ceiling.
func (m *seatMap) regenerate() {
	if m.selected == nil {
		m.seats = nil
		return
	}
	m.seats = seatgen.Generate(*m.selected, m.availability, m.maxPrice)
}

// Map cell tokens, two characters each so cells come out roughly square.
const (
	tokenSeatResale   = "[]"
	tokenSeatSold     = "##"
	tokenSeatSelected = "()"
	tokenSection      = "██"
	tokenStage        = "▒▒"
	tokenEmpty        = "  "
)

var (
	sectionLiveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	sectionSoldOutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sectionSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	sectionDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	seatResaleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	seatSoldStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatSelectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	stageStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	cursorStyle          = lipgloss.NewStyle().Reverse(true)
)

type mapCell struct {
	token string
	style lipgloss.Style
}

// render draws the visible canvas window: sections colored by availability,
// the stage in the overview, generated seats when a section is focused, and
// the cursor on top.
func (m *seatMap) render() string {
	grid := make([][]mapCell, m.rows)
	for row := range grid {
		grid[row] = make([]mapCell, m.cols)
		for col := range grid[row] {
			grid[row][col] = m.backgroundCell(col, row)
		}
	}

	for _, seat := range m.seats {
		col, row, ok := m.cellOf(geo.Point{X: seat.X, Y: seat.Y})
		if !ok {
			continue
		}
		grid[row][col] = m.seatCell(seat)
	}

	var b strings.Builder
	for row := range grid {
		for col := range grid[row] {
			cell := grid[row][col]
			if col == m.cursorCol && row == m.cursorRow {
				b.WriteString(cursorStyle.Render(cell.token))
				continue
			}
			b.WriteString(cell.style.Render(cell.token))
		}
		if row < len(grid)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *seatMap) backgroundCell(col, row int) mapCell {
	pt := m.worldAt(col, row)

	section, ok := venue.SectionAt(pt)
	if ok {
		switch {
		case m.selected != nil && m.selected.ID == section.ID:
			return mapCell{token: tokenSection, style: sectionSelectedStyle}
		case m.selected != nil:
			return mapCell{token: tokenSection, style: sectionDimStyle}
		case sim.SoldOut(m.availability, section.ID):
			return mapCell{token: tokenSection, style: sectionSoldOutStyle}
		default:
			return mapCell{token: tokenSection, style: sectionLiveStyle}
		}
	}

	// Stage disc in the middle of the floor, overview only.
	if m.selected == nil && math.Hypot(pt.X-500, pt.Y-450) <= 70 {
		return mapCell{token: tokenStage, style: stageStyle}
	}
	return mapCell{token: tokenEmpty, style: lipgloss.NewStyle()}
}

func (m *seatMap) seatCell(seat seatgen.Seat) mapCell {
	if m.selectedSeats[seat.ID] {
		return mapCell{token: tokenSeatSelected, style: seatSelectedStyle}
	}
	if seat.Status == seatgen.StatusResale {
		return mapCell{token: tokenSeatResale, style: seatResaleStyle}
	}
	return mapCell{token: tokenSeatSold, style: seatSoldStyle}
}

// statusLine describes what sits under the cursor; shown beneath the map.
func (m *seatMap) statusLine() string {
	if m.selected != nil {
		if seat, ok := m.seatAtCursor(); ok {
			return fmt.Sprintf("%s • Row %d Seat %d • CA $%.2f • %s",
				m.selected.Label, seat.Row, seat.Number, seat.Price, seat.Status)
		}
		return fmt.Sprintf("%s • %d seats drawn • enter toggles the seat under the cursor",
			m.selected.Label, len(m.seats))
	}

	pt := m.worldAt(m.cursorCol, m.cursorRow)
	if section, ok := venue.SectionAt(pt); ok {
		availability := sim.Of(m.availability, section.ID)
		if availability <= 0 {
			return fmt.Sprintf("%s • SOLD OUT", section.Label)
		}
		return fmt.Sprintf("%s • %.0f%% available • enter to zoom in", section.Label, availability*100)
	}
	return "Move the cursor over a section and press enter"
}

func (m *seatMap) legend() string {
	if m.selected != nil {
		return "[] resale • ## sold/unavailable • () selected"
	}
	return "blue live • gray sold out • ▒ stage"
}
