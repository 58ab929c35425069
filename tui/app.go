package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticket-rush-cli/config"
	"ticket-rush-cli/model"
	"ticket-rush-cli/sim"
	"ticket-rush-cli/store"
	"ticket-rush-cli/venue"
)

type appState int

const (
	stateQueue appState = iota
	stateSeats
	stateCheckout
	stateResult
	stateLeaderboard
	stateError
)

type appModel struct {
	cfg   config.Config
	board *store.Leaderboard

	// gen identifies this simulation run. Tick messages carry the gen they
	// were armed under; ticks from an older run are dropped instead of
	// re-armed, so a demo reset cannot stack a second timer loop.
	gen int

	state     appState
	lastState appState
	err       error

	width  int
	height int

	queue  *sim.Queue
	demand *sim.Demand

	seatMap  seatMap
	offers   []model.TicketOffer
	summary  *model.SeatSummary
	maxPrice float64
	name     string

	holdExpiresAt    time.Time
	presaleExpiresAt time.Time
	now              time.Time

	runStart    time.Time
	runDuration time.Duration
	runs        []store.Run

	spinner   spinner.Model
	boardList list.Model
}

type queueTickMsg struct {
	gen int
}

type demandTickMsg struct {
	gen int
}

type holdTickMsg struct {
	gen int
}

type recordedMsg struct {
	err error
}

type boardMsg struct {
	runs []store.Run
	err  error
}

// New builds the page model. A nil leaderboard is fine; runs simply are not
// recorded.
func New(cfg config.Config, board *store.Leaderboard) tea.Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sections := venue.Sections()
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}

	maxPrice := cfg.MaxPrice
	name := cfg.Name
	if prefs, err := store.LoadPrefs(); err == nil {
		if prefs.MaxPrice > 0 {
			maxPrice = prefs.MaxPrice
		}
		if prefs.Name != "" && name == "anonymous" {
			name = prefs.Name
		}
	}

	m := appModel{
		cfg:      cfg,
		board:    board,
		state:    stateQueue,
		queue:    sim.NewQueue(rng),
		demand:   sim.NewDemand(cfg.Demand, rng, ids),
		offers:   model.Offers(),
		maxPrice: maxPrice,
		name:     name,
		now:      time.Now(),
	}

	m.seatMap = newSeatMap(maxPrice)
	m.seatMap.setAvailability(m.demand.Snapshot())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.boardList = newList("Leaderboard")
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(queueTickCmd(m.gen), demandTickCmd(m.gen), holdTickCmd(m.gen), m.spinner.Tick)
}

func queueTickCmd(gen int) tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg { return queueTickMsg{gen: gen} })
}

func demandTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return demandTickMsg{gen: gen} })
}

func holdTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return holdTickMsg{gen: gen} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateQueue {
			return m, cmd
		}
		return m, nil

	case queueTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if m.state != stateQueue {
			return m, nil
		}
		if m.queue.Tick() {
			return m.enterSeats(), nil
		}
		return m, queueTickCmd(m.gen)

	case demandTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.demand.Tick()
		m.seatMap.setAvailability(m.demand.Snapshot())
		return m, demandTickCmd(m.gen)

	case holdTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.now = time.Now()
		if model.HoldExpired(m.holdExpiresAt, m.now) {
			m.dropCart()
			if m.state == stateCheckout {
				m.state = stateSeats
			}
		}
		if model.PresaleExpired(m.presaleExpiresAt, m.now) &&
			(m.state == stateSeats || m.state == stateCheckout) {
			m.err = fmt.Errorf("your presale access window has closed")
			m.lastState = stateSeats
			m.state = stateError
		}
		return m, holdTickCmd(m.gen)

	case recordedMsg:
		// Best effort; a failed write never blocks the result screen.
		return m, nil

	case boardMsg:
		if msg.err != nil {
			return m, nil
		}
		m.runs = msg.runs
		m.boardList.SetItems(buildRunItems(msg.runs))
		return m, nil
	}

	if m.state == stateLeaderboard {
		var cmd tea.Cmd
		m.boardList, cmd = m.boardList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		_ = store.SavePrefs(store.Prefs{Name: m.name, MaxPrice: m.maxPrice})
		return m, tea.Quit
	case "esc":
		return m.goBack(), nil
	}

	switch m.state {
	case stateQueue:
		if msg.String() == "s" {
			return m.enterSeats(), nil
		}

	case stateSeats:
		return m.handleSeatsKey(msg)

	case stateCheckout:
		if msg.Type == tea.KeyEnter {
			return m.confirmCheckout()
		}

	case stateResult:
		switch msg.String() {
		case "r":
			return m.resetDemo()
		case "l":
			m.lastState = stateResult
			m.state = stateLeaderboard
			return m, m.fetchBoardCmd()
		}

	case stateLeaderboard:
		var cmd tea.Cmd
		m.boardList, cmd = m.boardList.Update(msg)
		return m, cmd

	case stateError:
		if msg.String() == "r" {
			return m.resetDemo()
		}
	}
	return m, nil
}

func (m appModel) handleSeatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.seatMap.moveCursor(0, -1)
	case "down":
		m.seatMap.moveCursor(0, 1)
	case "left":
		m.seatMap.moveCursor(-1, 0)
	case "right":
		m.seatMap.moveCursor(1, 0)
	case "h":
		m.seatMap.pan(1, 0)
	case "l":
		m.seatMap.pan(-1, 0)
	case "k":
		m.seatMap.pan(0, 1)
	case "j":
		m.seatMap.pan(0, -1)
	case "+", "=":
		m.seatMap.zoom(1)
	case "-", "_":
		m.seatMap.zoom(-1)
	case "0":
		m.seatMap.reset()
		m.dropCart()
	case "[":
		m.adjustMaxPrice(-50)
	case "]":
		m.adjustMaxPrice(50)
	case "c":
		if m.summary != nil {
			m.state = stateCheckout
		}
	case "b":
		m.lastState = stateSeats
		m.state = stateLeaderboard
		return m, m.fetchBoardCmd()
	case "enter":
		ev := m.seatMap.activate()
		if ev.summary != nil {
			m.summary = ev.summary
			m.holdExpiresAt = model.HoldExpiry(time.Now())
		} else if ev.seatChanged && len(m.seatMap.selectedSeats) == 0 {
			m.dropCart()
		}
	}
	return m, nil
}

func (m *appModel) adjustMaxPrice(delta float64) {
	m.maxPrice += delta
	if m.maxPrice < model.MinTicketPrice {
		m.maxPrice = model.MinTicketPrice
	}
	if m.maxPrice > model.MaxTicketPrice {
		m.maxPrice = model.MaxTicketPrice
	}
	m.seatMap.setMaxPrice(m.maxPrice)
	_ = store.SavePrefs(store.Prefs{Name: m.name, MaxPrice: m.maxPrice})
}

// dropCart clears the held seat everywhere it is tracked.
func (m *appModel) dropCart() {
	m.summary = nil
	m.holdExpiresAt = time.Time{}
	m.seatMap.selectedSeats = map[string]bool{}
}

// enterSeats opens the seat map and starts the speedrun clock and the presale
// window.
func (m appModel) enterSeats() appModel {
	now := time.Now()
	m.state = stateSeats
	m.runStart = now
	m.presaleExpiresAt = model.PresaleExpiry(now)
	return m
}

func (m appModel) confirmCheckout() (tea.Model, tea.Cmd) {
	if m.summary == nil {
		return m, nil
	}
	m.runDuration = time.Since(m.runStart)
	m.holdExpiresAt = time.Time{}
	m.presaleExpiresAt = time.Time{}
	m.state = stateResult
	return m, tea.Batch(m.recordRunCmd(), m.fetchBoardCmd())
}

// resetDemo rebuilds the whole simulation with a fresh random stream, back to
// the queue page. The bumped gen orphans the previous run's timer loops: any
// tick still in flight arrives with the old gen and is dropped, leaving
// exactly the one set of loops Init starts here.
func (m appModel) resetDemo() (tea.Model, tea.Cmd) {
	fresh := New(m.cfg, m.board).(appModel)
	fresh.gen = m.gen + 1
	fresh.width = m.width
	fresh.height = m.height
	fresh.resize()
	return fresh, fresh.Init()
}

func (m appModel) goBack() appModel {
	switch m.state {
	case stateSeats:
		m.seatMap.reset()
		m.dropCart()
	case stateCheckout:
		m.state = stateSeats
	case stateLeaderboard:
		m.state = m.lastState
	case stateError:
		m.state = m.lastState
		m.err = nil
	}
	return m
}

func (m appModel) recordRunCmd() tea.Cmd {
	board := m.board
	name := m.name
	duration := m.runDuration
	return func() tea.Msg {
		if board == nil {
			return recordedMsg{}
		}
		err := board.RecordRun(context.Background(), name, duration, time.Now())
		return recordedMsg{err: err}
	}
}

func (m appModel) fetchBoardCmd() tea.Cmd {
	board := m.board
	return func() tea.Msg {
		if board == nil {
			return boardMsg{}
		}
		runs, err := board.TopRuns(context.Background(), 10)
		return boardMsg{runs: runs, err: err}
	}
}

func (m *appModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	panelWidth := 42
	mapCols := (m.width - panelWidth - 4) / 2
	mapRows := m.height - 9
	m.seatMap.setViewport(mapCols, mapRows)

	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.boardList.SetSize(m.width, h)
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateQueue:
		return header + "\n\n" + m.queueView()
	case stateSeats:
		return header + "\n\n" + m.seatsView()
	case stateCheckout:
		return header + "\n\n" + m.checkoutView()
	case stateResult:
		return header + "\n\n" + m.resultView()
	case stateLeaderboard:
		return header + "\n\n" + m.boardList.View()
	case stateError:
		return header + "\n\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) +
			"\n\n" + hint("Press r to start over or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Ticket Rush")
	sub := []string{fmt.Sprintf("Name: %s", m.name)}
	if m.state == stateSeats || m.state == stateCheckout {
		sub = append(sub, fmt.Sprintf("Max price: CA $%.0f", m.maxPrice))
		if !m.presaleExpiresAt.IsZero() {
			sub = append(sub, fmt.Sprintf("Presale closes in %s", countdown(m.presaleExpiresAt, m.now)))
		}
	}
	if !m.holdExpiresAt.IsZero() && (m.state == stateSeats || m.state == stateCheckout) {
		sub = append(sub, fmt.Sprintf("Hold: %s", countdown(m.holdExpiresAt, m.now)))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit"
	switch m.state {
	case stateQueue:
		hints = "ctrl+c quit • s skip the line"
	case stateSeats:
		hints = "arrows cursor • enter select • h/j/k/l pan • +/- zoom • 0 overview • [/] max price • c checkout • b leaderboard"
	case stateCheckout:
		hints = "enter confirm purchase • esc back to seats • ctrl+c quit"
	case stateResult:
		hints = "r run it again • l leaderboard • ctrl+c quit"
	case stateLeaderboard:
		hints = "esc back • ctrl+c quit"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) queueView() string {
	position := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", m.queue.Position))
	return fmt.Sprintf("%s You are in line\n\n%s people ahead of you\n%s",
		m.spinner.View(),
		position,
		hint(fmt.Sprintf("Estimated wait: %ds • you get %d minutes of presale access once inside • do not refresh, you will lose your spot",
			m.queue.ETASeconds(), model.PresaleWindowMinutes)))
}

func (m appModel) seatsView() string {
	mapColumn := strings.Join([]string{
		m.seatMap.render(),
		"",
		m.seatMap.statusLine(),
		hint(m.seatMap.legend()),
	}, "\n")

	panel := renderTicketPanel(m.offers, m.seatMap.availability, m.maxPrice, m.summary)
	return lipgloss.JoinHorizontal(lipgloss.Top, mapColumn, "  ", panel)
}

func (m appModel) checkoutView() string {
	s := m.summary
	card := summaryStyle.Render(fmt.Sprintf(
		"Sec %s • Row %d • Seat %d\n%s\n\nTicket  CA $%.2f\nFees    CA $%.2f\nTotal   CA $%.2f",
		s.Section, s.Row, s.Number, s.Type, s.Price, s.Fee, s.Subtotal()))

	holdLine := ""
	if !m.holdExpiresAt.IsZero() {
		holdLine = "\n\n" + hint(fmt.Sprintf("Your ticket is held for %s. After that it goes back on sale.",
			countdown(m.holdExpiresAt, m.now)))
	}
	return panelTitleStyle.Render("Checkout") + "\n\n" + card + holdLine
}

func (m appModel) resultView() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Render("You got tickets!"),
		"",
		fmt.Sprintf("Checkout time: %s", formatDuration(m.runDuration)),
	}
	if rank, ok := m.rankOfRun(); ok {
		lines = append(lines, fmt.Sprintf("Leaderboard rank: #%d", rank))
	}
	if m.summary != nil {
		lines = append(lines, "",
			fmt.Sprintf("Sec %s • Row %d • Seat %d • CA $%.2f all in",
				m.summary.Section, m.summary.Row, m.summary.Number, m.summary.Subtotal()))
	}
	return strings.Join(lines, "\n")
}

// rankOfRun finds where this run's duration lands among the fetched top runs.
func (m appModel) rankOfRun() (int, bool) {
	if len(m.runs) == 0 {
		return 0, false
	}
	rank := 1
	for _, run := range m.runs {
		if run.Duration < m.runDuration {
			rank++
		}
	}
	return rank, true
}

type runItem struct {
	rank int
	run  store.Run
}

func (r runItem) Title() string {
	return fmt.Sprintf("#%d  %s", r.rank, r.run.Name)
}

func (r runItem) Description() string {
	return fmt.Sprintf("%s • %s", formatDuration(r.run.Duration), r.run.CompletedAt.Format("2006-01-02 15:04"))
}

func (r runItem) FilterValue() string {
	return r.run.Name
}

func buildRunItems(runs []store.Run) []list.Item {
	items := make([]list.Item, 0, len(runs))
	for i, run := range runs {
		items = append(items, runItem{rank: i + 1, run: run})
	}
	return items
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func countdown(deadline time.Time, now time.Time) string {
	remaining := deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	remaining = remaining.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
}

func formatDuration(d time.Duration) string {
	d = d.Round(10 * time.Millisecond)
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%05.2fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes()))*60)
}
