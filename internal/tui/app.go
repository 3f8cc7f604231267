package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Godevs04/tunesnip/internal/catalog"
	"github.com/Godevs04/tunesnip/internal/config"
	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/engine"
	snperrors "github.com/Godevs04/tunesnip/internal/errors"
	"github.com/Godevs04/tunesnip/internal/gesture"
	"github.com/Godevs04/tunesnip/internal/haptics"
	"github.com/Godevs04/tunesnip/internal/playback"
	"github.com/Godevs04/tunesnip/internal/tui/components"
	"github.com/Godevs04/tunesnip/internal/tui/styles"
)

const (
	searchDebounce  = 300 * time.Millisecond
	doubleTapWindow = 400 * time.Millisecond

	// keyboard nudge steps for the active handle
	nudgeCoarse = time.Second
	nudgeFine   = 100 * time.Millisecond
)

// App holds the TUI application dependencies.
type App struct {
	catalog    *catalog.Client
	controller *playback.Controller
	exclusive  *playback.Exclusive
	haptics    haptics.Service
	pollEvery  time.Duration
	pageSize   int
}

// NewApp wires the clip picker from config.
func NewApp(cfg *config.Config) *App {
	ex := playback.NewExclusive()
	ctrl := playback.NewController(engine.New(), ex, "clip-picker")
	ctrl.SetVolume(cfg.Playback.Volume)

	var hp haptics.Service = haptics.Noop{}
	if cfg.Haptics.Mode == "bell" {
		// Bells go to stderr so the renderer's stdout stream stays clean.
		hp = haptics.NewBell(os.Stderr)
	}

	return &App{
		catalog:    catalog.New(cfg.Catalog.BaseURL),
		controller: ctrl,
		exclusive:  ex,
		haptics:    hp,
		pollEvery:  time.Duration(cfg.Playback.PollInterval) * time.Millisecond,
		pageSize:   cfg.Catalog.PageSize,
	}
}

// Model is the clip picker TUI model.
type Model struct {
	app    *App
	width  int
	height int

	// Search state
	showSearch  bool
	searchInput textinput.Model
	results     []core.Track
	pagination  catalog.Pagination
	page        int
	searching   bool
	lastQuery   string
	searchErr   error

	// Selection session
	track       *core.Track
	sel         core.Selection
	trackers    *gesture.Set
	nudgeHandle gesture.Handle
	loading     bool

	// Tap bookkeeping for single/double-tap on the wave strip
	lastClickAt time.Time
	lastClickX  int

	// Components
	timeline  *components.Timeline
	trackList *components.TrackList
	playerBar *components.PlayerBar

	// Overlays
	showHelp   bool
	confirmMsg string

	// Error handling
	lastError   error
	errorExpiry time.Time

	// Result handed back to the caller
	result   *core.Clip
	removed  bool
	quitting bool
}

// NewModel creates the clip picker model.
func NewModel(app *App) Model {
	ti := textinput.New()
	ti.Placeholder = "Search songs..."
	ti.CharLimit = 100
	ti.Width = 50

	return Model{
		app:         app,
		searchInput: ti,
		showSearch:  true,
		page:        1,
		trackers:    gesture.NewSet(),
		nudgeHandle: gesture.HandleStart,
		timeline:    components.NewTimeline(),
		trackList:   components.NewTrackList(),
		playerBar:   components.NewPlayerBar(),
	}
}

// Messages
type tickMsg time.Time
type errMsg error
type searchDebounceMsg struct{ query string }
type searchResultsMsg struct {
	result *catalog.SearchResult
	err    error
}
type trackLoadedMsg struct{ track *core.Track }

// Commands
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.app.pollEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) doSearch(query string, page int) tea.Cmd {
	pageSize := m.app.pageSize
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := m.app.catalog.Search(ctx, query, page, pageSize)
		return searchResultsMsg{result: result, err: err}
	}
}

func (m Model) loadTrack(track *core.Track) tea.Cmd {
	sel := core.NewSelection(track.Duration)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := m.app.controller.Load(ctx, track, sel); err != nil {
			return errMsg(err)
		}
		return trackLoadedMsg{track: track}
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), textinput.Blink)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trackers.SetGeometry(float64(m.timeline.InnerWidth(m.timelineWidth())), m.trackDuration())
		return m, nil

	case tickMsg:
		if m.track != nil && !m.loading {
			m.app.controller.Tick(context.Background(), m.sel)
		}
		if time.Now().After(m.errorExpiry) {
			m.lastError = nil
		}
		return m, m.tick()

	case searchDebounceMsg:
		if msg.query == m.searchInput.Value() && msg.query != m.lastQuery {
			m.lastQuery = msg.query
			m.searching = true
			m.page = 1
			return m, m.doSearch(msg.query, 1)
		}

	case searchResultsMsg:
		m.searching = false
		m.searchErr = msg.err
		if msg.err == nil && msg.result != nil {
			m.results = msg.result.Items
			m.pagination = msg.result.Pagination
			m.trackList.Reset()
		}
		return m, nil

	case trackLoadedMsg:
		m.loading = false
		m.track = msg.track
		m.sel = core.NewSelection(msg.track.Duration)
		m.trackers.SetGeometry(float64(m.timeline.InnerWidth(m.timelineWidth())), msg.track.Duration)
		m.showSearch = false
		m.confirmMsg = ""
		return m, nil

	case errMsg:
		m.loading = false
		m.lastError = msg
		m.errorExpiry = time.Now().Add(5 * time.Second)
		return m, nil
	}

	// Forward other messages to textinput when search is active
	if m.showSearch {
		var inputCmd tea.Cmd
		m.searchInput, inputCmd = m.searchInput.Update(msg)
		return m, inputCmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.finish(nil, false)
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.showSearch {
		return m.handleSearchKeyPress(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return m.finish(nil, false)

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.openSearch()
		return m, textinput.Blink

	case "tab":
		m.nudgeHandle = nextHandle(m.nudgeHandle)
		return m, nil

	case " ":
		if m.track == nil || m.loading {
			return m, nil
		}
		if err := m.app.controller.Toggle(context.Background(), m.sel); err != nil {
			return m.reportError(err)
		}
		return m, nil

	case "left", "right", "shift+left", "shift+right":
		m.nudge(msg.String())
		return m, nil

	case "+", "=":
		m.app.controller.SetVolume(m.app.controller.Volume() + 5)
		return m, nil

	case "-":
		m.app.controller.SetVolume(m.app.controller.Volume() - 5)
		return m, nil

	case "d", "enter":
		return m.confirm()

	case "x":
		// Remove: explicit "no music attached"
		return m.finish(nil, true)
	}

	return m, nil
}

func (m *Model) openSearch() {
	m.showSearch = true
	m.searchInput.SetValue("")
	m.searchInput.Focus()
	m.results = nil
	m.lastQuery = ""
	m.searchErr = nil
	m.page = 1
}

func (m Model) handleSearchKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "esc":
		if m.track == nil {
			return m.finish(nil, false)
		}
		m.showSearch = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		if i := m.trackList.Selected(); i >= 0 && i < len(m.results) {
			track := m.results[i]
			if !track.HasAudio() {
				return m.reportError(snperrors.ErrNoAudio)
			}
			m.loading = true
			m.searchInput.Blur()
			return m, m.loadTrack(&track)
		}
		return m, nil

	case "up", "ctrl+p":
		m.trackList.SelectPrev()
		return m, nil

	case "down", "ctrl+n":
		m.trackList.SelectNext(len(m.results))
		return m, nil

	case "ctrl+f", "pgdown":
		if m.pagination.HasMore() && !m.searching {
			m.page++
			m.searching = true
			return m, m.doSearch(m.lastQuery, m.page)
		}
		return m, nil

	case "ctrl+b", "pgup":
		if m.page > 1 && !m.searching {
			m.page--
			m.searching = true
			return m, m.doSearch(m.lastQuery, m.page)
		}
		return m, nil
	}

	// Handle text input
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	cmds = append(cmds, inputCmd)

	// Debounce search
	if m.searchInput.Value() != m.lastQuery {
		query := m.searchInput.Value()
		cmds = append(cmds, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{query: query}
		}))
	}

	return m, tea.Batch(cmds...)
}

// handleMouse drives the drag trackers from terminal mouse events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showSearch || m.track == nil || m.loading {
		return m, nil
	}

	waveZone := zone.Get(components.ZoneWave)
	relX := msg.X - waveZone.StartX

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case zone.Get(components.ZoneStartHandle).InBounds(msg):
			m.trackers.Begin(gesture.HandleStart, relX, m.sel)
			m.app.haptics.Pulse(haptics.Light)
		case zone.Get(components.ZoneEndHandle).InBounds(msg):
			m.trackers.Begin(gesture.HandleEnd, relX, m.sel)
			m.app.haptics.Pulse(haptics.Light)
		case waveZone.InBounds(msg):
			t := core.TimeFromPixel(float64(relX), m.waveWidth(), m.trackDuration())
			if t > m.sel.Start && t < m.sel.End {
				// Interior press slides the whole selection.
				m.trackers.Begin(gesture.HandleBoth, relX, m.sel)
				m.app.haptics.Pulse(haptics.Light)
				return m, nil
			}
			return m.handleTap(relX, t)
		}

	case tea.MouseActionMotion:
		if up, ok := m.trackers.Move(relX); ok {
			m.applyDrag(up)
		}

	case tea.MouseActionRelease:
		if up, ok := m.trackers.Release(); ok {
			m.applyDrag(up)
			m.app.haptics.Pulse(haptics.Success)
			return m, m.previewBoundary(up)
		}
	}

	return m, nil
}

// handleTap resolves single and double taps outside the selection:
// a single tap seeks, a double tap moves the nearer boundary.
func (m Model) handleTap(relX int, t time.Duration) (tea.Model, tea.Cmd) {
	now := time.Now()
	isDouble := now.Sub(m.lastClickAt) < doubleTapWindow && abs(relX-m.lastClickX) <= 1
	m.lastClickAt = now
	m.lastClickX = relX

	if !isDouble {
		m.app.controller.Seek(t)
		return m, nil
	}

	wasAtLimit := m.sel.AtLimit()
	leftHalf := float64(relX) < m.waveWidth()/2
	m.sel.SetBoundaryAt(t, leftHalf)
	if m.sel.AtLimit() && !wasAtLimit {
		m.app.haptics.Pulse(haptics.Medium)
	}

	boundary := m.sel.Start
	if !leftHalf {
		boundary = m.sel.End
	}
	return m, m.preview(boundary)
}

// applyDrag commits a tracker update to the selection and pulses on a
// fresh limit hit.
func (m *Model) applyDrag(up gesture.Update) {
	wasAtLimit := m.sel.AtLimit()

	switch up.Handle {
	case gesture.HandleStart:
		m.sel.SetStart(up.Time)
	case gesture.HandleEnd:
		m.sel.SetEnd(up.Time)
	case gesture.HandleBoth:
		m.sel.Shift(up.Time)
	}

	if m.sel.AtLimit() && !wasAtLimit {
		m.app.haptics.Pulse(haptics.Medium)
	}
	m.confirmMsg = ""
}

func (m Model) previewBoundary(up gesture.Update) tea.Cmd {
	boundary := m.sel.Start
	if up.Handle == gesture.HandleEnd {
		boundary = m.sel.End
	}
	return m.preview(boundary)
}

func (m Model) preview(boundary time.Duration) tea.Cmd {
	sel := m.sel
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := m.app.controller.PreviewAt(ctx, boundary, sel); err != nil {
			return errMsg(err)
		}
		return nil
	}
}

// nudge is the keyboard quick-adjust for the active handle.
func (m *Model) nudge(key string) {
	if m.track == nil {
		return
	}

	step := nudgeCoarse
	if strings.HasPrefix(key, "shift+") {
		step = nudgeFine
	}
	if strings.HasSuffix(key, "left") {
		step = -step
	}

	wasAtLimit := m.sel.AtLimit()
	switch m.nudgeHandle {
	case gesture.HandleStart:
		m.sel.SetStart(m.sel.Start + step)
	case gesture.HandleEnd:
		m.sel.SetEnd(m.sel.End + step)
	case gesture.HandleBoth:
		m.sel.Shift(m.sel.Start + step)
	}
	if m.sel.AtLimit() && !wasAtLimit {
		m.app.haptics.Pulse(haptics.Medium)
	}
	m.confirmMsg = ""
}

// confirm validates the selection and, when valid, ends the session
// with a clip result.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	if m.track == nil {
		return m, nil
	}
	if err := m.sel.Validate(); err != nil {
		m.confirmMsg = snperrors.GetSuggestion(snperrors.ErrClipTooShort)
		if m.confirmMsg == "" {
			m.confirmMsg = err.Error()
		}
		return m, nil
	}
	return m.finish(core.NewClip(m.track, m.sel), false)
}

// finish tears down playback and quits with the given result.
func (m Model) finish(clip *core.Clip, removed bool) (tea.Model, tea.Cmd) {
	m.result = clip
	m.removed = removed
	m.quitting = true
	m.trackers.Cancel()
	_ = m.app.controller.Unload()
	m.app.exclusive.StopAll()
	return m, tea.Quit
}

func (m Model) reportError(err error) (tea.Model, tea.Cmd) {
	m.lastError = err
	m.errorExpiry = time.Now().Add(5 * time.Second)
	return m, nil
}

// Geometry helpers

func (m Model) timelineWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 2
}

func (m Model) waveWidth() float64 {
	return float64(m.timeline.InnerWidth(m.timelineWidth()))
}

func (m Model) trackDuration() time.Duration {
	if m.track == nil {
		return 0
	}
	return m.track.Duration
}

func nextHandle(h gesture.Handle) gesture.Handle {
	switch h {
	case gesture.HandleStart:
		return gesture.HandleEnd
	case gesture.HandleEnd:
		return gesture.HandleBoth
	default:
		return gesture.HandleStart
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showSearch {
		return zone.Scan(m.renderSearch())
	}

	drag := components.DragView{Active: m.trackers.Active(), Limit: m.sel.Limit()}
	if drag.Active != gesture.HandleNone {
		switch drag.Active {
		case gesture.HandleEnd:
			drag.Badge = m.sel.End
		default:
			drag.Badge = m.sel.Start
		}
	}

	timeline := m.timeline.Render(m.track, m.sel, m.app.controller.Snapshot().Position, drag, m.timelineWidth(), true)
	bar := m.playerBar.Render(m.app.controller.Snapshot(), m.app.controller.State(), m.sel, m.timelineWidth())

	sections := []string{timeline, bar}
	if m.confirmMsg != "" {
		sections = append(sections, styles.Alert.Render(m.confirmMsg))
	}
	sections = append(sections, m.renderStatusBar())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render(fmt.Sprintf(
		"handle:%s  drag handles or tab+←/→ to adjust  space:play/pause  /:search  d:done  x:remove  ?:help  q:cancel",
		m.nudgeHandle))

	if m.loading {
		status = styles.Paused.Render("Loading track...")
	}
	if m.lastError != nil {
		status = styles.Alert.Render("Error: "+m.lastError.Error()) + suggestionSuffix(m.lastError)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func suggestionSuffix(err error) string {
	if s := snperrors.GetSuggestion(err); s != "" {
		return styles.Dim.Render("  (" + s + ")")
	}
	return ""
}

func (m Model) renderHelp() string {
	title := "Clip Picker - Keyboard Shortcuts"
	divider := strings.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Esc       Cancel without selecting
  ?            Toggle help
  /            Search songs

  Trim
  ────
  mouse drag   Move a handle, or slide the selection from inside it
  double-tap   Set the nearer boundary to the tapped position
  single tap   Seek without changing the selection
  Tab          Cycle active handle (start/end/both)
  ←/→          Nudge active handle by 1s
  Shift+←/→    Nudge active handle by 0.1s

  Playback
  ────────
  Space        Play/Pause loop
  +/=          Volume up
  -            Volume down

  Finish
  ──────
  d, Enter     Done: confirm the clip
  x            Remove: attach no music

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

func (m Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render("Pick a song"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if m.searchErr != nil {
		b.WriteString(styles.Alert.Render("Error: " + m.searchErr.Error()))
	} else if m.searching {
		b.WriteString(styles.Subtitle.Render("Searching..."))
	} else if len(m.results) == 0 && m.lastQuery != "" {
		b.WriteString(styles.Subtitle.Render("No results found"))
	} else {
		b.WriteString(m.trackList.Render(m.results, 64, 16, true))
		if m.pagination.Pages > 1 {
			b.WriteString("\n")
			b.WriteString(styles.Dim.Render(fmt.Sprintf("page %d/%d", m.pagination.Page, m.pagination.Pages)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Dim.Render("↑/↓:nav  Enter:select  PgUp/PgDn:page  Esc:back"))

	content := lipgloss.NewStyle().
		Width(68).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.FocusedBorder.Render(content))
}

// Result is what the picker session produced.
type Result struct {
	Clip    *core.Clip
	Removed bool
}

// Run starts the clip picker and blocks until the user confirms,
// removes, or cancels.
func Run(cfg *config.Config) (*Result, error) {
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "tunesnip")
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	zone.NewGlobal()
	defer zone.Close()

	app := NewApp(cfg)
	defer func() {
		_ = app.controller.Unload()
		app.exclusive.StopAll()
	}()

	model := NewModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := final.(Model)
	if !ok {
		return &Result{}, nil
	}
	return &Result{Clip: fm.result, Removed: fm.removed}, nil
}
