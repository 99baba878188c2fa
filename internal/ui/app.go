package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/five82/clockwall/internal/face"
	"github.com/five82/clockwall/internal/observability"
	"github.com/five82/clockwall/internal/prefs"
	"github.com/five82/clockwall/internal/presets"
	"github.com/five82/clockwall/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewWall View = iota
	ViewActivity
)

type focusArea int

const (
	focusWall focusArea = iota
	focusForm
)

// TickMsg advances every clock by one second. The app ticker sends one per
// interval through Program.Send.
type TickMsg struct{}

// Options configures the UI.
type Options struct {
	Store      *state.Store
	Catalog    *presets.Catalog
	Clock      clockwork.Clock
	Logger     *slog.Logger
	Metrics    *observability.Metrics
	ThemeName  string
	PresetName string // preset for new clocks
	PrefsPath  string
	LogPath    string // activity view source
	Radius     int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store     *state.Store
	catalog   *presets.Catalog
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
	prefsPath string
	logPath   string
	preset    string
	radius    int
	keys      keyMap
	session   *session

	theme  Theme
	view   View
	focus  focusArea
	width  int
	height int
	ready  bool

	selected int
	form     *clockForm
	showHelp bool
	notice   string

	activity     viewport.Model
	activityErr  error
	lastActivity time.Time
}

// New creates the model and subscribes it to the store. Close must be called
// once the program has exited.
func New(opts Options) Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = presets.Builtin()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	preset := opts.PresetName
	if _, ok := catalog.Lookup(preset); !ok {
		preset = "classic"
	}
	radius := opts.Radius
	if radius < face.MinRadius {
		radius = face.DefaultRadius
	}

	return Model{
		store:     opts.Store,
		catalog:   catalog,
		clock:     clk,
		logger:    logger,
		metrics:   opts.Metrics,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		preset:    preset,
		radius:    radius,
		keys:      DefaultKeyMap(),
		session:   openSession(opts.Store),
		theme:     GetTheme(themeName),
		view:      ViewWall,
		activity:  viewport.New(0, 0),
	}
}

// Close releases the store subscriptions held by the model.
func (m Model) Close() {
	m.session.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.sync()
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeActivity()
		return m, nil

	case TickMsg:
		m.store.AdvanceAllByOneSecond()
		m.metrics.CountTick()
		m.sync()
		if m.view == ViewActivity {
			return m, loadActivityCmd(m.logPath)
		}
		return m, nil

	case activityMsg:
		m.setActivity(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	var body string
	switch m.view {
	case ViewActivity:
		body = m.renderActivity(bodyHeight)
	default:
		body = m.renderBody(bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderBody(height int) string {
	if m.form == nil {
		return m.renderWall(m.width, height)
	}
	wallWidth := max(m.width-formWidth, 0)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderWall(wallWidth, height),
		m.form.View(m.theme, m.focus == focusForm, height),
	)
}

// handleKey routes a key to the help overlay, the activity view, the form
// or the wall, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.view == ViewActivity {
		return m.handleActivityKey(msg)
	}
	if m.form != nil && m.focus == focusForm {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Activity):
		m.view = ViewActivity
		return m, loadActivityCmd(m.logPath)
	case key.Matches(msg, m.keys.FocusForm):
		if m.form != nil {
			m.focus = focusForm
		}
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.cancelForm()
		return m, nil
	}

	return m.handleWallKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.FocusForm) {
		m.focus = focusWall
		return m, nil
	}
	action, cmd := m.form.Update(msg, m.keys, m.catalog)
	switch action {
	case formCancel:
		m.cancelForm()
	case formSubmit:
		m.submitForm()
	}
	return m, cmd
}

// submitForm stores the form's configuration. In edit mode it patches the
// target and returns the store to idle; otherwise it adds a clock.
func (m *Model) submitForm() {
	cfg, err := m.form.Config()
	if err != nil {
		m.form.err = err.Error()
		return
	}
	if m.form.mode == formEdit {
		id := m.form.targetID
		m.store.Update(id, state.Full(cfg))
		m.store.SetEditingTarget(nil)
		m.operation("update", "clock updated", "id", id)
		m.notice = "Saved " + shortID(id)
		return
	}
	rec := m.store.Add(cfg)
	m.form = nil
	m.focus = focusWall
	m.selected = m.store.Len() - 1
	m.operation("add", "clock added", "id", rec.ID)
	m.notice = "Added " + shortID(rec.ID)
}

func (m *Model) cancelForm() {
	if m.form == nil {
		return
	}
	if m.form.mode == formEdit {
		// sync closes the form once the store reports idle.
		m.store.SetEditingTarget(nil)
		return
	}
	m.form = nil
	m.focus = focusWall
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Preset: m.preset}); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
		m.notice = "Could not save theme"
	}
}

// sync folds store notifications received during the last message into the
// model: it opens or closes the edit form when the editing target moves,
// drops an edit whose record has been deleted, and keeps the selection in
// range.
func (m *Model) sync() {
	if target, changed := m.session.takeEditing(); changed {
		switch {
		case target != nil:
			m.form = newEditForm(*target, m.catalog.Match(target.Config))
			m.focus = focusForm
		case m.form != nil && m.form.mode == formEdit:
			m.form = nil
			m.focus = focusWall
		}
	}

	if m.session.takeRecords() && m.form != nil && m.form.mode == formEdit &&
		!m.session.contains(m.form.targetID) {
		id := m.form.targetID
		m.form = nil
		m.focus = focusWall
		m.notice = "Clock " + shortID(id) + " was deleted while editing"
		m.logger.Info("edit target removed", "id", id)
		m.store.SetEditingTarget(nil)
		m.session.takeEditing()
	}

	m.clampSelection()
}

func (m *Model) clampSelection() {
	n := len(m.session.records)
	switch {
	case n == 0:
		m.selected = 0
	case m.selected >= n:
		m.selected = n - 1
	case m.selected < 0:
		m.selected = 0
	}
}

func (m Model) selectedRecord() (state.Record, bool) {
	if m.selected < 0 || m.selected >= len(m.session.records) {
		return state.Record{}, false
	}
	return m.session.records[m.selected], true
}

// operation counts and logs one user-driven store mutation.
func (m *Model) operation(op, msg string, args ...any) {
	m.metrics.CountOperation(op)
	m.logger.Info(msg, args...)
}

// shortID trims a record id for display. KSUIDs are time-prefixed, so the
// tail is the distinctive part.
func shortID(id string) string {
	const keep = 8
	if len(id) <= keep {
		return id
	}
	return id[len(id)-keep:]
}

// newClockConfig is the starting configuration of the add form.
func (m Model) newClockConfig() state.Config {
	if p, ok := m.catalog.Lookup(m.preset); ok {
		return p.Config(presets.DefaultStart())
	}
	return presets.Default()
}

func (m *Model) nudge(delta time.Duration) {
	rec, ok := m.selectedRecord()
	if !ok {
		return
	}
	m.store.AdjustTime(rec.ID, delta)
	m.operation("adjust", "clock adjusted", "id", rec.ID, "delta", delta)
}
