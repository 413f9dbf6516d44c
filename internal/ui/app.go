package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chainview/internal/chain"
	"github.com/five82/chainview/internal/diagram"
	"github.com/five82/chainview/internal/prefs"
	"github.com/five82/chainview/internal/state"
)

// Refresher triggers an out-of-band sync cycle.
type Refresher interface {
	ManualRefresh(ctx context.Context)
}

// display is what the canvas area currently shows.
type display int

const (
	displayConnecting display = iota
	displayChain
	displayError
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Refresher   Refresher
	Store       *state.Store
	Endpoint    string
	Geometry    diagram.Geometry
	PollTick    time.Duration
	PollEvery   time.Duration // shown in the error panel
	ThemeName   string
	PrefsPath   string
	LogPath     string // sync log shown by the log overlay
	ShowCadence bool
	Location    *time.Location // tooltip time zone; nil is local time
	Now         func() time.Time
}

// hoverState tracks the pointer-driven tooltip.
type hoverState struct {
	index   int // into scene.Blocks
	x, y    int // pointer, screen cells
	visible bool
	fading  bool
	seq     int // invalidates pending fade timers
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	refresher Refresher
	store     *state.Store
	endpoint  string
	geometry  diagram.Geometry
	pollTick  time.Duration
	pollEvery time.Duration
	prefsPath string
	logPath   string
	loc       *time.Location
	now       func() time.Time

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	showLog  bool

	// Data state
	mode        display
	chain       chain.Chain
	scene       diagram.Scene
	lastErr     error
	snapshot    state.Snapshot
	refreshing  bool
	showCadence bool

	// Sync log overlay
	logLines []string
	logErr   error

	// Detail state
	hover    hoverState
	selected int // diagram.NoBlock when nothing is selected
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	geometry := opts.Geometry
	if geometry == (diagram.Geometry{}) {
		geometry = diagram.DefaultGeometry()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		ctx:         ctx,
		refresher:   opts.Refresher,
		store:       opts.Store,
		endpoint:    opts.Endpoint,
		geometry:    geometry,
		pollTick:    pollTick,
		pollEvery:   opts.PollEvery,
		prefsPath:   opts.PrefsPath,
		logPath:     opts.LogPath,
		loc:         opts.Location,
		now:         now,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		theme:       GetTheme(themeName),
		showCadence: opts.ShowCadence,
		selected:    diagram.NoBlock,
		hover:       hoverState{index: diagram.NoBlock},
	}
	m.applyHelpStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		// Re-lay out what is already held; resizing never fetches.
		m.relayout()
		return m, nil

	case chainMsg:
		m.mode = displayChain
		m.chain = msg.chain
		m.lastErr = nil
		m.relayout()
		return m, m.snapshotCmd()

	case connErrorMsg:
		m.mode = displayError
		m.lastErr = msg.err
		if msg.endpoint != "" {
			m.endpoint = msg.endpoint
		}
		m.scene = diagram.Scene{}
		m.clearHover()
		return m, m.snapshotCmd()

	case fadeDoneMsg:
		if m.hover.fading && msg.seq == m.hover.seq {
			m.clearHover()
		}
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		return m, m.snapshotCmd()

	case tickMsg:
		cmds := []tea.Cmd{m.snapshotCmd(), tickCmd(m.pollTick)}
		if m.showLog {
			cmds = append(cmds, m.logTailCmd())
		}
		return m, tea.Batch(cmds...)

	case logTailMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
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
	if m.showLog {
		return m.renderLogOverlay()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help, quit still quits.
		m.showHelp = false
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.showLog {
		m.showLog = false
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyHelpStyles()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleCadence):
		m.showCadence = !m.showCadence
		m.relayout()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLog):
		m.showLog = true
		return m, m.logTailCmd()

	case key.Matches(msg, m.keys.Refresh):
		if m.refresher == nil || m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, manualRefreshCmd(m.ctx, m.refresher)

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.First):
		m.selectBlock(0)
	case key.Matches(msg, m.keys.Last):
		m.selectBlock(len(m.scene.Blocks) - 1)
	case key.Matches(msg, m.keys.Clear):
		m.selected = diagram.NoBlock
	}

	return m, nil
}

// moveSelection steps the selected block by delta, stopping at either end.
// With nothing selected, left starts at the tip and right at genesis.
func (m *Model) moveSelection(delta int) {
	n := len(m.scene.Blocks)
	if n == 0 {
		return
	}
	if m.selected == diagram.NoBlock {
		if delta < 0 {
			m.selected = n - 1
		} else {
			m.selected = 0
		}
		return
	}
	m.selected = clamp(m.selected+delta, 0, n-1)
}

func (m *Model) selectBlock(i int) {
	if i < 0 || i >= len(m.scene.Blocks) {
		return
	}
	m.selected = i
}

// canvasGeometry is the configured geometry, shortened to what the
// terminal has room for.
func (m Model) canvasGeometry() diagram.Geometry {
	g := m.geometry
	avail := m.height - headerLines
	if m.showCadence {
		avail -= m.cadenceLines()
	}
	if avail < g.Height {
		g.Height = max(avail, g.BlockHeight)
	}
	return g
}

// relayout recomputes the scene from the held chain and the current size.
func (m *Model) relayout() {
	if !m.ready || m.mode != displayChain {
		return
	}
	m.scene = diagram.Layout(m.chain, m.width, m.canvasGeometry())

	if m.selected >= len(m.scene.Blocks) {
		m.selected = len(m.scene.Blocks) - 1
	}
	if m.hover.visible {
		if i, ok := m.scene.BlockAt(m.hover.x, m.hover.y-headerLines); ok {
			m.hover.index = i
		} else {
			m.clearHover()
		}
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ShowCadence: m.showCadence}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	m.help.ShortSeparator = "  "
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

func (m Model) snapshotCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return fetchSnapshotCmd(m.store)
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Canvas area
	b.WriteString(m.renderCanvasArea())

	if m.showCadence {
		b.WriteString("\n")
		b.WriteString(m.renderCadence())
	}

	// Fill the terminal so the tooltip can extend below the canvas.
	screen := b.String()
	if n := strings.Count(screen, "\n") + 1; n < m.height {
		screen += strings.Repeat("\n", m.height-n)
	}
	if box, x, y, ok := m.tooltipOverlay(); ok {
		screen = overlay(screen, box, x, y)
	}
	return screen
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type chainMsg struct {
	chain chain.Chain
}

type connErrorMsg struct {
	endpoint string
	err      error
}

type fadeDoneMsg struct {
	seq int
}

type refreshDoneMsg struct{}

type logTailMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func fadeCmd(seq int) tea.Cmd {
	return tea.Tick(FadeDuration, func(time.Time) tea.Msg {
		return fadeDoneMsg{seq: seq}
	})
}

func manualRefreshCmd(ctx context.Context, r Refresher) tea.Cmd {
	return func() tea.Msg {
		r.ManualRefresh(ctx)
		return refreshDoneMsg{}
	}
}

// NewProgram builds the program with the alt screen and motion reporting
// the hover tooltip needs.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, opts...)
	return tea.NewProgram(m, opts...)
}
