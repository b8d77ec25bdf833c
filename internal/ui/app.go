package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/compose"
	"github.com/five82/composer/internal/logtail"
	"github.com/five82/composer/internal/prefs"
	"github.com/five82/composer/internal/state"
)

// focusPane is the pane receiving navigation keys.
type focusPane int

const (
	focusSections focusPane = iota
	focusPages
)

// refreshEvery is how often the status line re-reads the syncer.
const refreshEvery = time.Second

// logTailLines is how much of the session log the overlay shows.
const logTailLines = 200

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Catalog     catalog.Catalog
	PaletteName string
	Preview     bool
	PrefsPath   string
	LogPath     string       // session log shown by the log overlay
	SyncErr     func() error // nil when nothing is written in the background
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	composer  *compose.Composer
	catalog   catalog.Catalog
	prefsPath string
	logPath   string
	syncErr   func() error
	keys      keyMap

	// UI state
	palette Palette
	width   int
	height  int
	ready   bool
	focus   focusPane

	// Data state
	snapshot state.Snapshot
	status   string

	// Cursors
	pageCursor    int
	sectionCursor int

	// Preview pane
	preview         bool
	previewViewport viewport.Model

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cat := opts.Catalog
	if len(cat.Sections()) == 0 {
		cat = catalog.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:             ctx,
		store:           opts.Store,
		composer:        compose.New(opts.Store, cat),
		catalog:         cat,
		prefsPath:       prefsPath,
		logPath:         opts.LogPath,
		syncErr:         opts.SyncErr,
		keys:            DefaultKeyMap(),
		palette:         GetPalette(opts.PaletteName),
		preview:         opts.Preview,
		previewViewport: viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(refreshEvery),
		waitForDone(m.ctx),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updatePreviewViewport()
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd(refreshEvery)

	case pageLabelMsg:
		m.createPage(string(msg))
		m.refresh()
		return m, nil

	case logLinesMsg:
		m.modal = newLogModal(msg.lines, msg.err)
		return m, nil

	case doneMsg:
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.updateModal(msg)
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

	if m.modal != nil {
		return m.modal.View(m.palette, m.width, m.height)
	}

	return m.renderMain()
}

// refresh re-reads the store and clamps cursors to the new lists.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.snapshot = m.store.Snapshot()

	pages := pageKeys(m.snapshot.Document)
	m.pageCursor = clamp(m.pageCursor, len(pages))
	rows := sectionRows(m.snapshot.Document, m.catalog)
	m.sectionCursor = clamp(m.sectionCursor, len(rows))

	m.updatePreviewViewport()
}

func (m *Model) updatePreviewViewport() {
	w := previewPaneWidth(m.width, m.preview)
	if w == 0 {
		return
	}
	m.previewViewport.Width = w - 4
	m.previewViewport.Height = bodyHeight(m.height) - 2
	m.previewViewport.SetContent(renderDocument(m.snapshot.Document, m.catalog))
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Palette: m.palette.Name, Preview: m.preview})
}

// renderMain renders the full editor screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// Messages

type tickMsg time.Time

type doneMsg struct{}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func waitForDone(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return doneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
