package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/booklist/internal/books"
	"github.com/five82/booklist/internal/loader"
	"github.com/five82/booklist/internal/prefs"
	"github.com/five82/booklist/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBooks View = iota
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Loader    *loader.Loader // its hooks must publish into Store
	LogPath   string         // file shown by the log view
	Logger    zerolog.Logger
	ThemeName string
	PrefsPath string
	Tick      time.Duration

	Open Opener // nil uses the platform browser opener
	Copy Copier // nil uses the system clipboard
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	loader    *loader.Loader
	logPath   string
	log       zerolog.Logger
	prefsPath string
	tick      time.Duration
	open      Opener
	copy      Copier
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	notice      string // last action outcome, shown in the header

	// Data state
	snapshot state.Snapshot
	selected int

	// Search input
	searching   bool
	searchInput textinput.Model
	spinner     spinner.Model

	// Log view
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	open := opts.Open
	if open == nil {
		open = OpenBrowser
	}
	cp := opts.Copy
	if cp == nil {
		cp = CopyToClipboard
	}

	ti := textinput.New()
	ti.Placeholder = "Search books..."
	ti.Prompt = "/ "
	ti.CharLimit = 200

	theme := GetTheme(themeName)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		loader:      opts.Loader,
		logPath:     opts.LogPath,
		log:         opts.Logger.With().Str("component", "ui").Logger(),
		prefsPath:   opts.PrefsPath,
		tick:        tick,
		open:        open,
		copy:        cp,
		keys:        DefaultKeyMap(),
		theme:       theme,
		currentView: ViewBooks,
		searchInput: ti,
		spinner:     sp,
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick), m.spinner.Tick}
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

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.searchInput.Width = max(m.width-4, 10)
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case searchDoneMsg:
		if msg.Stale || m.loader == nil || !m.loader.Current(msg.Generation) {
			return m, nil
		}
		if m.store != nil {
			m.applySnapshot(m.store.Snapshot())
		}
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case openedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("url", msg.url).Msg("open purchase link failed")
			m.notice = "open failed: " + msg.err.Error()
		} else {
			m.log.Info().Str("url", msg.url).Msg("opened purchase link")
			m.notice = "Opened in browser"
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("copy purchase link failed")
			m.notice = "copy failed: " + msg.err.Error()
		} else {
			m.notice = "Copied purchase link"
		}
		return m, nil

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogViewport()
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

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.renderSearchBar())
	} else {
		b.WriteString(m.renderCommandBar())
	}
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn().Err(err).Msg("save prefs failed")
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.openSearch()

	case key.Matches(msg, m.keys.ViewLogs):
		if m.currentView == ViewLogs {
			m.currentView = ViewBooks
			return m, nil
		}
		m.currentView = ViewLogs
		return m, readLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBooks
		return m, nil
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleBooksKey(msg)
	}
}

// handleBooksKey processes navigation and actions on the result list.
func (m Model) handleBooksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Books)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+1, 0, count-1)
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-1, 0, count-1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selected = clamp(m.selected+m.listRows(), 0, count-1)
	case key.Matches(msg, m.keys.PageUp):
		m.selected = clamp(m.selected-m.listRows(), 0, count-1)
	case key.Matches(msg, m.keys.Open):
		if book, ok := m.selectedBook(); ok {
			return m, openCmd(m.open, book.PurchaseURL)
		}
	case key.Matches(msg, m.keys.Copy):
		if book, ok := m.selectedBook(); ok {
			return m, copyCmd(m.copy, book.PurchaseURL)
		}
	}
	return m, nil
}

// handleTick re-reads the store and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}
	return m, tea.Batch(cmds...)
}

// applySnapshot installs snap and keeps the selection in range. A new
// generation resets the selection to the first result.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.Generation != m.snapshot.Generation {
		m.selected = 0
	}
	m.snapshot = snap
	if n := len(snap.Books); n == 0 {
		m.selected = 0
	} else {
		m.selected = clamp(m.selected, 0, n-1)
	}
}

func (m Model) selectedBook() (books.Book, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Books) {
		return books.Book{}, false
	}
	return m.snapshot.Books[m.selected], true
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogs:
		return m.renderLogs()
	default:
		return m.renderBooks()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type searchDoneMsg loader.Result

type openedMsg struct {
	url string
	err error
}

type copiedMsg struct {
	err error
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

func searchCmd(task *loader.Task) tea.Cmd {
	return func() tea.Msg {
		return searchDoneMsg(task.Run())
	}
}

func openCmd(open Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

func copyCmd(cp Copier, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: cp(text)}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx ends.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
