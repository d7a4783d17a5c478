package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/tally/internal/config"
	"github.com/five82/tally/internal/logging"
	"github.com/five82/tally/internal/state"
)

// ErrLabelMismatch is returned by New when the label count differs from the
// group count.
var ErrLabelMismatch = errors.New("carousel labels do not match group count")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Labels    []string
	Logger    *log.Logger
	ThemeName string
	PrefsPath string
}

// focusArea is the part of the screen receiving keystrokes.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	store     *state.Store
	labels    []string
	logger    *log.Logger
	prefsPath string

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	// Search box
	search textinput.Model

	// List pane
	list   viewport.Model
	cursor int

	// Overlays
	modal    Modal
	showHelp bool

	// Transient status message (prefs save failures)
	errorMsg string
}

// New creates the model. The store must already hold the group table the
// labels describe.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, fmt.Errorf("ui requires a selection store")
	}
	if len(opts.Labels) != opts.Store.GroupCount() {
		return Model{}, fmt.Errorf("%w: %d labels for %d groups", ErrLabelMismatch, len(opts.Labels), opts.Store.GroupCount())
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = config.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = config.DefaultPrefsPath()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		labels:    append([]string(nil), opts.Labels...),
		logger:    logger,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		focus:     focusList,
		search:    newSearchInput(opts.Store.Query()),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
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
			m.list = viewport.New(0, 0)
		}
		m.ready = true
		m.resize()
		m.refreshList()
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

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey routes keyboard input. Overlays and the search box take
// precedence over screen-level bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Search):
		cmd := m.focusSearch()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.store.Query() != "" {
			m.search.SetValue("")
			m.applyQuery("")
		}

	case key.Matches(msg, m.keys.Stats):
		m.openStats()

	case key.Matches(msg, m.keys.PrevGroup):
		m.moveGroup(-1)

	case key.Matches(msg, m.keys.NextGroup):
		m.moveGroup(1)

	case key.Matches(msg, m.keys.JumpGroup):
		m.jumpGroup(msg.String())

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)

	case key.Matches(msg, m.keys.Top):
		m.moveCursor(0)

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.store.Filtered()) - 1)
	}

	return m, nil
}

// cycleTheme switches to the next theme and remembers the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.logger.Debug("theme changed", "theme", m.theme.Name)
	if err := config.SavePrefs(m.prefsPath, config.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs", "path", m.prefsPath, "err", err)
		m.errorMsg = "theme not saved"
		return
	}
	m.errorMsg = ""
}

// resize lays out the panes for the current terminal size.
func (m *Model) resize() {
	m.search.Width = max(m.width-len(m.search.Prompt)-4, 1)
	m.list.Width = max(m.width-2, 0)
	m.list.Height = max(m.height-chromeHeight, 1)
	m.help.Width = m.width
}

// renderMain renders the screen top to bottom.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCarousel())
	b.WriteString("\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
