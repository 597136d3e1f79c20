package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Picker fields, in focus order.
const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldCount
)

// Options wires the model to the rest of the application. Nil callbacks
// disable the matching key.
type Options struct {
	Theme    string
	OnTheme  func(name string) error
	OnReport func() (string, error)
}

// Model is the root bubbletea model. It only issues controller commands and
// renders what the engine publishes.
type Model struct {
	ctrl        *countdown.Controller
	events      <-chan countdown.Event
	unsubscribe func()

	state countdown.State
	total int
	focus int

	keys      keyMap
	help      help.Model
	progress  progress.Model
	theme     Theme
	themeName string
	onTheme   func(name string) error
	onReport  func() (string, error)

	Message       string
	err           error
	width, height int
	quitting      bool
}

// NewModel subscribes to ctrl's engine. The caller keeps ownership of ctrl
// and closes it after the program exits.
func NewModel(ctrl *countdown.Controller, opts Options) Model {
	events, unsubscribe := ctrl.Subscribe()
	name := opts.Theme
	if _, ok := Themes[name]; !ok {
		name = "default"
	}
	m := Model{
		ctrl:        ctrl,
		events:      events,
		unsubscribe: unsubscribe,
		state:       ctrl.State(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		onTheme:     opts.OnTheme,
		onReport:    opts.OnReport,
	}
	m.setTheme(name)
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case EventMsg:
		m = m.handleEvent(countdown.Event(msg))
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		m.events = nil
		return m, nil
	case reportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.Message = "Report saved: " + msg.path
		}
		return m, nil
	case themeSavedMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

// State is the last engine state the model rendered.
func (m Model) State() countdown.State {
	return m.state
}

func (m *Model) setTheme(name string) {
	m.themeName = name
	m.theme = ThemeByName(name)
	width := m.progress.Width
	if width == 0 {
		width = config.DefaultProgressWidth
	}
	m.progress = progress.New(progress.WithSolidFill(m.theme.Progress), progress.WithoutPercentage())
	m.progress.Width = width
}
