package tui

import (
	"errors"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := m.width - 8
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.MaxProgressWidth)
		m.help.Width = m.width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.adjustField(1)
	case key.Matches(msg, m.keys.Down):
		m.adjustField(-1)
	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % fieldCount
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()
	case key.Matches(msg, m.keys.Restart):
		return m.startSelection()
	case key.Matches(msg, m.keys.Cancel):
		_, err := m.ctrl.Cancel()
		m.err = err
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Report):
		return m.requestReport()
	}
	return m, nil
}

func (m *Model) adjustField(delta int) {
	sel := m.ctrl.Selection()
	switch m.focus {
	case fieldHours:
		m.ctrl.SelectHours(util.Wrap(sel.Hours+delta, config.MaxHours))
	case fieldMinutes:
		m.ctrl.SelectMinutes(util.Wrap(sel.Minutes+delta, config.MaxMinutes))
	case fieldSeconds:
		m.ctrl.SelectSeconds(util.Wrap(sel.Seconds+delta, config.MaxSeconds))
	}
}

func (m Model) toggle() (Model, tea.Cmd) {
	if m.ctrl.Status() == countdown.StatusIdle {
		return m.startSelection()
	}
	_, err := m.ctrl.Toggle()
	m.err = err
	return m, nil
}

func (m Model) startSelection() (Model, tea.Cmd) {
	sel := m.ctrl.Selection()
	if sel.IsZero() {
		m.Message = "Pick a duration first"
		return m, nil
	}
	if _, err := m.ctrl.StartSelected(); err != nil {
		m.err = err
		return m, nil
	}
	m.Message = ""
	return m, nil
}

func (m Model) cycleTheme() (Model, tea.Cmd) {
	m.setTheme(nextTheme(m.themeName))
	m.Message = "Theme: " + m.theme.Name
	if m.onTheme == nil {
		return m, nil
	}
	save, name := m.onTheme, m.themeName
	return m, func() tea.Msg {
		return themeSavedMsg{err: save(name)}
	}
}

func (m Model) requestReport() (Model, tea.Cmd) {
	if m.onReport == nil {
		m.err = errors.New("history is disabled")
		return m, nil
	}
	m.Message = "Generating report..."
	generate := m.onReport
	return m, func() tea.Msg {
		path, err := generate()
		return reportDoneMsg{path: path, err: err}
	}
}

func (m Model) handleEvent(ev countdown.Event) Model {
	m.state = ev.State
	switch ev.Cause {
	case countdown.CauseStarted:
		m.total, _ = ev.State.Remaining()
	case countdown.CauseCompleted:
		m.Message = "Countdown finished"
	case countdown.CauseCancelled:
		m.Message = "Countdown cancelled"
	case countdown.CausePaused:
		m.Message = "Paused"
	case countdown.CauseResumed:
		m.Message = ""
	}
	return m
}
