package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Header.Render(strings.ToUpper(config.AppName))+m.theme.Dim.Render("  v"+VersionLabel()+" · "+m.theme.Name),
		"",
		m.renderPickers(),
		"",
		m.renderClock(),
		m.progress.ViewAs(m.percent()),
		"",
		m.renderStatusLine(),
		m.help.View(m.keys),
	)
	return m.theme.Base.Render(body)
}

func (m Model) renderPickers() string {
	sel := m.ctrl.Selection()
	fields := []struct {
		label string
		value int
		max   int
	}{
		{"hours", sel.Hours, config.MaxHours},
		{"minutes", sel.Minutes, config.MaxMinutes},
		{"seconds", sel.Seconds, config.MaxSeconds},
	}

	cols := make([]string, 0, len(fields))
	for i, f := range fields {
		cols = append(cols, m.renderPicker(f.label, f.value, f.max, i == m.focus))
		if i < len(fields)-1 {
			cols = append(cols, "  ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderPicker(label string, value, max int, focused bool) string {
	center := lipgloss.NewStyle().Width(config.PickerWidth).Align(lipgloss.Center)
	var lines []string
	for off := -config.PickerVisibleRows; off <= config.PickerVisibleRows; off++ {
		text := fmt.Sprintf("%02d", util.Wrap(value-off, max))
		if off == 0 {
			lines = append(lines, center.Render(m.theme.Clock.Render(text)))
		} else {
			lines = append(lines, center.Render(m.theme.Dim.Render(text)))
		}
	}
	frame := m.theme.Picker
	if focused {
		frame = m.theme.PickerFocused
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		frame.Render(strings.Join(lines, "\n")),
		center.Render(m.theme.Dim.Render(label)),
	)
}

func (m Model) renderClock() string {
	remaining, ok := m.state.Remaining()
	if !ok {
		sel := m.ctrl.Selection()
		return fmt.Sprintf("%s  %s",
			m.theme.Idle.Render("--:--:--"),
			m.theme.Idle.Render("IDLE · "+util.FormatSelection(sel.Hours, sel.Minutes, sel.Seconds)))
	}
	label := m.theme.Running.Render("RUNNING")
	if m.state.Status() == countdown.StatusPaused {
		label = m.theme.Paused.Render("PAUSED")
	}
	return fmt.Sprintf("%s  %s", m.theme.Clock.Render(util.FormatClock(remaining)), label)
}

func (m Model) percent() float64 {
	remaining, ok := m.state.Remaining()
	if !ok || m.total <= 0 {
		return 0
	}
	done := float64(m.total-remaining) / float64(m.total)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

func (m Model) renderStatusLine() string {
	width := m.width - 4
	if m.width == 0 {
		width = 80
	}
	if m.err != nil {
		return m.theme.Error.Render(truncateLabel("Error: "+m.err.Error(), width))
	}
	return m.theme.Dim.Render(truncateLabel(m.Message, width))
}
