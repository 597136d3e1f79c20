package tui

import (
	"github.com/akyairhashvil/countdown/internal/countdown"
	tea "github.com/charmbracelet/bubbletea"
)

// EventMsg carries one engine publication into the update loop.
type EventMsg countdown.Event

type eventsClosedMsg struct{}

type reportDoneMsg struct {
	path string
	err  error
}

type themeSavedMsg struct {
	err error
}

// waitForEvent blocks on the subscription and delivers the next event.
func waitForEvent(events <-chan countdown.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return EventMsg(ev)
	}
}
