package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slackdeck/internal/backend"
)

// backendEventMsg carries one fetch completion into the update loop.
type backendEventMsg struct {
	event backend.Event
}

// backendDoneMsg signals that the fetcher's event channel closed.
type backendDoneMsg struct{}

func waitForBackendEvent(f *backend.Fetcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-f.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}
