package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slackdeck/internal/backend"
	"github.com/atomicstack/slackdeck/internal/event"
	"github.com/atomicstack/slackdeck/internal/logging"
	"github.com/atomicstack/slackdeck/internal/logging/events"
	"github.com/atomicstack/slackdeck/internal/prefs"
	"github.com/atomicstack/slackdeck/internal/remote/slackapi"
	"github.com/atomicstack/slackdeck/internal/store"
	"github.com/atomicstack/slackdeck/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Token     string
	PrefsPath string
	Groups    []string
}

// Run bootstraps and executes the Bubble Tea program. Collaborators are
// constructed here and handed to the model explicitly; nothing reaches for
// ambient globals.
func Run(cfg Config) error {
	userPrefs, err := prefs.Load(cfg.PrefsPath)
	if err != nil {
		logging.Error(err)
		userPrefs = prefs.New()
	}

	bus := event.New()
	domainStore := store.New(bus, userPrefs)
	client := slackapi.New(cfg.Token)
	fetcher := backend.NewFetcher(client)
	defer fetcher.Stop()

	model := ui.NewModel(domainStore, bus, fetcher, cfg.PrefsPath, cfg.Groups)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	events.App.Teardown()
	domainStore.Reset()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
