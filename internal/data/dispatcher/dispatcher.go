package dispatcher

import (
	"github.com/atomicstack/slackdeck/internal/backend"
	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/store"
)

// Result reports which slices of the store a handled event touched, so the
// UI can re-render only the affected panes. Err carries fetch failures; the
// store is left untouched for those and prior pane content stays valid.
type Result struct {
	Kind            backend.Kind
	ChannelsUpdated bool
	MessagesChannel string
	RepliesThread   string
	UserID          string
	SentChannel     string
	RepliedThread   string
	Err             error
}

// Dispatcher routes backend fetch events into the domain store.
type Dispatcher struct {
	store *store.Store
}

// New creates a dispatcher writing into the given store.
func New(s *store.Store) *Dispatcher {
	return &Dispatcher{store: s}
}

// Handle applies one backend event to the store and describes what changed.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	res := Result{Kind: evt.Kind}
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindChannels:
		if channels, ok := evt.Data.([]domain.Channel); ok {
			d.store.SetChannels(channels)
			res.ChannelsUpdated = true
		}
	case backend.KindMessages:
		if msgs, ok := evt.Data.([]domain.Message); ok {
			d.store.SetMessages(evt.Channel, msgs)
			res.MessagesChannel = evt.Channel
		}
	case backend.KindReplies:
		if msgs, ok := evt.Data.([]domain.Message); ok {
			d.store.SetThreadReplies(evt.ThreadTS, msgs)
			res.RepliesThread = evt.ThreadTS
		}
	case backend.KindUser:
		if user, ok := evt.Data.(domain.User); ok {
			d.store.SetUser(user)
			res.UserID = user.ID
		}
	case backend.KindSent:
		res.SentChannel = evt.Channel
	case backend.KindReplied:
		res.RepliedThread = evt.ThreadTS
	}
	return res
}
