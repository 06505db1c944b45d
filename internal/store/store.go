package store

import (
	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/event"
	"github.com/atomicstack/slackdeck/internal/logging/events"
	"github.com/atomicstack/slackdeck/internal/prefs"
)

// Store is the single owner of fetched domain state: channels, per-channel
// message lists, thread replies, the user directory, and the current
// selection. It is created at session start and reset on teardown; panes
// receive it by reference and re-derive their content from it on every
// render. Setters mutate synchronously; SetUser additionally publishes a
// cache notification so panes showing stale placeholders can re-render.
type Store struct {
	bus   *event.Bus
	prefs *prefs.Preferences

	channels []domain.Channel
	messages map[string][]domain.Message
	replies  map[string][]domain.Message
	users    map[string]domain.User

	currentChannel *domain.ChannelRef
	currentThread  *domain.Thread
}

// New creates an empty store wired to the given bus and preferences.
func New(bus *event.Bus, p *prefs.Preferences) *Store {
	if p == nil {
		p = prefs.New()
	}
	return &Store{
		bus:      bus,
		prefs:    p,
		messages: make(map[string][]domain.Message),
		replies:  make(map[string][]domain.Message),
		users:    make(map[string]domain.User),
	}
}

// Channels returns the cached channel list in fetch order.
func (s *Store) Channels() []domain.Channel {
	return cloneChannels(s.channels)
}

// SetChannels replaces the cached channel list.
func (s *Store) SetChannels(channels []domain.Channel) {
	s.channels = cloneChannels(channels)
	events.Cache.Channels(len(channels))
}

// Channel looks up a channel by id.
func (s *Store) Channel(id string) (domain.Channel, bool) {
	for _, ch := range s.channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return domain.Channel{}, false
}

// Messages returns the cached messages for a channel in ascending timestamp
// order. The second result distinguishes "never fetched" from "fetched and
// empty".
func (s *Store) Messages(channelID string) ([]domain.Message, bool) {
	msgs, ok := s.messages[channelID]
	return cloneMessages(msgs), ok
}

// SetMessages replaces the message list for a channel, sorting by timestamp.
func (s *Store) SetMessages(channelID string, msgs []domain.Message) {
	dup := cloneMessages(msgs)
	domain.SortMessages(dup)
	if dup == nil {
		dup = []domain.Message{}
	}
	s.messages[channelID] = dup
	events.Cache.Messages(channelID, len(dup))
}

// ThreadReplies returns the cached replies for a thread root.
func (s *Store) ThreadReplies(rootTS string) ([]domain.Message, bool) {
	msgs, ok := s.replies[rootTS]
	return cloneMessages(msgs), ok
}

// SetThreadReplies replaces the reply list for a thread root, sorted by
// timestamp.
func (s *Store) SetThreadReplies(rootTS string, msgs []domain.Message) {
	dup := cloneMessages(msgs)
	domain.SortMessages(dup)
	if dup == nil {
		dup = []domain.Message{}
	}
	s.replies[rootTS] = dup
	events.Cache.Replies(rootTS, len(dup))
}

// User looks up a cached user. Entries never expire within a session.
func (s *Store) User(id string) (domain.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

// SetUser caches a user and publishes a cache-updated notification so panes
// rendering placeholder names can opportunistically re-render.
func (s *Store) SetUser(u domain.User) {
	s.users[u.ID] = u
	events.Cache.User(u.ID, u.Label())
	if s.bus != nil {
		s.bus.Publish(event.TopicUserCached, u.ID)
	}
}

// CurrentChannel returns the selected channel, if any.
func (s *Store) CurrentChannel() (domain.ChannelRef, bool) {
	if s.currentChannel == nil {
		return domain.ChannelRef{}, false
	}
	return *s.currentChannel, true
}

// SetCurrentChannel records the selected channel. Selecting a channel clears
// any thread selection, since the thread pane's subject belonged to the
// previous channel.
func (s *Store) SetCurrentChannel(id, name string) {
	s.currentChannel = &domain.ChannelRef{ID: id, Name: name}
	s.currentThread = nil
	events.Cache.ChannelSelected(id)
}

// CurrentThread returns the selected thread root and its parent message.
// Parent may be nil when the root message is not yet known.
func (s *Store) CurrentThread() (domain.Thread, bool) {
	if s.currentThread == nil {
		return domain.Thread{}, false
	}
	return *s.currentThread, true
}

// SetCurrentThread records the selected thread.
func (s *Store) SetCurrentThread(rootTS string, parent *domain.Message) {
	s.currentThread = &domain.Thread{RootTS: rootTS, Parent: parent}
	events.Cache.ThreadSelected(rootTS)
}

// Prefs exposes the UI preferences owned by this store.
func (s *Store) Prefs() *prefs.Preferences {
	return s.prefs
}

// UserLabel resolves a user id to a display label, reporting whether the
// user was cached. Implements render.Resolver.
func (s *Store) UserLabel(id string) (string, bool) {
	if u, ok := s.users[id]; ok {
		return u.Label(), true
	}
	return "", false
}

// ChannelName resolves a channel id for mention rendering. Implements
// render.Resolver.
func (s *Store) ChannelName(id string) (string, bool) {
	for _, ch := range s.channels {
		if ch.ID == id && ch.Name != "" {
			return ch.Name, true
		}
	}
	return "", false
}

// Reset drops all fetched state and the current selection. Preferences are
// kept; they are orthogonal to fetched data.
func (s *Store) Reset() {
	s.channels = nil
	s.messages = make(map[string][]domain.Message)
	s.replies = make(map[string][]domain.Message)
	s.users = make(map[string]domain.User)
	s.currentChannel = nil
	s.currentThread = nil
}

func cloneChannels(channels []domain.Channel) []domain.Channel {
	if len(channels) == 0 {
		return nil
	}
	dup := make([]domain.Channel, len(channels))
	copy(dup, channels)
	return dup
}

func cloneMessages(msgs []domain.Message) []domain.Message {
	if len(msgs) == 0 {
		return nil
	}
	dup := make([]domain.Message, len(msgs))
	copy(dup, msgs)
	return dup
}
