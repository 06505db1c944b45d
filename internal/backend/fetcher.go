package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/slackdeck/internal/logging/events"
	"github.com/atomicstack/slackdeck/internal/remote"
)

// Kind represents the type of data emitted by a completed fetch.
type Kind int

const (
	KindChannels Kind = iota
	KindMessages
	KindReplies
	KindUser
	KindSent
	KindReplied
	KindReacted
)

// String names the kind for traces and error notices.
func (k Kind) String() string {
	switch k {
	case KindChannels:
		return "channels"
	case KindMessages:
		return "messages"
	case KindReplies:
		return "replies"
	case KindUser:
		return "user"
	case KindSent:
		return "sent"
	case KindReplied:
		return "replied"
	case KindReacted:
		return "reacted"
	default:
		return "unknown"
	}
}

// Event conveys a fetch completion or failure. Channel, ThreadTS, and UserID
// carry the subject of the originating request so handlers can tell whether
// the result still matters.
type Event struct {
	Kind     Kind
	Channel  string
	ThreadTS string
	UserID   string
	Data     interface{}
	Err      error
}

// Fetcher issues remote calls on goroutines and publishes their results as
// events. Callers never block on a fetch: they issue it, return, and resume
// when the event arrives. Duplicate in-flight user fetches are coalesced by
// id; user lookups are additionally throttled to stay inside service rate
// limits.
type Fetcher struct {
	client remote.Client

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	mu            sync.Mutex
	inflightUsers map[string]struct{}
	userThrottle  *throttle
}

// NewFetcher creates a fetcher over the given remote client.
func NewFetcher(client remote.Client) *Fetcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Fetcher{
		client:        client,
		ctx:           ctx,
		cancel:        cancel,
		events:        make(chan Event, 32),
		inflightUsers: make(map[string]struct{}),
		userThrottle:  newThrottle(100 * time.Millisecond),
	}
}

// Events returns the channel of fetch completions.
func (f *Fetcher) Events() <-chan Event {
	return f.events
}

// Stop cancels outstanding work. In-flight fetches finish their current call
// and drop their result.
func (f *Fetcher) Stop() {
	f.cancel()
}

// Wait blocks until all fetch goroutines have exited. Call after Stop when a
// clean shutdown is required (e.g. in tests).
func (f *Fetcher) Wait() {
	f.wg.Wait()
}

// FetchChannels requests the channel list.
func (f *Fetcher) FetchChannels() {
	events.Fetch.Channels()
	f.run(func(ctx context.Context) Event {
		channels, err := f.client.Channels(ctx)
		return Event{Kind: KindChannels, Data: channels, Err: err}
	})
}

// FetchMessages requests a channel's history.
func (f *Fetcher) FetchMessages(channelID string) {
	events.Fetch.Messages(channelID)
	f.run(func(ctx context.Context) Event {
		msgs, err := f.client.Messages(ctx, channelID)
		return Event{Kind: KindMessages, Channel: channelID, Data: msgs, Err: err}
	})
}

// FetchReplies requests a thread's replies.
func (f *Fetcher) FetchReplies(channelID, threadTS string) {
	events.Fetch.Replies(channelID, threadTS)
	f.run(func(ctx context.Context) Event {
		msgs, err := f.client.ThreadReplies(ctx, channelID, threadTS)
		return Event{Kind: KindReplies, Channel: channelID, ThreadTS: threadTS, Data: msgs, Err: err}
	})
}

// FetchUser requests one user record. A request for an id that is already in
// flight is dropped; the pending fetch serves both callers.
func (f *Fetcher) FetchUser(userID string) {
	f.mu.Lock()
	if _, pending := f.inflightUsers[userID]; pending {
		f.mu.Unlock()
		events.Fetch.UserCoalesced(userID)
		return
	}
	f.inflightUsers[userID] = struct{}{}
	f.mu.Unlock()

	events.Fetch.User(userID)
	f.run(func(ctx context.Context) Event {
		f.userThrottle.wait()
		user, err := f.client.UserByID(ctx, userID)
		f.mu.Lock()
		delete(f.inflightUsers, userID)
		f.mu.Unlock()
		return Event{Kind: KindUser, UserID: userID, Data: user, Err: err}
	})
}

// Send posts a message to a channel.
func (f *Fetcher) Send(channelID, text string) {
	events.Fetch.Send(channelID)
	f.run(func(ctx context.Context) Event {
		err := f.client.SendMessage(ctx, channelID, text)
		return Event{Kind: KindSent, Channel: channelID, Err: err}
	})
}

// Reply posts a message under a thread root.
func (f *Fetcher) Reply(channelID, threadTS, text string) {
	events.Fetch.Reply(threadTS)
	f.run(func(ctx context.Context) Event {
		err := f.client.ReplyToThread(ctx, channelID, threadTS, text)
		return Event{Kind: KindReplied, Channel: channelID, ThreadTS: threadTS, Err: err}
	})
}

// React adds an emoji reaction to a message.
func (f *Fetcher) React(channelID, ts, name string) {
	events.Fetch.Reaction(channelID, ts, name)
	f.run(func(ctx context.Context) Event {
		err := f.client.AddReaction(ctx, channelID, ts, name)
		return Event{Kind: KindReacted, Channel: channelID, Err: err}
	})
}

func (f *Fetcher) run(fetch func(context.Context) Event) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		evt := fetch(f.ctx)
		if evt.Err != nil {
			events.Fetch.Error(evt.Kind.String(), evt.Err)
		}
		select {
		case <-f.ctx.Done():
		case f.events <- evt:
		}
	}()
}
