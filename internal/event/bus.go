package event

import (
	"fmt"

	"github.com/atomicstack/slackdeck/internal/logging"
)

// Topic names the cross-pane notifications carried by the bus.
type Topic string

const (
	TopicChannelSelected Topic = "channel.selected"
	TopicThreadSelected  Topic = "thread.selected"
	TopicUserCached      Topic = "cache.user"
)

// Handler receives the payload published with an event.
type Handler func(payload interface{})

// SubscriptionID identifies one registered handler for removal.
type SubscriptionID int

type subscription struct {
	id SubscriptionID
	fn Handler
}

// Bus is a synchronous publish/subscribe channel. Handlers for a topic run
// in subscription order before Publish returns; a panicking handler is
// logged and does not stop delivery to the rest.
type Bus struct {
	next     SubscriptionID
	handlers map[Topic][]subscription
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Topic][]subscription)}
}

// Subscribe registers a handler for a topic and returns its id.
func (b *Bus) Subscribe(topic Topic, fn Handler) SubscriptionID {
	b.next++
	b.handlers[topic] = append(b.handlers[topic], subscription{id: b.next, fn: fn})
	return b.next
}

// Unsubscribe removes a previously registered handler. Unknown ids are a
// no-op.
func (b *Bus) Unsubscribe(topic Topic, id SubscriptionID) {
	subs := b.handlers[topic]
	for i, sub := range subs {
		if sub.id == id {
			b.handlers[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers payload to every handler subscribed to topic, in the
// order they subscribed.
func (b *Bus) Publish(topic Topic, payload interface{}) {
	for _, sub := range b.handlers[topic] {
		b.deliver(topic, sub, payload)
	}
}

func (b *Bus) deliver(topic Topic, sub subscription, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("event handler panic on %s: %v", topic, r))
		}
	}()
	sub.fn(payload)
}
