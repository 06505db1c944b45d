package events

import "github.com/atomicstack/slackdeck/internal/logging"

type CacheTracer struct{}

var Cache = CacheTracer{}

func (CacheTracer) Channels(count int) {
	logging.Trace("cache.channels", map[string]interface{}{"count": count})
}

func (CacheTracer) Messages(channelID string, count int) {
	logging.Trace("cache.messages", map[string]interface{}{"channel": channelID, "count": count})
}

func (CacheTracer) Replies(threadTS string, count int) {
	logging.Trace("cache.replies", map[string]interface{}{"thread": threadTS, "count": count})
}

func (CacheTracer) User(userID, name string) {
	logging.Trace("cache.user", map[string]interface{}{"user": userID, "name": name})
}

func (CacheTracer) ChannelSelected(channelID string) {
	logging.Trace("cache.channel.selected", map[string]interface{}{"channel": channelID})
}

func (CacheTracer) ThreadSelected(threadTS string) {
	logging.Trace("cache.thread.selected", map[string]interface{}{"thread": threadTS})
}
