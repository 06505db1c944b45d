package events

import "github.com/atomicstack/slackdeck/internal/logging"

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Channels() {
	logging.Trace("fetch.channels", nil)
}

func (FetchTracer) Messages(channelID string) {
	logging.Trace("fetch.messages", map[string]interface{}{"channel": channelID})
}

func (FetchTracer) Replies(channelID, threadTS string) {
	logging.Trace("fetch.replies", map[string]interface{}{"channel": channelID, "thread": threadTS})
}

func (FetchTracer) User(userID string) {
	logging.Trace("fetch.user", map[string]interface{}{"user": userID})
}

func (FetchTracer) UserCoalesced(userID string) {
	logging.Trace("fetch.user.coalesced", map[string]interface{}{"user": userID})
}

func (FetchTracer) Send(channelID string) {
	logging.Trace("fetch.send", map[string]interface{}{"channel": channelID})
}

func (FetchTracer) Reply(threadTS string) {
	logging.Trace("fetch.reply", map[string]interface{}{"thread": threadTS})
}

func (FetchTracer) Reaction(channelID, ts, name string) {
	logging.Trace("fetch.reaction", map[string]interface{}{"channel": channelID, "ts": ts, "name": name})
}

func (FetchTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("fetch.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
