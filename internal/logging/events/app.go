package events

import "github.com/atomicstack/slackdeck/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Teardown() {
	logging.Trace("app.teardown", nil)
}

func (AppTracer) Notify(message string) {
	logging.Trace("app.notify", map[string]interface{}{"message": message})
}
