package events

import "github.com/atomicstack/slackdeck/internal/logging"

type PaneTracer struct{}

var Pane = PaneTracer{}

func (PaneTracer) Open(name string) {
	logging.Trace("pane.open", map[string]interface{}{"name": name})
}

func (PaneTracer) Render(name string, lines int) {
	logging.Trace("pane.render", map[string]interface{}{"name": name, "lines": lines})
}

func (PaneTracer) Close(name string) {
	logging.Trace("pane.close", map[string]interface{}{"name": name})
}

func (PaneTracer) Select(name, entity string) {
	logging.Trace("pane.select", map[string]interface{}{"name": name, "entity": entity})
}

func (PaneTracer) Highlight(name string, start, end int) {
	logging.Trace("pane.highlight", map[string]interface{}{"name": name, "start": start, "end": end})
}
