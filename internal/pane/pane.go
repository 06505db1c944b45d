package pane

import (
	"github.com/atomicstack/slackdeck/internal/logging/events"
	"github.com/atomicstack/slackdeck/internal/render"
)

// Surface is the host windowing collaborator: a scrollable text surface the
// controller writes projected lines into.
type Surface interface {
	SetContent(lines []string)
	SetTitle(title string)
	Highlight(start, end int, styleTag string)
	ClearHighlight()
	CursorLine() int
	Close()
}

// State tracks a controller's lifecycle. Closed is terminal for an instance.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateRendering
	StateIdle
)

// HighlightTag is the style tag applied to the cursor-adjacent entity block.
const HighlightTag = "cursor"

// Projector produces a pane's lines and line index from current cache state.
// It is re-invoked in full on every render.
type Projector func() ([]string, *render.Index)

// Controller owns one pane: its lifecycle, its re-render trigger, its
// ephemeral line index, and cursor-to-entity resolution. Every render
// replaces content and index wholesale, which keeps late or out-of-order
// fetch completions harmless.
type Controller struct {
	name    string
	surface Surface
	state   State
	lines   []string
	index   *render.Index
}

// New opens a controller over an allocated surface.
func New(name string, surface Surface) *Controller {
	events.Pane.Open(name)
	return &Controller{name: name, surface: surface, state: StateOpen}
}

// Name identifies the pane in traces.
func (c *Controller) Name() string {
	return c.name
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Render projects fresh content into the pane. Calls against a closed pane
// are silently ignored. The previous line index is discarded, never patched,
// and the cursor-adjacent entity is re-highlighted afterwards.
func (c *Controller) Render(project Projector) {
	if c.state == StateClosed {
		return
	}
	c.state = StateRendering
	lines, index := project()
	c.lines = lines
	c.index = index
	c.surface.SetContent(lines)
	events.Pane.Render(c.name, len(lines))
	c.applyHighlight()
	c.state = StateIdle
}

// SetTitle forwards a title to the surface unless the pane is closed.
func (c *Controller) SetTitle(title string) {
	if c.state == StateClosed {
		return
	}
	c.surface.SetTitle(title)
}

// Lines returns the most recently rendered content.
func (c *Controller) Lines() []string {
	return c.lines
}

// EntityAt resolves a line number through the current index. Blank
// separators and unrendered panes resolve to false; that is a no-op for
// callers, not an error.
func (c *Controller) EntityAt(line int) (render.Entity, bool) {
	if c.state == StateClosed || c.index == nil {
		return render.Entity{}, false
	}
	return c.index.EntityAt(line)
}

// HeaderAt resolves a line number to a section header.
func (c *Controller) HeaderAt(line int) (render.Header, bool) {
	if c.state == StateClosed || c.index == nil {
		return render.Header{}, false
	}
	return c.index.HeaderAt(line)
}

// EntityAtCursor resolves the surface's current cursor line.
func (c *Controller) EntityAtCursor() (render.Entity, bool) {
	if c.state == StateClosed {
		return render.Entity{}, false
	}
	return c.EntityAt(c.surface.CursorLine())
}

// HeaderAtCursor resolves the cursor line to a section header.
func (c *Controller) HeaderAtCursor() (render.Header, bool) {
	if c.state == StateClosed {
		return render.Header{}, false
	}
	return c.HeaderAt(c.surface.CursorLine())
}

// RefreshHighlight re-applies the cursor highlight, for cursor movement
// without a content change.
func (c *Controller) RefreshHighlight() {
	if c.state == StateClosed || c.index == nil {
		return
	}
	c.applyHighlight()
}

// Close releases the surface and drops the index. Terminal.
func (c *Controller) Close() {
	if c.state == StateClosed {
		return
	}
	c.state = StateClosed
	c.lines = nil
	c.index = nil
	c.surface.Close()
	events.Pane.Close(c.name)
}

// applyHighlight highlights every line sharing identity with the entity at
// the cursor, so multi-line messages light up as a block. Lines that resolve
// to nothing clear the highlight.
func (c *Controller) applyHighlight() {
	cursor := c.surface.CursorLine()
	entity, ok := c.index.EntityAt(cursor)
	if !ok {
		c.surface.ClearHighlight()
		return
	}
	start, end := cursor, cursor
	if entity.Kind == render.KindMessage {
		if s, e, ok := c.index.MessageBlock(cursor); ok {
			start, end = s, e
		}
	}
	c.surface.Highlight(start, end, HighlightTag)
	events.Pane.Highlight(c.name, start, end)
}
