package render

import "github.com/atomicstack/slackdeck/internal/domain"

// Kind tags what occupies a display line.
type Kind int

const (
	KindNone Kind = iota
	KindChannel
	KindMessage
)

// Entity is the domain object behind one display line. Channel and Message
// are value copies taken at projection time; the index is discarded and
// rebuilt wholesale on the next render, never patched.
type Entity struct {
	Kind    Kind
	Channel domain.Channel
	Label   string
	Message domain.Message
}

// Header marks a section header line in the list pane.
type Header struct {
	ID    string
	Title string
}

// Index is the ephemeral line-to-entity mapping produced alongside a pane's
// lines. Position equals display line number.
type Index struct {
	entities []Entity
	headers  map[int]Header
}

func newIndex() *Index {
	return &Index{headers: make(map[int]Header)}
}

func (x *Index) appendEntity(e Entity) {
	x.entities = append(x.entities, e)
}

func (x *Index) appendHeader(h Header) {
	x.headers[len(x.entities)] = h
	x.entities = append(x.entities, Entity{})
}

func (x *Index) appendBlank() {
	x.entities = append(x.entities, Entity{})
}

// Len returns the number of indexed lines.
func (x *Index) Len() int {
	return len(x.entities)
}

// EntityAt resolves a line number to the entity occupying it. Blank
// separators and header lines resolve to false.
func (x *Index) EntityAt(line int) (Entity, bool) {
	if line < 0 || line >= len(x.entities) {
		return Entity{}, false
	}
	e := x.entities[line]
	return e, e.Kind != KindNone
}

// HeaderAt resolves a line number to the section header occupying it.
func (x *Index) HeaderAt(line int) (Header, bool) {
	h, ok := x.headers[line]
	return h, ok
}

// MessageBlock returns the contiguous line range sharing the identity of the
// message at the given line, so multi-line messages highlight as one block.
func (x *Index) MessageBlock(line int) (start, end int, ok bool) {
	e, ok := x.EntityAt(line)
	if !ok || e.Kind != KindMessage {
		return 0, 0, false
	}
	start, end = line, line
	for start > 0 && x.sameMessage(start-1, e.Message) {
		start--
	}
	for end < len(x.entities)-1 && x.sameMessage(end+1, e.Message) {
		end++
	}
	return start, end, true
}

func (x *Index) sameMessage(line int, m domain.Message) bool {
	other, ok := x.EntityAt(line)
	if !ok || other.Kind != KindMessage {
		return false
	}
	return other.Message.ChannelID == m.ChannelID && other.Message.TS == m.TS
}
