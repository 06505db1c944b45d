package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/prefs"
	"github.com/atomicstack/slackdeck/internal/section"
)

type fakeResolver struct {
	users    map[string]string
	channels map[string]string
}

func (f *fakeResolver) UserLabel(id string) (string, bool) {
	label, ok := f.users[id]
	return label, ok
}

func (f *fakeResolver) ChannelName(id string) (string, bool) {
	name, ok := f.channels[id]
	return name, ok
}

func resolver() *fakeResolver {
	return &fakeResolver{users: map[string]string{}, channels: map[string]string{}}
}

func classify(channels []domain.Channel, p *prefs.Preferences) []section.Section {
	return section.Classify(channels, p, nil)
}

func TestChannelLinesHeadersAndEntities(t *testing.T) {
	p := prefs.New()
	sections := classify([]domain.Channel{
		{ID: "C1", Name: "general", Kind: domain.KindPublic},
		{ID: "D1", Kind: domain.KindDirect, UserID: "U1"},
	}, p)
	lines, idx := ChannelLines(sections)

	if len(lines) != idx.Len() {
		t.Fatalf("lines (%d) and index (%d) out of step", len(lines), idx.Len())
	}
	if lines[0] != "▾ Starred" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if h, ok := idx.HeaderAt(0); !ok || h.ID != section.IDStarred {
		t.Fatalf("header at 0 = %+v, %v", h, ok)
	}
	if lines[1] != "▾ Channels" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if lines[2] != "  # general" {
		t.Fatalf("line 2 = %q", lines[2])
	}
	e, ok := idx.EntityAt(2)
	if !ok || e.Kind != KindChannel || e.Channel.ID != "C1" {
		t.Fatalf("entity at 2 = %+v, %v", e, ok)
	}
	// unresolved DM renders the provisional placeholder
	found := false
	for _, line := range lines {
		if line == "  @ unknown-user" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no placeholder DM line in %q", lines)
	}
}

func TestCollapseRemovesExactlyEntityLines(t *testing.T) {
	channels := []domain.Channel{
		{ID: "C1", Name: "general", Kind: domain.KindPublic},
		{ID: "C2", Name: "random", Kind: domain.KindPublic},
	}
	p := prefs.New()
	expanded, _ := ChannelLines(classify(channels, p))

	p.ToggleCollapsed(section.IDPublic)
	collapsed, idx := ChannelLines(classify(channels, p))

	if len(collapsed) != len(expanded)-2 {
		t.Fatalf("collapse removed %d lines, want 2", len(expanded)-len(collapsed))
	}
	var header string
	for i, line := range collapsed {
		if h, ok := idx.HeaderAt(i); ok && h.ID == section.IDPublic {
			header = line
		}
		if strings.Contains(line, "general") || strings.Contains(line, "random") {
			t.Fatalf("entity line survived collapse: %q", line)
		}
	}
	if header != "▸ Channels" {
		t.Fatalf("collapsed header = %q", header)
	}

	p.ToggleCollapsed(section.IDPublic)
	restored, _ := ChannelLines(classify(channels, p))
	if !reflect.DeepEqual(restored, expanded) {
		t.Fatalf("expand did not restore original lines:\n%q\n%q", restored, expanded)
	}
}

func TestMessageLinesFormat(t *testing.T) {
	r := resolver()
	r.users["U1"] = "alice"
	msgs := []domain.Message{
		{
			ChannelID: "C1", TS: "1700000000.000100", UserID: "U1",
			Text:       "hello\nworld",
			Reactions:  []domain.Reaction{{Name: "thumbsup", Count: 3}, {Name: "eyes", Count: 1}},
			ReplyCount: 2,
		},
	}
	lines, idx := MessageLines(msgs, true, r)

	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "alice (") {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "hello" || lines[2] != "world" {
		t.Fatalf("body = %q, %q", lines[1], lines[2])
	}
	if lines[3] != "  [:thumbsup: 3, :eyes: 1]" {
		t.Fatalf("reactions = %q", lines[3])
	}
	if lines[4] != "  ↳ 2 replies" {
		t.Fatalf("thread summary = %q", lines[4])
	}
	if lines[5] != "" {
		t.Fatalf("expected blank separator, got %q", lines[5])
	}

	// all non-blank lines share the message identity
	start, end, ok := idx.MessageBlock(2)
	if !ok || start != 0 || end != 4 {
		t.Fatalf("message block = %d..%d, %v", start, end, ok)
	}
	if _, ok := idx.EntityAt(5); ok {
		t.Fatalf("separator should not resolve to an entity")
	}
}

func TestMessageLinesIdempotent(t *testing.T) {
	r := resolver()
	r.users["U1"] = "alice"
	msgs := []domain.Message{
		{ChannelID: "C1", TS: "100.000", UserID: "U1", Text: "one"},
		{ChannelID: "C1", TS: "101.000", UserID: "U2", Text: "two"},
	}
	first, _ := MessageLines(msgs, true, r)
	second, _ := MessageLines(msgs, true, r)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("projection is not idempotent:\n%q\n%q", first, second)
	}
}

func TestUnresolvedAuthorThenResolved(t *testing.T) {
	r := resolver()
	r.users["U1"] = "alice"
	msgs := []domain.Message{
		{ChannelID: "C1", TS: "100.000", UserID: "U1", Text: "hi"},
		{ChannelID: "C1", TS: "101.000", UserID: "U2", Text: "yo"},
	}
	before, _ := MessageLines(msgs, true, r)
	if !strings.HasPrefix(before[3], "unknown-user (") {
		t.Fatalf("unresolved author = %q", before[3])
	}

	r.users["U2"] = "bob"
	after, _ := MessageLines(msgs, true, r)
	if !strings.HasPrefix(after[3], "bob (") {
		t.Fatalf("resolved author = %q", after[3])
	}
	// no other line changes
	for i := range before {
		if i == 3 {
			continue
		}
		if before[i] != after[i] {
			t.Fatalf("line %d changed: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestSystemSubtypePrefix(t *testing.T) {
	msgs := []domain.Message{
		{ChannelID: "C1", TS: "100.000", Username: "svcbot", Subtype: "channel_join", Text: "joined"},
	}
	lines, _ := MessageLines(msgs, true, resolver())
	if !strings.HasPrefix(lines[0], "* svcbot (") {
		t.Fatalf("system header = %q", lines[0])
	}
}

func TestRichContentMentionResolution(t *testing.T) {
	blocks := []domain.Block{
		{Type: domain.BlockSection, Children: []domain.Block{
			{Type: domain.BlockText, Text: "ping "},
			{Type: domain.BlockUser, UserID: "U1"},
			{Type: domain.BlockText, Text: " in "},
			{Type: domain.BlockChannel, ChannelID: "C9"},
		}},
	}
	msg := domain.Message{ChannelID: "C1", TS: "100.000", UserID: "U1", Blocks: blocks}

	r := resolver()
	r.users["U1"] = "Alice"
	r.channels["C9"] = "ops"
	lines, _ := MessageLines([]domain.Message{msg}, true, r)
	if lines[1] != "ping @Alice in #ops" {
		t.Fatalf("resolved body = %q", lines[1])
	}

	lines, _ = MessageLines([]domain.Message{msg}, true, resolver())
	if lines[1] != "ping @unknown-user in #unknown-channel" {
		t.Fatalf("unresolved body = %q", lines[1])
	}
}

func TestRichContentBreaksAndEmoji(t *testing.T) {
	blocks := []domain.Block{
		{Type: domain.BlockSection, Children: []domain.Block{
			{Type: domain.BlockText, Text: "first"},
			{Type: domain.BlockBreak},
			{Type: domain.BlockText, Text: "second "},
			{Type: domain.BlockEmoji, Name: "tada"},
		}},
		{Type: domain.BlockSection, Children: []domain.Block{
			{Type: domain.BlockLink, URL: "https://example.com"},
		}},
	}
	got := flattenBlocks(blocks, nil)
	want := []string{"first", "second :tada:", "https://example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten = %q, want %q", got, want)
	}
}

func TestMessagePlaceholders(t *testing.T) {
	lines, _ := MessageLines(nil, false, nil)
	if len(lines) != 1 || lines[0] != "(loading messages…)" {
		t.Fatalf("pending placeholder = %q", lines)
	}
	lines, _ = MessageLines(nil, true, nil)
	if len(lines) != 1 || lines[0] != "(no messages)" {
		t.Fatalf("empty placeholder = %q", lines)
	}
}

func TestThreadLines(t *testing.T) {
	parent := domain.Message{ChannelID: "C1", TS: "100.000", Username: "alice", Text: "root", ReplyCount: 1}
	replies := []domain.Message{
		{ChannelID: "C1", TS: "101.000", Username: "bob", Text: "reply", ThreadTS: "100.000"},
	}
	lines, idx := ThreadLines(domain.Thread{RootTS: "100.000", Parent: &parent}, replies, true, nil)

	if !strings.HasPrefix(lines[0], "◆ alice (") {
		t.Fatalf("root marker missing: %q", lines[0])
	}
	for _, line := range lines {
		if strings.Contains(line, "repl") && strings.Contains(line, "↳") {
			t.Fatalf("thread pane should omit thread summaries: %q", line)
		}
	}
	e, ok := idx.EntityAt(1)
	if !ok || e.Message.Text != "root" {
		t.Fatalf("entity at 1 = %+v, %v", e, ok)
	}
}

func TestThreadLinesParentPending(t *testing.T) {
	lines, _ := ThreadLines(domain.Thread{RootTS: "100.000"}, nil, false, nil)
	if len(lines) != 1 || lines[0] != "(loading thread…)" {
		t.Fatalf("pending thread placeholder = %q", lines)
	}
}
