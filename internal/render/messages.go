package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/slackdeck/internal/domain"
)

const (
	// Placeholder lines for panes with no content. Loading means the fetch
	// has not completed yet; empty means it completed with nothing.
	msgLoadingMessages = "(loading messages…)"
	msgNoMessages      = "(no messages)"
	msgLoadingThread   = "(loading thread…)"
)

// PlaceholderLines projects a single informative placeholder line with an
// index that resolves nothing.
func PlaceholderLines(text string) ([]string, *Index) {
	idx := newIndex()
	idx.appendBlank()
	return []string{text}, idx
}

type messageOptions struct {
	threadSummary bool
	rootMark      bool
}

// MessageLines projects a channel's messages into the detail pane's lines
// and index. fetched distinguishes a pending fetch from a confirmed-empty
// channel. Output is a pure function of the message list and the resolver's
// cache state: projecting twice with the same inputs yields identical lines.
func MessageLines(msgs []domain.Message, fetched bool, r Resolver) ([]string, *Index) {
	idx := newIndex()
	if len(msgs) == 0 {
		placeholder := msgLoadingMessages
		if fetched {
			placeholder = msgNoMessages
		}
		idx.appendBlank()
		return []string{placeholder}, idx
	}
	lines := make([]string, 0, len(msgs)*3)
	for _, m := range msgs {
		lines = appendMessage(lines, idx, m, r, messageOptions{threadSummary: true})
	}
	return lines, idx
}

// ThreadLines projects a thread into the sub-detail pane: the parent message
// marked as the root, then every reply in the detail-pane format. A thread
// does not summarise itself, so thread-summary lines are omitted.
func ThreadLines(thread domain.Thread, replies []domain.Message, fetched bool, r Resolver) ([]string, *Index) {
	idx := newIndex()
	if thread.Parent == nil && len(replies) == 0 {
		idx.appendBlank()
		return []string{msgLoadingThread}, idx
	}
	lines := make([]string, 0, (len(replies)+1)*3)
	if thread.Parent != nil {
		lines = appendMessage(lines, idx, *thread.Parent, r, messageOptions{rootMark: true})
	}
	if len(replies) == 0 && !fetched {
		lines = append(lines, msgLoadingThread)
		idx.appendBlank()
		return lines, idx
	}
	for _, m := range replies {
		lines = appendMessage(lines, idx, m, r, messageOptions{})
	}
	return lines, idx
}

func appendMessage(lines []string, idx *Index, m domain.Message, r Resolver, opts messageOptions) []string {
	entity := Entity{Kind: KindMessage, Message: m}
	push := func(text string) {
		lines = append(lines, text)
		idx.appendEntity(entity)
	}

	push(headerLine(m, r, opts.rootMark))
	for _, body := range bodyLines(m, r) {
		push(body)
	}
	if len(m.Reactions) > 0 {
		push("  [" + reactionSummary(m.Reactions) + "]")
	}
	if opts.threadSummary && m.IsThreadRoot() {
		push("  ↳ " + replyCountLabel(m.ReplyCount))
	}
	lines = append(lines, "")
	idx.appendBlank()
	return lines
}

func headerLine(m domain.Message, r Resolver, rootMark bool) string {
	header := authorLabel(m, r) + " (" + formatTS(m.TS) + ")"
	if m.Subtype != "" {
		header = "* " + header
	}
	if rootMark {
		header = "◆ " + header
	}
	return header
}

func authorLabel(m domain.Message, r Resolver) string {
	if m.Username != "" {
		return m.Username
	}
	if m.UserID != "" {
		return resolveUser(m.UserID, r)
	}
	return placeholderUser
}

func bodyLines(m domain.Message, r Resolver) []string {
	if len(m.Blocks) > 0 {
		return flattenBlocks(m.Blocks, r)
	}
	return splitBody(m.Text)
}

func reactionSummary(reactions []domain.Reaction) string {
	parts := make([]string, len(reactions))
	for i, re := range reactions {
		parts[i] = fmt.Sprintf(":%s: %d", re.Name, re.Count)
	}
	return strings.Join(parts, ", ")
}

func replyCountLabel(count int) string {
	if count == 1 {
		return "1 reply"
	}
	return fmt.Sprintf("%d replies", count)
}

// formatTS renders the service timestamp's second component as local time.
func formatTS(ts string) string {
	return time.Unix(domain.TSSeconds(ts), 0).Format("2006-01-02 15:04")
}
