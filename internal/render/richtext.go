package render

import (
	"strings"

	"github.com/atomicstack/slackdeck/internal/domain"
)

// Resolver supplies cached display names for entity references embedded in
// message bodies. Lookups that miss degrade to placeholders; they never
// block projection.
type Resolver interface {
	UserLabel(id string) (string, bool)
	ChannelName(id string) (string, bool)
}

const (
	placeholderUser    = "unknown-user"
	placeholderChannel = "unknown-channel"
	placeholderGroup   = "unknown-group"
)

// flattenBlocks walks a rich-content tree depth-first and returns the body
// lines it produces. Top-level blocks separate paragraphs; explicit breaks
// inside a block split lines.
func flattenBlocks(blocks []domain.Block, r Resolver) []string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		flattenBlock(&sb, b, r)
	}
	return splitBody(sb.String())
}

func flattenBlock(sb *strings.Builder, b domain.Block, r Resolver) {
	switch b.Type {
	case domain.BlockText:
		sb.WriteString(b.Text)
	case domain.BlockUser:
		sb.WriteByte('@')
		sb.WriteString(resolveUser(b.UserID, r))
	case domain.BlockChannel:
		sb.WriteByte('#')
		sb.WriteString(resolveChannel(b.ChannelID, r))
	case domain.BlockUserGroup:
		sb.WriteByte('@')
		if b.Name != "" {
			sb.WriteString(b.Name)
		} else {
			sb.WriteString(placeholderGroup)
		}
	case domain.BlockLink:
		if b.Text != "" {
			sb.WriteString(b.Text)
		} else {
			sb.WriteString(b.URL)
		}
	case domain.BlockEmoji:
		sb.WriteByte(':')
		sb.WriteString(b.Name)
		sb.WriteByte(':')
	case domain.BlockBreak:
		sb.WriteByte('\n')
	}
	for _, child := range b.Children {
		flattenBlock(sb, child, r)
	}
}

func resolveUser(id string, r Resolver) string {
	if r != nil {
		if label, ok := r.UserLabel(id); ok {
			return label
		}
	}
	return placeholderUser
}

func resolveChannel(id string, r Resolver) string {
	if r != nil {
		if name, ok := r.ChannelName(id); ok {
			return name
		}
	}
	return placeholderChannel
}

// splitBody breaks body text on line breaks. Empty bodies produce no lines.
func splitBody(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
