package render

import (
	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/section"
)

const (
	glyphExpanded  = "▾"
	glyphCollapsed = "▸"
)

func kindGlyph(kind domain.ChannelKind) string {
	switch kind {
	case domain.KindPublic:
		return "#"
	case domain.KindPrivate:
		return "&"
	case domain.KindDirect:
		return "@"
	case domain.KindGroup:
		return "+"
	default:
		return "?"
	}
}

// ChannelLines projects classified sections into the list pane's lines and
// line index: one header line per section, then one indented entity line per
// member unless the section is collapsed.
func ChannelLines(sections []section.Section) ([]string, *Index) {
	lines := make([]string, 0, 32)
	idx := newIndex()
	for _, sec := range sections {
		glyph := glyphExpanded
		if sec.Collapsed {
			glyph = glyphCollapsed
		}
		lines = append(lines, glyph+" "+sec.Title)
		idx.appendHeader(Header{ID: sec.ID, Title: sec.Title})
		if sec.Collapsed {
			continue
		}
		for _, entry := range sec.Entries {
			label := entry.Name
			if label == "" {
				label = placeholderUser
			}
			lines = append(lines, "  "+kindGlyph(entry.Channel.Kind)+" "+label)
			idx.appendEntity(Entity{Kind: KindChannel, Channel: entry.Channel, Label: label})
		}
	}
	return lines, idx
}
