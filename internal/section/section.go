package section

import (
	"sort"

	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/prefs"
)

// Well-known section ids. Custom sections use the user-assigned name as id.
const (
	IDStarred = "starred"
	IDPublic  = "channels"
	IDPrivate = "private"
	IDDirect  = "direct"
	IDGroup   = "group"
)

// Entry pairs a channel with its effective display name. Name is empty while
// a direct-message counterpart is unresolved; the projector substitutes the
// placeholder, and the next classification after resolution re-sorts under
// the real name.
type Entry struct {
	Channel domain.Channel
	Name    string
}

// Section is one named, collapsible grouping of the list pane.
type Section struct {
	ID        string
	Title     string
	Collapsed bool
	Entries   []Entry
}

// Resolver supplies display names for direct-message counterparts.
type Resolver interface {
	UserLabel(id string) (string, bool)
}

// Classify partitions channels into the ordered section list the list pane
// displays. Precedence per channel, first match wins: starred, custom
// section, kind default. Within a section entries sort by name, ordinal
// ascending, absent names first. Empty sections are omitted except the
// starred and public defaults, whose headers always render.
func Classify(channels []domain.Channel, p *prefs.Preferences, r Resolver) []Section {
	starred := Section{ID: IDStarred, Title: "Starred"}
	defaults := map[domain.ChannelKind]*Section{
		domain.KindPublic:  {ID: IDPublic, Title: "Channels"},
		domain.KindPrivate: {ID: IDPrivate, Title: "Private"},
		domain.KindDirect:  {ID: IDDirect, Title: "Direct Messages"},
		domain.KindGroup:   {ID: IDGroup, Title: "Group Messages"},
	}
	custom := make(map[string]*Section)

	for _, ch := range channels {
		entry := Entry{Channel: ch, Name: effectiveName(ch, r)}
		switch {
		case p.IsStarred(ch.ID):
			starred.Entries = append(starred.Entries, entry)
		case hasGroup(p, ch.ID):
			name, _ := p.Group(ch.ID)
			sec, ok := custom[name]
			if !ok {
				sec = &Section{ID: name, Title: name}
				custom[name] = sec
			}
			sec.Entries = append(sec.Entries, entry)
		default:
			sec := defaults[ch.Kind]
			sec.Entries = append(sec.Entries, entry)
		}
	}

	customNames := make([]string, 0, len(custom))
	for name := range custom {
		customNames = append(customNames, name)
	}
	sort.Strings(customNames)

	out := make([]Section, 0, 2+len(custom)+4)
	out = append(out, starred)
	for _, name := range customNames {
		out = append(out, *custom[name])
	}
	for _, kind := range []domain.ChannelKind{domain.KindPublic, domain.KindPrivate, domain.KindDirect, domain.KindGroup} {
		out = append(out, *defaults[kind])
	}

	result := out[:0]
	for _, sec := range out {
		if len(sec.Entries) == 0 && sec.ID != IDStarred && sec.ID != IDPublic {
			continue
		}
		sortEntries(sec.Entries)
		sec.Collapsed = p.IsCollapsed(sec.ID)
		result = append(result, sec)
	}
	return result
}

func hasGroup(p *prefs.Preferences, id string) bool {
	_, ok := p.Group(id)
	return ok
}

func effectiveName(ch domain.Channel, r Resolver) string {
	if ch.Name != "" {
		return ch.Name
	}
	if ch.Kind == domain.KindDirect && ch.UserID != "" && r != nil {
		if label, ok := r.UserLabel(ch.UserID); ok {
			return label
		}
	}
	return ""
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
