package section

import (
	"testing"

	"github.com/atomicstack/slackdeck/internal/domain"
	"github.com/atomicstack/slackdeck/internal/prefs"
)

type fakeResolver map[string]string

func (f fakeResolver) UserLabel(id string) (string, bool) {
	label, ok := f[id]
	return label, ok
}

func channelIDs(sec Section) []string {
	ids := make([]string, len(sec.Entries))
	for i, e := range sec.Entries {
		ids[i] = e.Channel.ID
	}
	return ids
}

func findSection(t *testing.T, sections []Section, id string) Section {
	t.Helper()
	for _, sec := range sections {
		if sec.ID == id {
			return sec
		}
	}
	t.Fatalf("section %q not found", id)
	return Section{}
}

func TestClassifyIsAPartition(t *testing.T) {
	channels := []domain.Channel{
		{ID: "C1", Name: "general", Kind: domain.KindPublic},
		{ID: "C2", Name: "random", Kind: domain.KindPublic},
		{ID: "P1", Name: "secrets", Kind: domain.KindPrivate},
		{ID: "D1", Kind: domain.KindDirect, UserID: "U1"},
		{ID: "G1", Name: "trio", Kind: domain.KindGroup},
	}
	p := prefs.New()
	p.ToggleStar("C2")
	p.AssignGroup("P1", "work")

	sections := Classify(channels, p, nil)

	seen := make(map[string]string)
	for _, sec := range sections {
		for _, e := range sec.Entries {
			if prev, dup := seen[e.Channel.ID]; dup {
				t.Fatalf("channel %s in both %s and %s", e.Channel.ID, prev, sec.ID)
			}
			seen[e.Channel.ID] = sec.ID
		}
	}
	for _, ch := range channels {
		if _, ok := seen[ch.ID]; !ok {
			t.Fatalf("channel %s not classified", ch.ID)
		}
	}
	if seen["C2"] != IDStarred {
		t.Fatalf("starred channel landed in %s", seen["C2"])
	}
	if seen["P1"] != "work" {
		t.Fatalf("custom-assigned channel landed in %s", seen["P1"])
	}
	if seen["C1"] != IDPublic || seen["D1"] != IDDirect || seen["G1"] != IDGroup {
		t.Fatalf("kind defaults misapplied: %v", seen)
	}
}

func TestStarredBeatsCustomAssignment(t *testing.T) {
	p := prefs.New()
	p.ToggleStar("C1")
	p.AssignGroup("C1", "work")
	sections := Classify([]domain.Channel{{ID: "C1", Name: "general", Kind: domain.KindPublic}}, p, nil)
	starred := findSection(t, sections, IDStarred)
	if len(starred.Entries) != 1 {
		t.Fatalf("starred should win over custom section")
	}
	for _, sec := range sections {
		if sec.ID == "work" {
			t.Fatalf("custom section should not materialise for a starred-only member")
		}
	}
}

func TestSortIsOrdinalWithAbsentNamesFirst(t *testing.T) {
	channels := []domain.Channel{
		{ID: "C1", Name: "beta", Kind: domain.KindPublic},
		{ID: "C2", Name: "Alpha", Kind: domain.KindPublic},
		{ID: "C3", Name: "alpha", Kind: domain.KindPublic},
		{ID: "C4", Kind: domain.KindPublic},
	}
	sections := Classify(channels, prefs.New(), nil)
	public := findSection(t, sections, IDPublic)
	got := channelIDs(public)
	want := []string{"C4", "C2", "C3", "C1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestClassifyIsReproducible(t *testing.T) {
	channels := []domain.Channel{
		{ID: "C1", Name: "zeta", Kind: domain.KindPublic},
		{ID: "C2", Name: "iota", Kind: domain.KindPublic},
		{ID: "D1", Kind: domain.KindDirect, UserID: "U1"},
	}
	p := prefs.New()
	first := Classify(channels, p, nil)
	second := Classify(channels, p, nil)
	if len(first) != len(second) {
		t.Fatalf("section counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := channelIDs(first[i]), channelIDs(second[i])
		if len(a) != len(b) {
			t.Fatalf("section %s entry counts differ", first[i].ID)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("section %s order differs at %d: %s vs %s", first[i].ID, j, a[j], b[j])
			}
		}
	}
}

func TestDirectEntryResortsOnceResolved(t *testing.T) {
	channels := []domain.Channel{
		{ID: "D1", Kind: domain.KindDirect, UserID: "U1"},
		{ID: "D2", Name: "bob", Kind: domain.KindDirect},
	}
	p := prefs.New()

	unresolved := findSection(t, Classify(channels, p, fakeResolver{}), IDDirect)
	if got := channelIDs(unresolved); got[0] != "D1" {
		t.Fatalf("unresolved entry should sort first, got %v", got)
	}
	if unresolved.Entries[0].Name != "" {
		t.Fatalf("unresolved entry should have empty name")
	}

	resolved := findSection(t, Classify(channels, p, fakeResolver{"U1": "zoe"}), IDDirect)
	if got := channelIDs(resolved); got[0] != "D2" || got[1] != "D1" {
		t.Fatalf("resolved entry should re-sort under real name, got %v", got)
	}
	if resolved.Entries[1].Name != "zoe" {
		t.Fatalf("resolved name = %q, want zoe", resolved.Entries[1].Name)
	}
}

func TestDefaultSectionsAlwaysPresent(t *testing.T) {
	sections := Classify(nil, prefs.New(), nil)
	if len(sections) != 2 {
		t.Fatalf("expected exactly starred and channels, got %d sections", len(sections))
	}
	if sections[0].ID != IDStarred || sections[1].ID != IDPublic {
		t.Fatalf("unexpected defaults: %s, %s", sections[0].ID, sections[1].ID)
	}
}

func TestCollapsedFlagComesFromPrefs(t *testing.T) {
	p := prefs.New()
	p.ToggleCollapsed(IDPublic)
	sections := Classify([]domain.Channel{{ID: "C1", Name: "general", Kind: domain.KindPublic}}, p, nil)
	public := findSection(t, sections, IDPublic)
	if !public.Collapsed {
		t.Fatalf("public section should be collapsed")
	}
}
