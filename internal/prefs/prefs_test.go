package prefs

import (
	"path/filepath"
	"testing"
)

func TestToggleStar(t *testing.T) {
	p := New()
	if !p.ToggleStar("C1") {
		t.Fatalf("first toggle should star")
	}
	if !p.IsStarred("C1") {
		t.Fatalf("C1 should be starred")
	}
	if p.ToggleStar("C1") {
		t.Fatalf("second toggle should unstar")
	}
	if p.IsStarred("C1") {
		t.Fatalf("C1 should no longer be starred")
	}
}

func TestAssignGroupClearsOnEmpty(t *testing.T) {
	p := New()
	p.AssignGroup("C1", "work")
	if g, ok := p.Group("C1"); !ok || g != "work" {
		t.Fatalf("Group(C1) = %q, %v; want work, true", g, ok)
	}
	p.AssignGroup("C1", "")
	if _, ok := p.Group("C1"); ok {
		t.Fatalf("assignment should be cleared")
	}
}

func TestRoundTripPreservesIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	p := New()
	p.ToggleStar("C01ABCDEF")
	p.ToggleStar("D9.8-weird:id")
	p.AssignGroup("C2", "infra")
	p.ToggleCollapsed("direct")

	if err := p.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.IsStarred("D9.8-weird:id") {
		t.Fatalf("starred id lost in round trip")
	}
	if g, ok := got.Group("C2"); !ok || g != "infra" {
		t.Fatalf("group assignment lost: %q, %v", g, ok)
	}
	if !got.IsCollapsed("direct") {
		t.Fatalf("collapsed flag lost")
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.IsStarred("anything") || p.IsCollapsed("anything") {
		t.Fatalf("expected empty preferences")
	}
}
