package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences holds the per-user view state that survives data refreshes:
// starred entity ids, custom section assignments, and collapsed sections.
// Mutations happen only through explicit user toggles.
type Preferences struct {
	Starred   map[string]bool   `yaml:"starred"`
	Groups    map[string]string `yaml:"groups"`
	Collapsed map[string]bool   `yaml:"collapsed"`
}

// New returns empty preferences with all maps allocated.
func New() *Preferences {
	return &Preferences{
		Starred:   make(map[string]bool),
		Groups:    make(map[string]string),
		Collapsed: make(map[string]bool),
	}
}

// IsStarred reports whether the entity id is starred.
func (p *Preferences) IsStarred(id string) bool {
	return p.Starred[id]
}

// ToggleStar flips the starred flag for an entity and reports the new state.
func (p *Preferences) ToggleStar(id string) bool {
	if p.Starred[id] {
		delete(p.Starred, id)
		return false
	}
	p.Starred[id] = true
	return true
}

// Group returns the custom section assigned to an entity, if any.
func (p *Preferences) Group(id string) (string, bool) {
	g, ok := p.Groups[id]
	return g, ok
}

// AssignGroup places an entity in a custom section. An empty section clears
// the assignment.
func (p *Preferences) AssignGroup(id, section string) {
	if section == "" {
		delete(p.Groups, id)
		return
	}
	p.Groups[id] = section
}

// IsCollapsed reports whether a section is collapsed.
func (p *Preferences) IsCollapsed(section string) bool {
	return p.Collapsed[section]
}

// ToggleCollapsed flips a section's collapse flag and reports the new state.
func (p *Preferences) ToggleCollapsed(section string) bool {
	if p.Collapsed[section] {
		delete(p.Collapsed, section)
		return false
	}
	p.Collapsed[section] = true
	return true
}

// Load reads preferences from path. A missing file yields empty preferences
// rather than an error.
func Load(path string) (*Preferences, error) {
	p := New()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	if p.Starred == nil {
		p.Starred = make(map[string]bool)
	}
	if p.Groups == nil {
		p.Groups = make(map[string]string)
	}
	if p.Collapsed == nil {
		p.Collapsed = make(map[string]bool)
	}
	return p, nil
}

// Save writes preferences to path, creating parent directories when missing.
func (p *Preferences) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
