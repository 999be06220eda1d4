// HierarchyConfig describes a type hierarchy whose levels each contribute
// properties to one shared guarded state. Levels reference their parent by name;
// a level without a parent is a root. Validation ensures ID presence, parent
// existence and the absence of cycles.

package primitives

import (
	"errors"
	"fmt"
	"sort"
)

// HierarchyConfig defines a complete hierarchy.
type HierarchyConfig struct {
	Version string                  `json:"version,omitempty" yaml:"version,omitempty"`
	ID      string                  `json:"id" yaml:"id"`
	Levels  map[string]*LevelConfig `json:"levels" yaml:"levels"`
}

// LevelConfig defines one level of the hierarchy.
type LevelConfig struct {
	Name   string         `json:"name,omitempty" yaml:"name,omitempty"`
	Parent string         `json:"parent,omitempty" yaml:"parent,omitempty"`
	Props  map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// NewLevelConfig creates a LevelConfig with the given name and parent.
func NewLevelConfig(name, parent string) *LevelConfig {
	return &LevelConfig{
		Name:   name,
		Parent: parent,
		Props:  make(map[string]any),
	}
}

// SortedProps returns the level's property keys in lexical order.
func (l *LevelConfig) SortedProps() []string {
	keys := make([]string, 0, len(l.Props))
	for k := range l.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate validates the hierarchy:
// - Non-empty ID and at least one level
// - Level names match their map keys (empty names are filled in)
// - Every parent exists
// - No level is its own ancestor
func (h *HierarchyConfig) Validate() error {
	if h.ID == "" {
		return errors.New("hierarchy ID is required")
	}
	if len(h.Levels) == 0 {
		return errors.New("levels map is required and cannot be empty")
	}

	for name, level := range h.Levels {
		if level == nil {
			return fmt.Errorf("level %q is nil", name)
		}
		if level.Name == "" {
			level.Name = name
		}
		if level.Name != name {
			return fmt.Errorf("level %q declares mismatched name %q", name, level.Name)
		}
		if level.Parent == "" {
			continue
		}
		if _, ok := h.Levels[level.Parent]; !ok {
			return fmt.Errorf("level %q: parent %q not found", name, level.Parent)
		}
	}

	for name := range h.Levels {
		if _, err := h.Chain(name); err != nil {
			return err
		}
	}
	return nil
}

// Chain returns the ancestry of level, root first and level last.
func (h *HierarchyConfig) Chain(level string) ([]string, error) {
	if level == "" {
		return nil, errors.New("level name cannot be empty")
	}
	var chain []string
	seen := make(map[string]bool)
	for name := level; name != ""; {
		if seen[name] {
			return nil, fmt.Errorf("level %q: inheritance cycle through %q", level, name)
		}
		seen[name] = true
		cfg, ok := h.Levels[name]
		if !ok || cfg == nil {
			return nil, fmt.Errorf("level %q not found", name)
		}
		chain = append(chain, name)
		name = cfg.Parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Roots returns the names of levels without a parent, sorted.
func (h *HierarchyConfig) Roots() []string {
	var roots []string
	for name, level := range h.Levels {
		if level != nil && level.Parent == "" {
			roots = append(roots, name)
		}
	}
	sort.Strings(roots)
	return roots
}

// Children returns the direct sub-levels of parent, sorted.
func (h *HierarchyConfig) Children(parent string) []string {
	var children []string
	for name, level := range h.Levels {
		if level != nil && level.Parent == parent && parent != "" {
			children = append(children, name)
		}
	}
	sort.Strings(children)
	return children
}
