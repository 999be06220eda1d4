package protectedx

import (
	"maps"
	"slices"
)

// Props is an open-ended guarded state: a bag of named properties that each
// level of a hierarchy may contribute to. The zero value is ready to use.
type Props struct {
	values map[string]any
}

// Set stores value under key.
func (p *Props) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Props) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is set.
func (p *Props) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the property names in lexical order.
func (p *Props) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Snapshot returns a copy of the properties. Modifying it does not affect p.
func (p *Props) Snapshot() map[string]any {
	snap := make(map[string]any, len(p.values))
	maps.Copy(snap, p.values)
	return snap
}
