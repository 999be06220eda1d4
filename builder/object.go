// Package builder constructs protectedx instances from a HierarchyConfig at
// runtime. Each configured level gets its own guarded slot and writes its
// configured properties once its parent levels have been constructed.
package builder

import (
	"errors"
	"fmt"

	"github.com/comalice/protectedx"
	"github.com/comalice/protectedx/internal/primitives"
)

// Props is the guarded state shared by every level of an Object.
type Props = protectedx.Props

// ErrNotDelivered is returned when a level's slot is still empty after distribution.
var ErrNotDelivered = errors.New("guarded state not delivered")

type level struct {
	name    string
	config  *primitives.LevelConfig
	guarded protectedx.Slot[Props]
}

// Object is one instance of a configured level.
type Object struct {
	*protectedx.Container[Props]
	hierarchy string
	version   string
	levels    []*level // root first
}

// Instantiate constructs an instance of the named level. Levels are initialized
// root first; each one distributes before writing its properties.
func Instantiate(cfg *primitives.HierarchyConfig, name string, opts ...protectedx.Option) (*Object, error) {
	if cfg == nil {
		return nil, errors.New("nil hierarchy config")
	}
	chain, err := cfg.Chain(name)
	if err != nil {
		return nil, err
	}

	o := &Object{hierarchy: cfg.ID, version: primitives.ComputeVersion(cfg)}
	for _, n := range chain {
		o.levels = append(o.levels, &level{name: n, config: cfg.Levels[n]})
	}

	o.Container = protectedx.New(o.registrar(), opts...)
	for _, l := range o.levels {
		o.Distribute()
		state := l.guarded.Get()
		if state == nil {
			return nil, fmt.Errorf("level %q: %w", l.name, ErrNotDelivered)
		}
		for _, key := range l.config.SortedProps() {
			state.Set(key, l.config.Props[key])
		}
	}
	return o, nil
}

func (o *Object) registrar() protectedx.Registrar[Props] {
	reg := protectedx.Base[Props]()
	for _, l := range o.levels {
		reg = reg.Extend(l.name, l.guarded.Fill)
	}
	return reg
}

// Register is the public registration entry point: it adds one subscription per
// level to p, root first.
func (o *Object) Register(p *protectedx.Pending[Props]) {
	o.registrar()(p)
}

// Version returns the version of the hierarchy the object was built from.
func (o *Object) Version() string { return o.version }

// Hierarchy returns the ID of the hierarchy the object was built from.
func (o *Object) Hierarchy() string {
	return o.hierarchy
}

// Level returns the most-derived level name.
func (o *Object) Level() string {
	return o.levels[len(o.levels)-1].name
}

// Chain returns the level names, root first.
func (o *Object) Chain() []string {
	names := make([]string, len(o.levels))
	for i, l := range o.levels {
		names[i] = l.name
	}
	return names
}

// Views returns every level's slot, root first.
func (o *Object) Views() []*Props {
	views := make([]*Props, len(o.levels))
	for i, l := range o.levels {
		views[i] = l.guarded.Get()
	}
	return views
}

// Snapshot returns a copy of the guarded state as seen from the root level.
func (o *Object) Snapshot() map[string]any {
	return o.levels[0].guarded.Get().Snapshot()
}

// Assign sets a property on behalf of a caller holding auth.
func (o *Object) Assign(auth *Props, key string, value any) error {
	return o.Guarded(auth, func(p *Props) error {
		p.Set(key, value)
		return nil
	})
}

// Peek reads other's guarded state through ix, acting as the given level of o.
// The returned map is a copy.
func (o *Object) Peek(ix *protectedx.Index[Props], as string, other protectedx.Holder[Props]) (map[string]any, error) {
	state, err := ix.LookupAs(o, o.levels[0].guarded.Get(), as, other)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}
	return state.Snapshot(), nil
}
