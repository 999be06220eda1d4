package protectedx

import (
	"fmt"

	"github.com/comalice/protectedx/internal/core"
)

// Index associates containers with their guarded state so one instance can reach
// another's. Entries never keep an instance alive and are dropped after the
// container is garbage collected. Typically declared once per state type at
// package level.
type Index[S any] struct {
	reg *core.Registry[Container[S], S]
}

// NewIndex creates an empty Index.
func NewIndex[S any]() *Index[S] {
	return &Index[S]{reg: core.NewRegistry[Container[S], S]()}
}

func (ix *Index[S]) track(c *Container[S]) {
	ix.reg.Register(c, c.state)
}

// Len returns the number of live entries.
func (ix *Index[S]) Len() int {
	return ix.reg.Len()
}

// Lookup returns other's guarded state. auth must be the caller's own guarded
// state or the call fails with ErrUnauthorized. A target never recorded in the
// index yields nil and no error.
func (ix *Index[S]) Lookup(caller Holder[S], auth *S, other Holder[S]) (*S, error) {
	if err := containerOf(caller).Authorize(auth); err != nil {
		return nil, err
	}
	target := containerOf(other)
	if target == nil {
		return nil, nil
	}
	state, ok := ix.reg.Get(target)
	if !ok {
		return nil, nil
	}
	return state, nil
}

// LookupAs is Lookup with an advisory compatibility check: both caller and target
// must have registered level, otherwise the call fails with ErrIncompatibleType.
// Level names are plain strings and prove nothing.
func (ix *Index[S]) LookupAs(caller Holder[S], auth *S, level string, other Holder[S]) (*S, error) {
	self := containerOf(caller)
	if err := self.Authorize(auth); err != nil {
		return nil, err
	}
	if !self.HasLevel(level) {
		return nil, fmt.Errorf("protectedx: caller does not declare level %q: %w", level, ErrIncompatibleType)
	}
	target := containerOf(other)
	if target == nil {
		return nil, nil
	}
	if !target.HasLevel(level) {
		return nil, fmt.Errorf("protectedx: target does not declare level %q: %w", level, ErrIncompatibleType)
	}
	state, ok := ix.reg.Get(target)
	if !ok {
		return nil, nil
	}
	return state, nil
}

// Property reads a single value from other's guarded state rather than exposing
// the whole state. Authorization follows Lookup. An absent target yields the
// zero value.
func Property[S, V any](ix *Index[S], caller Holder[S], auth *S, other Holder[S], pick func(*S) V) (V, error) {
	var zero V
	state, err := ix.Lookup(caller, auth, other)
	if err != nil || state == nil {
		return zero, err
	}
	return pick(state), nil
}
