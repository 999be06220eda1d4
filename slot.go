package protectedx

// Slot is a level-local, write-once reference to guarded state.
// The zero value is an empty slot.
type Slot[S any] struct {
	state *S
}

// Fill stores state if the slot is empty. Later fills are no-ops, so a
// populated slot keeps its first state for life. Filling with nil fails with
// ErrNilState and leaves the subscription pending.
func (s *Slot[S]) Fill(state *S) error {
	if state == nil {
		return ErrNilState
	}
	if s.state == nil {
		s.state = state
	}
	return nil
}

// Get returns the stored state, or nil before the slot is filled.
func (s *Slot[S]) Get() *S {
	return s.state
}

// Filled reports whether the slot holds a state.
func (s *Slot[S]) Filled() bool {
	return s.state != nil
}
