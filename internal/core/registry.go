// Package core holds the runtime pieces shared by protectedx containers.
package core

import (
	"runtime"
	"sync"
	"weak"
)

// Registry associates keys with values without keeping either alive.
//
// Entries are evicted by a runtime cleanup once the key is collected. A value
// that is collected before its key reads as absent. Safe for concurrent use;
// cleanups run on a runtime goroutine.
type Registry[K, V any] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[K]]weak.Pointer[V]
}

// NewRegistry creates an empty Registry.
func NewRegistry[K, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[weak.Pointer[K]]weak.Pointer[V]),
	}
}

// Register associates key with val. Registering a key again replaces its value.
// Nil keys are ignored.
func (r *Registry[K, V]) Register(key *K, val *V) {
	if key == nil {
		return
	}
	wk := weak.Make(key)

	r.mu.Lock()
	_, existed := r.entries[wk]
	r.entries[wk] = weak.Make(val)
	r.mu.Unlock()

	if !existed {
		runtime.AddCleanup(key, r.evict, wk)
	}
}

// Get returns the value associated with key.
func (r *Registry[K, V]) Get(key *K) (*V, bool) {
	if key == nil {
		return nil, false
	}
	// weak.Make attaches a handle to key for its lifetime, even when key was
	// never registered. Callers look up a bounded set of instances.
	r.mu.Lock()
	wv, ok := r.entries[weak.Make(key)]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	v := wv.Value()
	if v == nil {
		return nil, false
	}
	return v, true
}

// Len returns the number of entries whose key has not been collected. Entries
// awaiting their cleanup are not counted.
func (r *Registry[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for wk := range r.entries {
		if wk.Value() != nil {
			n++
		}
	}
	return n
}

func (r *Registry[K, V]) evict(wk weak.Pointer[K]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, wk)
}
