package protectedx

import "github.com/comalice/protectedx/internal/primitives"

// Subscription is one level's request to receive the guarded state.
type Subscription[S any] struct {
	Level   string
	Deliver func(*S) error
}

// Pending is the ordered list of subscriptions not yet fulfilled.
// The zero value is an empty list.
type Pending[S any] struct {
	q primitives.Queue[Subscription[S]]
}

// NewPending returns an empty pending list.
func NewPending[S any]() *Pending[S] {
	return &Pending[S]{}
}

// Add appends a subscription for level. A nil deliver is ignored.
func (p *Pending[S]) Add(level string, deliver func(*S) error) {
	if deliver == nil {
		return
	}
	p.q.Push(Subscription[S]{Level: level, Deliver: deliver})
}

// Len returns the number of pending subscriptions.
func (p *Pending[S]) Len() int {
	return p.q.Len()
}

// Levels returns the level of each pending subscription in registration order.
func (p *Pending[S]) Levels() []string {
	subs := p.q.Items()
	levels := make([]string, len(subs))
	for i, sub := range subs {
		levels[i] = sub.Level
	}
	return levels
}

// Offer hands state to every pending subscription in registration order and
// retires those that succeed. A subscription that returns an error or panics
// stays pending. Offer returns the number of subscriptions retired.
func (p *Pending[S]) Offer(state *S) int {
	return p.q.Sweep(func(sub Subscription[S]) bool {
		return deliver(sub, state)
	})
}

func deliver[S any](sub Subscription[S], state *S) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return sub.Deliver(state) == nil
}

// Registrar registers the subscriptions of a level and all of its ancestors.
type Registrar[S any] func(*Pending[S])

// Base returns the root registrar, which registers nothing.
func Base[S any]() Registrar[S] {
	return func(*Pending[S]) {}
}

// Extend returns a registrar for a sub-level: it runs r first, then adds the
// sub-level's own subscription.
func (r Registrar[S]) Extend(level string, deliver func(*S) error) Registrar[S] {
	return func(p *Pending[S]) {
		if r != nil {
			r(p)
		}
		p.Add(level, deliver)
	}
}
