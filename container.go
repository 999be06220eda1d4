package protectedx

import (
	"fmt"
	"reflect"
	"slices"
)

// stateCell gives zero-size state types a distinct address per container.
type stateCell[S any] struct {
	state S
	_     byte
}

// Container owns the guarded state of one instance and brokers it to the
// subscriptions registered by each level of the instance's hierarchy.
type Container[S any] struct {
	state   *S
	pending *Pending[S]
	levels  []string
	opts    options
}

// Holder is implemented by any type that embeds *Container[S].
type Holder[S any] interface {
	guardedContainer() *Container[S]
}

// New creates an empty guarded state and runs reg to collect the subscriptions
// of every level. It does not distribute; each level's constructor calls
// Distribute once its parent has been constructed.
func New[S any](reg Registrar[S], opts ...Option) *Container[S] {
	c := &Container[S]{
		state:   &new(stateCell[S]).state,
		pending: NewPending[S](),
		opts:    buildOptions(opts),
	}
	if reg != nil {
		reg(c.pending)
	}
	c.levels = c.pending.Levels()

	if c.opts.index != nil {
		ix, ok := c.opts.index.(*Index[S])
		if !ok {
			panic(fmt.Sprintf("protectedx: index %T does not hold %s", c.opts.index, reflect.TypeFor[S]()))
		}
		ix.track(c)
	}

	c.opts.logger.Debug("guarded state created",
		"type", reflect.TypeFor[S]().String(),
		"levels", c.levels,
	)
	return c
}

func (c *Container[S]) guardedContainer() *Container[S] {
	return c
}

// Distribute offers the guarded state to every pending subscription and returns
// how many were fulfilled. Failed subscriptions stay pending without error.
func (c *Container[S]) Distribute() int {
	n := c.pending.Offer(c.state)
	c.opts.logger.Debug("guarded state distributed", "delivered", n)
	return n
}

// Authorize checks that auth is this container's guarded state.
func (c *Container[S]) Authorize(auth *S) error {
	if c == nil || auth == nil || auth != c.state {
		if c != nil {
			c.opts.logger.Debug("guarded access denied")
		}
		return fmt.Errorf("protectedx: %w", ErrUnauthorized)
	}
	return nil
}

// Guarded runs body with the guarded state once auth has been authorized.
// body never runs when authorization fails.
func (c *Container[S]) Guarded(auth *S, body func(*S) error) error {
	if err := c.Authorize(auth); err != nil {
		return err
	}
	if body == nil {
		return nil
	}
	return body(c.state)
}

// PendingLen returns the number of subscriptions still waiting for the state.
func (c *Container[S]) PendingLen() int {
	return c.pending.Len()
}

// Levels returns the levels that registered a subscription, root first.
func (c *Container[S]) Levels() []string {
	return slices.Clone(c.levels)
}

// HasLevel reports whether level registered a subscription on this container.
func (c *Container[S]) HasLevel(level string) bool {
	return slices.Contains(c.levels, level)
}

// containerOf unwraps h, treating nil holders and nil pointers as absent.
func containerOf[S any](h Holder[S]) *Container[S] {
	if h == nil {
		return nil
	}
	if v := reflect.ValueOf(h); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return h.guardedContainer()
}
