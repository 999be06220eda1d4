package protectedx

import "errors"

var (
	// ErrUnauthorized reports a guarded call made with a state that is not the callee's.
	ErrUnauthorized = errors.New("unauthorized: guarded state mismatch")
	// ErrIncompatibleType reports a cross-instance call against a target that does not declare the caller's level.
	ErrIncompatibleType = errors.New("incompatible type: level not declared")
	// ErrNilState reports a Slot filled with a nil state; the subscription stays pending.
	ErrNilState = errors.New("nil guarded state")
)
