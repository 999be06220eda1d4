// Package protectedx emulates "protected" instance state: state that every level
// of a type hierarchy can reach, and that code outside the hierarchy cannot.
//
// A root level owns a Container holding one guarded state value. Each level of the
// hierarchy declares its own write-once Slot and registers one subscription for it
// through a Registrar. After delegating to its parent constructor, every level
// calls Distribute, which hands the guarded state to each pending subscription.
//
// # Example Usage
//
//	type Props struct{ B, C string }
//
//	type Mid struct {
//		*protectedx.Container[Props]
//		guarded protectedx.Slot[Props]
//	}
//
//	func (m *Mid) registrar() protectedx.Registrar[Props] {
//		return protectedx.Base[Props]().Extend("Mid", m.guarded.Fill)
//	}
//
//	func NewMid() *Mid {
//		m := &Mid{}
//		m.Container = protectedx.New(m.registrar())
//		m.Distribute()
//		m.guarded.Get().B = "B"
//		return m
//	}
//
// A sub-level wraps its parent's registrar with Extend, so the parent's
// subscription is always registered first.
//
// # Pseudo-protected Methods
//
// A method meant for the hierarchy only takes the caller's guarded state as its
// first argument and checks it with Container.Authorize or Container.Guarded. A
// mismatch returns an error wrapping ErrUnauthorized.
//
// # Cross-instance Lookup
//
// An Index associates containers with their guarded state without keeping either
// alive. Index.Lookup lets one instance read another's state after proving its own
// membership; Index.LookupAs additionally checks that the target declares the
// caller's level.
//
// # Caveats
//
// None of this is a security boundary. Guarded state is an ordinary pointer once
// distributed, and level names are plain strings.
//
// Distribute swallows subscription failures: a subscription that returns an error
// or panics stays pending and is retried only by the next Distribute call. This is
// an accepted weakness, not a pattern to copy.
//
// Containers are not safe for concurrent use.
package protectedx
