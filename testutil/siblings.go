package testutil

import "github.com/comalice/protectedx"

// Common is the shared base of the B1 and B2 branches. It sets levelA.
type Common struct {
	*protectedx.Container[Props]
	guarded protectedx.Slot[Props]
}

func (c *Common) registrar() protectedx.Registrar[Props] {
	return protectedx.Base[Props]().Extend("Common", c.guarded.Fill)
}

func initCommon(c *Common, reg protectedx.Registrar[Props]) {
	c.Container = protectedx.New(reg, protectedx.WithIndex(Peers))
	c.Distribute()
	c.guarded.Get().Set("levelA", "A")
}

// NewCommon constructs a Common.
func NewCommon() *Common {
	c := &Common{}
	initCommon(c, c.registrar())
	return c
}

// Views returns the guarded slot of every level, root first.
func (c *Common) Views() []*Props {
	return []*Props{c.guarded.Get()}
}

// B1 extends Common and sets levelB1.
type B1 struct {
	Common
	guarded protectedx.Slot[Props]
}

// NewB1 constructs a B1.
func NewB1() *B1 {
	b := &B1{}
	initCommon(&b.Common, b.Common.registrar().Extend("B1", b.guarded.Fill))
	b.Distribute()
	b.guarded.Get().Set("levelB1", "B1")
	return b
}

// Views returns the guarded slot of every level, root first.
func (b *B1) Views() []*Props {
	return append(b.Common.Views(), b.guarded.Get())
}

// B2 extends Common and sets levelB2.
type B2 struct {
	Common
	guarded protectedx.Slot[Props]
}

// NewB2 constructs a B2.
func NewB2() *B2 {
	b := &B2{}
	initCommon(&b.Common, b.Common.registrar().Extend("B2", b.guarded.Fill))
	b.Distribute()
	b.guarded.Get().Set("levelB2", "B2")
	return b
}

// Views returns the guarded slot of every level, root first.
func (b *B2) Views() []*Props {
	return append(b.Common.Views(), b.guarded.Get())
}

// Stranger shares the Props state type with the other families but no levels.
type Stranger struct {
	*protectedx.Container[Props]
	guarded protectedx.Slot[Props]
}

// NewStranger constructs a Stranger.
func NewStranger() *Stranger {
	s := &Stranger{}
	s.Container = protectedx.New(protectedx.Base[Props]().Extend("Stranger", s.guarded.Fill), protectedx.WithIndex(Peers))
	s.Distribute()
	return s
}

// PeerPropB tries to read propB from other while claiming the Mid level.
func (s *Stranger) PeerPropB(other protectedx.Holder[Props]) (any, error) {
	return peerProp(s.Container, s.guarded.Get(), "Mid", other, "propB")
}

// PeerAny reads any property from other with a plain, unchecked-level lookup.
func (s *Stranger) PeerAny(other protectedx.Holder[Props], key string) (any, error) {
	return protectedx.Property[Props, any](Peers, s, s.guarded.Get(), other, func(p *Props) any {
		v, _ := p.Get(key)
		return v
	})
}

// Auth exposes the Stranger's own guarded state, as an outsider would hold it.
func (s *Stranger) Auth() *Props {
	return s.guarded.Get()
}
