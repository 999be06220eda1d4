// Package testutil provides small hierarchies built on protectedx for tests,
// benchmarks and examples.
//
// Two families share the Peers index:
//
//	Root -> Mid -> Leaf     Mid sets propB, Leaf sets propC
//	Common -> B1, B2        Common sets levelA, B1 sets levelB1, B2 sets levelB2
//
// Each level keeps its own guarded slot; the same field name is shadowed at every
// embedding depth, so l.guarded and l.Mid.guarded are distinct slots.
package testutil

import (
	"github.com/comalice/protectedx"
)

type Props = protectedx.Props

// Peers records every instance built by this package.
var Peers = protectedx.NewIndex[Props]()

// Root is the base of the Root -> Mid -> Leaf family. It contributes no properties.
type Root struct {
	*protectedx.Container[Props]
	guarded protectedx.Slot[Props]
}

func (r *Root) registrar() protectedx.Registrar[Props] {
	return protectedx.Base[Props]().Extend("Root", r.guarded.Fill)
}

func initRoot(r *Root, reg protectedx.Registrar[Props], opts []protectedx.Option) {
	opts = append([]protectedx.Option{protectedx.WithIndex(Peers)}, opts...)
	r.Container = protectedx.New(reg, opts...)
	r.Distribute()
}

// NewRoot constructs a Root.
func NewRoot(opts ...protectedx.Option) *Root {
	r := &Root{}
	initRoot(r, r.registrar(), opts)
	return r
}

// Register is the public registration entry point.
func (r *Root) Register(p *protectedx.Pending[Props]) {
	r.registrar()(p)
}

// Views returns the guarded slot of every level, root first.
func (r *Root) Views() []*Props {
	return []*Props{r.guarded.Get()}
}

// Label sets the "label" property. Callers must present the instance's
// guarded state.
func (r *Root) Label(auth *Props, label string) error {
	return r.Guarded(auth, func(p *Props) error {
		p.Set("label", label)
		return nil
	})
}

// Relabel sets the label through the Root level's own slot.
func (r *Root) Relabel(label string) error {
	return r.Label(r.guarded.Get(), label)
}

// PeerLabel reads another instance's label as a Root-level caller.
func (r *Root) PeerLabel(other protectedx.Holder[Props]) (any, error) {
	return peerProp(r.Container, r.guarded.Get(), "Root", other, "label")
}

// Mid extends Root and sets propB.
type Mid struct {
	Root
	guarded protectedx.Slot[Props]
}

func (m *Mid) registrar() protectedx.Registrar[Props] {
	return m.Root.registrar().Extend("Mid", m.guarded.Fill)
}

func initMid(m *Mid, reg protectedx.Registrar[Props], opts []protectedx.Option) {
	initRoot(&m.Root, reg, opts)
	m.Distribute()
	m.guarded.Get().Set("propB", "B")
}

// NewMid constructs a Mid.
func NewMid(opts ...protectedx.Option) *Mid {
	m := &Mid{}
	initMid(m, m.registrar(), opts)
	return m
}

// Register is the public registration entry point.
func (m *Mid) Register(p *protectedx.Pending[Props]) {
	m.registrar()(p)
}

// Views returns the guarded slot of every level, root first.
func (m *Mid) Views() []*Props {
	return append(m.Root.Views(), m.guarded.Get())
}

// Relabel sets the label through the Mid level's own slot.
func (m *Mid) Relabel(label string) error {
	return m.Label(m.guarded.Get(), label)
}

// PeerPropB reads another instance's propB as a Mid-level caller.
func (m *Mid) PeerPropB(other protectedx.Holder[Props]) (any, error) {
	return peerProp(m.Container, m.guarded.Get(), "Mid", other, "propB")
}

// Leaf extends Mid and sets propC.
type Leaf struct {
	Mid
	guarded protectedx.Slot[Props]
}

func (l *Leaf) registrar() protectedx.Registrar[Props] {
	return l.Mid.registrar().Extend("Leaf", l.guarded.Fill)
}

// NewLeaf constructs a Leaf.
func NewLeaf(opts ...protectedx.Option) *Leaf {
	l := &Leaf{}
	initMid(&l.Mid, l.registrar(), opts)
	l.Distribute()
	l.guarded.Get().Set("propC", "C")
	return l
}

// Register is the public registration entry point.
func (l *Leaf) Register(p *protectedx.Pending[Props]) {
	l.registrar()(p)
}

// Views returns the guarded slot of every level, root first.
func (l *Leaf) Views() []*Props {
	return append(l.Mid.Views(), l.guarded.Get())
}

// Relabel sets the label through the Leaf level's own slot.
func (l *Leaf) Relabel(label string) error {
	return l.Label(l.guarded.Get(), label)
}

// PeerPropC reads another instance's propC as a Leaf-level caller.
func (l *Leaf) PeerPropC(other protectedx.Holder[Props]) (any, error) {
	return peerProp(l.Container, l.guarded.Get(), "Leaf", other, "propC")
}

func peerProp(self *protectedx.Container[Props], auth *Props, level string, other protectedx.Holder[Props], key string) (any, error) {
	state, err := Peers.LookupAs(self, auth, level, other)
	if err != nil || state == nil {
		return nil, err
	}
	v, _ := state.Get(key)
	return v, nil
}
