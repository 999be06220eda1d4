package protectedx_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/comalice/protectedx"
	"github.com/comalice/protectedx/testutil"
)

func TestCrossTypeLookup(t *testing.T) {
	root := testutil.NewRoot()
	mid := testutil.NewMid()
	leaf := testutil.NewLeaf()
	stranger := testutil.NewStranger()

	// Ancestor caller against a more-derived target.
	got, err := mid.PeerPropB(leaf)
	if err != nil {
		t.Fatalf("Mid -> Leaf: %v", err)
	}
	if got != "B" {
		t.Errorf("Mid -> Leaf got %v want B", got)
	}

	if err := leaf.Relabel("leaf"); err != nil {
		t.Fatal(err)
	}
	got, err = root.PeerLabel(leaf)
	if err != nil || got != "leaf" {
		t.Errorf("Root -> Leaf got %v, %v want leaf", got, err)
	}

	// Same level.
	if got, err := leaf.PeerPropC(testutil.NewLeaf()); err != nil || got != "C" {
		t.Errorf("Leaf -> Leaf got %v, %v want C", got, err)
	}

	tests := []struct {
		name string
		call func() (any, error)
	}{
		{"more-derived caller", func() (any, error) { return leaf.PeerPropC(mid) }},
		{"Mid caller against Root", func() (any, error) { return mid.PeerPropB(root) }},
		{"unrelated caller", func() (any, error) { return stranger.PeerPropB(leaf) }},
		{"sibling family", func() (any, error) { return mid.PeerPropB(testutil.NewB1()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.call()
			if !errors.Is(err, protectedx.ErrIncompatibleType) {
				t.Errorf("got %v, %v want ErrIncompatibleType", v, err)
			}
		})
	}
}

func TestLookupRequiresOwnState(t *testing.T) {
	a := testutil.NewLeaf()
	b := testutil.NewLeaf()

	if _, err := testutil.Peers.Lookup(a, b.Views()[0], b); !errors.Is(err, protectedx.ErrUnauthorized) {
		t.Errorf("borrowed auth: got %v want ErrUnauthorized", err)
	}
	if _, err := testutil.Peers.Lookup(a, nil, b); !errors.Is(err, protectedx.ErrUnauthorized) {
		t.Errorf("nil auth: got %v want ErrUnauthorized", err)
	}
	if _, err := testutil.Peers.Lookup(nil, a.Views()[0], b); !errors.Is(err, protectedx.ErrUnauthorized) {
		t.Errorf("nil caller: got %v want ErrUnauthorized", err)
	}

	state, err := testutil.Peers.Lookup(a, a.Views()[0], b)
	if err != nil {
		t.Fatal(err)
	}
	if state != b.Views()[0] {
		t.Error("Lookup returned the wrong state")
	}
}

func TestLookupAbsentTarget(t *testing.T) {
	a := testutil.NewLeaf()
	auth := a.Views()[0]

	var missing *testutil.Leaf
	state, err := testutil.Peers.Lookup(a, auth, missing)
	if err != nil || state != nil {
		t.Errorf("nil target: got %v, %v want nil, nil", state, err)
	}

	// A container never recorded in the index.
	loose := protectedx.New[protectedx.Props](nil)
	state, err = testutil.Peers.Lookup(a, auth, loose)
	if err != nil || state != nil {
		t.Errorf("unindexed target: got %v, %v want nil, nil", state, err)
	}
}

func TestProperty(t *testing.T) {
	stranger := testutil.NewStranger()
	leaf := testutil.NewLeaf()

	got, err := stranger.PeerAny(leaf, "propC")
	if err != nil || got != "C" {
		t.Errorf("got %v, %v want C", got, err)
	}

	n, err := protectedx.Property[protectedx.Props, int](testutil.Peers, leaf.Container, testutil.NewLeaf().Views()[0], stranger.Container, func(p *protectedx.Props) int {
		return len(p.Keys())
	})
	if !errors.Is(err, protectedx.ErrUnauthorized) {
		t.Errorf("got %v, %v want ErrUnauthorized", n, err)
	}
}

func TestIndexReleasesCollectedInstances(t *testing.T) {
	ix := protectedx.NewIndex[protectedx.Props]()
	func() {
		for i := 0; i < 8; i++ {
			var slot protectedx.Slot[protectedx.Props]
			c := protectedx.New(protectedx.Base[protectedx.Props]().Extend("Tmp", slot.Fill), protectedx.WithIndex(ix))
			c.Distribute()
		}
	}()

	deadline := time.Now().Add(5 * time.Second)
	for ix.Len() > 0 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	if n := ix.Len(); n != 0 {
		t.Errorf("index still holds %d entries after GC", n)
	}
}
