// Package benchmarks provides cross-instance lookup benchmarks.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/protectedx"
	"github.com/comalice/protectedx/builder"
	"github.com/comalice/protectedx/testutil"
)

func BenchmarkLookupAs(b *testing.B) {
	mid := testutil.NewMid()
	leaf := testutil.NewLeaf()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mid.PeerPropB(leaf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIndexPopulation(b *testing.B) {
	cfg := GenWideConfig(32)
	ix := protectedx.NewIndex[protectedx.Props]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Instantiate(&cfg, fmt.Sprintf("W%d", i%32), protectedx.WithIndex(ix)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadAndInstantiate(b *testing.B) {
	src := GenDeepConfig(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg, err := RoundTripYAML(src)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := builder.Instantiate(&cfg, "L7"); err != nil {
			b.Fatal(err)
		}
	}
}

func TestGenConfigs(t *testing.T) {
	deep := GenDeepConfig(5)
	chain, err := deep.Chain("L4")
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != 5 || chain[0] != "L0" {
		t.Errorf("got chain %v", chain)
	}

	wide := GenWideConfig(3)
	if got := wide.Children("Root"); len(got) != 3 {
		t.Errorf("got children %v want 3", got)
	}

	back, err := RoundTripYAML(deep)
	if err != nil {
		t.Fatal(err)
	}
	obj, err := builder.Instantiate(&back, "L4")
	if err != nil {
		t.Fatal(err)
	}
	if got := obj.Snapshot()["p4"]; got != 4 {
		t.Errorf("got p4=%v want 4", got)
	}
}
