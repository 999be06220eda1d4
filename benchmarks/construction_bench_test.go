// Package benchmarks provides construction and distribution benchmarks.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/protectedx"
	"github.com/comalice/protectedx/builder"
	"github.com/comalice/protectedx/testutil"
)

func BenchmarkNewLeaf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = testutil.NewLeaf()
	}
}

func BenchmarkInstantiateDepth(b *testing.B) {
	for _, depth := range []int{1, 4, 16, 64} {
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			cfg := GenDeepConfig(depth)
			leaf := fmt.Sprintf("L%d", depth-1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := builder.Instantiate(&cfg, leaf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDistributeNoop(b *testing.B) {
	leaf := testutil.NewLeaf()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		leaf.Distribute()
	}
}

func BenchmarkDistributeFailing(b *testing.B) {
	for _, n := range []int{1, 16, 256} {
		b.Run(fmt.Sprintf("pending=%d", n), func(b *testing.B) {
			reg := protectedx.Base[protectedx.Props]()
			for i := 0; i < n; i++ {
				reg = reg.Extend(fmt.Sprintf("F%d", i), func(*protectedx.Props) error {
					return protectedx.ErrNilState
				})
			}
			c := protectedx.New(reg)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Distribute()
			}
			if c.PendingLen() != n {
				b.Fatalf("got %d pending want %d", c.PendingLen(), n)
			}
		})
	}
}
