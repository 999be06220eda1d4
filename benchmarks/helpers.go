// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/protectedx/internal/primitives"
)

// GenDeepConfig creates a single chain of depth levels, L0 -> L1 -> ... , each
// contributing one property.
func GenDeepConfig(depth int) primitives.HierarchyConfig {
	if depth < 1 {
		depth = 1
	}
	b := primitives.NewHierarchyBuilder(fmt.Sprintf("deep_%d", depth))
	lb := b.Root("L0").Prop("p0", 0)
	for i := 1; i < depth; i++ {
		lb = lb.Extend(fmt.Sprintf("L%d", i)).Prop(fmt.Sprintf("p%d", i), i)
	}
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// GenWideConfig creates one root with width direct sub-levels.
func GenWideConfig(width int) primitives.HierarchyConfig {
	if width < 1 {
		width = 1
	}
	b := primitives.NewHierarchyBuilder(fmt.Sprintf("wide_%d", width))
	root := b.Root("Root").Prop("shared", true)
	for i := 0; i < width; i++ {
		root.Extend(fmt.Sprintf("W%d", i)).Prop("branch", i)
	}
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// RoundTripYAML encodes and decodes a config, as loading it from disk would.
func RoundTripYAML(cfg primitives.HierarchyConfig) (primitives.HierarchyConfig, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return primitives.HierarchyConfig{}, err
	}
	var out primitives.HierarchyConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return primitives.HierarchyConfig{}, err
	}
	return out, out.Validate()
}
