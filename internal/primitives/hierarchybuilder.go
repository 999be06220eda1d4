package primitives

// HierarchyBuilder builds a HierarchyConfig fluently.
type HierarchyBuilder struct {
	config *HierarchyConfig
}

// NewHierarchyBuilder creates a new HierarchyBuilder.
func NewHierarchyBuilder(id string) *HierarchyBuilder {
	return &HierarchyBuilder{
		config: &HierarchyConfig{ID: id, Levels: make(map[string]*LevelConfig)},
	}
}

// Root starts a level with no parent.
func (b *HierarchyBuilder) Root(name string) *LevelBuilder {
	return b.level(name, "")
}

func (b *HierarchyBuilder) level(name, parent string) *LevelBuilder {
	l, ok := b.config.Levels[name]
	if !ok {
		l = NewLevelConfig(name, parent)
		b.config.Levels[name] = l
	}
	return &LevelBuilder{level: l, hb: b}
}

// LevelBuilder configures one level.
type LevelBuilder struct {
	level *LevelConfig
	hb    *HierarchyBuilder
}

// Prop records a property the level writes into the guarded state.
func (lb *LevelBuilder) Prop(key string, value any) *LevelBuilder {
	lb.level.Props[key] = value
	return lb
}

// Extend starts a sub-level of the current level.
func (lb *LevelBuilder) Extend(name string) *LevelBuilder {
	return lb.hb.level(name, lb.level.Name)
}

// Up returns to the parent level. A root returns itself.
func (lb *LevelBuilder) Up() *LevelBuilder {
	if lb.level.Parent == "" {
		return lb
	}
	return &LevelBuilder{level: lb.hb.config.Levels[lb.level.Parent], hb: lb.hb}
}

// Build validates and returns the config.
func (b *HierarchyBuilder) Build() (HierarchyConfig, error) {
	if err := b.config.Validate(); err != nil {
		return HierarchyConfig{}, err
	}
	return *b.config, nil
}
