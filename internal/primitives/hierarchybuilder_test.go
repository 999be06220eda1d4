package primitives

import (
	"reflect"
	"testing"
)

func TestHierarchyBuilder(t *testing.T) {
	cfg, err := NewHierarchyBuilder("three").
		Root("Root").
		Extend("Mid").Prop("propB", "B").
		Extend("Leaf").Prop("propC", "C").
		hb.Build()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ID != "three" {
		t.Errorf("got ID=%q want three", cfg.ID)
	}
	chain, err := cfg.Chain("Leaf")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Root", "Mid", "Leaf"}; !reflect.DeepEqual(chain, want) {
		t.Errorf("got chain %v want %v", chain, want)
	}
	if got := cfg.Levels["Mid"].Props["propB"]; got != "B" {
		t.Errorf("Mid propB got %v want B", got)
	}
}

func TestHierarchyBuilderUp(t *testing.T) {
	b := NewHierarchyBuilder("siblings")
	root := b.Root("Root").Prop("levelA", "A")
	root.Extend("B1").Prop("levelB1", "B1").Up().Extend("B2").Prop("levelB2", "B2")

	cfg, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Children("Root"), []string{"B1", "B2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got children %v want %v", got, want)
	}
	if same := root.Up(); same.level != root.level {
		t.Error("Up on a root must return the root")
	}
}

func TestHierarchyBuilderEmptyFails(t *testing.T) {
	if _, err := NewHierarchyBuilder("").Build(); err == nil {
		t.Error("expected validation error")
	}
}
