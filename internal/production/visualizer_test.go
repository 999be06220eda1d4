// Tests for DefaultVisualizer DOT export and report serialization.
package production

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/comalice/protectedx/internal/primitives"
)

func TestDefaultVisualizer_ExportDOT(t *testing.T) {
	v := &DefaultVisualizer{}
	cfg, err := ParseHierarchyYAML([]byte(siblingsYAML))
	if err != nil {
		t.Fatal(err)
	}

	dot := v.ExportDOT(*cfg, []string{"Common", "B1"})

	if !strings.HasPrefix(dot, "digraph Hierarchy {") {
		t.Error("Missing DOT header")
	}
	for _, want := range []string{
		`"B1" -> "Common";`,
		`"B2" -> "Common";`,
		`levelA=A`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "fillcolor=lightgreen"); got != 2 {
		t.Errorf("got %d highlighted levels want 2", got)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("Missing DOT footer")
	}
}

func TestDefaultVisualizer_ExportDOT_NoChain(t *testing.T) {
	v := &DefaultVisualizer{}
	cfg := primitives.HierarchyConfig{
		ID:     "single",
		Levels: map[string]*primitives.LevelConfig{"Root": primitives.NewLevelConfig("Root", "")},
	}
	dot := v.ExportDOT(cfg, nil)
	if !strings.Contains(dot, `"Root" [label="Root"];`) {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
	if strings.Contains(dot, "fillcolor") {
		t.Error("no level should be highlighted")
	}
}

func TestDefaultVisualizer_ExportDOT_EscapesLabels(t *testing.T) {
	v := &DefaultVisualizer{}
	root := primitives.NewLevelConfig("Root", "")
	root.Props["motto"] = `say "hi"`
	root.Props["path"] = `C:\tmp`
	root.Props["note"] = "two\nlines"
	cfg := primitives.HierarchyConfig{
		ID:     "quoted",
		Levels: map[string]*primitives.LevelConfig{"Root": root},
	}

	dot := v.ExportDOT(cfg, nil)

	want := `"Root" [label="Root\nmotto=say \"hi\"\nnote=two\nlines\npath=C:\\tmp"];`
	if !strings.Contains(dot, want) {
		t.Errorf("DOT missing %s:\n%s", want, dot)
	}
	for _, line := range strings.Split(strings.TrimSpace(dot), "\n") {
		unescaped := strings.Count(line, `"`) - strings.Count(line, `\"`)
		if unescaped%2 != 0 {
			t.Errorf("unbalanced quotes in %s", line)
		}
	}
}

func TestDefaultVisualizer_ExportReport(t *testing.T) {
	v := &DefaultVisualizer{}
	r := Report{
		Hierarchy: "three",
		Level:     "Leaf",
		Chain:     []string{"Root", "Mid", "Leaf"},
		State:     map[string]any{"propB": "B", "propC": "C"},
	}

	data, err := v.ExportJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON Report
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatal(err)
	}
	if fromJSON.State["propC"] != "C" || len(fromJSON.Chain) != 3 {
		t.Errorf("JSON report mismatch: %+v", fromJSON)
	}

	data, err = v.ExportYAML(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "level: Leaf") {
		t.Errorf("YAML report missing level:\n%s", data)
	}
	if strings.Contains(string(data), "note:") {
		t.Error("empty note should be omitted")
	}
	var fromYAML Report
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatal(err)
	}
	if fromYAML.State["propB"] != "B" {
		t.Errorf("YAML report mismatch: %+v", fromYAML)
	}
}
