package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/protectedx/internal/primitives"
)

// Report describes one constructed instance: its level chain and the guarded
// state every level of that chain sees.
type Report struct {
	Hierarchy string         `json:"hierarchy" yaml:"hierarchy"`
	Version   string         `json:"version,omitempty" yaml:"version,omitempty"`
	Level     string         `json:"level" yaml:"level"`
	Chain     []string       `json:"chain" yaml:"chain"`
	Pending   int            `json:"pending" yaml:"pending"`
	State     map[string]any `json:"state" yaml:"state"`
	Note      string         `json:"note,omitempty" yaml:"note,omitempty"`
}

// DefaultVisualizer renders hierarchies and reports.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the hierarchy. Levels in chain are
// highlighted, and each node lists the properties its level contributes.
func (v *DefaultVisualizer) ExportDOT(config primitives.HierarchyConfig, chain []string) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Hierarchy {
  rankdir=BT;
  node [shape=box, fontsize=10, style=rounded];
  edge [arrowhead=empty];
`)

	active := make(map[string]bool, len(chain))
	for _, name := range chain {
		active[name] = true
	}

	for _, root := range config.Roots() {
		renderLevel(&buf, root, config, active)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes a report to indented JSON.
func (v *DefaultVisualizer) ExportJSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ExportYAML serializes a report to YAML.
func (v *DefaultVisualizer) ExportYAML(r Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// dotLabel escapes text for a double-quoted DOT string. Newlines become DOT line breaks.
var dotLabel = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

func dotEscape(s string) string {
	return dotLabel.Replace(s)
}

// renderLevel renders a level node, its edge to the parent, then its sub-levels.
func renderLevel(buf *bytes.Buffer, name string, config primitives.HierarchyConfig, active map[string]bool) {
	level := config.Levels[name]

	label := dotEscape(name)
	for _, key := range level.SortedProps() {
		label += `\n` + dotEscape(fmt.Sprintf("%s=%v", key, level.Props[key]))
	}
	style := ""
	if active[name] {
		style = ` style="rounded,filled" fillcolor=lightgreen`
	}
	fmt.Fprintf(buf, "  %q [label=\"%s\"%s];\n", name, label, style)

	if level.Parent != "" {
		fmt.Fprintf(buf, "  %q -> %q;\n", name, level.Parent)
	}
	for _, child := range config.Children(name) {
		renderLevel(buf, child, config, active)
	}
}
