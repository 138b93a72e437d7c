package note

import (
	"strings"
	"testing"

	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

func TestExtractNodeNote(t *testing.T) {
	content := `---
type: node
aliases: [CA, Concept_A]
describe: This is Concept A
tags: [concept, test]
---
This is the content of Concept A. It links to [[Concept B]] and [[Event X|the event]].`

	n, warnings := Extract(content, "Concept A")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if n.ID != "Concept A" {
		t.Errorf("id = %q", n.ID)
	}
	if n.Kind != KindNode {
		t.Errorf("kind = %v, want KindNode", n.Kind)
	}
	if !strings.HasPrefix(n.Body, "This is the content") {
		t.Errorf("body = %q", n.Body)
	}
	if _, ok := n.Fields["type"]; ok {
		t.Error("type should be lifted out of fields")
	}

	want := []graph.Ref{
		{Target: "Concept B", Display: "Concept B"},
		{Target: "Event X", Display: "the event"},
	}
	if len(n.Refs) != len(want) {
		t.Fatalf("refs = %+v, want %+v", n.Refs, want)
	}
	for i := range want {
		if n.Refs[i] != want[i] {
			t.Errorf("ref[%d] = %+v, want %+v", i, n.Refs[i], want[i])
		}
	}
}

func TestExtractPlainNote(t *testing.T) {
	content := "This is a plain note without frontmatter.\nIt links to [[Concept A]].\n"

	n, warnings := Extract(content, "Plain Note")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if n.Kind != KindUnknown {
		t.Errorf("kind = %v, want KindUnknown", n.Kind)
	}
	if len(n.Fields) != 0 {
		t.Errorf("fields = %v, want empty", n.Fields)
	}
	if n.Body != content {
		t.Errorf("body = %q, want the full text", n.Body)
	}
	if len(n.Refs) != 1 || n.Refs[0].Target != "Concept A" {
		t.Errorf("refs = %+v", n.Refs)
	}
}

func TestExtractInvalidFrontmatter(t *testing.T) {
	content := `---
type: node
bad: [
  item1
---
This note has invalid YAML.`

	n, warnings := Extract(content, "Invalid")
	if len(warnings) != 1 || warnings[0].Code != graph.WarnFrontmatter {
		t.Fatalf("warnings = %v, want one %s", warnings, graph.WarnFrontmatter)
	}

	// Degrades to empty header; the body after the block survives.
	if n.Kind != KindUnknown {
		t.Errorf("kind = %v, want KindUnknown", n.Kind)
	}
	if len(n.Fields) != 0 {
		t.Errorf("fields = %v, want empty", n.Fields)
	}
	if n.Body != "This note has invalid YAML." {
		t.Errorf("body = %q", n.Body)
	}
}

func TestExtractSkipsCodeRegions(t *testing.T) {
	content := "Real ref [[Alpha]].\n" +
		"```\n" +
		"fenced [[Beta]]\n" +
		"```\n" +
		"inline `[[Gamma]]` span and [[Delta]].\n"

	n, _ := Extract(content, "code")

	var targets []string
	for _, r := range n.Refs {
		targets = append(targets, r.Target)
	}
	want := []string{"Alpha", "Delta"}
	if len(targets) != len(want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("targets = %v, want %v", targets, want)
		}
	}
}

func TestExtractOutline(t *testing.T) {
	content := `---
type: node
---
# Title

intro

## Details

body`

	n, _ := Extract(content, "outlined")

	want := []graph.Heading{
		{Level: 1, Text: "Title"},
		{Level: 2, Text: "Details"},
	}
	if len(n.Outline) != len(want) {
		t.Fatalf("outline = %+v, want %+v", n.Outline, want)
	}
	for i := range want {
		if n.Outline[i] != want[i] {
			t.Errorf("outline[%d] = %+v, want %+v", i, n.Outline[i], want[i])
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"node", KindNode},
		{"event", KindEvent},
		{"edge", KindEdge},
		{"", KindUnknown},
		{"banana", KindUnknown},
	}

	for _, tt := range tests {
		if got := KindOf(tt.in); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if !KindNode.IsNode() || !KindEvent.IsNode() {
		t.Error("node and event should be node-like")
	}
	if KindEdge.IsNode() || !KindEdge.IsRelation() {
		t.Error("edge should be relation-only")
	}
}
