package graph

import "testing"

func TestGraphNodes(t *testing.T) {
	g := New()

	if replaced := g.AddNode(&Node{ID: "a", Kind: "node"}); replaced {
		t.Error("first add should not replace")
	}
	g.AddNode(&Node{ID: "b", Kind: "event"})

	if replaced := g.AddNode(&Node{ID: "a", Kind: "node", Describe: "newer"}); !replaced {
		t.Error("second add of same ID should replace")
	}

	if g.NodeCount() != 2 {
		t.Fatalf("node count = %d, want 2", g.NodeCount())
	}

	// Replacement keeps insertion order.
	ids := g.NodeIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("node order = %v, want [a b]", ids)
	}

	a, ok := g.Node("a")
	if !ok || a.Describe != "newer" {
		t.Errorf("node a = %+v, want the replacement", a)
	}
	if g.HasNode("c") {
		t.Error("unexpected node c")
	}
}

func TestGraphEdges(t *testing.T) {
	g := New()
	g.AddNode(&Node{ID: "a"})
	g.AddNode(&Node{ID: "b"})
	g.AddNode(&Node{ID: "c"})

	g.AddEdge(&Edge{Source: "a", Target: "b", RelationType: "KNOWS"})
	g.AddEdge(&Edge{Source: "a", Target: "c", RelationType: "OWNS"})
	g.AddEdge(&Edge{Source: "c", Target: "b", RelationType: "SEES"})

	if g.EdgeCount() != 3 {
		t.Fatalf("edge count = %d, want 3", g.EdgeCount())
	}

	e, ok := g.Edge("a", "b")
	if !ok || e.RelationType != "KNOWS" {
		t.Errorf("edge a->b = %+v", e)
	}
	if g.HasEdge("b", "a") {
		t.Error("edges are directed; b->a should not exist")
	}

	out := g.Outbound("a")
	if len(out) != 2 || out[0].Target != "b" || out[1].Target != "c" {
		t.Errorf("outbound(a) = %+v", out)
	}

	in := g.Inbound("b")
	if len(in) != 2 || in[0].Source != "a" || in[1].Source != "c" {
		t.Errorf("inbound(b) = %+v", in)
	}

	if replaced := g.AddEdge(&Edge{Source: "a", Target: "b", RelationType: "REPLACED"}); !replaced {
		t.Error("same endpoints should replace")
	}
	if g.EdgeCount() != 3 {
		t.Errorf("edge count after replace = %d, want 3", g.EdgeCount())
	}
	e, _ = g.Edge("a", "b")
	if e.RelationType != "REPLACED" {
		t.Errorf("relation type = %q, want REPLACED", e.RelationType)
	}
}

func TestWarningString(t *testing.T) {
	w := Warningf(WarnNoteSkipped, "some/note", "unrecognized type %q", "banana")
	if w.Note != "some/note" || w.Code != WarnNoteSkipped {
		t.Errorf("warning = %+v", w)
	}
	if got := w.String(); got != `NOTE_SKIPPED: some/note: unrecognized type "banana"` {
		t.Errorf("String() = %q", got)
	}
}
