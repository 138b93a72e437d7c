package index

import (
	"testing"

	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

func testGraph() *graph.Graph {
	g := graph.New()
	g.AddNode(&graph.Node{
		ID:       "Concept A",
		Kind:     "node",
		Describe: "This is Concept A",
		Body:     "Links to [[Concept B]].",
		Refs:     []graph.Ref{{Target: "Concept B", Display: "Concept B"}},
	})
	g.AddNode(&graph.Node{ID: "Concept B", Kind: "node"})
	g.AddEdge(&graph.Edge{
		Source:       "Concept A",
		Target:       "Concept B",
		RelationType: "RELATES_TO",
		DefinedBy:    "Relation AB",
	})
	return g
}

func TestSaveAndStats(t *testing.T) {
	vaultPath := t.TempDir()

	db, err := Open(vaultPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.Save(testGraph()); err != nil {
		t.Fatalf("save: %v", err)
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.NodeCount != 2 || stats.EdgeCount != 1 || stats.RefCount != 1 {
		t.Errorf("stats = %+v, want 2 nodes, 1 edge, 1 ref", stats)
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	vaultPath := t.TempDir()

	db, err := Open(vaultPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.Save(testGraph()); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// A smaller graph fully replaces the previous snapshot.
	small := graph.New()
	small.AddNode(&graph.Node{ID: "only", Kind: "node"})
	if err := db.Save(small); err != nil {
		t.Fatalf("second save: %v", err)
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.NodeCount != 1 || stats.EdgeCount != 0 || stats.RefCount != 0 {
		t.Errorf("stats = %+v, want 1 node only", stats)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	vaultPath := t.TempDir()

	db, err := Open(vaultPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := db.Save(testGraph()); err != nil {
		t.Fatalf("save: %v", err)
	}
	db.Close()

	// Reopening a current-version snapshot keeps its contents.
	db2, err := Open(vaultPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db2.Close()

	stats, err := db2.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.NodeCount != 2 {
		t.Errorf("stats after reopen = %+v", stats)
	}
}
