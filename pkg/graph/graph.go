// Package graph defines the directed attributed graph produced from a vault.
//
// The graph is the public contract of vaultgraph: an ordered node set, an
// ordered edge set, and per-node/per-edge attribute access. Nodes are keyed by
// note identity; edges are keyed by (source, target).
package graph

import (
	"sort"

	"github.com/aidanlsb/vaultgraph/pkg/fields"
)

// Ref is a cross-reference found in a note body.
// Display equals Target when the link had no explicit display text.
type Ref struct {
	Target  string `json:"target"`
	Display string `json:"display"`
}

// Heading is one entry in a note body's outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Node is a graph node built from a node-like note.
//
// The frontmatter fields the assembler understands are lifted into typed
// attributes; everything else is preserved in Extra.
type Node struct {
	ID       string                  `json:"id"`
	Kind     string                  `json:"kind"` // "node" or "event"
	Describe string                  `json:"describe,omitempty"`
	Aliases  []string                `json:"aliases,omitempty"`
	Version  string                  `json:"version,omitempty"`
	Tags     []string                `json:"tags,omitempty"`
	Body     string                  `json:"body,omitempty"`
	Refs     []Ref                   `json:"refs,omitempty"`
	Outline  []Heading               `json:"outline,omitempty"`
	Extra    map[string]fields.Value `json:"extra,omitempty"`
}

// Edge is a directed edge built from a relation note.
type Edge struct {
	Source       string                  `json:"source"`
	Target       string                  `json:"target"`
	RelationType string                  `json:"relation_type,omitempty"`
	Describe     string                  `json:"describe,omitempty"`
	DefinedBy    string                  `json:"defined_by"` // identity of the relation note
	Body         string                  `json:"body,omitempty"`
	Version      string                  `json:"version,omitempty"`
	Tags         []string                `json:"tags,omitempty"`
	Refs         []Ref                   `json:"refs,omitempty"`
	Extra        map[string]fields.Value `json:"extra,omitempty"`
}

// Graph is a directed attributed graph.
//
// Node storage is keyed by ID; adjacency is kept in both directions so
// outbound and inbound lookups are symmetric. A Graph is exclusively owned by
// its builder until returned and is not safe for concurrent mutation.
type Graph struct {
	nodes map[string]*Node
	order []string // node insertion order

	outbound map[string]map[string]*Edge
	inbound  map[string]map[string]*Edge
	edges    []*Edge // edge insertion order
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outbound: make(map[string]map[string]*Edge),
		inbound:  make(map[string]map[string]*Edge),
	}
}

// AddNode adds or replaces a node. Returns true if a node with the same ID
// was already present; the original insertion position is kept on replace.
func (g *Graph) AddNode(n *Node) bool {
	_, existed := g.nodes[n.ID]
	g.nodes[n.ID] = n
	if !existed {
		g.order = append(g.order, n.ID)
	}
	return existed
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// AddEdge adds or replaces the directed edge (e.Source, e.Target).
// Returns true if an edge with the same endpoints was already present.
func (g *Graph) AddEdge(e *Edge) bool {
	if g.outbound[e.Source] == nil {
		g.outbound[e.Source] = make(map[string]*Edge)
	}
	if g.inbound[e.Target] == nil {
		g.inbound[e.Target] = make(map[string]*Edge)
	}

	_, existed := g.outbound[e.Source][e.Target]
	g.outbound[e.Source][e.Target] = e
	g.inbound[e.Target][e.Source] = e

	if existed {
		for i, old := range g.edges {
			if old.Source == e.Source && old.Target == e.Target {
				g.edges[i] = e
				break
			}
		}
	} else {
		g.edges = append(g.edges, e)
	}
	return existed
}

// Edge returns the edge from source to target.
func (g *Graph) Edge(source, target string) (*Edge, bool) {
	if m, ok := g.outbound[source]; ok {
		if e, ok := m[target]; ok {
			return e, true
		}
	}
	return nil, false
}

// HasEdge reports whether an edge from source to target exists.
func (g *Graph) HasEdge(source, target string) bool {
	_, ok := g.Edge(source, target)
	return ok
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Outbound returns the edges leaving the given node, sorted by target.
func (g *Graph) Outbound(id string) []*Edge {
	return sortedEdges(g.outbound[id], func(e *Edge) string { return e.Target })
}

// Inbound returns the edges arriving at the given node, sorted by source.
func (g *Graph) Inbound(id string) []*Edge {
	return sortedEdges(g.inbound[id], func(e *Edge) string { return e.Source })
}

func sortedEdges(m map[string]*Edge, key func(*Edge) string) []*Edge {
	if len(m) == 0 {
		return nil
	}
	out := make([]*Edge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
