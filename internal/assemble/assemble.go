// Package assemble builds the final graph from extracted notes.
//
// Assembly runs in two strictly sequential phases. Phase 1 ingests every
// node-like note and sets relation notes aside on a worklist; phase 2 walks
// the worklist and resolves relations against the now-complete node set. The
// split removes all forward-reference ordering constraints on the input: no
// edge ever exists while node ingestion is still in progress.
//
// Per-note problems never abort assembly. Every skip is accumulated as a
// graph.Warning and the best-effort graph is always returned.
package assemble

import (
	"github.com/aidanlsb/vaultgraph/internal/note"
	"github.com/aidanlsb/vaultgraph/internal/slugs"
	"github.com/aidanlsb/vaultgraph/pkg/fields"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// DuplicatePolicy decides which of two node-like notes with the same identity
// wins. Either way the collision is surfaced as a DUPLICATE_NODE warning.
type DuplicatePolicy string

const (
	// DuplicateKeepLast keeps the later note (the default; matches what a
	// plain map overwrite would do, but observably).
	DuplicateKeepLast DuplicatePolicy = "last"

	// DuplicateKeepFirst keeps the earlier note.
	DuplicateKeepFirst DuplicatePolicy = "first"
)

// Options configures assembly.
type Options struct {
	// DuplicatePolicy selects duplicate-identity handling; empty means "last".
	DuplicatePolicy DuplicatePolicy

	// SlugFallback retries failed endpoint lookups against slugified node
	// identities, so [[Concept A]] can resolve a node stored as "concept-a".
	SlugFallback bool
}

// DefaultOptions returns the options used when the caller has no config.
func DefaultOptions() Options {
	return Options{
		DuplicatePolicy: DuplicateKeepLast,
		SlugFallback:    true,
	}
}

// Result is the outcome of an assembly run.
type Result struct {
	Graph    *graph.Graph
	Warnings []graph.Warning
}

// Build assembles the graph from the full collection of extracted notes.
func Build(notes []*note.Note, opts Options) *Result {
	if opts.DuplicatePolicy == "" {
		opts.DuplicatePolicy = DuplicateKeepLast
	}

	res := &Result{Graph: graph.New()}

	// Phase 1: ingest nodes, set relation notes aside.
	var worklist []*note.Note
	for _, n := range notes {
		switch {
		case n.Kind.IsNode():
			res.ingestNode(n, opts)
		case n.Kind.IsRelation():
			worklist = append(worklist, n)
		default:
			res.warnf(graph.WarnNoteSkipped, n.ID,
				"missing or unrecognized note type %q", n.TypeValue)
		}
	}

	// Phase 2: resolve relations, all nodes now known.
	var slugIndex map[string]string
	if opts.SlugFallback {
		slugIndex = buildSlugIndex(res.Graph)
	}
	for _, n := range worklist {
		res.resolveRelation(n, slugIndex)
	}

	return res
}

func (r *Result) warnf(code, noteID, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, graph.Warningf(code, noteID, format, args...))
}

// ingestNode turns a node-like note into a graph node. Understood header
// fields are lifted into typed attributes; the rest land in Extra. Missing
// optional fields stay at their zero values.
func (r *Result) ingestNode(n *note.Note, opts Options) {
	if r.Graph.HasNode(n.ID) {
		r.warnf(graph.WarnDuplicateNode, n.ID,
			"identity already used by an earlier note (keeping %s)", opts.DuplicatePolicy)
		if opts.DuplicatePolicy == DuplicateKeepFirst {
			return
		}
	}

	node := &graph.Node{
		ID:      n.ID,
		Kind:    n.Kind.String(),
		Body:    n.Body,
		Refs:    n.Refs,
		Outline: n.Outline,
		Extra:   make(map[string]fields.Value),
	}

	for key, v := range n.Fields {
		switch key {
		case "describe":
			if s, ok := v.AsString(); ok {
				node.Describe = s
				continue
			}
		case "aliases":
			node.Aliases = v.AsStringList()
			continue
		case "version":
			if s, ok := v.AsString(); ok {
				node.Version = s
				continue
			}
		case "tags":
			node.Tags = v.AsStringList()
			continue
		}
		node.Extra[key] = v
	}

	r.Graph.AddNode(node)
}

// buildSlugIndex maps slugified identities to node IDs. On slug collisions
// the first node wins; exact lookups are unaffected.
func buildSlugIndex(g *graph.Graph) map[string]string {
	index := make(map[string]string, g.NodeCount())
	for _, id := range g.NodeIDs() {
		key := slugs.Path(id)
		if _, taken := index[key]; !taken {
			index[key] = id
		}
	}
	return index
}
