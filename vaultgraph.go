// Package vaultgraph converts a vault of markdown notes into a directed
// attributed graph.
//
// Each note is an optional YAML frontmatter header followed by a markdown
// body. The header's type field decides whether the note becomes a graph
// node ("node", "event") or defines a directed edge between two other notes
// ("edge"). The conversion is a one-shot, read-only transformation: walk,
// extract, assemble, return.
package vaultgraph

import (
	"github.com/aidanlsb/vaultgraph/internal/assemble"
	"github.com/aidanlsb/vaultgraph/internal/note"
	"github.com/aidanlsb/vaultgraph/internal/vault"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// Source is one raw note source with its identity.
type Source struct {
	ID      string
	Content string
}

// FromVault builds the graph for every markdown note under vaultPath.
//
// Recoverable per-note problems (unreadable files, malformed headers,
// unrecognized types, invalid relations) are returned as warnings alongside
// the best-effort graph; the error is non-nil only when the vault itself
// cannot be enumerated.
func FromVault(vaultPath string) (*graph.Graph, []graph.Warning, error) {
	notes, warnings, err := vault.CollectNotes(vaultPath)
	if err != nil {
		return nil, nil, err
	}

	res := assemble.Build(notes, assemble.DefaultOptions())
	return res.Graph, append(warnings, res.Warnings...), nil
}

// FromSources builds the graph from an in-memory sequence of note sources.
// The walker is bypassed entirely; source IDs must be unique.
func FromSources(sources []Source) (*graph.Graph, []graph.Warning) {
	var notes []*note.Note
	var warnings []graph.Warning

	for _, src := range sources {
		n, w := note.Extract(src.Content, src.ID)
		warnings = append(warnings, w...)
		notes = append(notes, n)
	}

	res := assemble.Build(notes, assemble.DefaultOptions())
	return res.Graph, append(warnings, res.Warnings...)
}
