package assemble

import (
	"strings"

	"github.com/aidanlsb/vaultgraph/internal/note"
	"github.com/aidanlsb/vaultgraph/internal/slugs"
	"github.com/aidanlsb/vaultgraph/internal/wikilink"
	"github.com/aidanlsb/vaultgraph/pkg/fields"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// resolveRelation validates one relation note and, when both endpoints name
// existing nodes, adds the directed edge. Any validation failure warns and
// skips the note; no partial edge is ever added.
func (r *Result) resolveRelation(n *note.Note, slugIndex map[string]string) {
	endpoints, ok := relationEndpoints(n.Fields["ends"])
	if !ok {
		r.warnf(graph.WarnEdgeEnds, n.ID, "ends must be a list of exactly two references")
		return
	}

	source, ok := r.resolveEndpoint(endpoints[0], slugIndex)
	if !ok {
		r.warnf(graph.WarnEdgeEndpoint, n.ID, "source %q does not name an existing node", endpoints[0])
		return
	}
	target, ok := r.resolveEndpoint(endpoints[1], slugIndex)
	if !ok {
		r.warnf(graph.WarnEdgeEndpoint, n.ID, "target %q does not name an existing node", endpoints[1])
		return
	}

	edge := &graph.Edge{
		Source:    source,
		Target:    target,
		DefinedBy: n.ID,
		Body:      n.Body,
		Refs:      n.Refs,
		Extra:     make(map[string]fields.Value),
	}

	for key, v := range n.Fields {
		switch key {
		case "ends":
			continue
		case "describe":
			if s, ok := v.AsString(); ok {
				edge.Describe = s
				continue
			}
		case "version":
			if s, ok := v.AsString(); ok {
				edge.Version = s
				continue
			}
		case "tags":
			edge.Tags = v.AsStringList()
			continue
		}
		edge.Extra[key] = v
	}

	edge.RelationType = DeriveRelationType(edge.Describe)
	if edge.Describe == "" {
		r.warnf(graph.WarnRelationNoLabel, n.ID, "relation note has no describe field; relation type left empty")
	}

	if r.Graph.AddEdge(edge) {
		r.warnf(graph.WarnDuplicateEdge, n.ID, "edge %s -> %s already defined; keeping this note's", source, target)
	}
}

// relationEndpoints extracts the two endpoint identities from an ends field.
// The field must be a sequence of exactly two reference strings; each is
// normalized to a bare identity (brackets and display text stripped).
func relationEndpoints(ends fields.Value) ([2]string, bool) {
	var out [2]string

	items, ok := ends.AsArray()
	if !ok || len(items) != 2 {
		return out, false
	}

	for i, item := range items {
		s, ok := item.AsString()
		if ok {
			// Ref values are already bare; plain strings may still carry
			// wikilink syntax that the YAML layer did not recognize.
			s = normalizeEndpoint(s)
		}
		if !ok || s == "" {
			return out, false
		}
		out[i] = s
	}

	return out, true
}

// normalizeEndpoint strips reference-marker syntax from a standalone endpoint
// string: "[[Concept A|shown]]" and "Concept A" both yield "Concept A".
func normalizeEndpoint(s string) string {
	return wikilink.Normalize(s)
}

// resolveEndpoint maps a normalized endpoint identity to a node ID, trying an
// exact match first and falling back to slug matching when enabled.
func (r *Result) resolveEndpoint(id string, slugIndex map[string]string) (string, bool) {
	if r.Graph.HasNode(id) {
		return id, true
	}
	if slugIndex != nil {
		if resolved, ok := slugIndex[slugs.Path(id)]; ok {
			return resolved, true
		}
	}
	return "", false
}

// DeriveRelationType normalizes a relation note's describe field into the
// relation type: upper-cased, whitespace runs joined with underscores.
// "is part of" becomes "IS_PART_OF". An empty describe yields "".
func DeriveRelationType(describe string) string {
	return strings.Join(strings.Fields(strings.ToUpper(describe)), "_")
}
