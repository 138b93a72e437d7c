// Package note extracts structured records from raw note sources.
//
// A note is an optional YAML frontmatter header followed by a free-text
// markdown body. Extraction splits the two, lifts the type discriminator,
// and scans the body for cross-references. Header problems degrade rather
// than fail: the caller always gets a usable Note plus warnings.
package note

import (
	"strings"

	"github.com/aidanlsb/vaultgraph/pkg/fields"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// Note is the structured record extracted from one note source.
type Note struct {
	// ID is the note identity, unique within a run (vault-relative path
	// without the .md extension).
	ID string

	// Kind is the classified type discriminator.
	Kind Kind

	// TypeValue is the discriminator as written, kept for diagnostics.
	TypeValue string

	// Fields holds all header fields other than type.
	Fields map[string]fields.Value

	// Body is the text after the header block (the whole text when there is
	// no header).
	Body string

	// Refs are the cross-references found in the body, in order.
	Refs []graph.Ref

	// Outline is the body's heading structure.
	Outline []graph.Heading
}

// Extract parses one raw note source into a Note.
//
// Extraction never fails: a missing header yields empty fields with the whole
// text as body, and a malformed header yields empty fields with the remaining
// text as body plus a FRONTMATTER_INVALID warning.
func Extract(content, id string) (*Note, []graph.Warning) {
	var warnings []graph.Warning

	n := &Note{
		ID:     id,
		Kind:   KindUnknown,
		Fields: make(map[string]fields.Value),
		Body:   content,
	}

	fm, err := ParseFrontmatter(content)
	if err != nil {
		warnings = append(warnings, graph.Warningf(graph.WarnFrontmatter, id, "%v", err))
	}
	if fm != nil {
		n.TypeValue = fm.TypeValue
		n.Kind = KindOf(fm.TypeValue)
		n.Fields = fm.Fields
		n.Body = bodyAfter(content, fm.EndLine)
	}

	n.Refs = ExtractRefs(n.Body)
	n.Outline = ExtractOutline(n.Body)

	return n, warnings
}

// bodyAfter returns the text following the closing frontmatter marker,
// trimmed of the surrounding blank lines the marker leaves behind.
func bodyAfter(content string, endLine int) string {
	lines := strings.Split(content, "\n")
	if endLine+1 >= len(lines) {
		return ""
	}
	return strings.TrimSpace(strings.Join(lines[endLine+1:], "\n"))
}
