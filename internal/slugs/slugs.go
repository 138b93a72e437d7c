// Package slugs provides canonical slugification of note identities, used for
// fallback endpoint matching when a relation names a node inexactly
// ("Concept A" vs "concept-a").
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Component converts a single identity component to a URL-safe slug.
func Component(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return slugged
}

// Path slugifies each "/"-separated component of a note identity, so
// "People/Lady Freya" and "people/lady-freya" compare equal.
func Path(path string) string {
	path = strings.TrimSuffix(path, ".md")

	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = Component(part)
	}
	return strings.Join(parts, "/")
}
