// Package wikilink provides canonical parsing of double-bracket references.
//
// Grammar:
//
//	[[target]]
//	[[target|display text]]
//
// Targets and display text are trimmed of surrounding whitespace. The package
// has no opinion about markdown context; callers decide which regions of a
// note are scanned (code fences are handled by the note extractor).
package wikilink

import (
	"regexp"
	"strings"
)

// Match is a wikilink found inside a line of text.
type Match struct {
	Target  string
	Display string // empty when the link has no display text
	Start   int
	End     int
}

// re matches [[target]] or [[target|display]].
// Targets cannot contain brackets, so nested pairs are never consumed.
var re = regexp.MustCompile(`\[\[([^\]\[|]+)(?:\|([^\]]+))?\]\]`)

// ParseExact parses a string that is exactly a wikilink literal.
func ParseExact(s string) (target, display string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[[") || !strings.HasSuffix(s, "]]") {
		return "", "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "[["), "]]")
	if strings.ContainsAny(inner, "[]") {
		return "", "", false
	}
	parts := strings.SplitN(inner, "|", 2)
	target = strings.TrimSpace(parts[0])
	if target == "" {
		return "", "", false
	}
	if len(parts) == 2 {
		display = strings.TrimSpace(parts[1])
	}
	return target, display, true
}

// Normalize reduces a standalone reference string to a bare target identity:
// wikilink literals lose their brackets and display text, anything else is
// returned trimmed as-is.
func Normalize(s string) string {
	if target, _, ok := ParseExact(s); ok {
		return target
	}
	return strings.TrimSpace(s)
}

// FindAll finds all non-overlapping wikilinks in a single line.
// Matches preceded by '[' are skipped so array syntax like [[[ref]]] is not
// half-consumed.
func FindAll(line string) []Match {
	var out []Match

	for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[0], m[1]
		if start > 0 && line[start-1] == '[' {
			continue
		}

		target := strings.TrimSpace(line[m[2]:m[3]])
		if target == "" {
			continue
		}

		var display string
		if m[4] >= 0 && m[5] >= 0 {
			display = strings.TrimSpace(line[m[4]:m[5]])
		}

		out = append(out, Match{
			Target:  target,
			Display: display,
			Start:   start,
			End:     end,
		})
	}

	return out
}
