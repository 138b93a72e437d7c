package note

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/vaultgraph/pkg/fields"
)

// Frontmatter is a parsed YAML header block.
type Frontmatter struct {
	// TypeValue is the raw type discriminator as written (may be empty).
	TypeValue string

	// Fields holds all other header fields.
	Fields map[string]fields.Value

	// EndLine is the 0-indexed line of the closing "---" marker.
	EndLine int
}

// frontmatterBounds returns the index of the closing "---" line.
// Frontmatter is only detected when the very first line is "---".
// Returns ok=false when there is no header block; endLine=-1 when the block
// is unclosed (which is treated as no header block at all).
func frontmatterBounds(lines []string) (endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i, true
		}
	}
	return -1, true
}

// ParseFrontmatter parses the YAML header block of a note.
//
// Returns (nil, nil) when the content has no closed header block. When the
// block exists but its content fails to parse as a YAML mapping, the returned
// Frontmatter has empty Fields and the error describes the failure: the
// caller records it and continues with the body, per the degrade-don't-abort
// policy.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	lines := strings.Split(content, "\n")

	endLine, ok := frontmatterBounds(lines)
	if !ok || endLine == -1 {
		return nil, nil
	}

	fm := &Frontmatter{
		Fields:  make(map[string]fields.Value),
		EndLine: endLine,
	}

	raw := strings.Join(lines[1:endLine], "\n")

	var yamlData map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &yamlData); err != nil {
		return fm, fmt.Errorf("frontmatter is not valid YAML: %w", err)
	}
	// An empty document (comments/whitespace only) decodes to a nil map; that
	// still counts as frontmatter because it affects where the body starts.

	for key, value := range yamlData {
		if key == "type" {
			if s, ok := value.(string); ok {
				fm.TypeValue = s
				continue
			}
		}
		fm.Fields[key] = fields.FromYAML(value)
	}

	return fm, nil
}
