package graph

import "fmt"

// Warning codes for recoverable per-note problems.
// These codes are stable and can be relied upon by JSON consumers.
const (
	WarnFileRead        = "FILE_READ_ERROR"       // note source unreadable, excluded from assembly
	WarnFrontmatter     = "FRONTMATTER_INVALID"   // header block failed to parse, degraded to empty
	WarnNoteSkipped     = "NOTE_SKIPPED"          // missing or unrecognized type discriminator
	WarnDuplicateNode   = "DUPLICATE_NODE"        // two node-like notes share an identity
	WarnEdgeEnds        = "EDGE_ENDS_INVALID"     // ends field missing or not a two-element list
	WarnEdgeEndpoint    = "EDGE_ENDPOINT_MISSING" // endpoint does not name an existing node
	WarnDuplicateEdge   = "DUPLICATE_EDGE"        // two relation notes define the same (source, target)
	WarnRelationNoLabel = "RELATION_UNLABELED"    // relation note has no describe field
)

// Warning is a recoverable problem accumulated during extraction or assembly.
// Warnings are values, not errors: no per-note problem aborts a run.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Note    string `json:"note,omitempty"` // identity of the offending note
}

// Warningf builds a Warning for the given note.
func Warningf(code, noteID, format string, args ...interface{}) Warning {
	return Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Note:    noteID,
	}
}

func (w Warning) String() string {
	if w.Note != "" {
		return fmt.Sprintf("%s: %s: %s", w.Code, w.Note, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
