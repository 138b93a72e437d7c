package note

// Kind classifies a note by its type discriminator.
//
// The set is closed: adding a new note kind is a code change here, not a
// matter of string dispatch at the call sites.
type Kind int

const (
	// KindUnknown marks notes with a missing or unrecognized type field.
	// They contribute to neither the node set nor the edge set.
	KindUnknown Kind = iota

	// KindNode is a concept note; it becomes a graph node.
	KindNode

	// KindEvent is an event note; it also becomes a graph node.
	KindEvent

	// KindEdge is a relation note; it defines a directed edge and never
	// itself becomes a node.
	KindEdge
)

// KindOf maps a type discriminator value to a Kind.
func KindOf(s string) Kind {
	switch s {
	case "node":
		return KindNode
	case "event":
		return KindEvent
	case "edge":
		return KindEdge
	default:
		return KindUnknown
	}
}

// IsNode reports whether the kind is node-like (becomes a graph node).
func (k Kind) IsNode() bool {
	return k == KindNode || k == KindEvent
}

// IsRelation reports whether the kind defines an edge.
func (k Kind) IsRelation() bool {
	return k == KindEdge
}

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEvent:
		return "event"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}
