package note

import (
	"strings"

	"github.com/aidanlsb/vaultgraph/internal/wikilink"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// ExtractRefs scans body text for [[wikilink]] cross-references.
//
// Occurrences inside fenced code blocks and inline code spans are not
// references. Display text defaults to the target when absent.
func ExtractRefs(body string) []graph.Ref {
	var refs []graph.Ref

	var state fenceState
	for _, line := range strings.Split(body, "\n") {
		if state.update(line) {
			continue // the fence marker line itself
		}
		if state.inFence {
			continue
		}

		for _, m := range wikilink.FindAll(removeInlineCode(line)) {
			display := m.Display
			if display == "" {
				display = m.Target
			}
			refs = append(refs, graph.Ref{Target: m.Target, Display: display})
		}
	}

	return refs
}
