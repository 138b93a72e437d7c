package cli

import (
	"fmt"
	"os"

	"github.com/aidanlsb/vaultgraph/internal/assemble"
	"github.com/aidanlsb/vaultgraph/internal/ui"
	"github.com/aidanlsb/vaultgraph/internal/vault"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// buildGraph walks the resolved vault, extracts every note, and assembles the
// graph with the configured policies.
func buildGraph() (*graph.Graph, []graph.Warning, error) {
	notes, warnings, err := vault.CollectNotes(getVaultPath())
	if err != nil {
		return nil, nil, err
	}

	res := assemble.Build(notes, cfg.AssembleOptions())
	return res.Graph, append(warnings, res.Warnings...), nil
}

// printWarnings prints accumulated warnings to stderr in human mode.
// JSON mode carries them in the envelope instead.
func printWarnings(warnings []graph.Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, ui.Warning(ui.Muted.Render(w.String())))
	}
}
