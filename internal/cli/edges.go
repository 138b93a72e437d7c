package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/ui"
)

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "List graph edges",
	Long: `Builds the graph and lists its directed edges in relation-note order.

Examples:
  vgr edges
  vgr edges --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, warnings, err := buildGraph()
		if err != nil {
			return handleError(ErrVaultNotFound, err, "")
		}

		edges := g.Edges()

		if isJSONOutput() {
			outputSuccess(edges, warnings, &Meta{Count: len(edges)})
			return nil
		}

		printWarnings(warnings)
		for _, e := range edges {
			label := e.RelationType
			if label == "" {
				label = "(unlabeled)"
			}
			fmt.Printf("%s %s %s  %s\n",
				ui.Accent.Render(e.Source),
				ui.Muted.Render("->"),
				ui.Accent.Render(e.Target),
				ui.Muted.Render(label))
		}
		fmt.Println(ui.Hint(fmt.Sprintf("%d edges", len(edges))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(edgesCmd)
}
