package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/ui"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List graph nodes",
	Long: `Builds the graph and lists its nodes in note order.

Examples:
  vgr nodes
  vgr nodes --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, warnings, err := buildGraph()
		if err != nil {
			return handleError(ErrVaultNotFound, err, "")
		}

		nodes := g.Nodes()

		if isJSONOutput() {
			outputSuccess(nodes, warnings, &Meta{Count: len(nodes)})
			return nil
		}

		printWarnings(warnings)
		for _, n := range nodes {
			line := fmt.Sprintf("%s %s", ui.Accent.Render(n.ID), ui.Muted.Render(n.Kind))
			if n.Describe != "" {
				line += "  " + n.Describe
			}
			fmt.Println(line)
		}
		fmt.Println(ui.Hint(fmt.Sprintf("%d nodes", len(nodes))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}
