package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/index"
	"github.com/aidanlsb/vaultgraph/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot statistics",
	Long: `Displays counts from the saved graph snapshot.

Examples:
  vgr stats
  vgr stats --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := index.Open(getVaultPath())
		if err != nil {
			return handleError(ErrDatabaseError, err, "Run 'vgr build --save' to create a snapshot")
		}
		defer db.Close()

		stats, err := db.Stats()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(stats, nil, nil)
			return nil
		}

		fmt.Println(ui.Header("Graph Snapshot"))
		fmt.Printf("%s %s\n", ui.Muted.Render("Nodes:     "), ui.Accent.Render(fmt.Sprintf("%d", stats.NodeCount)))
		fmt.Printf("%s %s\n", ui.Muted.Render("Edges:     "), ui.Accent.Render(fmt.Sprintf("%d", stats.EdgeCount)))
		fmt.Printf("%s %s\n", ui.Muted.Render("References:"), ui.Accent.Render(fmt.Sprintf("%d", stats.RefCount)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
