package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/index"
	"github.com/aidanlsb/vaultgraph/internal/ui"
)

var buildSave bool

// BuildResult summarizes an assembly run.
type BuildResult struct {
	NodeCount    int  `json:"node_count"`
	EdgeCount    int  `json:"edge_count"`
	WarningCount int  `json:"warning_count"`
	Saved        bool `json:"saved,omitempty"`
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the graph from the vault",
	Long: `Walks the vault, extracts every markdown note, and assembles the graph.

Per-note problems (malformed frontmatter, unknown types, dangling relation
endpoints) are reported as warnings; they never abort the build.

Examples:
  vgr build
  vgr build --save
  vgr build --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		g, warnings, err := buildGraph()
		if err != nil {
			return handleError(ErrVaultNotFound, err, "")
		}

		if buildSave {
			db, err := index.Open(getVaultPath())
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
			defer db.Close()
			if err := db.Save(g); err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
		}

		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(BuildResult{
				NodeCount:    g.NodeCount(),
				EdgeCount:    g.EdgeCount(),
				WarningCount: len(warnings),
				Saved:        buildSave,
			}, warnings, &Meta{BuildTimeMs: elapsed})
			return nil
		}

		printWarnings(warnings)
		fmt.Println(ui.Successf("built graph: %d nodes, %d edges %s",
			g.NodeCount(), g.EdgeCount(), ui.Count(len(warnings), "warning", "warnings")))
		if buildSave {
			fmt.Println(ui.Hint("snapshot saved to " + getVaultPath() + "/.vaultgraph/graph.db"))
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildSave, "save", false, "save a snapshot to .vaultgraph/graph.db")
	rootCmd.AddCommand(buildCmd)
}
