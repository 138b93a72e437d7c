package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/slugs"
	"github.com/aidanlsb/vaultgraph/internal/ui"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

var showCmd = &cobra.Command{
	Use:   "show <node>",
	Short: "Show one node with its attributes and body",
	Long: `Builds the graph and shows a single node: attributes, connections, and the
note body rendered as markdown when stdout is a terminal.

The node may be named exactly or by slug ("Concept A" matches "concept-a").

Examples:
  vgr show "Concept A"
  vgr show concepts/alpha --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, warnings, err := buildGraph()
		if err != nil {
			return handleError(ErrVaultNotFound, err, "")
		}

		n, ok := lookupNode(g, args[0])
		if !ok {
			return handleError(ErrNodeNotFound,
				fmt.Errorf("node not found: %s", args[0]),
				"Run 'vgr nodes' to list node identities")
		}

		if isJSONOutput() {
			outputSuccess(n, warnings, nil)
			return nil
		}

		printWarnings(warnings)
		fmt.Printf("%s %s\n", ui.AccentBold.Render(n.ID), ui.Muted.Render(n.Kind))
		if n.Describe != "" {
			fmt.Println(n.Describe)
		}
		if len(n.Aliases) > 0 {
			fmt.Printf("%s %s\n", ui.Muted.Render("aliases:"), strings.Join(n.Aliases, ", "))
		}
		if len(n.Tags) > 0 {
			fmt.Printf("%s %s\n", ui.Muted.Render("tags:"), strings.Join(n.Tags, ", "))
		}
		for _, e := range g.Outbound(n.ID) {
			fmt.Printf("%s %s %s\n", ui.Muted.Render("->"), ui.Accent.Render(e.Target), ui.Muted.Render(e.RelationType))
		}
		for _, e := range g.Inbound(n.ID) {
			fmt.Printf("%s %s %s\n", ui.Muted.Render("<-"), ui.Accent.Render(e.Source), ui.Muted.Render(e.RelationType))
		}

		if n.Body != "" {
			if ui.IsTerminal() {
				rendered, err := ui.RenderMarkdown(n.Body, ui.TermWidth())
				if err == nil {
					fmt.Print(rendered)
					return nil
				}
			}
			fmt.Println()
			fmt.Println(n.Body)
		}
		return nil
	},
}

// lookupNode finds a node by exact identity, then by slug.
func lookupNode(g *graph.Graph, ref string) (*graph.Node, bool) {
	if n, ok := g.Node(ref); ok {
		return n, true
	}
	want := slugs.Path(ref)
	for _, id := range g.NodeIDs() {
		if slugs.Path(id) == want {
			n, _ := g.Node(id)
			return n, true
		}
	}
	return nil, false
}

func init() {
	rootCmd.AddCommand(showCmd)
}
