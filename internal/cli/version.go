package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/buildinfo"
)

// VersionInfo is the version payload for JSON output.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		version := buildinfo.Version
		if version == "" {
			version = "dev"
		}

		if isJSONOutput() {
			outputSuccess(VersionInfo{
				Version: version,
				Commit:  buildinfo.Commit,
				Date:    buildinfo.Date,
			}, nil, nil)
			return nil
		}

		fmt.Printf("vgr %s", version)
		if buildinfo.Commit != "" {
			fmt.Printf(" (%s)", buildinfo.Commit)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
