// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/vaultgraph/internal/config"
	"github.com/aidanlsb/vaultgraph/internal/ui"
)

var (
	// Global flags
	vaultName     string // Named vault from config
	vaultPathFlag string // Explicit path
	configPath    string

	// Resolved values
	resolvedVaultPath string
	cfg               *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vgr",
	Short: "Vaultgraph - turn a markdown vault into a knowledge graph",
	Long: `Vaultgraph builds a directed knowledge graph from a vault of markdown notes.

Notes declare their role in YAML frontmatter: 'type: node' and 'type: event'
notes become graph nodes, 'type: edge' notes connect two of them. Everything
is read-only; the notes stay the source of truth.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip vault resolution for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		resolvedConfigPath := configPath
		if resolvedConfigPath == "" {
			resolvedConfigPath, err = config.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}
		}
		cfg, err = config.Load(resolvedConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		// Resolve vault path: explicit path > named vault > config default
		if vaultPathFlag != "" {
			resolvedVaultPath = vaultPathFlag
		} else if vaultName != "" {
			resolvedVaultPath, err = cfg.VaultPath(vaultName)
			if err != nil {
				return fmt.Errorf("vault '%s' not found in config", vaultName)
			}
		} else {
			resolvedVaultPath, err = cfg.VaultPath("")
			if err != nil {
				return fmt.Errorf(`no vault specified

Either:
  1. Use --vault-path /path/to/vault
  2. Use --vault <name> (from config)
  3. Set default_vault in ~/.config/vaultgraph/config.toml`)
			}
		}

		// Verify vault exists
		if _, err := os.Stat(resolvedVaultPath); os.IsNotExist(err) {
			return fmt.Errorf("vault not found: %s", resolvedVaultPath)
		}

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		}
		return err
	}
	return nil
}

func getVaultPath() string {
	return resolvedVaultPath
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultName, "vault", "", "named vault from config")
	rootCmd.PersistentFlags().StringVar(&vaultPathFlag, "vault-path", "", "explicit vault directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}
