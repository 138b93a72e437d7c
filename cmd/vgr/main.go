// Package main is the entry point for the vgr CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/vaultgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
