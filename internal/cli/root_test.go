package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestExpectedCommandsRegistered(t *testing.T) {
	want := []string{"build", "nodes", "edges", "show", "stats", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestPersistentFlagsRegistered(t *testing.T) {
	want := []string{"vault", "vault-path", "config", "json"}

	flags := make(map[string]bool)
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		flags[f.Name] = true
	})

	for _, name := range want {
		if !flags[name] {
			t.Errorf("persistent flag %q is not registered", name)
		}
	}
}
