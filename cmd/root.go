// Package cmd implements the pmx CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pmx %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
}

var rootCmd = &cobra.Command{
	Use:   "pmx",
	Short: "Run npm, yarn or pnpm with the right syntax for your project",
	Long: `pmx finds the enclosing JavaScript project, infers its package manager
from the lockfile, and runs the matching command.

Examples:
  pmx install              install all dependencies
  pmx install lodash       add a dependency
  pmx install -D vitest    add a dev dependency
  pmx uninstall            pick a dependency to remove
  pmx run                  pick a script to run
  pmx list                 list top-level packages
  pmx init                 initialize a manifest
  pmx clean                delete node_modules`,
	SilenceUsage: true,
}

var flagDir string

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", "",
		"start directory for project discovery (default: current dir)")
}
