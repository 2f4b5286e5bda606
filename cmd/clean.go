package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/config"
	"github.com/nodekit/pmx/internal/project"
	"github.com/nodekit/pmx/internal/prompt"
	"github.com/nodekit/pmx/internal/runner"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the project's node_modules",
	Long: `Deletes <project root>/node_modules directly, without going through
the package manager. Asks for confirmation first unless assumeYes is set in
the pmx config or --yes is passed.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

var flagCleanYes bool

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVarP(&flagCleanYes, "yes", "y", false, "skip confirmation")
}

func runClean(cmd *cobra.Command, args []string) error {
	start, err := startDir()
	if err != nil {
		return err
	}
	// clean never builds a manager command, so only the project root is
	// needed — no lockfile detection.
	proj, err := project.Locate(start)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newRunLog("clean")
	defer log.Close()

	r := &runner.Runner{Dir: proj.Root, Log: log}
	err = r.Clean(proj.Root, func(target string) (bool, error) {
		if flagCleanYes || cfg.AssumeYes {
			return true, nil
		}
		return prompt.Confirm(fmt.Sprintf("Delete %s?", target))
	})
	if errors.Is(err, runner.ErrAborted) {
		fmt.Println("  aborted, nothing removed")
		return nil
	}
	return err
}
