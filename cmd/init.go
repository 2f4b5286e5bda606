package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/config"
	"github.com/nodekit/pmx/internal/pm"
	"github.com/nodekit/pmx/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a package.json",
	Long: `Runs the detected manager's init interactively.

Detection needs an existing lockfile; on a brand-new project set
initDefaultManager via "pmx config --default-manager" to pick the manager
init should use when there is no lockfile yet.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	start, err := startDir()
	if err != nil {
		return err
	}

	// Re-init inside an existing project runs at its root; otherwise init
	// creates the manifest in the start directory itself.
	dir := start
	if proj, err := project.Locate(start); err == nil {
		dir = proj.Root
	}

	mgr, err := pm.Detect(start)
	if err != nil {
		if !errors.Is(err, pm.ErrNoLockfile) {
			return err
		}
		cfg, cfgErr := config.Load()
		if cfgErr != nil || cfg.InitDefaultManager == "" {
			return err
		}
		mgr, err = pm.Parse(cfg.InitDefaultManager)
		if err != nil {
			return err
		}
	}

	inv, err := pm.Build(pm.OpInit, mgr)
	if err != nil {
		return err
	}
	ctx := projectContext{proj: project.Project{Root: dir}, mgr: mgr}
	return execute(ctx, "init", inv)
}
