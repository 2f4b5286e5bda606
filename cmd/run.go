package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/manifest"
	"github.com/nodekit/pmx/internal/pm"
	"github.com/nodekit/pmx/internal/prompt"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a package.json script",
	Long: `Runs a script through the project's package manager.
With no argument, shows a picker over the manifest's scripts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, err := resolve()
	if err != nil {
		return err
	}

	script := ""
	if len(args) > 0 {
		script = args[0]
	} else {
		man, err := manifest.Load(ctx.proj.Manifest)
		if err != nil {
			return err
		}
		scripts, err := man.Scripts(ctx.mgr)
		if err != nil {
			return err
		}
		if len(scripts) == 0 {
			return fmt.Errorf("no scripts in %s", ctx.proj.Manifest)
		}

		items := make([]prompt.Item, len(scripts))
		for i, s := range scripts {
			items[i] = prompt.Item{Label: s.Name, Detail: s.Command}
		}
		picked, err := prompt.Select("Run script", items)
		if err != nil {
			return err
		}
		script = picked.Label
	}

	inv, err := pm.Build(pm.OpRun, ctx.mgr, script)
	if err != nil {
		return err
	}
	return execute(ctx, "run", inv)
}
