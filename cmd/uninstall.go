package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/manifest"
	"github.com/nodekit/pmx/internal/pm"
	"github.com/nodekit/pmx/internal/prompt"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall [package]",
	Aliases: []string{"rm", "remove"},
	Short:   "Remove a dependency",
	Long: `Removes a dependency with the manager's own uninstall command.
With no argument, shows a picker over every dependency group in package.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	ctx, err := resolve()
	if err != nil {
		return err
	}

	dep := ""
	if len(args) > 0 {
		dep = args[0]
	} else {
		man, err := manifest.Load(ctx.proj.Manifest)
		if err != nil {
			return err
		}
		deps, err := man.Dependencies(ctx.mgr)
		if err != nil {
			return err
		}
		if len(deps) == 0 {
			return fmt.Errorf("no dependencies in %s", ctx.proj.Manifest)
		}

		items := make([]prompt.Item, len(deps))
		for i, d := range deps {
			items[i] = prompt.Item{Label: d.Name, Detail: d.Command}
		}
		picked, err := prompt.Select("Uninstall dependency", items)
		if err != nil {
			return err
		}
		dep = picked.Label
	}

	inv, err := pm.Build(pm.OpUninstall, ctx.mgr, dep)
	if err != nil {
		return err
	}
	return execute(ctx, "uninstall", inv)
}
