package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/pm"
	"github.com/nodekit/pmx/internal/prompt"
)

var installCmd = &cobra.Command{
	Use:     "install [package]",
	Aliases: []string{"i", "add"},
	Short:   "Install all dependencies, or add one",
	Long: `With no argument, installs everything from package.json.
With a package argument (or invoked as "add"), saves the package as a
dependency — pass --dev to save it as a devDependency instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

var flagDev bool

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVarP(&flagDev, "dev", "D", false, "save to devDependencies")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx, err := resolve()
	if err != nil {
		return err
	}

	// Plain `pmx install` with no package installs everything.
	if len(args) == 0 && !flagDev && cmd.CalledAs() != "add" {
		inv, err := pm.Build(pm.OpInstall, ctx.mgr)
		if err != nil {
			return err
		}
		return execute(ctx, "install", inv)
	}

	dep := ""
	if len(args) > 0 {
		dep = args[0]
	} else {
		dep, err = prompt.Input("Add dependency", "left-pad")
		if err != nil {
			return err
		}
	}

	op := pm.OpInstallSave
	if flagDev {
		op = pm.OpInstallSaveDev
	}
	inv, err := pm.Build(op, ctx.mgr, dep)
	if err != nil {
		return err
	}
	return execute(ctx, "install", inv)
}
