package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/pm"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List top-level installed packages",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, err := resolve()
	if err != nil {
		return err
	}
	inv, err := pm.Build(pm.OpList, ctx.mgr)
	if err != nil {
		return err
	}
	return execute(ctx, "list", inv)
}
