package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nodekit/pmx/internal/config"
	"github.com/nodekit/pmx/internal/pm"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change pmx settings",
	Long: `With no flags, prints the current settings and where they live.
Flags update the settings file in place.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var (
	flagDefaultManager string
	flagAssumeYes      bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&flagDefaultManager, "default-manager", "",
		"manager for init when no lockfile exists (npm|yarn|pnpm, empty to clear)")
	configCmd.Flags().BoolVar(&flagAssumeYes, "assume-yes", false,
		"skip the clean confirmation prompt")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("default-manager") {
		if flagDefaultManager != "" {
			if _, err := pm.Parse(flagDefaultManager); err != nil {
				return err
			}
		}
		cfg.InitDefaultManager = flagDefaultManager
		changed = true
	}
	if cmd.Flags().Changed("assume-yes") {
		cfg.AssumeYes = flagAssumeYes
		changed = true
	}

	if changed {
		if err := config.Write(cfg); err != nil {
			return err
		}
	}

	path, err := config.Path()
	if err != nil {
		return err
	}

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	defaultManager := cfg.InitDefaultManager
	if defaultManager == "" {
		defaultManager = "(unset — init requires a lockfile)"
	}

	fmt.Println()
	fmt.Printf("  %s %s\n", label.Render("Config:         "), val.Render(path))
	fmt.Printf("  %s %s\n", label.Render("Default manager:"), defaultManager)
	fmt.Printf("  %s %v\n\n", label.Render("Assume yes:     "), cfg.AssumeYes)
	return nil
}
