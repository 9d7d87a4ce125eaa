package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jimeh/vscode-glaze-sub003/internal/settings"
	"github.com/jimeh/vscode-glaze-sub003/internal/style"
)

var clearSettingsPath string

var clearCmd = &cobra.Command{
	Use:     "clear [folder]",
	GroupID: GroupTint,
	Short:   "Remove glaze-managed colors from the editor settings",
	Long: `Remove the tint keys glaze wrote from the workspace's color
customizations. Other customizations and settings are left untouched;
a missing settings file is not an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClear,
}

func init() {
	clearCmd.Flags().StringVar(&clearSettingsPath, "settings", "", "Settings file (default <folder>/.vscode/settings.json)")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	folder := "."
	if len(args) == 1 {
		folder = args[0]
	}
	abs, err := filepath.Abs(folder)
	if err != nil {
		return err
	}

	store := settings.NewStore(settingsPathFor(abs, clearSettingsPath))
	if err := store.Clear(); err != nil {
		return err
	}
	style.PrintSuccess("cleared tint from %s", store.Path())
	return nil
}
