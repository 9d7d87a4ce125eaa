// Package cmd implements the glaze CLI: stable per-workspace window
// tints for VS Code-style editors.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jimeh/vscode-glaze-sub003/internal/style"
	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

// Command group IDs for help output.
const (
	GroupTint   = "tint"
	GroupConfig = "config"
	GroupDiag   = "diag"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "glaze",
	Short: "Deterministic window tints per workspace",
	Long: `Glaze derives a stable accent color for each workspace and writes it
into the editor's color customizations, so every window is instantly
recognizable. The color depends only on the workspace identity (all
worktrees of a repo share one), the chosen scheme, and a per-install
seed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.InitTheme("")
		ui.ApplyThemeMode()
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTint, Title: "Tinting:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/glaze/config.toml)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", style.Error.Render("✗ Error:"), err)
		return 1
	}
	return 0
}
