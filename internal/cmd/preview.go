package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jimeh/vscode-glaze-sub003/internal/preview"
	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

var previewWorkspaceFile string

var previewCmd = &cobra.Command{
	Use:     "preview [folder...]",
	GroupID: GroupConfig,
	Short:   "Browse tint schemes interactively",
	Long: `Open an interactive browser showing every scheme rendered at the
workspace's own hue. Arrow keys move between schemes, tab cycles the
theme kind. The selection is printed on exit so it can be copied into
the config.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewWorkspaceFile, "workspace-file", "", "Workspace file for multi-root identification")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folders, err := foldersFromArgs(args)
	if err != nil {
		return err
	}
	wsFile, err := workspaceFileURI(previewWorkspaceFile)
	if err != nil {
		return err
	}

	identifier, baseHue, err := resolveIdentity(cmd.Context(), cfg, folders, wsFile, 0)
	if err != nil {
		return err
	}

	p := tea.NewProgram(preview.New(identifier, baseHue, cfg.Scheme), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running preview: %w", err)
	}

	if m, ok := final.(preview.Model); ok {
		fmt.Printf("%s %s\n", ui.RenderMuted("scheme:"), m.Selected())
	}
	return nil
}
