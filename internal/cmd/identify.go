package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

var identifyWorkspaceFile string

var identifyCmd = &cobra.Command{
	Use:     "identify [folder...]",
	GroupID: GroupDiag,
	Short:   "Print the resolved workspace identifier and base hue",
	Long: `Resolve the canonical identifier for a workspace and the hue derived
from it. All windows onto the same project (worktrees of one repo,
remotes with the same path) print the same identifier.

With no arguments, identifies the current directory. Multiple folders
form a multi-root workspace; pass --workspace-file to identify by the
workspace file instead.`,
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().StringVar(&identifyWorkspaceFile, "workspace-file", "", "Workspace file for multi-root identification")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folders, err := foldersFromArgs(args)
	if err != nil {
		return err
	}
	wsFile, err := workspaceFileURI(identifyWorkspaceFile)
	if err != nil {
		return err
	}

	identifier, baseHue, err := resolveIdentity(cmd.Context(), cfg, folders, wsFile, 0)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", ui.RenderMuted("identifier:"), identifier)
	fmt.Printf("%s %.1f°\n", ui.RenderMuted("base hue:  "), baseHue)
	return nil
}
