package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jimeh/vscode-glaze-sub003/internal/blend"
	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
	"github.com/jimeh/vscode-glaze-sub003/internal/settings"
	"github.com/jimeh/vscode-glaze-sub003/internal/style"
)

var (
	applyScheme       string
	applyKind         string
	applySeed         uint64
	applySettingsPath string
	applyCheck        bool
	applyThemeColors  []string
)

var applyCmd = &cobra.Command{
	Use:     "apply [folder]",
	GroupID: GroupTint,
	Short:   "Write the workspace tint into the editor settings",
	Long: `Compute the tint for a workspace and write it into the workspace's
color customizations (.vscode/settings.json by default). Unrelated
settings are preserved; the write is atomic and lock-guarded so
concurrent windows don't clobber each other.

With --check, writes nothing and exits 1 when the stored colors differ
from the computed tint (exit 0 when they match).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyScheme, "scheme", "", "Tint scheme (default from config)")
	applyCmd.Flags().StringVar(&applyKind, "kind", "", "Theme kind (default from config)")
	applyCmd.Flags().Uint64Var(&applySeed, "seed", 0, "Hue seed override")
	applyCmd.Flags().StringVar(&applySettingsPath, "settings", "", "Settings file (default <folder>/.vscode/settings.json)")
	applyCmd.Flags().BoolVar(&applyCheck, "check", false, "Report drift via exit code instead of writing")
	applyCmd.Flags().StringArrayVar(&applyThemeColors, "theme-color", nil, "Current theme color as element=#rrggbb (repeatable)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folders, err := foldersFromArgs(args)
	if err != nil {
		return err
	}

	identifier, baseHue, err := resolveIdentity(cmd.Context(), cfg, folders, nil, applySeed)
	if err != nil {
		return err
	}

	name, resolver, err := schemeFor(cfg, applyScheme)
	if err != nil {
		return err
	}
	kind, err := kindFor(cfg, applyKind)
	if err != nil {
		return err
	}
	themeColors, err := parseThemeColors(applyThemeColors)
	if err != nil {
		return err
	}

	colors := blend.Colors(resolver, kind, scheme.Context{
		BaseHue:     baseHue,
		ThemeColors: themeColors,
	})

	store := settings.NewStore(settingsPathFor(folders[0].URI.FsPath, applySettingsPath))

	if applyCheck {
		current, err := store.Colors()
		if err != nil {
			return err
		}
		if !colorsEqual(current, colors) {
			return NewSilentExit(1)
		}
		return nil
	}

	if err := store.Apply(colors); err != nil {
		return err
	}
	style.PrintSuccess("tinted %s with %s at %.1f° (%s)", identifier, name, baseHue, store.Path())
	return nil
}

// settingsPathFor picks the settings file: an explicit flag wins, else
// the folder's .vscode/settings.json.
func settingsPathFor(folder, override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(folder, ".vscode", "settings.json")
}

func colorsEqual(a, b map[scheme.Element]string) bool {
	if len(a) != len(b) {
		return false
	}
	for element, hex := range b {
		if a[element] != hex {
			return false
		}
	}
	return true
}
