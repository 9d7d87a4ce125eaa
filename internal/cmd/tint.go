package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jimeh/vscode-glaze-sub003/internal/blend"
	"github.com/jimeh/vscode-glaze-sub003/internal/config"
	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
	"github.com/jimeh/vscode-glaze-sub003/internal/style"
	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

var (
	tintScheme        string
	tintKind          string
	tintSeed          uint64
	tintJSON          bool
	tintWorkspaceFile string
	tintThemeColors   []string
)

var tintCmd = &cobra.Command{
	Use:     "tint [folder...]",
	GroupID: GroupTint,
	Short:   "Compute the tint colors for a workspace",
	Long: `Compute the per-element hex colors for a workspace without writing
anything. The adaptive scheme needs the host theme's current colors;
pass them with repeated --theme-color element=#rrggbb flags.

Examples:
  glaze tint
  glaze tint --scheme neon --kind light ~/src/myrepo
  glaze tint --json --theme-color statusBar=#007acc`,
	RunE: runTint,
}

func init() {
	tintCmd.Flags().StringVar(&tintScheme, "scheme", "", "Tint scheme (default from config)")
	tintCmd.Flags().StringVar(&tintKind, "kind", "", "Theme kind: dark, light, highContrast (default from config)")
	tintCmd.Flags().Uint64Var(&tintSeed, "seed", 0, "Hue seed override")
	tintCmd.Flags().BoolVar(&tintJSON, "json", false, "Machine-readable output")
	tintCmd.Flags().StringVar(&tintWorkspaceFile, "workspace-file", "", "Workspace file for multi-root identification")
	tintCmd.Flags().StringArrayVar(&tintThemeColors, "theme-color", nil, "Current theme color as element=#rrggbb (repeatable)")
	rootCmd.AddCommand(tintCmd)
}

// tintOutput is the --json shape.
type tintOutput struct {
	Identifier string            `json:"identifier"`
	BaseHue    float64           `json:"base_hue"`
	Scheme     string            `json:"scheme"`
	Kind       string            `json:"kind"`
	Colors     map[string]string `json:"colors"`
}

func runTint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folders, err := foldersFromArgs(args)
	if err != nil {
		return err
	}
	wsFile, err := workspaceFileURI(tintWorkspaceFile)
	if err != nil {
		return err
	}

	identifier, baseHue, err := resolveIdentity(cmd.Context(), cfg, folders, wsFile, tintSeed)
	if err != nil {
		return err
	}

	name, resolver, err := schemeFor(cfg, tintScheme)
	if err != nil {
		return err
	}
	kind, err := kindFor(cfg, tintKind)
	if err != nil {
		return err
	}
	themeColors, err := parseThemeColors(tintThemeColors)
	if err != nil {
		return err
	}

	colors := blend.Colors(resolver, kind, scheme.Context{
		BaseHue:     baseHue,
		ThemeColors: themeColors,
	})

	if tintJSON {
		out := tintOutput{
			Identifier: identifier,
			BaseHue:    baseHue,
			Scheme:     name,
			Kind:       string(kind),
			Colors:     make(map[string]string, len(colors)),
		}
		for element, hex := range colors {
			out.Colors[string(element)] = hex
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s %s\n", ui.RenderMuted("workspace:"), identifier)
	fmt.Printf("%s %s at %.1f°\n\n", ui.RenderMuted("scheme:   "), name, baseHue)
	table := style.NewTable("ELEMENT", "COLOR")
	for _, element := range scheme.Elements() {
		hex := colors[element]
		table.AddRow(string(element), ui.SwatchLabeled(hex))
	}
	fmt.Println(table.Render())
	return nil
}

// schemeFor resolves the effective scheme, letting a flag override the
// configured one. Flag values must name a real scheme; configured
// values already degraded to pastel during load.
func schemeFor(cfg config.Config, override string) (string, scheme.Resolver, error) {
	name := cfg.Scheme
	if override != "" {
		name = override
	}
	resolver, ok := scheme.Lookup(name)
	if !ok {
		return "", nil, fmt.Errorf("unknown scheme %q (see 'glaze schemes')", name)
	}
	return name, resolver, nil
}

// kindFor resolves the effective theme kind, letting a flag override
// the configured one.
func kindFor(cfg config.Config, override string) (scheme.ThemeKind, error) {
	if override == "" {
		return cfg.Kind(), nil
	}
	switch override {
	case "dark":
		return scheme.Dark, nil
	case "light":
		return scheme.Light, nil
	case "highContrast", "highContrastLight":
		return scheme.HighContrast, nil
	}
	return "", fmt.Errorf("unknown theme kind %q", override)
}

// parseThemeColors parses repeated element=#rrggbb flags.
func parseThemeColors(pairs []string) (map[scheme.Element]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[scheme.Element]string, len(pairs))
	for _, pair := range pairs {
		element, hex, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad --theme-color %q, want element=#rrggbb", pair)
		}
		out[scheme.Element(element)] = hex
	}
	return out, nil
}
