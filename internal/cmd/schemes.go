package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jimeh/vscode-glaze-sub003/internal/blend"
	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
	"github.com/jimeh/vscode-glaze-sub003/internal/style"
	"github.com/jimeh/vscode-glaze-sub003/internal/ui"
)

var (
	schemesHue  float64
	schemesKind string
)

var schemesCmd = &cobra.Command{
	Use:     "schemes",
	GroupID: GroupConfig,
	Short:   "List available tint schemes",
	Long: `List every tint scheme with sample swatches at a fixed hue. Pass
--hue to see how a specific workspace hue renders (take it from
'glaze identify'), --kind to sample a different theme family.`,
	RunE: runSchemes,
}

func init() {
	schemesCmd.Flags().Float64Var(&schemesHue, "hue", 210, "Sample hue in degrees")
	schemesCmd.Flags().StringVar(&schemesKind, "kind", "", "Theme kind to sample (default from config)")
	rootCmd.AddCommand(schemesCmd)
}

func runSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kind, err := kindFor(cfg, schemesKind)
	if err != nil {
		return err
	}

	title := cases.Title(language.English)
	ctx := scheme.Context{BaseHue: schemesHue}

	table := style.NewTable("SCHEME", "TITLE BAR", "ACTIVITY BAR", "STATUS BAR")
	for _, name := range scheme.Names() {
		resolver, _ := scheme.Lookup(name)
		colors := blend.Colors(resolver, kind, ctx)

		display := title.String(name)
		if name == cfg.Scheme {
			display = ui.RenderAccent(display + " *")
		}
		table.AddRow(
			display,
			ui.Swatch(colors[scheme.ElementTitleBar]),
			ui.Swatch(colors[scheme.ElementActivityBar]),
			ui.Swatch(colors[scheme.ElementStatusBar]),
		)
	}
	fmt.Println(table.Render())
	fmt.Println(ui.RenderMuted(fmt.Sprintf("sampled at %.0f°, %s themes; * = configured", schemesHue, kind)))
	return nil
}
