// Package blend turns resolved tints into the final hex colors written
// to the editor. Full-component tints render as-is; hue-only results
// keep the target color's lightness and chroma and take only the
// tint's hue, so an adaptive scheme recolors a theme without changing
// its brightness or saturation.
package blend

import (
	"github.com/jimeh/vscode-glaze-sub003/internal/colorspace"
	"github.com/jimeh/vscode-glaze-sub003/internal/scheme"
)

// Render produces the hex color for one element. targetHex is the
// element's current color in the host theme; it only matters for
// hue-only results, and when missing or malformed the tint renders in
// full instead.
func Render(res scheme.Result, targetHex string) string {
	if !res.HueOnlyBlend {
		return res.Tint.Hex()
	}
	target, err := colorspace.HexToOklch(targetHex)
	if err != nil {
		return res.Tint.Hex()
	}
	return colorspace.OKLCH{L: target.L, C: target.C, H: res.Tint.H}.Hex()
}

// Colors resolves and renders every element for one theme kind,
// returning element -> hex.
func Colors(r scheme.Resolver, kind scheme.ThemeKind, ctx scheme.Context) map[scheme.Element]string {
	out := make(map[scheme.Element]string, len(scheme.Elements()))
	for _, element := range scheme.Elements() {
		res := r.Resolve(kind, element, ctx)
		out[element] = Render(res, ctx.ThemeColors[element])
	}
	return out
}
