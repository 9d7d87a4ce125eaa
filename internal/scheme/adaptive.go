package scheme

import (
	"github.com/jimeh/vscode-glaze-sub003/internal/colorspace"
)

// adaptiveResolver derives each element's tint from the host theme's
// own color for that element: it keeps the theme's lightness and
// chroma and replaces only the hue. The fallback chain is explicit and
// ordered - no theme colors, no color for the element, unparseable
// color - and every step lands on the static pastel resolver with its
// full-tint output shape.
type adaptiveResolver struct {
	fallback Resolver
}

func (a *adaptiveResolver) Resolve(kind ThemeKind, element Element, ctx Context) Result {
	if ctx.ThemeColors == nil {
		return a.fallback.Resolve(kind, element, ctx)
	}
	hex, ok := ctx.ThemeColors[element]
	if !ok {
		return a.fallback.Resolve(kind, element, ctx)
	}
	themeColor, err := colorspace.HexToOklch(hex)
	if err != nil {
		// Malformed theme color is handled like a missing one.
		return a.fallback.Resolve(kind, element, ctx)
	}
	return Result{
		Tint: colorspace.OKLCH{
			L: themeColor.L,
			C: themeColor.C,
			H: colorspace.NormalizeHue(ctx.BaseHue),
		},
		HueOnlyBlend: true,
	}
}
