// Package scheme maps a (theme kind, UI element) pair and a base hue
// to the pre-blend OKLCH tint for that element. Static schemes are
// data: per-kind tables of lightness and chroma factor, optionally
// with per-element hue offsets for the multi-hue variants. The
// adaptive scheme instead borrows lightness and chroma from the host
// theme's own color and only rotates hue.
package scheme

import (
	"fmt"

	"github.com/jimeh/vscode-glaze-sub003/internal/colorspace"
)

// ThemeKind is the host editor's broad theme family.
type ThemeKind string

const (
	// Dark is the default dark theme family.
	Dark ThemeKind = "dark"
	// Light is the light theme family.
	Light ThemeKind = "light"
	// HighContrast covers both high-contrast families.
	HighContrast ThemeKind = "highContrast"
)

// Kinds lists every theme kind a table must cover.
func Kinds() []ThemeKind {
	return []ThemeKind{Dark, Light, HighContrast}
}

// Element is a tinted piece of window chrome.
type Element string

const (
	// ElementTitleBar is the window title bar background.
	ElementTitleBar Element = "titleBar"
	// ElementActivityBar is the activity bar background.
	ElementActivityBar Element = "activityBar"
	// ElementStatusBar is the status bar background.
	ElementStatusBar Element = "statusBar"
)

// Elements lists every element a table must cover.
func Elements() []Element {
	return []Element{ElementTitleBar, ElementActivityBar, ElementStatusBar}
}

// ElementConfig is one table entry: the target lightness, the chroma
// factor scaling the in-gamut maximum, and an optional hue offset for
// multi-hue schemes.
type ElementConfig struct {
	Lightness    float64
	ChromaFactor float64
	HueOffset    *float64
}

// Table holds one ElementConfig per theme kind and element.
type Table map[ThemeKind]map[Element]ElementConfig

// Context carries the per-resolution inputs: the workspace's base hue
// and, when known, the host theme's own colors per element.
type Context struct {
	BaseHue     float64
	ThemeColors map[Element]string
}

// Result is a resolved tint. HueOnlyBlend tells the downstream blend
// step to keep the target color's own lightness and chroma and only
// rotate its hue; when false the tint is applied as-is.
type Result struct {
	Tint         colorspace.OKLCH
	HueOnlyBlend bool
}

// Resolver computes the tint for one element under one theme kind.
type Resolver interface {
	Resolve(kind ThemeKind, element Element, ctx Context) Result
}

// staticResolver looks tints up in a fixed table.
type staticResolver struct {
	name  string
	table Table
}

func (s *staticResolver) Resolve(kind ThemeKind, element Element, ctx Context) Result {
	entries, ok := s.table[kind]
	if !ok {
		// Unknown kinds take the dark row rather than failing.
		entries = s.table[Dark]
	}
	cfg := entries[element]
	hue := colorspace.ApplyHueOffset(ctx.BaseHue, cfg.HueOffset)
	chroma := colorspace.MaxChroma(cfg.Lightness, hue) * cfg.ChromaFactor
	return Result{
		Tint: colorspace.OKLCH{L: cfg.Lightness, C: chroma, H: hue},
	}
}

// Valid reports whether name identifies a known scheme. Callers must
// check this before Lookup; configuration validation uses it to reject
// bad values early.
func Valid(name string) bool {
	_, ok := resolvers[name]
	return ok
}

// Names returns all scheme names in presentation order.
func Names() []string {
	return []string{
		"pastel", "vibrant", "muted", "tinted", "neon",
		"duotone", "analogous", "monochrome", "adaptive",
	}
}

// Lookup returns the resolver for a scheme name.
func Lookup(name string) (Resolver, bool) {
	r, ok := resolvers[name]
	return r, ok
}

// TableFor exposes a static scheme's table, mainly for validation and
// preview tooling. ok is false for dynamic schemes like adaptive.
func TableFor(name string) (Table, bool) {
	if s, ok := resolvers[name].(*staticResolver); ok {
		return s.table, true
	}
	return nil, false
}

// resolvers dispatches scheme names to their implementations. Static
// schemes share one implementation parameterized by table; adaptive is
// its own variant falling back to pastel.
var resolvers = map[string]Resolver{
	"pastel":     &staticResolver{name: "pastel", table: pastelTable},
	"vibrant":    &staticResolver{name: "vibrant", table: vibrantTable},
	"muted":      &staticResolver{name: "muted", table: mutedTable},
	"tinted":     &staticResolver{name: "tinted", table: tintedTable},
	"neon":       &staticResolver{name: "neon", table: neonTable},
	"duotone":    &staticResolver{name: "duotone", table: duotoneTable},
	"analogous":  &staticResolver{name: "analogous", table: analogousTable},
	"monochrome": &staticResolver{name: "monochrome", table: monochromeTable},
	"adaptive":   &adaptiveResolver{fallback: &staticResolver{name: "pastel", table: pastelTable}},
}

// Validate checks a table against the structural invariants: every
// theme kind defines every element exactly once, lightness and chroma
// factor stay in [0,1], and hue offsets stay in [-360,360].
func Validate(t Table) error {
	for _, kind := range Kinds() {
		entries, ok := t[kind]
		if !ok {
			return fmt.Errorf("theme kind %q missing", kind)
		}
		if len(entries) != len(Elements()) {
			return fmt.Errorf("theme kind %q defines %d elements, want %d", kind, len(entries), len(Elements()))
		}
		for _, element := range Elements() {
			cfg, ok := entries[element]
			if !ok {
				return fmt.Errorf("theme kind %q missing element %q", kind, element)
			}
			if cfg.Lightness < 0 || cfg.Lightness > 1 {
				return fmt.Errorf("%s/%s: lightness %v outside [0,1]", kind, element, cfg.Lightness)
			}
			if cfg.ChromaFactor < 0 || cfg.ChromaFactor > 1 {
				return fmt.Errorf("%s/%s: chroma factor %v outside [0,1]", kind, element, cfg.ChromaFactor)
			}
			if cfg.HueOffset != nil && (*cfg.HueOffset < -360 || *cfg.HueOffset > 360) {
				return fmt.Errorf("%s/%s: hue offset %v outside [-360,360]", kind, element, *cfg.HueOffset)
			}
		}
	}
	return nil
}
