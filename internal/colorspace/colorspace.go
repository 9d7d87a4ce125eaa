// Package colorspace implements the color math behind tint
// computation: conversion between hex sRGB and OKLCH, and the maximum
// in-gamut chroma for a given lightness and hue.
//
// OKLCH is the cylindrical form of OkLab, a perceptually uniform color
// space. go-colorful handles hex parsing, HSL and the sRGB transfer
// function; the OkLab matrices themselves are implemented here since
// the library does not cover that space.
package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// OKLCH is a color in OkLab's lightness/chroma/hue form.
// L is in [0,1], C is non-negative, H is degrees in [0,360).
type OKLCH struct {
	L float64
	C float64
	H float64
}

// NormalizeHue wraps a hue in degrees into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Mod can return 360-epsilon values that round to 360; and -0.
	if h == 360 || h == 0 {
		return 0
	}
	return h
}

// ApplyHueOffset adds an optional signed degree offset to a hue and
// wraps the result into [0,360). A nil offset is treated as zero.
func ApplyHueOffset(hue float64, offset *float64) float64 {
	if offset != nil {
		hue += *offset
	}
	return NormalizeHue(hue)
}

// HexToOklch converts a hex sRGB color ("#rrggbb" or "#rgb") to OKLCH.
// Malformed input yields a conversion error; callers treat this as
// recoverable and fall back rather than propagate.
func HexToOklch(hex string) (OKLCH, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return OKLCH{}, fmt.Errorf("parsing hex color %q: %w", hex, err)
	}
	r, g, b := col.LinearRgb()
	return linearRgbToOklch(r, g, b), nil
}

// Hex renders the color as a lower-case "#rrggbb" string. Out-of-gamut
// components are clamped to the sRGB cube before encoding.
func (c OKLCH) Hex() string {
	r, g, b := oklchToLinearRgb(c)
	col := colorful.LinearRgb(clamp01(r), clamp01(g), clamp01(b))
	return col.Clamped().Hex()
}

// HslToHex converts HSL (hue in degrees, s and l in [0,1]) to a hex
// string. Kept for callers that predate the OKLCH pipeline.
func HslToHex(h, s, l float64) string {
	return colorful.Hsl(NormalizeHue(h), s, l).Clamped().Hex()
}

// maxChromaSearchCeiling bounds the binary search; no sRGB color
// exceeds an OKLCH chroma of 0.4.
const maxChromaSearchCeiling = 0.5

// MaxChroma returns the largest chroma at the given lightness and hue
// that still converts to an in-gamut sRGB color. It is always >= 0;
// scaling a scheme's chroma factor in [0,1] by this value therefore
// never produces an out-of-gamut color, whatever the hue.
func MaxChroma(lightness, hue float64) float64 {
	hue = NormalizeHue(hue)
	if lightness <= 0 || lightness >= 1 {
		return 0
	}
	lo, hi := 0.0, maxChromaSearchCeiling
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		if inGamut(OKLCH{L: lightness, C: mid, H: hue}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// gamutEpsilon absorbs floating point noise at the cube boundary.
const gamutEpsilon = 1e-6

func inGamut(c OKLCH) bool {
	r, g, b := oklchToLinearRgb(c)
	return r >= -gamutEpsilon && r <= 1+gamutEpsilon &&
		g >= -gamutEpsilon && g <= 1+gamutEpsilon &&
		b >= -gamutEpsilon && b <= 1+gamutEpsilon
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// linearRgbToOklch converts linear sRGB components to OKLCH using the
// OkLab reference matrices (Ottosson 2020).
func linearRgbToOklch(r, g, b float64) OKLCH {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	lab := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	bb := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	chroma := math.Hypot(a, bb)
	hue := 0.0
	// Hue is undefined for achromatic colors; report 0 to keep the
	// [0,360) invariant.
	if chroma > 1e-9 {
		hue = NormalizeHue(math.Atan2(bb, a) * 180 / math.Pi)
	} else {
		chroma = 0
	}
	return OKLCH{L: lab, C: chroma, H: hue}
}

// oklchToLinearRgb converts OKLCH to linear sRGB components. The
// result may lie outside [0,1]; callers clamp or reject as needed.
func oklchToLinearRgb(c OKLCH) (float64, float64, float64) {
	hRad := c.H * math.Pi / 180
	a := c.C * math.Cos(hRad)
	b := c.C * math.Sin(hRad)

	l := c.L + 0.3963377774*a + 0.2158037573*b
	m := c.L - 0.1055613458*a - 0.0638541728*b
	s := c.L - 0.0894841775*a - 1.2914855480*b

	l = l * l * l
	m = m * m * m
	s = s * s * s

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, bb
}
