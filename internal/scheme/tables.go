package scheme

// Static scheme tables. These are data, not logic: tweaking a scheme
// means editing numbers here, and the structural invariants are
// enforced by Validate in tests.

func el(lightness, chromaFactor float64) ElementConfig {
	return ElementConfig{Lightness: lightness, ChromaFactor: chromaFactor}
}

func elOff(lightness, chromaFactor, hueOffset float64) ElementConfig {
	return ElementConfig{Lightness: lightness, ChromaFactor: chromaFactor, HueOffset: &hueOffset}
}

// pastelTable is the default: soft, clearly tinted, easy on the eyes.
// It also serves as the fallback for the adaptive scheme.
var pastelTable = Table{
	Dark: {
		ElementTitleBar:    el(0.30, 0.35),
		ElementActivityBar: el(0.26, 0.35),
		ElementStatusBar:   el(0.28, 0.35),
	},
	Light: {
		ElementTitleBar:    el(0.88, 0.30),
		ElementActivityBar: el(0.84, 0.30),
		ElementStatusBar:   el(0.86, 0.30),
	},
	HighContrast: {
		ElementTitleBar:    el(0.25, 0.45),
		ElementActivityBar: el(0.21, 0.45),
		ElementStatusBar:   el(0.23, 0.45),
	},
}

var vibrantTable = Table{
	Dark: {
		ElementTitleBar:    el(0.42, 0.85),
		ElementActivityBar: el(0.38, 0.85),
		ElementStatusBar:   el(0.40, 0.85),
	},
	Light: {
		ElementTitleBar:    el(0.76, 0.80),
		ElementActivityBar: el(0.72, 0.80),
		ElementStatusBar:   el(0.74, 0.80),
	},
	HighContrast: {
		ElementTitleBar:    el(0.36, 1.00),
		ElementActivityBar: el(0.32, 1.00),
		ElementStatusBar:   el(0.34, 1.00),
	},
}

var mutedTable = Table{
	Dark: {
		ElementTitleBar:    el(0.30, 0.15),
		ElementActivityBar: el(0.26, 0.15),
		ElementStatusBar:   el(0.28, 0.15),
	},
	Light: {
		ElementTitleBar:    el(0.87, 0.12),
		ElementActivityBar: el(0.83, 0.12),
		ElementStatusBar:   el(0.85, 0.12),
	},
	HighContrast: {
		ElementTitleBar:    el(0.24, 0.20),
		ElementActivityBar: el(0.20, 0.20),
		ElementStatusBar:   el(0.22, 0.20),
	},
}

// tintedTable stays close to stock editor chrome lightness so the hue
// reads as a wash over the theme rather than a new color.
var tintedTable = Table{
	Dark: {
		ElementTitleBar:    el(0.23, 0.25),
		ElementActivityBar: el(0.20, 0.25),
		ElementStatusBar:   el(0.22, 0.25),
	},
	Light: {
		ElementTitleBar:    el(0.92, 0.18),
		ElementActivityBar: el(0.89, 0.18),
		ElementStatusBar:   el(0.91, 0.18),
	},
	HighContrast: {
		ElementTitleBar:    el(0.18, 0.30),
		ElementActivityBar: el(0.15, 0.30),
		ElementStatusBar:   el(0.17, 0.30),
	},
}

var neonTable = Table{
	Dark: {
		ElementTitleBar:    el(0.56, 1.00),
		ElementActivityBar: el(0.52, 1.00),
		ElementStatusBar:   el(0.54, 1.00),
	},
	Light: {
		ElementTitleBar:    el(0.68, 1.00),
		ElementActivityBar: el(0.64, 1.00),
		ElementStatusBar:   el(0.66, 1.00),
	},
	HighContrast: {
		ElementTitleBar:    el(0.50, 1.00),
		ElementActivityBar: el(0.46, 1.00),
		ElementStatusBar:   el(0.48, 1.00),
	},
}

// duotoneTable keeps the title and activity bars on the base hue and
// swings the status bar to its complement.
var duotoneTable = Table{
	Dark: {
		ElementTitleBar:    elOff(0.30, 0.40, 0),
		ElementActivityBar: elOff(0.26, 0.40, 0),
		ElementStatusBar:   elOff(0.28, 0.40, 180),
	},
	Light: {
		ElementTitleBar:    elOff(0.88, 0.32, 0),
		ElementActivityBar: elOff(0.84, 0.32, 0),
		ElementStatusBar:   elOff(0.86, 0.32, 180),
	},
	HighContrast: {
		ElementTitleBar:    elOff(0.25, 0.50, 0),
		ElementActivityBar: elOff(0.21, 0.50, 0),
		ElementStatusBar:   elOff(0.23, 0.50, 180),
	},
}

// analogousTable spreads the elements across neighboring hues.
var analogousTable = Table{
	Dark: {
		ElementTitleBar:    elOff(0.30, 0.40, -30),
		ElementActivityBar: elOff(0.26, 0.40, 0),
		ElementStatusBar:   elOff(0.28, 0.40, 30),
	},
	Light: {
		ElementTitleBar:    elOff(0.88, 0.32, -30),
		ElementActivityBar: elOff(0.84, 0.32, 0),
		ElementStatusBar:   elOff(0.86, 0.32, 30),
	},
	HighContrast: {
		ElementTitleBar:    elOff(0.25, 0.50, -30),
		ElementActivityBar: elOff(0.21, 0.50, 0),
		ElementStatusBar:   elOff(0.23, 0.50, 30),
	},
}

// monochromeTable drops all chroma: workspaces differ only in
// lightness steps, for users who want structure without color.
var monochromeTable = Table{
	Dark: {
		ElementTitleBar:    el(0.30, 0),
		ElementActivityBar: el(0.26, 0),
		ElementStatusBar:   el(0.28, 0),
	},
	Light: {
		ElementTitleBar:    el(0.88, 0),
		ElementActivityBar: el(0.84, 0),
		ElementStatusBar:   el(0.86, 0),
	},
	HighContrast: {
		ElementTitleBar:    el(0.24, 0),
		ElementActivityBar: el(0.20, 0),
		ElementStatusBar:   el(0.22, 0),
	},
}
