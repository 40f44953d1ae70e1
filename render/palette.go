package render

import "image/color"

// Palette is a named foreground/background pair.
type Palette struct {
	Name       string
	Foreground color.RGBA
	Background color.RGBA
}

// Palettes lists the selectable color schemes. The first is the default.
var Palettes = []Palette{
	{Name: "white", Foreground: DefaultForeground, Background: DefaultBackground},
	{Name: "green", Foreground: color.RGBA{R: 0x33, G: 0xFF, B: 0x33, A: 0xFF}, Background: color.RGBA{R: 0x00, G: 0x11, B: 0x00, A: 0xFF}},
	{Name: "amber", Foreground: color.RGBA{R: 0xFF, G: 0xB0, B: 0x00, A: 0xFF}, Background: color.RGBA{R: 0x11, G: 0x08, B: 0x00, A: 0xFF}},
}

// PaletteNames returns the palette names in order.
func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// LookupPalette finds a palette by name, falling back to the default.
func LookupPalette(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palettes[0], false
}
