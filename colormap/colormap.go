// Package colormap provides the pong7 colormap: a fixed, ordered list of
// high-contrast colors for plotting multiple line series on the same axes.
// The standard palettes make frequently intersecting lines hard to tell
// apart; these colors were chosen for maximum contrast between neighbors.
package colormap

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/plot/palette"
)

// Hex is the pong7 palette in cycling order. The order is stable; consumers
// may rely on index i always mapping to the same color.
var Hex = []string{
	"#1f77b4", // tab10 blue
	"#d68d04", // Ochre orange
	"#de182c", // Lava red
	"#2c8a0f", // Mint green
	"#ff0fd7", // Fuchsia pink
	"#04d68d", // Sky blue
	"#563d61", // Plum purple
}

// Name is the colormap's registered name.
const Name = "pong7"

var rgba = mustParseAll(Hex)

// Color returns the color for a given series index, cycling through the
// palette.
func Color(index int) lipgloss.Color {
	return lipgloss.Color(Hex[index%len(Hex)])
}

// Style returns a lipgloss style with the foreground color for the given
// series index.
func Style(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Color(index))
}

// RGBA returns the color for a given series index as an image/color value,
// cycling through the palette.
func RGBA(index int) color.Color {
	return rgba[index%len(rgba)]
}

// Colors returns the palette as image/color values in cycling order. The
// returned slice is a copy; mutating it does not affect the palette.
func Colors() []color.Color {
	out := make([]color.Color, len(rgba))
	for i, c := range rgba {
		out[i] = c
	}
	return out
}

type pong7 struct{}

func (pong7) Colors() []color.Color { return Colors() }

// Palette returns the colormap as a gonum/plot palette, for use with
// anything that cycles colors through a palette.Palette.
func Palette() palette.Palette {
	return pong7{}
}

func mustParseAll(hex []string) []color.RGBA {
	out := make([]color.RGBA, len(hex))
	for i, h := range hex {
		c, err := parseHex(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

func parseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
