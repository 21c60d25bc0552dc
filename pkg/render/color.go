// Package render provides a small software renderer: a framebuffer with
// OpenGL-style bottom-up rows, a first-person camera, and a depth-tested
// triangle rasterizer for vertex-colored meshes.
package render

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	ColorBlack   = Color{0, 0, 0}
	ColorWhite   = Color{255, 255, 255}
	ColorRed     = Color{255, 0, 0}
	ColorGreen   = Color{0, 255, 0}
	ColorBlue    = Color{0, 0, 255}
	ColorYellow  = Color{255, 255, 0}
	ColorMagenta = Color{255, 0, 255}
	ColorCyan    = Color{0, 255, 255}
)

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// RGBf creates a color from components in [0, 1], rounding the way OpenGL
// converts floats to normalized bytes.
func RGBf(r, g, b float64) Color {
	return Color{unorm8(r), unorm8(g), unorm8(b)}
}

func unorm8(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 255}.RGBA()
}
