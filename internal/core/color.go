package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB colour handed to the render collaborator.
type Color struct {
	R, G, B uint8
}

// ColorFrom converts any image/color value to a Color, dropping alpha.
func ColorFrom(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
