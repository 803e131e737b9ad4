package tiltdodge

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Obstacle colours stay dark so they read against a light background.
const (
	minLightness = 0.15
	maxLightness = 0.40
)

var (
	defaultBallColor  = colornames.Steelblue
	defaultFloorColor = colornames.Dimgray
)

// colorFor returns the colour of the obstacle at index for a seed.
// Same inputs always give the same colour.
func colorFor(index int, seed int64) core.Color {
	rng := rand.New(rand.NewSource(seed ^ int64(index+1)*0x9E3779B9))
	h := rng.Float64() * 360
	s := 0.5 + rng.Float64()*0.4
	l := minLightness + rng.Float64()*(maxLightness-minLightness)
	r, g, b := colorful.Hsl(h, s, l).RGB255()
	return core.Color{R: r, G: g, B: b}
}

// parseColor reads a #rrggbb string, using fallback when it is empty or invalid.
func parseColor(hex string, fallback color.Color) core.Color {
	if hex != "" {
		if c, err := colorful.Hex(hex); err == nil {
			return core.ColorFrom(c)
		}
	}
	return core.ColorFrom(fallback)
}
