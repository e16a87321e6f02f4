package render

import (
	"image/color"
	"math"
)

var (
	// boxColors is a list of colors used to paint the tracked object box
	boxColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 112, B: 31, A: 255},  // #FF701F
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 207, G: 210, B: 49, A: 255},  // #CFD231
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 26, G: 147, B: 52, A: 255},   // #1A9334
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 52, G: 69, B: 147, A: 255},   // #344593
		{R: 100, G: 115, B: 255, A: 255}, // #6473FF
	}

	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Pink   = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	// unreliable and reliable are the end points of the patch weight shading
	unreliable = color.RGBA{R: 255, G: 56, B: 56, A: 255}
	reliable   = color.RGBA{R: 72, G: 249, B: 10, A: 255}
)

// BoxColor returns the palette color for index i
func BoxColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}

	return boxColors[i%len(boxColors)]
}

// WeightColor shades a patch weight in [0,1] from red for unreliable patches
// to green for reliable ones, values outside the range are clamped
func WeightColor(w float64) color.RGBA {

	if math.IsNaN(w) {
		w = 0
	}

	w = math.Max(0, math.Min(1, w))

	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + w*(float64(b)-float64(a))))
	}

	return color.RGBA{
		R: mix(unreliable.R, reliable.R),
		G: mix(unreliable.G, reliable.G),
		B: mix(unreliable.B, reliable.B),
		A: 255,
	}
}
