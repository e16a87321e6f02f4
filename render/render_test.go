package render

import (
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-pawss/geom"
	"gocv.io/x/gocv"
	"image/color"
	"testing"
)

func TestWeightColor(t *testing.T) {

	require.Equal(t, unreliable, WeightColor(0))
	require.Equal(t, reliable, WeightColor(1))
	require.Equal(t, reliable, WeightColor(3))
	require.Equal(t, unreliable, WeightColor(-1))

	mid := WeightColor(0.5)
	require.Equal(t, color.RGBA{R: 164, G: 153, B: 33, A: 255}, mid)
}

func TestDrawing(t *testing.T) {

	img := gocv.NewMatWithSize(60, 80, gocv.MatTypeCV8UC3)
	defer img.Close()

	rect := geom.NewIntRect(20, 10, 24, 24)

	PatchWeights(&img, rect, 4, 4, []float64{0, 0.5, 1}, 1)
	Box(&img, rect, BoxColor(0), "", DefaultFont(), 1)

	// right edge of the top left patch
	px := img.GetVecbAt(rect.Y+3, rect.X+5)
	require.Equal(t, []uint8{unreliable.B, unreliable.G, unreliable.R}, []uint8(px))

	// box outline
	px = img.GetVecbAt(rect.YMax()-1, rect.X+12)
	require.Equal(t, []uint8{boxColors[0].B, boxColors[0].G, boxColors[0].R}, []uint8(px))
}
