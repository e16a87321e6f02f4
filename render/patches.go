package render

import (
	"github.com/swdee/go-pawss/geom"
	"gocv.io/x/gocv"
)

// PatchWeights outlines the nx by ny patch grid of rect, each patch shaded
// by its weight.  weights are in row major grid order, missing weights are
// drawn as unreliable
func PatchWeights(img *gocv.Mat, rect geom.IntRect, nx, ny int, weights []float64,
	lineThickness int) {

	for pid, patch := range geom.Tile(rect, nx, ny, nil) {

		w := 0.0

		if pid < len(weights) {
			w = weights[pid]
		}

		if patch.Empty() {
			continue
		}

		gocv.Rectangle(img, patch.Image(), WeightColor(w), lineThickness)
	}
}
