package feature

import (
	"github.com/swdee/go-pawss/geom"
	"image"
)

// patchGrid tiles a candidate rectangle into nx by ny patches.  The tiling
// only depends on the candidate size so it is cached between calls with the
// same size
type patchGrid struct {
	nx, ny int
	// size is the candidate size the rects were computed for
	size image.Point
	// rects are the patch rectangles relative to the candidate origin, in
	// row major patch order
	rects []geom.IntRect
}

// newPatchGrid returns a grid of nx by ny patches
func newPatchGrid(nx, ny int) *patchGrid {
	return &patchGrid{
		nx:    nx,
		ny:    ny,
		size:  image.Pt(-1, -1),
		rects: make([]geom.IntRect, nx*ny),
	}
}

// count returns the number of patches
func (g *patchGrid) count() int {
	return g.nx * g.ny
}

// setSize recomputes the patch rects for a width x height candidate unless
// they are already cached for that size
func (g *patchGrid) setSize(width, height int) {

	size := image.Pt(width, height)

	if size == g.size {
		return
	}

	g.size = size
	g.rects = geom.Tile(geom.NewIntRect(0, 0, width, height), g.nx, g.ny, g.rects)
}

// place returns the patch rects of rect in absolute frame coordinates,
// written into out
func (g *patchGrid) place(rect geom.IntRect, out []geom.IntRect) []geom.IntRect {

	g.setSize(max(rect.W, 0), max(rect.H, 0))

	out = out[:0]

	for _, r := range g.rects {
		out = append(out, r.Offset(rect.X, rect.Y))
	}

	return out
}
