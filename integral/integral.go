// Package integral provides prefix sum images so the sum over any axis
// aligned rectangle can be queried with four array reads.
package integral

import (
	"github.com/swdee/go-pawss/geom"
)

// Image is an integral image built over a region of interest of a larger
// frame.  Queries take absolute frame coordinates
type Image struct {
	// roi is the frame region the integral image covers
	roi geom.IntRect
	// stride is the row length of data, roi.W+1
	stride int
	// data holds (roi.H+1) x (roi.W+1) prefix sums, row and column 0 are zero
	data []float64
}

// Build returns the integral image of plane, a roi.W x roi.H row major array
// of values covering roi
func Build(plane []float32, roi geom.IntRect) *Image {
	img := &Image{}
	img.build(plane, roi, nil)
	return img
}

// build computes the prefix sums into buf when it has enough capacity,
// otherwise a new buffer is allocated
func (m *Image) build(plane []float32, roi geom.IntRect, buf []float64) {

	if roi.W < 0 {
		roi.W = 0
	}

	if roi.H < 0 {
		roi.H = 0
	}

	m.roi = roi
	m.stride = roi.W + 1
	size := (roi.H + 1) * m.stride

	if cap(buf) < size {
		buf = make([]float64, size)
	}

	m.data = buf[:size]

	// first row stays zero
	for x := 0; x < m.stride; x++ {
		m.data[x] = 0
	}

	for y := 0; y < roi.H; y++ {

		row := plane[y*roi.W : (y+1)*roi.W]
		prev := m.data[y*m.stride:]
		cur := m.data[(y+1)*m.stride:]

		cur[0] = 0
		rowSum := 0.0

		for x, v := range row {
			rowSum += float64(v)
			cur[x+1] = prev[x+1] + rowSum
		}
	}
}

// ROI returns the frame region covered by the integral image
func (m *Image) ROI() geom.IntRect {
	return m.roi
}

// at returns the prefix sum at absolute frame coordinate (x, y), which must
// lie within [roi.X, roi.XMax()] x [roi.Y, roi.YMax()]
func (m *Image) at(x, y int) float64 {
	return m.data[(y-m.roi.Y)*m.stride+(x-m.roi.X)]
}

// Sum returns the sum of values within r.  The part of r outside the region
// of interest contributes nothing, zero area rectangles sum to zero
func (m *Image) Sum(r geom.IntRect) float64 {

	r = r.Intersect(m.roi)

	if r.Empty() {
		return 0
	}

	return m.at(r.XMax(), r.YMax()) - m.at(r.X, r.YMax()) -
		m.at(r.XMax(), r.Y) + m.at(r.X, r.Y)
}

// Mean returns the sum of values within r divided by the area of r.  Zero is
// returned for zero area rectangles
func (m *Image) Mean(r geom.IntRect) float64 {

	area := r.Area()

	if area == 0 {
		return 0
	}

	return m.Sum(r) / float64(area)
}
