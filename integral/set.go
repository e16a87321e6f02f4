package integral

import (
	"github.com/swdee/go-pawss/geom"
	"sync"
)

// Set is a collection of integral images, one per histogram bin, covering
// the same region of interest.  The workflow for each frame is Reset, fill
// the indicator planes with Add or Plane, then Build before any Sum query
type Set struct {
	// roi is the frame region the set covers
	roi geom.IntRect
	// planes are the per bin indicator planes for the current frame
	planes [][]float32
	// images are the per bin integral images for the current frame
	images []Image
	// built is set once Build has completed for the current frame
	built bool
	// arena holds reusable buffers between frames
	arena arena
}

// NewSet returns an empty integral image set
func NewSet() *Set {
	return &Set{}
}

// Reset prepares zeroed indicator planes for bins histogram bins over roi.
// Any integral images from a previous frame are discarded
func (s *Set) Reset(bins int, roi geom.IntRect) {

	if roi.W < 0 {
		roi.W = 0
	}

	if roi.H < 0 {
		roi.H = 0
	}

	s.roi = roi
	s.built = false

	if cap(s.planes) < bins {
		s.planes = make([][]float32, bins)
		s.images = make([]Image, bins)
	}

	s.planes = s.planes[:bins]
	s.images = s.images[:bins]

	for bin := 0; bin < bins; bin++ {
		s.planes[bin] = s.arena.plane(bin, roi.Area())
		s.images[bin] = Image{}
	}
}

// Bins returns the number of histogram bins in the set
func (s *Set) Bins() int {
	return len(s.planes)
}

// ROI returns the frame region covered by the set
func (s *Set) ROI() geom.IntRect {
	return s.roi
}

// Built reports whether Build has completed since the last Reset
func (s *Set) Built() bool {
	return s.built
}

// Plane returns the indicator plane of bin in ROI relative row major order
func (s *Set) Plane(bin int) []float32 {
	return s.planes[bin]
}

// Add accumulates v into the indicator plane of bin at absolute frame
// coordinate (x, y), which must lie inside the ROI
func (s *Set) Add(bin, x, y int, v float32) {
	s.planes[bin][(y-s.roi.Y)*s.roi.W+(x-s.roi.X)] += v
}

// Build computes the integral image of every bin.  Bins are independent so
// they are built concurrently, Build returns once all have completed
func (s *Set) Build() {

	var wg sync.WaitGroup

	for bin := range s.planes {

		wg.Add(1)

		go func(bin int) {
			defer wg.Done()

			img := &s.images[bin]
			img.build(s.planes[bin], s.roi, s.arena.sum(bin))
			s.arena.keep(bin, img.data)
		}(bin)
	}

	wg.Wait()
	s.built = true
}

// Image returns the integral image of bin, only valid after Build
func (s *Set) Image(bin int) *Image {
	return &s.images[bin]
}

// Sum returns the sum of bin's indicator values within r
func (s *Set) Sum(bin int, r geom.IntRect) float64 {
	return s.images[bin].Sum(r)
}
