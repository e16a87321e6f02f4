package pawss

import (
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
)

// Sample is a single candidate rectangle on a frame
type Sample struct {
	// Image is the frame the candidate is evaluated on
	Image *imagerep.ImageRep
	// Rect is the candidate object location
	Rect geom.IntRect
}

// NewSample returns a Sample for rect on img
func NewSample(img *imagerep.ImageRep, rect geom.IntRect) Sample {
	return Sample{Image: img, Rect: rect}
}

// MultiSample is an ordered batch of candidate rectangles on the same frame
// which share one integral image preparation
type MultiSample struct {
	// Image is the frame all candidates are evaluated on
	Image *imagerep.ImageRep
	// Rects are the candidate object locations
	Rects []geom.IntRect
}

// NewMultiSample returns a MultiSample for rects on img
func NewMultiSample(img *imagerep.ImageRep, rects []geom.IntRect) MultiSample {
	return MultiSample{Image: img, Rects: rects}
}

// Len returns the number of candidates in the batch
func (m MultiSample) Len() int {
	return len(m.Rects)
}

// At returns candidate i as a Sample
func (m MultiSample) At(i int) Sample {
	return Sample{Image: m.Image, Rect: m.Rects[i]}
}

// UnionRect returns the smallest rectangle covering all candidates
func (m MultiSample) UnionRect() geom.IntRect {
	return geom.Union(m.Rects)
}
