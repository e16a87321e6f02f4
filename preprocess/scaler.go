package preprocess

import (
	"github.com/swdee/go-pawss/geom"
	"gocv.io/x/gocv"
	"image"
	"math"
)

// FrameScaler defines the struct used for scaling the frames of a sequence so
// the tracked object has a working size
type FrameScaler struct {
	// srcWidth is the width of the source frames
	srcWidth int
	// srcHeight is the height of the source frames
	srcHeight int
	// destWidth is the width to scale to
	destWidth int
	// destHeight is the height to scale to
	destHeight int
	// scale is the factor from source to scaled frame coordinates
	scale float64
}

// NewFrameScaler returns a scaler for srcWidth x srcHeight frames choosing
// the scale factor so the shorter side of box becomes approximately
// targetSide pixels.  Frames are never upscaled
func NewFrameScaler(srcWidth, srcHeight int, box geom.IntRect, targetSide int) *FrameScaler {
	s := &FrameScaler{
		srcWidth:  srcWidth,
		srcHeight: srcHeight,
		scale:     1,
	}

	// precalculate scaling dimensions
	s.preCalc(box, targetSide)

	return s
}

// preCalc the scale factor and scaled frame dimensions
func (s *FrameScaler) preCalc(box geom.IntRect, targetSide int) {

	side := min(box.W, box.H)

	if side > 0 && targetSide > 0 && targetSide < side {
		s.scale = float64(targetSide) / float64(side)
	}

	s.destWidth = max(int(math.Round(float64(s.srcWidth)*s.scale)), 1)
	s.destHeight = max(int(math.Round(float64(s.srcHeight)*s.scale)), 1)
}

// Scale resizes src into dest.  When no scaling is needed src is copied
func (s *FrameScaler) Scale(src gocv.Mat, dest *gocv.Mat) {

	if s.scale == 1 {
		src.CopyTo(dest)
		return
	}

	gocv.Resize(src, dest, image.Pt(s.destWidth, s.destHeight),
		0, 0, gocv.InterpolationArea)
}

// ToFrame maps a rectangle from source to scaled frame coordinates
func (s *FrameScaler) ToFrame(r geom.IntRect) geom.IntRect {
	return r.Float().Scale(s.scale, s.scale).Int()
}

// FromFrame maps a rectangle from scaled frame to source coordinates
func (s *FrameScaler) FromFrame(r geom.IntRect) geom.IntRect {
	return r.Float().Scale(1/s.scale, 1/s.scale).Int()
}

// ScaleFactor returns the scale factor from source to scaled frames
func (s *FrameScaler) ScaleFactor() float64 {
	return s.scale
}

// DestWidth returns the width of the scaled frames
func (s *FrameScaler) DestWidth() int {
	return s.destWidth
}

// DestHeight returns the height of the scaled frames
func (s *FrameScaler) DestHeight() int {
	return s.destHeight
}

// SrcWidth returns the width of the source frames
func (s *FrameScaler) SrcWidth() int {
	return s.srcWidth
}

// SrcHeight returns the height of the source frames
func (s *FrameScaler) SrcHeight() int {
	return s.srcHeight
}
