package binning

import (
	"github.com/swdee/go-pawss/geom"
	"gocv.io/x/gocv"
)

// Motion quantizes the orientation of the temporal difference between two
// consecutive grayscale frames.  The gradient magnitude of the difference is
// used as a continuous weight rather than a hard indicator
type Motion struct {
	// Bins is the number of orientation sectors covering [0, 360) degrees
	Bins int
}

// NewMotion returns a Motion quantizer
func NewMotion(bins int) Motion {
	return Motion{Bins: bins}
}

// Count returns the number of motion histogram bins
func (m Motion) Count() int {
	return m.Bins
}

// Compute derives the orientation (degrees in [0, 360)) and magnitude of the
// spatial gradient of cur-prev for every pixel within roi.  prev and cur are
// width x height planes, ori and mag are roi.W x roi.H row major outputs
func (m Motion) Compute(prev, cur []uint8, width, height int, roi geom.IntRect,
	ori, mag []float32) error {

	if roi.Empty() {
		return nil
	}

	region := roi.Pad(1).Clamp(width, height)

	prevMat, err := floatMat(prev, width, region)

	if err != nil {
		return err
	}

	defer prevMat.Close()

	curMat, err := floatMat(cur, width, region)

	if err != nil {
		return err
	}

	defer curMat.Close()

	diff := gocv.NewMat()
	defer diff.Close()

	gocv.Subtract(curMat, prevMat, &diff)

	return polarGradient(diff, region, roi, ori, mag)
}

// Bin returns the orientation sector of deg
func (m Motion) Bin(deg float32) int {
	return sector(float64(deg), 360, m.Bins)
}

// Gradient quantizes the unsigned orientation of the grayscale image
// gradient, weighted by the gradient magnitude
type Gradient struct {
	// Bins is the number of orientation sectors covering [0, 180) degrees
	Bins int
}

// NewGradient returns a Gradient quantizer
func NewGradient(bins int) Gradient {
	return Gradient{Bins: bins}
}

// Count returns the number of gradient histogram bins
func (g Gradient) Count() int {
	return g.Bins
}

// Compute derives the unsigned orientation (degrees in [0, 180)) and
// magnitude of the gradient of the width x height plane gray for every
// pixel within roi
func (g Gradient) Compute(gray []uint8, width, height int, roi geom.IntRect,
	ori, mag []float32) error {

	if roi.Empty() {
		return nil
	}

	region := roi.Pad(1).Clamp(width, height)

	src, err := floatMat(gray, width, region)

	if err != nil {
		return err
	}

	defer src.Close()

	err = polarGradient(src, region, roi, ori, mag)

	if err != nil {
		return err
	}

	for i := range ori[:roi.Area()] {
		ori[i] = fold(ori[i], 180)
	}

	return nil
}

// Bin returns the orientation sector of deg
func (g Gradient) Bin(deg float32) int {
	return sector(float64(deg), 180, g.Bins)
}

// sector maps an angle in [0, period) into one of n equal sectors
func sector(deg, period float64, n int) int {

	bin := int(deg * float64(n) / period)

	if bin >= n {
		return n - 1
	}

	if bin < 0 {
		return 0
	}

	return bin
}
