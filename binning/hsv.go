package binning

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
)

// HSVIndex holds the separate bin indices of hue, saturation and value
type HSVIndex struct {
	H, S, V int
}

// HSV quantizes the hue, saturation and value of a smoothed pixel color
// independently
type HSV struct {
	// HBins, SBins and VBins are the number of bins per component
	HBins int
	SBins int
	VBins int
	// Radius of the smoothing neighborhood applied in RGB space before
	// conversion
	Radius int
}

// NewHSV returns an HSV quantizer
func NewHSV(hBins, sBins, vBins, radius int) HSV {
	return HSV{HBins: hBins, SBins: sBins, VBins: vBins, Radius: radius}
}

// Count returns the number of bins of the concatenated H, S, V histograms
func (q HSV) Count() int {
	return q.HBins + q.SBins + q.VBins
}

// JointCount returns the number of bins of the joint histogram, H*S*V
func (q HSV) JointCount() int {
	return q.HBins * q.SBins * q.VBins
}

// Index returns the component bin indices of an RGB color
func (q HSV) Index(r, g, b uint8) HSVIndex {

	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}

	h, s, v := c.Hsv()

	return HSVIndex{
		H: quantizeUnit(h/360.0, q.HBins),
		S: quantizeUnit(s, q.SBins),
		V: quantizeUnit(v, q.VBins),
	}
}

// Offsets returns the positions of the component bins when the three
// histograms are concatenated H, S, V
func (q HSV) Offsets(idx HSVIndex) (int, int, int) {
	return idx.H, q.HBins + idx.S, q.HBins + q.SBins + idx.V
}

// Joint returns the joint histogram bin of idx
func (q HSV) Joint(idx HSVIndex) int {
	return (idx.H*q.SBins+idx.S)*q.VBins + idx.V
}

// Indices returns the component bin indices of the smoothed color of every
// pixel within roi, a roi.W x roi.H row major array
func (q HSV) Indices(img *imagerep.ImageRep, roi geom.IntRect) ([]HSVIndex, error) {

	if roi.Empty() {
		return nil, nil
	}

	smooth, err := Smooth(img, roi, q.Radius)

	if err != nil {
		return nil, err
	}

	red, green, blue := smooth.Channel(imagerep.Red), smooth.Channel(imagerep.Green),
		smooth.Channel(imagerep.Blue)

	out := make([]HSVIndex, len(red))

	for i := range out {
		out[i] = q.Index(red[i], green[i], blue[i])
	}

	return out, nil
}

// BinImage writes the joint bin index of every pixel within roi into out,
// a roi.W x roi.H row major array
func (q HSV) BinImage(img *imagerep.ImageRep, roi geom.IntRect, out []int) error {

	idx, err := q.Indices(img, roi)

	if err != nil {
		return err
	}

	for i, v := range idx {
		out[i] = q.Joint(v)
	}

	return nil
}

// quantizeUnit maps a value in [0,1] into one of n equal width bins, the
// upper bound falls into the last bin
func quantizeUnit(v float64, n int) int {

	bin := int(v * float64(n))

	if bin >= n {
		return n - 1
	}

	if bin < 0 {
		return 0
	}

	return bin
}
