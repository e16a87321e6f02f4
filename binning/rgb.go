// Package binning contains the per modality bin classifiers which map a
// pixel or pixel neighborhood to a discrete histogram bin.
package binning

import (
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
)

// RGBIndex holds the separate bin indices of each color channel
type RGBIndex struct {
	R, G, B int
}

// RGB quantizes each color channel independently after averaging it over a
// small neighborhood to reduce sensitivity to single pixel noise
type RGB struct {
	// RBins, GBins and BBins are the number of bins per channel
	RBins int
	GBins int
	BBins int
	// Radius of the (2*Radius+1) square smoothing neighborhood, zero
	// disables smoothing
	Radius int
}

// NewRGB returns an RGB quantizer
func NewRGB(rBins, gBins, bBins, radius int) RGB {
	return RGB{RBins: rBins, GBins: gBins, BBins: bBins, Radius: radius}
}

// Count returns the number of histogram bins when the channels are kept as
// separate histograms, R+G+B
func (q RGB) Count() int {
	return q.RBins + q.GBins + q.BBins
}

// JointCount returns the number of bins of the joint color histogram, R*G*B
func (q RGB) JointCount() int {
	return q.RBins * q.GBins * q.BBins
}

// Index returns the per channel bin indices of a color value
func (q RGB) Index(r, g, b uint8) RGBIndex {
	return RGBIndex{
		R: quantize(r, q.RBins),
		G: quantize(g, q.GBins),
		B: quantize(b, q.BBins),
	}
}

// Offsets returns the positions of the channel bins when the three channel
// histograms are concatenated R, G, B
func (q RGB) Offsets(idx RGBIndex) (int, int, int) {
	return idx.R, q.RBins + idx.G, q.RBins + q.GBins + idx.B
}

// Joint returns the joint histogram bin of idx
func (q RGB) Joint(idx RGBIndex) int {
	return (idx.R*q.GBins+idx.G)*q.BBins + idx.B
}

// Indices returns the per channel bin indices of the smoothed color of
// every pixel within roi, a roi.W x roi.H row major array
func (q RGB) Indices(img *imagerep.ImageRep, roi geom.IntRect) ([]RGBIndex, error) {

	if roi.Empty() {
		return nil, nil
	}

	smooth, err := Smooth(img, roi, q.Radius)

	if err != nil {
		return nil, err
	}

	red, green, blue := smooth.Channel(imagerep.Red), smooth.Channel(imagerep.Green),
		smooth.Channel(imagerep.Blue)

	out := make([]RGBIndex, len(red))

	for i := range out {
		out[i] = q.Index(red[i], green[i], blue[i])
	}

	return out, nil
}

// BinImage writes the joint bin index of every pixel within roi into out,
// a roi.W x roi.H row major array
func (q RGB) BinImage(img *imagerep.ImageRep, roi geom.IntRect, out []int) error {

	idx, err := q.Indices(img, roi)

	if err != nil {
		return err
	}

	for i, v := range idx {
		out[i] = q.Joint(v)
	}

	return nil
}

// quantize maps an 8 bit value into one of n equal width bins
func quantize(v uint8, n int) int {
	return int(v) * n / 256
}
