package feature

import (
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/binning"
	"github.com/swdee/go-pawss/imagerep"
)

// PatchRgbFeature describes every patch by separate red, green and blue
// histograms with uniform patch weights
type PatchRgbFeature struct {
	base *patchBase
	rgb  binning.RGB
}

// NewPatchRgbFeature returns an RGB patch feature configured by p, the
// feature kind of p is ignored
func NewPatchRgbFeature(p pawss.Params) (*PatchRgbFeature, error) {

	p, err := validate(p, pawss.FeatureRgb)

	if err != nil {
		return nil, err
	}

	rgb := binning.NewRGB(p.RBins, p.GBins, p.BBins, p.SmoothRadius)

	return &PatchRgbFeature{
		base: newPatchBase(p, singleGroup("color", rgb.Count())),
		rgb:  rgb,
	}, nil
}

// PrepEval builds the integral images for the batch
func (f *PatchRgbFeature) PrepEval(samples pawss.MultiSample) error {

	roi, err := f.base.begin(samples)

	if err != nil {
		return err
	}

	err = f.base.fillRGB(f.rgb, 0, samples.Image, roi)

	if err != nil {
		return err
	}

	f.base.finish(samples.Image, roi)

	return nil
}

// UpdateFeatureVector returns the feature vector of sample
func (f *PatchRgbFeature) UpdateFeatureVector(sample pawss.Sample) ([]float64, error) {
	return f.base.featureVector(sample)
}

// UpdateWeightModel is a no-op, patch weights stay uniform
func (f *PatchRgbFeature) UpdateWeightModel(sample pawss.Sample) error {
	return f.base.updateWeights(sample)
}

// GetCount returns the feature vector length
func (f *PatchRgbFeature) GetCount() int {
	return f.base.count()
}

// PatchWeights returns a copy of the patch weights
func (f *PatchRgbFeature) PatchWeights() []float64 {
	return f.base.weights.snapshot()
}

// Reset returns the feature to its initial state
func (f *PatchRgbFeature) Reset() {
	f.base.reset()
}

// PatchRgbMFeature combines RGB histograms with motion orientation
// histograms using uniform patch weights
type PatchRgbMFeature struct {
	base   *patchBase
	rgb    binning.RGB
	motion binning.Motion
}

// NewPatchRgbMFeature returns an RGB plus motion patch feature configured
// by p, the feature kind of p is ignored
func NewPatchRgbMFeature(p pawss.Params) (*PatchRgbMFeature, error) {

	p, err := validate(p, pawss.FeatureRgbM)

	if err != nil {
		return nil, err
	}

	rgb := binning.NewRGB(p.RBins, p.GBins, p.BBins, p.SmoothRadius)
	motion := binning.NewMotion(p.MotionBins)

	return &PatchRgbMFeature{
		base:   newPatchBase(p, colorMotionGroups(p, rgb.Count(), motion.Count())),
		rgb:    rgb,
		motion: motion,
	}, nil
}

// SetPrevImg sets the frame motion is measured against
func (f *PatchRgbMFeature) SetPrevImg(img *imagerep.ImageRep) {
	f.base.prev = img
}

// PrepEval builds the integral images for the batch
func (f *PatchRgbMFeature) PrepEval(samples pawss.MultiSample) error {

	roi, err := f.base.begin(samples)

	if err != nil {
		return err
	}

	err = f.base.fillRGB(f.rgb, 0, samples.Image, roi)

	if err != nil {
		return err
	}

	err = f.base.fillMotion(f.motion, f.rgb.Count(), samples.Image, roi)

	if err != nil {
		return err
	}

	f.base.finish(samples.Image, roi)

	return nil
}

// UpdateFeatureVector returns the feature vector of sample
func (f *PatchRgbMFeature) UpdateFeatureVector(sample pawss.Sample) ([]float64, error) {
	return f.base.featureVector(sample)
}

// UpdateWeightModel is a no-op, patch weights stay uniform
func (f *PatchRgbMFeature) UpdateWeightModel(sample pawss.Sample) error {
	return f.base.updateWeights(sample)
}

// GetCount returns the feature vector length
func (f *PatchRgbMFeature) GetCount() int {
	return f.base.count()
}

// PatchWeights returns a copy of the patch weights
func (f *PatchRgbMFeature) PatchWeights() []float64 {
	return f.base.weights.snapshot()
}

// Reset returns the feature to its initial state
func (f *PatchRgbMFeature) Reset() {
	f.base.reset()
}

// PatchRgbMSegFeature combines RGB and motion histograms and weights every
// patch by how much of it an online RGB foreground model attributes to the
// object
type PatchRgbMSegFeature struct {
	base   *patchBase
	rgb    binning.RGB
	motion binning.Motion
}

// NewPatchRgbMSegFeature returns an RGB plus motion patch feature with
// adaptive patch weights configured by p, the feature kind of p is ignored
func NewPatchRgbMSegFeature(p pawss.Params) (*PatchRgbMSegFeature, error) {

	p, err := validate(p, pawss.FeatureRgbMSeg)

	if err != nil {
		return nil, err
	}

	rgb := binning.NewRGB(p.RBins, p.GBins, p.BBins, p.SmoothRadius)
	motion := binning.NewMotion(p.MotionBins)

	f := &PatchRgbMSegFeature{
		base:   newPatchBase(p, colorMotionGroups(p, rgb.Count(), motion.Count())),
		rgb:    rgb,
		motion: motion,
	}

	f.base.seg = newSegmentation(p, rgb.JointCount(), rgb.BinImage)

	return f, nil
}

// SetPrevImg sets the frame motion is measured against
func (f *PatchRgbMSegFeature) SetPrevImg(img *imagerep.ImageRep) {
	f.base.prev = img
}

// PrepEval builds the integral images for the batch
func (f *PatchRgbMSegFeature) PrepEval(samples pawss.MultiSample) error {

	roi, err := f.base.begin(samples)

	if err != nil {
		return err
	}

	err = f.base.fillRGB(f.rgb, 0, samples.Image, roi)

	if err != nil {
		return err
	}

	err = f.base.fillMotion(f.motion, f.rgb.Count(), samples.Image, roi)

	if err != nil {
		return err
	}

	f.base.finish(samples.Image, roi)

	return nil
}

// UpdateFeatureVector returns the feature vector of sample
func (f *PatchRgbMSegFeature) UpdateFeatureVector(sample pawss.Sample) ([]float64, error) {
	return f.base.featureVector(sample)
}

// UpdateWeightModel learns the foreground model from the confirmed object
// location in sample and blends the resulting patch reliabilities into the
// patch weights
func (f *PatchRgbMSegFeature) UpdateWeightModel(sample pawss.Sample) error {
	return f.base.updateWeights(sample)
}

// GetCount returns the feature vector length
func (f *PatchRgbMSegFeature) GetCount() int {
	return f.base.count()
}

// PatchWeights returns a copy of the patch weights
func (f *PatchRgbMSegFeature) PatchWeights() []float64 {
	return f.base.weights.snapshot()
}

// Reset returns the patch weights and foreground model to their initial
// state and forgets the previous frame
func (f *PatchRgbMSegFeature) Reset() {
	f.base.reset()
}
