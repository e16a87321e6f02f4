package feature

import (
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/binning"
	"github.com/swdee/go-pawss/imagerep"
)

// PatchMotFeature describes every patch by motion orientation histograms
// only
type PatchMotFeature struct {
	base   *patchBase
	motion binning.Motion
}

// NewPatchMotFeature returns a motion patch feature configured by p, the
// feature kind of p is ignored
func NewPatchMotFeature(p pawss.Params) (*PatchMotFeature, error) {

	p, err := validate(p, pawss.FeatureMot)

	if err != nil {
		return nil, err
	}

	motion := binning.NewMotion(p.MotionBins)

	return &PatchMotFeature{
		base:   newPatchBase(p, singleGroup("motion", motion.Count())),
		motion: motion,
	}, nil
}

// SetPrevImg sets the frame motion is measured against
func (f *PatchMotFeature) SetPrevImg(img *imagerep.ImageRep) {
	f.base.prev = img
}

// PrepEval builds the integral images for the batch
func (f *PatchMotFeature) PrepEval(samples pawss.MultiSample) error {

	roi, err := f.base.begin(samples)

	if err != nil {
		return err
	}

	err = f.base.fillMotion(f.motion, 0, samples.Image, roi)

	if err != nil {
		return err
	}

	f.base.finish(samples.Image, roi)

	return nil
}

// UpdateFeatureVector returns the feature vector of sample
func (f *PatchMotFeature) UpdateFeatureVector(sample pawss.Sample) ([]float64, error) {
	return f.base.featureVector(sample)
}

// UpdateWeightModel is a no-op, patch weights stay uniform
func (f *PatchMotFeature) UpdateWeightModel(sample pawss.Sample) error {
	return f.base.updateWeights(sample)
}

// GetCount returns the feature vector length
func (f *PatchMotFeature) GetCount() int {
	return f.base.count()
}

// PatchWeights returns a copy of the patch weights
func (f *PatchMotFeature) PatchWeights() []float64 {
	return f.base.weights.snapshot()
}

// Reset returns the feature to its initial state
func (f *PatchMotFeature) Reset() {
	f.base.reset()
}

// PatchGradFeature describes every patch by a histogram of unsigned image
// gradient orientations weighted by gradient magnitude
type PatchGradFeature struct {
	base     *patchBase
	gradient binning.Gradient
}

// NewPatchGradFeature returns a gradient orientation patch feature
// configured by p, the feature kind of p is ignored
func NewPatchGradFeature(p pawss.Params) (*PatchGradFeature, error) {

	p, err := validate(p, pawss.FeatureGrad)

	if err != nil {
		return nil, err
	}

	gradient := binning.NewGradient(p.GradBins)

	return &PatchGradFeature{
		base:     newPatchBase(p, singleGroup("gradient", gradient.Count())),
		gradient: gradient,
	}, nil
}

// PrepEval builds the integral images for the batch
func (f *PatchGradFeature) PrepEval(samples pawss.MultiSample) error {

	roi, err := f.base.begin(samples)

	if err != nil {
		return err
	}

	err = f.base.fillGradient(f.gradient, 0, samples.Image, roi)

	if err != nil {
		return err
	}

	f.base.finish(samples.Image, roi)

	return nil
}

// UpdateFeatureVector returns the feature vector of sample
func (f *PatchGradFeature) UpdateFeatureVector(sample pawss.Sample) ([]float64, error) {
	return f.base.featureVector(sample)
}

// UpdateWeightModel is a no-op, patch weights stay uniform
func (f *PatchGradFeature) UpdateWeightModel(sample pawss.Sample) error {
	return f.base.updateWeights(sample)
}

// GetCount returns the feature vector length
func (f *PatchGradFeature) GetCount() int {
	return f.base.count()
}

// PatchWeights returns a copy of the patch weights
func (f *PatchGradFeature) PatchWeights() []float64 {
	return f.base.weights.snapshot()
}

// Reset returns the feature to its initial state
func (f *PatchGradFeature) Reset() {
	f.base.reset()
}
