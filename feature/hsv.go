package feature

import (
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/binning"
	"github.com/swdee/go-pawss/imagerep"
)

// PatchHsvMFeature combines hue, saturation and value histograms with
// motion histograms and adapts its patch weights with an HSV foreground
// model.  Hue separates object colors better than RGB under illumination
// changes
type PatchHsvMFeature struct {
	base   *patchBase
	hsv    binning.HSV
	motion binning.Motion
}

// NewPatchHsvMFeature returns an HSV plus motion patch feature with adaptive
// patch weights configured by p, the feature kind of p is ignored
func NewPatchHsvMFeature(p pawss.Params) (*PatchHsvMFeature, error) {

	p, err := validate(p, pawss.FeatureHsvM)

	if err != nil {
		return nil, err
	}

	hsv := binning.NewHSV(p.HBins, p.SBins, p.VBins, p.SmoothRadius)
	motion := binning.NewMotion(p.MotionBins)

	f := &PatchHsvMFeature{
		base:   newPatchBase(p, colorMotionGroups(p, hsv.Count(), motion.Count())),
		hsv:    hsv,
		motion: motion,
	}

	f.base.seg = newSegmentation(p, hsv.JointCount(), hsv.BinImage)

	return f, nil
}

// SetPrevImg sets the frame motion is measured against
func (f *PatchHsvMFeature) SetPrevImg(img *imagerep.ImageRep) {
	f.base.prev = img
}

// PrepEval builds the integral images for the batch
func (f *PatchHsvMFeature) PrepEval(samples pawss.MultiSample) error {

	roi, err := f.base.begin(samples)

	if err != nil {
		return err
	}

	err = f.base.fillHSV(f.hsv, 0, samples.Image, roi)

	if err != nil {
		return err
	}

	err = f.base.fillMotion(f.motion, f.hsv.Count(), samples.Image, roi)

	if err != nil {
		return err
	}

	f.base.finish(samples.Image, roi)

	return nil
}

// UpdateFeatureVector returns the feature vector of sample
func (f *PatchHsvMFeature) UpdateFeatureVector(sample pawss.Sample) ([]float64, error) {
	return f.base.featureVector(sample)
}

// UpdateWeightModel learns the foreground model from the confirmed object
// location in sample and blends the resulting patch reliabilities into the
// patch weights
func (f *PatchHsvMFeature) UpdateWeightModel(sample pawss.Sample) error {
	return f.base.updateWeights(sample)
}

// GetCount returns the feature vector length
func (f *PatchHsvMFeature) GetCount() int {
	return f.base.count()
}

// PatchWeights returns a copy of the patch weights
func (f *PatchHsvMFeature) PatchWeights() []float64 {
	return f.base.weights.snapshot()
}

// Reset returns the patch weights and foreground model to their initial
// state and forgets the previous frame
func (f *PatchHsvMFeature) Reset() {
	f.base.reset()
}
