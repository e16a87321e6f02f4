package pawss

import (
	"fmt"
	"github.com/swdee/go-pawss/imagerep"
)

// Feature turns candidate rectangles of a frame into fixed length weighted
// feature vectors and adapts its weighting once the object location of the
// frame has been confirmed.
//
// The per frame call order is PrepEval for the batch of candidates, any
// number of UpdateFeatureVector calls for candidates of that batch, then
// UpdateWeightModel with the confirmed location.  Implementations are not
// safe for concurrent use
type Feature interface {
	// PrepEval builds the integral images covering every candidate of the
	// batch.  It must be called before any UpdateFeatureVector call on the
	// batch's frame
	PrepEval(samples MultiSample) error
	// UpdateFeatureVector returns the feature vector of the sample, a new
	// slice of GetCount() values
	UpdateFeatureVector(sample Sample) ([]float64, error)
	// UpdateWeightModel advances the foreground model and patch weights
	// using the confirmed object location in sample
	UpdateWeightModel(sample Sample) error
	// GetCount returns the feature vector length
	GetCount() int
}

// MotionFeature is a Feature with a motion modality which needs the
// previous frame's grayscale plane
type MotionFeature interface {
	Feature
	// SetPrevImg sets the frame motion is measured against
	SetPrevImg(img *imagerep.ImageRep)
}

// Evaluate prepares the feature for the batch and returns the feature vector
// of every candidate in batch order
func Evaluate(f Feature, samples MultiSample) ([][]float64, error) {

	err := f.PrepEval(samples)

	if err != nil {
		return nil, fmt.Errorf("error preparing evaluation: %w", err)
	}

	vecs := make([][]float64, samples.Len())

	for i := range vecs {
		vecs[i], err = f.UpdateFeatureVector(samples.At(i))

		if err != nil {
			return nil, fmt.Errorf("error computing feature vector %d: %w", i, err)
		}
	}

	return vecs, nil
}
