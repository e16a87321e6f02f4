/*
Package feature implements the patch based appearance features.  Every
variant tiles a candidate rectangle into a grid of patches, describes each
patch by histograms read from per bin integral images and scales each patch
by its reliability weight.
*/
package feature

import (
	"fmt"
	"github.com/swdee/go-pawss"
)

// Weighted is implemented by features exposing their patch weights
type Weighted interface {
	// PatchWeights returns a copy of the weight of every patch in row major
	// grid order
	PatchWeights() []float64
}

// New returns the feature variant selected by p.Feature
func New(p pawss.Params) (pawss.Feature, error) {

	err := p.Validate()

	if err != nil {
		return nil, fmt.Errorf("error creating feature: %w", err)
	}

	switch p.Feature {
	case pawss.FeatureRgb:
		return NewPatchRgbFeature(p)
	case pawss.FeatureRgbM:
		return NewPatchRgbMFeature(p)
	case pawss.FeatureRgbMSeg:
		return NewPatchRgbMSegFeature(p)
	case pawss.FeatureHsvM:
		return NewPatchHsvMFeature(p)
	case pawss.FeatureMot:
		return NewPatchMotFeature(p)
	case pawss.FeatureGrad:
		return NewPatchGradFeature(p)
	}

	return nil, fmt.Errorf("%w: unsupported feature %v", pawss.ErrInvalidParams, p.Feature)
}

// validate checks p for the given feature kind
func validate(p pawss.Params, kind pawss.FeatureKind) (pawss.Params, error) {

	p.Feature = kind

	err := p.Validate()

	if err != nil {
		return p, fmt.Errorf("error creating %s feature: %w", kind, err)
	}

	return p, nil
}

// colorMotionGroups returns the group layout of a color modality followed
// by a motion modality
func colorMotionGroups(p pawss.Params, colorBins, motionBins int) []group {
	return []group{
		{name: "color", offset: 0, bins: colorBins, weight: p.ColorWeight},
		{name: "motion", offset: colorBins, bins: motionBins, weight: p.MotionWeight},
	}
}

// singleGroup returns the group layout of a feature with a single modality
func singleGroup(name string, bins int) []group {
	return []group{
		{name: name, offset: 0, bins: bins, weight: 1},
	}
}
