package pawss

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// KernelType defines the similarity kernel the feature vector is normalized
// for
type KernelType int

const (
	// KernelLinear normalizes the feature vector to unit L2 norm
	KernelLinear KernelType = 1
	// KernelIntersection normalizes each modality to a fixed total mass
	KernelIntersection KernelType = 2
)

// String returns the configuration name of the kernel
func (k KernelType) String() string {
	switch k {
	case KernelLinear:
		return "linear"
	case KernelIntersection:
		return "intersection"
	}

	return fmt.Sprintf("KernelType(%d)", int(k))
}

// ParseKernelType returns the kernel for the configuration name s
func ParseKernelType(s string) (KernelType, error) {
	switch strings.ToLower(s) {
	case "linear":
		return KernelLinear, nil
	case "intersection":
		return KernelIntersection, nil
	}

	return 0, fmt.Errorf("%w: unknown kernel type %q", ErrInvalidParams, s)
}

// FeatureKind selects the modality combination of a patch feature
type FeatureKind int

const (
	// FeatureRgb uses per channel RGB histograms
	FeatureRgb FeatureKind = 1
	// FeatureRgbM combines RGB histograms with motion orientation
	FeatureRgbM FeatureKind = 2
	// FeatureRgbMSeg combines RGB and motion with patch weights learnt by an
	// RGB foreground model
	FeatureRgbMSeg FeatureKind = 3
	// FeatureHsvM combines HSV histograms and motion with patch weights
	// learnt by an HSV foreground model
	FeatureHsvM FeatureKind = 4
	// FeatureMot uses motion orientation only
	FeatureMot FeatureKind = 5
	// FeatureGrad uses gradient orientation only
	FeatureGrad FeatureKind = 6
)

var featureKindNames = map[FeatureKind]string{
	FeatureRgb:     "rgb",
	FeatureRgbM:    "rgbm",
	FeatureRgbMSeg: "rgbmseg",
	FeatureHsvM:    "hsvm",
	FeatureMot:     "mot",
	FeatureGrad:    "grad",
}

// String returns the configuration name of the feature kind
func (f FeatureKind) String() string {

	if name, ok := featureKindNames[f]; ok {
		return name
	}

	return fmt.Sprintf("FeatureKind(%d)", int(f))
}

// ParseFeatureKind returns the feature kind for the configuration name s
func ParseFeatureKind(s string) (FeatureKind, error) {

	for kind, name := range featureKindNames {
		if strings.EqualFold(name, s) {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown feature kind %q", ErrInvalidParams, s)
}

// Params defines the configuration of a patch feature and its adaptive
// weighting
type Params struct {
	// Feature is the modality combination to extract
	Feature FeatureKind
	// Kernel is the normalization scheme applied to the feature vector
	Kernel KernelType
	// PatchNumX and PatchNumY are the dimensions of the patch grid tiling
	// each candidate rectangle
	PatchNumX int
	PatchNumY int
	// RBins, GBins and BBins are the number of bins per color channel
	RBins int
	GBins int
	BBins int
	// HBins, SBins and VBins are the number of bins per HSV component
	HBins int
	SBins int
	VBins int
	// MotionBins is the number of motion orientation bins over 360 degrees
	MotionBins int
	// GradBins is the number of gradient orientation bins over 180 degrees
	GradBins int
	// ColorWeight and MotionWeight are the mixing weights of the color and
	// motion modalities, they must sum to 1
	ColorWeight  float64
	MotionWeight float64
	// SmoothRadius is the radius of the neighborhood averaged before color
	// quantization
	SmoothRadius int
	// EvalPadding is the number of pixels the union of a batch's candidate
	// rectangles is grown by before building integral images
	EvalPadding int
	// TightPadding and WidePadding grow the confirmed object rectangle into
	// the foreground and surrounding contexts of the weight model
	TightPadding int
	WidePadding  int
	// ModelLearningRate is the blending rate of the weight model
	ModelLearningRate float64
	// ModelPrior is the neutral probability of the weight model before its
	// first update
	ModelPrior float64
	// PatchWeightAlpha is the exponential smoothing rate of patch weights
	PatchWeightAlpha float64
}

// DefaultParams returns an instance of Params configured with default
// values for an RGB plus motion feature with segmentation weighting:
// - Patch Grid: 4x4
// - RGB Bins: 8 per channel
// - HSV Bins: 8 hue, 4 saturation, 4 value
// - Motion Bins: 8
// - Gradient Bins: 9
// - Mixing Weights: 0.5 color, 0.5 motion
// - Smooth Radius: 1
// - Paddings: 1 batch, 2 tight context, 30 wide context
// - Weight Model: learning rate 0.1, prior 0.5
// - Patch Weight Alpha: 0.1
func DefaultParams() Params {
	return Params{
		Feature:           FeatureRgbMSeg,
		Kernel:            KernelIntersection,
		PatchNumX:         4,
		PatchNumY:         4,
		RBins:             8,
		GBins:             8,
		BBins:             8,
		HBins:             8,
		SBins:             4,
		VBins:             4,
		MotionBins:        8,
		GradBins:          9,
		ColorWeight:       0.5,
		MotionWeight:      0.5,
		SmoothRadius:      1,
		EvalPadding:       1,
		TightPadding:      2,
		WidePadding:       30,
		ModelLearningRate: 0.1,
		ModelPrior:        0.5,
		PatchWeightAlpha:  0.1,
	}
}

var (
	// ErrInvalidParams is wrapped by all validation errors
	ErrInvalidParams = errors.New("invalid params")
)

// Validate checks the parameters are usable for the selected feature kind
func (p Params) Validate() error {

	if _, ok := featureKindNames[p.Feature]; !ok {
		return fmt.Errorf("%w: unknown feature kind %v", ErrInvalidParams, p.Feature)
	}

	if p.Kernel != KernelLinear && p.Kernel != KernelIntersection {
		return fmt.Errorf("%w: unknown kernel %v", ErrInvalidParams, p.Kernel)
	}

	if p.PatchNumX <= 0 || p.PatchNumY <= 0 {
		return fmt.Errorf("%w: patch grid %dx%d must be positive", ErrInvalidParams,
			p.PatchNumX, p.PatchNumY)
	}

	checks := []struct {
		name  string
		value int
		use   bool
	}{
		{"RBins", p.RBins, p.usesRGB()},
		{"GBins", p.GBins, p.usesRGB()},
		{"BBins", p.BBins, p.usesRGB()},
		{"HBins", p.HBins, p.Feature == FeatureHsvM},
		{"SBins", p.SBins, p.Feature == FeatureHsvM},
		{"VBins", p.VBins, p.Feature == FeatureHsvM},
		{"MotionBins", p.MotionBins, p.UsesMotion()},
		{"GradBins", p.GradBins, p.Feature == FeatureGrad},
	}

	for _, c := range checks {
		if c.use && (c.value <= 0 || c.value > 256) {
			return fmt.Errorf("%w: %s=%d must be in [1,256]", ErrInvalidParams, c.name, c.value)
		}
	}

	if p.usesRGB() || p.Feature == FeatureHsvM {

		if p.ColorWeight < 0 || p.MotionWeight < 0 {
			return fmt.Errorf("%w: mixing weights must not be negative", ErrInvalidParams)
		}

		if p.UsesMotion() && math.Abs(p.ColorWeight+p.MotionWeight-1) > 1e-6 {
			return fmt.Errorf("%w: mixing weights %v + %v must sum to 1", ErrInvalidParams,
				p.ColorWeight, p.MotionWeight)
		}
	}

	if p.SmoothRadius < 0 || p.EvalPadding < 0 || p.TightPadding < 0 || p.WidePadding < 0 {
		return fmt.Errorf("%w: radius and paddings must not be negative", ErrInvalidParams)
	}

	if p.WidePadding < p.TightPadding {
		return fmt.Errorf("%w: wide padding %d smaller than tight padding %d", ErrInvalidParams,
			p.WidePadding, p.TightPadding)
	}

	if p.UsesWeightModel() {

		if p.ModelLearningRate <= 0 || p.ModelLearningRate > 1 {
			return fmt.Errorf("%w: model learning rate %v must be in (0,1]", ErrInvalidParams,
				p.ModelLearningRate)
		}

		if p.ModelPrior < 0 || p.ModelPrior > 1 {
			return fmt.Errorf("%w: model prior %v must be in [0,1]", ErrInvalidParams, p.ModelPrior)
		}

		if p.PatchWeightAlpha <= 0 || p.PatchWeightAlpha > 1 {
			return fmt.Errorf("%w: patch weight alpha %v must be in (0,1]", ErrInvalidParams,
				p.PatchWeightAlpha)
		}
	}

	return nil
}

// UsesMotion reports whether the feature kind has a motion modality and so
// needs the previous frame
func (p Params) UsesMotion() bool {
	switch p.Feature {
	case FeatureRgbM, FeatureRgbMSeg, FeatureHsvM, FeatureMot:
		return true
	}

	return false
}

// UsesWeightModel reports whether the feature kind adapts its patch weights
func (p Params) UsesWeightModel() bool {
	return p.Feature == FeatureRgbMSeg || p.Feature == FeatureHsvM
}

// usesRGB reports whether the feature kind has an RGB color modality
func (p Params) usesRGB() bool {
	switch p.Feature {
	case FeatureRgb, FeatureRgbM, FeatureRgbMSeg:
		return true
	}

	return false
}
