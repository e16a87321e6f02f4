package pawss

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDefaultParams(t *testing.T) {

	want := Params{
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

	if diff := cmp.Diff(want, DefaultParams()); diff != "" {
		t.Errorf("DefaultParams() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, DefaultParams().Validate())
}

func TestValidate(t *testing.T) {

	tests := []struct {
		name   string
		modify func(p *Params)
		valid  bool
	}{
		{"unknown feature", func(p *Params) { p.Feature = 0 }, false},
		{"unknown kernel", func(p *Params) { p.Kernel = 7 }, false},
		{"zero patches", func(p *Params) { p.PatchNumY = 0 }, false},
		{"zero red bins", func(p *Params) { p.RBins = 0 }, false},
		{"too many bins", func(p *Params) { p.GBins = 257 }, false},
		{"zero motion bins", func(p *Params) { p.MotionBins = 0 }, false},
		{"unused hsv bins", func(p *Params) { p.HBins = 0 }, true},
		{"unused gradient bins", func(p *Params) { p.GradBins = 0 }, true},
		{"weights not summing to one", func(p *Params) { p.MotionWeight = 0.6 }, false},
		{"weights summing within tolerance", func(p *Params) {
			p.ColorWeight = 0.3
			p.MotionWeight = 0.7
		}, true},
		{"negative weight", func(p *Params) {
			p.ColorWeight = -0.5
			p.MotionWeight = 1.5
		}, false},
		{"negative padding", func(p *Params) { p.EvalPadding = -1 }, false},
		{"wide inside tight", func(p *Params) { p.WidePadding = 1 }, false},
		{"zero learning rate", func(p *Params) { p.ModelLearningRate = 0 }, false},
		{"learning rate above one", func(p *Params) { p.ModelLearningRate = 1.5 }, false},
		{"prior above one", func(p *Params) { p.ModelPrior = 2 }, false},
		{"zero alpha", func(p *Params) { p.PatchWeightAlpha = 0 }, false},
		{"alpha of one", func(p *Params) { p.PatchWeightAlpha = 1 }, true},
		{"rgb ignores motion weights", func(p *Params) {
			p.Feature = FeatureRgb
			p.MotionWeight = 3
			p.MotionBins = 0
		}, true},
		{"gradient ignores model", func(p *Params) {
			p.Feature = FeatureGrad
			p.ModelLearningRate = 0
			p.RBins = 0
		}, true},
		{"gradient needs bins", func(p *Params) {
			p.Feature = FeatureGrad
			p.GradBins = 0
		}, false},
		{"hsv needs bins", func(p *Params) {
			p.Feature = FeatureHsvM
			p.SBins = 0
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			p := DefaultParams()
			tc.modify(&p)

			err := p.Validate()

			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidParams)
			}
		})
	}
}

func TestParseKernelType(t *testing.T) {

	k, err := ParseKernelType("Linear")
	require.NoError(t, err)
	require.Equal(t, KernelLinear, k)

	k, err = ParseKernelType("intersection")
	require.NoError(t, err)
	require.Equal(t, KernelIntersection, k)
	require.Equal(t, "intersection", k.String())

	_, err = ParseKernelType("rbf")
	require.ErrorIs(t, err, ErrInvalidParams)

	require.Equal(t, "KernelType(9)", KernelType(9).String())
}

func TestParseFeatureKind(t *testing.T) {

	for kind, name := range featureKindNames {
		got, err := ParseFeatureKind(name)
		require.NoError(t, err)
		require.Equal(t, kind, got)
		require.Equal(t, name, kind.String())
	}

	got, err := ParseFeatureKind("RGBMSEG")
	require.NoError(t, err)
	require.Equal(t, FeatureRgbMSeg, got)

	_, err = ParseFeatureKind("haar")
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestUsesModalities(t *testing.T) {

	tests := []struct {
		kind   FeatureKind
		motion bool
		model  bool
	}{
		{FeatureRgb, false, false},
		{FeatureRgbM, true, false},
		{FeatureRgbMSeg, true, true},
		{FeatureHsvM, true, true},
		{FeatureMot, true, false},
		{FeatureGrad, false, false},
	}

	for _, tc := range tests {
		p := Params{Feature: tc.kind}
		require.Equal(t, tc.motion, p.UsesMotion(), tc.kind.String())
		require.Equal(t, tc.model, p.UsesWeightModel(), tc.kind.String())
	}
}
