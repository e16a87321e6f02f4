package pawss

import (
	"errors"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
	"testing"
)

// recordingFeature returns the candidate x coordinate as its feature and
// records the calls made
type recordingFeature struct {
	calls   []string
	prepErr error
}

func (f *recordingFeature) PrepEval(samples MultiSample) error {
	f.calls = append(f.calls, "prep")
	return f.prepErr
}

func (f *recordingFeature) UpdateFeatureVector(sample Sample) ([]float64, error) {
	f.calls = append(f.calls, "vector")
	return []float64{float64(sample.Rect.X)}, nil
}

func (f *recordingFeature) UpdateWeightModel(sample Sample) error {
	return nil
}

func (f *recordingFeature) GetCount() int {
	return 1
}

func testImage(t *testing.T) *imagerep.ImageRep {

	t.Helper()

	plane := make([]uint8, 16)
	img, err := imagerep.FromPlanes(4, 4, plane, plane, plane)
	require.NoError(t, err)

	return img
}

func TestMultiSample(t *testing.T) {

	img := testImage(t)

	ms := NewMultiSample(img, []geom.IntRect{
		geom.NewIntRect(1, 2, 3, 4),
		geom.NewIntRect(5, 0, 2, 2),
	})

	require.Equal(t, 2, ms.Len())
	require.Equal(t, NewSample(img, geom.NewIntRect(5, 0, 2, 2)), ms.At(1))
	require.Same(t, img, ms.At(0).Image)
	require.Equal(t, geom.NewIntRect(1, 0, 6, 6), ms.UnionRect())

	require.Equal(t, geom.IntRect{}, NewMultiSample(img, nil).UnionRect())
}

func TestEvaluateOrder(t *testing.T) {

	f := &recordingFeature{}

	ms := NewMultiSample(testImage(t), []geom.IntRect{
		geom.NewIntRect(3, 0, 1, 1),
		geom.NewIntRect(1, 0, 1, 1),
		geom.NewIntRect(2, 0, 1, 1),
	})

	vecs, err := Evaluate(f, ms)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}, {1}, {2}}, vecs)
	require.Equal(t, []string{"prep", "vector", "vector", "vector"}, f.calls)
}

func TestEvaluatePrepError(t *testing.T) {

	errPrep := errors.New("prep failed")
	f := &recordingFeature{prepErr: errPrep}

	_, err := Evaluate(f, NewMultiSample(testImage(t), []geom.IntRect{{W: 1, H: 1}}))
	require.ErrorIs(t, err, errPrep)
	require.Equal(t, []string{"prep"}, f.calls)
}
