package weightmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swdee/go-pawss/geom"
)

// blockBins returns a bin image over wide where pixels inside obj have bin
// fgBin and all others bgBin
func blockBins(wide, obj geom.IntRect, fgBin, bgBin int) []int {

	out := make([]int, wide.Area())

	for y := wide.Y; y < wide.YMax(); y++ {
		for x := wide.X; x < wide.XMax(); x++ {
			bin := bgBin
			if obj.ContainsPoint(x, y) {
				bin = fgBin
			}
			out[(y-wide.Y)*wide.W+(x-wide.X)] = bin
		}
	}

	return out
}

func TestNeutralBeforeUpdate(t *testing.T) {

	m := New(4, DefaultOptions())

	require.Equal(t, Uninitialized, m.State())

	for bin := 0; bin < m.Bins(); bin++ {
		require.Equal(t, 0.5, m.Prob(bin))
	}

	roi := geom.NewIntRect(0, 0, 2, 2)
	out := make([]float32, 4)
	m.ProbImage([]int{0, 1, 2, 3}, roi, out)
	require.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, out)
}

func TestUpdateSeparatesBins(t *testing.T) {

	wide := geom.NewIntRect(0, 0, 20, 20)
	obj := geom.NewIntRect(5, 5, 10, 10)

	m := New(3, DefaultOptions())
	m.Update(blockBins(wide, obj, 1, 0), wide, obj)

	require.Equal(t, Tracking, m.State())
	require.InDelta(t, 1.0, m.Prob(1), 1e-12)
	require.InDelta(t, 0.0, m.Prob(0), 1e-12)

	// unobserved bins keep the prior
	require.InDelta(t, 0.5, m.Prob(2), 1e-12)
}

func TestUpdateMonotonic(t *testing.T) {

	wide := geom.NewIntRect(0, 0, 10, 10)
	tight := geom.NewIntRect(0, 0, 10, 5)

	// bin 0 fills the top half except one pixel and a few bottom pixels,
	// bin 1 appears equally often in both halves, bin 2 mostly at the bottom
	binImg := make([]int, wide.Area())

	for i := range binImg {
		y := i / wide.W
		x := i % wide.W

		switch {
		case x < 2:
			binImg[i] = 1
		case y < 5 && x < 9:
			binImg[i] = 0
		case y >= 5 && x >= 8:
			binImg[i] = 0
		default:
			binImg[i] = 2
		}
	}

	m := New(3, DefaultOptions())
	m.Update(binImg, wide, tight)

	require.Greater(t, m.Prob(0), m.Prob(1))
	require.Greater(t, m.Prob(1), m.Prob(2))
	require.InDelta(t, 0.5, m.Prob(1), 1e-12)
}

func TestUpdateBlendsWithLearningRate(t *testing.T) {

	wide := geom.NewIntRect(0, 0, 10, 10)
	obj := geom.NewIntRect(2, 2, 4, 4)

	m := New(2, Options{LearningRate: 0.25, Prior: 0.5})

	// first update sets the observed probabilities directly
	m.Update(blockBins(wide, obj, 1, 0), wide, obj)
	require.InDelta(t, 1.0, m.Prob(1), 1e-12)

	// then the object turns into background colors
	m.Update(blockBins(wide, obj, 0, 0), wide, obj)
	require.InDelta(t, 1.0, m.Prob(1), 1e-12, "unobserved bin must not change")
	require.InDelta(t, 0.75*0+0.25*0.5, m.Prob(0), 1e-12)
}

func TestUpdateEmptyObject(t *testing.T) {

	wide := geom.NewIntRect(0, 0, 4, 4)

	m := New(2, DefaultOptions())
	m.Update(make([]int, wide.Area()), wide, geom.NewIntRect(10, 10, 3, 3))

	require.Equal(t, Uninitialized, m.State())
	require.Equal(t, 0.5, m.Prob(0))
}

func TestReset(t *testing.T) {

	wide := geom.NewIntRect(0, 0, 6, 6)
	obj := geom.NewIntRect(1, 1, 2, 2)

	m := New(2, DefaultOptions())
	m.Update(blockBins(wide, obj, 1, 0), wide, obj)
	m.Reset()

	require.Equal(t, Uninitialized, m.State())
	require.Equal(t, 0.5, m.Prob(0))
	require.Equal(t, 0.5, m.Prob(1))
}
