package feature

import (
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-pawss"
	"gonum.org/v1/gonum/floats"
	"math"
	"testing"
)

// twoGroups is a 3 color plus 2 motion bin layout
var twoGroups = []group{
	{name: "color", offset: 0, bins: 3, weight: 0.7},
	{name: "motion", offset: 3, bins: 2, weight: 0.3},
}

// groupTotals returns the sum and sum of squares of group g over all patches
func groupTotals(vec []float64, binsTotal, patches int, g group) (float64, float64) {

	var sum, ss float64

	for pid := 0; pid < patches; pid++ {
		seg := segment(vec, binsTotal, pid, g)
		sum += floats.Sum(seg)
		ss += floats.Dot(seg, seg)
	}

	return sum, ss
}

func TestNormalizeIntersection(t *testing.T) {

	vec := []float64{
		1, 2, 3, 4, 0,
		0, 2, 0, 1, 5,
	}

	normalize(vec, 5, 2, twoGroups, pawss.KernelIntersection)

	color, _ := groupTotals(vec, 5, 2, twoGroups[0])
	motion, _ := groupTotals(vec, 5, 2, twoGroups[1])

	require.InDelta(t, 0.7, color, 1e-12)
	require.InDelta(t, 0.3, motion, 1e-12)
	require.InDelta(t, 0.7*2/8, vec[1], 1e-12)
}

func TestNormalizeLinear(t *testing.T) {

	vec := []float64{
		1, 2, 3, 4, 0,
		0, 2, 0, 1, 5,
	}

	normalize(vec, 5, 2, twoGroups, pawss.KernelLinear)

	require.InDelta(t, 1, floats.Dot(vec, vec), 1e-12)

	_, color := groupTotals(vec, 5, 2, twoGroups[0])
	_, motion := groupTotals(vec, 5, 2, twoGroups[1])

	// each group's share of the norm follows its mixing weight
	require.InDelta(t, 0.49/0.58, color, 1e-12)
	require.InDelta(t, 0.09/0.58, motion, 1e-12)
}

func TestNormalizeSkipsEmptyGroup(t *testing.T) {

	for _, kernel := range []pawss.KernelType{pawss.KernelIntersection, pawss.KernelLinear} {

		vec := []float64{
			1, 1, 0, 0, 0,
			1, 1, 0, 0, 0,
		}

		normalize(vec, 5, 2, twoGroups, kernel)

		for _, v := range vec {
			require.False(t, math.IsNaN(v), "NaN with %s kernel", kernel)
		}

		_, motion := groupTotals(vec, 5, 2, twoGroups[1])
		require.Zero(t, motion)

		color, ss := groupTotals(vec, 5, 2, twoGroups[0])

		switch kernel {
		case pawss.KernelIntersection:
			require.InDelta(t, 0.7, color, 1e-12)
		case pawss.KernelLinear:
			require.InDelta(t, 0.49/0.58, ss, 1e-12)
		}
	}
}

func TestNormalizeAllZero(t *testing.T) {

	vec := make([]float64, 10)
	normalize(vec, 5, 2, twoGroups, pawss.KernelLinear)

	require.Equal(t, make([]float64, 10), vec)
}
