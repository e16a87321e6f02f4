package feature

import (
	"github.com/golang/glog"
	"github.com/swdee/go-pawss"
	"gonum.org/v1/gonum/floats"
	"math"
)

// group is the span of one modality's bins within every patch block of the
// feature vector
type group struct {
	name string
	// offset is the position of the group's first bin within a patch block
	offset int
	// bins is the number of bins of the group
	bins int
	// weight is the mixing weight of the modality
	weight float64
}

// normalize rescales each modality group of vec for the kernel.  vec holds
// patches blocks of binsTotal values.
//
// For the intersection kernel each group's total mass becomes its mixing
// weight.  For the linear kernel each group is scaled by
// weight/(‖weights‖*sqrt(sumSquares)) so the whole vector has unit norm.
// Groups without mass are left untouched
func normalize(vec []float64, binsTotal, patches int, groups []group,
	kernel pawss.KernelType) {

	var weightNorm float64

	for _, g := range groups {
		weightNorm += g.weight * g.weight
	}

	weightNorm = math.Sqrt(weightNorm)

	for _, g := range groups {

		mass := 0.0

		for pid := 0; pid < patches; pid++ {
			seg := segment(vec, binsTotal, pid, g)

			switch kernel {
			case pawss.KernelIntersection:
				mass += floats.Sum(seg)
			case pawss.KernelLinear:
				mass += floats.Dot(seg, seg)
			}
		}

		if mass == 0 {
			glog.V(3).Infof("%s modality has no mass, normalization skipped", g.name)
			continue
		}

		var scale float64

		switch kernel {
		case pawss.KernelIntersection:
			scale = g.weight / mass
		case pawss.KernelLinear:
			if weightNorm == 0 {
				continue
			}
			scale = g.weight / (weightNorm * math.Sqrt(mass))
		}

		for pid := 0; pid < patches; pid++ {
			floats.Scale(scale, segment(vec, binsTotal, pid, g))
		}
	}
}

// segment returns the values of group g in patch pid
func segment(vec []float64, binsTotal, pid int, g group) []float64 {
	start := binsTotal*pid + g.offset
	return vec[start : start+g.bins]
}
