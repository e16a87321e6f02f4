package feature

import (
	"gonum.org/v1/gonum/floats"
)

// weightState represents the lifecycle of the patch weight vector
type weightState int

const (
	// weightsUninitialized weights are all one and the first observation
	// replaces them
	weightsUninitialized weightState = 0
	// weightsTracking weights blend each observation with their history
	weightsTracking weightState = 1
)

// patchWeights holds one reliability weight per patch, smoothed over time
type patchWeights struct {
	state  weightState
	values []float64
	// alpha is the exponential smoothing rate
	alpha float64
	// scratch holds the normalized observation
	scratch []float64
}

// newPatchWeights returns n uninitialized patch weights
func newPatchWeights(n int, alpha float64) *patchWeights {

	w := &patchWeights{
		values:  make([]float64, n),
		alpha:   alpha,
		scratch: make([]float64, n),
	}

	w.reset()
	return w
}

// reset sets all weights to one and returns to the uninitialized state
func (w *patchWeights) reset() {
	w.state = weightsUninitialized

	for i := range w.values {
		w.values[i] = 1
	}
}

// update normalizes observed by its maximum and merges it into the weights.
// The first update sets the weights directly, later ones blend as
// (1-alpha)*old + alpha*observed.  Observations without a positive maximum
// carry no information and are ignored, false is returned in that case
func (w *patchWeights) update(observed []float64) bool {

	wmax := floats.Max(observed)

	if !(wmax > 0) {
		return false
	}

	copy(w.scratch, observed)
	floats.Scale(1/wmax, w.scratch)

	switch w.state {
	case weightsUninitialized:
		copy(w.values, w.scratch)
		w.state = weightsTracking

	case weightsTracking:
		floats.Scale(1-w.alpha, w.values)
		floats.AddScaled(w.values, w.alpha, w.scratch)
	}

	return true
}

// at returns the weight of patch pid
func (w *patchWeights) at(pid int) float64 {
	return w.values[pid]
}

// snapshot returns a copy of the weights
func (w *patchWeights) snapshot() []float64 {
	out := make([]float64, len(w.values))
	copy(out, w.values)
	return out
}
