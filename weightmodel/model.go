// Package weightmodel estimates, per histogram bin, the probability that a
// pixel of that bin belongs to the tracked object rather than its
// surroundings.
package weightmodel

import (
	"github.com/golang/glog"
	"github.com/swdee/go-pawss/geom"
	"gonum.org/v1/gonum/floats"
)

// State represents the lifecycle of the bin probabilities
type State int

const (
	// Uninitialized models report the neutral prior for every bin
	Uninitialized State = 0
	// Tracking models have been updated at least once
	Tracking State = 1
)

// Options defines the tunable parameters of the model
type Options struct {
	// LearningRate is the weight given to the newly observed probability
	// when blending it into the model, in (0, 1]
	LearningRate float64
	// Prior is the neutral probability reported for bins before the first
	// update
	Prior float64
}

// DefaultOptions returns the default model options
// - Learning Rate: 0.1
// - Prior: 0.5
func DefaultOptions() Options {
	return Options{
		LearningRate: 0.1,
		Prior:        0.5,
	}
}

// Model holds one foreground probability per histogram bin
type Model struct {
	opts  Options
	state State
	prob  []float64
	// fg and bg are the histogram scratch buffers of the last update
	fg []float64
	bg []float64
}

// New returns a model over bins histogram bins
func New(bins int, opts Options) *Model {

	m := &Model{
		opts: opts,
		prob: make([]float64, bins),
		fg:   make([]float64, bins),
		bg:   make([]float64, bins),
	}

	m.Reset()
	return m
}

// Reset returns the model to its uninitialized state, used on tracker
// re-initialization
func (m *Model) Reset() {
	m.state = Uninitialized

	for i := range m.prob {
		m.prob[i] = m.opts.Prior
	}
}

// Bins returns the number of histogram bins
func (m *Model) Bins() int {
	return len(m.prob)
}

// State returns the current model state
func (m *Model) State() State {
	return m.state
}

// Prob returns the foreground probability of bin
func (m *Model) Prob(bin int) float64 {
	return m.prob[bin]
}

// Update moves the bin probabilities towards the foreground likelihood
// observed for a confirmed object location.  binImg holds one bin index per
// pixel of wide in row major order.  Pixels within tight count as foreground,
// the remaining pixels of wide as background.  Both histograms are normalized
// so the object and surroundings contribute equally regardless of their area
func (m *Model) Update(binImg []int, wide, tight geom.IntRect) {

	tight = tight.Intersect(wide)

	for i := range m.fg {
		m.fg[i] = 0
		m.bg[i] = 0
	}

	for y := wide.Y; y < wide.YMax(); y++ {
		row := binImg[(y-wide.Y)*wide.W:]

		for x := wide.X; x < wide.XMax(); x++ {
			bin := row[x-wide.X]

			if tight.ContainsPoint(x, y) {
				m.fg[bin]++
			} else {
				m.bg[bin]++
			}
		}
	}

	fgTotal := floats.Sum(m.fg)
	bgTotal := floats.Sum(m.bg)

	if fgTotal == 0 {
		glog.V(3).Infof("weight model update skipped, empty object region %+v", tight)
		return
	}

	floats.Scale(1/fgTotal, m.fg)

	if bgTotal > 0 {
		floats.Scale(1/bgTotal, m.bg)
	}

	rate := m.opts.LearningRate

	for bin := range m.prob {

		total := m.fg[bin] + m.bg[bin]

		// unobserved bins keep their current estimate
		if total == 0 {
			continue
		}

		observed := m.fg[bin] / total

		switch m.state {
		case Uninitialized:
			m.prob[bin] = observed
		case Tracking:
			m.prob[bin] = (1-rate)*m.prob[bin] + rate*observed
		}
	}

	m.state = Tracking

	glog.V(2).Infof("weight model updated, object %+v context %+v", tight, wide)
}

// ProbImage writes the probability of every pixel within roi by table
// lookup of its bin in binImg.  binImg and out are roi.W x roi.H row major
func (m *Model) ProbImage(binImg []int, roi geom.IntRect, out []float32) {
	for i := 0; i < roi.Area(); i++ {
		out[i] = float32(m.prob[binImg[i]])
	}
}
