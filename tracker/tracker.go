package tracker

import (
	"errors"
	"fmt"
	"github.com/golang/glog"
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
	"gonum.org/v1/gonum/floats"
	"math"
)

var (
	// ErrNotInitialized is returned by Track before Init
	ErrNotInitialized = errors.New("tracker not initialized")
	// ErrBoxOutsideFrame is returned by Init for a box not overlapping the
	// frame
	ErrBoxOutsideFrame = errors.New("initial box outside frame")
)

// Options defines the search behaviour of the Tracker
type Options struct {
	// SearchStep is the lattice spacing in pixels of candidate offsets
	SearchStep int
	// TemplateRate is the blending rate of the appearance template
	TemplateRate float64
	// PredictCenter centers the search on the motion filter's prediction
	// instead of the last box
	PredictCenter bool
	// TrailSize is the number of box centers kept for drawing
	TrailSize int
}

// DefaultOptions returns an instance of Options with default values:
// - Search Step: 2 pixels
// - Template Rate: 0.1
// - Predict Center: true
// - Trail Size: 30
func DefaultOptions() Options {
	return Options{
		SearchStep:    2,
		TemplateRate:  0.1,
		PredictCenter: true,
		TrailSize:     30,
	}
}

// Tracker follows a single object of fixed size by dense search for the
// candidate whose feature vector is most similar to a running template
type Tracker struct {
	feature pawss.Feature
	kernel  pawss.KernelType
	opts    Options
	filter  *CenterFilter
	trail   *Trail
	// box is the last confirmed object location
	box geom.IntRect
	// template is the running appearance of the object
	template []float64
}

// New returns a Tracker using feature f normalized for kernel
func New(f pawss.Feature, kernel pawss.KernelType, opts Options) *Tracker {

	if opts.SearchStep <= 0 {
		opts.SearchStep = 1
	}

	return &Tracker{
		feature: f,
		kernel:  kernel,
		opts:    opts,
		filter:  NewCenterFilter(1.0/20, 1.0/160),
		trail:   NewTrail(opts.TrailSize),
	}
}

// Init starts tracking the object at rect on img
func (t *Tracker) Init(img *imagerep.ImageRep, rect geom.IntRect) error {

	if rect.Clamp(img.Width(), img.Height()).Empty() {
		return fmt.Errorf("%w: %+v", ErrBoxOutsideFrame, rect)
	}

	if r, ok := t.feature.(interface{ Reset() }); ok {
		r.Reset()
	}

	vecs, err := pawss.Evaluate(t.feature, pawss.NewMultiSample(img, []geom.IntRect{rect}))

	if err != nil {
		return fmt.Errorf("error computing initial template: %w", err)
	}

	t.template = vecs[0]

	err = t.feature.UpdateWeightModel(pawss.NewSample(img, rect))

	if err != nil {
		return fmt.Errorf("error updating weight model: %w", err)
	}

	t.setPrev(img)
	t.filter.Initiate(rect)
	t.trail.Reset()
	t.trail.Add(rect)
	t.box = rect

	glog.V(1).Infof("tracker initialized at %+v, feature length %d", rect, t.feature.GetCount())

	return nil
}

// Track locates the object on img and adapts the feature to the new location
func (t *Tracker) Track(img *imagerep.ImageRep) (geom.IntRect, error) {

	if t.template == nil {
		return geom.IntRect{}, ErrNotInitialized
	}

	center := t.box

	if t.opts.PredictCenter {
		cx, cy := t.filter.Predict()
		w, h := float64(t.box.W), float64(t.box.H)
		center = geom.NewFloatRect(cx-w/2, cy-h/2, w, h).Int()
	}

	radius := int(math.Round(float64(t.box.W+t.box.H) / 4))
	rects := Candidates(center, radius, t.opts.SearchStep, img.Width(), img.Height())

	vecs, err := pawss.Evaluate(t.feature, pawss.NewMultiSample(img, rects))

	if err != nil {
		return geom.IntRect{}, fmt.Errorf("error evaluating candidates: %w", err)
	}

	best := 0
	bestScore := math.Inf(-1)

	for i, vec := range vecs {
		if score := Similarity(t.template, vec, t.kernel); score > bestScore {
			best = i
			bestScore = score
		}
	}

	box := rects[best]

	glog.V(2).Infof("best of %d candidates %+v score %.4f", len(rects), box, bestScore)

	floats.Scale(1-t.opts.TemplateRate, t.template)
	floats.AddScaled(t.template, t.opts.TemplateRate, vecs[best])

	err = t.feature.UpdateWeightModel(pawss.NewSample(img, box))

	if err != nil {
		return geom.IntRect{}, fmt.Errorf("error updating weight model: %w", err)
	}

	t.setPrev(img)

	if t.opts.PredictCenter {
		err = t.filter.Update(box)

		if err != nil {
			return geom.IntRect{}, fmt.Errorf("error updating center filter: %w", err)
		}
	}

	t.trail.Add(box)
	t.box = box

	return box, nil
}

// Box returns the last confirmed object location
func (t *Tracker) Box() geom.IntRect {
	return t.box
}

// GetTrail returns the history of object centers
func (t *Tracker) GetTrail() *Trail {
	return t.trail
}

// setPrev hands img to a motion feature as the previous frame
func (t *Tracker) setPrev(img *imagerep.ImageRep) {
	if mf, ok := t.feature.(pawss.MotionFeature); ok {
		mf.SetPrevImg(img)
	}
}

// Candidates returns every box of center's size offset from center by a
// multiple of step within radius, keeping those overlapping the width x
// height frame.  Center itself is returned when no offset overlaps the
// frame
func Candidates(center geom.IntRect, radius, step, width, height int) []geom.IntRect {

	if step <= 0 {
		step = 1
	}

	n := radius / step
	rects := make([]geom.IntRect, 0, (2*n+1)*(2*n+1))

	for ky := -n; ky <= n; ky++ {
		for kx := -n; kx <= n; kx++ {

			dx, dy := kx*step, ky*step

			if dx*dx+dy*dy > radius*radius {
				continue
			}

			r := center.Offset(dx, dy)

			if r.Clamp(width, height).Empty() {
				continue
			}

			rects = append(rects, r)
		}
	}

	if len(rects) == 0 {
		rects = append(rects, center)
	}

	return rects
}

// Similarity returns the kernel value of two feature vectors, the sum of
// element wise minima for the intersection kernel and the dot product for
// the linear kernel
func Similarity(a, b []float64, kernel pawss.KernelType) float64 {

	if kernel == pawss.KernelLinear {
		return floats.Dot(a, b)
	}

	sum := 0.0

	for i := range a {
		sum += math.Min(a[i], b[i])
	}

	return sum
}
