package feature

import (
	"fmt"
	"github.com/golang/glog"
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
	"github.com/swdee/go-pawss/integral"
	"github.com/swdee/go-pawss/weightmodel"
)

// binImageFunc writes the joint bin index of every pixel within roi into out
type binImageFunc func(img *imagerep.ImageRep, roi geom.IntRect, out []int) error

// segmentation observes how much each patch of a confirmed object location
// belongs to the foreground according to an online color model
type segmentation struct {
	model *weightmodel.Model
	bin   binImageFunc
	// tightPad and widePad grow the object rect into the foreground and
	// context regions of the model update
	tightPad int
	widePad  int
	// probs holds the integral image of the per pixel foreground probability
	probs *integral.Set
	// binImg, patches and observed are scratch buffers
	binImg   []int
	patches  []geom.IntRect
	observed []float64
}

// newSegmentation returns a segmentation over a joint histogram of bins
// entries computed by bin
func newSegmentation(p pawss.Params, bins int, bin binImageFunc) *segmentation {

	glog.V(1).Infof("foreground model over %d joint bins", bins)

	return &segmentation{
		model: weightmodel.New(bins, weightmodel.Options{
			LearningRate: p.ModelLearningRate,
			Prior:        p.ModelPrior,
		}),
		bin:      bin,
		tightPad: p.TightPadding,
		widePad:  p.WidePadding,
		probs:    integral.NewSet(),
		observed: make([]float64, p.PatchNumX*p.PatchNumY),
	}
}

// observe updates the foreground model with the object location in s and
// returns the mean foreground probability of every patch of s.  False is
// returned when the object does not overlap the frame
func (g *segmentation) observe(s pawss.Sample, grid *patchGrid) ([]float64, bool, error) {

	width, height := s.Image.Width(), s.Image.Height()

	if s.Rect.Clamp(width, height).Empty() {
		glog.V(3).Infof("weight update skipped, object %+v outside frame", s.Rect)
		return nil, false, nil
	}

	tight := s.Rect.Pad(g.tightPad).Clamp(width, height)
	wide := s.Rect.Pad(g.widePad).Clamp(width, height)

	if cap(g.binImg) < wide.Area() {
		g.binImg = make([]int, wide.Area())
	}

	g.binImg = g.binImg[:wide.Area()]

	err := g.bin(s.Image, wide, g.binImg)

	if err != nil {
		return nil, false, fmt.Errorf("error binning object context: %w", err)
	}

	g.model.Update(g.binImg, wide, tight)

	g.probs.Reset(1, wide)
	g.model.ProbImage(g.binImg, wide, g.probs.Plane(0))
	g.probs.Build()

	g.patches = grid.place(s.Rect, g.patches)

	for pid, pr := range g.patches {
		pr = pr.Intersect(wide)
		g.observed[pid] = 0

		if area := pr.Area(); area > 0 {
			g.observed[pid] = g.probs.Sum(0, pr) / float64(area)
		}
	}

	return g.observed, true, nil
}
