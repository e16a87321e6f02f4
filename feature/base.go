package feature

import (
	"errors"
	"fmt"
	"github.com/golang/glog"
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/binning"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
	"github.com/swdee/go-pawss/integral"
)

var (
	// ErrNotPrepared is returned when a feature vector is requested for a
	// sample whose image or region was not covered by the last PrepEval
	ErrNotPrepared = errors.New("feature not prepared for sample image")
	// ErrEmptyBatch is returned by PrepEval for a batch without candidates
	ErrEmptyBatch = errors.New("empty sample batch")
	// ErrNilImage is returned for samples without an image
	ErrNilImage = errors.New("sample has no image")
)

// patchBase holds the state shared by every patch feature variant, the
// variants decide which channels are written into the integral images
type patchBase struct {
	params  pawss.Params
	grid    *patchGrid
	weights *patchWeights
	// groups are the modality spans within a patch block
	groups []group
	// binsTotal is the number of bins of a single patch block
	binsTotal int
	// integs are the per bin integral images of the last prepared batch
	integs *integral.Set
	// prepared and preparedROI stamp the frame and region covered by the
	// integral images of the last completed PrepEval
	prepared    *imagerep.ImageRep
	preparedROI geom.IntRect
	// prev is the previous frame motion is measured against
	prev *imagerep.ImageRep
	// seg is the foreground model adapting the patch weights, nil for
	// variants with static weights
	seg *segmentation
	// patches, ori and mag are scratch buffers
	patches []geom.IntRect
	ori     []float32
	mag     []float32
}

// newPatchBase returns the shared state of a feature made of groups
func newPatchBase(p pawss.Params, groups []group) *patchBase {

	b := &patchBase{
		params:  p,
		grid:    newPatchGrid(p.PatchNumX, p.PatchNumY),
		weights: newPatchWeights(p.PatchNumX*p.PatchNumY, p.PatchWeightAlpha),
		groups:  groups,
		integs:  integral.NewSet(),
	}

	for _, g := range groups {
		b.binsTotal += g.bins
	}

	glog.V(1).Infof("patch %s feature: %d bins per patch, %dx%d patches, vector length %d",
		p.Feature, b.binsTotal, p.PatchNumX, p.PatchNumY, b.count())

	return b
}

// count returns the feature vector length
func (b *patchBase) count() int {
	return b.binsTotal * b.grid.count()
}

// begin validates the batch and resets the integral images to the union of
// its candidates grown by the evaluation padding.  The returned ROI is the
// frame region the channels must be written for
func (b *patchBase) begin(ms pawss.MultiSample) (geom.IntRect, error) {

	b.prepared = nil

	if ms.Image == nil {
		return geom.IntRect{}, ErrNilImage
	}

	if ms.Len() == 0 {
		return geom.IntRect{}, ErrEmptyBatch
	}

	roi := ms.UnionRect().Pad(b.params.EvalPadding).Clamp(ms.Image.Width(), ms.Image.Height())
	b.integs.Reset(b.binsTotal, roi)

	glog.V(2).Infof("preparing %d candidates over %+v", ms.Len(), roi)

	return roi, nil
}

// finish builds the integral images and stamps roi of img as prepared
func (b *patchBase) finish(img *imagerep.ImageRep, roi geom.IntRect) {
	b.integs.Build()
	b.prepared = img
	b.preparedROI = roi
}

// featureVector returns the weighted per patch histograms of the sample,
// normalized for the kernel
func (b *patchBase) featureVector(s pawss.Sample) ([]float64, error) {

	if s.Image == nil {
		return nil, ErrNilImage
	}

	if b.prepared == nil || s.Image != b.prepared {
		return nil, ErrNotPrepared
	}

	frame := geom.NewIntRect(0, 0, s.Image.Width(), s.Image.Height())

	if visible := s.Rect.Intersect(frame); !visible.Empty() && !b.preparedROI.Contains(visible) {
		return nil, fmt.Errorf("%w: %+v outside prepared region %+v", ErrNotPrepared,
			s.Rect, b.preparedROI)
	}

	vec := make([]float64, b.count())

	b.patches = b.grid.place(s.Rect, b.patches)

	for pid, pr := range b.patches {

		pr = pr.Intersect(frame)
		area := pr.Area()

		if area == 0 {
			glog.V(3).Infof("patch %d of %+v is empty", pid, s.Rect)
			continue
		}

		scale := b.weights.at(pid) / float64(area)
		block := vec[pid*b.binsTotal : (pid+1)*b.binsTotal]

		for bin := range block {
			block[bin] = scale * b.integs.Sum(bin, pr)
		}
	}

	normalize(vec, b.binsTotal, b.grid.count(), b.groups, b.params.Kernel)

	return vec, nil
}

// updateWeights adapts the patch weights to the confirmed location in s when
// the variant has a foreground model
func (b *patchBase) updateWeights(s pawss.Sample) error {

	if s.Image == nil {
		return ErrNilImage
	}

	if b.seg == nil {
		return nil
	}

	observed, ok, err := b.seg.observe(s, b.grid)

	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	if !b.weights.update(observed) {
		glog.V(3).Infof("patch weights kept, no foreground observed in %+v", s.Rect)
		return nil
	}

	glog.V(2).Infof("patch weights updated for %+v: %.3f", s.Rect, b.weights.values)

	return nil
}

// reset returns the weights and foreground model to their initial state
func (b *patchBase) reset() {

	b.weights.reset()
	b.prepared = nil
	b.prev = nil

	if b.seg != nil {
		b.seg.model.Reset()
	}
}

// scratch returns the orientation and magnitude buffers sized for n pixels
func (b *patchBase) scratch(n int) ([]float32, []float32) {

	if cap(b.ori) < n {
		b.ori = make([]float32, n)
		b.mag = make([]float32, n)
	}

	b.ori = b.ori[:n]
	b.mag = b.mag[:n]

	return b.ori, b.mag
}

// fillRGB counts the separate channel bins of every pixel within roi into the
// planes starting at offset
func (b *patchBase) fillRGB(q binning.RGB, offset int, img *imagerep.ImageRep,
	roi geom.IntRect) error {

	idx, err := q.Indices(img, roi)

	if err != nil {
		return fmt.Errorf("error binning colors: %w", err)
	}

	for i, v := range idx {
		ri, gi, bi := q.Offsets(v)

		b.integs.Plane(offset + ri)[i]++
		b.integs.Plane(offset + gi)[i]++
		b.integs.Plane(offset + bi)[i]++
	}

	return nil
}

// fillHSV counts the separate hue, saturation and value bins of every pixel
// within roi into the planes starting at offset
func (b *patchBase) fillHSV(q binning.HSV, offset int, img *imagerep.ImageRep,
	roi geom.IntRect) error {

	idx, err := q.Indices(img, roi)

	if err != nil {
		return fmt.Errorf("error binning colors: %w", err)
	}

	for i, v := range idx {
		hi, si, vi := q.Offsets(v)

		b.integs.Plane(offset + hi)[i]++
		b.integs.Plane(offset + si)[i]++
		b.integs.Plane(offset + vi)[i]++
	}

	return nil
}

// fillMotion accumulates the frame difference gradient magnitude into the
// orientation planes starting at offset.  Without a previous frame of the
// same size the motion planes stay zero
func (b *patchBase) fillMotion(m binning.Motion, offset int, img *imagerep.ImageRep,
	roi geom.IntRect) error {

	if b.prev == nil || !b.prev.SameSize(img) {
		glog.V(3).Infof("no usable previous frame, motion channels left empty")
		return nil
	}

	ori, mag := b.scratch(roi.Area())
	err := m.Compute(b.prev.Gray(), img.Gray(), img.Width(), img.Height(), roi, ori, mag)

	if err != nil {
		return fmt.Errorf("error computing motion: %w", err)
	}

	for i := range ori {
		b.integs.Plane(offset + m.Bin(ori[i]))[i] += mag[i]
	}

	return nil
}

// fillGradient accumulates the image gradient magnitude into the orientation
// planes starting at offset
func (b *patchBase) fillGradient(g binning.Gradient, offset int, img *imagerep.ImageRep,
	roi geom.IntRect) error {

	ori, mag := b.scratch(roi.Area())
	err := g.Compute(img.Gray(), img.Width(), img.Height(), roi, ori, mag)

	if err != nil {
		return fmt.Errorf("error computing gradient: %w", err)
	}

	for i := range ori {
		b.integs.Plane(offset + g.Bin(ori[i]))[i] += mag[i]
	}

	return nil
}
