package binning

import (
	"fmt"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
	"gocv.io/x/gocv"
	"image"
	"math"
)

// planeMat returns the region r of a row major plane of the given width as
// a single channel 8 bit Mat.  The caller must Close the Mat
func planeMat(plane []uint8, width int, r geom.IntRect) (gocv.Mat, error) {

	crop := make([]uint8, r.Area())

	for y := r.Y; y < r.YMax(); y++ {
		start := y*width + r.X
		copy(crop[(y-r.Y)*r.W:], plane[start:start+r.W])
	}

	mat, err := gocv.NewMatFromBytes(r.H, r.W, gocv.MatTypeCV8U, crop)

	if err != nil {
		return gocv.NewMat(), fmt.Errorf("error creating plane mat: %w", err)
	}

	return mat, nil
}

// floatMat returns the region r of a plane as a single channel float Mat
func floatMat(plane []uint8, width int, r geom.IntRect) (gocv.Mat, error) {

	mat, err := planeMat(plane, width, r)

	if err != nil {
		return mat, err
	}

	defer mat.Close()

	out := gocv.NewMat()
	mat.ConvertTo(&out, gocv.MatTypeCV32F)

	return out, nil
}

// Smooth returns the colors of img within roi averaged over the
// (2*radius+1) square neighborhood of every pixel, as a roi sized image.
// Neighborhoods crossing the frame border are reflected back into it
func Smooth(img *imagerep.ImageRep, roi geom.IntRect, radius int) (*imagerep.ImageRep, error) {

	roi = roi.Clamp(img.Width(), img.Height())

	if roi.Empty() {
		return nil, imagerep.ErrEmptyImage
	}

	if radius < 0 {
		radius = 0
	}

	region := roi.Pad(radius).Clamp(img.Width(), img.Height())
	ksize := image.Pt(2*radius+1, 2*radius+1)

	var planes [3][]uint8

	for c := range planes {

		src, err := planeMat(img.Channel(c), img.Width(), region)

		if err != nil {
			return nil, err
		}

		dst := gocv.NewMat()

		if radius > 0 {
			gocv.Blur(src, &dst, ksize)
		} else {
			src.CopyTo(&dst)
		}

		src.Close()

		data, err := dst.DataPtrUint8()

		if err != nil {
			dst.Close()
			return nil, fmt.Errorf("error reading smoothed plane: %w", err)
		}

		planes[c] = make([]uint8, roi.Area())

		for y := roi.Y; y < roi.YMax(); y++ {
			start := (y-region.Y)*region.W + roi.X - region.X
			copy(planes[c][(y-roi.Y)*roi.W:], data[start:start+roi.W])
		}

		dst.Close()
	}

	return imagerep.FromPlanes(roi.W, roi.H, planes[imagerep.Red],
		planes[imagerep.Green], planes[imagerep.Blue])
}

// polarGradient writes the orientation in degrees [0, 360) and the magnitude
// of the central difference gradient of src for every pixel within roi.  src
// is a float Mat covering region, which contains roi.  Borders of src are
// replicated
func polarGradient(src gocv.Mat, region, roi geom.IntRect, ori, mag []float32) error {

	dx := gocv.NewMat()
	dy := gocv.NewMat()
	defer dx.Close()
	defer dy.Close()

	// an aperture of 1 applies the plain [-1 0 1] kernel
	gocv.Sobel(src, &dx, gocv.MatTypeCV32F, 1, 0, 1, 0.5, 0, gocv.BorderReplicate)
	gocv.Sobel(src, &dy, gocv.MatTypeCV32F, 0, 1, 1, 0.5, 0, gocv.BorderReplicate)

	magnitude := gocv.NewMat()
	angle := gocv.NewMat()
	defer magnitude.Close()
	defer angle.Close()

	gocv.CartToPolar(dx, dy, &magnitude, &angle, true)

	mags, err := magnitude.DataPtrFloat32()

	if err != nil {
		return fmt.Errorf("error reading gradient magnitude: %w", err)
	}

	angles, err := angle.DataPtrFloat32()

	if err != nil {
		return fmt.Errorf("error reading gradient angle: %w", err)
	}

	for y := roi.Y; y < roi.YMax(); y++ {
		from := (y-region.Y)*region.W + roi.X - region.X
		to := (y - roi.Y) * roi.W

		copy(mag[to:to+roi.W], mags[from:from+roi.W])

		for i := 0; i < roi.W; i++ {
			ori[to+i] = fold(angles[from+i], 360)
		}
	}

	return nil
}

// fold maps deg into [0, period)
func fold(deg float32, period float64) float32 {

	d := math.Mod(float64(deg), period)

	if d < 0 {
		d += period
	}

	return float32(d)
}
