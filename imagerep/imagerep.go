// Package imagerep holds the per frame image planes shared by all feature
// channels evaluated on that frame.
package imagerep

import (
	"errors"
	"fmt"
	"gocv.io/x/gocv"
	"golang.org/x/image/draw"
	"image"
	"image/color"
)

// Channel indexes into the color planes of an ImageRep
const (
	Red   = 0
	Green = 1
	Blue  = 2
)

var (
	// ErrEmptyImage is returned when building an ImageRep from an image
	// without pixels
	ErrEmptyImage = errors.New("image is empty")
)

// ImageRep wraps a single decoded video frame as a set of 8 bit planes.  It
// is built once per frame and is read only afterwards
type ImageRep struct {
	width  int
	height int
	// channels are the R, G, B planes in row major order
	channels [3][]uint8
	// gray is the luminance plane
	gray []uint8
}

// New returns an ImageRep for the given image
func New(img image.Image) (*ImageRep, error) {

	b := img.Bounds()

	if b.Empty() {
		return nil, ErrEmptyImage
	}

	r := alloc(b.Dx(), b.Dy())

	// fast path for the common decoder output
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < r.height; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < r.width; x++ {
				r.set(x, y, row[x*4], row[x*4+1], row[x*4+2])
			}
		}
		r.fillGray()
		return r, nil
	}

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			r.set(x, y, c.R, c.G, c.B)
		}
	}

	r.fillGray()
	return r, nil
}

// FromPlanes returns an ImageRep built from separate R, G, B planes, each
// of width*height bytes
func FromPlanes(width, height int, red, green, blue []uint8) (*ImageRep, error) {

	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}

	n := width * height

	if len(red) != n || len(green) != n || len(blue) != n {
		return nil, fmt.Errorf("plane size mismatch, expected %d bytes per plane", n)
	}

	r := alloc(width, height)
	copy(r.channels[Red], red)
	copy(r.channels[Green], green)
	copy(r.channels[Blue], blue)
	r.fillGray()

	return r, nil
}

// FromMat returns an ImageRep for a BGR ordered 3 channel gocv.Mat as
// produced by gocv.IMRead and gocv.VideoCapture
func FromMat(mat gocv.Mat) (*ImageRep, error) {

	if mat.Empty() {
		return nil, ErrEmptyImage
	}

	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported Mat type %v, expected CV8UC3", mat.Type())
	}

	src := mat

	if !mat.IsContinuous() {
		src = mat.Clone()
		defer src.Close()
	}

	r := alloc(src.Cols(), src.Rows())

	// it is too slow to read pixel by pixel over CGO, so copy the bytes
	// out and split them directly
	data := src.ToBytes()

	for i := 0; i < r.width*r.height; i++ {
		r.channels[Blue][i] = data[i*3]
		r.channels[Green][i] = data[i*3+1]
		r.channels[Red][i] = data[i*3+2]
	}

	gray := gocv.NewMat()
	defer gray.Close()

	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	copy(r.gray, gray.ToBytes())

	return r, nil
}

// Resize scales img to width x height using bilinear interpolation
func Resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// alloc creates an ImageRep with zeroed planes
func alloc(width, height int) *ImageRep {

	n := width * height

	r := &ImageRep{
		width:  width,
		height: height,
		gray:   make([]uint8, n),
	}

	for c := range r.channels {
		r.channels[c] = make([]uint8, n)
	}

	return r
}

// set writes the color of pixel (x, y)
func (r *ImageRep) set(x, y int, red, green, blue uint8) {
	i := y*r.width + x
	r.channels[Red][i] = red
	r.channels[Green][i] = green
	r.channels[Blue][i] = blue
}

// fillGray derives the luminance plane using ITU-R 601 weights, the same
// weights used by image/color and OpenCV
func (r *ImageRep) fillGray() {
	for i := range r.gray {
		y := (19595*uint32(r.channels[Red][i]) + 38470*uint32(r.channels[Green][i]) +
			7471*uint32(r.channels[Blue][i]) + 1<<15) >> 16
		r.gray[i] = uint8(y)
	}
}

// Width returns the frame width in pixels
func (r *ImageRep) Width() int {
	return r.width
}

// Height returns the frame height in pixels
func (r *ImageRep) Height() int {
	return r.height
}

// Bounds returns the frame area as a rectangle at the origin
func (r *ImageRep) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Channel returns the plane for channel c, one of Red, Green or Blue
func (r *ImageRep) Channel(c int) []uint8 {
	return r.channels[c]
}

// Gray returns the luminance plane
func (r *ImageRep) Gray() []uint8 {
	return r.gray
}

// RGBAt returns the color of pixel (x, y)
func (r *ImageRep) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := y*r.width + x
	return r.channels[Red][i], r.channels[Green][i], r.channels[Blue][i]
}

// GrayAt returns the luminance of pixel (x, y)
func (r *ImageRep) GrayAt(x, y int) uint8 {
	return r.gray[y*r.width+x]
}

// SameSize reports whether both frames have identical dimensions
func (r *ImageRep) SameSize(other *ImageRep) bool {
	return other != nil && r.width == other.width && r.height == other.height
}

// ColorImage returns the frame as an *image.RGBA
func (r *ImageRep) ColorImage() *image.RGBA {

	img := image.NewRGBA(r.Bounds())

	for i := 0; i < r.width*r.height; i++ {
		img.Pix[i*4] = r.channels[Red][i]
		img.Pix[i*4+1] = r.channels[Green][i]
		img.Pix[i*4+2] = r.channels[Blue][i]
		img.Pix[i*4+3] = 0xff
	}

	return img
}
