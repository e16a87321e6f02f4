package geom

import (
	"image"
	"math"
)

// FloatRect represents a rectangle in continuous image coordinates with
// (x, y, width, height) format
type FloatRect struct {
	X, Y, W, H float64
}

// IntRect represents a rectangle on the pixel grid with (x, y, width, height)
// format.  The rectangle covers the half open ranges [X, X+W) and [Y, Y+H)
type IntRect struct {
	X, Y, W, H int
}

// NewFloatRect creates a new FloatRect with given coordinates
func NewFloatRect(x, y, width, height float64) FloatRect {
	return FloatRect{X: x, Y: y, W: width, H: height}
}

// XMax returns the right edge x coordinate of the rectangle
func (r FloatRect) XMax() float64 {
	return r.X + r.W
}

// YMax returns the bottom edge y coordinate of the rectangle
func (r FloatRect) YMax() float64 {
	return r.Y + r.H
}

// Area returns the area of the rectangle
func (r FloatRect) Area() float64 {
	return r.W * r.H
}

// Center returns the center point of the rectangle
func (r FloatRect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale multiplies the position and size of the rectangle by sx and sy
func (r FloatRect) Scale(sx, sy float64) FloatRect {
	return FloatRect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
}

// Int rounds the rectangle onto the pixel grid.  Position and size are
// rounded independently so the size of a moved rectangle is preserved
func (r FloatRect) Int() IntRect {
	return IntRect{
		X: int(math.Round(r.X)),
		Y: int(math.Round(r.Y)),
		W: int(math.Round(r.W)),
		H: int(math.Round(r.H)),
	}
}

// Overlap calculates the Intersection over Union (IoU) with another rectangle
func (r FloatRect) Overlap(other FloatRect) float64 {

	iw := math.Min(r.XMax(), other.XMax()) - math.Max(r.X, other.X)

	if iw <= 0 {
		return 0
	}

	ih := math.Min(r.YMax(), other.YMax()) - math.Max(r.Y, other.Y)

	if ih <= 0 {
		return 0
	}

	inter := iw * ih
	ua := r.Area() + other.Area() - inter

	if ua <= 0 {
		return 0
	}

	return inter / ua
}

// NewIntRect creates a new IntRect with given coordinates
func NewIntRect(x, y, width, height int) IntRect {
	return IntRect{X: x, Y: y, W: width, H: height}
}

// RectFromBounds creates an IntRect from its corner coordinates.  An inverted
// range results in a zero sized rectangle
func RectFromBounds(xMin, yMin, xMax, yMax int) IntRect {

	if xMax < xMin {
		xMax = xMin
	}

	if yMax < yMin {
		yMax = yMin
	}

	return IntRect{X: xMin, Y: yMin, W: xMax - xMin, H: yMax - yMin}
}

// XMax returns the exclusive right edge x coordinate of the rectangle
func (r IntRect) XMax() int {
	return r.X + r.W
}

// YMax returns the exclusive bottom edge y coordinate of the rectangle
func (r IntRect) YMax() int {
	return r.Y + r.H
}

// Area returns the number of pixels covered by the rectangle
func (r IntRect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}

	return r.W * r.H
}

// Empty reports whether the rectangle covers no pixels
func (r IntRect) Empty() bool {
	return r.Area() == 0
}

// Size returns the width and height of the rectangle as an image.Point
func (r IntRect) Size() image.Point {
	return image.Pt(r.W, r.H)
}

// Offset returns the rectangle translated by dx and dy
func (r IntRect) Offset(dx, dy int) IntRect {
	return IntRect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Pad grows the rectangle by n pixels on every side.  The result is not
// clamped to any image bounds
func (r IntRect) Pad(n int) IntRect {
	return RectFromBounds(r.X-n, r.Y-n, r.XMax()+n, r.YMax()+n)
}

// Clamp restricts the rectangle to the image area [0,width) x [0,height).
// Rectangles falling entirely outside the image are returned with zero size
func (r IntRect) Clamp(width, height int) IntRect {
	return r.Intersect(IntRect{W: width, H: height})
}

// Intersect returns the overlapping part of both rectangles, or a zero sized
// rectangle when they do not overlap
func (r IntRect) Intersect(other IntRect) IntRect {
	return RectFromBounds(
		clamp(r.X, other.X, other.XMax()),
		clamp(r.Y, other.Y, other.YMax()),
		clamp(r.XMax(), other.X, other.XMax()),
		clamp(r.YMax(), other.Y, other.YMax()),
	)
}

// Contains reports whether other lies fully inside the rectangle
func (r IntRect) Contains(other IntRect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.XMax() <= r.XMax() && other.YMax() <= r.YMax()
}

// ContainsPoint reports whether the pixel (x, y) lies inside the rectangle
func (r IntRect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.XMax() && y >= r.Y && y < r.YMax()
}

// Float converts the rectangle to continuous coordinates
func (r IntRect) Float() FloatRect {
	return FloatRect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Image converts the rectangle to an image.Rectangle
func (r IntRect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.XMax(), r.YMax())
}

// Union returns the smallest rectangle covering all given rectangles.  A zero
// rectangle is returned for an empty list
func Union(rects []IntRect) IntRect {

	if len(rects) == 0 {
		return IntRect{}
	}

	xMin, yMin := rects[0].X, rects[0].Y
	xMax, yMax := rects[0].XMax(), rects[0].YMax()

	for _, r := range rects[1:] {
		xMin = min(xMin, r.X)
		yMin = min(yMin, r.Y)
		xMax = max(xMax, r.XMax())
		yMax = max(yMax, r.YMax())
	}

	return RectFromBounds(xMin, yMin, xMax, yMax)
}

// Tile splits rect into nx by ny tiles in row major order, appended to
// out[:0].  Tile edges are placed at i*W/nx and i*H/ny from the origin so the
// tiles cover rect exactly, tiles of narrow rects may be empty.  Negative
// sizes are treated as zero
func Tile(rect IntRect, nx, ny int, out []IntRect) []IntRect {

	out = out[:0]

	if nx <= 0 || ny <= 0 {
		return out
	}

	width, height := max(rect.W, 0), max(rect.H, 0)

	for ty := 0; ty < ny; ty++ {
		y0 := rect.Y + ty*height/ny
		y1 := rect.Y + (ty+1)*height/ny

		for tx := 0; tx < nx; tx++ {
			x0 := rect.X + tx*width/nx
			x1 := rect.X + (tx+1)*width/nx

			out = append(out, RectFromBounds(x0, y0, x1, y1))
		}
	}

	return out
}

// clamp restricts the value x to be within the range min and max
func clamp(val, lo, hi int) int {

	if val > lo {

		if val < hi {
			return val
		}

		return hi
	}

	return lo
}
