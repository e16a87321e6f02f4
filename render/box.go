package render

import (
	"github.com/swdee/go-pawss/geom"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings sized for scaled down frames
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.4,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   3,
		RightPad:  3,
		TopPad:    3,
		BottomPad: 5,
	}
}

// Box renders the tracked object box with a text label above its top left
// corner.  No label is drawn for empty text
func Box(img *gocv.Mat, rect geom.IntRect, clr color.RGBA, text string,
	font Font, lineThickness int) {

	gocv.Rectangle(img, rect.Image(), clr, lineThickness)

	if text == "" {
		return
	}

	textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	// keep the label inside the frame when the box touches the top edge
	top := max(rect.Y, textSize.Y+font.TopPad+font.BottomPad)
	left := rect.X - lineThickness/2

	labelPosition := image.Pt(left+font.LeftPad, top-font.BottomPad)

	// create box for placing text on
	bRect := image.Rect(left, top-textSize.Y-font.TopPad-font.BottomPad,
		left+textSize.X+font.LeftPad+font.RightPad, top)

	gocv.Rectangle(img, bRect, clr, -1)

	gocv.PutTextWithParams(img, text, labelPosition,
		font.Face, font.Scale, font.Color, font.Thickness,
		font.LineType, false)
}
