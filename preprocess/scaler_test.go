package preprocess

import (
	"github.com/swdee/go-pawss/geom"
	"gocv.io/x/gocv"
	"testing"
)

func TestFrameScale(t *testing.T) {

	tests := []struct {
		srcWidth      int
		srcHeight     int
		box           geom.IntRect
		targetSide    int
		expectedW     int
		expectedH     int
		expectedScale float64
	}{
		{640, 480, geom.NewIntRect(100, 100, 80, 60), 30, 320, 240, 0.5},
		{640, 480, geom.NewIntRect(100, 100, 120, 200), 30, 160, 120, 0.25},
		{640, 480, geom.NewIntRect(100, 100, 20, 40), 30, 640, 480, 1},
		{320, 240, geom.NewIntRect(0, 0, 0, 40), 30, 320, 240, 1},
	}

	for _, tc := range tests {
		img := gocv.NewMatWithSize(tc.srcHeight, tc.srcWidth, gocv.MatTypeCV8UC3)

		scaledImg := gocv.NewMat()

		scaler := NewFrameScaler(tc.srcWidth, tc.srcHeight, tc.box, tc.targetSide)

		scaler.Scale(img, &scaledImg)

		if scaler.ScaleFactor() != tc.expectedScale {
			t.Errorf("Test failed for box %+v: Scalefactor incorrect, expected %f, got %f",
				tc.box, tc.expectedScale, scaler.ScaleFactor())
		}

		if scaledImg.Cols() != tc.expectedW || scaledImg.Rows() != tc.expectedH {
			t.Errorf("Test failed for box %+v: Size wrong, expected %dx%d, got %dx%d",
				tc.box, tc.expectedW, tc.expectedH, scaledImg.Cols(), scaledImg.Rows())
		}

		if scaler.DestWidth() != tc.expectedW || scaler.DestHeight() != tc.expectedH {
			t.Errorf("Test failed for box %+v: Dest size wrong, expected %dx%d, got %dx%d",
				tc.box, tc.expectedW, tc.expectedH, scaler.DestWidth(), scaler.DestHeight())
		}

		img.Close()
		scaledImg.Close()
	}
}

func TestFrameMapping(t *testing.T) {

	scaler := NewFrameScaler(640, 480, geom.NewIntRect(100, 100, 80, 60), 30)

	box := geom.NewIntRect(100, 50, 80, 60)
	scaled := scaler.ToFrame(box)

	if scaled != geom.NewIntRect(50, 25, 40, 30) {
		t.Errorf("ToFrame incorrect, got %+v", scaled)
	}

	if back := scaler.FromFrame(scaled); back != box {
		t.Errorf("FromFrame incorrect, expected %+v, got %+v", box, back)
	}
}
