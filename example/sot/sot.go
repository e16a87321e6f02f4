package main

import (
	"flag"
	"fmt"
	"github.com/golang/glog"
	"github.com/swdee/go-pawss"
	"github.com/swdee/go-pawss/feature"
	"github.com/swdee/go-pawss/geom"
	"github.com/swdee/go-pawss/imagerep"
	"github.com/swdee/go-pawss/preprocess"
	"github.com/swdee/go-pawss/render"
	"github.com/swdee/go-pawss/tracker"
	"gocv.io/x/gocv"
	"strconv"
	"strings"
)

func main() {
	// read in cli flags
	seq := flag.String("seq", "../data/seq/%04d.jpg", "Printf pattern of the image sequence files")
	start := flag.Int("start", 1, "Number of the first frame")
	end := flag.Int("end", 0, "Number of the last frame, 0 runs until a frame can not be read")
	boxStr := flag.String("box", "", "Initial object box on the first frame as x,y,w,h")
	kindStr := flag.String("kind", pawss.FeatureRgbMSeg.String(), "Feature kind: rgb, rgbm, rgbmseg, hsvm, mot or grad")
	kernelStr := flag.String("kernel", pawss.KernelIntersection.String(), "Kernel: intersection or linear")
	side := flag.Int("side", 32, "Frames are scaled down so the shorter side of the initial box is about this many pixels")
	step := flag.Int("step", 2, "Search lattice spacing in pixels")
	out := flag.String("out", "", "Printf pattern for writing rendered frames, empty disables writing")

	flag.Parse()
	defer glog.Flush()

	box, err := parseBox(*boxStr)

	if err != nil {
		glog.Fatalf("Error parsing box: %v", err)
	}

	params := pawss.DefaultParams()

	params.Feature, err = pawss.ParseFeatureKind(*kindStr)

	if err != nil {
		glog.Fatalf("Error parsing feature kind: %v", err)
	}

	params.Kernel, err = pawss.ParseKernelType(*kernelStr)

	if err != nil {
		glog.Fatalf("Error parsing kernel: %v", err)
	}

	feat, err := feature.New(params)

	if err != nil {
		glog.Fatalf("Error creating feature: %v", err)
	}

	glog.Infof("Feature %s with %s kernel, vector length %d", params.Feature,
		params.Kernel, feat.GetCount())

	opts := tracker.DefaultOptions()
	opts.SearchStep = *step

	tr := tracker.New(feat, params.Kernel, opts)

	var scaler *preprocess.FrameScaler

	scaled := gocv.NewMat()
	defer scaled.Close()

	font := render.DefaultFont()
	trailStyle := render.DefaultTrailStyle()

	for frame := *start; *end == 0 || frame <= *end; frame++ {

		file := fmt.Sprintf(*seq, frame)
		src := gocv.IMRead(file, gocv.IMReadColor)

		if src.Empty() {
			src.Close()

			if *end == 0 && frame > *start {
				break
			}

			glog.Fatalf("Error reading frame from: %s", file)
		}

		if scaler == nil {
			scaler = preprocess.NewFrameScaler(src.Cols(), src.Rows(), box, *side)
			glog.Infof("Scaling frames %dx%d to %dx%d", scaler.SrcWidth(), scaler.SrcHeight(),
				scaler.DestWidth(), scaler.DestHeight())
		}

		scaler.Scale(src, &scaled)
		src.Close()

		img, err := imagerep.FromMat(scaled)

		if err != nil {
			glog.Fatalf("Error converting frame %d: %v", frame, err)
		}

		var rect geom.IntRect

		if frame == *start {
			rect = scaler.ToFrame(box)
			err = tr.Init(img, rect)
		} else {
			rect, err = tr.Track(img)
		}

		if err != nil {
			glog.Fatalf("Error tracking frame %d: %v", frame, err)
		}

		srcRect := scaler.FromFrame(rect)
		fmt.Printf("%d %d,%d,%d,%d\n", frame, srcRect.X, srcRect.Y, srcRect.W, srcRect.H)

		if *out == "" {
			continue
		}

		if w, ok := feat.(feature.Weighted); ok {
			render.PatchWeights(&scaled, rect, params.PatchNumX, params.PatchNumY,
				w.PatchWeights(), 1)
		}

		render.Box(&scaled, rect, render.BoxColor(0), strconv.Itoa(frame), font, 1)
		render.Trail(&scaled, tr.GetTrail(), trailStyle)

		if ok := gocv.IMWrite(fmt.Sprintf(*out, frame), scaled); !ok {
			glog.Errorf("Failed to save frame %d", frame)
		}
	}

	glog.Info("done")
}

// parseBox parses a box given as x,y,w,h
func parseBox(s string) (geom.IntRect, error) {

	parts := strings.Split(s, ",")

	if len(parts) != 4 {
		return geom.IntRect{}, fmt.Errorf("expected x,y,w,h got %q", s)
	}

	vals := make([]int, 4)

	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))

		if err != nil {
			return geom.IntRect{}, fmt.Errorf("invalid box value %q: %w", p, err)
		}

		vals[i] = v
	}

	if vals[2] <= 0 || vals[3] <= 0 {
		return geom.IntRect{}, fmt.Errorf("box size %dx%d must be positive", vals[2], vals[3])
	}

	return geom.NewIntRect(vals[0], vals[1], vals[2], vals[3]), nil
}
