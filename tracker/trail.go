package tracker

import (
	"github.com/swdee/go-pawss/geom"
	"sync"
)

// Point represents the x,y coordinates of the center of a tracked box
type Point struct {
	X, Y int
}

// Trail keeps the most recent box centers of the tracked object used for
// drawing a trail
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// points are the tracked centers, oldest first
	points []Point
	sync.Mutex
}

// NewTrail returns a new trail history.  Size specifies the maximum length
// of the trail to maintain
func NewTrail(size int) *Trail {
	return &Trail{
		size: size,
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.points = nil
}

// Add the center of rect to the history
func (t *Trail) Add(rect geom.IntRect) {
	t.Lock()
	defer t.Unlock()

	t.points = append(t.points, Point{
		X: rect.X + rect.W/2,
		Y: rect.Y + rect.H/2,
	})

	// check if history is exceeded and drop oldest point
	if len(t.points) > t.size {
		t.points = t.points[len(t.points)-t.size:]
	}
}

// GetPoints returns a copy of the point history
func (t *Trail) GetPoints() []Point {
	t.Lock()
	defer t.Unlock()

	if len(t.points) == 0 {
		return nil
	}

	out := make([]Point, len(t.points))
	copy(out, t.points)

	return out
}
