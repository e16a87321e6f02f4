package integral

import (
	"sync"
)

// arena holds reusable per bin buffers so the indicator planes and prefix
// sums of a new frame overwrite those of the previous frame instead of being
// reallocated
type arena struct {
	mu     sync.Mutex
	planes [][]float32
	sums   [][]float64
}

// plane returns a zeroed []float32 of length size for bin
func (a *arena) plane(bin, size int) []float32 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.grow(bin)

	buf := a.planes[bin]

	if cap(buf) < size {
		buf = make([]float32, size)
		a.planes[bin] = buf
		return buf
	}

	// get buffer of required size
	buf = buf[:size]

	// zero out the buffer
	for i := range buf {
		buf[i] = 0
	}

	return buf
}

// sum returns the prefix sum buffer for bin, contents are overwritten by the
// caller
func (a *arena) sum(bin int) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.grow(bin)
	return a.sums[bin]
}

// keep records a prefix sum buffer allocated by Image.build so it can be
// reused on the next frame
func (a *arena) keep(bin int, buf []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sums[bin] = buf
}

// grow extends the buffer lists so bin is a valid index
func (a *arena) grow(bin int) {
	for len(a.planes) <= bin {
		a.planes = append(a.planes, nil)
		a.sums = append(a.sums, nil)
	}
}
