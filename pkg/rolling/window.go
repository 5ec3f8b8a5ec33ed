package rolling

import "math"

// Window is a fixed-capacity rolling window over float64 samples. Once the
// window is full, pushing a new sample evicts the oldest one. Index 0 always
// refers to the most recently pushed sample.
type Window struct {
	samples []float64
	head    int
	count   int
}

// NewWindow creates a rolling window holding up to capacity samples.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{
		samples: make([]float64, capacity),
	}
}

// Push appends a sample, evicting the oldest one when the window is full.
func (w *Window) Push(sample float64) {
	w.samples[w.head] = sample
	w.head = (w.head + 1) % len(w.samples)
	if w.count < len(w.samples) {
		w.count++
	}
}

// At returns the i-th most recent sample. At(0) is the latest pushed value,
// At(Count()-1) the oldest still held. Out-of-range access returns NaN.
func (w *Window) At(i int) float64 {
	if i < 0 || i >= w.count {
		return math.NaN()
	}
	idx := (w.head - 1 - i + 2*len(w.samples)) % len(w.samples)
	return w.samples[idx]
}

// Count returns the number of samples currently held.
func (w *Window) Count() int {
	return w.count
}

// Capacity returns the maximum number of samples the window holds.
func (w *Window) Capacity() int {
	return len(w.samples)
}

// IsFull reports whether the window holds Capacity() samples.
func (w *Window) IsFull() bool {
	return w.count == len(w.samples)
}

// Reset discards all held samples. Capacity is unchanged.
func (w *Window) Reset() {
	w.head = 0
	w.count = 0
}

// Mean returns the arithmetic mean of the held samples, NaN when empty.
func (w *Window) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := 0; i < w.count; i++ {
		sum += w.At(i)
	}
	return sum / float64(w.count)
}

// Variance returns the unbiased sample variance of the held samples.
// Returns NaN when fewer than two samples are held.
func (w *Window) Variance() float64 {
	if w.count < 2 {
		return math.NaN()
	}
	mean := w.Mean()
	sum := 0.0
	for i := 0; i < w.count; i++ {
		d := w.At(i) - mean
		sum += d * d
	}
	return sum / float64(w.count-1)
}

// Covariance returns the unbiased sample covariance between this window and
// other, computed over the overlapping most-recent samples. Returns NaN when
// fewer than two overlapping samples exist.
func (w *Window) Covariance(other *Window) float64 {
	n := w.count
	if other.count < n {
		n = other.count
	}
	if n < 2 {
		return math.NaN()
	}

	meanW, meanO := 0.0, 0.0
	for i := 0; i < n; i++ {
		meanW += w.At(i)
		meanO += other.At(i)
	}
	meanW /= float64(n)
	meanO /= float64(n)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (w.At(i) - meanW) * (other.At(i) - meanO)
	}
	return sum / float64(n-1)
}

// SafeDiv divides a by b, returning 0 instead of ±Inf/NaN when b is zero.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
