package v1

import (
	marketv1 "github.com/muhammadchandra19/quantstream/internal/domain/market/v1"
)

// Indicator is the streaming-indicator contract the engine consumes. Callers
// push bars one at a time and read the current estimate back after each push.
// Implementations own their mutable state and are not safe for concurrent
// use; callers must serialize Update calls on the same instance.
type Indicator interface {
	// Name returns the indicator's configured name.
	Name() string

	// Update consumes one bar and returns the indicator's current value.
	// Structural misuse (e.g. a bar for an untracked symbol) returns an
	// error; numeric degeneracies never do.
	Update(bar *marketv1.Bar) (float64, error)

	// Value returns the current estimate without consuming input.
	Value() float64

	// IsReady reports whether enough history has accumulated for the value
	// to be considered valid.
	IsReady() bool

	// WarmUpPeriod returns the minimum number of updates needed before the
	// indicator output is valid.
	WarmUpPeriod() int

	// Reset clears all accumulated state, keeping configuration.
	Reset()
}
