package beta

import (
	"fmt"
	"math"
	"time"

	indicatorv1 "github.com/muhammadchandra19/quantstream/internal/domain/indicator/v1"
	marketv1 "github.com/muhammadchandra19/quantstream/internal/domain/market/v1"
	"github.com/muhammadchandra19/quantstream/pkg/errors"
	"github.com/muhammadchandra19/quantstream/pkg/interval"
	"github.com/muhammadchandra19/quantstream/pkg/rolling"
)

// Beta measures the sensitivity of a target symbol's returns to a reference
// symbol's returns over a rolling window of paired bars. The two bar streams
// may arrive interleaved and out of sync; bars are matched by truncated end
// time, and only matched pairs contribute to the estimate.
//
// Beta is push-driven and single-threaded: callers must serialize Update
// calls on the same instance.
type Beta struct {
	name      string
	target    marketv1.Symbol
	reference marketv1.Symbol
	period    int

	// tzMismatch is fixed at construction. When set, end times are compared
	// in UTC before truncation.
	tzMismatch bool

	// resolution is derived from the first bar ever seen and survives Reset.
	resolution    interval.Resolution
	resolutionSet bool

	// One-slot pending state: the most recent bar from either symbol that has
	// not yet been matched. A newly arrived bar always replaces it, so an
	// unmatched bar from the same symbol is silently dropped.
	pending         *marketv1.Bar
	pendingIsTarget bool

	targetPrices     *rolling.Window
	referencePrices  *rolling.Window
	targetReturns    *rolling.Window
	referenceReturns *rolling.Window

	value float64
}

var _ indicatorv1.Indicator = (*Beta)(nil)

// New creates a Beta indicator tracking target against reference over the
// given number of paired returns. period must be at least 2.
func New(name string, target, reference marketv1.Symbol, period int) (*Beta, error) {
	if period < 2 {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("beta period must be at least 2, got %d", period),
			errors.ErrInvalidPeriod,
			"period",
		)
	}

	targetZone, err := marketv1.ExchangeTimeZone(target)
	if err != nil {
		return nil, err
	}
	referenceZone, err := marketv1.ExchangeTimeZone(reference)
	if err != nil {
		return nil, err
	}

	return &Beta{
		name:       name,
		target:     target,
		reference:  reference,
		period:     period,
		tzMismatch: targetZone.String() != referenceZone.String(),

		// Only the last two closes matter for a one-step return.
		targetPrices:     rolling.NewWindow(2),
		referencePrices:  rolling.NewWindow(2),
		targetReturns:    rolling.NewWindow(period),
		referenceReturns: rolling.NewWindow(period),
	}, nil
}

// Name returns the indicator's configured name.
func (b *Beta) Name() string {
	return b.name
}

// Value returns the current beta estimate. Zero until the first successful
// pairing produces enough return history.
func (b *Beta) Value() float64 {
	return b.value
}

// IsReady reports whether both return windows hold a full period of samples.
func (b *Beta) IsReady() bool {
	return b.targetReturns.IsFull() && b.referenceReturns.IsFull()
}

// WarmUpPeriod returns the minimum number of updates before the output is
// considered valid. A timezone mismatch costs one extra bar of warm-up.
func (b *Beta) WarmUpPeriod() int {
	warmUp := b.period + 1
	if b.tzMismatch {
		warmUp++
	}
	return warmUp
}

// Update consumes one bar from either tracked symbol and returns the current
// beta estimate. A bar that matches the pending bar of the opposite symbol in
// the same time bucket completes a pair and refreshes the estimate; any other
// bar leaves the estimate unchanged. The incoming bar always becomes the new
// pending bar.
func (b *Beta) Update(bar *marketv1.Bar) (float64, error) {
	isTarget := bar.Symbol.Equal(b.target)
	if !isTarget && !bar.Symbol.Equal(b.reference) {
		return b.value, errors.NewErrorDetails(
			fmt.Sprintf("bar symbol %q is neither target nor reference", bar.Symbol),
			errors.ErrUnknownSymbol,
			"symbol",
		)
	}

	if !b.resolutionSet {
		b.resolution = interval.DetectResolution(bar.EndTime.Sub(bar.StartTime))
		b.resolutionSet = true
	}

	if b.pending != nil && isTarget != b.pendingIsTarget && b.sameBucket(bar.EndTime, b.pending.EndTime) {
		if isTarget {
			b.consumePair(bar, b.pending)
		} else {
			b.consumePair(b.pending, bar)
		}
		b.value = b.estimate()
	}

	b.pending = bar
	b.pendingIsTarget = isTarget

	return b.value, nil
}

// Reset clears all accumulated state. Configuration and the detected
// resolution survive.
func (b *Beta) Reset() {
	b.pending = nil
	b.pendingIsTarget = false
	b.targetPrices.Reset()
	b.referencePrices.Reset()
	b.targetReturns.Reset()
	b.referenceReturns.Reset()
	b.value = 0
}

// sameBucket reports whether two end times fall into the same resolution
// bucket, normalizing to UTC when the exchanges' timezones differ.
func (b *Beta) sameBucket(t1, t2 time.Time) bool {
	if b.tzMismatch {
		t1 = t1.UTC()
		t2 = t2.UTC()
	}
	return b.resolution.InSameBucket(t1, t2)
}

// consumePair feeds a matched bar pair into the price and return windows.
func (b *Beta) consumePair(target, reference *marketv1.Bar) {
	b.targetPrices.Push(target.Close)
	if b.targetPrices.IsFull() {
		b.targetReturns.Push(rolling.SafeDiv(b.targetPrices.At(0), b.targetPrices.At(1)) - 1)
	}

	b.referencePrices.Push(reference.Close)
	if b.referencePrices.IsFull() {
		b.referenceReturns.Push(rolling.SafeDiv(b.referencePrices.At(0), b.referencePrices.At(1)) - 1)
	}
}

// estimate computes covariance(target, reference) / variance(reference) over
// the buffered returns. Degenerate statistics are expected during warm-up and
// substituted rather than propagated: NaN or zero variance becomes 1, NaN
// covariance becomes 0.
func (b *Beta) estimate() float64 {
	variance := b.referenceReturns.Variance()
	if math.IsNaN(variance) || variance == 0 {
		variance = 1
	}

	covariance := b.targetReturns.Covariance(b.referenceReturns)
	if math.IsNaN(covariance) {
		covariance = 0
	}

	return covariance / variance
}
