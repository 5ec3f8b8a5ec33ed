package interval

import (
	"time"
)

// Resolution represents the sampling cadence of a bar stream.
type Resolution struct {
	Name     string
	Duration time.Duration
}

// Canonical resolutions.
var (
	ResolutionSecond = Resolution{Name: "second", Duration: time.Second}
	ResolutionMinute = Resolution{Name: "minute", Duration: time.Minute}
	ResolutionHour   = Resolution{Name: "hour", Duration: time.Hour}
	ResolutionDaily  = Resolution{Name: "daily", Duration: 24 * time.Hour}
)

// DetectResolution maps a bar duration to the smallest canonical resolution
// that is not finer than the duration. Anything longer than an hour is
// treated as daily.
func DetectResolution(duration time.Duration) Resolution {
	switch {
	case duration > time.Hour:
		return ResolutionDaily
	case duration > time.Minute:
		return ResolutionHour
	case duration > time.Second:
		return ResolutionMinute
	default:
		return ResolutionSecond
	}
}

// Truncate rounds a timestamp down to the start of its resolution bucket,
// in wall-clock terms of the timestamp's own location. Second and
// unrecognized resolutions are returned unchanged.
func (r Resolution) Truncate(t time.Time) time.Time {
	switch r.Name {
	case ResolutionDaily.Name:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case ResolutionHour.Name:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case ResolutionMinute.Name:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	default:
		return t
	}
}

// InSameBucket reports whether two timestamps fall into the same resolution
// bucket.
func (r Resolution) InSameBucket(t1, t2 time.Time) bool {
	return r.Truncate(t1).Equal(r.Truncate(t2))
}
