package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectResolution(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     Resolution
	}{
		{"second bar", time.Second, ResolutionSecond},
		{"sub-second bar", 100 * time.Millisecond, ResolutionSecond},
		{"minute bar", time.Minute, ResolutionMinute},
		{"five second bar", 5 * time.Second, ResolutionMinute},
		{"hour bar", time.Hour, ResolutionHour},
		{"thirty minute bar", 30 * time.Minute, ResolutionHour},
		{"daily bar", 24 * time.Hour, ResolutionDaily},
		{"four hour bar", 4 * time.Hour, ResolutionDaily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectResolution(tt.duration))
		})
	}
}

func TestResolution_Truncate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 35, 42, 123456789, time.UTC)

	t.Run("daily keeps date only", func(t *testing.T) {
		got := ResolutionDaily.Truncate(ts)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("hour keeps date and hour", func(t *testing.T) {
		got := ResolutionHour.Truncate(ts)
		assert.Equal(t, time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC), got)
	})

	t.Run("minute keeps date hour and minute", func(t *testing.T) {
		got := ResolutionMinute.Truncate(ts)
		assert.Equal(t, time.Date(2024, 3, 15, 14, 35, 0, 0, time.UTC), got)
	})

	t.Run("second is identity", func(t *testing.T) {
		assert.Equal(t, ts, ResolutionSecond.Truncate(ts))
	})

	t.Run("unrecognized resolution is identity", func(t *testing.T) {
		assert.Equal(t, ts, Resolution{Name: "tick"}.Truncate(ts))
	})

	t.Run("truncation respects location", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		assert.NoError(t, err)

		local := time.Date(2024, 3, 15, 23, 30, 0, 0, loc)
		got := ResolutionDaily.Truncate(local)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), got)
	})
}

func TestResolution_InSameBucket(t *testing.T) {
	a := time.Date(2024, 3, 15, 14, 35, 0, 0, time.UTC)
	b := time.Date(2024, 3, 15, 14, 59, 59, 0, time.UTC)
	c := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)

	assert.True(t, ResolutionHour.InSameBucket(a, b))
	assert.False(t, ResolutionHour.InSameBucket(b, c))
	assert.True(t, ResolutionDaily.InSameBucket(a, c))
	assert.False(t, ResolutionMinute.InSameBucket(a, b))
}
