package v1

import (
	"fmt"
	"time"

	marketv1 "github.com/muhammadchandra19/quantstream/internal/domain/market/v1"
	"github.com/muhammadchandra19/quantstream/pkg/errors"
)

// RawBarEvent is the kafka payload for one OHLCV bar. Timestamps are expected
// to carry the exchange-local offset.
type RawBarEvent struct {
	Ticker       string    `json:"ticker"`
	Market       string    `json:"market"`
	SecurityType string    `json:"security_type"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Open         float64   `json:"open"`
	High         float64   `json:"high"`
	Low          float64   `json:"low"`
	Close        float64   `json:"close"`
	Volume       float64   `json:"volume"`
}

// ToBar validates the event and converts it into a market bar.
func (e *RawBarEvent) ToBar() (*marketv1.Bar, error) {
	if e.Ticker == "" {
		return nil, errors.NewErrorDetails("bar event has no ticker", errors.ErrInvalidBar, "ticker")
	}
	if !e.EndTime.After(e.StartTime) {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("bar event for %s has end time %s not after start time %s", e.Ticker, e.EndTime, e.StartTime),
			errors.ErrInvalidBar,
			"end_time",
		)
	}
	if e.Close <= 0 {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("bar event for %s has non-positive close %f", e.Ticker, e.Close),
			errors.ErrInvalidBar,
			"close",
		)
	}

	return &marketv1.Bar{
		Symbol: marketv1.Symbol{
			Ticker:       e.Ticker,
			Market:       e.Market,
			SecurityType: marketv1.SecurityType(e.SecurityType),
		},
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
	}, nil
}
