package v1

import (
	"time"
)

// SecurityType classifies the instrument a symbol trades as.
type SecurityType string

const (
	// SecurityTypeEquity represents stock on an equity exchange.
	SecurityTypeEquity SecurityType = "equity"
	// SecurityTypeForex represents a currency pair.
	SecurityTypeForex SecurityType = "forex"
	// SecurityTypeCrypto represents a crypto pair.
	SecurityTypeCrypto SecurityType = "crypto"
	// SecurityTypeFuture represents a futures contract.
	SecurityTypeFuture SecurityType = "future"
)

// Symbol identifies a tradable instrument on a specific market.
type Symbol struct {
	Ticker       string
	Market       string
	SecurityType SecurityType
}

// Equal reports whether two symbols identify the same instrument.
func (s Symbol) Equal(other Symbol) bool {
	return s.Ticker == other.Ticker &&
		s.Market == other.Market &&
		s.SecurityType == other.SecurityType
}

// String returns the ticker, which is unique within a market.
func (s Symbol) String() string {
	return s.Ticker
}

// Bar represents a single OHLCV sample for one symbol. StartTime and EndTime
// delimit the sampling interval; their difference determines the stream's
// resolution. Bars are immutable once produced.
type Bar struct {
	Symbol    Symbol
	StartTime time.Time
	EndTime   time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}
