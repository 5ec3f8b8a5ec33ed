package v1

import (
	"fmt"
	"time"

	"github.com/muhammadchandra19/quantstream/pkg/errors"
)

// Market identifiers with registered exchange timezones.
const (
	MarketUSA      = "usa"
	MarketLondon   = "london"
	MarketTokyo    = "tokyo"
	MarketIndia    = "india"
	MarketFXCM     = "fxcm"
	MarketOanda    = "oanda"
	MarketBinance  = "binance"
	MarketCoinbase = "coinbase"
	MarketCME      = "cme"
)

// exchangeTimeZones maps market identifiers to the IANA timezone their
// exchange publishes bar timestamps in. Forex and crypto venues run on UTC.
var exchangeTimeZones = map[string]string{
	MarketUSA:      "America/New_York",
	MarketLondon:   "Europe/London",
	MarketTokyo:    "Asia/Tokyo",
	MarketIndia:    "Asia/Kolkata",
	MarketFXCM:     "UTC",
	MarketOanda:    "UTC",
	MarketBinance:  "UTC",
	MarketCoinbase: "UTC",
	MarketCME:      "America/Chicago",
}

// ExchangeTimeZone resolves the timezone bar timestamps are expressed in for
// the given symbol. Crypto and forex instruments resolve to UTC regardless of
// venue registration; other security types require a registered market.
func ExchangeTimeZone(symbol Symbol) (*time.Location, error) {
	switch symbol.SecurityType {
	case SecurityTypeCrypto, SecurityTypeForex:
		if _, ok := exchangeTimeZones[symbol.Market]; !ok {
			return time.UTC, nil
		}
	}

	name, ok := exchangeTimeZones[symbol.Market]
	if !ok {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("no exchange timezone registered for market %q", symbol.Market),
			errors.ErrUnknownMarket,
			"market",
		)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return loc, nil
}
