// Package tardis normalizes raw Tardis-format market-data fields into
// the canonical typed domain model. All parsers are pure, stateless and
// safe for concurrent use.
package tardis

import (
	"strings"

	"github.com/meridianfx/meridian/pkg/identifiers"
)

// Exchange is a raw Tardis exchange identifier. Several exchange
// variants (futures, swap, options feeds) collapse to one venue.
type Exchange string

const (
	ExchangeBinance           Exchange = "binance"
	ExchangeBinanceDelivery   Exchange = "binance-delivery"
	ExchangeBinanceFutures    Exchange = "binance-futures"
	ExchangeBitfinex          Exchange = "bitfinex"
	ExchangeBitfinexDeriv     Exchange = "bitfinex-derivatives"
	ExchangeBitmex            Exchange = "bitmex"
	ExchangeBybit             Exchange = "bybit"
	ExchangeBybitOptions      Exchange = "bybit-options"
	ExchangeBybitSpot         Exchange = "bybit-spot"
	ExchangeCoinbase          Exchange = "coinbase"
	ExchangeDeribit           Exchange = "deribit"
	ExchangeDydx              Exchange = "dydx"
	ExchangeHuobi             Exchange = "huobi"
	ExchangeHuobiDm           Exchange = "huobi-dm"
	ExchangeHuobiDmLinearSwap Exchange = "huobi-dm-linear-swap"
	ExchangeHuobiDmSwap       Exchange = "huobi-dm-swap"
	ExchangeKraken            Exchange = "kraken"
	ExchangeOkex              Exchange = "okex"
	ExchangeOkexFutures       Exchange = "okex-futures"
	ExchangeOkexOptions       Exchange = "okex-options"
	ExchangeOkexSwap          Exchange = "okex-swap"
)

func (e Exchange) String() string { return string(e) }

// Venue maps the exchange onto its canonical venue identifier.
func (e Exchange) Venue() identifiers.Venue {
	switch e {
	case ExchangeBinance, ExchangeBinanceDelivery, ExchangeBinanceFutures:
		return "BINANCE"
	case ExchangeBitfinex, ExchangeBitfinexDeriv:
		return "BITFINEX"
	case ExchangeBybit, ExchangeBybitOptions, ExchangeBybitSpot:
		return "BYBIT"
	case ExchangeHuobi, ExchangeHuobiDm, ExchangeHuobiDmLinearSwap, ExchangeHuobiDmSwap:
		return "HUOBI"
	case ExchangeOkex, ExchangeOkexFutures, ExchangeOkexOptions, ExchangeOkexSwap:
		return "OKEX"
	default:
		return identifiers.Venue(strings.ToUpper(string(e)))
	}
}
