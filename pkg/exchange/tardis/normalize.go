package tardis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meridianfx/meridian/pkg/common"
	"github.com/meridianfx/meridian/pkg/identifiers"
	"github.com/meridianfx/meridian/pkg/instrument"
	"github.com/meridianfx/meridian/pkg/utility"
)

// ParseSymbol normalizes a raw exchange symbol.
//
// TODO: venue-specific symbol standardization for Binance, Bybit and dYdX
func ParseSymbol(raw string) identifiers.Symbol {
	return identifiers.Symbol(strings.ToUpper(raw))
}

// ParseInstrumentId composes the normalized symbol with the venue
// derived from the exchange.
func ParseInstrumentId(exchange Exchange, rawSymbol string) identifiers.InstrumentId {
	return identifiers.NewInstrumentId(ParseSymbol(rawSymbol), exchange.Venue())
}

// ParseOrderSide maps a raw side token onto the canonical order side.
// Unmapped vocabulary degrades to the no-side sentinel, never an error.
func ParseOrderSide(value string) common.OrderSide {
	switch value {
	case "bid":
		return common.OrderSideBuy
	case "ask":
		return common.OrderSideSell
	default:
		return common.OrderSideNone
	}
}

// ParseAggressorSide maps a raw taker side token onto the canonical
// aggressor side. Unmapped vocabulary degrades to the sentinel.
func ParseAggressorSide(value string) common.AggressorSide {
	switch value {
	case "buy":
		return common.AggressorSideBuyer
	case "sell":
		return common.AggressorSideSeller
	default:
		return common.AggressorSideNone
	}
}

// OptionType is the raw Tardis option type vocabulary.
type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// ParseOptionKind maps the raw option type 1:1 onto the canonical kind.
// Anything outside the two-value vocabulary is a contract violation.
func ParseOptionKind(value OptionType) instrument.OptionKind {
	switch value {
	case OptionTypeCall:
		return instrument.OptionKindCall
	case OptionTypePut:
		return instrument.OptionKindPut
	default:
		panic(fmt.Sprintf("unsupported option type %q", value))
	}
}

// ParseTimestamp converts a raw microsecond timestamp to UNIX
// nanoseconds. The caller guarantees the multiplication does not
// overflow the 64-bit range.
func ParseTimestamp(valueUs uint64) utility.UnixNanos {
	return utility.UnixNanos(valueUs) * utility.NanosPerMicro
}

// ParseBookAction classifies a book change. Snapshot entries are always
// additions, even with a zero amount; only non-snapshot zero amounts
// delete the level.
func ParseBookAction(isSnapshot bool, amount float64) common.BookAction {
	if isSnapshot {
		return common.BookActionAdd
	}
	if amount == 0.0 {
		return common.BookActionDelete
	}
	return common.BookActionUpdate
}

// ParseBarSpec parses the "<...>_<step><unit>" bar grammar. The price
// type is always LAST for trade bars. A malformed spec is broken
// configuration, not a per-message condition, and panics.
func ParseBarSpec(value string) common.BarSpecification {
	parts := strings.Split(value, "_")
	lastPart := parts[len(parts)-1]

	splitIdx := strings.IndexFunc(lastPart, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if lastPart == "" || splitIdx < 0 {
		panic(fmt.Sprintf("invalid bar spec %q", value))
	}

	step, err := strconv.Atoi(lastPart[:splitIdx])
	if err != nil {
		panic(fmt.Sprintf("invalid step in bar spec %q", value))
	}

	var aggregation common.BarAggregation
	switch lastPart[splitIdx:] {
	case "ms":
		aggregation = common.BarAggregationMillisecond
	case "s":
		aggregation = common.BarAggregationSecond
	case "m":
		aggregation = common.BarAggregationMinute
	case "ticks":
		aggregation = common.BarAggregationTick
	case "vol":
		aggregation = common.BarAggregationVolume
	default:
		panic(fmt.Sprintf("unsupported bar aggregation in %q", value))
	}

	return common.BarSpecification{
		Step:        step,
		Aggregation: aggregation,
		PriceType:   common.PriceTypeLast,
	}
}
