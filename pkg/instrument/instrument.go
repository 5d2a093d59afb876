// Package instrument models tradable instruments behind one capability
// contract. Every variant answers every capability query; accessors that
// do not apply to a given kind report ok == false instead of failing.
package instrument

import (
	"github.com/govalues/decimal"

	"github.com/meridianfx/meridian/pkg/identifiers"
	"github.com/meridianfx/meridian/pkg/types"
	"github.com/meridianfx/meridian/pkg/utility"
)

// Instrument is the capability set shared by all instrument variants
// (futures, options, equities, swaps, ...).
type Instrument interface {
	// Identity and classification
	Id() identifiers.InstrumentId
	RawSymbol() identifiers.Symbol
	AssetClass() AssetClass
	InstrumentClass() InstrumentClass

	// Currency exposure
	QuoteCurrency() types.Currency
	BaseCurrency() (types.Currency, bool)
	SettlementCurrency() types.Currency
	IsInverse() bool

	// Pricing metadata
	PricePrecision() uint8
	PriceIncrement() types.Price
	MaxPrice() (types.Price, bool)
	MinPrice() (types.Price, bool)

	// Sizing metadata
	SizePrecision() uint8
	SizeIncrement() types.Quantity
	Multiplier() types.Quantity
	LotSize() (types.Quantity, bool)
	MaxQuantity() (types.Quantity, bool)
	MinQuantity() (types.Quantity, bool)
	MaxNotional() (types.Money, bool)
	MinNotional() (types.Money, bool)

	// Margining
	MarginInit() decimal.Decimal
	MarginMaint() decimal.Decimal

	// Kind-specific accessors, ok == false where not applicable
	Underlying() (identifiers.Symbol, bool)
	OptionKind() (OptionKind, bool)
	StrikePrice() (types.Price, bool)
	ActivationNs() (utility.UnixNanos, bool)
	ExpirationNs() (utility.UnixNanos, bool)
	Isin() (string, bool)
	Exchange() (string, bool)

	// Provenance
	TsEvent() utility.UnixNanos
	TsInit() utility.UnixNanos
}
