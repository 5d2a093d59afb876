package instrument

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/meridianfx/meridian/pkg/identifiers"
	"github.com/meridianfx/meridian/pkg/types"
	"github.com/meridianfx/meridian/pkg/utility"
)

// FuturesContractParams carries the constructor inputs for a
// FuturesContract. Optional fields are pointers, nil means absent.
type FuturesContractParams struct {
	Id           identifiers.InstrumentId
	RawSymbol    identifiers.Symbol
	AssetClass   AssetClass
	ExchangeCode string // ISO 10383 MIC, empty means unknown
	Underlying   identifiers.Symbol
	ActivationNs utility.UnixNanos
	ExpirationNs utility.UnixNanos
	Currency     types.Currency

	PricePrecision uint8
	PriceIncrement types.Price
	Multiplier     types.Quantity
	LotSize        types.Quantity

	MaxQuantity *types.Quantity
	MinQuantity *types.Quantity
	MaxPrice    *types.Price
	MinPrice    *types.Price

	MarginInit  *decimal.Decimal
	MarginMaint *decimal.Decimal

	TsEvent utility.UnixNanos
	TsInit  utility.UnixNanos
}

// FuturesContract is one deliverable futures instrument. Identity,
// equality and hashing are defined solely by the id; a republished
// contract with the same id supersedes the stored one, it is never
// mutated in place.
type FuturesContract struct {
	id           identifiers.InstrumentId
	rawSymbol    identifiers.Symbol
	assetClass   AssetClass
	exchangeCode string
	underlying   identifiers.Symbol
	activationNs utility.UnixNanos
	expirationNs utility.UnixNanos
	currency     types.Currency

	pricePrecision uint8
	priceIncrement types.Price
	multiplier     types.Quantity
	lotSize        types.Quantity

	maxQuantity *types.Quantity
	minQuantity types.Quantity
	maxPrice    *types.Price
	minPrice    *types.Price

	marginInit  decimal.Decimal
	marginMaint decimal.Decimal

	tsEvent utility.UnixNanos
	tsInit  utility.UnixNanos
}

// NewFuturesContract validates params and builds an immutable contract.
// Validation order: exchange code, underlying, price precision
// consistency, price increment positivity.
func NewFuturesContract(p FuturesContractParams) (*FuturesContract, error) {
	if p.ExchangeCode != "" && strings.TrimSpace(p.ExchangeCode) == "" {
		return nil, fmt.Errorf("invalid futures contract %s: exchange code must not be blank", p.Id)
	}
	if strings.TrimSpace(string(p.Underlying)) == "" {
		return nil, fmt.Errorf("invalid futures contract %s: underlying must not be empty", p.Id)
	}
	if p.PricePrecision != p.PriceIncrement.Precision() {
		return nil, fmt.Errorf("invalid futures contract %s: price_precision %d does not match price_increment precision %d",
			p.Id, p.PricePrecision, p.PriceIncrement.Precision())
	}
	if p.PriceIncrement.Raw() <= 0 {
		return nil, fmt.Errorf("invalid futures contract %s: price_increment %s must be positive",
			p.Id, p.PriceIncrement)
	}

	minQuantity := types.QuantityFromInt(1)
	if p.MinQuantity != nil {
		minQuantity = *p.MinQuantity
	}
	marginInit := decimal.MustNew(0, 0)
	if p.MarginInit != nil {
		marginInit = *p.MarginInit
	}
	marginMaint := decimal.MustNew(0, 0)
	if p.MarginMaint != nil {
		marginMaint = *p.MarginMaint
	}

	return &FuturesContract{
		id:             p.Id,
		rawSymbol:      p.RawSymbol,
		assetClass:     p.AssetClass,
		exchangeCode:   p.ExchangeCode,
		underlying:     p.Underlying,
		activationNs:   p.ActivationNs,
		expirationNs:   p.ExpirationNs,
		currency:       p.Currency,
		pricePrecision: p.PricePrecision,
		priceIncrement: p.PriceIncrement,
		multiplier:     p.Multiplier,
		lotSize:        p.LotSize,
		maxQuantity:    p.MaxQuantity,
		minQuantity:    minQuantity,
		maxPrice:       p.MaxPrice,
		minPrice:       p.MinPrice,
		marginInit:     marginInit,
		marginMaint:    marginMaint,
		tsEvent:        p.TsEvent,
		tsInit:         p.TsInit,
	}, nil
}

// MustNewFuturesContract aborts on validation failure. Only for call
// sites that already guaranteed validity, such as loading a catalog of
// pre-validated definitions.
func MustNewFuturesContract(p FuturesContractParams) *FuturesContract {
	c, err := NewFuturesContract(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Equal reports entity equality, which depends only on the id.
func (c *FuturesContract) Equal(o *FuturesContract) bool {
	return c.id == o.id
}

func (c *FuturesContract) Id() identifiers.InstrumentId      { return c.id }
func (c *FuturesContract) RawSymbol() identifiers.Symbol     { return c.rawSymbol }
func (c *FuturesContract) AssetClass() AssetClass            { return c.assetClass }
func (c *FuturesContract) InstrumentClass() InstrumentClass  { return InstrumentClassFuture }
func (c *FuturesContract) QuoteCurrency() types.Currency     { return c.currency }
func (c *FuturesContract) BaseCurrency() (types.Currency, bool) {
	return types.Currency{}, false
}
func (c *FuturesContract) SettlementCurrency() types.Currency { return c.currency }
func (c *FuturesContract) IsInverse() bool                    { return false }

func (c *FuturesContract) PricePrecision() uint8        { return c.pricePrecision }
func (c *FuturesContract) PriceIncrement() types.Price  { return c.priceIncrement }
func (c *FuturesContract) MaxPrice() (types.Price, bool) {
	if c.maxPrice == nil {
		return types.Price{}, false
	}
	return *c.maxPrice, true
}
func (c *FuturesContract) MinPrice() (types.Price, bool) {
	if c.minPrice == nil {
		return types.Price{}, false
	}
	return *c.minPrice, true
}

func (c *FuturesContract) SizePrecision() uint8          { return 0 }
func (c *FuturesContract) SizeIncrement() types.Quantity { return types.QuantityFromInt(1) }
func (c *FuturesContract) Multiplier() types.Quantity    { return c.multiplier }
func (c *FuturesContract) LotSize() (types.Quantity, bool) {
	return c.lotSize, true
}
func (c *FuturesContract) MaxQuantity() (types.Quantity, bool) {
	if c.maxQuantity == nil {
		return types.Quantity{}, false
	}
	return *c.maxQuantity, true
}
func (c *FuturesContract) MinQuantity() (types.Quantity, bool) {
	return c.minQuantity, true
}
func (c *FuturesContract) MaxNotional() (types.Money, bool) {
	return types.Money{}, false
}
func (c *FuturesContract) MinNotional() (types.Money, bool) {
	return types.Money{}, false
}

func (c *FuturesContract) MarginInit() decimal.Decimal  { return c.marginInit }
func (c *FuturesContract) MarginMaint() decimal.Decimal { return c.marginMaint }

func (c *FuturesContract) Underlying() (identifiers.Symbol, bool) {
	return c.underlying, true
}
func (c *FuturesContract) OptionKind() (OptionKind, bool) { return 0, false }
func (c *FuturesContract) StrikePrice() (types.Price, bool) {
	return types.Price{}, false
}
func (c *FuturesContract) ActivationNs() (utility.UnixNanos, bool) {
	return c.activationNs, true
}
func (c *FuturesContract) ExpirationNs() (utility.UnixNanos, bool) {
	return c.expirationNs, true
}
func (c *FuturesContract) Isin() (string, bool) { return "", false }
func (c *FuturesContract) Exchange() (string, bool) {
	if c.exchangeCode == "" {
		return "", false
	}
	return c.exchangeCode, true
}

func (c *FuturesContract) TsEvent() utility.UnixNanos { return c.tsEvent }
func (c *FuturesContract) TsInit() utility.UnixNanos  { return c.tsInit }

func (c *FuturesContract) Fields() []zap.Field {
	return []zap.Field{
		zap.String("id", c.id.String()),
		zap.String("raw_symbol", c.rawSymbol.String()),
		zap.String("asset_class", c.assetClass.String()),
		zap.String("underlying", c.underlying.String()),
		zap.String("currency", c.currency.Code),
		zap.Uint8("price_precision", c.pricePrecision),
		zap.String("price_increment", c.priceIncrement.String()),
		zap.String("multiplier", c.multiplier.String()),
		zap.Uint64("expiration_ns", uint64(c.expirationNs)),
	}
}
