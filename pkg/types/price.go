package types

import (
	"fmt"

	"github.com/govalues/decimal"
)

const (
	PriceMax = 9_223_372_036.0
	PriceMin = -9_223_372_036.0
)

// Price is a fixed-point price value. All prices share the internal
// FixedPrecision scale, so ordering is defined across precisions.
type Price struct {
	raw       int64
	precision uint8
}

func NewPrice(value float64, precision uint8) (Price, error) {
	if err := CheckFixedPrecision(precision); err != nil {
		return Price{}, err
	}
	if value < PriceMin || value > PriceMax || value != value {
		return Price{}, fmt.Errorf("price %v outside representable range [%v, %v]",
			value, PriceMin, PriceMax)
	}
	return Price{raw: F64ToFixedI64(value, precision), precision: precision}, nil
}

func MustNewPrice(value float64, precision uint8) Price {
	p, err := NewPrice(value, precision)
	if err != nil {
		panic(err)
	}
	return p
}

func PriceFromRaw(raw int64, precision uint8) Price {
	return Price{raw: raw, precision: precision}
}

func (p Price) Raw() int64       { return p.raw }
func (p Price) Precision() uint8 { return p.precision }
func (p Price) IsZero() bool     { return p.raw == 0 }

func (p Price) Eq(o Price) bool  { return p.raw == o.raw }
func (p Price) Lt(o Price) bool  { return p.raw < o.raw }
func (p Price) Lte(o Price) bool { return p.raw <= o.raw }
func (p Price) Gt(o Price) bool  { return p.raw > o.raw }
func (p Price) Gte(o Price) bool { return p.raw >= o.raw }

func (p Price) AsF64() float64 { return FixedI64ToF64(p.raw) }

func (p Price) AsDecimal() decimal.Decimal {
	rescaled := p.raw / int64(pow10U64(FixedPrecision-p.precision))
	return must(decimal.New(rescaled, int(p.precision)))
}

func (p Price) String() string {
	return formatFixedI64(p.raw, p.precision)
}

func (p Price) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
