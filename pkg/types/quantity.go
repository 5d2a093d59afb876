package types

import (
	"fmt"

	"github.com/govalues/decimal"

	"github.com/meridianfx/meridian/pkg/utility"
)

const QuantityMax = 18_446_744_073.0

// Quantity is a non-negative fixed-point size value.
type Quantity struct {
	raw       uint64
	precision uint8
}

func NewQuantity(value float64, precision uint8) (Quantity, error) {
	if err := CheckFixedPrecision(precision); err != nil {
		return Quantity{}, err
	}
	if value < 0 || value > QuantityMax || value != value {
		return Quantity{}, fmt.Errorf("quantity %v outside representable range [0, %v]",
			value, QuantityMax)
	}
	return Quantity{raw: F64ToFixedU64(value, precision), precision: precision}, nil
}

func MustNewQuantity(value float64, precision uint8) Quantity {
	q, err := NewQuantity(value, precision)
	if err != nil {
		panic(err)
	}
	return q
}

func QuantityFromRaw(raw uint64, precision uint8) Quantity {
	return Quantity{raw: raw, precision: precision}
}

// QuantityFromInt creates a whole-unit quantity at precision zero.
func QuantityFromInt(units uint64) Quantity {
	return Quantity{raw: units * FixedScalar, precision: 0}
}

func (q Quantity) Raw() uint64      { return q.raw }
func (q Quantity) Precision() uint8 { return q.precision }
func (q Quantity) IsZero() bool     { return q.raw == 0 }

func (q Quantity) Eq(o Quantity) bool  { return q.raw == o.raw }
func (q Quantity) Lt(o Quantity) bool  { return q.raw < o.raw }
func (q Quantity) Lte(o Quantity) bool { return q.raw <= o.raw }
func (q Quantity) Gt(o Quantity) bool  { return q.raw > o.raw }
func (q Quantity) Gte(o Quantity) bool { return q.raw >= o.raw }

func (q Quantity) AsF64() float64 { return FixedU64ToF64(q.raw) }

func (q Quantity) AsDecimal() decimal.Decimal {
	rescaled := utility.U64ToI64Unsafe(q.raw / pow10U64(FixedPrecision-q.precision))
	return must(decimal.New(rescaled, int(q.precision)))
}

func (q Quantity) String() string {
	return formatFixedU64(q.raw, q.precision)
}

func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}
