package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"go.uber.org/zap/zapcore"

	"github.com/meridianfx/meridian/pkg/utility"
)

const (
	// MoneyMax is the maximum representable monetary amount.
	MoneyMax = 9_223_372_036.0

	// MoneyMin is the minimum representable monetary amount.
	MoneyMin = -9_223_372_036.0
)

// Money is a fixed-point amount tagged with a currency denomination.
//
// Arithmetic and ordering are defined only between equal currencies.
// A cross-currency operation is a programming defect and panics; it is
// never reported as a recoverable error. Raw overflow likewise panics,
// monetary totals must never wrap silently.
type Money struct {
	raw      int64
	currency Currency
}

// NewMoney creates a Money from a float amount, rounding to the nearest
// tick at the currency's precision. Returns an error when amount lies
// outside [MoneyMin, MoneyMax].
func NewMoney(amount float64, currency Currency) (Money, error) {
	if amount < MoneyMin || amount > MoneyMax || amount != amount {
		return Money{}, fmt.Errorf("amount %v outside representable range [%v, %v]",
			amount, MoneyMin, MoneyMax)
	}
	return Money{raw: F64ToFixedI64(amount, currency.Precision), currency: currency}, nil
}

// MustNewMoney is the trusted-input variant of NewMoney, it panics when
// the checked constructor would return an error.
func MustNewMoney(amount float64, currency Currency) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromRaw wraps an already-scaled raw value without validation.
// For trusted internal paths such as deserialization of validated data.
func MoneyFromRaw(raw int64, currency Currency) Money {
	return Money{raw: raw, currency: currency}
}

func (m Money) Raw() int64         { return m.raw }
func (m Money) Currency() Currency { return m.currency }
func (m Money) IsZero() bool       { return m.raw == 0 }

// SameCurrency reports whether both amounts share one denomination,
// i.e. whether arithmetic between them is defined.
func (m Money) SameCurrency(o Money) bool { return m.currency == o.currency }

func (m Money) assertSameCurrency(o Money, op string) {
	if m.currency != o.currency {
		panic(fmt.Sprintf("currency mismatch: cannot %s %s and %s",
			op, m.currency.Code, o.currency.Code))
	}
}

func (m Money) checkedAdd(raw int64) int64 {
	sum, err := utility.AddI64(m.raw, raw)
	if err != nil {
		panic("overflow occurred when adding money")
	}
	return sum
}

func (m Money) checkedSub(raw int64) int64 {
	diff, err := utility.SubI64(m.raw, raw)
	if err != nil {
		panic("underflow occurred when subtracting money")
	}
	return diff
}

func (m Money) Add(o Money) Money {
	m.assertSameCurrency(o, "add")
	return Money{raw: m.checkedAdd(o.raw), currency: m.currency}
}

func (m Money) Sub(o Money) Money {
	m.assertSameCurrency(o, "subtract")
	return Money{raw: m.checkedSub(o.raw), currency: m.currency}
}

func (m Money) Neg() Money {
	return Money{raw: -m.raw, currency: m.currency}
}

func (m *Money) AddAssign(o Money) {
	m.assertSameCurrency(o, "add")
	m.raw = m.checkedAdd(o.raw)
}

func (m *Money) SubAssign(o Money) {
	m.assertSameCurrency(o, "subtract")
	m.raw = m.checkedSub(o.raw)
}

// Scalar operations against plain floats leave fixed-point precision and
// return a float. For display and analytics, not for accumulation.
func (m Money) AddF64(v float64) float64 { return m.AsF64() + v }
func (m Money) SubF64(v float64) float64 { return m.AsF64() - v }
func (m Money) MulF64(v float64) float64 { return m.AsF64() * v }
func (m Money) DivF64(v float64) float64 { return m.AsF64() / v }

// Eq reports value equality over (raw, currency). Unlike the ordering
// predicates it never panics, mismatched currencies simply compare false.
func (m Money) Eq(o Money) bool { return m.raw == o.raw && m.currency == o.currency }

// Compare returns -1, 0 or 1. Panics when currencies differ.
func (m Money) Compare(o Money) int {
	m.assertSameCurrency(o, "compare")
	switch {
	case m.raw < o.raw:
		return -1
	case m.raw > o.raw:
		return 1
	default:
		return 0
	}
}

func (m Money) Lt(o Money) bool  { return m.Compare(o) < 0 }
func (m Money) Lte(o Money) bool { return m.Compare(o) <= 0 }
func (m Money) Gt(o Money) bool  { return m.Compare(o) > 0 }
func (m Money) Gte(o Money) bool { return m.Compare(o) >= 0 }

func (m Money) AsF64() float64 { return FixedI64ToF64(m.raw) }

// AsDecimal returns an arbitrary-precision view rescaled from the fixed
// internal scale to the currency precision.
func (m Money) AsDecimal() decimal.Decimal {
	rescaled := m.raw / int64(pow10U64(FixedPrecision-m.currency.Precision))
	return must(decimal.New(rescaled, int(m.currency.Precision)))
}

// String renders the canonical textual form "<amount> <code>" with
// exactly currency.Precision fractional digits.
func (m Money) String() string {
	return formatFixedI64(m.raw, m.currency.Precision) + " " + m.currency.Code
}

// FormattedString renders the amount with underscore thousands separators.
func (m Money) FormattedString() string {
	return groupDigits(formatFixedI64(m.raw, m.currency.Precision), "_") + " " + m.currency.Code
}

// ParseMoney parses the canonical textual form. The amount token may use
// underscores as thousands separators; they are stripped before numeric
// conversion. Any other shape yields a descriptive error.
func ParseMoney(value string) (Money, error) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return Money{}, fmt.Errorf("invalid money format %q, expected '<amount> <currency>'", value)
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], "_", ""), 64)
	if err != nil {
		return Money{}, fmt.Errorf("unable to parse amount %q: %w", parts[0], err)
	}

	currency, err := CurrencyFromCode(parts[1])
	if err != nil {
		return Money{}, fmt.Errorf("unable to parse money %q: %w", value, err)
	}

	return NewMoney(amount, currency)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("amount", formatFixedI64(m.raw, m.currency.Precision))
	enc.AddString("currency", m.currency.Code)
	return nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
