// Package types implements the canonical value layer: fixed-point scaled
// integers tagged with a precision, and the Money, Price, Quantity and
// Currency types built on top of them.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// FixedPrecision is the maximum supported number of fractional digits.
	FixedPrecision uint8 = 9

	// FixedScalar is 10^FixedPrecision. Every raw value is stored at
	// this scale regardless of the precision it was rounded to.
	FixedScalar = 1_000_000_000
)

func CheckFixedPrecision(precision uint8) error {
	if precision > FixedPrecision {
		return fmt.Errorf("precision %d exceeds maximum %d", precision, FixedPrecision)
	}
	return nil
}

// F64ToFixedI64 rounds value to precision fractional digits and returns
// the raw representation at FixedPrecision scale.
func F64ToFixedI64(value float64, precision uint8) int64 {
	pow1 := math.Pow10(int(precision))
	pow2 := math.Pow10(int(FixedPrecision) - int(precision))
	return int64(math.Round(value*pow1) * pow2)
}

func F64ToFixedU64(value float64, precision uint8) uint64 {
	pow1 := math.Pow10(int(precision))
	pow2 := math.Pow10(int(FixedPrecision) - int(precision))
	return uint64(math.Round(value*pow1) * pow2)
}

func FixedI64ToF64(raw int64) float64 {
	return float64(raw) / FixedScalar
}

func FixedU64ToF64(raw uint64) float64 {
	return float64(raw) / FixedScalar
}

func pow10U64(n uint8) uint64 {
	p := uint64(1)
	for i := uint8(0); i < n; i++ {
		p *= 10
	}
	return p
}

// formatFixedU64 renders raw exactly with precision fractional digits,
// without passing through a float.
func formatFixedU64(raw uint64, precision uint8) string {
	rescaled := raw / pow10U64(FixedPrecision-precision)
	if precision == 0 {
		return strconv.FormatUint(rescaled, 10)
	}
	p := pow10U64(precision)
	return fmt.Sprintf("%d.%0*d", rescaled/p, precision, rescaled%p)
}

func formatFixedI64(raw int64, precision uint8) string {
	if raw < 0 {
		return "-" + formatFixedU64(uint64(-raw), precision)
	}
	return formatFixedU64(uint64(raw), precision)
}

// groupDigits inserts sep between every three digits of the integer part.
func groupDigits(amount, sep string) string {
	intPart, fracPart, hasFrac := strings.Cut(amount, ".")

	neg := strings.HasPrefix(intPart, "-")
	digits := strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
