package utility

import (
	"errors"
	"math"
)

var ErrIntegerOverflow = errors.New("integer overflow")

func U64ToI64(i uint64) (int64, error) {
	if i <= uint64(math.MaxInt64) {
		return int64(i), nil // #nosec G115
	}
	return 0, ErrIntegerOverflow
}

func U64ToI64Unsafe(i uint64) int64 {
	if i <= uint64(math.MaxInt64) {
		return int64(i) // #nosec G115
	}
	panic("integer overflow")
}

func I64ToU64(i int64) (uint64, error) {
	if i >= 0 {
		return uint64(i), nil // #nosec G115
	}
	return 0, ErrIntegerOverflow
}

func I64ToU64Unsafe(i int64) uint64 {
	if i >= 0 {
		return uint64(i) // #nosec G115
	}
	panic("integer overflow")
}

func AddI64(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum > 0) {
		return 0, ErrIntegerOverflow
	}
	return sum, nil
}

func AddI64Unsafe(a, b int64) int64 {
	sum, err := AddI64(a, b)
	if err != nil {
		panic("integer overflow")
	}
	return sum
}

func SubI64(a, b int64) (int64, error) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff > 0) {
		return 0, ErrIntegerOverflow
	}
	return diff, nil
}

func SubI64Unsafe(a, b int64) int64 {
	diff, err := SubI64(a, b)
	if err != nil {
		panic("integer overflow")
	}
	return diff
}
