// Package safe provides helpers for numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer kinds the converters accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, failing on negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if isNegative(v) || toUint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Int64 converts v to int64, failing on unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if !isNegative(v) && toUint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

func isNegative[T Integer](v T) bool {
	return v < 0
}

// toUint64 is only meaningful for non-negative v.
func toUint64[T Integer](v T) uint64 {
	return uint64(v)
}
