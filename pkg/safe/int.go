// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int64FromFloat converts a float64 to int64, truncating toward zero.
// NaN, infinities and values outside the int64 range are rejected.
func Int64FromFloat(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %v is not finite", v)
	}
	t := math.Trunc(v)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v out of int64 range", v)
	}
	return int64(t), nil
}
