package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Add returns a+b and reports whether the sum fits in T.
func Add[T constraints.Signed](a, b T) (T, bool) {
	sum := a + b
	// overflow iff both operands share a sign that the sum does not
	if (a^sum)&(b^sum) < 0 {
		return sum, false
	}
	return sum, true
}

// Sub returns a-b and reports whether the difference fits in T.
func Sub[T constraints.Signed](a, b T) (T, bool) {
	diff := a - b
	if (a^b)&(a^diff) < 0 {
		return diff, false
	}
	return diff, true
}

// Mul64 returns a*b and reports whether the product fits in int64.
func Mul64(a, b int64) (int64, bool) {
	switch b {
	case -1:
		if a == math.MinInt64 {
			return 0, false
		}
		return -a, true
	case 0:
		return 0, true
	case 1:
		return a, true
	}
	total := a * b
	if total/b != a || (a == math.MinInt64 && b == -1) {
		return total, false
	}
	return total, true
}

// ToInt32 narrows v to the int32 range used for field values.
func ToInt32(v int64) (int, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) T {
	if a >= 0 {
		return a / b
	}
	return -((-a + b - 1) / b)
}

// FloorMod returns the remainder matching FloorDiv, always in [0, b).
func FloorMod[T constraints.Signed](a, b T) T {
	return a - FloorDiv(a, b)*b
}

// Wrap maps value into [minValue, maxValue], treating the range as cyclic.
func Wrap(value, minValue, maxValue int64) int64 {
	wrapRange := maxValue - minValue + 1
	value -= minValue
	if value >= 0 {
		return value%wrapRange + minValue
	}
	remByRange := (-value) % wrapRange
	if remByRange == 0 {
		return minValue
	}
	return wrapRange - remByRange + minValue
}
