package field

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/internal/num"
)

// VerifyBounds fails with FieldValueOutOfRange unless lower <= value <= upper.
func VerifyBounds(t DateTimeFieldType, value, lower, upper int) error {
	if value < lower || value > upper {
		return chronoerrors.NewFieldValue(t.String(), int64(value), int64(lower), int64(upper))
	}
	return nil
}

// WrappedValue adds amount to current, wrapping into [minValue, maxValue].
func WrappedValue(current, amount, minValue, maxValue int) int {
	return int(num.Wrap(int64(current)+int64(amount), int64(minValue), int64(maxValue)))
}

func toInt(t DateTimeFieldType, v int64) (int, error) {
	n, ok := num.ToInt32(v)
	if !ok {
		return 0, chronoerrors.NewOverflow("%s: value %d does not fit in an int32", t, v)
	}
	return n, nil
}

func addChecked(a, b int64) (int64, error) {
	sum, ok := num.Add(a, b)
	if !ok {
		return 0, chronoerrors.NewOverflow("the calculation caused an overflow: %d + %d", a, b)
	}
	return sum, nil
}

func subChecked(a, b int64) (int64, error) {
	diff, ok := num.Sub(a, b)
	if !ok {
		return 0, chronoerrors.NewOverflow("the calculation caused an overflow: %d - %d", a, b)
	}
	return diff, nil
}

func mulChecked(a, b int64) (int64, error) {
	product, ok := num.Mul64(a, b)
	if !ok {
		return 0, chronoerrors.NewOverflow("multiplication overflows a long: %d * %d", a, b)
	}
	return product, nil
}

func cloneValues(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	return out
}

// IsContiguous reports whether each field of p is ranged by the unit of the
// field before it, as in year, monthOfYear, dayOfMonth.
func IsContiguous(p Partial) bool {
	var last DurationFieldType
	for i := range p.Size() {
		f := p.Field(i)
		if i > 0 {
			r := f.RangeDurationField()
			if r == nil || r.Type() != last {
				return false
			}
		}
		last = f.DurationField().Type()
	}
	return true
}
