package chrono

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/num"
)

// PeriodField is one amount of a period, such as 3 months.
type PeriodField struct {
	Type  field.DurationFieldType
	Value int
}

// AddPeriod adds scalar times each amount of period to instant, in the
// order given, using the duration fields of c.
func AddPeriod(c Chronology, instant int64, period []PeriodField, scalar int) (int64, error) {
	if scalar == 0 {
		return instant, nil
	}
	for _, pf := range period {
		if pf.Value == 0 {
			continue
		}
		amount, ok := num.Mul64(int64(pf.Value), int64(scalar))
		if !ok {
			return 0, chronoerrors.NewOverflow("multiplication overflows: %d * %d", pf.Value, scalar)
		}
		var err error
		if instant, err = c.Duration(pf.Type).Add(instant, amount); err != nil {
			return 0, err
		}
	}
	return instant, nil
}

// AddDuration adds scalar times duration milliseconds to instant.
func AddDuration(instant, duration int64, scalar int) (int64, error) {
	if duration == 0 || scalar == 0 {
		return instant, nil
	}
	add, ok := num.Mul64(duration, int64(scalar))
	if !ok {
		return 0, chronoerrors.NewOverflow("multiplication overflows: %d * %d", duration, scalar)
	}
	sum, ok := num.Add(instant, add)
	if !ok {
		return 0, chronoerrors.NewOverflow("addition overflows: %d + %d", instant, add)
	}
	return sum, nil
}

// PeriodBetween splits the time from start to end into whole amounts of the
// given units, largest first, carrying each remainder to the next unit.
func PeriodBetween(c Chronology, units []field.DurationFieldType, start, end int64) ([]PeriodField, error) {
	out := make([]PeriodField, len(units))
	if start == end {
		for i, t := range units {
			out[i] = PeriodField{Type: t}
		}
		return out, nil
	}
	for i, t := range units {
		d := c.Duration(t)
		if !d.IsSupported() {
			return nil, chronoerrors.NewUnsupported(t.String())
		}
		v, err := d.Difference(end, start)
		if err != nil {
			return nil, err
		}
		n, ok := num.ToInt32(v)
		if !ok {
			return nil, chronoerrors.NewOverflow("%s: value %d does not fit in an int32", t, v)
		}
		if n != 0 {
			if start, err = d.Add(start, v); err != nil {
				return nil, err
			}
		}
		out[i] = PeriodField{Type: t, Value: n}
	}
	return out, nil
}
