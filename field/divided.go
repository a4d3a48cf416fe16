package field

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
)

// Divided counts the wrapped field in blocks of divisor, as century of era
// divides year of era by 100.
type Divided struct {
	Decorated
	divisor    int
	duration   DurationField
	rangeField DurationField
	minValue   int
	maxValue   int
}

// NewDivided divides wrapped into blocks of divisor. A nil rangeField keeps
// the wrapped range.
func NewDivided(wrapped DateTimeField, rangeField DurationField, t DateTimeFieldType, divisor int) (*Divided, error) {
	if divisor < 2 {
		return nil, chronoerrors.NewInvalidArgument("the divisor must be at least 2: %d", divisor)
	}
	f := &Divided{divisor: divisor, rangeField: rangeField}
	base, err := MakeDecorated(t, wrapped, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = base
	if unit := wrapped.DurationField(); unit != nil && unit.IsSupported() {
		if f.duration, err = NewScaledDuration(unit, t.DurationType(), divisor); err != nil {
			return nil, err
		}
	} else {
		f.duration = UnsupportedDuration(t.DurationType())
	}
	f.minValue = floorQuotient(wrapped.MinimumValue(), divisor)
	f.maxValue = floorQuotient(wrapped.MaximumValue(), divisor)
	return f, nil
}

// Divisor returns the block size.
func (f *Divided) Divisor() int { return f.divisor }

func (f *Divided) Get(instant int64) (int, error) {
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	return floorQuotient(v, f.divisor), nil
}

func (f *Divided) Add(instant int64, amount int64) (int64, error) {
	scaled, err := mulChecked(amount, int64(f.divisor))
	if err != nil {
		return 0, err
	}
	return f.wrapped.Add(instant, scaled)
}

func (f *Divided) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, WrappedValue(current, amount, f.minValue, f.maxValue))
}

func (f *Divided) Difference64(minuend, subtrahend int64) (int64, error) {
	d, err := f.wrapped.Difference64(minuend, subtrahend)
	return d / int64(f.divisor), err
}

func (f *Divided) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, f.minValue, f.maxValue); err != nil {
		return 0, err
	}
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	return f.wrapped.Set(instant, value*f.divisor+floorRemainder(v, f.divisor))
}

func (f *Divided) DurationField() DurationField { return f.duration }

func (f *Divided) RangeDurationField() DurationField {
	if f.rangeField != nil {
		return f.rangeField
	}
	return f.wrapped.RangeDurationField()
}

func (f *Divided) MinimumValue() int { return f.minValue }
func (f *Divided) MaximumValue() int { return f.maxValue }

func (f *Divided) RoundFloor(instant int64) (int64, error) {
	v, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	start, err := f.wrapped.Set(instant, v*f.divisor)
	if err != nil {
		return 0, err
	}
	return f.wrapped.RoundFloor(start)
}

func (f *Divided) Remainder(instant int64) (int64, error) {
	rem, err := f.wrapped.Remainder(instant)
	if err != nil {
		return 0, err
	}
	v, err := f.Get(rem)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, v)
}

// Remainder is the position within a block of a divided field, as year of
// century is year of era modulo 100.
type Remainder struct {
	Decorated
	divisor    int
	duration   DurationField
	rangeField DurationField
}

// NewRemainderOf pairs with a Divided field, counting in the wrapped unit
// within the divided unit. A nil unit keeps the wrapped duration field.
func NewRemainderOf(divided *Divided, unit DurationField, t DateTimeFieldType) (*Remainder, error) {
	if unit == nil {
		unit = divided.wrapped.DurationField()
	}
	f := &Remainder{divisor: divided.divisor, duration: unit, rangeField: divided.duration}
	base, err := MakeDecorated(t, divided.wrapped, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = base
	return f, nil
}

// NewRemainder takes wrapped modulo divisor. A nil rangeField scales the
// wrapped unit by divisor.
func NewRemainder(wrapped DateTimeField, rangeField DurationField, t DateTimeFieldType, divisor int) (*Remainder, error) {
	if divisor < 2 {
		return nil, chronoerrors.NewInvalidArgument("the divisor must be at least 2: %d", divisor)
	}
	f := &Remainder{divisor: divisor, rangeField: rangeField}
	base, err := MakeDecorated(t, wrapped, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = base
	f.duration = wrapped.DurationField()
	if f.rangeField == nil {
		rangeType, _ := t.RangeDurationType()
		if f.rangeField, err = NewScaledDuration(f.duration, rangeType, divisor); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Remainder) Get(instant int64) (int, error) {
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	return floorRemainder(v, f.divisor), nil
}

func (f *Remainder) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, WrappedValue(current, amount, 0, f.divisor-1))
}

func (f *Remainder) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, 0, f.divisor-1); err != nil {
		return 0, err
	}
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	return f.wrapped.Set(instant, floorQuotient(v, f.divisor)*f.divisor+value)
}

func (f *Remainder) DurationField() DurationField      { return f.duration }
func (f *Remainder) RangeDurationField() DurationField { return f.rangeField }
func (f *Remainder) MinimumValue() int                 { return 0 }
func (f *Remainder) MaximumValue() int                 { return f.divisor - 1 }

func (f *Remainder) RoundCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundCeiling(instant)
}

func (f *Remainder) RoundHalfFloor(instant int64) (int64, error) {
	return f.wrapped.RoundHalfFloor(instant)
}

func (f *Remainder) RoundHalfCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundHalfCeiling(instant)
}

func (f *Remainder) RoundHalfEven(instant int64) (int64, error) {
	return f.wrapped.RoundHalfEven(instant)
}

func (f *Remainder) Remainder(instant int64) (int64, error) {
	return f.wrapped.Remainder(instant)
}

func floorQuotient(v, divisor int) int {
	if v >= 0 {
		return v / divisor
	}
	return (v+1)/divisor - 1
}

func floorRemainder(v, divisor int) int {
	if v >= 0 {
		return v % divisor
	}
	return divisor - 1 + (v+1)%divisor
}
