package field

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
)

// ZeroIsMax reports the wrapped field's zero as one past its maximum, so an
// hour of day of 0 reads as clock hour 24.
type ZeroIsMax struct {
	Decorated
}

// NewZeroIsMax wraps a field whose minimum is zero.
func NewZeroIsMax(wrapped DateTimeField, t DateTimeFieldType) (*ZeroIsMax, error) {
	if wrapped != nil && wrapped.MinimumValue() != 0 {
		return nil, chronoerrors.NewInvalidArgument("wrapped field's minimum value must be zero")
	}
	f := &ZeroIsMax{}
	base, err := MakeDecorated(t, wrapped, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = base
	return f, nil
}

func (f *ZeroIsMax) Get(instant int64) (int, error) {
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		v = f.MaximumValue()
	}
	return v, nil
}

func (f *ZeroIsMax) Add(instant int64, amount int64) (int64, error) {
	return f.wrapped.Add(instant, amount)
}

func (f *ZeroIsMax) AddWrapField(instant int64, amount int) (int64, error) {
	return f.wrapped.AddWrapField(instant, amount)
}

func (f *ZeroIsMax) Difference64(minuend, subtrahend int64) (int64, error) {
	return f.wrapped.Difference64(minuend, subtrahend)
}

func (f *ZeroIsMax) Set(instant int64, value int) (int64, error) {
	maxValue := f.MaximumValue()
	if err := VerifyBounds(f.typ, value, 1, maxValue); err != nil {
		return 0, err
	}
	if value == maxValue {
		value = 0
	}
	return f.wrapped.Set(instant, value)
}

func (f *ZeroIsMax) IsLeap(instant int64) bool        { return f.wrapped.IsLeap(instant) }
func (f *ZeroIsMax) LeapAmount(instant int64) int     { return f.wrapped.LeapAmount(instant) }
func (f *ZeroIsMax) LeapDurationField() DurationField { return f.wrapped.LeapDurationField() }

func (f *ZeroIsMax) MinimumValue() int                { return 1 }
func (f *ZeroIsMax) MinimumValueAt(int64) int         { return 1 }
func (f *ZeroIsMax) MaximumValue() int                { return f.wrapped.MaximumValue() + 1 }
func (f *ZeroIsMax) MaximumValueAt(instant int64) int { return f.wrapped.MaximumValueAt(instant) + 1 }

func (f *ZeroIsMax) MinimumValuePartial(Partial, []int) int { return 1 }

func (f *ZeroIsMax) MaximumValuePartial(p Partial, values []int) int {
	return f.wrapped.MaximumValuePartial(p, values) + 1
}

func (f *ZeroIsMax) RoundCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundCeiling(instant)
}

func (f *ZeroIsMax) RoundHalfFloor(instant int64) (int64, error) {
	return f.wrapped.RoundHalfFloor(instant)
}

func (f *ZeroIsMax) RoundHalfCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundHalfCeiling(instant)
}

func (f *ZeroIsMax) RoundHalfEven(instant int64) (int64, error) {
	return f.wrapped.RoundHalfEven(instant)
}

func (f *ZeroIsMax) Remainder(instant int64) (int64, error) { return f.wrapped.Remainder(instant) }
