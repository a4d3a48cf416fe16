package field

import (
	"math"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

// Offset shifts the values of the wrapped field by a constant.
type Offset struct {
	Decorated
	offset   int
	minValue int
	maxValue int
}

// NewOffset shifts wrapped by offset. A zero t keeps the wrapped type.
func NewOffset(wrapped DateTimeField, t DateTimeFieldType, offset int) (*Offset, error) {
	if offset == 0 {
		return nil, chronoerrors.NewInvalidArgument("the offset cannot be zero")
	}
	if wrapped != nil && t == 0 {
		t = wrapped.Type()
	}
	f := &Offset{offset: offset}
	base, err := MakeDecorated(t, wrapped, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = base
	f.minValue = clampInt32(int64(wrapped.MinimumValue()) + int64(offset))
	f.maxValue = clampInt32(int64(wrapped.MaximumValue()) + int64(offset))
	return f, nil
}

func (f *Offset) Get(instant int64) (int, error) {
	v, err := f.wrapped.Get(instant)
	return v + f.offset, err
}

func (f *Offset) Add(instant int64, amount int64) (int64, error) {
	out, err := f.wrapped.Add(instant, amount)
	if err != nil {
		return 0, err
	}
	v, err := f.Get(out)
	if err != nil {
		return 0, err
	}
	if err := VerifyBounds(f.typ, v, f.minValue, f.maxValue); err != nil {
		return 0, err
	}
	return out, nil
}

func (f *Offset) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, WrappedValue(current, amount, f.minValue, f.maxValue))
}

func (f *Offset) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, f.minValue, f.maxValue); err != nil {
		return 0, err
	}
	return f.wrapped.Set(instant, value-f.offset)
}

func (f *Offset) IsLeap(instant int64) bool        { return f.wrapped.IsLeap(instant) }
func (f *Offset) LeapAmount(instant int64) int     { return f.wrapped.LeapAmount(instant) }
func (f *Offset) LeapDurationField() DurationField { return f.wrapped.LeapDurationField() }
func (f *Offset) MinimumValue() int                { return f.minValue }
func (f *Offset) MaximumValue() int                { return f.maxValue }

func (f *Offset) RoundCeiling(instant int64) (int64, error) { return f.wrapped.RoundCeiling(instant) }

func (f *Offset) RoundHalfFloor(instant int64) (int64, error) {
	return f.wrapped.RoundHalfFloor(instant)
}

func (f *Offset) RoundHalfCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundHalfCeiling(instant)
}

func (f *Offset) RoundHalfEven(instant int64) (int64, error) {
	return f.wrapped.RoundHalfEven(instant)
}

func (f *Offset) Remainder(instant int64) (int64, error) { return f.wrapped.Remainder(instant) }

func clampInt32(v int64) int {
	switch {
	case v < math.MinInt32:
		return math.MinInt32
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int(v)
}
