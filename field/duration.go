package field

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
)

// PreciseDurationField is a unit with a fixed length in milliseconds.
type PreciseDurationField struct {
	typ  DurationFieldType
	unit int64
}

// MillisField is the millisecond unit every chronology shares.
var MillisField DurationField = &PreciseDurationField{typ: Millis, unit: 1}

// NewPreciseDuration returns a unit of unitMillis milliseconds.
func NewPreciseDuration(t DurationFieldType, unitMillis int64) (*PreciseDurationField, error) {
	if unitMillis <= 0 {
		return nil, chronoerrors.NewInvalidArgument("unit milliseconds must be positive: %d", unitMillis)
	}
	return &PreciseDurationField{typ: t, unit: unitMillis}, nil
}

// MustPreciseDuration is NewPreciseDuration for package-level constants.
func MustPreciseDuration(t DurationFieldType, unitMillis int64) *PreciseDurationField {
	f, err := NewPreciseDuration(t, unitMillis)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *PreciseDurationField) Type() DurationFieldType { return f.typ }
func (f *PreciseDurationField) Name() string            { return f.typ.String() }
func (f *PreciseDurationField) IsSupported() bool       { return true }
func (f *PreciseDurationField) IsPrecise() bool         { return true }
func (f *PreciseDurationField) UnitMillis() int64       { return f.unit }
func (f *PreciseDurationField) String() string          { return "DurationField[" + f.Name() + "]" }

func (f *PreciseDurationField) Value(duration int64) (int64, error) {
	return duration / f.unit, nil
}

func (f *PreciseDurationField) ValueAt(duration, _ int64) (int64, error) {
	return duration / f.unit, nil
}

func (f *PreciseDurationField) Millis(value int64) (int64, error) {
	return mulChecked(value, f.unit)
}

func (f *PreciseDurationField) MillisAt(value, _ int64) (int64, error) {
	return mulChecked(value, f.unit)
}

func (f *PreciseDurationField) Add(instant, value int64) (int64, error) {
	add, err := mulChecked(value, f.unit)
	if err != nil {
		return 0, err
	}
	return addChecked(instant, add)
}

func (f *PreciseDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	diff, err := subChecked(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return diff / f.unit, nil
}

// ScaledDurationField counts in multiples of another unit, as centuries
// count in hundreds of years.
type ScaledDurationField struct {
	wrapped DurationField
	typ     DurationFieldType
	scalar  int64
}

// NewScaledDuration returns a unit of scalar wrapped units.
func NewScaledDuration(wrapped DurationField, t DurationFieldType, scalar int) (*ScaledDurationField, error) {
	if wrapped == nil || !wrapped.IsSupported() {
		return nil, chronoerrors.NewInvalidArgument("the field must be supported")
	}
	if scalar == 0 || scalar == 1 {
		return nil, chronoerrors.NewInvalidArgument("the scalar must not be 0 or 1: %d", scalar)
	}
	return &ScaledDurationField{wrapped: wrapped, typ: t, scalar: int64(scalar)}, nil
}

func (f *ScaledDurationField) Type() DurationFieldType { return f.typ }
func (f *ScaledDurationField) Name() string            { return f.typ.String() }
func (f *ScaledDurationField) IsSupported() bool       { return true }
func (f *ScaledDurationField) IsPrecise() bool         { return f.wrapped.IsPrecise() }
func (f *ScaledDurationField) UnitMillis() int64       { return f.wrapped.UnitMillis() * f.scalar }
func (f *ScaledDurationField) Scalar() int             { return int(f.scalar) }
func (f *ScaledDurationField) Wrapped() DurationField  { return f.wrapped }

func (f *ScaledDurationField) Value(duration int64) (int64, error) {
	v, err := f.wrapped.Value(duration)
	return v / f.scalar, err
}

func (f *ScaledDurationField) ValueAt(duration, instant int64) (int64, error) {
	v, err := f.wrapped.ValueAt(duration, instant)
	return v / f.scalar, err
}

func (f *ScaledDurationField) Millis(value int64) (int64, error) {
	scaled, err := mulChecked(value, f.scalar)
	if err != nil {
		return 0, err
	}
	return f.wrapped.Millis(scaled)
}

func (f *ScaledDurationField) MillisAt(value, instant int64) (int64, error) {
	scaled, err := mulChecked(value, f.scalar)
	if err != nil {
		return 0, err
	}
	return f.wrapped.MillisAt(scaled, instant)
}

func (f *ScaledDurationField) Add(instant, value int64) (int64, error) {
	scaled, err := mulChecked(value, f.scalar)
	if err != nil {
		return 0, err
	}
	return f.wrapped.Add(instant, scaled)
}

func (f *ScaledDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	v, err := f.wrapped.Difference(minuend, subtrahend)
	return v / f.scalar, err
}

// UnsupportedDurationField is a placeholder for units a chronology lacks.
// Every conversion fails.
type UnsupportedDurationField struct {
	typ DurationFieldType
}

var unsupportedDurations = func() [Millis + 1]*UnsupportedDurationField {
	var out [Millis + 1]*UnsupportedDurationField
	for t := Eras; t <= Millis; t++ {
		out[t] = &UnsupportedDurationField{typ: t}
	}
	return out
}()

// UnsupportedDuration returns the shared placeholder for t.
func UnsupportedDuration(t DurationFieldType) DurationField {
	if !t.Valid() {
		return &UnsupportedDurationField{typ: t}
	}
	return unsupportedDurations[t]
}

func (f *UnsupportedDurationField) Type() DurationFieldType { return f.typ }
func (f *UnsupportedDurationField) Name() string            { return f.typ.String() }
func (f *UnsupportedDurationField) IsSupported() bool       { return false }
func (f *UnsupportedDurationField) IsPrecise() bool         { return true }
func (f *UnsupportedDurationField) UnitMillis() int64       { return 0 }

func (f *UnsupportedDurationField) Value(int64) (int64, error) { return 0, f.fail() }

func (f *UnsupportedDurationField) ValueAt(int64, int64) (int64, error) { return 0, f.fail() }

func (f *UnsupportedDurationField) Millis(int64) (int64, error) { return 0, f.fail() }

func (f *UnsupportedDurationField) MillisAt(int64, int64) (int64, error) { return 0, f.fail() }

func (f *UnsupportedDurationField) Add(int64, int64) (int64, error) { return 0, f.fail() }

func (f *UnsupportedDurationField) Difference(int64, int64) (int64, error) { return 0, f.fail() }

func (f *UnsupportedDurationField) fail() error {
	return chronoerrors.NewUnsupported(f.typ.String())
}
