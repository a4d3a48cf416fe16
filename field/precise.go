package field

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
)

// PreciseUnit is the base of fields whose unit has a fixed length, such as
// day of week counting in days.
type PreciseUnit struct {
	Base
	unitField DurationField
	unit      int64
}

// MakePreciseUnit binds a PreciseUnit to the field embedding it.
func MakePreciseUnit(t DateTimeFieldType, unitField DurationField, self DateTimeField) (PreciseUnit, error) {
	if !unitField.IsPrecise() {
		return PreciseUnit{}, chronoerrors.NewInvalidArgument("unit duration field must be precise")
	}
	unit := unitField.UnitMillis()
	if unit < 1 {
		return PreciseUnit{}, chronoerrors.NewInvalidArgument("the unit milliseconds must be at least 1")
	}
	return PreciseUnit{Base: MakeBase(t, self), unitField: unitField, unit: unit}, nil
}

func (f *PreciseUnit) UnitMillis() int64            { return f.unit }
func (f *PreciseUnit) DurationField() DurationField { return f.unitField }
func (f *PreciseUnit) MinimumValue() int            { return 0 }

func (f *PreciseUnit) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, f.self.MinimumValue(), f.self.MaximumValueAt(instant)); err != nil {
		return 0, err
	}
	current, err := f.self.Get(instant)
	if err != nil {
		return 0, err
	}
	return instant + int64(value-current)*f.unit, nil
}

func (f *PreciseUnit) RoundFloor(instant int64) (int64, error) {
	if instant >= 0 {
		return instant - instant%f.unit, nil
	}
	instant++
	return instant - instant%f.unit - f.unit, nil
}

func (f *PreciseUnit) RoundCeiling(instant int64) (int64, error) {
	if instant > 0 {
		instant--
		return instant - instant%f.unit + f.unit, nil
	}
	return instant - instant%f.unit, nil
}

func (f *PreciseUnit) Remainder(instant int64) (int64, error) {
	if instant >= 0 {
		return instant % f.unit, nil
	}
	return (instant+1)%f.unit + f.unit - 1, nil
}

// Precise is a field whose unit and range are both fixed, such as hour of
// day cycling through 24 one-hour units.
type Precise struct {
	PreciseUnit
	rangeField DurationField
	rangeSize  int
}

// NewPrecise builds a field counting unit within rangeField.
func NewPrecise(t DateTimeFieldType, unit, rangeField DurationField) (*Precise, error) {
	f := &Precise{}
	base, err := MakePrecise(t, unit, rangeField, f)
	if err != nil {
		return nil, err
	}
	*f = base
	return f, nil
}

// MakePrecise binds a Precise to the field embedding it, for fields that
// only add text symbols on top of the arithmetic.
func MakePrecise(t DateTimeFieldType, unit, rangeField DurationField, self DateTimeField) (Precise, error) {
	if !rangeField.IsPrecise() {
		return Precise{}, chronoerrors.NewInvalidArgument("range duration field must be precise")
	}
	base, err := MakePreciseUnit(t, unit, self)
	if err != nil {
		return Precise{}, err
	}
	rangeSize := rangeField.UnitMillis() / base.unit
	if rangeSize < 2 {
		return Precise{}, chronoerrors.NewInvalidArgument("the effective range must be at least 2")
	}
	return Precise{PreciseUnit: base, rangeField: rangeField, rangeSize: int(rangeSize)}, nil
}

// MustPrecise is NewPrecise for package-level fields.
func MustPrecise(t DateTimeFieldType, unit, rangeField DurationField) *Precise {
	f, err := NewPrecise(t, unit, rangeField)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Precise) Get(instant int64) (int, error) {
	r := int64(f.rangeSize)
	if instant >= 0 {
		return int((instant / f.unit) % r), nil
	}
	return int(r - 1 + ((instant+1)/f.unit)%r), nil
}

func (f *Precise) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	wrapped := WrappedValue(current, amount, 0, f.rangeSize-1)
	return instant + int64(wrapped-current)*f.unit, nil
}

func (f *Precise) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, 0, f.rangeSize-1); err != nil {
		return 0, err
	}
	current, _ := f.Get(instant)
	return instant + int64(value-current)*f.unit, nil
}

func (f *Precise) RangeDurationField() DurationField { return f.rangeField }
func (f *Precise) MaximumValue() int                 { return f.rangeSize - 1 }
func (f *Precise) Range() int                        { return f.rangeSize }
