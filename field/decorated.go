package field

import (
	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

// Decorated wraps a field and forwards the primitives to it. Embedding types
// override the primitives whose meaning they change.
type Decorated struct {
	Base
	wrapped DateTimeField
}

// MakeDecorated binds a Decorated to the field embedding it.
func MakeDecorated(t DateTimeFieldType, wrapped DateTimeField, self DateTimeField) (Decorated, error) {
	if wrapped == nil {
		return Decorated{}, chronoerrors.NewInvalidArgument("the field must not be nil")
	}
	if !wrapped.IsSupported() {
		return Decorated{}, chronoerrors.NewInvalidArgument("the field must be supported")
	}
	return Decorated{Base: MakeBase(t, self), wrapped: wrapped}, nil
}

// Wrapped returns the decorated field.
func (f *Decorated) Wrapped() DateTimeField { return f.wrapped }

func (f *Decorated) IsLenient() bool                   { return f.wrapped.IsLenient() }
func (f *Decorated) Get(instant int64) (int, error)    { return f.wrapped.Get(instant) }
func (f *Decorated) DurationField() DurationField      { return f.wrapped.DurationField() }
func (f *Decorated) RangeDurationField() DurationField { return f.wrapped.RangeDurationField() }
func (f *Decorated) MinimumValue() int                 { return f.wrapped.MinimumValue() }
func (f *Decorated) MaximumValue() int                 { return f.wrapped.MaximumValue() }

func (f *Decorated) RoundFloor(instant int64) (int64, error) {
	return f.wrapped.RoundFloor(instant)
}

func (f *Decorated) Set(instant int64, value int) (int64, error) {
	return f.wrapped.Set(instant, value)
}

// Delegated forwards every operation to the wrapped field, optionally
// replacing the type and duration fields it reports.
type Delegated struct {
	typ        DateTimeFieldType
	wrapped    DateTimeField
	duration   DurationField
	rangeField DurationField
}

// NewDelegated wraps field. A zero t keeps the wrapped type and nil duration
// fields keep the wrapped ones.
func NewDelegated(wrapped DateTimeField, rangeField DurationField, t DateTimeFieldType) (*Delegated, error) {
	if wrapped == nil {
		return nil, chronoerrors.NewInvalidArgument("the field must not be nil")
	}
	if t == 0 {
		t = wrapped.Type()
	}
	return &Delegated{typ: t, wrapped: wrapped, rangeField: rangeField}, nil
}

// WithDuration replaces the reported duration field.
func (f *Delegated) WithDuration(d DurationField) *Delegated {
	out := *f
	out.duration = d
	return &out
}

func (f *Delegated) Wrapped() DateTimeField  { return f.wrapped }
func (f *Delegated) Type() DateTimeFieldType { return f.typ }
func (f *Delegated) Name() string            { return f.typ.String() }
func (f *Delegated) IsSupported() bool       { return f.wrapped.IsSupported() }
func (f *Delegated) IsLenient() bool         { return f.wrapped.IsLenient() }
func (f *Delegated) String() string          { return "DateTimeField[" + f.Name() + "]" }

func (f *Delegated) Get(instant int64) (int, error) { return f.wrapped.Get(instant) }

func (f *Delegated) Set(instant int64, value int) (int64, error) {
	return f.wrapped.Set(instant, value)
}

func (f *Delegated) Add(instant int64, amount int64) (int64, error) {
	return f.wrapped.Add(instant, amount)
}

func (f *Delegated) AddWrapField(instant int64, amount int) (int64, error) {
	return f.wrapped.AddWrapField(instant, amount)
}

func (f *Delegated) Difference(minuend, subtrahend int64) (int, error) {
	return f.wrapped.Difference(minuend, subtrahend)
}

func (f *Delegated) Difference64(minuend, subtrahend int64) (int64, error) {
	return f.wrapped.Difference64(minuend, subtrahend)
}

func (f *Delegated) IsLeap(instant int64) bool        { return f.wrapped.IsLeap(instant) }
func (f *Delegated) LeapAmount(instant int64) int     { return f.wrapped.LeapAmount(instant) }
func (f *Delegated) LeapDurationField() DurationField { return f.wrapped.LeapDurationField() }

func (f *Delegated) DurationField() DurationField {
	if f.duration != nil {
		return f.duration
	}
	return f.wrapped.DurationField()
}

func (f *Delegated) RangeDurationField() DurationField {
	if f.rangeField != nil {
		return f.rangeField
	}
	return f.wrapped.RangeDurationField()
}

func (f *Delegated) MinimumValue() int                { return f.wrapped.MinimumValue() }
func (f *Delegated) MinimumValueAt(instant int64) int { return f.wrapped.MinimumValueAt(instant) }
func (f *Delegated) MaximumValue() int                { return f.wrapped.MaximumValue() }
func (f *Delegated) MaximumValueAt(instant int64) int { return f.wrapped.MaximumValueAt(instant) }

func (f *Delegated) RoundFloor(instant int64) (int64, error) { return f.wrapped.RoundFloor(instant) }

func (f *Delegated) RoundCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundCeiling(instant)
}

func (f *Delegated) RoundHalfFloor(instant int64) (int64, error) {
	return f.wrapped.RoundHalfFloor(instant)
}

func (f *Delegated) RoundHalfCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundHalfCeiling(instant)
}

func (f *Delegated) RoundHalfEven(instant int64) (int64, error) {
	return f.wrapped.RoundHalfEven(instant)
}

func (f *Delegated) Remainder(instant int64) (int64, error) { return f.wrapped.Remainder(instant) }

func (f *Delegated) AsText(instant int64, tag language.Tag) (string, error) {
	return f.wrapped.AsText(instant, tag)
}

func (f *Delegated) AsShortText(instant int64, tag language.Tag) (string, error) {
	return f.wrapped.AsShortText(instant, tag)
}

func (f *Delegated) ValueText(value int, tag language.Tag) string {
	return f.wrapped.ValueText(value, tag)
}

func (f *Delegated) ValueShortText(value int, tag language.Tag) string {
	return f.wrapped.ValueShortText(value, tag)
}

func (f *Delegated) ParseText(text string, tag language.Tag) (int, error) {
	return f.wrapped.ParseText(text, tag)
}

func (f *Delegated) SetText(instant int64, text string, tag language.Tag) (int64, error) {
	return f.wrapped.SetText(instant, text, tag)
}

func (f *Delegated) MaximumTextLength(tag language.Tag) int { return f.wrapped.MaximumTextLength(tag) }

func (f *Delegated) MaximumShortTextLength(tag language.Tag) int {
	return f.wrapped.MaximumShortTextLength(tag)
}

func (f *Delegated) MinimumValuePartial(p Partial, values []int) int {
	return f.wrapped.MinimumValuePartial(p, values)
}

func (f *Delegated) MaximumValuePartial(p Partial, values []int) int {
	return f.wrapped.MaximumValuePartial(p, values)
}

func (f *Delegated) SetPartial(p Partial, index int, values []int, value int) ([]int, error) {
	return f.wrapped.SetPartial(p, index, values, value)
}

func (f *Delegated) AddPartial(p Partial, index int, values []int, amount int) ([]int, error) {
	return f.wrapped.AddPartial(p, index, values, amount)
}

func (f *Delegated) AddWrapPartial(p Partial, index int, values []int, amount int) ([]int, error) {
	return f.wrapped.AddWrapPartial(p, index, values, amount)
}

func (f *Delegated) AddWrapFieldPartial(p Partial, index int, values []int, amount int) ([]int, error) {
	return f.wrapped.AddWrapFieldPartial(p, index, values, amount)
}
