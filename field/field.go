// Package field defines calendar and duration fields and the building blocks
// chronologies assemble them from.
//
// A field never holds mutable state: every operation is a function of the
// instant and arguments passed in, so fields are shared freely between
// goroutines. Instants are milliseconds since 1970-01-01T00:00:00Z, or local
// milliseconds when the owning chronology has no zone.
package field

import (
	"golang.org/x/text/language"
)

// DurationField converts between amounts of a unit and milliseconds.
type DurationField interface {
	Type() DurationFieldType
	Name() string
	IsSupported() bool
	// IsPrecise reports whether every unit spans UnitMillis milliseconds.
	IsPrecise() bool
	// UnitMillis is the exact unit length for precise fields and an
	// average for imprecise ones.
	UnitMillis() int64

	// Value converts a duration to whole units, truncating toward zero.
	// Imprecise fields use the average unit length.
	Value(duration int64) (int64, error)
	// ValueAt converts a duration measured from instant to whole units.
	ValueAt(duration, instant int64) (int64, error)
	// Millis converts units to a duration using the average unit length.
	Millis(value int64) (int64, error)
	// MillisAt converts units added at instant to a duration.
	MillisAt(value, instant int64) (int64, error)

	Add(instant, value int64) (int64, error)
	// Difference counts the whole units between subtrahend and minuend.
	Difference(minuend, subtrahend int64) (int64, error)
}

// Partial is an ordered set of fields, largest first, with no instant.
type Partial interface {
	Size() int
	Field(index int) DateTimeField
	// IndexOf returns the position of a field type, or -1.
	IndexOf(t DateTimeFieldType) int
}

// DateTimeField reads and updates one calendar component of an instant.
type DateTimeField interface {
	Type() DateTimeFieldType
	Name() string
	IsSupported() bool
	// IsLenient reports whether Set accepts out of range values by rolling
	// them into the next field.
	IsLenient() bool

	Get(instant int64) (int, error)
	Set(instant int64, value int) (int64, error)
	// Add adds whole units, carrying into larger fields.
	Add(instant int64, amount int64) (int64, error)
	// AddWrapField adds whole units, wrapping within the field's own range.
	AddWrapField(instant int64, amount int) (int64, error)
	Difference(minuend, subtrahend int64) (int, error)
	Difference64(minuend, subtrahend int64) (int64, error)

	IsLeap(instant int64) bool
	LeapAmount(instant int64) int
	// LeapDurationField returns the unit that leaps are counted in, or nil.
	LeapDurationField() DurationField
	DurationField() DurationField
	// RangeDurationField returns the unit the field cycles within, or nil.
	RangeDurationField() DurationField

	MinimumValue() int
	MinimumValueAt(instant int64) int
	MaximumValue() int
	MaximumValueAt(instant int64) int

	RoundFloor(instant int64) (int64, error)
	RoundCeiling(instant int64) (int64, error)
	RoundHalfFloor(instant int64) (int64, error)
	RoundHalfCeiling(instant int64) (int64, error)
	RoundHalfEven(instant int64) (int64, error)
	// Remainder returns the milliseconds elapsed since RoundFloor.
	Remainder(instant int64) (int64, error)

	AsText(instant int64, tag language.Tag) (string, error)
	AsShortText(instant int64, tag language.Tag) (string, error)
	ValueText(value int, tag language.Tag) string
	ValueShortText(value int, tag language.Tag) string
	ParseText(text string, tag language.Tag) (int, error)
	SetText(instant int64, text string, tag language.Tag) (int64, error)
	MaximumTextLength(tag language.Tag) int
	MaximumShortTextLength(tag language.Tag) int

	// MinimumValuePartial returns the smallest value allowed given the other
	// values of a partial.
	MinimumValuePartial(p Partial, values []int) int
	MaximumValuePartial(p Partial, values []int) int
	// SetPartial stores value at index and clamps every smaller field. The
	// input slice is not modified.
	SetPartial(p Partial, index int, values []int, value int) ([]int, error)
	// AddPartial adds to the field at index, carrying into the larger
	// fields of the partial.
	AddPartial(p Partial, index int, values []int, amount int) ([]int, error)
	// AddWrapPartial is AddPartial, except the largest field wraps instead
	// of failing when it overflows.
	AddWrapPartial(p Partial, index int, values []int, amount int) ([]int, error)
	// AddWrapFieldPartial wraps the field at index within its own range.
	// Larger fields are never touched.
	AddWrapFieldPartial(p Partial, index int, values []int, amount int) ([]int, error)
}

// CompareDuration orders duration fields by unit length, then by type with
// finer units first. Unsupported fields sort first.
func CompareDuration(a, b DurationField) int {
	if !a.IsSupported() || !b.IsSupported() {
		switch {
		case a.IsSupported():
			return 1
		case b.IsSupported():
			return -1
		default:
			return 0
		}
	}
	ua, ub := a.UnitMillis(), b.UnitMillis()
	switch {
	case ua < ub:
		return -1
	case ua > ub:
		return 1
	}
	switch ta, tb := a.Type(), b.Type(); {
	case ta > tb:
		return -1
	case ta < tb:
		return 1
	}
	return 0
}
