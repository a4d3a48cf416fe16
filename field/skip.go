package field

import (
	"strconv"

	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

// Skip removes one value from the wrapped field's sequence by shifting every
// value at or below it down by one. Skipping zero turns the astronomical
// years 1, 0, -1 into the historical years 1, -1, -2.
type Skip struct {
	Delegated
	skip     int
	minValue int
}

// NewSkip removes skip from wrapped's values.
func NewSkip(wrapped DateTimeField, skip int) (*Skip, error) {
	d, err := NewDelegated(wrapped, nil, 0)
	if err != nil {
		return nil, err
	}
	f := &Skip{Delegated: *d, skip: skip}
	switch minValue := wrapped.MinimumValue(); {
	case minValue < skip:
		f.minValue = minValue - 1
	case minValue == skip:
		f.minValue = skip + 1
	default:
		f.minValue = minValue
	}
	return f, nil
}

func (f *Skip) Get(instant int64) (int, error) {
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	if v <= f.skip {
		v--
	}
	return v, nil
}

func (f *Skip) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, f.minValue, f.MaximumValue()); err != nil {
		return 0, err
	}
	if value <= f.skip {
		if value == f.skip {
			return 0, chronoerrors.NewFieldValuef(f.typ.String(), strconv.Itoa(value),
				"value %d for %s is skipped", value, f.typ)
		}
		value++
	}
	return f.wrapped.Set(instant, value)
}

func (f *Skip) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	next := WrappedValue(current, amount, f.minValue, f.MaximumValue())
	if next == f.skip {
		if amount >= 0 {
			next = WrappedValue(next, 1, f.minValue, f.MaximumValue())
		} else {
			next = WrappedValue(next, -1, f.minValue, f.MaximumValue())
		}
	}
	return f.Set(instant, next)
}

func (f *Skip) MinimumValue() int        { return f.minValue }
func (f *Skip) MinimumValueAt(int64) int { return f.minValue }

func (f *Skip) MinimumValuePartial(Partial, []int) int { return f.minValue }

func (f *Skip) AsText(instant int64, _ language.Tag) (string, error) {
	v, err := f.Get(instant)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

func (f *Skip) AsShortText(instant int64, tag language.Tag) (string, error) {
	return f.AsText(instant, tag)
}

func (f *Skip) SetText(instant int64, text string, tag language.Tag) (int64, error) {
	v, err := f.ParseText(text, tag)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, v)
}

// SkipUndo puts a skipped value back, so the historical years 1, -1, -2
// read as 1, 0, -1 again.
type SkipUndo struct {
	Delegated
	skip     int
	minValue int
}

// NewSkipUndo restores skip into wrapped's values.
func NewSkipUndo(wrapped DateTimeField, skip int) (*SkipUndo, error) {
	d, err := NewDelegated(wrapped, nil, 0)
	if err != nil {
		return nil, err
	}
	f := &SkipUndo{Delegated: *d, skip: skip}
	switch minValue := wrapped.MinimumValue(); {
	case minValue < skip:
		f.minValue = minValue + 1
	case minValue == skip+1:
		f.minValue = skip
	default:
		f.minValue = minValue
	}
	return f, nil
}

func (f *SkipUndo) Get(instant int64) (int, error) {
	v, err := f.wrapped.Get(instant)
	if err != nil {
		return 0, err
	}
	if v < f.skip {
		v++
	}
	return v, nil
}

func (f *SkipUndo) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, f.minValue, f.MaximumValue()); err != nil {
		return 0, err
	}
	if value <= f.skip {
		value--
	}
	return f.wrapped.Set(instant, value)
}

func (f *SkipUndo) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, WrappedValue(current, amount, f.minValue, f.MaximumValue()))
}

func (f *SkipUndo) MinimumValue() int        { return f.minValue }
func (f *SkipUndo) MinimumValueAt(int64) int { return f.minValue }

func (f *SkipUndo) MinimumValuePartial(Partial, []int) int { return f.minValue }

func (f *SkipUndo) AsText(instant int64, _ language.Tag) (string, error) {
	v, err := f.Get(instant)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

func (f *SkipUndo) AsShortText(instant int64, tag language.Tag) (string, error) {
	return f.AsText(instant, tag)
}

func (f *SkipUndo) SetText(instant int64, text string, tag language.Tag) (int64, error) {
	v, err := f.ParseText(text, tag)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, v)
}
