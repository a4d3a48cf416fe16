package field

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

// Base derives the secondary operations of a field from its primitives.
//
// A concrete field embeds Base and supplies Get, Set, RoundFloor,
// DurationField, RangeDurationField, MinimumValue and MaximumValue. Base
// calls those through self, so overriding any derived method in the
// embedding type is honoured by the rest.
type Base struct {
	typ  DateTimeFieldType
	self DateTimeField
}

// MakeBase binds a Base to the field embedding it.
func MakeBase(t DateTimeFieldType, self DateTimeField) Base {
	return Base{typ: t, self: self}
}

func (b *Base) Type() DateTimeFieldType { return b.typ }
func (b *Base) Name() string            { return b.typ.String() }
func (b *Base) IsSupported() bool       { return true }
func (b *Base) IsLenient() bool         { return false }
func (b *Base) String() string          { return "DateTimeField[" + b.Name() + "]" }

func (b *Base) Add(instant int64, amount int64) (int64, error) {
	return b.self.DurationField().Add(instant, amount)
}

func (b *Base) AddWrapField(instant int64, amount int) (int64, error) {
	current, err := b.self.Get(instant)
	if err != nil {
		return 0, err
	}
	wrapped := WrappedValue(current, amount, b.self.MinimumValueAt(instant), b.self.MaximumValueAt(instant))
	return b.self.Set(instant, wrapped)
}

func (b *Base) Difference(minuend, subtrahend int64) (int, error) {
	d, err := b.self.Difference64(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return toInt(b.typ, d)
}

func (b *Base) Difference64(minuend, subtrahend int64) (int64, error) {
	return b.self.DurationField().Difference(minuend, subtrahend)
}

func (b *Base) IsLeap(int64) bool                { return false }
func (b *Base) LeapAmount(int64) int             { return 0 }
func (b *Base) LeapDurationField() DurationField { return nil }

func (b *Base) MinimumValueAt(int64) int { return b.self.MinimumValue() }
func (b *Base) MaximumValueAt(int64) int { return b.self.MaximumValue() }

func (b *Base) RoundCeiling(instant int64) (int64, error) {
	floor, err := b.self.RoundFloor(instant)
	if err != nil || floor == instant {
		return floor, err
	}
	return b.self.Add(floor, 1)
}

func (b *Base) bracket(instant int64) (floor, ceiling int64, err error) {
	if floor, err = b.self.RoundFloor(instant); err != nil {
		return 0, 0, err
	}
	if ceiling, err = b.self.RoundCeiling(instant); err != nil {
		return 0, 0, err
	}
	return floor, ceiling, nil
}

func (b *Base) RoundHalfFloor(instant int64) (int64, error) {
	floor, ceiling, err := b.bracket(instant)
	if err != nil {
		return 0, err
	}
	if instant-floor <= ceiling-instant {
		return floor, nil
	}
	return ceiling, nil
}

func (b *Base) RoundHalfCeiling(instant int64) (int64, error) {
	floor, ceiling, err := b.bracket(instant)
	if err != nil {
		return 0, err
	}
	if ceiling-instant <= instant-floor {
		return ceiling, nil
	}
	return floor, nil
}

func (b *Base) RoundHalfEven(instant int64) (int64, error) {
	floor, ceiling, err := b.bracket(instant)
	if err != nil {
		return 0, err
	}
	fromFloor, toCeiling := instant-floor, ceiling-instant
	switch {
	case fromFloor < toCeiling:
		return floor, nil
	case toCeiling < fromFloor:
		return ceiling, nil
	}
	v, err := b.self.Get(ceiling)
	if err != nil {
		return 0, err
	}
	if v&1 == 0 {
		return ceiling, nil
	}
	return floor, nil
}

func (b *Base) Remainder(instant int64) (int64, error) {
	floor, err := b.self.RoundFloor(instant)
	if err != nil {
		return 0, err
	}
	return instant - floor, nil
}

func (b *Base) AsText(instant int64, tag language.Tag) (string, error) {
	v, err := b.self.Get(instant)
	if err != nil {
		return "", err
	}
	return b.self.ValueText(v, tag), nil
}

func (b *Base) AsShortText(instant int64, tag language.Tag) (string, error) {
	v, err := b.self.Get(instant)
	if err != nil {
		return "", err
	}
	return b.self.ValueShortText(v, tag), nil
}

func (b *Base) ValueText(value int, _ language.Tag) string { return strconv.Itoa(value) }

func (b *Base) ValueShortText(value int, tag language.Tag) string {
	return b.self.ValueText(value, tag)
}

func (b *Base) ParseText(text string, _ language.Tag) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, chronoerrors.NewFieldValuef(b.typ.String(), text, "value %q for %s is not supported", text, b.typ)
	}
	return v, nil
}

func (b *Base) SetText(instant int64, text string, tag language.Tag) (int64, error) {
	v, err := b.self.ParseText(text, tag)
	if err != nil {
		return 0, err
	}
	return b.self.Set(instant, v)
}

func (b *Base) MaximumTextLength(language.Tag) int {
	maxValue := b.self.MaximumValue()
	switch {
	case maxValue >= 0 && maxValue < 10:
		return 1
	case maxValue >= 0 && maxValue < 100:
		return 2
	case maxValue >= 0 && maxValue < 1000:
		return 3
	}
	return len(strconv.Itoa(maxValue))
}

func (b *Base) MaximumShortTextLength(tag language.Tag) int {
	return b.self.MaximumTextLength(tag)
}

func (b *Base) MinimumValuePartial(Partial, []int) int { return b.self.MinimumValue() }
func (b *Base) MaximumValuePartial(Partial, []int) int { return b.self.MaximumValue() }

func (b *Base) SetPartial(p Partial, index int, values []int, value int) ([]int, error) {
	if err := VerifyBounds(b.typ, value, b.self.MinimumValuePartial(p, values), b.self.MaximumValuePartial(p, values)); err != nil {
		return nil, err
	}
	out := cloneValues(values)
	out[index] = value
	for i := index + 1; i < p.Size(); i++ {
		f := p.Field(i)
		if maxValue := f.MaximumValuePartial(p, out); out[i] > maxValue {
			out[i] = maxValue
		}
		if minValue := f.MinimumValuePartial(p, out); out[i] < minValue {
			out[i] = minValue
		}
	}
	return out, nil
}

func (b *Base) AddPartial(p Partial, index int, values []int, amount int) ([]int, error) {
	return b.addPartial(p, index, values, amount, false)
}

func (b *Base) AddWrapPartial(p Partial, index int, values []int, amount int) ([]int, error) {
	return b.addPartial(p, index, values, amount, true)
}

func (b *Base) AddWrapFieldPartial(p Partial, index int, values []int, amount int) ([]int, error) {
	wrapped := WrappedValue(values[index], amount, b.self.MinimumValuePartial(p, values), b.self.MaximumValuePartial(p, values))
	return b.self.SetPartial(p, index, values, wrapped)
}

// addPartial moves one unit of the next larger field at a time, since the
// range of days and months depends on the fields above them.
func (b *Base) addPartial(p Partial, index int, values []int, amount int, wrap bool) ([]int, error) {
	if amount == 0 {
		return values, nil
	}
	out := cloneValues(values)
	remaining := int64(amount)
	var next DateTimeField
	carry := func(step int) error {
		if next == nil {
			if index == 0 {
				return nil
			}
			next = p.Field(index - 1)
			rangeField := b.self.RangeDurationField()
			if rangeField == nil || rangeField.Type() != next.DurationField().Type() {
				return chronoerrors.NewInvalidArgument("fields invalid for add: %s does not roll into %s", b.typ, next.Type())
			}
		}
		var err error
		if wrap {
			out, err = next.AddWrapPartial(p, index-1, out, step)
		} else {
			out, err = next.AddPartial(p, index-1, out, step)
		}
		return err
	}
	for remaining > 0 {
		maxValue := b.self.MaximumValuePartial(p, out)
		if proposed := int64(out[index]) + remaining; proposed <= int64(maxValue) {
			out[index] = int(proposed)
			break
		}
		if index == 0 && !wrap {
			return nil, chronoerrors.NewInvalidArgument("maximum value exceeded for add: %s", b.typ)
		}
		remaining -= int64(maxValue) + 1 - int64(out[index])
		if err := carry(1); err != nil {
			return nil, err
		}
		out[index] = b.self.MinimumValuePartial(p, out)
	}
	for remaining < 0 {
		minValue := b.self.MinimumValuePartial(p, out)
		if proposed := int64(out[index]) + remaining; proposed >= int64(minValue) {
			out[index] = int(proposed)
			break
		}
		if index == 0 && !wrap {
			return nil, chronoerrors.NewInvalidArgument("minimum value exceeded for add: %s", b.typ)
		}
		remaining -= int64(minValue) - 1 - int64(out[index])
		if err := carry(-1); err != nil {
			return nil, err
		}
		out[index] = b.self.MaximumValuePartial(p, out)
	}
	return b.self.SetPartial(p, index, out, out[index])
}
