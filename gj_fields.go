package chrono

import (
	"strconv"

	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
)

// cutoverField reads the Julian field before the cutover and the Gregorian
// field from it on. Sets that cross the gap are moved to the same date in
// the other calendar.
type cutoverField struct {
	field.Base
	self       field.DateTimeField
	g          *gj
	julian     field.DateTimeField
	gregorian  field.DateTimeField
	cutover    int64
	byWeekyear bool
	duration   field.DurationField
	rangeField field.DurationField
}

func makeCutoverField(g *gj, julian, gregorian field.DateTimeField, rangeField field.DurationField, cutover int64, byWeekyear bool, self field.DateTimeField) cutoverField {
	if rangeField == nil {
		if rangeField = gregorian.RangeDurationField(); rangeField == nil {
			rangeField = julian.RangeDurationField()
		}
	}
	return cutoverField{
		Base:       field.MakeBase(gregorian.Type(), self),
		self:       self,
		g:          g,
		julian:     julian,
		gregorian:  gregorian,
		cutover:    cutover,
		byWeekyear: byWeekyear,
		duration:   gregorian.DurationField(),
		rangeField: rangeField,
	}
}

func newCutoverField(g *gj, julian, gregorian field.DateTimeField, rangeField field.DurationField, cutover int64, byWeekyear bool) *cutoverField {
	f := &cutoverField{}
	*f = makeCutoverField(g, julian, gregorian, rangeField, cutover, byWeekyear, f)
	return f
}

func (f *cutoverField) toGregorian(instant int64) (int64, error) {
	if f.byWeekyear {
		return f.g.julianToGregorianByWeekyear(instant)
	}
	return f.g.julianToGregorianByYear(instant)
}

func (f *cutoverField) toJulian(instant int64) (int64, error) {
	if f.byWeekyear {
		return f.g.gregorianToJulianByWeekyear(instant)
	}
	return f.g.gregorianToJulianByYear(instant)
}

func (f *cutoverField) at(instant int64) field.DateTimeField {
	if instant >= f.cutover {
		return f.gregorian
	}
	return f.julian
}

func (f *cutoverField) IsLenient() bool                         { return false }
func (f *cutoverField) DurationField() field.DurationField      { return f.duration }
func (f *cutoverField) RangeDurationField() field.DurationField { return f.rangeField }
func (f *cutoverField) LeapDurationField() field.DurationField  { return f.gregorian.LeapDurationField() }
func (f *cutoverField) MinimumValue() int                       { return f.julian.MinimumValue() }
func (f *cutoverField) MaximumValue() int                       { return f.gregorian.MaximumValue() }
func (f *cutoverField) IsLeap(instant int64) bool               { return f.at(instant).IsLeap(instant) }
func (f *cutoverField) LeapAmount(instant int64) int            { return f.at(instant).LeapAmount(instant) }

func (f *cutoverField) Get(instant int64) (int, error) { return f.at(instant).Get(instant) }

func (f *cutoverField) Add(instant int64, amount int64) (int64, error) {
	return f.gregorian.Add(instant, amount)
}

func (f *cutoverField) Difference64(minuend, subtrahend int64) (int64, error) {
	return f.gregorian.Difference64(minuend, subtrahend)
}

// Set fails when the value only exists in the days skipped at the cutover.
func (f *cutoverField) Set(instant int64, value int) (int64, error) {
	var err error
	if instant >= f.cutover {
		if instant, err = f.gregorian.Set(instant, value); err != nil {
			return 0, err
		}
		if instant < f.cutover {
			// only adjust when the gap was crossed completely
			if instant+f.g.gap < f.cutover {
				if instant, err = f.toJulian(instant); err != nil {
					return 0, err
				}
			}
			return f.verify(instant, value)
		}
		return instant, nil
	}
	if instant, err = f.julian.Set(instant, value); err != nil {
		return 0, err
	}
	if instant >= f.cutover {
		if instant-f.g.gap >= f.cutover {
			if instant, err = f.toGregorian(instant); err != nil {
				return 0, err
			}
		}
		return f.verify(instant, value)
	}
	return instant, nil
}

func (f *cutoverField) verify(instant int64, value int) (int64, error) {
	got, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	if got != value {
		return 0, chronoerrors.NewFieldValuef(f.Name(), strconv.Itoa(value), "value %d for %s does not exist at the cutover", value, f.Name())
	}
	return instant, nil
}

func (f *cutoverField) MinimumValueAt(instant int64) int {
	if instant < f.cutover {
		return f.julian.MinimumValueAt(instant)
	}
	minValue := f.gregorian.MinimumValueAt(instant)
	// the cutover may shorten the field, so check the minimum exists
	if set, err := f.gregorian.Set(instant, minValue); err == nil && set < f.cutover {
		if v, err := f.gregorian.Get(f.cutover); err == nil {
			minValue = v
		}
	}
	return minValue
}

func (f *cutoverField) MaximumValueAt(instant int64) int {
	if instant >= f.cutover {
		return f.gregorian.MaximumValueAt(instant)
	}
	maxValue := f.julian.MaximumValueAt(instant)
	if set, err := f.julian.Set(instant, maxValue); err == nil && set >= f.cutover {
		if last, err := f.julian.Add(f.cutover, -1); err == nil {
			if v, err := f.julian.Get(last); err == nil {
				maxValue = v
			}
		}
	}
	return maxValue
}

func (f *cutoverField) RoundFloor(instant int64) (int64, error) {
	if instant < f.cutover {
		return f.julian.RoundFloor(instant)
	}
	instant, err := f.gregorian.RoundFloor(instant)
	if err != nil {
		return 0, err
	}
	if instant < f.cutover && instant+f.g.gap < f.cutover {
		return f.toJulian(instant)
	}
	return instant, nil
}

func (f *cutoverField) RoundCeiling(instant int64) (int64, error) {
	if instant >= f.cutover {
		return f.gregorian.RoundCeiling(instant)
	}
	instant, err := f.julian.RoundCeiling(instant)
	if err != nil {
		return 0, err
	}
	if instant >= f.cutover && instant-f.g.gap >= f.cutover {
		return f.toGregorian(instant)
	}
	return instant, nil
}

func (f *cutoverField) AsText(instant int64, tag language.Tag) (string, error) {
	return f.at(instant).AsText(instant, tag)
}

func (f *cutoverField) AsShortText(instant int64, tag language.Tag) (string, error) {
	return f.at(instant).AsShortText(instant, tag)
}

func (f *cutoverField) ValueText(value int, tag language.Tag) string {
	return f.gregorian.ValueText(value, tag)
}

func (f *cutoverField) ValueShortText(value int, tag language.Tag) string {
	return f.gregorian.ValueShortText(value, tag)
}

func (f *cutoverField) ParseText(text string, tag language.Tag) (int, error) {
	return f.gregorian.ParseText(text, tag)
}

func (f *cutoverField) MaximumTextLength(tag language.Tag) int {
	return max(f.julian.MaximumTextLength(tag), f.gregorian.MaximumTextLength(tag))
}

func (f *cutoverField) MaximumShortTextLength(tag language.Tag) int {
	return max(f.julian.MaximumShortTextLength(tag), f.gregorian.MaximumShortTextLength(tag))
}

func (f *cutoverField) MinimumValuePartial(p field.Partial, values []int) int {
	return f.julian.MinimumValuePartial(p, values)
}

// MaximumValuePartial places the partial on the calendar, skipping values
// that do not fit, and takes the maximum at that instant.
func (f *cutoverField) MaximumValuePartial(p field.Partial, values []int) int {
	var instant int64
	for i := range p.Size() {
		pf := f.g.fields.Field(p.Field(i).Type())
		if values[i] > pf.MaximumValueAt(instant) {
			continue
		}
		if set, err := pf.Set(instant, values[i]); err == nil {
			instant = set
		}
	}
	return f.self.MaximumValueAt(instant)
}

// AddPartial runs contiguous partials through the calendar, since the two
// calendars cannot be combined value by value.
func (f *cutoverField) AddPartial(p field.Partial, index int, values []int, amount int) ([]int, error) {
	if amount == 0 {
		return values, nil
	}
	if !field.IsContiguous(p) {
		return f.Base.AddPartial(p, index, values, amount)
	}
	instant, err := partialInstant(&f.g.fields, p, values, 0)
	if err != nil {
		return nil, err
	}
	if instant, err = f.self.Add(instant, int64(amount)); err != nil {
		return nil, err
	}
	return partialValues(&f.g.fields, p, instant)
}

// impreciseCutoverField is a cutover field whose unit is longer than the
// gap, so additions convert across the cutover too.
type impreciseCutoverField struct {
	cutoverField
}

// newImpreciseCutoverField links a nil duration to the new field, so adding
// years or months honours the cutover.
func newImpreciseCutoverField(g *gj, julian, gregorian field.DateTimeField, duration, rangeField field.DurationField, byWeekyear bool) *impreciseCutoverField {
	f := &impreciseCutoverField{}
	f.cutoverField = makeCutoverField(g, julian, gregorian, rangeField, g.cutover, byWeekyear, f)
	if duration == nil {
		duration = &linkedDuration{DurationField: f.cutoverField.duration, f: f}
	}
	f.duration = duration
	return f
}

func (f *impreciseCutoverField) Add(instant int64, amount int64) (int64, error) {
	var err error
	if instant < f.cutover {
		if instant, err = f.julian.Add(instant, amount); err != nil {
			return 0, err
		}
		if instant >= f.cutover && instant-f.g.gap >= f.cutover {
			return f.toGregorian(instant)
		}
		return instant, nil
	}
	if instant, err = f.gregorian.Add(instant, amount); err != nil {
		return 0, err
	}
	if instant >= f.cutover || instant+f.g.gap >= f.cutover {
		return instant, nil
	}
	// the Julian calendar has no year zero
	yearField := f.g.gregorian.Field(field.Year)
	if f.byWeekyear {
		yearField = f.g.gregorian.Field(field.Weekyear)
	}
	year, err := yearField.Get(instant)
	if err != nil {
		return 0, err
	}
	if year <= 0 {
		if instant, err = yearField.Add(instant, -1); err != nil {
			return 0, err
		}
	}
	return f.toJulian(instant)
}

// Difference64 measures in the calendar of the subtrahend.
func (f *impreciseCutoverField) Difference64(minuend, subtrahend int64) (int64, error) {
	var err error
	if minuend >= f.cutover {
		if subtrahend >= f.cutover {
			return f.gregorian.Difference64(minuend, subtrahend)
		}
		if minuend, err = f.toJulian(minuend); err != nil {
			return 0, err
		}
		return f.julian.Difference64(minuend, subtrahend)
	}
	if subtrahend < f.cutover {
		return f.julian.Difference64(minuend, subtrahend)
	}
	if minuend, err = f.toGregorian(minuend); err != nil {
		return 0, err
	}
	return f.gregorian.Difference64(minuend, subtrahend)
}

// The unit is longer than the gap, so the bounds are those of the calendar
// in effect.

func (f *impreciseCutoverField) MinimumValueAt(instant int64) int {
	return f.at(instant).MinimumValueAt(instant)
}

func (f *impreciseCutoverField) MaximumValueAt(instant int64) int {
	return f.at(instant).MaximumValueAt(instant)
}

// linkedDuration routes additions through a field that knows the cutover.
type linkedDuration struct {
	field.DurationField
	f field.DateTimeField
}

func (d *linkedDuration) Add(instant, value int64) (int64, error) { return d.f.Add(instant, value) }

func (d *linkedDuration) Difference(minuend, subtrahend int64) (int64, error) {
	return d.f.Difference64(minuend, subtrahend)
}
