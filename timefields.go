package chrono

import (
	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/textsym"
)

// Time of day is identical in every calendar system, so these instances are
// shared by all of them.
var (
	secondsDuration  = field.MustPreciseDuration(field.Seconds, MillisPerSecond)
	minutesDuration  = field.MustPreciseDuration(field.Minutes, MillisPerMinute)
	hoursDuration    = field.MustPreciseDuration(field.Hours, MillisPerHour)
	halfdaysDuration = field.MustPreciseDuration(field.Halfdays, 12*MillisPerHour)
	daysDuration     = field.MustPreciseDuration(field.Days, MillisPerDay)
	weeksDuration    = field.MustPreciseDuration(field.Weeks, MillisPerWeek)

	millisOfSecondField = field.MustPrecise(field.MillisOfSecond, field.MillisField, secondsDuration)
	millisOfDayField    = field.MustPrecise(field.MillisOfDay, field.MillisField, daysDuration)
	secondOfMinuteField = field.MustPrecise(field.SecondOfMinute, secondsDuration, minutesDuration)
	secondOfDayField    = field.MustPrecise(field.SecondOfDay, secondsDuration, daysDuration)
	minuteOfHourField   = field.MustPrecise(field.MinuteOfHour, minutesDuration, hoursDuration)
	minuteOfDayField    = field.MustPrecise(field.MinuteOfDay, minutesDuration, daysDuration)
	hourOfDayField      = field.MustPrecise(field.HourOfDay, hoursDuration, daysDuration)
	hourOfHalfdayField  = field.MustPrecise(field.HourOfHalfday, hoursDuration, halfdaysDuration)
	halfdayOfDayField   = newHalfdayField()

	clockhourOfDayField     = mustZeroIsMax(hourOfDayField, field.ClockhourOfDay)
	clockhourOfHalfdayField = mustZeroIsMax(hourOfHalfdayField, field.ClockhourOfHalfday)
)

func mustZeroIsMax(f field.DateTimeField, t field.DateTimeFieldType) field.DateTimeField {
	z, err := field.NewZeroIsMax(f, t)
	if err != nil {
		panic(err)
	}
	return z
}

// assembleTime installs the shared time of day fields and durations.
func assembleTime(fs *Fields) {
	fs.setDuration(field.MillisField)
	fs.setDuration(secondsDuration)
	fs.setDuration(minutesDuration)
	fs.setDuration(hoursDuration)
	fs.setDuration(halfdaysDuration)
	fs.setDuration(daysDuration)
	fs.setDuration(weeksDuration)

	fs.set(millisOfSecondField)
	fs.set(millisOfDayField)
	fs.set(secondOfMinuteField)
	fs.set(secondOfDayField)
	fs.set(minuteOfHourField)
	fs.set(minuteOfDayField)
	fs.set(hourOfDayField)
	fs.set(hourOfHalfdayField)
	fs.set(halfdayOfDayField)
	fs.set(clockhourOfDayField)
	fs.set(clockhourOfHalfdayField)
}

// halfdayField is halfday of day with AM and PM text.
type halfdayField struct {
	field.Precise
}

func newHalfdayField() *halfdayField {
	f := &halfdayField{}
	p, err := field.MakePrecise(field.HalfdayOfDay, halfdaysDuration, daysDuration, f)
	if err != nil {
		panic(err)
	}
	f.Precise = p
	return f
}

func (f *halfdayField) ValueText(value int, tag language.Tag) string {
	return textsym.For(tag).HalfDay(value)
}

func (f *halfdayField) ValueShortText(value int, tag language.Tag) string {
	return f.ValueText(value, tag)
}

func (f *halfdayField) ParseText(text string, tag language.Tag) (int, error) {
	if v, ok := textsym.For(tag).ParseHalfDay(text); ok {
		return v, nil
	}
	return 0, textError(field.HalfdayOfDay, text)
}

func (f *halfdayField) MaximumTextLength(tag language.Tag) int {
	return textsym.For(tag).MaxHalfDayLength()
}

func (f *halfdayField) MaximumShortTextLength(tag language.Tag) int {
	return f.MaximumTextLength(tag)
}

func textError(t field.DateTimeFieldType, text string) error {
	return chronoerrors.NewFieldValuef(t.String(), text, "value %q for %s is not supported", text, t)
}
