package chrono

import (
	"math"

	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/num"
	"github.com/jacoelho/chrono/internal/textsym"
)

func mustUnit(t field.DateTimeFieldType, unit field.DurationField, self field.DateTimeField) field.PreciseUnit {
	pu, err := field.MakePreciseUnit(t, unit, self)
	if err != nil {
		panic(err)
	}
	return pu
}

// rawYear converts a year as shown by the year field to the engine's
// astronomical numbering.
func (b *basic) rawYear(year int) int {
	if b.skipYearZero && year < 0 {
		return year + 1
	}
	return year
}

type yearField struct {
	field.Imprecise
	b *basic
}

func newYearField(b *basic) *yearField {
	f := &yearField{b: b}
	f.Imprecise = field.MakeImprecise(field.Year, b.rules.averageMillisPerYear(), f)
	return f
}

func (f *yearField) Get(instant int64) (int, error) { return f.b.year(instant), nil }

func (f *yearField) Add(instant int64, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	year, ok := num.Add(int64(f.b.year(instant)), amount)
	if !ok {
		return 0, chronoerrors.NewOverflow("the calculation caused an overflow: %d years", amount)
	}
	if err := f.b.checkYear(field.Year, year); err != nil {
		return 0, err
	}
	return f.Set(instant, int(year))
}

func (f *yearField) AddWrapField(instant int64, amount int) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	return f.Set(instant, field.WrappedValue(f.b.year(instant), amount, f.b.rules.minYear(), f.b.rules.maxYear()))
}

func (f *yearField) Set(instant int64, year int) (int64, error) {
	if err := field.VerifyBounds(field.Year, year, f.b.rules.minYear(), f.b.rules.maxYear()); err != nil {
		return 0, err
	}
	return f.b.months.setYear(f.b, instant, year), nil
}

func (f *yearField) Difference64(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		return -f.b.months.yearDifference(f.b, subtrahend, minuend), nil
	}
	return f.b.months.yearDifference(f.b, minuend, subtrahend), nil
}

func (f *yearField) RangeDurationField() field.DurationField { return nil }
func (f *yearField) IsLeap(instant int64) bool               { return f.b.rules.isLeapYear(f.b.year(instant)) }
func (f *yearField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *yearField) MinimumValue() int                       { return f.b.rules.minYear() }
func (f *yearField) MaximumValue() int                       { return f.b.rules.maxYear() }

func (f *yearField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *yearField) RoundFloor(instant int64) (int64, error) {
	return f.b.yearMillis(f.b.year(instant)), nil
}

func (f *yearField) RoundCeiling(instant int64) (int64, error) {
	year := f.b.year(instant)
	if start := f.b.yearMillis(year); start == instant {
		return start, nil
	}
	return f.b.yearMillis(year + 1), nil
}

// checkYear fails with DateOutOfRange when an arithmetic result lands on a
// year the calendar cannot represent.
func (b *basic) checkYear(t field.DateTimeFieldType, year int64) error {
	if year < int64(b.rules.minYear()) || year > int64(b.rules.maxYear()) {
		return chronoerrors.NewDateOutOfRange("%s %d is outside the supported range [%d, %d]", t, year, b.rules.minYear(), b.rules.maxYear())
	}
	return nil
}

// yearOfEraField counts years from 1 in both eras, so the astronomical year
// 0 is 1 BCE.
type yearOfEraField struct {
	field.Decorated
	b    *basic
	year field.DateTimeField
}

func newYearOfEraField(b *basic, year field.DateTimeField) (*yearOfEraField, error) {
	f := &yearOfEraField{b: b, year: year}
	d, err := field.MakeDecorated(field.YearOfEra, year, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = d
	return f, nil
}

func (f *yearOfEraField) Get(instant int64) (int, error) {
	year := f.b.year(instant)
	if year <= 0 {
		year = 1 - year
	}
	return year, nil
}

func (f *yearOfEraField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyBounds(field.YearOfEra, value, 1, f.MaximumValue()); err != nil {
		return 0, err
	}
	if f.b.year(instant) <= 0 {
		value = 1 - value
	}
	return f.year.Set(instant, value)
}

func (f *yearOfEraField) Add(instant int64, amount int64) (int64, error) {
	return f.year.Add(instant, amount)
}

func (f *yearOfEraField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.year.AddWrapField(instant, amount)
}

func (f *yearOfEraField) Difference64(minuend, subtrahend int64) (int64, error) {
	return f.year.Difference64(minuend, subtrahend)
}

func (f *yearOfEraField) RangeDurationField() field.DurationField {
	return field.UnsupportedDuration(field.Eras)
}

func (f *yearOfEraField) MinimumValue() int { return 1 }

func (f *yearOfEraField) RoundCeiling(instant int64) (int64, error) {
	return f.year.RoundCeiling(instant)
}

func (f *yearOfEraField) Remainder(instant int64) (int64, error) { return f.year.Remainder(instant) }

// eraField splits the timeline at the start of year 1 into BCE and CE.
type eraField struct {
	field.Base
	b *basic
}

func newEraField(b *basic) *eraField {
	f := &eraField{b: b}
	f.Base = field.MakeBase(field.Era, f)
	return f
}

func (f *eraField) Get(instant int64) (int, error) {
	if f.b.year(instant) <= 0 {
		return BCE, nil
	}
	return CE, nil
}

// Set keeps the year of era, so 2000 CE becomes 2000 BCE.
func (f *eraField) Set(instant int64, era int) (int64, error) {
	if err := field.VerifyBounds(field.Era, era, BCE, CE); err != nil {
		return 0, err
	}
	if current, _ := f.Get(instant); current == era {
		return instant, nil
	}
	return f.b.months.setYear(f.b, instant, 1-f.b.year(instant)), nil
}

func (f *eraField) DurationField() field.DurationField      { return field.UnsupportedDuration(field.Eras) }
func (f *eraField) RangeDurationField() field.DurationField { return nil }
func (f *eraField) MinimumValue() int                       { return BCE }
func (f *eraField) MaximumValue() int                       { return CE }

func (f *eraField) RoundFloor(instant int64) (int64, error) {
	if era, _ := f.Get(instant); era == CE {
		return f.b.yearMillis(1), nil
	}
	return math.MinInt64, nil
}

func (f *eraField) RoundCeiling(instant int64) (int64, error) {
	if era, _ := f.Get(instant); era == BCE {
		return f.b.yearMillis(1), nil
	}
	return math.MaxInt64, nil
}

func (f *eraField) RoundHalfFloor(instant int64) (int64, error)   { return f.RoundFloor(instant) }
func (f *eraField) RoundHalfCeiling(instant int64) (int64, error) { return f.RoundFloor(instant) }
func (f *eraField) RoundHalfEven(instant int64) (int64, error)    { return f.RoundFloor(instant) }

func (f *eraField) ValueText(value int, tag language.Tag) string {
	return textsym.For(tag).Era(value)
}

func (f *eraField) ParseText(text string, tag language.Tag) (int, error) {
	if v, ok := textsym.For(tag).ParseEra(text); ok {
		return v, nil
	}
	return 0, textError(field.Era, text)
}

func (f *eraField) MaximumTextLength(tag language.Tag) int { return textsym.For(tag).MaxEraLength() }

// singleEraField is the era of calendars that count from one epoch only.
type singleEraField struct {
	field.Base
	text string
}

func newSingleEraField(text string) *singleEraField {
	f := &singleEraField{text: text}
	f.Base = field.MakeBase(field.Era, f)
	return f
}

func (f *singleEraField) Get(int64) (int, error) { return CE, nil }

func (f *singleEraField) Set(instant int64, era int) (int64, error) {
	if err := field.VerifyBounds(field.Era, era, CE, CE); err != nil {
		return 0, err
	}
	return instant, nil
}

func (f *singleEraField) DurationField() field.DurationField      { return field.UnsupportedDuration(field.Eras) }
func (f *singleEraField) RangeDurationField() field.DurationField { return nil }
func (f *singleEraField) MinimumValue() int                       { return CE }
func (f *singleEraField) MaximumValue() int                       { return CE }

func (f *singleEraField) RoundFloor(int64) (int64, error)       { return math.MinInt64, nil }
func (f *singleEraField) RoundCeiling(int64) (int64, error)     { return math.MaxInt64, nil }
func (f *singleEraField) RoundHalfFloor(int64) (int64, error)   { return math.MinInt64, nil }
func (f *singleEraField) RoundHalfCeiling(int64) (int64, error) { return math.MinInt64, nil }
func (f *singleEraField) RoundHalfEven(int64) (int64, error)    { return math.MinInt64, nil }

func (f *singleEraField) ValueText(int, language.Tag) string { return f.text }
func (f *singleEraField) MaximumTextLength(language.Tag) int { return len(f.text) }

func (f *singleEraField) ParseText(text string, _ language.Tag) (int, error) {
	if text != f.text {
		return 0, textError(field.Era, text)
	}
	return CE, nil
}

// monthField adds months by keeping the day of month where possible and
// clamping it to the end of shorter months.
type monthField struct {
	field.Imprecise
	b    *basic
	text bool
}

func newMonthField(b *basic, text bool) *monthField {
	f := &monthField{b: b, text: text}
	f.Imprecise = field.MakeImprecise(field.MonthOfYear, b.rules.averageMillisPerMonth(), f)
	return f
}

func (f *monthField) Get(instant int64) (int, error) { return f.b.monthOfYear(instant), nil }

func (f *monthField) Add(instant int64, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	b := f.b
	timePart := int64(b.millisOfDay(instant))
	year := b.year(instant)
	month := b.months.monthOfYear(b, instant, year)
	perYear := int64(b.months.maxMonth())
	total, ok := num.Add(int64(year)*perYear+int64(month-1), amount)
	if !ok {
		return 0, chronoerrors.NewOverflow("the calculation caused an overflow: %d months", amount)
	}
	newYear := num.FloorDiv(total, perYear)
	newMonth := int(num.FloorMod(total, perYear)) + 1
	if err := b.checkYear(field.Year, newYear); err != nil {
		return 0, err
	}
	day := b.dayOfMonthIn(instant, year, month)
	if maxDay := b.months.daysInYearMonth(b, int(newYear), newMonth); day > maxDay {
		day = maxDay
	}
	return b.yearMonthDayMillis(int(newYear), newMonth, day) + timePart, nil
}

func (f *monthField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.Set(instant, field.WrappedValue(f.b.monthOfYear(instant), amount, 1, f.b.months.maxMonth()))
}

// Difference64 counts 31 January to 28 February as one month, mirroring
// the clamping done by Add.
func (f *monthField) Difference64(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		d, err := f.Difference64(subtrahend, minuend)
		return -d, err
	}
	b := f.b
	minuendYear := b.year(minuend)
	minuendMonth := b.months.monthOfYear(b, minuend, minuendYear)
	subtrahendYear := b.year(subtrahend)
	subtrahendMonth := b.months.monthOfYear(b, subtrahend, subtrahendYear)

	diff := (int64(minuendYear)-int64(subtrahendYear))*int64(b.months.maxMonth()) + int64(minuendMonth-subtrahendMonth)

	minuendDom := b.dayOfMonthIn(minuend, minuendYear, minuendMonth)
	if minuendDom == b.months.daysInYearMonth(b, minuendYear, minuendMonth) {
		if subtrahendDom := b.dayOfMonthIn(subtrahend, subtrahendYear, subtrahendMonth); subtrahendDom > minuendDom {
			subtrahend = b.yearMonthDayMillis(subtrahendYear, subtrahendMonth, minuendDom) + int64(b.millisOfDay(subtrahend))
		}
	}
	minuendRem := minuend - b.yearMonthMillis(minuendYear, minuendMonth)
	subtrahendRem := subtrahend - b.yearMonthMillis(subtrahendYear, subtrahendMonth)
	if minuendRem < subtrahendRem {
		diff--
	}
	return diff, nil
}

func (f *monthField) Set(instant int64, month int) (int64, error) {
	b := f.b
	if err := field.VerifyBounds(field.MonthOfYear, month, 1, b.months.maxMonth()); err != nil {
		return 0, err
	}
	year := b.year(instant)
	day := b.dayOfMonthIn(instant, year, b.months.monthOfYear(b, instant, year))
	if maxDay := b.months.daysInYearMonth(b, year, month); day > maxDay {
		day = maxDay
	}
	return b.yearMonthDayMillis(year, month, day) + int64(b.millisOfDay(instant)), nil
}

func (f *monthField) RangeDurationField() field.DurationField { return f.b.fields.Duration(field.Years) }
func (f *monthField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *monthField) MinimumValue() int                       { return 1 }
func (f *monthField) MaximumValue() int                       { return f.b.months.maxMonth() }

func (f *monthField) IsLeap(instant int64) bool {
	year := f.b.year(instant)
	return f.b.rules.isLeapYear(year) && f.b.months.monthOfYear(f.b, instant, year) == f.b.months.leapMonth()
}

func (f *monthField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *monthField) RoundFloor(instant int64) (int64, error) {
	year := f.b.year(instant)
	return f.b.yearMonthMillis(year, f.b.months.monthOfYear(f.b, instant, year)), nil
}

// AddPartial wraps when month is the largest field of the partial, so
// month-day values never fail, and otherwise adds on a real date when the
// fields form a contiguous run.
func (f *monthField) AddPartial(p field.Partial, index int, values []int, amount int) ([]int, error) {
	if amount == 0 {
		return values, nil
	}
	if p.Size() > 0 && index == 0 && p.Field(0).Type() == field.MonthOfYear {
		return f.SetPartial(p, 0, values, field.WrappedValue(values[0], amount, 1, f.b.months.maxMonth()))
	}
	if !field.IsContiguous(p) {
		return f.Imprecise.AddPartial(p, index, values, amount)
	}
	instant, err := partialInstant(&f.b.fields, p, values, 0)
	if err != nil {
		return nil, err
	}
	if instant, err = f.Add(instant, int64(amount)); err != nil {
		return nil, err
	}
	return partialValues(&f.b.fields, p, instant)
}

func (f *monthField) ValueText(value int, tag language.Tag) string {
	if !f.text {
		return f.Imprecise.ValueText(value, tag)
	}
	return textsym.For(tag).Month(value)
}

func (f *monthField) ValueShortText(value int, tag language.Tag) string {
	if !f.text {
		return f.Imprecise.ValueText(value, tag)
	}
	return textsym.For(tag).ShortMonth(value)
}

func (f *monthField) ParseText(text string, tag language.Tag) (int, error) {
	if !f.text {
		return f.Imprecise.ParseText(text, tag)
	}
	if v, ok := textsym.For(tag).ParseMonth(text); ok {
		return v, nil
	}
	return 0, textError(field.MonthOfYear, text)
}

func (f *monthField) MaximumTextLength(tag language.Tag) int {
	if !f.text {
		return f.Imprecise.MaximumTextLength(tag)
	}
	return textsym.For(tag).MaxMonthLength()
}

func (f *monthField) MaximumShortTextLength(tag language.Tag) int {
	if !f.text {
		return f.Imprecise.MaximumTextLength(tag)
	}
	return textsym.For(tag).MaxShortMonthLength()
}

type dayOfMonthField struct {
	field.PreciseUnit
	b *basic
}

func newDayOfMonthField(b *basic) *dayOfMonthField {
	f := &dayOfMonthField{b: b}
	f.PreciseUnit = mustUnit(field.DayOfMonth, daysDuration, f)
	return f
}

func (f *dayOfMonthField) Get(instant int64) (int, error) { return f.b.dayOfMonth(instant), nil }

func (f *dayOfMonthField) RangeDurationField() field.DurationField { return f.b.fields.Duration(field.Months) }
func (f *dayOfMonthField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *dayOfMonthField) MinimumValue() int                       { return 1 }
func (f *dayOfMonthField) MaximumValue() int                       { return f.b.months.daysInAnyMonthMax() }
func (f *dayOfMonthField) MaximumValueAt(instant int64) int        { return f.b.daysInMonthMaxAt(instant) }
func (f *dayOfMonthField) IsLeap(instant int64) bool               { return f.b.months.isLeapDay(f.b, instant) }

func (f *dayOfMonthField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

// MaximumValuePartial narrows the maximum using the month and year of the
// partial when present.
func (f *dayOfMonthField) MaximumValuePartial(p field.Partial, values []int) int {
	i := p.IndexOf(field.MonthOfYear)
	if i < 0 {
		return f.MaximumValue()
	}
	month := values[i]
	if month < 1 || month > f.b.months.maxMonth() {
		return f.MaximumValue()
	}
	if j := p.IndexOf(field.Year); j >= 0 {
		return f.b.months.daysInYearMonth(f.b, f.b.rawYear(values[j]), month)
	}
	return f.b.months.daysInMonthMax(month)
}

type dayOfYearField struct {
	field.PreciseUnit
	b *basic
}

func newDayOfYearField(b *basic) *dayOfYearField {
	f := &dayOfYearField{b: b}
	f.PreciseUnit = mustUnit(field.DayOfYear, daysDuration, f)
	return f
}

func (f *dayOfYearField) Get(instant int64) (int, error) {
	return f.b.dayOfYear(instant, f.b.year(instant)), nil
}

func (f *dayOfYearField) RangeDurationField() field.DurationField { return f.b.fields.Duration(field.Years) }
func (f *dayOfYearField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *dayOfYearField) MinimumValue() int                       { return 1 }
func (f *dayOfYearField) MaximumValue() int                       { return 366 }
func (f *dayOfYearField) MaximumValueAt(instant int64) int        { return f.b.daysInYear(f.b.year(instant)) }
func (f *dayOfYearField) IsLeap(instant int64) bool               { return f.b.months.isLeapDay(f.b, instant) }

func (f *dayOfYearField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *dayOfYearField) MaximumValuePartial(p field.Partial, values []int) int {
	if j := p.IndexOf(field.Year); j >= 0 {
		return f.b.daysInYear(f.b.rawYear(values[j]))
	}
	return f.MaximumValue()
}

type dayOfWeekField struct {
	field.PreciseUnit
	b *basic
}

func newDayOfWeekField(b *basic) *dayOfWeekField {
	f := &dayOfWeekField{b: b}
	f.PreciseUnit = mustUnit(field.DayOfWeek, daysDuration, f)
	return f
}

func (f *dayOfWeekField) Get(instant int64) (int, error)          { return f.b.dayOfWeek(instant), nil }
func (f *dayOfWeekField) RangeDurationField() field.DurationField { return weeksDuration }
func (f *dayOfWeekField) MinimumValue() int                       { return Monday }
func (f *dayOfWeekField) MaximumValue() int                       { return Sunday }

func (f *dayOfWeekField) ValueText(value int, tag language.Tag) string {
	return textsym.For(tag).Day(value)
}

func (f *dayOfWeekField) ValueShortText(value int, tag language.Tag) string {
	return textsym.For(tag).ShortDay(value)
}

func (f *dayOfWeekField) ParseText(text string, tag language.Tag) (int, error) {
	if v, ok := textsym.For(tag).ParseDay(text); ok {
		return v, nil
	}
	return 0, textError(field.DayOfWeek, text)
}

func (f *dayOfWeekField) MaximumTextLength(tag language.Tag) int {
	return textsym.For(tag).MaxDayLength()
}

func (f *dayOfWeekField) MaximumShortTextLength(tag language.Tag) int {
	return textsym.For(tag).MaxShortDayLength()
}

// week53 is the offset of the start of week 53 within a weekyear.
const week53 = 52 * MillisPerWeek

// weekyearField is the year that owns each week. It differs from year only
// in the days around 1 January.
type weekyearField struct {
	field.Imprecise
	b *basic
}

func newWeekyearField(b *basic) *weekyearField {
	f := &weekyearField{b: b}
	f.Imprecise = field.MakeImprecise(field.Weekyear, b.rules.averageMillisPerYear(), f)
	return f
}

func (f *weekyearField) Get(instant int64) (int, error) { return f.b.weekyear(instant), nil }

func (f *weekyearField) Add(instant int64, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	year, ok := num.Add(int64(f.b.weekyear(instant)), amount)
	if !ok {
		return 0, chronoerrors.NewOverflow("the calculation caused an overflow: %d weekyears", amount)
	}
	if err := f.b.checkYear(field.Weekyear, year); err != nil {
		return 0, err
	}
	return f.Set(instant, int(year))
}

func (f *weekyearField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.Add(instant, int64(amount))
}

// Difference64 treats week 53 of a long weekyear as week 52 of a short one.
func (f *weekyearField) Difference64(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		d, err := f.Difference64(subtrahend, minuend)
		return -d, err
	}
	minuendYear := f.b.weekyear(minuend)
	subtrahendYear := f.b.weekyear(subtrahend)
	minuendRem, err := f.Remainder(minuend)
	if err != nil {
		return 0, err
	}
	subtrahendRem, err := f.Remainder(subtrahend)
	if err != nil {
		return 0, err
	}
	if subtrahendRem >= week53 && f.b.weeksInYear(minuendYear) <= 52 {
		subtrahendRem -= MillisPerWeek
	}
	diff := int64(minuendYear) - int64(subtrahendYear)
	if minuendRem < subtrahendRem {
		diff--
	}
	return diff, nil
}

// Set keeps the week of weekyear and day of week, clamping week 53 when the
// target weekyear has only 52 weeks.
func (f *weekyearField) Set(instant int64, year int) (int64, error) {
	b := f.b
	if err := field.VerifyBounds(field.Weekyear, year, b.rules.minYear(), b.rules.maxYear()); err != nil {
		return 0, err
	}
	thisYear := b.weekyear(instant)
	if thisYear == year {
		return instant, nil
	}
	dow := b.dayOfWeek(instant)
	maxWeeks := min(b.weeksInYear(thisYear), b.weeksInYear(year))
	week := min(b.weekOfWeekyear(instant), maxWeeks)

	work := b.months.setYear(b, instant, year)
	switch got := b.weekyear(work); {
	case got < year:
		work += MillisPerWeek
	case got > year:
		work -= MillisPerWeek
	}
	work += int64(week-b.weekOfWeekyear(work)) * MillisPerWeek
	work += int64(dow-b.dayOfWeek(work)) * MillisPerDay
	return work, nil
}

func (f *weekyearField) RangeDurationField() field.DurationField { return nil }
func (f *weekyearField) LeapDurationField() field.DurationField  { return weeksDuration }
func (f *weekyearField) MinimumValue() int                       { return f.b.rules.minYear() }
func (f *weekyearField) MaximumValue() int                       { return f.b.rules.maxYear() }

func (f *weekyearField) IsLeap(instant int64) bool { return f.LeapAmount(instant) > 0 }

func (f *weekyearField) LeapAmount(instant int64) int {
	return f.b.weeksInYear(f.b.weekyear(instant)) - 52
}

func (f *weekyearField) RoundFloor(instant int64) (int64, error) {
	floor := weekFloor(instant)
	if week := f.b.weekOfWeekyear(floor); week > 1 {
		floor -= int64(week-1) * MillisPerWeek
	}
	return floor, nil
}

// weekFloor rounds down to the preceding Monday.
func weekFloor(instant int64) int64 {
	shifted := instant + 3*MillisPerDay
	return num.FloorDiv(shifted, MillisPerWeek)*MillisPerWeek - 3*MillisPerDay
}

// weekOfWeekyearField rounds on Mondays; the epoch fell on a Thursday.
type weekOfWeekyearField struct {
	field.PreciseUnit
	b *basic
}

func newWeekOfWeekyearField(b *basic) *weekOfWeekyearField {
	f := &weekOfWeekyearField{b: b}
	f.PreciseUnit = mustUnit(field.WeekOfWeekyear, weeksDuration, f)
	return f
}

func (f *weekOfWeekyearField) Get(instant int64) (int, error) { return f.b.weekOfWeekyear(instant), nil }

func (f *weekOfWeekyearField) RangeDurationField() field.DurationField {
	return f.b.fields.Duration(field.Weekyears)
}

func (f *weekOfWeekyearField) MinimumValue() int { return 1 }
func (f *weekOfWeekyearField) MaximumValue() int { return 53 }

func (f *weekOfWeekyearField) MaximumValueAt(instant int64) int {
	return f.b.weeksInYear(f.b.weekyear(instant))
}

func (f *weekOfWeekyearField) MaximumValuePartial(p field.Partial, values []int) int {
	if j := p.IndexOf(field.Weekyear); j >= 0 {
		return f.b.weeksInYear(f.b.rawYear(values[j]))
	}
	return f.MaximumValue()
}

func (f *weekOfWeekyearField) RoundFloor(instant int64) (int64, error) {
	return weekFloor(instant), nil
}

func (f *weekOfWeekyearField) RoundCeiling(instant int64) (int64, error) {
	floor := weekFloor(instant)
	if floor == instant {
		return floor, nil
	}
	return floor + MillisPerWeek, nil
}

func (f *weekOfWeekyearField) Remainder(instant int64) (int64, error) {
	return instant - weekFloor(instant), nil
}
