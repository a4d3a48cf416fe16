package chrono

import (
	"strconv"
	"sync/atomic"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/num"
	"github.com/jacoelho/chrono/zone"
)

const (
	yearCacheSize = 1 << 10
	yearCacheMask = yearCacheSize - 1
)

// yearRules are the parts of a calendar that decide where each year starts.
type yearRules interface {
	isLeapYear(year int) bool
	firstDayOfYearMillis(year int) int64
	minYear() int
	maxYear() int
	averageMillisPerYear() int64
	averageMillisPerMonth() int64
	// approxMillisAtEpochDividedByTwo seeds the year estimate.
	approxMillisAtEpochDividedByTwo() int64
}

// monthLayout is how a calendar divides its years into months.
type monthLayout interface {
	maxMonth() int
	// leapMonth is the month holding the leap day.
	leapMonth() int
	monthOfYear(b *basic, instant int64, year int) int
	daysInYearMonth(b *basic, year, month int) int
	daysInMonthMax(month int) int
	daysInAnyMonthMax() int
	totalMillisByYearMonth(b *basic, year, month int) int64
	yearDifference(b *basic, minuend, subtrahend int64) int64
	setYear(b *basic, instant int64, year int) int64
	isLeapDay(b *basic, instant int64) bool
}

type yearInfo struct {
	year     int
	firstDay int64
}

// basic is the arithmetic engine shared by the solar calendars. Every
// calendar component is derived from the millisecond of the first day of
// each year, which is memoized in a fixed size cache.
type basic struct {
	kind    Kind
	name    string
	rules   yearRules
	months  monthLayout
	minDays int
	// skipYearZero maps the historical years 1, -1, -2 onto the
	// astronomical years 1, 0, -1 when dates are built from parts.
	skipYearZero bool
	// bounded engines are only published behind a lower limit, which owns
	// their cache entries.
	bounded bool

	cache  [yearCacheSize]atomic.Pointer[yearInfo]
	fields Fields
}

type basicOption func(b *basic, fs *Fields) error

func newBasic(kind Kind, name string, rules yearRules, months monthLayout, minDays int, opts ...basicOption) (*basic, error) {
	if minDays < 1 || minDays > 7 {
		return nil, chronoerrors.NewInvalidArgument("invalid min days in first week: %d", minDays)
	}
	b := &basic{kind: kind, name: name, rules: rules, months: months, minDays: minDays}
	var fs Fields
	if err := b.assemble(&fs); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(b, &fs); err != nil {
			return nil, err
		}
	}
	b.fields = fs
	return b, nil
}

// assemble builds the standard field set. Centuries and years of century
// are one based, as in 1901-2000 being the 20th century.
func (b *basic) assemble(fs *Fields) error {
	assembleTime(fs)

	year := newYearField(b)
	fs.set(year)
	fs.setDuration(year.DurationField())
	yearOfEra, err := newYearOfEraField(b, year)
	if err != nil {
		return err
	}
	fs.set(yearOfEra)

	shifted, err := field.NewOffset(yearOfEra, 0, 99)
	if err != nil {
		return err
	}
	century, err := field.NewDivided(shifted, nil, field.CenturyOfEra, 100)
	if err != nil {
		return err
	}
	fs.set(century)
	fs.setDuration(century.DurationField())
	rem, err := field.NewRemainderOf(century, nil, field.YearOfCentury)
	if err != nil {
		return err
	}
	yearOfCentury, err := field.NewOffset(rem, field.YearOfCentury, 1)
	if err != nil {
		return err
	}
	fs.set(yearOfCentury)

	fs.set(newEraField(b))
	fs.set(newDayOfWeekField(b))
	fs.set(newDayOfMonthField(b))
	fs.set(newDayOfYearField(b))
	month := newMonthField(b, b.months.maxMonth() == 12)
	fs.set(month)
	fs.setDuration(month.DurationField())

	weekyear := newWeekyearField(b)
	fs.set(weekyear)
	fs.setDuration(weekyear.DurationField())
	fs.set(newWeekOfWeekyearField(b))
	wrem, err := field.NewRemainder(weekyear, century.DurationField(), field.WeekyearOfCentury, 100)
	if err != nil {
		return err
	}
	weekyearOfCentury, err := field.NewOffset(wrem, field.WeekyearOfCentury, 1)
	if err != nil {
		return err
	}
	fs.set(weekyearOfCentury)
	return nil
}

// skipYearZeroFields removes year zero from the year and, when weekyear is
// set, weekyear fields.
func skipYearZeroFields(weekyear bool) basicOption {
	return func(b *basic, fs *Fields) error {
		b.skipYearZero = true
		year, err := field.NewSkip(fs.Field(field.Year), 0)
		if err != nil {
			return err
		}
		fs.set(year)
		if weekyear {
			wy, err := field.NewSkip(fs.Field(field.Weekyear), 0)
			if err != nil {
				return err
			}
			fs.set(wy)
		}
		return nil
	}
}

func (b *basic) Zone() zone.Zone         { return zone.UTC }
func (b *basic) WithUTC() Chronology     { return b }
func (b *basic) Fields() Fields          { return b.fields }
func (b *basic) String() string          { return b.describe(zone.UTC.ID()) }
func (b *basic) MinDaysInFirstWeek() int { return b.minDays }

func (b *basic) WithZone(z zone.Zone) Chronology { return zonedInstance(b, z) }

func (b *basic) Field(t field.DateTimeFieldType) field.DateTimeField { return b.fields.Field(t) }

func (b *basic) Duration(t field.DurationFieldType) field.DurationField { return b.fields.Duration(t) }

func (b *basic) describe(zoneID string) string {
	s := b.name + "[" + zoneID
	if b.minDays != defaultMinDaysInFirstWeek {
		s += ",mdfw=" + strconv.Itoa(b.minDays)
	}
	return s + "]"
}

func (b *basic) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	if err := field.VerifyBounds(field.MillisOfDay, millisOfDay, 0, int(MillisPerDay)-1); err != nil {
		return 0, err
	}
	return b.dateMillis(year, month, day, millisOfDay)
}

func (b *basic) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	checks := []struct {
		t     field.DateTimeFieldType
		value int
		upper int
	}{
		{field.HourOfDay, hour, 23},
		{field.MinuteOfHour, minute, 59},
		{field.SecondOfMinute, second, 59},
		{field.MillisOfSecond, millis, 999},
	}
	for _, c := range checks {
		if err := field.VerifyBounds(c.t, c.value, 0, c.upper); err != nil {
			return 0, err
		}
	}
	millisOfDay := hour*int(MillisPerHour) + minute*int(MillisPerMinute) + second*int(MillisPerSecond) + millis
	return b.dateMillis(year, month, day, millisOfDay)
}

func (b *basic) dateMillis(year, month, day, millisOfDay int) (int64, error) {
	midnight, err := b.midnightMillis(year, month, day)
	if err != nil {
		return 0, err
	}
	instant, ok := num.Add(midnight, int64(millisOfDay))
	if !ok {
		return 0, chronoerrors.NewDateOutOfRange("date %d-%02d-%02d is outside the supported range", year, month, day)
	}
	return instant, nil
}

func (b *basic) midnightMillis(year, month, day int) (int64, error) {
	raw := year
	if b.skipYearZero {
		if year == 0 {
			return 0, chronoerrors.NewFieldValuef(field.Year.String(), "0", "value 0 for year is skipped")
		}
		if year < 0 {
			raw++
		}
	}
	if err := field.VerifyBounds(field.Year, raw, b.rules.minYear(), b.rules.maxYear()); err != nil {
		return 0, err
	}
	if err := field.VerifyBounds(field.MonthOfYear, month, 1, b.months.maxMonth()); err != nil {
		return 0, err
	}
	if err := field.VerifyBounds(field.DayOfMonth, day, 1, b.months.daysInYearMonth(b, raw, month)); err != nil {
		return 0, err
	}
	return b.yearMonthDayMillis(raw, month, day), nil
}

// yearMillis returns the first millisecond of year.
func (b *basic) yearMillis(year int) int64 {
	slot := &b.cache[year&yearCacheMask]
	if info := slot.Load(); info != nil && info.year == year {
		return info.firstDay
	}
	info := &yearInfo{year: year, firstDay: b.rules.firstDayOfYearMillis(year)}
	slot.Store(info)
	return info.firstDay
}

// year estimates from the average year length and corrects the estimate by
// at most one year.
func (b *basic) year(instant int64) int {
	unit := b.rules.averageMillisPerYear() / 2
	i2 := instant>>1 + b.rules.approxMillisAtEpochDividedByTwo()
	if i2 < 0 {
		i2 = i2 - unit + 1
	}
	year := int(i2 / unit)
	start := b.yearMillis(year)
	switch diff := instant - start; {
	case diff < 0:
		year--
	case diff >= 365*MillisPerDay:
		length := 365 * MillisPerDay
		if b.rules.isLeapYear(year) {
			length += MillisPerDay
		}
		if next, ok := num.Add(start, length); ok && next <= instant {
			year++
		}
	}
	return year
}

func (b *basic) monthOfYear(instant int64) int {
	return b.months.monthOfYear(b, instant, b.year(instant))
}

func (b *basic) dayOfYear(instant int64, year int) int {
	return int((instant-b.yearMillis(year))/MillisPerDay) + 1
}

func (b *basic) dayOfMonth(instant int64) int {
	year := b.year(instant)
	return b.dayOfMonthIn(instant, year, b.months.monthOfYear(b, instant, year))
}

func (b *basic) dayOfMonthIn(instant int64, year, month int) int {
	start := b.yearMonthMillis(year, month)
	return int((instant-start)/MillisPerDay) + 1
}

// dayOfWeek counts from 1970-01-01, a Thursday.
func (b *basic) dayOfWeek(instant int64) int {
	var days int64
	if instant >= 0 {
		days = instant / MillisPerDay
	} else {
		days = (instant - (MillisPerDay - 1)) / MillisPerDay
		if days < -3 {
			return 7 + int((days+4)%7)
		}
	}
	return 1 + int((days+3)%7)
}

func (b *basic) millisOfDay(instant int64) int {
	if instant >= 0 {
		return int(instant % MillisPerDay)
	}
	return int(MillisPerDay-1) + int((instant+1)%MillisPerDay)
}

func (b *basic) yearMonthMillis(year, month int) int64 {
	return b.yearMillis(year) + b.months.totalMillisByYearMonth(b, year, month)
}

func (b *basic) yearMonthDayMillis(year, month, day int) int64 {
	return b.yearMonthMillis(year, month) + int64(day-1)*MillisPerDay
}

func (b *basic) daysInYear(year int) int {
	if b.rules.isLeapYear(year) {
		return 366
	}
	return 365
}

func (b *basic) daysInMonthMaxAt(instant int64) int {
	year := b.year(instant)
	return b.months.daysInYearMonth(b, year, b.months.monthOfYear(b, instant, year))
}

// firstWeekOfYearMillis returns the Monday starting week one of year. The
// week belongs to the year holding at least minDays of its days.
func (b *basic) firstWeekOfYearMillis(year int) int64 {
	jan1 := b.yearMillis(year)
	dow := b.dayOfWeek(jan1)
	if dow > 8-b.minDays {
		return jan1 + int64(8-dow)*MillisPerDay
	}
	return jan1 - int64(dow-1)*MillisPerDay
}

func (b *basic) weeksInYear(year int) int {
	return int((b.firstWeekOfYearMillis(year+1) - b.firstWeekOfYearMillis(year)) / MillisPerWeek)
}

func (b *basic) weekyear(instant int64) int {
	year := b.year(instant)
	switch week := b.weekOfWeekyearIn(instant, year); {
	case week == 1:
		return b.year(instant + MillisPerWeek)
	case week > 51:
		return b.year(instant - 2*MillisPerWeek)
	}
	return year
}

func (b *basic) weekOfWeekyear(instant int64) int {
	return b.weekOfWeekyearIn(instant, b.year(instant))
}

func (b *basic) weekOfWeekyearIn(instant int64, year int) int {
	first := b.firstWeekOfYearMillis(year)
	if instant < first {
		return b.weeksInYear(year - 1)
	}
	if instant >= b.firstWeekOfYearMillis(year+1) {
		return 1
	}
	return int((instant-first)/MillisPerWeek) + 1
}
