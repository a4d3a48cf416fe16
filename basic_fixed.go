package chrono

const (
	fixedMonthDays   = 30
	fixedMonthMillis = fixedMonthDays * MillisPerDay
	// fixedYearMillis is the mean of three 365 day years and one 366 day year.
	fixedYearMillis = 365*MillisPerDay + MillisPerDay/4
)

// fixedMonths is the layout of twelve 30 day months followed by a short
// thirteenth month of five days, six in leap years.
type fixedMonths struct{}

func (fixedMonths) maxMonth() int          { return 13 }
func (fixedMonths) leapMonth() int         { return 13 }
func (fixedMonths) daysInAnyMonthMax() int { return fixedMonthDays }

func (fixedMonths) daysInMonthMax(month int) int {
	if month != 13 {
		return fixedMonthDays
	}
	return 6
}

func (fixedMonths) monthOfYear(b *basic, instant int64, year int) int {
	return int((instant-b.yearMillis(year))/fixedMonthMillis) + 1
}

func (fixedMonths) daysInYearMonth(b *basic, year, month int) int {
	switch {
	case month != 13:
		return fixedMonthDays
	case b.rules.isLeapYear(year):
		return 6
	}
	return 5
}

func (fixedMonths) totalMillisByYearMonth(_ *basic, _, month int) int64 {
	return int64(month-1) * fixedMonthMillis
}

// yearDifference needs no leap balancing since the leap day ends the year.
func (fixedMonths) yearDifference(b *basic, minuend, subtrahend int64) int64 {
	minuendYear := b.year(minuend)
	subtrahendYear := b.year(subtrahend)
	diff := int64(minuendYear) - int64(subtrahendYear)
	if minuend-b.yearMillis(minuendYear) < subtrahend-b.yearMillis(subtrahendYear) {
		diff--
	}
	return diff
}

// setYear keeps the day of year, moving the leap day back one day when the
// target year is not leap.
func (fixedMonths) setYear(b *basic, instant int64, year int) int64 {
	thisYear := b.year(instant)
	dayOfYear := b.dayOfYear(instant, thisYear)
	millisOfDay := b.millisOfDay(instant)
	if dayOfYear > 365 && !b.rules.isLeapYear(year) {
		dayOfYear--
	}
	return b.yearMonthDayMillis(year, 1, dayOfYear) + int64(millisOfDay)
}

func (fixedMonths) isLeapDay(b *basic, instant int64) bool {
	year := b.year(instant)
	return b.rules.isLeapYear(year) && b.dayOfYear(instant, year) == 366
}
