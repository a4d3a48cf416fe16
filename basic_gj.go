package chrono

var (
	gjMinDaysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	gjMaxDaysPerMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// millis before the first day of each month, in common and leap years
	gjMinTotalMillis, gjMaxTotalMillis = func() (lo, hi [12]int64) {
		for i := 1; i < 12; i++ {
			lo[i] = lo[i-1] + int64(gjMinDaysPerMonth[i-1])*MillisPerDay
			hi[i] = hi[i-1] + int64(gjMaxDaysPerMonth[i-1])*MillisPerDay
		}
		return lo, hi
	}()
)

// february29 is the offset of 29 February within a leap year.
const february29 = (31 + 29 - 1) * MillisPerDay

// gjMonths is the twelve month layout of the Gregorian and Julian calendars.
type gjMonths struct{}

func (gjMonths) maxMonth() int                { return 12 }
func (gjMonths) leapMonth() int               { return February }
func (gjMonths) daysInAnyMonthMax() int       { return 31 }
func (gjMonths) daysInMonthMax(month int) int { return gjMaxDaysPerMonth[month-1] }

func (gjMonths) monthOfYear(b *basic, instant int64, year int) int {
	offset := instant - b.yearMillis(year)
	totals := &gjMinTotalMillis
	if b.rules.isLeapYear(year) {
		totals = &gjMaxTotalMillis
	}
	month := 1
	for month < 12 && totals[month] <= offset {
		month++
	}
	return month
}

func (gjMonths) daysInYearMonth(b *basic, year, month int) int {
	if b.rules.isLeapYear(year) {
		return gjMaxDaysPerMonth[month-1]
	}
	return gjMinDaysPerMonth[month-1]
}

func (gjMonths) totalMillisByYearMonth(b *basic, year, month int) int64 {
	if b.rules.isLeapYear(year) {
		return gjMaxTotalMillis[month-1]
	}
	return gjMinTotalMillis[month-1]
}

// yearDifference balances a leap day on either side so that 29 February to
// 28 February of the next year is a whole year.
func (gjMonths) yearDifference(b *basic, minuend, subtrahend int64) int64 {
	minuendYear := b.year(minuend)
	subtrahendYear := b.year(subtrahend)
	minuendRem := minuend - b.yearMillis(minuendYear)
	subtrahendRem := subtrahend - b.yearMillis(subtrahendYear)
	if subtrahendRem >= february29 {
		if b.rules.isLeapYear(subtrahendYear) {
			if !b.rules.isLeapYear(minuendYear) {
				subtrahendRem -= MillisPerDay
			}
		} else if minuendRem >= february29 && b.rules.isLeapYear(minuendYear) {
			minuendRem -= MillisPerDay
		}
	}
	diff := int64(minuendYear) - int64(subtrahendYear)
	if minuendRem < subtrahendRem {
		diff--
	}
	return diff
}

// setYear keeps the month and day, moving 29 February to 28 February when
// the target year is not leap.
func (gjMonths) setYear(b *basic, instant int64, year int) int64 {
	thisYear := b.year(instant)
	dayOfYear := b.dayOfYear(instant, thisYear)
	millisOfDay := b.millisOfDay(instant)
	if dayOfYear > 31+28 {
		if b.rules.isLeapYear(thisYear) {
			if !b.rules.isLeapYear(year) {
				dayOfYear--
			}
		} else if b.rules.isLeapYear(year) {
			dayOfYear++
		}
	}
	return b.yearMonthDayMillis(year, 1, dayOfYear) + int64(millisOfDay)
}

func (gjMonths) isLeapDay(b *basic, instant int64) bool {
	year := b.year(instant)
	if !b.rules.isLeapYear(year) {
		return false
	}
	return b.months.monthOfYear(b, instant, year) == February && b.dayOfMonthIn(instant, year, February) == 29
}
