package chrono

import (
	"github.com/jacoelho/chrono/zone"
)

const (
	gregorianMinYear = -292275054
	gregorianMaxYear = 292278993

	// 365.2425 days
	gregorianYearMillis  = 31556952000
	gregorianMonthMillis = gregorianYearMillis / 12

	days0000To1970 = 719527
)

// gregorianRules is the proleptic Gregorian leap rule: every fourth year,
// except centuries not divisible by 400.
type gregorianRules struct{}

func (gregorianRules) minYear() int                 { return gregorianMinYear }
func (gregorianRules) maxYear() int                 { return gregorianMaxYear }
func (gregorianRules) averageMillisPerYear() int64  { return gregorianYearMillis }
func (gregorianRules) averageMillisPerMonth() int64 { return gregorianMonthMillis }

func (gregorianRules) approxMillisAtEpochDividedByTwo() int64 {
	return 1970 * gregorianYearMillis / 2
}

func (gregorianRules) isLeapYear(year int) bool {
	return year&3 == 0 && (year%100 != 0 || year%400 == 0)
}

func (r gregorianRules) firstDayOfYearMillis(year int) int64 {
	centuries := year / 100
	var leapYears int
	if year < 0 {
		// shifting rounds toward negative infinity where division would not
		leapYears = (year+3)>>2 - centuries + (centuries+3)>>2 - 1
	} else {
		leapYears = year>>2 - centuries + centuries>>2
		if r.isLeapYear(year) {
			leapYears--
		}
	}
	return (int64(year)*365 + int64(leapYears-days0000To1970)) * MillisPerDay
}

// Gregorian returns the proleptic Gregorian calendar in z. Weeks are
// numbered from the first week holding at least minDaysInFirstWeek days of
// the new year; 4 matches ISO-8601.
func Gregorian(z zone.Zone, minDaysInFirstWeek int) (Chronology, error) {
	utc, err := gregorianUTC(minDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	return utc.WithZone(z), nil
}

// GregorianUTC returns the proleptic Gregorian calendar in UTC with ISO week
// numbering.
func GregorianUTC() Chronology {
	c, _ := gregorianUTC(defaultMinDaysInFirstWeek)
	return c
}

func gregorianUTC(minDays int) (Chronology, error) {
	return cached(cacheKey{kind: KindGregorian, minDays: minDays}, func() (Chronology, error) {
		return newBasic(KindGregorian, "GregorianChronology", gregorianRules{}, gjMonths{}, minDays)
	})
}
