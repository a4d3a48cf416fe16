package chrono

import (
	"github.com/jacoelho/chrono/zone"
)

const (
	julianMinYear = -292269054
	julianMaxYear = 292272992

	// 365.25 days
	julianYearMillis  = 31557600000
	julianMonthMillis = julianYearMillis / 12
)

// julianRules is the proleptic Julian leap rule: every fourth year.
type julianRules struct{}

func (julianRules) minYear() int                 { return julianMinYear }
func (julianRules) maxYear() int                 { return julianMaxYear }
func (julianRules) averageMillisPerYear() int64  { return julianYearMillis }
func (julianRules) averageMillisPerMonth() int64 { return julianMonthMillis }
func (julianRules) isLeapYear(year int) bool     { return year&3 == 0 }

func (julianRules) approxMillisAtEpochDividedByTwo() int64 {
	return (1969*julianYearMillis + 352*MillisPerDay) / 2
}

// firstDayOfYearMillis counts from 1968, the leap year nearest the epoch,
// which fell on 1969-12-19 Julian.
func (r julianRules) firstDayOfYearMillis(year int) int64 {
	relative := year - 1968
	var leapYears int
	if relative <= 0 {
		leapYears = (relative + 3) >> 2
	} else {
		leapYears = relative >> 2
		// 1 January comes before the leap day
		if !r.isLeapYear(year) {
			leapYears++
		}
	}
	return (int64(relative)*365+int64(leapYears))*MillisPerDay - (366+352)*MillisPerDay
}

// Julian returns the proleptic Julian calendar in z. It has no year zero:
// the year before 1 is -1.
func Julian(z zone.Zone, minDaysInFirstWeek int) (Chronology, error) {
	utc, err := julianUTC(minDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	return utc.WithZone(z), nil
}

// JulianUTC returns the proleptic Julian calendar in UTC.
func JulianUTC() Chronology {
	c, _ := julianUTC(defaultMinDaysInFirstWeek)
	return c
}

func julianUTC(minDays int) (Chronology, error) {
	return cached(cacheKey{kind: KindJulian, minDays: minDays}, func() (Chronology, error) {
		return newBasic(KindJulian, "JulianChronology", julianRules{}, gjMonths{}, minDays, skipYearZeroFields(true))
	})
}
