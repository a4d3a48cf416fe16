package chrono

import (
	"github.com/jacoelho/chrono/zone"
)

// fixedRules are the leap rules of the Coptic and Ethiopic calendars: every
// fourth year, the one before a year divisible by 4, adds a sixth
// epagomenal day.
type fixedRules struct {
	// epochYear is the leap cycle anchor nearest 1970-01-01, which fell on
	// the 113th day of epochYear-1.
	epochYear int
	lower     int
	upper     int
}

var (
	copticRules   = fixedRules{epochYear: 1687, lower: -292269337, upper: 292272708}
	ethiopicRules = fixedRules{epochYear: 1963, lower: -292269337, upper: 292272984}
)

func (r fixedRules) minYear() int                 { return r.lower }
func (r fixedRules) maxYear() int                 { return r.upper }
func (r fixedRules) averageMillisPerYear() int64  { return fixedYearMillis }
func (r fixedRules) averageMillisPerMonth() int64 { return fixedMonthMillis }
func (r fixedRules) isLeapYear(year int) bool     { return year&3 == 3 }

func (r fixedRules) approxMillisAtEpochDividedByTwo() int64 {
	return (int64(r.epochYear-1)*fixedYearMillis + 112*MillisPerDay) / 2
}

func (r fixedRules) firstDayOfYearMillis(year int) int64 {
	relative := year - r.epochYear
	var leapYears int
	if relative <= 0 {
		leapYears = (relative + 3) >> 2
	} else {
		leapYears = relative >> 2
		if !r.isLeapYear(year) {
			leapYears++
		}
	}
	return (int64(relative)*365+int64(leapYears))*MillisPerDay + (365-112)*MillisPerDay
}

// Coptic returns the Coptic calendar in z: twelve 30 day months and five or
// six epagomenal days, counted in the single era AM from 284 CE. Instants
// before year 1 are rejected.
func Coptic(z zone.Zone, minDaysInFirstWeek int) (Chronology, error) {
	utc, err := copticUTC(minDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	return utc.WithZone(z), nil
}

// CopticUTC returns the Coptic calendar in UTC.
func CopticUTC() Chronology {
	c, _ := copticUTC(defaultMinDaysInFirstWeek)
	return c
}

func copticUTC(minDays int) (Chronology, error) {
	return cached(cacheKey{kind: KindCoptic, minDays: minDays}, func() (Chronology, error) {
		return newFixedCalendar(KindCoptic, "CopticChronology", copticRules, "AM", minDays)
	})
}

// Ethiopic returns the Ethiopic calendar in z, which shares the Coptic
// layout but counts the single era EE from 8 CE.
func Ethiopic(z zone.Zone, minDaysInFirstWeek int) (Chronology, error) {
	utc, err := ethiopicUTC(minDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	return utc.WithZone(z), nil
}

// EthiopicUTC returns the Ethiopic calendar in UTC.
func EthiopicUTC() Chronology {
	c, _ := ethiopicUTC(defaultMinDaysInFirstWeek)
	return c
}

func ethiopicUTC(minDays int) (Chronology, error) {
	return cached(cacheKey{kind: KindEthiopic, minDays: minDays}, func() (Chronology, error) {
		return newFixedCalendar(KindEthiopic, "EthiopicChronology", ethiopicRules, "EE", minDays)
	})
}

// newFixedCalendar builds the thirteen month engine and bounds it below by
// the start of year 1.
func newFixedCalendar(kind Kind, name string, rules fixedRules, era string, minDays int) (Chronology, error) {
	singleEra := func(_ *basic, fs *Fields) error {
		fs.set(newSingleEraField(era))
		return nil
	}
	b, err := newBasic(kind, name, rules, fixedMonths{}, minDays, skipYearZeroFields(true), singleEra)
	if err != nil {
		return nil, err
	}
	b.bounded = true
	lower, err := b.DateMillis(1, 1, 1, 0)
	if err != nil {
		return nil, err
	}
	l, err := newLimit(b, &lower, nil, b)
	if err != nil {
		return nil, err
	}
	l.key = &cacheKey{kind: kind, minDays: minDays}
	return l, nil
}
