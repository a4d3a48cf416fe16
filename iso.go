package chrono

import (
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

// iso is the Gregorian calendar with ISO-8601 week numbering. Century of
// era is the year divided by 100, so 1999 is in century 19 and 2000 in 20.
type iso struct {
	assembled
}

// ISO returns the ISO-8601 calendar in z, the default calendar system.
func ISO(z zone.Zone) Chronology {
	return ISOUTC().WithZone(z)
}

// ISOUTC returns the ISO-8601 calendar in UTC.
func ISOUTC() Chronology {
	c, err := cached(cacheKey{kind: KindISO, minDays: defaultMinDaysInFirstWeek}, func() (Chronology, error) {
		return newISO()
	})
	if err != nil {
		panic(err)
	}
	return c
}

func newISO() (*iso, error) {
	base, err := gregorianUTC(defaultMinDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	bf := base.Fields()
	var fs Fields
	yearOfEra, err := newISOYearOfEra(bf.Field(field.Year))
	if err != nil {
		return nil, err
	}
	century, err := field.NewDivided(yearOfEra, nil, field.CenturyOfEra, 100)
	if err != nil {
		return nil, err
	}
	fs.set(century)
	fs.setDuration(century.DurationField())
	yearOfCentury, err := field.NewRemainderOf(century, nil, field.YearOfCentury)
	if err != nil {
		return nil, err
	}
	fs.set(yearOfCentury)
	weekyearOfCentury, err := field.NewRemainder(bf.Field(field.Weekyear), century.DurationField(), field.WeekyearOfCentury, 100)
	if err != nil {
		return nil, err
	}
	fs.set(weekyearOfCentury)

	c := &iso{}
	c.assembled.init(base, fs)
	return c, nil
}

func (c *iso) Zone() zone.Zone                 { return zone.UTC }
func (c *iso) WithUTC() Chronology             { return c }
func (c *iso) WithZone(z zone.Zone) Chronology { return zonedInstance(c, z) }
func (c *iso) String() string                  { return c.describe(zone.UTC.ID()) }
func (c *iso) describe(zoneID string) string   { return "ISOChronology[" + zoneID + "]" }

func (c *iso) instanceKey() (cacheKey, bool) {
	return cacheKey{kind: KindISO, minDays: defaultMinDaysInFirstWeek}, true
}

// isoYearOfEra is the magnitude of the proleptic year, so that centuries of
// era are symmetric around year 0. It only backs the century fields; the
// yearOfEra field itself stays era based.
type isoYearOfEra struct {
	field.Decorated
	year field.DateTimeField
}

func newISOYearOfEra(year field.DateTimeField) (*isoYearOfEra, error) {
	f := &isoYearOfEra{year: year}
	d, err := field.MakeDecorated(field.YearOfEra, year, f)
	if err != nil {
		return nil, err
	}
	f.Decorated = d
	return f, nil
}

func (f *isoYearOfEra) MinimumValue() int { return 0 }

func (f *isoYearOfEra) Get(instant int64) (int, error) {
	year, err := f.year.Get(instant)
	if err != nil {
		return 0, err
	}
	if year < 0 {
		return -year, nil
	}
	return year, nil
}

func (f *isoYearOfEra) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyBounds(field.YearOfEra, value, 0, f.MaximumValue()); err != nil {
		return 0, err
	}
	year, err := f.year.Get(instant)
	if err != nil {
		return 0, err
	}
	if year < 0 {
		value = -value
	}
	return f.year.Set(instant, value)
}

func (f *isoYearOfEra) Add(instant int64, amount int64) (int64, error) {
	return f.year.Add(instant, amount)
}

func (f *isoYearOfEra) AddWrapField(instant int64, amount int) (int64, error) {
	return f.year.AddWrapField(instant, amount)
}

func (f *isoYearOfEra) Difference64(minuend, subtrahend int64) (int64, error) {
	return f.year.Difference64(minuend, subtrahend)
}

func (f *isoYearOfEra) RoundCeiling(instant int64) (int64, error) {
	return f.year.RoundCeiling(instant)
}

func (f *isoYearOfEra) Remainder(instant int64) (int64, error) { return f.year.Remainder(instant) }
