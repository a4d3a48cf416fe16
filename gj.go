package chrono

import (
	"strconv"
	"time"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

// gj is the historical calendar of most of Europe: Julian before the
// cutover instant and Gregorian from it on. The days skipped at the cutover
// do not exist, so with the default cutover 1582-10-04 is followed by
// 1582-10-15.
type gj struct {
	assembled
	julian    Chronology
	gregorian Chronology
	cutover   int64
	// gap is the length of the days skipped at the cutover
	gap     int64
	minDays int
}

// GJ returns the Julian-Gregorian calendar in z, switching calendars at the
// cutover instant. The cutover must fall on or after Gregorian year 1.
func GJ(z zone.Zone, cutover int64, minDaysInFirstWeek int) (Chronology, error) {
	utc, err := gjUTC(cutover, minDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	return utc.WithZone(z), nil
}

// GJUTC returns the Julian-Gregorian calendar in UTC with the cutover of
// 1582-10-15.
func GJUTC() Chronology {
	c, err := gjUTC(DefaultCutover, defaultMinDaysInFirstWeek)
	if err != nil {
		panic(err)
	}
	return c
}

func gjUTC(cutover int64, minDays int) (Chronology, error) {
	return cached(cacheKey{kind: KindGJ, minDays: minDays, cutover: cutover}, func() (Chronology, error) {
		return newGJ(cutover, minDays)
	})
}

func newGJ(cutover int64, minDays int) (*gj, error) {
	julian, err := julianUTC(minDays)
	if err != nil {
		return nil, err
	}
	gregorian, err := gregorianUTC(minDays)
	if err != nil {
		return nil, err
	}
	if year, _ := gregorian.Field(field.Year).Get(cutover); year <= 0 {
		return nil, chronoerrors.NewInvalidArgument("cutover too early, it must be on or after 0001-01-01")
	}
	g := &gj{julian: julian, gregorian: gregorian, cutover: cutover, minDays: minDays}
	converted, err := g.julianToGregorianByYear(cutover)
	if err != nil {
		return nil, err
	}
	g.gap = cutover - converted

	fs, err := g.assemble()
	if err != nil {
		return nil, err
	}
	g.assembled.init(nil, fs)
	return g, nil
}

var timeOfDayTypes = []field.DateTimeFieldType{
	field.MillisOfSecond, field.MillisOfDay, field.SecondOfMinute, field.SecondOfDay,
	field.MinuteOfHour, field.MinuteOfDay, field.HourOfDay, field.HourOfHalfday,
	field.ClockhourOfDay, field.ClockhourOfHalfday, field.HalfdayOfDay,
}

// assemble starts from the Gregorian fields and switches to the Julian ones
// before the cutover.
func (g *gj) assemble() (Fields, error) {
	fs := g.gregorian.Fields()
	j, gr := g.julian, g.gregorian

	cutover := func(t field.DateTimeFieldType, at int64, rangeField field.DurationField, byWeekyear bool) {
		fs.set(newCutoverField(g, j.Field(t), fs.Field(t), rangeField, at, byWeekyear))
	}
	imprecise := func(t field.DateTimeFieldType, duration, rangeField field.DurationField, byWeekyear bool) field.DateTimeField {
		f := newImpreciseCutoverField(g, j.Field(t), fs.Field(t), duration, rangeField, byWeekyear)
		fs.set(f)
		return f
	}

	// a cutover at midnight leaves the time of day untouched
	if millis, _ := gr.Field(field.MillisOfDay).Get(g.cutover); millis != 0 {
		for _, t := range timeOfDayTypes {
			cutover(t, g.cutover, nil, false)
		}
	}
	cutover(field.Era, g.cutover, nil, false)

	// the cutover year has fewer days and weeks, so these switch at the end
	// of it to keep the sequence unbroken
	yearEnd, err := gr.Field(field.Year).RoundCeiling(g.cutover)
	if err != nil {
		return Fields{}, err
	}
	cutover(field.DayOfYear, yearEnd, nil, false)
	weekyearEnd, err := gr.Field(field.Weekyear).RoundCeiling(g.cutover)
	if err != nil {
		return Fields{}, err
	}
	cutover(field.WeekOfWeekyear, weekyearEnd, nil, true)

	years := imprecise(field.Year, nil, nil, false).DurationField()
	fs.setDuration(years)
	imprecise(field.YearOfEra, years, nil, false)
	centuries := imprecise(field.CenturyOfEra, nil, nil, false).DurationField()
	fs.setDuration(centuries)
	imprecise(field.YearOfCentury, years, centuries, false)
	months := imprecise(field.MonthOfYear, nil, years, false).DurationField()
	fs.setDuration(months)
	weekyears := imprecise(field.Weekyear, nil, nil, true).DurationField()
	fs.setDuration(weekyears)
	imprecise(field.WeekyearOfCentury, weekyears, centuries, false)

	cutover(field.DayOfMonth, g.cutover, months, false)
	return fs, nil
}

func (g *gj) Zone() zone.Zone                 { return zone.UTC }
func (g *gj) WithUTC() Chronology             { return g }
func (g *gj) WithZone(z zone.Zone) Chronology { return zonedInstance(g, z) }
func (g *gj) String() string                  { return g.describe(zone.UTC.ID()) }
func (g *gj) MinDaysInFirstWeek() int         { return g.minDays }

// Cutover returns the first instant of the Gregorian calendar.
func (g *gj) Cutover() int64 { return g.cutover }

func (g *gj) instanceKey() (cacheKey, bool) {
	return cacheKey{kind: KindGJ, minDays: g.minDays, cutover: g.cutover}, true
}

func (g *gj) describe(zoneID string) string {
	s := "GJChronology[" + zoneID
	if g.cutover != DefaultCutover {
		t := time.UnixMilli(g.cutover).UTC()
		if millis, _ := g.gregorian.Field(field.MillisOfDay).Get(g.cutover); millis == 0 {
			s += ",cutover=" + t.Format(time.DateOnly)
		} else {
			s += ",cutover=" + t.Format("2006-01-02T15:04:05.000Z07:00")
		}
	}
	if g.minDays != defaultMinDaysInFirstWeek {
		s += ",mdfw=" + strconv.Itoa(g.minDays)
	}
	return s + "]"
}

func (g *gj) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	return g.resolve(func(c Chronology, d int) (int64, error) {
		return c.DateMillis(year, month, d, millisOfDay)
	}, month, day)
}

func (g *gj) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	return g.resolve(func(c Chronology, d int) (int64, error) {
		return c.DateTimeMillis(year, month, d, hour, minute, second, millis)
	}, month, day)
}

// resolve tries the Gregorian calendar first and falls back to the Julian
// one before the cutover. 29 February of a year only leap in the Julian
// calendar is retried as the 28th to find which side it falls on.
func (g *gj) resolve(build func(c Chronology, day int) (int64, error), month, day int) (int64, error) {
	instant, err := build(g.gregorian, day)
	if err != nil {
		if month != February || day != 29 {
			return 0, err
		}
		var retryErr error
		if instant, retryErr = build(g.gregorian, 28); retryErr != nil || instant >= g.cutover {
			return 0, err
		}
	}
	if instant >= g.cutover {
		return instant, nil
	}
	if instant, err = build(g.julian, day); err != nil {
		return 0, err
	}
	if instant >= g.cutover {
		return 0, chronoerrors.NewFieldValuef(field.DayOfMonth.String(), strconv.Itoa(day), "specified date does not exist")
	}
	return instant, nil
}

func (g *gj) julianToGregorianByYear(instant int64) (int64, error) {
	return convertByYear(instant, g.julian, g.gregorian)
}

func (g *gj) gregorianToJulianByYear(instant int64) (int64, error) {
	return convertByYear(instant, g.gregorian, g.julian)
}

func (g *gj) julianToGregorianByWeekyear(instant int64) (int64, error) {
	return convertByWeekyear(instant, g.julian, g.gregorian)
}

func (g *gj) gregorianToJulianByWeekyear(instant int64) (int64, error) {
	return convertByWeekyear(instant, g.gregorian, g.julian)
}

// convertByYear moves instant to the same date and time in another calendar.
func convertByYear(instant int64, from, to Chronology) (int64, error) {
	types := []field.DateTimeFieldType{field.Year, field.MonthOfYear, field.DayOfMonth, field.MillisOfDay}
	values := make([]int, len(types))
	for i, t := range types {
		v, err := from.Field(t).Get(instant)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return to.DateMillis(values[0], values[1], values[2], values[3])
}

// convertByWeekyear moves instant to the same week date and time in another
// calendar.
func convertByWeekyear(instant int64, from, to Chronology) (int64, error) {
	types := []field.DateTimeFieldType{field.Weekyear, field.WeekOfWeekyear, field.DayOfWeek, field.MillisOfDay}
	var out int64
	for _, t := range types {
		v, err := from.Field(t).Get(instant)
		if err != nil {
			return 0, err
		}
		if out, err = to.Field(t).Set(out, v); err != nil {
			return 0, err
		}
	}
	return out, nil
}
