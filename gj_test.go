package chrono

import (
	"testing"
	"time"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

func TestGJCutoverDates(t *testing.T) {
	c := GJUTC()
	oct15 := mustMillis(t)(c.DateMillis(1582, 10, 15, 0))
	if oct15 != DefaultCutover {
		t.Fatalf("DateMillis(1582-10-15) = %d, want %d", oct15, DefaultCutover)
	}
	oct4 := mustMillis(t)(c.DateMillis(1582, 10, 4, 0))
	if want := DefaultCutover - MillisPerDay; oct4 != want {
		t.Fatalf("DateMillis(1582-10-04) = %d, want %d", oct4, want)
	}
	for day := 5; day <= 14; day++ {
		_, err := c.DateMillis(1582, 10, day, 0)
		wantErr(t, err, chronoerrors.FieldValueOutOfRange)
	}
	if got := mustMillis(t)(c.Field(field.DayOfMonth).Add(oct4, 1)); got != oct15 {
		t.Fatalf("dayOfMonth.Add(1582-10-04, 1) = %d, want %d", got, oct15)
	}
	if got := mustGet(t, c, field.DayOfMonth, oct4+MillisPerDay); got != 15 {
		t.Fatalf("day after 4 October = %d, want 15", got)
	}
	if got := mustGet(t, c, field.DayOfWeek, oct15); got != Friday {
		t.Fatalf("dayOfWeek(1582-10-15) = %d, want Friday", got)
	}
	if got := mustGet(t, c, field.DayOfWeek, oct4); got != Thursday {
		t.Fatalf("dayOfWeek(1582-10-04) = %d, want Thursday", got)
	}
}

func TestGJUsesJulianRulesBeforeCutover(t *testing.T) {
	c := GJUTC()
	// 1500 is leap only in the Julian calendar
	feb29 := mustMillis(t)(c.DateMillis(1500, 2, 29, 0))
	for ft, want := range map[field.DateTimeFieldType]int{field.Year: 1500, field.MonthOfYear: 2, field.DayOfMonth: 29} {
		if got := mustGet(t, c, ft, feb29); got != want {
			t.Fatalf("%s = %d, want %d", ft, got, want)
		}
	}
	julian := mustMillis(t)(JulianUTC().DateMillis(1500, 2, 29, 0))
	if feb29 != julian {
		t.Fatalf("GJ 1500-02-29 = %d, Julian = %d", feb29, julian)
	}
	// 1700 is leap only in the Julian calendar but comes after the cutover
	_, err := c.DateMillis(1700, 2, 29, 0)
	wantErr(t, err, chronoerrors.FieldValueOutOfRange)
	if got := mustMillis(t)(c.DateMillis(2000, 1, 1, 0)); got != utcMillis(2000, time.January, 1, 0, 0) {
		t.Fatalf("GJ 2000-01-01 = %d, want Gregorian", got)
	}
}

func TestGJArithmeticAcrossCutover(t *testing.T) {
	c := GJUTC()
	sept20 := mustMillis(t)(c.DateMillis(1582, 9, 20, 0))
	oct20 := mustMillis(t)(c.DateMillis(1582, 10, 20, 0))
	if got := mustMillis(t)(c.Field(field.MonthOfYear).Add(sept20, 1)); got != oct20 {
		t.Fatalf("monthOfYear.Add(1582-09-20, 1) = %d, want %d", got, oct20)
	}
	if got := mustMillis(t)(c.Duration(field.Months).Add(sept20, 1)); got != oct20 {
		t.Fatalf("months.Add(1582-09-20, 1) = %d, want %d", got, oct20)
	}

	from := mustMillis(t)(c.DateMillis(1500, 1, 1, 0))
	to := mustMillis(t)(c.DateMillis(2000, 1, 1, 0))
	years, err := c.Field(field.Year).Difference(to, from)
	if err != nil || years != 500 {
		t.Fatalf("year.Difference() = %d, %v, want 500", years, err)
	}
	if got, err := c.Duration(field.Years).Difference(to, from); err != nil || got != 500 {
		t.Fatalf("years.Difference() = %d, %v, want 500", got, err)
	}
	if got := mustMillis(t)(c.Field(field.Year).Add(from, 500)); got != to {
		t.Fatalf("year.Add(1500-01-01, 500) = %d, want %d", got, to)
	}
	days, err := c.Duration(field.Days).Difference(oct20, sept20)
	if err != nil || days != 20 {
		t.Fatalf("days.Difference() = %d, %v, want 20", days, err)
	}
}

func TestGJDayOfYearAroundCutover(t *testing.T) {
	c := GJUTC()
	dayOfYear := c.Field(field.DayOfYear)
	cutoverYear := mustMillis(t)(c.DateMillis(1582, 6, 1, 0))
	if got := dayOfYear.MaximumValueAt(cutoverYear); got != 355 {
		t.Fatalf("max dayOfYear in 1582 = %d, want 355", got)
	}
	if got := dayOfYear.MaximumValueAt(mustMillis(t)(c.DateMillis(1583, 6, 1, 0))); got != 365 {
		t.Fatalf("max dayOfYear in 1583 = %d, want 365", got)
	}
	if got := mustGet(t, c, field.DayOfYear, DefaultCutover); got != 278 {
		t.Fatalf("dayOfYear(1582-10-15) = %d, want 278", got)
	}
	if got := mustGet(t, c, field.DayOfMonth, mustMillis(t)(dayOfYear.Set(cutoverYear, 355))); got != 31 {
		t.Fatalf("day 355 of 1582 is not 31 December")
	}
}

func TestGJPartialCrossesCutover(t *testing.T) {
	c := GJUTC()
	p, err := PartialOf(c, field.Year, field.MonthOfYear, field.DayOfMonth)
	if err != nil {
		t.Fatalf("PartialOf() error = %v", err)
	}
	got, err := c.Field(field.DayOfMonth).AddPartial(p, 2, []int{1582, 10, 4}, 1)
	if err != nil {
		t.Fatalf("AddPartial() error = %v", err)
	}
	if want := []int{1582, 10, 15}; !equalInts(got, want) {
		t.Fatalf("AddPartial() = %v, want %v", got, want)
	}
}

func TestGJConstruction(t *testing.T) {
	_, err := GJ(zone.UTC, utcMillis(0, time.June, 1, 0, 0), 4)
	wantErr(t, err, chronoerrors.InvalidArgument)
	_, err = GJ(zone.UTC, DefaultCutover, 9)
	wantErr(t, err, chronoerrors.InvalidArgument)

	if got, want := GJUTC().String(), "GJChronology[UTC]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	british := utcMillis(1752, time.September, 14, 0, 0)
	c, err := GJ(mustZone(t, "Europe/London"), british, 4)
	if err != nil {
		t.Fatalf("GJ() error = %v", err)
	}
	if got, want := c.String(), "GJChronology[Europe/London,cutover=1752-09-14]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	again, err := GJ(mustZone(t, "Europe/London"), british, 4)
	if err != nil || again != c {
		t.Fatalf("GJ() did not return the cached instance")
	}
	utc := c.WithUTC()
	sept2 := mustMillis(t)(utc.DateMillis(1752, 9, 2, 0))
	if got := mustMillis(t)(utc.Field(field.DayOfMonth).Add(sept2, 1)); got != british {
		t.Fatalf("day after 1752-09-02 = %d, want %d", got, british)
	}
	withTime, err := GJ(zone.UTC, british+6*MillisPerHour, 1)
	if err != nil {
		t.Fatalf("GJ() error = %v", err)
	}
	if got, want := withTime.String(), "GJChronology[UTC,cutover=1752-09-14T06:00:00.000Z,mdfw=1]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
