package chrono

import (
	"strings"
	"testing"
	"time"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
)

func TestEraRoundingAtYearOne(t *testing.T) {
	for _, c := range []Chronology{ISOUTC(), GregorianUTC(), JulianUTC(), GJUTC()} {
		t.Run(c.String(), func(t *testing.T) {
			era := c.Field(field.Era)
			yearOne := mustMillis(t)(c.DateMillis(1, 1, 1, 0))
			march := mustMillis(t)(c.DateMillis(1, 3, 1, 0))
			bce := mustMillis(t)(c.DateMillis(-1, 6, 1, 0))
			if got := mustGet(t, c, field.Era, bce); got != BCE {
				t.Fatalf("era(-1) = %d, want BCE", got)
			}
			if got := mustMillis(t)(era.RoundFloor(march)); got != yearOne {
				t.Fatalf("RoundFloor(0001-03-01) = %d, want %d", got, yearOne)
			}
			if got := mustMillis(t)(era.RoundFloor(yearOne)); got != yearOne {
				t.Fatalf("RoundFloor(0001-01-01) = %d, want %d", got, yearOne)
			}
			if got := mustMillis(t)(era.RoundCeiling(bce)); got != yearOne {
				t.Fatalf("RoundCeiling(BCE) = %d, want %d", got, yearOne)
			}
		})
	}
}

func TestRoundingBracketsInstant(t *testing.T) {
	chronologies := []Chronology{
		ISOUTC(), ISO(mustZone(t, "Europe/London")), GregorianUTC(), JulianUTC(),
		GJUTC(), CopticUTC(), EthiopicUTC(), BuddhistUTC(),
	}
	types := []field.DateTimeFieldType{
		field.Year, field.YearOfEra, field.MonthOfYear, field.DayOfMonth,
		field.DayOfYear, field.Weekyear, field.WeekOfWeekyear, field.HourOfDay,
	}
	start := utcMillis(400, time.January, 1, 0, 0)
	end := utcMillis(2400, time.January, 1, 0, 0)
	step := int64(7919)*MillisPerHour + 37*MillisPerMinute
	for _, c := range chronologies {
		for _, ft := range types {
			f := c.Field(ft)
			for instant := start; instant < end; instant += step {
				floor, err := f.RoundFloor(instant)
				if err != nil {
					t.Fatalf("%s %s.RoundFloor(%d) error = %v", c, ft, instant, err)
				}
				ceiling, err := f.RoundCeiling(instant)
				if err != nil {
					t.Fatalf("%s %s.RoundCeiling(%d) error = %v", c, ft, instant, err)
				}
				if floor > instant || ceiling < instant {
					t.Fatalf("%s %s: floor %d, instant %d, ceiling %d", c, ft, floor, instant, ceiling)
				}
			}
		}
	}
}

func TestRoundingUnits(t *testing.T) {
	c := ISOUTC()
	instant := utcMillis(2001, time.May, 6, 10, 30)
	tests := []struct {
		ft          field.DateTimeFieldType
		instant     int64
		floor, ceil int64
	}{
		{ft: field.Year, instant: instant, floor: utcMillis(2001, time.January, 1, 0, 0), ceil: utcMillis(2002, time.January, 1, 0, 0)},
		{ft: field.MonthOfYear, instant: instant, floor: utcMillis(2001, time.May, 1, 0, 0), ceil: utcMillis(2001, time.June, 1, 0, 0)},
		{ft: field.DayOfMonth, instant: instant, floor: utcMillis(2001, time.May, 6, 0, 0), ceil: utcMillis(2001, time.May, 7, 0, 0)},
		{ft: field.Year, instant: utcMillis(2001, time.January, 1, 0, 0), floor: utcMillis(2001, time.January, 1, 0, 0), ceil: utcMillis(2001, time.January, 1, 0, 0)},
		{ft: field.MonthOfYear, instant: utcMillis(2000, time.February, 1, 0, 0), floor: utcMillis(2000, time.February, 1, 0, 0), ceil: utcMillis(2000, time.February, 1, 0, 0)},
		{ft: field.Era, instant: instant, floor: utcMillis(1, time.January, 1, 0, 0)},
	}
	for _, tt := range tests {
		f := c.Field(tt.ft)
		if got := mustMillis(t)(f.RoundFloor(tt.instant)); got != tt.floor {
			t.Fatalf("%s.RoundFloor(%d) = %d, want %d", tt.ft, tt.instant, got, tt.floor)
		}
		if tt.ceil == 0 {
			continue
		}
		if got := mustMillis(t)(f.RoundCeiling(tt.instant)); got != tt.ceil {
			t.Fatalf("%s.RoundCeiling(%d) = %d, want %d", tt.ft, tt.instant, got, tt.ceil)
		}
	}
}

func TestLeapFields(t *testing.T) {
	iso := ISOUTC()
	coptic := CopticUTC()
	copticLeap := mustMillis(t)(coptic.DateMillis(1739, 13, 6, 0))
	copticCommon := mustMillis(t)(coptic.DateMillis(1740, 13, 5, 0))
	tests := []struct {
		name    string
		c       Chronology
		ft      field.DateTimeFieldType
		instant int64
		leap    bool
	}{
		{name: "leap year", c: iso, ft: field.Year, instant: utcMillis(2000, time.February, 29, 0, 0), leap: true},
		{name: "common year", c: iso, ft: field.Year, instant: utcMillis(2001, time.March, 1, 0, 0)},
		{name: "gregorian century", c: iso, ft: field.Year, instant: utcMillis(1900, time.June, 1, 0, 0)},
		{name: "julian century", c: JulianUTC(), ft: field.Year, instant: mustMillis(t)(JulianUTC().DateMillis(1900, 6, 1, 0)), leap: true},
		{name: "february of leap year", c: iso, ft: field.MonthOfYear, instant: utcMillis(2000, time.February, 10, 0, 0), leap: true},
		{name: "march of leap year", c: iso, ft: field.MonthOfYear, instant: utcMillis(2000, time.March, 10, 0, 0)},
		{name: "february of common year", c: iso, ft: field.MonthOfYear, instant: utcMillis(2001, time.February, 10, 0, 0)},
		{name: "leap day of month", c: iso, ft: field.DayOfMonth, instant: utcMillis(2000, time.February, 29, 12, 0), leap: true},
		{name: "day before leap day", c: iso, ft: field.DayOfMonth, instant: utcMillis(2000, time.February, 28, 0, 0)},
		{name: "leap day of year", c: iso, ft: field.DayOfYear, instant: utcMillis(2000, time.February, 29, 0, 0), leap: true},
		{name: "last day of leap year", c: iso, ft: field.DayOfYear, instant: utcMillis(2000, time.December, 31, 0, 0)},
		{name: "short weekyear", c: iso, ft: field.Weekyear, instant: utcMillis(2000, time.February, 29, 0, 0)},
		{name: "long weekyear", c: iso, ft: field.Weekyear, instant: utcMillis(2004, time.June, 1, 0, 0), leap: true},
		{name: "coptic leap month", c: coptic, ft: field.MonthOfYear, instant: copticLeap, leap: true},
		{name: "coptic leap day", c: coptic, ft: field.DayOfYear, instant: copticLeap, leap: true},
		{name: "coptic common month", c: coptic, ft: field.MonthOfYear, instant: copticCommon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.c.Field(tt.ft)
			if got := f.IsLeap(tt.instant); got != tt.leap {
				t.Fatalf("%s.IsLeap() = %v, want %v", tt.ft, got, tt.leap)
			}
			want := 0
			if tt.leap {
				want = 1
			}
			if got := f.LeapAmount(tt.instant); got != want {
				t.Fatalf("%s.LeapAmount() = %d, want %d", tt.ft, got, want)
			}
		})
	}
	if got := iso.Field(field.Year).LeapDurationField().Type(); got != field.Days {
		t.Fatalf("year.LeapDurationField() = %s, want days", got)
	}
}

func TestAddWrapFieldStaysInRange(t *testing.T) {
	c := ISOUTC()
	tests := []struct {
		ft      field.DateTimeFieldType
		instant int64
		amount  int
		want    int64
	}{
		{ft: field.Year, instant: utcMillis(2000, time.June, 1, 8, 0), amount: 5, want: utcMillis(2005, time.June, 1, 8, 0)},
		{ft: field.Year, instant: utcMillis(2000, time.February, 29, 0, 0), amount: 1, want: utcMillis(2001, time.February, 28, 0, 0)},
		{ft: field.DayOfMonth, instant: utcMillis(2001, time.January, 31, 9, 0), amount: 1, want: utcMillis(2001, time.January, 1, 9, 0)},
		{ft: field.DayOfMonth, instant: utcMillis(2001, time.February, 28, 0, 0), amount: 1, want: utcMillis(2001, time.February, 1, 0, 0)},
		{ft: field.DayOfMonth, instant: utcMillis(2001, time.March, 1, 0, 0), amount: -1, want: utcMillis(2001, time.March, 31, 0, 0)},
		{ft: field.DayOfYear, instant: utcMillis(2001, time.December, 31, 0, 0), amount: 1, want: utcMillis(2001, time.January, 1, 0, 0)},
		{ft: field.DayOfYear, instant: utcMillis(2000, time.January, 1, 0, 0), amount: -1, want: utcMillis(2000, time.December, 31, 0, 0)},
		// 2001-01-07 is a Sunday
		{ft: field.DayOfWeek, instant: utcMillis(2001, time.January, 7, 0, 0), amount: 1, want: utcMillis(2001, time.January, 1, 0, 0)},
		{ft: field.MonthOfYear, instant: utcMillis(2001, time.December, 15, 0, 0), amount: 2, want: utcMillis(2001, time.February, 15, 0, 0)},
	}
	for _, tt := range tests {
		if got := mustMillis(t)(c.Field(tt.ft).AddWrapField(tt.instant, tt.amount)); got != tt.want {
			t.Fatalf("%s.AddWrapField(%d, %d) = %d, want %d", tt.ft, tt.instant, tt.amount, got, tt.want)
		}
	}
}

func TestAddBeyondYearRange(t *testing.T) {
	instant := utcMillis(2024, time.January, 1, 0, 0)
	tests := []struct {
		name   string
		c      Chronology
		ft     field.DateTimeFieldType
		amount int64
		text   string
	}{
		{name: "years", c: ISOUTC(), ft: field.Year, amount: 300_000_000, text: "year 300002024"},
		{name: "negative years", c: ISOUTC(), ft: field.Year, amount: -300_000_000, text: "year -299997976"},
		{name: "months", c: ISOUTC(), ft: field.MonthOfYear, amount: 12 * 300_000_000, text: "year 300002024"},
		{name: "weekyears", c: ISOUTC(), ft: field.Weekyear, amount: 300_000_000, text: "weekyear 300002024"},
		{name: "julian months", c: JulianUTC(), ft: field.MonthOfYear, amount: 12 * 300_000_000},
		{name: "gj years", c: GJUTC(), ft: field.Year, amount: 300_000_000},
		{name: "buddhist years", c: BuddhistUTC(), ft: field.Year, amount: 400_000_000, text: "year 400002567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Field(tt.ft).Add(instant, tt.amount)
			wantErr(t, err, chronoerrors.DateOutOfRange)
			if tt.text != "" && !strings.Contains(err.Error(), tt.text) {
				t.Fatalf("error = %q, want it to mention %q", err, tt.text)
			}
		})
	}
}

func TestCenturyOfEraRoundFloor(t *testing.T) {
	c := GregorianUTC()
	century := c.Field(field.CenturyOfEra)
	// centuries of era start at year 1, 101 and so on in CE
	if got := mustMillis(t)(century.RoundFloor(utcMillis(1999, time.June, 1, 0, 0))); got != utcMillis(1901, time.January, 1, 0, 0) {
		t.Fatalf("RoundFloor(1999-06-01) = %d, want 1901-01-01", got)
	}
	// in BCE the floor is the start of 1 BCE, after the instant
	bce := utcMillis(-50, time.June, 1, 0, 0)
	if got := mustMillis(t)(century.RoundFloor(bce)); got != utcMillis(0, time.January, 1, 0, 0) {
		t.Fatalf("RoundFloor(-50-06-01) = %d, want 0000-01-01", got)
	}
}
