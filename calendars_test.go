package chrono

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

func TestFixedCalendarsAtEpoch(t *testing.T) {
	tests := []struct {
		name  string
		c     Chronology
		year  int
		era   string
		label string
	}{
		{name: "coptic", c: CopticUTC(), year: 1686, era: "AM", label: "CopticChronology[UTC]"},
		{name: "ethiopic", c: EthiopicUTC(), year: 1962, era: "EE", label: "EthiopicChronology[UTC]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			for ft, want := range map[field.DateTimeFieldType]int{
				field.Year:        tt.year,
				field.YearOfEra:   tt.year,
				field.MonthOfYear: 4,
				field.DayOfMonth:  23,
				field.DayOfYear:   113,
				field.Era:         CE,
			} {
				if got := mustGet(t, c, ft, 0); got != want {
					t.Fatalf("%s = %d, want %d", ft, got, want)
				}
			}
			if got := mustMillis(t)(c.DateMillis(tt.year, 4, 23, 0)); got != 0 {
				t.Fatalf("DateMillis(%d-04-23) = %d, want 0", tt.year, got)
			}
			text, err := c.Field(field.Era).AsText(0, language.English)
			if err != nil || text != tt.era {
				t.Fatalf("era.AsText() = %q, %v, want %q", text, err, tt.era)
			}
			if got := c.String(); got != tt.label {
				t.Fatalf("String() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestFixedCalendarThirteenthMonth(t *testing.T) {
	c := CopticUTC()
	leap := mustMillis(t)(c.DateMillis(1687, 13, 6, 0))
	if got := c.Field(field.Year).IsLeap(leap); !got {
		t.Fatalf("1687 is not leap")
	}
	if got := c.Field(field.DayOfMonth).MaximumValueAt(leap); got != 6 {
		t.Fatalf("days in month 13 of 1687 = %d, want 6", got)
	}
	_, err := c.DateMillis(1686, 13, 6, 0)
	wantErr(t, err, chronoerrors.FieldValueOutOfRange)
	if got := mustMillis(t)(c.Field(field.DayOfMonth).Add(leap, 1)); mustGet(t, c, field.Year, got) != 1688 {
		t.Fatalf("day after 1687-13-06 is not in 1688")
	}
	// the leap day collapses onto the last day of a common year
	if got := mustGet(t, c, field.DayOfMonth, mustMillis(t)(c.Field(field.Year).Add(leap, 1))); got != 5 {
		t.Fatalf("1687-13-06 plus a year has day %d, want 5", got)
	}
	month := mustMillis(t)(c.DateMillis(1687, 12, 10, 0))
	if got := mustGet(t, c, field.MonthOfYear, mustMillis(t)(c.Field(field.MonthOfYear).Add(month, 2))); got != 1 {
		t.Fatalf("month 12 plus 2 = %d, want 1", got)
	}
}

func TestFixedCalendarRejectsYearsBeforeOne(t *testing.T) {
	for _, c := range []Chronology{CopticUTC(), EthiopicUTC()} {
		first := mustMillis(t)(c.DateMillis(1, 1, 1, 0))
		if got := mustGet(t, c, field.Year, first); got != 1 {
			t.Fatalf("%s year at lower limit = %d, want 1", c, got)
		}
		_, err := c.DateMillis(-1, 1, 1, 0)
		wantErr(t, err, chronoerrors.DateOutOfRange)
		_, err = c.Field(field.Year).Get(first - 1)
		wantErr(t, err, chronoerrors.DateOutOfRange)
		_, err = c.Field(field.DayOfMonth).Add(first, -1)
		wantErr(t, err, chronoerrors.DateOutOfRange)
	}
	_, err := Coptic(zone.UTC, 0)
	wantErr(t, err, chronoerrors.InvalidArgument)
}

func TestFixedCalendarInZone(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	c, err := Ethiopic(ny, 4)
	if err != nil {
		t.Fatalf("Ethiopic() error = %v", err)
	}
	if got, want := c.String(), "EthiopicChronology[America/New_York]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if c.WithUTC() != EthiopicUTC() {
		t.Fatalf("WithUTC() is not the cached UTC instance")
	}
	// 1970-01-01T00:00Z is still 22 Tahsas in New York
	if got := mustGet(t, c, field.DayOfMonth, 0); got != 22 {
		t.Fatalf("dayOfMonth = %d, want 22", got)
	}
}

func TestBuddhistFields(t *testing.T) {
	c := BuddhistUTC()
	instant := utcMillis(2024, time.January, 1, 0, 0)
	for ft, want := range map[field.DateTimeFieldType]int{
		field.Year:          2567,
		field.YearOfEra:     2567,
		field.CenturyOfEra:  26,
		field.YearOfCentury: 67,
		field.Weekyear:      2567,
		field.MonthOfYear:   1,
		field.Era:           CE,
	} {
		if got := mustGet(t, c, ft, instant); got != want {
			t.Fatalf("%s = %d, want %d", ft, got, want)
		}
	}
	text, err := c.Field(field.Era).AsText(instant, language.English)
	if err != nil || text != "BE" {
		t.Fatalf("era.AsText() = %q, %v, want BE", text, err)
	}
	if got := mustMillis(t)(c.DateMillis(2567, 1, 1, 0)); got != instant {
		t.Fatalf("DateMillis(2567-01-01) = %d, want %d", got, instant)
	}
	if got := mustMillis(t)(c.Field(field.Year).Set(instant, 2543)); got != utcMillis(2000, time.January, 1, 0, 0) {
		t.Fatalf("year.Set(2543) = %d, want 2000-01-01", got)
	}
	if c.Duration(field.Eras).IsSupported() {
		t.Fatalf("eras duration must be unsupported")
	}

	ny := mustZone(t, "America/New_York")
	if got, want := Buddhist(ny).String(), "BuddhistChronology[America/New_York]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got, want := c.String(), "BuddhistChronology[UTC]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	first := mustMillis(t)(c.DateMillis(1, 1, 1, 0))
	_, err = c.Field(field.Year).Get(first - 1)
	wantErr(t, err, chronoerrors.DateOutOfRange)
}

func TestBuddhistFollowsJulianBeforeCutover(t *testing.T) {
	c := BuddhistUTC()
	// 1 BCE has no year zero in between, so it is 542 BE
	julian := JulianUTC()
	bce := mustMillis(t)(julian.DateMillis(-1, 6, 1, 0))
	if got := mustGet(t, c, field.Year, bce); got != 543 {
		t.Fatalf("year at 1 BCE = %d, want 543", got)
	}
	ce := mustMillis(t)(julian.DateMillis(1, 6, 1, 0))
	if got := mustGet(t, c, field.Year, ce); got != 544 {
		t.Fatalf("year at 1 CE = %d, want 544", got)
	}
}

func TestISOCenturyFields(t *testing.T) {
	c := ISOUTC()
	tests := []struct {
		instant       int64
		century       int
		yearOfCentury int
		weekyearOfC   int
	}{
		{instant: utcMillis(1999, time.June, 1, 0, 0), century: 19, yearOfCentury: 99, weekyearOfC: 99},
		{instant: utcMillis(2000, time.June, 1, 0, 0), century: 20, yearOfCentury: 0, weekyearOfC: 0},
		{instant: utcMillis(2005, time.January, 1, 0, 0), century: 20, yearOfCentury: 5, weekyearOfC: 4},
	}
	for _, tt := range tests {
		if got := mustGet(t, c, field.CenturyOfEra, tt.instant); got != tt.century {
			t.Fatalf("centuryOfEra = %d, want %d", got, tt.century)
		}
		if got := mustGet(t, c, field.YearOfCentury, tt.instant); got != tt.yearOfCentury {
			t.Fatalf("yearOfCentury = %d, want %d", got, tt.yearOfCentury)
		}
		if got := mustGet(t, c, field.WeekyearOfCentury, tt.instant); got != tt.weekyearOfC {
			t.Fatalf("weekyearOfCentury = %d, want %d", got, tt.weekyearOfC)
		}
	}
	set := mustMillis(t)(c.Field(field.CenturyOfEra).Set(utcMillis(1999, time.June, 1, 0, 0), 20))
	if set != utcMillis(2099, time.June, 1, 0, 0) {
		t.Fatalf("centuryOfEra.Set(20) = %d, want 2099-06-01", set)
	}
	// centuries count from year zero while eras keep BCE numbering
	bce := utcMillis(-50, time.June, 1, 0, 0)
	for ft, want := range map[field.DateTimeFieldType]int{
		field.Year:          -50,
		field.Era:           BCE,
		field.YearOfEra:     51,
		field.CenturyOfEra:  0,
		field.YearOfCentury: 50,
	} {
		if got := mustGet(t, c, ft, bce); got != want {
			t.Fatalf("%s = %d, want %d", ft, got, want)
		}
	}
}
