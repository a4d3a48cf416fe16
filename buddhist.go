package chrono

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/num"
	"github.com/jacoelho/chrono/zone"
)

// buddhistOffset is the number of years the Buddhist era starts before the
// Christian era.
const buddhistOffset = 543

// buddhist is the Thai solar calendar: the Julian-Gregorian calendar with
// years counted in the single era BE, which has no year zero. Instants
// before year 1 BE are rejected.
type buddhist struct {
	assembled
}

// Buddhist returns the Buddhist calendar in z.
func Buddhist(z zone.Zone) Chronology {
	return BuddhistUTC().WithZone(z)
}

// BuddhistUTC returns the Buddhist calendar in UTC.
func BuddhistUTC() Chronology {
	c, err := cached(cacheKey{kind: KindBuddhist, minDays: defaultMinDaysInFirstWeek}, func() (Chronology, error) {
		b, err := newBuddhist(GJUTC())
		if err != nil {
			return nil, err
		}
		lower, err := b.DateMillis(1, 1, 1, 0)
		if err != nil {
			return nil, err
		}
		l, err := newLimit(b, &lower, nil, b)
		if err != nil {
			return nil, err
		}
		l.key = &cacheKey{kind: KindBuddhist, minDays: defaultMinDaysInFirstWeek}
		return l, nil
	})
	if err != nil {
		panic(err)
	}
	return c
}

func newBuddhist(base Chronology) (*buddhist, error) {
	bf := base.Fields()
	var fs Fields
	eras := field.UnsupportedDuration(field.Eras)
	fs.setDuration(eras)

	year, err := buddhistYear(bf.Field(field.Year))
	if err != nil {
		return nil, err
	}
	fs.set(year)
	yearOfEra, err := field.NewDelegated(year, eras, field.YearOfEra)
	if err != nil {
		return nil, err
	}
	fs.set(yearOfEra)
	weekyear, err := buddhistYear(bf.Field(field.Weekyear))
	if err != nil {
		return nil, err
	}
	fs.set(weekyear)

	shifted, err := field.NewOffset(yearOfEra, 0, 99)
	if err != nil {
		return nil, err
	}
	century, err := field.NewDivided(shifted, eras, field.CenturyOfEra, 100)
	if err != nil {
		return nil, err
	}
	fs.set(century)
	fs.setDuration(century.DurationField())
	rem, err := field.NewRemainderOf(century, nil, field.YearOfCentury)
	if err != nil {
		return nil, err
	}
	yearOfCentury, err := field.NewOffset(rem, field.YearOfCentury, 1)
	if err != nil {
		return nil, err
	}
	fs.set(yearOfCentury)
	wrem, err := field.NewRemainder(weekyear, century.DurationField(), field.WeekyearOfCentury, 100)
	if err != nil {
		return nil, err
	}
	weekyearOfCentury, err := field.NewOffset(wrem, field.WeekyearOfCentury, 1)
	if err != nil {
		return nil, err
	}
	fs.set(weekyearOfCentury)
	fs.set(newSingleEraField("BE"))

	b := &buddhist{}
	b.assembled.init(base, fs)
	return b, nil
}

// buddhistYear restores year zero to a historical year and shifts it into
// the Buddhist era.
func buddhistYear(historical field.DateTimeField) (*buddhistYearField, error) {
	undo, err := field.NewSkipUndo(historical, 0)
	if err != nil {
		return nil, err
	}
	offset, err := field.NewOffset(undo, 0, buddhistOffset)
	if err != nil {
		return nil, err
	}
	return &buddhistYearField{Offset: offset}, nil
}

// buddhistYearField reports years out of range in Buddhist years.
type buddhistYearField struct {
	*field.Offset
}

func (f *buddhistYearField) Add(instant int64, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	year, ok := num.Add(int64(current), amount)
	if !ok {
		return 0, chronoerrors.NewOverflow("the calculation caused an overflow: %d years", amount)
	}
	if year < int64(f.MinimumValue()) || year > int64(f.MaximumValue()) {
		return 0, chronoerrors.NewDateOutOfRange("%s %d is outside the supported range [%d, %d]", f.Type(), year, f.MinimumValue(), f.MaximumValue())
	}
	return f.Offset.Add(instant, amount)
}

func (b *buddhist) Zone() zone.Zone                 { return zone.UTC }
func (b *buddhist) WithUTC() Chronology             { return BuddhistUTC() }
func (b *buddhist) WithZone(z zone.Zone) Chronology { return BuddhistUTC().WithZone(z) }
func (b *buddhist) String() string                  { return b.describe(zone.UTC.ID()) }
func (b *buddhist) describe(zoneID string) string   { return "BuddhistChronology[" + zoneID + "]" }
