package chrono

import (
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

// Chronology is a calendar system: a complete set of fields and durations
// evaluated in one time zone.
type Chronology interface {
	Zone() zone.Zone
	// WithUTC returns the same calendar system in UTC.
	WithUTC() Chronology
	// WithZone returns the same calendar system in z. A nil zone selects
	// the process default.
	WithZone(z zone.Zone) Chronology

	// Field returns the field of type t. Types the calendar does not
	// support yield a field whose operations fail.
	Field(t field.DateTimeFieldType) field.DateTimeField
	Duration(t field.DurationFieldType) field.DurationField
	Fields() Fields

	// DateMillis returns the instant of a local date and millisecond of day.
	DateMillis(year, month, day, millisOfDay int) (int64, error)
	// DateTimeMillis returns the instant of a local date and time.
	DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error)

	String() string
}

const (
	numDurationTypes = int(field.Millis) + 1
	numFieldTypes    = int(field.MillisOfSecond) + 1
)

// Fields is the table of fields a chronology is assembled from. The zero
// value has every field unsupported.
type Fields struct {
	durations [numDurationTypes]field.DurationField
	fields    [numFieldTypes]field.DateTimeField
}

// Field returns the field of type t.
func (fs *Fields) Field(t field.DateTimeFieldType) field.DateTimeField {
	if t.Valid() {
		if f := fs.fields[t]; f != nil {
			return f
		}
		return field.NewUnsupported(t, fs.Duration(t.DurationType()))
	}
	return field.NewUnsupported(t, field.UnsupportedDuration(0))
}

// Duration returns the duration field of type t.
func (fs *Fields) Duration(t field.DurationFieldType) field.DurationField {
	if t.Valid() {
		if d := fs.durations[t]; d != nil {
			return d
		}
	}
	return field.UnsupportedDuration(t)
}

func (fs *Fields) set(f field.DateTimeField) {
	fs.fields[f.Type()] = f
}

func (fs *Fields) setDuration(d field.DurationField) {
	fs.durations[d.Type()] = d
}

// fillFrom copies every entry of other that fs leaves empty.
func (fs *Fields) fillFrom(other *Fields) {
	for i, d := range other.durations {
		if fs.durations[i] == nil {
			fs.durations[i] = d
		}
	}
	for i, f := range other.fields {
		if fs.fields[i] == nil {
			fs.fields[i] = f
		}
	}
}

// same reports whether fs and other share the instances of every listed type.
func (fs *Fields) same(other *Fields, types ...field.DateTimeFieldType) bool {
	for _, t := range types {
		if fs.fields[t] == nil || fs.fields[t] != other.fields[t] {
			return false
		}
	}
	return true
}

var (
	dateTypes     = []field.DateTimeFieldType{field.Year, field.MonthOfYear, field.DayOfMonth, field.MillisOfDay}
	dateTimeTypes = []field.DateTimeFieldType{
		field.Year, field.MonthOfYear, field.DayOfMonth,
		field.HourOfDay, field.MinuteOfHour, field.SecondOfMinute, field.MillisOfSecond,
	}
)

// assembled is the shared body of chronologies built by overriding some
// fields of a base chronology.
type assembled struct {
	base   Chronology
	fields Fields
	// set when the fields used by DateMillis or DateTimeMillis are the
	// base's own, so the base's direct computation can be used
	dateFromBase     bool
	dateTimeFromBase bool
}

func (a *assembled) init(base Chronology, fs Fields) {
	a.base = base
	if base != nil {
		bf := base.Fields()
		fs.fillFrom(&bf)
		a.dateFromBase = fs.same(&bf, dateTypes...)
		a.dateTimeFromBase = fs.same(&bf, dateTimeTypes...)
	}
	a.fields = fs
}

func (a *assembled) Field(t field.DateTimeFieldType) field.DateTimeField { return a.fields.Field(t) }

func (a *assembled) Duration(t field.DurationFieldType) field.DurationField {
	return a.fields.Duration(t)
}

func (a *assembled) Fields() Fields { return a.fields }

func (a *assembled) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	if a.dateFromBase {
		return a.base.DateMillis(year, month, day, millisOfDay)
	}
	return setFields(&a.fields, 0, dateTypes, year, month, day, millisOfDay)
}

func (a *assembled) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	if a.dateTimeFromBase {
		return a.base.DateTimeMillis(year, month, day, hour, minute, second, millis)
	}
	return setFields(&a.fields, 0, dateTimeTypes, year, month, day, hour, minute, second, millis)
}

// setFields applies each value to the field of the matching type, in order.
func setFields(fs *Fields, instant int64, types []field.DateTimeFieldType, values ...int) (int64, error) {
	var err error
	for i, t := range types {
		if instant, err = fs.Field(t).Set(instant, values[i]); err != nil {
			return 0, err
		}
	}
	return instant, nil
}

// describer renders a chronology as if it were evaluated in zoneID.
type describer interface {
	describe(zoneID string) string
}

func describe(c Chronology, zoneID string) string {
	if d, ok := c.(describer); ok {
		return d.describe(zoneID)
	}
	return c.String()
}

// Equal reports whether a and b are the same calendar system in the same
// zone with the same configuration.
func Equal(a, b Chronology) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.String() == b.String()
}

func zoneOrDefault(z zone.Zone) zone.Zone {
	if z == nil {
		return zone.Default()
	}
	return z
}
