package chrono

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

// lenient accepts any value in Set and rolls the excess into the larger
// fields, so the 32nd of January is the 1st of February.
type lenient struct {
	assembled
}

// Lenient returns c with every field made lenient.
func Lenient(c Chronology) (Chronology, error) {
	if c == nil {
		return nil, chronoerrors.NewInvalidArgument("the chronology must not be nil")
	}
	if l, ok := c.(*lenient); ok {
		return l, nil
	}
	return newLenient(c), nil
}

func newLenient(base Chronology) *lenient {
	src := base.Fields()
	utc := base.WithUTC()
	var fs Fields
	for t, f := range src.fields {
		if f != nil {
			fs.set(field.NewLenient(f, base.Zone(), utc.Field(field.DateTimeFieldType(t))))
		}
	}
	l := &lenient{}
	l.assembled.init(base, fs)
	return l
}

func (l *lenient) Zone() zone.Zone { return l.base.Zone() }
func (l *lenient) String() string  { return "LenientChronology[" + l.base.String() + "]" }

func (l *lenient) WithUTC() Chronology { return l.WithZone(zone.UTC) }

func (l *lenient) WithZone(z zone.Zone) Chronology {
	z = zoneOrDefault(z)
	if zone.Equal(z, l.Zone()) {
		return l
	}
	return newLenient(l.base.WithZone(z))
}
