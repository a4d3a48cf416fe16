package chrono

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

// strict rejects every out of range value in Set, including the values its
// base would roll over into the next field.
type strict struct {
	assembled
}

// Strict returns c with every field made strict.
func Strict(c Chronology) (Chronology, error) {
	if c == nil {
		return nil, chronoerrors.NewInvalidArgument("the chronology must not be nil")
	}
	if s, ok := c.(*strict); ok {
		return s, nil
	}
	return newStrict(c), nil
}

func newStrict(base Chronology) *strict {
	src := base.Fields()
	var fs Fields
	for _, f := range src.fields {
		if f != nil {
			fs.set(field.NewStrict(f))
		}
	}
	s := &strict{}
	s.assembled.init(base, fs)
	return s
}

func (s *strict) Zone() zone.Zone { return s.base.Zone() }
func (s *strict) String() string  { return "StrictChronology[" + s.base.String() + "]" }

func (s *strict) WithUTC() Chronology { return s.WithZone(zone.UTC) }

func (s *strict) WithZone(z zone.Zone) Chronology {
	z = zoneOrDefault(z)
	if zone.Equal(z, s.Zone()) {
		return s
	}
	return newStrict(s.base.WithZone(z))
}
