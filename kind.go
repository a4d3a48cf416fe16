package chrono

import (
	"strings"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/zone"
)

// Kind names a calendar system.
type Kind uint8

const (
	KindISO Kind = iota + 1
	KindGregorian
	KindJulian
	KindGJ
	KindCoptic
	KindEthiopic
	KindBuddhist
)

var kindNames = [...]string{
	KindISO:       "iso",
	KindGregorian: "gregorian",
	KindJulian:    "julian",
	KindGJ:        "gj",
	KindCoptic:    "coptic",
	KindEthiopic:  "ethiopic",
	KindBuddhist:  "buddhist",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every calendar system.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindISO; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a calendar name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, chronoerrors.NewInvalidArgument("unknown chronology %q", name)
}

type config struct {
	zone    zone.Zone
	minDays int
	cutover int64
}

// Option configures New.
type Option func(*config)

// InZone selects the time zone. The default is the process zone.
func InZone(z zone.Zone) Option {
	return func(c *config) { c.zone = z }
}

// MinDaysInFirstWeek sets how many days of the new year the first week must
// hold. It is ignored by ISO and Buddhist, which always use 4.
func MinDaysInFirstWeek(days int) Option {
	return func(c *config) { c.minDays = days }
}

// Cutover sets the first Gregorian instant of the GJ calendar.
func Cutover(instant int64) Option {
	return func(c *config) { c.cutover = instant }
}

// New returns the calendar system kind configured by opts.
func New(kind Kind, opts ...Option) (Chronology, error) {
	c := config{minDays: defaultMinDaysInFirstWeek, cutover: DefaultCutover}
	for _, opt := range opts {
		opt(&c)
	}
	switch kind {
	case KindISO:
		return ISO(c.zone), nil
	case KindGregorian:
		return Gregorian(c.zone, c.minDays)
	case KindJulian:
		return Julian(c.zone, c.minDays)
	case KindGJ:
		return GJ(c.zone, c.cutover, c.minDays)
	case KindCoptic:
		return Coptic(c.zone, c.minDays)
	case KindEthiopic:
		return Ethiopic(c.zone, c.minDays)
	case KindBuddhist:
		return Buddhist(c.zone), nil
	}
	return nil, chronoerrors.NewInvalidArgument("unknown chronology kind %d", kind)
}
