// Package zone supplies the time zone offsets consumed by zoned chronologies.
//
// Transition rules are not compiled here: named zones are backed by the
// time package and its embedded zoneinfo database.
package zone

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	// zoneinfo is embedded so named zones resolve on hosts without tzdata
	_ "time/tzdata"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute

	maxOffsetMillis = 24*millisPerHour - 1
)

// Zone maps UTC instants to wall offsets.
type Zone interface {
	// ID returns the zone identifier, such as "UTC", "+02:00" or "Europe/Paris".
	ID() string
	// Offset returns the millisecond offset to add to a UTC instant to get local time.
	Offset(instant int64) int
	// StandardOffset returns the offset excluding daylight saving.
	StandardOffset(instant int64) int
	// IsFixed reports whether the offset never changes.
	IsFixed() bool
	// NextTransition returns the next instant after instant where the offset
	// changes, or instant itself when there is none.
	NextTransition(instant int64) int64
	// PreviousTransition returns the millisecond just before the most recent
	// transition at or before instant, or instant itself when there is none.
	PreviousTransition(instant int64) int64
}

// UTC is the zero-offset zone.
var UTC Zone = fixed{id: "UTC"}

// Fixed returns a zone with a constant offset.
func Fixed(offsetMillis int) (Zone, error) {
	if offsetMillis < -maxOffsetMillis || offsetMillis > maxOffsetMillis {
		return nil, chronoerrors.NewInvalidArgument("millis out of range: %d", offsetMillis)
	}
	if offsetMillis == 0 {
		return UTC, nil
	}
	return fixed{id: formatOffset(offsetMillis), offset: offsetMillis}, nil
}

// FromLocation adapts a time.Location.
func FromLocation(loc *time.Location) Zone {
	if loc == nil || loc == time.UTC {
		return UTC
	}
	return location{loc: loc}
}

var byID sync.Map

// ForID resolves a zone identifier. Offsets of the form "+hh:mm" build fixed
// zones; other identifiers are looked up in the zoneinfo database.
func ForID(id string) (Zone, error) {
	if id == "" {
		return nil, chronoerrors.NewInvalidArgument("zone id must not be empty")
	}
	if id == "UTC" || id == "Z" {
		return UTC, nil
	}
	if cached, ok := byID.Load(id); ok {
		return cached.(Zone), nil
	}
	var z Zone
	if id[0] == '+' || id[0] == '-' {
		offset, err := parseOffset(id)
		if err != nil {
			return nil, err
		}
		if z, err = Fixed(offset); err != nil {
			return nil, err
		}
	} else {
		loc, err := time.LoadLocation(id)
		if err != nil {
			return nil, chronoerrors.NewInvalidArgument("unknown zone %q: %v", id, err)
		}
		z = FromLocation(loc)
	}
	actual, _ := byID.LoadOrStore(id, z)
	return actual.(Zone), nil
}

// Default returns the zone of the host, as reported by time.Local.
func Default() Zone {
	return FromLocation(time.Local)
}

// Equal reports whether two zones share an identifier.
func Equal(a, b Zone) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID() == b.ID()
}

type fixed struct {
	id     string
	offset int
}

func (f fixed) ID() string                             { return f.id }
func (f fixed) Offset(int64) int                       { return f.offset }
func (f fixed) StandardOffset(int64) int               { return f.offset }
func (f fixed) IsFixed() bool                          { return true }
func (f fixed) NextTransition(instant int64) int64     { return instant }
func (f fixed) PreviousTransition(instant int64) int64 { return instant }
func (f fixed) String() string                         { return f.id }

type location struct {
	loc *time.Location
}

func (l location) ID() string { return l.loc.String() }

func (l location) String() string { return l.loc.String() }

func (l location) Offset(instant int64) int {
	_, offset := time.UnixMilli(instant).In(l.loc).Zone()
	return offset * millisPerSecond
}

func (l location) StandardOffset(instant int64) int {
	t := time.UnixMilli(instant).In(l.loc)
	_, offset := t.Zone()
	if !t.IsDST() {
		return offset * millisPerSecond
	}
	// walk back to the most recent non-DST period
	for range 4 {
		start, _ := t.ZoneBounds()
		if start.IsZero() {
			break
		}
		t = start.Add(-time.Millisecond)
		if !t.IsDST() {
			_, offset = t.Zone()
			break
		}
	}
	return offset * millisPerSecond
}

func (l location) IsFixed() bool {
	start, end := time.Now().In(l.loc).ZoneBounds()
	return start.IsZero() && end.IsZero()
}

func (l location) NextTransition(instant int64) int64 {
	_, end := time.UnixMilli(instant).In(l.loc).ZoneBounds()
	if end.IsZero() {
		return instant
	}
	return end.UnixMilli()
}

func (l location) PreviousTransition(instant int64) int64 {
	start, _ := time.UnixMilli(instant).In(l.loc).ZoneBounds()
	if start.IsZero() {
		return instant
	}
	s := start.UnixMilli()
	if s == minInstant {
		return instant
	}
	return s - 1
}

func formatOffset(offsetMillis int) string {
	var b strings.Builder
	if offsetMillis < 0 {
		b.WriteByte('-')
		offsetMillis = -offsetMillis
	} else {
		b.WriteByte('+')
	}
	hours := offsetMillis / millisPerHour
	offsetMillis -= hours * millisPerHour
	minutes := offsetMillis / millisPerMinute
	offsetMillis -= minutes * millisPerMinute
	fmt.Fprintf(&b, "%02d:%02d", hours, minutes)
	if offsetMillis == 0 {
		return b.String()
	}
	seconds := offsetMillis / millisPerSecond
	offsetMillis -= seconds * millisPerSecond
	fmt.Fprintf(&b, ":%02d", seconds)
	if offsetMillis != 0 {
		fmt.Fprintf(&b, ".%03d", offsetMillis)
	}
	return b.String()
}

// parseOffset reads "+hh", "+hh:mm" or "+hh:mm:ss".
func parseOffset(id string) (int, error) {
	sign := 1
	if id[0] == '-' {
		sign = -1
	}
	parts := strings.Split(id[1:], ":")
	if len(parts) > 3 {
		return 0, chronoerrors.NewInvalidArgument("invalid offset %q", id)
	}
	units := [...]int{millisPerHour, millisPerMinute, millisPerSecond}
	limits := [...]int{23, 59, 59}
	total := 0
	for i, part := range parts {
		if len(part) != 2 {
			return 0, chronoerrors.NewInvalidArgument("invalid offset %q", id)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > limits[i] {
			return 0, chronoerrors.NewInvalidArgument("invalid offset %q", id)
		}
		total += v * units[i]
	}
	return sign * total, nil
}
