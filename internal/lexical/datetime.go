// Package lexical reads and writes the ISO-8601 text forms used by the
// command line: local date-times with an optional offset, and periods.
package lexical

import (
	"strconv"
	"strings"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

const millisPerMinute = 60 * 1000

// DateTime is a date and time of day as written, before any calendar has
// checked it.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	Millis int
	// Offset is the UTC offset in milliseconds, valid when HasOffset is set.
	Offset    int
	HasOffset bool
}

// ParseDateTime parses [-]YYYY-MM-DD, optionally followed by
// Thh:mm[:ss[.fff]] and Z or a ±hh:mm offset. Years take at least four
// digits. Fractions beyond milliseconds are truncated.
func ParseDateTime(s string) (DateTime, error) {
	trimmed := strings.TrimSpace(s)
	main, tz := splitTimezone(trimmed)
	datePart, timePart, hasTime := strings.Cut(main, "T")

	var dt DateTime
	var ok bool
	if dt.Year, dt.Month, dt.Day, ok = parseDateParts(datePart); !ok {
		return DateTime{}, invalid("date-time", trimmed)
	}
	if dt.Month < 1 || dt.Month > 13 || dt.Day < 1 || dt.Day > 31 {
		return DateTime{}, invalid("date-time", trimmed)
	}
	if hasTime {
		if dt.Hour, dt.Minute, dt.Second, dt.Millis, ok = parseTimeParts(timePart); !ok {
			return DateTime{}, invalid("date-time", trimmed)
		}
		if dt.Hour > 23 || dt.Minute > 59 || dt.Second > 59 {
			return DateTime{}, invalid("date-time", trimmed)
		}
	}
	if tz != "" {
		offset, err := parseOffset(tz)
		if err != nil {
			return DateTime{}, err
		}
		dt.Offset, dt.HasOffset = offset, true
	}
	return dt, nil
}

// FormatDateTime writes dt in the form read by ParseDateTime, always with
// seconds and milliseconds.
func FormatDateTime(dt DateTime) string {
	var b strings.Builder
	year := dt.Year
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	writePadded(&b, year, 4)
	b.WriteByte('-')
	writePadded(&b, dt.Month, 2)
	b.WriteByte('-')
	writePadded(&b, dt.Day, 2)
	b.WriteByte('T')
	writePadded(&b, dt.Hour, 2)
	b.WriteByte(':')
	writePadded(&b, dt.Minute, 2)
	b.WriteByte(':')
	writePadded(&b, dt.Second, 2)
	b.WriteByte('.')
	writePadded(&b, dt.Millis, 3)
	if dt.HasOffset {
		b.WriteString(FormatOffset(dt.Offset))
	}
	return b.String()
}

// FormatOffset writes an offset in milliseconds as Z or ±hh:mm, adding
// seconds when the offset has them.
func FormatOffset(offset int) string {
	if offset == 0 {
		return "Z"
	}
	var b strings.Builder
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	writePadded(&b, offset/(60*millisPerMinute), 2)
	b.WriteByte(':')
	writePadded(&b, offset/millisPerMinute%60, 2)
	if seconds := offset / 1000 % 60; seconds != 0 {
		b.WriteByte(':')
		writePadded(&b, seconds, 2)
	}
	return b.String()
}

func writePadded(b *strings.Builder, n, width int) {
	digits := strconv.Itoa(n)
	for range width - len(digits) {
		b.WriteByte('0')
	}
	b.WriteString(digits)
}

func splitTimezone(value string) (string, string) {
	if value == "" {
		return value, ""
	}
	if value[len(value)-1] == 'Z' {
		return value[:len(value)-1], "Z"
	}
	if len(value) >= 6 {
		tz := value[len(value)-6:]
		if (tz[0] == '+' || tz[0] == '-') && tz[3] == ':' && strings.IndexByte(value, 'T') >= 0 {
			return value[:len(value)-6], tz
		}
	}
	return value, ""
}

func parseDateParts(value string) (int, int, int, bool) {
	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}
	yearLen := strings.IndexByte(value, '-')
	if yearLen < 4 || yearLen > 9 || len(value) != yearLen+6 || value[yearLen+3] != '-' {
		return 0, 0, 0, false
	}
	year, ok := parseFixedDigits(value, 0, yearLen)
	if !ok {
		return 0, 0, 0, false
	}
	month, ok := parseFixedDigits(value, yearLen+1, 2)
	if !ok {
		return 0, 0, 0, false
	}
	day, ok := parseFixedDigits(value, yearLen+4, 2)
	if !ok {
		return 0, 0, 0, false
	}
	if negative {
		year = -year
	}
	return year, month, day, true
}

func parseTimeParts(value string) (int, int, int, int, bool) {
	if len(value) < 5 || value[2] != ':' {
		return 0, 0, 0, 0, false
	}
	hour, ok := parseFixedDigits(value, 0, 2)
	if !ok {
		return 0, 0, 0, 0, false
	}
	minute, ok := parseFixedDigits(value, 3, 2)
	if !ok {
		return 0, 0, 0, 0, false
	}
	if len(value) == 5 {
		return hour, minute, 0, 0, true
	}
	if len(value) < 8 || value[5] != ':' {
		return 0, 0, 0, 0, false
	}
	second, ok := parseFixedDigits(value, 6, 2)
	if !ok {
		return 0, 0, 0, 0, false
	}
	if len(value) == 8 {
		return hour, minute, second, 0, true
	}
	fraction := value[9:]
	if value[8] != '.' || fraction == "" || len(fraction) > 9 {
		return 0, 0, 0, 0, false
	}
	if _, ok := parseFixedDigits(fraction, 0, len(fraction)); !ok {
		return 0, 0, 0, 0, false
	}
	millis := 0
	for i := range 3 {
		millis *= 10
		if i < len(fraction) {
			millis += int(fraction[i] - '0')
		}
	}
	return hour, minute, second, millis, true
}

func parseFixedDigits(value string, start, length int) (int, bool) {
	if start < 0 || length <= 0 || start+length > len(value) {
		return 0, false
	}
	n := 0
	for i := range length {
		ch := value[start+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

func parseOffset(tz string) (int, error) {
	if tz == "Z" {
		return 0, nil
	}
	if len(tz) != 6 || (tz[0] != '+' && tz[0] != '-') || tz[3] != ':' {
		return 0, chronoerrors.NewInvalidArgument("invalid offset format: %s", tz)
	}
	hour, ok := parseFixedDigits(tz, 1, 2)
	if !ok {
		return 0, chronoerrors.NewInvalidArgument("invalid offset format: %s", tz)
	}
	minute, ok := parseFixedDigits(tz, 4, 2)
	if !ok {
		return 0, chronoerrors.NewInvalidArgument("invalid offset format: %s", tz)
	}
	if hour > 18 || minute > 59 || (hour == 18 && minute != 0) {
		return 0, chronoerrors.NewInvalidArgument("invalid offset: %s", tz)
	}
	offset := (hour*60 + minute) * millisPerMinute
	if tz[0] == '-' {
		offset = -offset
	}
	return offset, nil
}

func invalid(kind, value string) error {
	if value == "" {
		return chronoerrors.NewInvalidArgument("invalid %s: empty string", kind)
	}
	return chronoerrors.NewInvalidArgument("invalid %s: %s", kind, value)
}
