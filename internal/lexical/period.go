package lexical

import (
	"regexp"
	"strconv"
	"strings"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
)

// periodPattern validates the ISO-8601 period form, with weeks and at most
// millisecond precision on seconds.
var periodPattern = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:\.(\d{1,3}))?S)?)?$`)

// Amount is one component of a period, such as 3 months.
type Amount struct {
	Type  field.DurationFieldType
	Value int
}

// periodUnits lists the capture groups of periodPattern in order.
var periodUnits = [...]field.DurationFieldType{
	field.Years, field.Months, field.Weeks, field.Days, field.Hours, field.Minutes, field.Seconds,
}

// ParsePeriod parses a period such as P1Y2M3W4DT5H6M7.250S into its non-zero
// amounts, largest unit first. A leading minus negates every amount.
func ParsePeriod(s string) ([]Amount, error) {
	trimmed := strings.TrimSpace(s)
	m := periodPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, invalid("period", trimmed)
	}
	if strings.HasSuffix(trimmed, "P") || strings.HasSuffix(trimmed, "T") {
		return nil, chronoerrors.NewInvalidArgument("invalid period: %s has no components", trimmed)
	}
	sign := 1
	if m[1] == "-" {
		sign = -1
	}
	var out []Amount
	for i, t := range periodUnits {
		text := m[i+2]
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, chronoerrors.NewInvalidArgument("%s value too large: %s", t, text)
		}
		if v != 0 {
			out = append(out, Amount{Type: t, Value: sign * int(v)})
		}
	}
	if fraction := m[len(m)-1]; fraction != "" {
		millis, _ := strconv.Atoi(fraction + strings.Repeat("0", 3-len(fraction)))
		if millis != 0 {
			out = append(out, Amount{Type: field.Millis, Value: sign * millis})
		}
	}
	return out, nil
}

// FormatPeriod writes amounts in ISO-8601 form. Each amount keeps its own
// sign, as in P1Y-2M. Units without a designator, such as eras, are rejected.
func FormatPeriod(amounts []Amount) (string, error) {
	var date, clock strings.Builder
	seconds, millis := 0, 0
	for _, a := range amounts {
		switch a.Type {
		case field.Years:
			date.WriteString(strconv.Itoa(a.Value) + "Y")
		case field.Months:
			date.WriteString(strconv.Itoa(a.Value) + "M")
		case field.Weeks:
			date.WriteString(strconv.Itoa(a.Value) + "W")
		case field.Days:
			date.WriteString(strconv.Itoa(a.Value) + "D")
		case field.Hours:
			clock.WriteString(strconv.Itoa(a.Value) + "H")
		case field.Minutes:
			clock.WriteString(strconv.Itoa(a.Value) + "M")
		case field.Seconds:
			seconds += a.Value
		case field.Millis:
			millis += a.Value
		default:
			return "", chronoerrors.NewInvalidArgument("period unit %s has no ISO-8601 designator", a.Type)
		}
	}
	if seconds != 0 || millis != 0 {
		total := seconds*1000 + millis
		sign := ""
		if total < 0 {
			sign, total = "-", -total
		}
		clock.WriteString(sign + strconv.Itoa(total/1000))
		if frac := total % 1000; frac != 0 {
			clock.WriteString("." + strings.TrimRight(strconv.Itoa(1000 + frac)[1:], "0"))
		}
		clock.WriteByte('S')
	}
	out := "P" + date.String()
	if clock.Len() > 0 {
		out += "T" + clock.String()
	}
	if out == "P" {
		return "PT0S", nil
	}
	return out, nil
}
