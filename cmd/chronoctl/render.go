package main

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jacoelho/chrono"
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/lexical"
	"github.com/jacoelho/chrono/zone"
)

type instantView struct {
	Chronology string `yaml:"chronology"`
	Millis     int64  `yaml:"millis"`
	DateTime   string `yaml:"date-time"`
}

type fieldView struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
	Text  string `yaml:"text,omitempty"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

// parseInstant reads "now", "@<epoch millis>" or a date-time in the
// calendar of c. A nil now rejects "now".
func parseInstant(c chrono.Chronology, text string, now func() time.Time) (int64, error) {
	switch {
	case text == "now" && now != nil:
		return now().UnixMilli(), nil
	case strings.HasPrefix(text, "@"):
		millis, err := strconv.ParseInt(text[1:], 10, 64)
		if err != nil {
			return 0, chronoerrors.NewInvalidArgument("invalid epoch millis: %s", text)
		}
		return millis, nil
	}
	dt, err := lexical.ParseDateTime(text)
	if err != nil {
		return 0, err
	}
	if dt.HasOffset {
		z, err := zone.Fixed(dt.Offset)
		if err != nil {
			return 0, err
		}
		c = c.WithZone(z)
	}
	return c.DateTimeMillis(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Millis)
}

func render(c chrono.Chronology, instant int64) (instantView, error) {
	types := [...]field.DateTimeFieldType{
		field.Year, field.MonthOfYear, field.DayOfMonth,
		field.HourOfDay, field.MinuteOfHour, field.SecondOfMinute, field.MillisOfSecond,
	}
	var values [len(types)]int
	for i, t := range types {
		v, err := c.Field(t).Get(instant)
		if err != nil {
			return instantView{}, err
		}
		values[i] = v
	}
	dt := lexical.DateTime{
		Year: values[0], Month: values[1], Day: values[2],
		Hour: values[3], Minute: values[4], Second: values[5], Millis: values[6],
		Offset: c.Zone().Offset(instant), HasOffset: true,
	}
	return instantView{Chronology: c.String(), Millis: instant, DateTime: lexical.FormatDateTime(dt)}, nil
}

func describeFields(c chrono.Chronology, instant int64, tag language.Tag) ([]fieldView, error) {
	var out []fieldView
	for _, t := range field.DateTimeFieldTypes() {
		f := c.Field(t)
		if !f.IsSupported() {
			continue
		}
		v, err := f.Get(instant)
		if err != nil {
			return nil, err
		}
		view := fieldView{Name: t.String(), Value: v, Min: f.MinimumValueAt(instant), Max: f.MaximumValueAt(instant)}
		if text, err := f.AsText(instant, tag); err == nil && text != strconv.Itoa(v) {
			view.Text = text
		}
		out = append(out, view)
	}
	return out, nil
}
