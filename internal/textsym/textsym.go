// Package textsym holds the calendar text symbols used by text-aware fields.
package textsym

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symbols are the month, weekday, era and halfday names of one locale.
// Months and weekdays are indexed from 1.
type Symbols struct {
	Tag         language.Tag
	Months      [13]string
	ShortMonths [13]string
	Days        [8]string
	ShortDays   [8]string
	Eras        [2]string
	HalfDays    [2]string
}

var supported = []*Symbols{
	{
		Tag:         language.English,
		Months:      [13]string{"", "January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		ShortMonths: [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Days:        [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		ShortDays:   [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Eras:        [2]string{"BC", "AD"},
		HalfDays:    [2]string{"AM", "PM"},
	},
	{
		Tag:         language.French,
		Months:      [13]string{"", "janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		ShortMonths: [13]string{"", "janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		Days:        [8]string{"", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
		ShortDays:   [8]string{"", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
		Eras:        [2]string{"av. J.-C.", "ap. J.-C."},
		HalfDays:    [2]string{"AM", "PM"},
	},
	{
		Tag:         language.German,
		Months:      [13]string{"", "Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		ShortMonths: [13]string{"", "Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		Days:        [8]string{"", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
		ShortDays:   [8]string{"", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa.", "So."},
		Eras:        [2]string{"v. Chr.", "n. Chr."},
		HalfDays:    [2]string{"AM", "PM"},
	},
	{
		Tag:         language.Spanish,
		Months:      [13]string{"", "enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		ShortMonths: [13]string{"", "ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		Days:        [8]string{"", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"},
		ShortDays:   [8]string{"", "lun", "mar", "mié", "jue", "vie", "sáb", "dom"},
		Eras:        [2]string{"a. C.", "d. C."},
		HalfDays:    [2]string{"a. m.", "p. m."},
	},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.Tag
	}
	matcher = language.NewMatcher(tags)
}

// For returns the symbols best matching tag, falling back to English.
func For(tag language.Tag) *Symbols {
	if tag == language.Und {
		return supported[0]
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Month returns the full month name, or "" when month has no symbol.
func (s *Symbols) Month(month int) string { return pick(s.Months[:], month) }

// ShortMonth returns the abbreviated month name.
func (s *Symbols) ShortMonth(month int) string { return pick(s.ShortMonths[:], month) }

// Day returns the full weekday name, Monday being 1.
func (s *Symbols) Day(day int) string { return pick(s.Days[:], day) }

// ShortDay returns the abbreviated weekday name.
func (s *Symbols) ShortDay(day int) string { return pick(s.ShortDays[:], day) }

// Era returns the era name, 0 being before the common era.
func (s *Symbols) Era(era int) string { return pick(s.Eras[:], era) }

// HalfDay returns the halfday name, 0 being AM.
func (s *Symbols) HalfDay(halfday int) string { return pick(s.HalfDays[:], halfday) }

// ParseMonth matches text against full and short month names.
func (s *Symbols) ParseMonth(text string) (int, bool) {
	return s.lookup(text, s.Months[:], s.ShortMonths[:])
}

// ParseDay matches text against full and short weekday names.
func (s *Symbols) ParseDay(text string) (int, bool) {
	return s.lookup(text, s.Days[:], s.ShortDays[:])
}

// ParseEra matches text against era names.
func (s *Symbols) ParseEra(text string) (int, bool) {
	return s.lookup(text, s.Eras[:])
}

// ParseHalfDay matches text against halfday names.
func (s *Symbols) ParseHalfDay(text string) (int, bool) {
	return s.lookup(text, s.HalfDays[:])
}

// MaxMonthLength is the longest full month name.
func (s *Symbols) MaxMonthLength() int { return maxLen(s.Months[:]) }

// MaxShortMonthLength is the longest short month name.
func (s *Symbols) MaxShortMonthLength() int { return maxLen(s.ShortMonths[:]) }

// MaxDayLength is the longest full weekday name.
func (s *Symbols) MaxDayLength() int { return maxLen(s.Days[:]) }

// MaxShortDayLength is the longest short weekday name.
func (s *Symbols) MaxShortDayLength() int { return maxLen(s.ShortDays[:]) }

// MaxEraLength is the longest era name.
func (s *Symbols) MaxEraLength() int { return maxLen(s.Eras[:]) }

// MaxHalfDayLength is the longest halfday name.
func (s *Symbols) MaxHalfDayLength() int { return maxLen(s.HalfDays[:]) }

func (s *Symbols) lookup(text string, tables ...[]string) (int, bool) {
	// a Caser is stateful, so each lookup gets its own
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(text))
	if needle == "" {
		return 0, false
	}
	for _, table := range tables {
		for i, name := range table {
			if name != "" && fold.String(name) == needle {
				return i, true
			}
		}
	}
	return 0, false
}

func pick(table []string, index int) string {
	if index < 0 || index >= len(table) {
		return ""
	}
	return table[index]
}

func maxLen(table []string) int {
	n := 0
	for _, name := range table {
		if l := len([]rune(name)); l > n {
			n = l
		}
	}
	return n
}
