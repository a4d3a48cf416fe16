package field

// DurationFieldType identifies a unit of elapsed time.
type DurationFieldType uint8

const (
	// Eras is the unit of the era field.
	Eras DurationFieldType = iota + 1
	Centuries
	Weekyears
	Years
	Months
	Weeks
	Days
	Halfdays
	Hours
	Minutes
	Seconds
	Millis
)

var durationTypeNames = [...]string{
	Eras:      "eras",
	Centuries: "centuries",
	Weekyears: "weekyears",
	Years:     "years",
	Months:    "months",
	Weeks:     "weeks",
	Days:      "days",
	Halfdays:  "halfdays",
	Hours:     "hours",
	Minutes:   "minutes",
	Seconds:   "seconds",
	Millis:    "millis",
}

// String returns the lower-case unit name, such as "months".
func (t DurationFieldType) String() string {
	if int(t) < len(durationTypeNames) && durationTypeNames[t] != "" {
		return durationTypeNames[t]
	}
	return "unknown"
}

// Valid reports whether t is a known duration type.
func (t DurationFieldType) Valid() bool {
	return t >= Eras && t <= Millis
}

// DurationFieldTypes lists every duration type from the largest unit to the smallest.
func DurationFieldTypes() []DurationFieldType {
	out := make([]DurationFieldType, 0, Millis)
	for t := Eras; t <= Millis; t++ {
		out = append(out, t)
	}
	return out
}

// ParseDurationFieldType resolves a unit name produced by String.
func ParseDurationFieldType(name string) (DurationFieldType, bool) {
	for t := Eras; t <= Millis; t++ {
		if durationTypeNames[t] == name {
			return t, true
		}
	}
	return 0, false
}

// DateTimeFieldType identifies a calendar field.
type DateTimeFieldType uint8

const (
	Era DateTimeFieldType = iota + 1
	YearOfEra
	CenturyOfEra
	YearOfCentury
	Year
	DayOfYear
	MonthOfYear
	DayOfMonth
	WeekyearOfCentury
	Weekyear
	WeekOfWeekyear
	DayOfWeek
	HalfdayOfDay
	HourOfHalfday
	ClockhourOfHalfday
	ClockhourOfDay
	HourOfDay
	MinuteOfDay
	MinuteOfHour
	SecondOfDay
	SecondOfMinute
	MillisOfDay
	MillisOfSecond
)

type dateTimeTypeInfo struct {
	name     string
	unit     DurationFieldType
	rangeOf  DurationFieldType
	hasRange bool
}

var dateTimeTypes = [...]dateTimeTypeInfo{
	Era:                {name: "era", unit: Eras},
	YearOfEra:          {name: "yearOfEra", unit: Years, rangeOf: Eras, hasRange: true},
	CenturyOfEra:       {name: "centuryOfEra", unit: Centuries, rangeOf: Eras, hasRange: true},
	YearOfCentury:      {name: "yearOfCentury", unit: Years, rangeOf: Centuries, hasRange: true},
	Year:               {name: "year", unit: Years},
	DayOfYear:          {name: "dayOfYear", unit: Days, rangeOf: Years, hasRange: true},
	MonthOfYear:        {name: "monthOfYear", unit: Months, rangeOf: Years, hasRange: true},
	DayOfMonth:         {name: "dayOfMonth", unit: Days, rangeOf: Months, hasRange: true},
	WeekyearOfCentury:  {name: "weekyearOfCentury", unit: Weekyears, rangeOf: Centuries, hasRange: true},
	Weekyear:           {name: "weekyear", unit: Weekyears},
	WeekOfWeekyear:     {name: "weekOfWeekyear", unit: Weeks, rangeOf: Weekyears, hasRange: true},
	DayOfWeek:          {name: "dayOfWeek", unit: Days, rangeOf: Weeks, hasRange: true},
	HalfdayOfDay:       {name: "halfdayOfDay", unit: Halfdays, rangeOf: Days, hasRange: true},
	HourOfHalfday:      {name: "hourOfHalfday", unit: Hours, rangeOf: Halfdays, hasRange: true},
	ClockhourOfHalfday: {name: "clockhourOfHalfday", unit: Hours, rangeOf: Halfdays, hasRange: true},
	ClockhourOfDay:     {name: "clockhourOfDay", unit: Hours, rangeOf: Days, hasRange: true},
	HourOfDay:          {name: "hourOfDay", unit: Hours, rangeOf: Days, hasRange: true},
	MinuteOfDay:        {name: "minuteOfDay", unit: Minutes, rangeOf: Days, hasRange: true},
	MinuteOfHour:       {name: "minuteOfHour", unit: Minutes, rangeOf: Hours, hasRange: true},
	SecondOfDay:        {name: "secondOfDay", unit: Seconds, rangeOf: Days, hasRange: true},
	SecondOfMinute:     {name: "secondOfMinute", unit: Seconds, rangeOf: Minutes, hasRange: true},
	MillisOfDay:        {name: "millisOfDay", unit: Millis, rangeOf: Days, hasRange: true},
	MillisOfSecond:     {name: "millisOfSecond", unit: Millis, rangeOf: Seconds, hasRange: true},
}

// String returns the field name, such as "dayOfMonth".
func (t DateTimeFieldType) String() string {
	if t.Valid() {
		return dateTimeTypes[t].name
	}
	return "unknown"
}

// Valid reports whether t is a known field type.
func (t DateTimeFieldType) Valid() bool {
	return t >= Era && t <= MillisOfSecond
}

// DurationType returns the unit the field counts in.
func (t DateTimeFieldType) DurationType() DurationFieldType {
	if !t.Valid() {
		return 0
	}
	return dateTimeTypes[t].unit
}

// RangeDurationType returns the unit the field cycles within. Unbounded
// fields such as year and era report false.
func (t DateTimeFieldType) RangeDurationType() (DurationFieldType, bool) {
	if !t.Valid() {
		return 0, false
	}
	info := dateTimeTypes[t]
	return info.rangeOf, info.hasRange
}

// DateTimeFieldTypes lists every field type in declaration order.
func DateTimeFieldTypes() []DateTimeFieldType {
	out := make([]DateTimeFieldType, 0, MillisOfSecond)
	for t := Era; t <= MillisOfSecond; t++ {
		out = append(out, t)
	}
	return out
}

// ParseDateTimeFieldType resolves a field name produced by String.
func ParseDateTimeFieldType(name string) (DateTimeFieldType, bool) {
	for t := Era; t <= MillisOfSecond; t++ {
		if dateTimeTypes[t].name == name {
			return t, true
		}
	}
	return 0, false
}
