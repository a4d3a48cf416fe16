package chrono

// Millisecond lengths of the precise units.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute       = 60 * MillisPerSecond
	MillisPerHour         = 60 * MillisPerMinute
	MillisPerDay          = 24 * MillisPerHour
	MillisPerWeek         = 7 * MillisPerDay
)

// Era values of calendars with two eras.
const (
	BCE = 0
	CE  = 1
)

// Day of week values. Weeks start on Monday.
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Month of year values shared by the Gregorian family.
const (
	January = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// DefaultCutover is the first instant of the Gregorian calendar in the GJ
// chronology, 1582-10-15T00:00:00Z.
const DefaultCutover int64 = -12219292800000

const defaultMinDaysInFirstWeek = 4
