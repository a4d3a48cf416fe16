// Package chrono computes calendar fields from instants, counted in
// milliseconds since 1970-01-01T00:00:00Z, for a family of calendar systems:
// ISO-8601, proleptic Gregorian, proleptic Julian, the historical
// Julian-Gregorian cutover calendar, Coptic, Ethiopic and Thai Buddhist.
//
// A Chronology exposes one field per calendar component (year, month of
// year, hour of day and so on) and one duration per unit. Chronologies are
// immutable, cached per configuration and safe for concurrent use:
//
//	iso := chrono.ISOUTC()
//	instant, err := iso.DateTimeMillis(2024, 2, 29, 12, 0, 0, 0)
//	if err != nil {
//		return err
//	}
//	next, err := iso.Field(field.Year).Add(instant, 1) // 2025-02-28T12:00
//
// Wrappers layer behavior over any chronology: WithZone evaluates fields in
// local time, Limit bounds the supported instants, Strict rejects values
// that the underlying field would roll over and Lenient accepts them.
package chrono
