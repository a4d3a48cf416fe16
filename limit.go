package chrono

import (
	"time"

	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

// bounds is a half-open instant range [lower, upper). A nil end is open.
type bounds struct {
	lower *int64
	upper *int64
	// c names the bounded calendar in failure messages
	c Chronology
}

func (b bounds) check(instant int64, what string) error {
	if b.lower != nil && instant < *b.lower {
		return chronoerrors.NewDateOutOfRange("the %sinstant is below the supported minimum of %s (%s)", what, formatInstant(*b.lower), b.c)
	}
	if b.upper != nil && instant >= *b.upper {
		return chronoerrors.NewDateOutOfRange("the %sinstant is above the supported maximum of %s (%s)", what, formatInstant(*b.upper), b.c)
	}
	return nil
}

func formatInstant(instant int64) string {
	return time.UnixMilli(instant).UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func formatLimit(instant *int64) string {
	if instant == nil {
		return "NoLimit"
	}
	return formatInstant(*instant)
}

// limit rejects instants outside a range before delegating to its base.
type limit struct {
	assembled
	bounds
	// alias names the calendar this limit stands in for, when the limit
	// bounds a calendar's own supported range
	alias describer
	key   *cacheKey
}

// Limit restricts c to instants in [lower, upper). Nil limits are open.
func Limit(c Chronology, lower, upper *int64) (Chronology, error) {
	if c == nil {
		return nil, chronoerrors.NewInvalidArgument("the chronology must not be nil")
	}
	l, err := newLimit(c, lower, upper, nil)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func newLimit(base Chronology, lower, upper *int64, alias describer) (*limit, error) {
	if lower != nil && upper != nil && *lower >= *upper {
		return nil, chronoerrors.NewInvalidArgument("the lower limit must come before the upper limit")
	}
	l := &limit{alias: alias}
	l.bounds = bounds{lower: lower, upper: upper, c: base}

	src := base.Fields()
	var fs Fields
	converted := make(map[field.DurationField]field.DurationField)
	convert := func(d field.DurationField) field.DurationField {
		if d == nil || !d.IsSupported() {
			return d
		}
		if ld, ok := converted[d]; ok {
			return ld
		}
		ld := &limitDuration{wrapped: d, bounds: l.bounds}
		converted[d] = ld
		return ld
	}
	for _, d := range src.durations {
		if d != nil {
			fs.setDuration(convert(d))
		}
	}
	for _, f := range src.fields {
		if f == nil || !f.IsSupported() {
			continue
		}
		lf, err := newLimitField(f, l.bounds, convert(f.DurationField()), convert(f.RangeDurationField()), convert(f.LeapDurationField()))
		if err != nil {
			return nil, err
		}
		fs.set(lf)
	}
	l.assembled.init(base, fs)
	return l, nil
}

// Lower returns the inclusive lower limit, or nil.
func (l *limit) Lower() *int64 { return l.lower }

// Upper returns the exclusive upper limit, or nil.
func (l *limit) Upper() *int64 { return l.upper }

func (l *limit) Zone() zone.Zone { return l.base.Zone() }

func (l *limit) WithUTC() Chronology { return l.WithZone(zone.UTC) }

func (l *limit) WithZone(z zone.Zone) Chronology {
	z = zoneOrDefault(z)
	if l.alias != nil {
		return zonedInstance(l, z)
	}
	if zone.Equal(z, l.Zone()) {
		return l
	}
	from := l.Zone()
	lower, err := retainFields(l.lower, from, z)
	if err != nil {
		return newZoned(l, z)
	}
	upper, err := retainFields(l.upper, from, z)
	if err != nil {
		return newZoned(l, z)
	}
	out, err := newLimit(l.base.WithZone(z), lower, upper, nil)
	if err != nil {
		return newZoned(l, z)
	}
	return out
}

// retainFields moves a limit to the instant with the same wall clock in to.
func retainFields(instant *int64, from, to zone.Zone) (*int64, error) {
	if instant == nil {
		return nil, nil
	}
	local, err := zone.UTCToLocal(from, *instant)
	if err != nil {
		return nil, err
	}
	out, err := zone.LocalToUTC(to, local, false)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *limit) instanceKey() (cacheKey, bool) {
	if l.key == nil {
		return cacheKey{}, false
	}
	return *l.key, true
}

func (l *limit) String() string {
	if l.alias != nil {
		return l.alias.describe(zone.UTC.ID())
	}
	return "LimitChronology[" + l.base.String() + ", " + formatLimit(l.lower) + ", " + formatLimit(l.upper) + "]"
}

func (l *limit) describe(zoneID string) string {
	if l.alias != nil {
		return l.alias.describe(zoneID)
	}
	return l.String()
}

func (l *limit) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	instant, err := l.base.DateMillis(year, month, day, millisOfDay)
	if err != nil {
		return 0, err
	}
	return instant, l.check(instant, "resulting ")
}

func (l *limit) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	instant, err := l.base.DateTimeMillis(year, month, day, hour, minute, second, millis)
	if err != nil {
		return 0, err
	}
	return instant, l.check(instant, "resulting ")
}

type limitDuration struct {
	wrapped field.DurationField
	bounds
}

func (d *limitDuration) Type() field.DurationFieldType { return d.wrapped.Type() }
func (d *limitDuration) Name() string                  { return d.wrapped.Name() }
func (d *limitDuration) IsSupported() bool             { return true }
func (d *limitDuration) IsPrecise() bool               { return d.wrapped.IsPrecise() }
func (d *limitDuration) UnitMillis() int64             { return d.wrapped.UnitMillis() }
func (d *limitDuration) String() string                { return "DurationField[" + d.Name() + "]" }

func (d *limitDuration) Value(duration int64) (int64, error) { return d.wrapped.Value(duration) }
func (d *limitDuration) Millis(value int64) (int64, error)   { return d.wrapped.Millis(value) }

func (d *limitDuration) ValueAt(duration, instant int64) (int64, error) {
	if err := d.check(instant, ""); err != nil {
		return 0, err
	}
	return d.wrapped.ValueAt(duration, instant)
}

func (d *limitDuration) MillisAt(value, instant int64) (int64, error) {
	if err := d.check(instant, ""); err != nil {
		return 0, err
	}
	return d.wrapped.MillisAt(value, instant)
}

func (d *limitDuration) Add(instant, value int64) (int64, error) {
	if err := d.check(instant, ""); err != nil {
		return 0, err
	}
	result, err := d.wrapped.Add(instant, value)
	if err != nil {
		return 0, err
	}
	return result, d.check(result, "resulting ")
}

func (d *limitDuration) Difference(minuend, subtrahend int64) (int64, error) {
	if err := d.check(minuend, "minuend "); err != nil {
		return 0, err
	}
	if err := d.check(subtrahend, "subtrahend "); err != nil {
		return 0, err
	}
	return d.wrapped.Difference(minuend, subtrahend)
}

type limitField struct {
	field.Decorated
	passthrough
	bounds
	duration   field.DurationField
	rangeField field.DurationField
	leapField  field.DurationField
}

func newLimitField(f field.DateTimeField, b bounds, duration, rangeField, leapField field.DurationField) (*limitField, error) {
	lf := &limitField{passthrough: passthrough{wrapped: f}, bounds: b, duration: duration, rangeField: rangeField, leapField: leapField}
	d, err := field.MakeDecorated(f.Type(), f, lf)
	if err != nil {
		return nil, err
	}
	lf.Decorated = d
	return lf, nil
}

func (f *limitField) DurationField() field.DurationField      { return f.duration }
func (f *limitField) RangeDurationField() field.DurationField { return f.rangeField }
func (f *limitField) LeapDurationField() field.DurationField  { return f.leapField }

func (f *limitField) IsLeap(instant int64) bool        { return f.wrapped.IsLeap(instant) }
func (f *limitField) LeapAmount(instant int64) int     { return f.wrapped.LeapAmount(instant) }
func (f *limitField) MinimumValueAt(instant int64) int { return f.wrapped.MinimumValueAt(instant) }
func (f *limitField) MaximumValueAt(instant int64) int { return f.wrapped.MaximumValueAt(instant) }

func (f *limitField) Get(instant int64) (int, error) {
	if err := f.check(instant, ""); err != nil {
		return 0, err
	}
	return f.wrapped.Get(instant)
}

// checked runs op on a valid instant and validates its result.
func (f *limitField) checked(instant int64, op func(int64) (int64, error)) (int64, error) {
	if err := f.check(instant, ""); err != nil {
		return 0, err
	}
	result, err := op(instant)
	if err != nil {
		return 0, err
	}
	return result, f.check(result, "resulting ")
}

func (f *limitField) Set(instant int64, value int) (int64, error) {
	return f.checked(instant, func(i int64) (int64, error) { return f.wrapped.Set(i, value) })
}

func (f *limitField) Add(instant int64, amount int64) (int64, error) {
	return f.checked(instant, func(i int64) (int64, error) { return f.wrapped.Add(i, amount) })
}

func (f *limitField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.checked(instant, func(i int64) (int64, error) { return f.wrapped.AddWrapField(i, amount) })
}

func (f *limitField) SetText(instant int64, text string, tag language.Tag) (int64, error) {
	return f.checked(instant, func(i int64) (int64, error) { return f.wrapped.SetText(i, text, tag) })
}

func (f *limitField) RoundFloor(instant int64) (int64, error) {
	return f.checked(instant, f.wrapped.RoundFloor)
}

func (f *limitField) RoundCeiling(instant int64) (int64, error) {
	return f.checked(instant, f.wrapped.RoundCeiling)
}

func (f *limitField) RoundHalfFloor(instant int64) (int64, error) {
	return f.checked(instant, f.wrapped.RoundHalfFloor)
}

func (f *limitField) RoundHalfCeiling(instant int64) (int64, error) {
	return f.checked(instant, f.wrapped.RoundHalfCeiling)
}

func (f *limitField) RoundHalfEven(instant int64) (int64, error) {
	return f.checked(instant, f.wrapped.RoundHalfEven)
}

func (f *limitField) Remainder(instant int64) (int64, error) {
	if err := f.check(instant, ""); err != nil {
		return 0, err
	}
	return f.wrapped.Remainder(instant)
}

func (f *limitField) Difference64(minuend, subtrahend int64) (int64, error) {
	if err := f.check(minuend, "minuend "); err != nil {
		return 0, err
	}
	if err := f.check(subtrahend, "subtrahend "); err != nil {
		return 0, err
	}
	return f.wrapped.Difference64(minuend, subtrahend)
}

func (f *limitField) AsText(instant int64, tag language.Tag) (string, error) {
	if err := f.check(instant, ""); err != nil {
		return "", err
	}
	return f.wrapped.AsText(instant, tag)
}

func (f *limitField) AsShortText(instant int64, tag language.Tag) (string, error) {
	if err := f.check(instant, ""); err != nil {
		return "", err
	}
	return f.wrapped.AsShortText(instant, tag)
}
