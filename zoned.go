package chrono

import (
	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/num"
	"github.com/jacoelho/chrono/zone"
)

// zoned evaluates a UTC chronology in a time zone. Every supported field and
// duration is wrapped to shift instants into local time and back.
type zoned struct {
	assembled
	zone zone.Zone
}

func newZoned(utc Chronology, z zone.Zone) *zoned {
	c := &zoned{zone: z}
	src := utc.Fields()
	var fs Fields
	converted := make(map[field.DurationField]field.DurationField)
	convert := func(d field.DurationField) field.DurationField {
		if d == nil || !d.IsSupported() {
			return d
		}
		if zd, ok := converted[d]; ok {
			return zd
		}
		zd := newZonedDuration(d, z)
		converted[d] = zd
		return zd
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
		fs.set(newZonedField(f, z, convert(f.DurationField()), convert(f.RangeDurationField()), convert(f.LeapDurationField())))
	}
	c.assembled.init(utc, fs)
	return c
}

func (c *zoned) Zone() zone.Zone     { return c.zone }
func (c *zoned) WithUTC() Chronology { return c.base }
func (c *zoned) String() string      { return describe(c.base, c.zone.ID()) }

func (c *zoned) WithZone(z zone.Zone) Chronology {
	z = zoneOrDefault(z)
	if zone.Equal(z, c.zone) {
		return c
	}
	return c.base.WithZone(z)
}

func (c *zoned) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	local, err := c.base.DateMillis(year, month, day, millisOfDay)
	if err != nil {
		return 0, err
	}
	return zone.LocalToUTC(c.zone, local, true)
}

func (c *zoned) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	local, err := c.base.DateTimeMillis(year, month, day, hour, minute, second, millis)
	if err != nil {
		return 0, err
	}
	return zone.LocalToUTC(c.zone, local, true)
}

// useTimeArithmetic reports whether a unit is short enough that adding it
// across a transition should keep elapsed time rather than wall time.
func useTimeArithmetic(d field.DurationField) bool {
	return d != nil && d.UnitMillis() < 12*MillisPerHour
}

func offsetToAdd(z zone.Zone, instant int64) (int64, error) {
	offset := int64(z.Offset(instant))
	if _, ok := num.Add(instant, offset); !ok {
		return 0, chronoerrors.NewOverflow("adding time zone offset caused overflow")
	}
	return offset, nil
}

func offsetFromLocalToSubtract(z zone.Zone, local int64) (int64, error) {
	offset := int64(zone.OffsetFromLocal(z, local))
	if _, ok := num.Sub(local, offset); !ok {
		return 0, chronoerrors.NewOverflow("subtracting time zone offset caused overflow")
	}
	return offset, nil
}

type zonedDuration struct {
	wrapped   field.DurationField
	zone      zone.Zone
	timeField bool
}

func newZonedDuration(d field.DurationField, z zone.Zone) *zonedDuration {
	return &zonedDuration{wrapped: d, zone: z, timeField: useTimeArithmetic(d)}
}

func (d *zonedDuration) Type() field.DurationFieldType { return d.wrapped.Type() }
func (d *zonedDuration) Name() string                  { return d.wrapped.Name() }
func (d *zonedDuration) IsSupported() bool             { return true }
func (d *zonedDuration) UnitMillis() int64             { return d.wrapped.UnitMillis() }
func (d *zonedDuration) String() string                { return "DurationField[" + d.Name() + "]" }

func (d *zonedDuration) IsPrecise() bool {
	if d.timeField {
		return d.wrapped.IsPrecise()
	}
	return d.wrapped.IsPrecise() && d.zone.IsFixed()
}

func (d *zonedDuration) Value(duration int64) (int64, error) { return d.wrapped.Value(duration) }
func (d *zonedDuration) Millis(value int64) (int64, error)   { return d.wrapped.Millis(value) }

func (d *zonedDuration) ValueAt(duration, instant int64) (int64, error) {
	local, err := zone.UTCToLocal(d.zone, instant)
	if err != nil {
		return 0, err
	}
	return d.wrapped.ValueAt(duration, local)
}

func (d *zonedDuration) MillisAt(value, instant int64) (int64, error) {
	local, err := zone.UTCToLocal(d.zone, instant)
	if err != nil {
		return 0, err
	}
	return d.wrapped.MillisAt(value, local)
}

func (d *zonedDuration) Add(instant, value int64) (int64, error) {
	offset, err := offsetToAdd(d.zone, instant)
	if err != nil {
		return 0, err
	}
	local, err := d.wrapped.Add(instant+offset, value)
	if err != nil {
		return 0, err
	}
	if !d.timeField {
		if offset, err = offsetFromLocalToSubtract(d.zone, local); err != nil {
			return 0, err
		}
	}
	return local - offset, nil
}

func (d *zonedDuration) Difference(minuend, subtrahend int64) (int64, error) {
	offset, err := offsetToAdd(d.zone, subtrahend)
	if err != nil {
		return 0, err
	}
	minuendOffset := offset
	if !d.timeField {
		if minuendOffset, err = offsetToAdd(d.zone, minuend); err != nil {
			return 0, err
		}
	}
	return d.wrapped.Difference(minuend+minuendOffset, subtrahend+offset)
}

// zonedField reads and writes a UTC field in local time.
type zonedField struct {
	field.Base
	wrapped    field.DateTimeField
	zone       zone.Zone
	duration   field.DurationField
	rangeField field.DurationField
	leapField  field.DurationField
	timeField  bool
}

func newZonedField(f field.DateTimeField, z zone.Zone, duration, rangeField, leapField field.DurationField) *zonedField {
	zf := &zonedField{
		wrapped:    f,
		zone:       z,
		duration:   duration,
		rangeField: rangeField,
		leapField:  leapField,
		timeField:  useTimeArithmetic(duration),
	}
	zf.Base = field.MakeBase(f.Type(), zf)
	return zf
}

func (f *zonedField) local(instant int64) (int64, error) { return zone.UTCToLocal(f.zone, instant) }

func (f *zonedField) IsLenient() bool                         { return f.wrapped.IsLenient() }
func (f *zonedField) DurationField() field.DurationField      { return f.duration }
func (f *zonedField) RangeDurationField() field.DurationField { return f.rangeField }
func (f *zonedField) LeapDurationField() field.DurationField  { return f.leapField }
func (f *zonedField) MinimumValue() int                       { return f.wrapped.MinimumValue() }
func (f *zonedField) MaximumValue() int                       { return f.wrapped.MaximumValue() }

func (f *zonedField) Get(instant int64) (int, error) {
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	return f.wrapped.Get(local)
}

// Set fails with IllegalInstant when the requested value only exists in a
// gap, since no instant carries that local value.
func (f *zonedField) Set(instant int64, value int) (int64, error) {
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	if local, err = f.wrapped.Set(local, value); err != nil {
		return 0, err
	}
	result, err := zone.LocalToUTCNear(f.zone, local, instant)
	if err != nil {
		return 0, err
	}
	if got, err := f.Get(result); err != nil || got != value {
		e := chronoerrors.NewIllegalInstant(local, f.zone.ID())
		e.Field = f.Name()
		return 0, e
	}
	return result, nil
}

// viaLocal applies op to the local instant. Sub-day fields keep the offset of
// instant; longer fields resolve the offset again afterwards.
func (f *zonedField) viaLocal(instant int64, op func(int64) (int64, error)) (int64, error) {
	if f.timeField {
		offset, err := offsetToAdd(f.zone, instant)
		if err != nil {
			return 0, err
		}
		local, err := op(instant + offset)
		if err != nil {
			return 0, err
		}
		return local - offset, nil
	}
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	if local, err = op(local); err != nil {
		return 0, err
	}
	return zone.LocalToUTCNear(f.zone, local, instant)
}

func (f *zonedField) Add(instant int64, amount int64) (int64, error) {
	return f.viaLocal(instant, func(local int64) (int64, error) { return f.wrapped.Add(local, amount) })
}

func (f *zonedField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.viaLocal(instant, func(local int64) (int64, error) { return f.wrapped.AddWrapField(local, amount) })
}

func (f *zonedField) RoundFloor(instant int64) (int64, error) {
	return f.viaLocal(instant, f.wrapped.RoundFloor)
}

func (f *zonedField) RoundCeiling(instant int64) (int64, error) {
	return f.viaLocal(instant, f.wrapped.RoundCeiling)
}

func (f *zonedField) Difference64(minuend, subtrahend int64) (int64, error) {
	offset, err := offsetToAdd(f.zone, subtrahend)
	if err != nil {
		return 0, err
	}
	minuendOffset := offset
	if !f.timeField {
		if minuendOffset, err = offsetToAdd(f.zone, minuend); err != nil {
			return 0, err
		}
	}
	return f.wrapped.Difference64(minuend+minuendOffset, subtrahend+offset)
}

func (f *zonedField) Remainder(instant int64) (int64, error) {
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	return f.wrapped.Remainder(local)
}

func (f *zonedField) IsLeap(instant int64) bool {
	local, err := f.local(instant)
	return err == nil && f.wrapped.IsLeap(local)
}

func (f *zonedField) LeapAmount(instant int64) int {
	local, err := f.local(instant)
	if err != nil {
		return 0
	}
	return f.wrapped.LeapAmount(local)
}

func (f *zonedField) MinimumValueAt(instant int64) int {
	local, err := f.local(instant)
	if err != nil {
		return f.wrapped.MinimumValue()
	}
	return f.wrapped.MinimumValueAt(local)
}

func (f *zonedField) MaximumValueAt(instant int64) int {
	local, err := f.local(instant)
	if err != nil {
		return f.wrapped.MaximumValue()
	}
	return f.wrapped.MaximumValueAt(local)
}

func (f *zonedField) AsText(instant int64, tag language.Tag) (string, error) {
	local, err := f.local(instant)
	if err != nil {
		return "", err
	}
	return f.wrapped.AsText(local, tag)
}

func (f *zonedField) AsShortText(instant int64, tag language.Tag) (string, error) {
	local, err := f.local(instant)
	if err != nil {
		return "", err
	}
	return f.wrapped.AsShortText(local, tag)
}

func (f *zonedField) ValueText(value int, tag language.Tag) string {
	return f.wrapped.ValueText(value, tag)
}

func (f *zonedField) ValueShortText(value int, tag language.Tag) string {
	return f.wrapped.ValueShortText(value, tag)
}

func (f *zonedField) ParseText(text string, tag language.Tag) (int, error) {
	return f.wrapped.ParseText(text, tag)
}

func (f *zonedField) MaximumTextLength(tag language.Tag) int {
	return f.wrapped.MaximumTextLength(tag)
}

func (f *zonedField) MaximumShortTextLength(tag language.Tag) int {
	return f.wrapped.MaximumShortTextLength(tag)
}

// Partials carry no instant, so they bypass the zone.

func (f *zonedField) MinimumValuePartial(p field.Partial, values []int) int {
	return f.wrapped.MinimumValuePartial(p, values)
}

func (f *zonedField) MaximumValuePartial(p field.Partial, values []int) int {
	return f.wrapped.MaximumValuePartial(p, values)
}

func (f *zonedField) SetPartial(p field.Partial, index int, values []int, value int) ([]int, error) {
	return f.wrapped.SetPartial(p, index, values, value)
}

func (f *zonedField) AddPartial(p field.Partial, index int, values []int, amount int) ([]int, error) {
	return f.wrapped.AddPartial(p, index, values, amount)
}

func (f *zonedField) AddWrapPartial(p field.Partial, index int, values []int, amount int) ([]int, error) {
	return f.wrapped.AddWrapPartial(p, index, values, amount)
}

func (f *zonedField) AddWrapFieldPartial(p field.Partial, index int, values []int, amount int) ([]int, error) {
	return f.wrapped.AddWrapFieldPartial(p, index, values, amount)
}
