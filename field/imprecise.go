package field

// Imprecise is the base of fields whose unit length varies, such as months
// and years. It owns a duration field that routes back to the embedding
// field's Add and Difference64, so the pair always agree.
//
// The embedding type must implement Add itself.
type Imprecise struct {
	Base
	unit     int64
	duration *linkedDuration
}

// MakeImprecise binds an Imprecise to the field embedding it. unitMillis is
// the average unit length.
func MakeImprecise(t DateTimeFieldType, unitMillis int64, self DateTimeField) Imprecise {
	return Imprecise{
		Base:     MakeBase(t, self),
		unit:     unitMillis,
		duration: &linkedDuration{typ: t.DurationType(), unit: unitMillis, owner: self},
	}
}

func (f *Imprecise) DurationField() DurationField { return f.duration }
func (f *Imprecise) UnitMillis() int64            { return f.unit }

// Difference64 estimates from the average unit length and then walks to the
// exact count.
func (f *Imprecise) Difference64(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		d, err := f.self.Difference64(subtrahend, minuend)
		return -d, err
	}
	diff := (minuend - subtrahend) / f.unit
	at, err := f.self.Add(subtrahend, diff)
	if err != nil {
		return 0, err
	}
	switch {
	case at < minuend:
		for {
			diff++
			if at, err = f.self.Add(subtrahend, diff); err != nil {
				return 0, err
			}
			if at > minuend {
				break
			}
		}
		diff--
	case at > minuend:
		for {
			diff--
			if at, err = f.self.Add(subtrahend, diff); err != nil {
				return 0, err
			}
			if at <= minuend {
				break
			}
		}
	}
	return diff, nil
}

type linkedDuration struct {
	typ   DurationFieldType
	unit  int64
	owner DateTimeField
}

func (d *linkedDuration) Type() DurationFieldType { return d.typ }
func (d *linkedDuration) Name() string            { return d.typ.String() }
func (d *linkedDuration) IsSupported() bool       { return true }
func (d *linkedDuration) IsPrecise() bool         { return false }
func (d *linkedDuration) UnitMillis() int64       { return d.unit }

func (d *linkedDuration) Value(duration int64) (int64, error) {
	return duration / d.unit, nil
}

func (d *linkedDuration) ValueAt(duration, instant int64) (int64, error) {
	end, err := addChecked(instant, duration)
	if err != nil {
		return 0, err
	}
	return d.owner.Difference64(end, instant)
}

func (d *linkedDuration) Millis(value int64) (int64, error) {
	return mulChecked(value, d.unit)
}

func (d *linkedDuration) MillisAt(value, instant int64) (int64, error) {
	end, err := d.owner.Add(instant, value)
	if err != nil {
		return 0, err
	}
	return subChecked(end, instant)
}

func (d *linkedDuration) Add(instant, value int64) (int64, error) {
	return d.owner.Add(instant, value)
}

func (d *linkedDuration) Difference(minuend, subtrahend int64) (int64, error) {
	return d.owner.Difference64(minuend, subtrahend)
}
