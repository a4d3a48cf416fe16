package field

import (
	"github.com/jacoelho/chrono/zone"
)

// Strict rejects values outside the range valid at the instant, even when
// the wrapped field would roll them over.
type Strict struct {
	Delegated
}

// NewStrict returns a strict view of f. Strict fields are returned
// unchanged and lenient wrappers are unwrapped first.
func NewStrict(f DateTimeField) DateTimeField {
	if f == nil {
		return nil
	}
	switch v := f.(type) {
	case *Strict:
		return v
	case *Lenient:
		f = v.wrapped
	}
	if !f.IsSupported() {
		return f
	}
	d, _ := NewDelegated(f, nil, 0)
	return &Strict{Delegated: *d}
}

func (f *Strict) IsLenient() bool { return false }

func (f *Strict) Set(instant int64, value int) (int64, error) {
	if err := VerifyBounds(f.typ, value, f.MinimumValueAt(instant), f.MaximumValueAt(instant)); err != nil {
		return 0, err
	}
	return f.wrapped.Set(instant, value)
}

// Lenient accepts any value in Set by adding the difference from the
// current value, so day of month 32 in January becomes February 1.
type Lenient struct {
	Delegated
	zone     zone.Zone
	utcField DateTimeField
}

// NewLenient returns a lenient view of f. The arithmetic runs on utcField in
// local time, which must be the same field of the chronology's UTC view; z
// is the chronology's zone.
func NewLenient(f DateTimeField, z zone.Zone, utcField DateTimeField) DateTimeField {
	if f == nil {
		return nil
	}
	if s, ok := f.(*Strict); ok {
		f = s.wrapped
	}
	if f.IsLenient() {
		return f
	}
	if z == nil {
		z = zone.UTC
	}
	d, _ := NewDelegated(f, nil, 0)
	return &Lenient{Delegated: *d, zone: z, utcField: utcField}
}

func (f *Lenient) IsLenient() bool { return true }

func (f *Lenient) Set(instant int64, value int) (int64, error) {
	local, err := zone.UTCToLocal(f.zone, instant)
	if err != nil {
		return 0, err
	}
	current, err := f.Get(instant)
	if err != nil {
		return 0, err
	}
	diff, err := subChecked(int64(value), int64(current))
	if err != nil {
		return 0, err
	}
	if local, err = f.utcField.Add(local, diff); err != nil {
		return 0, err
	}
	return zone.LocalToUTCNear(f.zone, local, instant)
}
