package chrono

import (
	chronoerrors "github.com/jacoelho/chrono/errors"
	"github.com/jacoelho/chrono/field"
)

// fieldSet is a partial made of the fields of one chronology.
type fieldSet []field.DateTimeField

func (s fieldSet) Size() int                           { return len(s) }
func (s fieldSet) Field(index int) field.DateTimeField { return s[index] }

func (s fieldSet) IndexOf(t field.DateTimeFieldType) int {
	for i, f := range s {
		if f.Type() == t {
			return i
		}
	}
	return -1
}

// PartialOf returns the partial of the given field types of c. Types must
// be listed largest first, as in year, monthOfYear, dayOfMonth.
func PartialOf(c Chronology, types ...field.DateTimeFieldType) (field.Partial, error) {
	out := make(fieldSet, len(types))
	for i, t := range types {
		if !t.Valid() {
			return nil, chronoerrors.NewInvalidArgument("invalid field type %d", t)
		}
		out[i] = c.Field(t)
		if i == 0 {
			continue
		}
		if err := checkOrder(out[i-1], out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkOrder fails unless larger comes strictly before smaller, comparing
// units first and ranges second.
func checkOrder(larger, smaller field.DateTimeField) error {
	switch cmp := field.CompareDuration(larger.DurationField(), smaller.DurationField()); {
	case cmp < 0:
		return chronoerrors.NewInvalidArgument("field types must be in order largest to smallest: %s < %s", larger.Type(), smaller.Type())
	case cmp > 0:
		return nil
	}
	lr, sr := larger.RangeDurationField(), smaller.RangeDurationField()
	switch {
	case lr == nil && sr == nil:
	case lr == nil:
		return nil
	case sr == nil:
		return chronoerrors.NewInvalidArgument("field types must be in order largest to smallest: %s < %s", larger.Type(), smaller.Type())
	default:
		switch cmp := field.CompareDuration(lr, sr); {
		case cmp < 0:
			return chronoerrors.NewInvalidArgument("field types must be in order largest to smallest: %s < %s", larger.Type(), smaller.Type())
		case cmp > 0:
			return nil
		}
	}
	return chronoerrors.NewInvalidArgument("field types must not be duplicated: %s and %s", larger.Type(), smaller.Type())
}

// ValidatePartial checks every value of a partial against the bounds of the
// matching field of c, first on its own and then given the other values.
func ValidatePartial(c Chronology, p field.Partial, values []int) error {
	if err := checkPartial(p, values); err != nil {
		return err
	}
	fs := c.Fields()
	for i := range p.Size() {
		f := fs.Field(p.Field(i).Type())
		if err := field.VerifyBounds(f.Type(), values[i], f.MinimumValue(), f.MaximumValue()); err != nil {
			return err
		}
	}
	for i := range p.Size() {
		f := fs.Field(p.Field(i).Type())
		if err := field.VerifyBounds(f.Type(), values[i], f.MinimumValuePartial(p, values), f.MaximumValuePartial(p, values)); err != nil {
			return err
		}
	}
	return nil
}

// SetPartial applies each value of a partial to instant, largest field
// first, using the fields of c.
func SetPartial(c Chronology, p field.Partial, values []int, instant int64) (int64, error) {
	if err := checkPartial(p, values); err != nil {
		return 0, err
	}
	fs := c.Fields()
	return partialInstant(&fs, p, values, instant)
}

// PartialValues reads the fields of a partial at instant.
func PartialValues(c Chronology, p field.Partial, instant int64) ([]int, error) {
	fs := c.Fields()
	return partialValues(&fs, p, instant)
}

func checkPartial(p field.Partial, values []int) error {
	if p == nil {
		return chronoerrors.NewInvalidArgument("the partial must not be nil")
	}
	if len(values) != p.Size() {
		return chronoerrors.NewInvalidArgument("the partial has %d fields but %d values", p.Size(), len(values))
	}
	return nil
}

func partialInstant(fs *Fields, p field.Partial, values []int, instant int64) (int64, error) {
	var err error
	for i := range p.Size() {
		if instant, err = fs.Field(p.Field(i).Type()).Set(instant, values[i]); err != nil {
			return 0, err
		}
	}
	return instant, nil
}

func partialValues(fs *Fields, p field.Partial, instant int64) ([]int, error) {
	out := make([]int, p.Size())
	for i := range out {
		v, err := fs.Field(p.Field(i).Type()).Get(instant)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
