package field

import (
	"golang.org/x/text/language"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

// Unsupported is a placeholder for fields a chronology lacks. Every
// operation fails except the bound queries, which report zero.
type Unsupported struct {
	typ      DateTimeFieldType
	duration DurationField
}

// NewUnsupported returns a placeholder reporting duration as its unit.
func NewUnsupported(t DateTimeFieldType, duration DurationField) *Unsupported {
	if duration == nil {
		duration = UnsupportedDuration(t.DurationType())
	}
	return &Unsupported{typ: t, duration: duration}
}

func (f *Unsupported) fail() error { return chronoerrors.NewUnsupported(f.typ.String()) }

func (f *Unsupported) Type() DateTimeFieldType { return f.typ }
func (f *Unsupported) Name() string            { return f.typ.String() }
func (f *Unsupported) IsSupported() bool       { return false }
func (f *Unsupported) IsLenient() bool         { return false }

func (f *Unsupported) Get(int64) (int, error)        { return 0, f.fail() }
func (f *Unsupported) Set(int64, int) (int64, error) { return 0, f.fail() }

func (f *Unsupported) Add(instant int64, amount int64) (int64, error) {
	return f.duration.Add(instant, amount)
}

func (f *Unsupported) AddWrapField(int64, int) (int64, error) { return 0, f.fail() }

func (f *Unsupported) Difference(minuend, subtrahend int64) (int, error) {
	d, err := f.duration.Difference(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return toInt(f.typ, d)
}

func (f *Unsupported) Difference64(minuend, subtrahend int64) (int64, error) {
	return f.duration.Difference(minuend, subtrahend)
}

func (f *Unsupported) IsLeap(int64) bool                 { return false }
func (f *Unsupported) LeapAmount(int64) int              { return 0 }
func (f *Unsupported) LeapDurationField() DurationField  { return nil }
func (f *Unsupported) DurationField() DurationField      { return f.duration }
func (f *Unsupported) RangeDurationField() DurationField { return nil }

func (f *Unsupported) MinimumValue() int        { return 0 }
func (f *Unsupported) MinimumValueAt(int64) int { return 0 }
func (f *Unsupported) MaximumValue() int        { return 0 }
func (f *Unsupported) MaximumValueAt(int64) int { return 0 }

func (f *Unsupported) RoundFloor(int64) (int64, error)       { return 0, f.fail() }
func (f *Unsupported) RoundCeiling(int64) (int64, error)     { return 0, f.fail() }
func (f *Unsupported) RoundHalfFloor(int64) (int64, error)   { return 0, f.fail() }
func (f *Unsupported) RoundHalfCeiling(int64) (int64, error) { return 0, f.fail() }
func (f *Unsupported) RoundHalfEven(int64) (int64, error)    { return 0, f.fail() }
func (f *Unsupported) Remainder(int64) (int64, error)        { return 0, f.fail() }

func (f *Unsupported) AsText(int64, language.Tag) (string, error)      { return "", f.fail() }
func (f *Unsupported) AsShortText(int64, language.Tag) (string, error) { return "", f.fail() }
func (f *Unsupported) ValueText(int, language.Tag) string              { return "" }
func (f *Unsupported) ValueShortText(int, language.Tag) string         { return "" }
func (f *Unsupported) ParseText(string, language.Tag) (int, error)     { return 0, f.fail() }

func (f *Unsupported) SetText(int64, string, language.Tag) (int64, error) { return 0, f.fail() }

func (f *Unsupported) MaximumTextLength(language.Tag) int      { return 0 }
func (f *Unsupported) MaximumShortTextLength(language.Tag) int { return 0 }

func (f *Unsupported) MinimumValuePartial(Partial, []int) int { return 0 }
func (f *Unsupported) MaximumValuePartial(Partial, []int) int { return 0 }

func (f *Unsupported) SetPartial(Partial, int, []int, int) ([]int, error) {
	return nil, f.fail()
}

func (f *Unsupported) AddPartial(Partial, int, []int, int) ([]int, error) {
	return nil, f.fail()
}

func (f *Unsupported) AddWrapPartial(Partial, int, []int, int) ([]int, error) {
	return nil, f.fail()
}

func (f *Unsupported) AddWrapFieldPartial(Partial, int, []int, int) ([]int, error) {
	return nil, f.fail()
}
