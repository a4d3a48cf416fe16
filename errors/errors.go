package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorCode classifies a chronology failure.
type ErrorCode string

const (
	// ErrInvalidArgument indicates an unsupported field, a nil collaborator or a malformed input.
	ErrInvalidArgument ErrorCode = "invalid-argument"
	// ErrFieldValueOutOfRange indicates a value outside the bounds of a field.
	ErrFieldValueOutOfRange ErrorCode = "field-value-out-of-range"
	// ErrDateOutOfRange indicates an instant outside the range supported by a chronology.
	ErrDateOutOfRange ErrorCode = "date-out-of-range"
	// ErrArithmeticOverflow indicates the 64-bit millisecond range was exceeded.
	ErrArithmeticOverflow ErrorCode = "arithmetic-overflow"
	// ErrIllegalInstant indicates a local date-time that falls in a time zone offset gap.
	ErrIllegalInstant ErrorCode = "illegal-instant"
)

// Sentinels for use with errors.Is. Matching is by code only.
var (
	InvalidArgument      = &Error{Code: ErrInvalidArgument}
	FieldValueOutOfRange = &Error{Code: ErrFieldValueOutOfRange}
	DateOutOfRange       = &Error{Code: ErrDateOutOfRange}
	ArithmeticOverflow   = &Error{Code: ErrArithmeticOverflow}
	IllegalInstant       = &Error{Code: ErrIllegalInstant}
)

// Error describes a failed field or chronology operation.
//
//nolint:errname // public API name mirrors the package name.
type Error struct {
	Code    ErrorCode
	Message string
	Field   string
	Actual  string
	Lower   string
	Upper   string
}

// Error formats the failure for display, including code, message, and context.
func (e *Error) Error() string {
	if e == nil {
		return "chrono <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Field != "" {
		b.WriteString(fmt.Sprintf(" (field: %s)", e.Field))
	}
	if e.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", e.Actual))
	}
	switch {
	case e.Lower != "" && e.Upper != "":
		b.WriteString(fmt.Sprintf(" (expected: [%s, %s])", e.Lower, e.Upper))
	case e.Lower != "":
		b.WriteString(fmt.Sprintf(" (expected: >= %s)", e.Lower))
	case e.Upper != "":
		b.WriteString(fmt.Sprintf(" (expected: <= %s)", e.Upper))
	}
	return b.String()
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// NewFieldValue builds a FieldValueOutOfRange error for a numeric value and its bounds.
func NewFieldValue(field string, value, lower, upper int64) *Error {
	return &Error{
		Code:    ErrFieldValueOutOfRange,
		Message: fmt.Sprintf("value %d for %s must be in the range [%d,%d]", value, field, lower, upper),
		Field:   field,
		Actual:  strconv.FormatInt(value, 10),
		Lower:   strconv.FormatInt(lower, 10),
		Upper:   strconv.FormatInt(upper, 10),
	}
}

// NewFieldValuef builds a FieldValueOutOfRange error with a free-form reason.
func NewFieldValuef(field, actual, format string, args ...any) *Error {
	return &Error{
		Code:    ErrFieldValueOutOfRange,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
		Actual:  actual,
	}
}

// NewDateOutOfRange builds a DateOutOfRange error.
func NewDateOutOfRange(format string, args ...any) *Error {
	return &Error{Code: ErrDateOutOfRange, Message: fmt.Sprintf(format, args...)}
}

// NewOverflow builds an ArithmeticOverflow error naming the failed operation.
func NewOverflow(format string, args ...any) *Error {
	return &Error{Code: ErrArithmeticOverflow, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidArgument builds an InvalidArgument error.
func NewInvalidArgument(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewUnsupported reports an operation on a field the chronology does not support.
func NewUnsupported(field string) *Error {
	return &Error{Code: ErrInvalidArgument, Message: field + " field is unsupported", Field: field}
}

// NewIllegalInstant reports a local instant that does not exist in the zone.
func NewIllegalInstant(local int64, zoneID string) *Error {
	return &Error{
		Code:    ErrIllegalInstant,
		Message: fmt.Sprintf("illegal instant due to time zone offset transition (daylight savings time 'gap'): %d (%s)", local, zoneID),
		Actual:  strconv.FormatInt(local, 10),
	}
}

// CodeOf extracts the code of a chronology error.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) || e == nil {
		return "", false
	}
	return e.Code, true
}

// As extracts the chronology error wrapped by err.
func As(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) || e == nil {
		return nil, false
	}
	return e, true
}
