package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    Error
	}{
		{
			name: "message only",
			e:    Error{Code: ErrDateOutOfRange, Message: "instant is below the supported minimum"},
			want: "[date-out-of-range] instant is below the supported minimum",
		},
		{
			name: "with field",
			e:    Error{Code: ErrInvalidArgument, Message: "eras field is unsupported", Field: "eras"},
			want: "[invalid-argument] eras field is unsupported (field: eras)",
		},
		{
			name: "with bounds",
			e: Error{
				Code:    ErrFieldValueOutOfRange,
				Message: "bad value",
				Field:   "dayOfMonth",
				Actual:  "31",
				Lower:   "1",
				Upper:   "30",
			},
			want: "[field-value-out-of-range] bad value (field: dayOfMonth) (actual: 31) (expected: [1, 30])",
		},
		{
			name: "lower only",
			e:    Error{Code: ErrFieldValueOutOfRange, Message: "bad value", Lower: "1"},
			want: "[field-value-out-of-range] bad value (expected: >= 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFieldValue(t *testing.T) {
	e := NewFieldValue("monthOfYear", 13, 1, 12)
	if e.Code != ErrFieldValueOutOfRange {
		t.Fatalf("Code = %q, want %q", e.Code, ErrFieldValueOutOfRange)
	}
	if e.Actual != "13" || e.Lower != "1" || e.Upper != "12" {
		t.Fatalf("bounds = (%s, %s, %s), want (13, 1, 12)", e.Actual, e.Lower, e.Upper)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("set year: %w", NewFieldValue("year", 0, 1, 9999))
	if !errors.Is(err, FieldValueOutOfRange) {
		t.Fatalf("errors.Is(FieldValueOutOfRange) = false, want true")
	}
	if errors.Is(err, DateOutOfRange) {
		t.Fatalf("errors.Is(DateOutOfRange) = true, want false")
	}
}

func TestCodeOf(t *testing.T) {
	if _, ok := CodeOf(nil); ok {
		t.Fatalf("CodeOf(nil) ok = true, want false")
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("CodeOf(plain) ok = true, want false")
	}
	code, ok := CodeOf(fmt.Errorf("wrap: %w", NewOverflow("add")))
	if !ok || code != ErrArithmeticOverflow {
		t.Fatalf("CodeOf() = (%q, %v), want (%q, true)", code, ok, ErrArithmeticOverflow)
	}
}

func TestNilErrorString(t *testing.T) {
	var e *Error
	if got := e.Error(); got != "chrono <nil>" {
		t.Fatalf("Error() = %q, want %q", got, "chrono <nil>")
	}
}
