package field

import "testing"

func TestDateTimeFieldTypeUnits(t *testing.T) {
	tests := []struct {
		typ       DateTimeFieldType
		unit      DurationFieldType
		rangeUnit DurationFieldType
		hasRange  bool
	}{
		{typ: Era, unit: Eras},
		{typ: Year, unit: Years},
		{typ: Weekyear, unit: Weekyears},
		{typ: YearOfEra, unit: Years, rangeUnit: Eras, hasRange: true},
		{typ: YearOfCentury, unit: Years, rangeUnit: Centuries, hasRange: true},
		{typ: DayOfMonth, unit: Days, rangeUnit: Months, hasRange: true},
		{typ: WeekOfWeekyear, unit: Weeks, rangeUnit: Weekyears, hasRange: true},
		{typ: ClockhourOfHalfday, unit: Hours, rangeUnit: Halfdays, hasRange: true},
		{typ: MillisOfSecond, unit: Millis, rangeUnit: Seconds, hasRange: true},
	}
	for _, tt := range tests {
		if got := tt.typ.DurationType(); got != tt.unit {
			t.Fatalf("%s.DurationType() = %s, want %s", tt.typ, got, tt.unit)
		}
		got, ok := tt.typ.RangeDurationType()
		if ok != tt.hasRange || got != tt.rangeUnit {
			t.Fatalf("%s.RangeDurationType() = (%s, %v), want (%s, %v)", tt.typ, got, ok, tt.rangeUnit, tt.hasRange)
		}
	}
}

func TestTypeNamesRoundTrip(t *testing.T) {
	for _, typ := range DateTimeFieldTypes() {
		got, ok := ParseDateTimeFieldType(typ.String())
		if !ok || got != typ {
			t.Fatalf("ParseDateTimeFieldType(%q) = (%v, %v), want (%v, true)", typ.String(), got, ok, typ)
		}
	}
	for _, typ := range DurationFieldTypes() {
		got, ok := ParseDurationFieldType(typ.String())
		if !ok || got != typ {
			t.Fatalf("ParseDurationFieldType(%q) = (%v, %v), want (%v, true)", typ.String(), got, ok, typ)
		}
	}
	if _, ok := ParseDateTimeFieldType("fortnightOfYear"); ok {
		t.Fatalf("ParseDateTimeFieldType(fortnightOfYear) ok = true, want false")
	}
	if got := DateTimeFieldType(0).String(); got != "unknown" {
		t.Fatalf("DateTimeFieldType(0).String() = %q, want unknown", got)
	}
}
