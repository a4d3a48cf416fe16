package num

import (
	"math"
	"testing"
)

func TestAddOverflow(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
		ok   bool
	}{
		{name: "small", a: 2, b: 3, want: 5, ok: true},
		{name: "negative", a: -2, b: -3, want: -5, ok: true},
		{name: "max", a: math.MaxInt64, b: 1, ok: false},
		{name: "min", a: math.MinInt64, b: -1, ok: false},
		{name: "mixed signs", a: math.MaxInt64, b: math.MinInt64, want: -1, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Add(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Add(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubOverflow(t *testing.T) {
	if _, ok := Sub(int64(math.MinInt64), 1); ok {
		t.Fatalf("Sub(MinInt64, 1) ok = true, want false")
	}
	if got, ok := Sub(int64(10), 15); !ok || got != -5 {
		t.Fatalf("Sub(10, 15) = (%d, %v), want (-5, true)", got, ok)
	}
	if _, ok := Sub(int32(math.MaxInt32), -1); ok {
		t.Fatalf("Sub(MaxInt32, -1) ok = true, want false")
	}
}

func TestMul64(t *testing.T) {
	if got, ok := Mul64(86400000, 365); !ok || got != 31536000000 {
		t.Fatalf("Mul64() = (%d, %v), want (31536000000, true)", got, ok)
	}
	if _, ok := Mul64(math.MaxInt64/2+1, 2); ok {
		t.Fatalf("Mul64 overflow ok = true, want false")
	}
	if _, ok := Mul64(math.MinInt64, -1); ok {
		t.Fatalf("Mul64(MinInt64, -1) ok = true, want false")
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b    int
		div, md int
	}{
		{a: 7, b: 3, div: 2, md: 1},
		{a: -7, b: 3, div: -3, md: 2},
		{a: -6, b: 3, div: -2, md: 0},
		{a: 0, b: 5, div: 0, md: 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := FloorMod(tt.a, tt.b); got != tt.md {
			t.Fatalf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.md)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		value, lo, hi, want int64
	}{
		{value: 15, lo: 1, hi: 12, want: 3},
		{value: 0, lo: 1, hi: 12, want: 12},
		{value: -12, lo: 1, hi: 12, want: 12},
		{value: -11, lo: 1, hi: 12, want: 1},
		{value: 59, lo: 0, hi: 59, want: 59},
		{value: 60, lo: 0, hi: 59, want: 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.value, tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Wrap(%d, %d, %d) = %d, want %d", tt.value, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestToInt32(t *testing.T) {
	if _, ok := ToInt32(math.MaxInt32 + 1); ok {
		t.Fatalf("ToInt32(MaxInt32+1) ok = true, want false")
	}
	if got, ok := ToInt32(-5); !ok || got != -5 {
		t.Fatalf("ToInt32(-5) = (%d, %v), want (-5, true)", got, ok)
	}
}
