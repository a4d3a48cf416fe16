package zone

import (
	"errors"
	"testing"
	"time"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

const hour = int64(time.Hour / time.Millisecond)

func localMillis(year int, month time.Month, day, h, m int) int64 {
	return time.Date(year, month, day, h, m, 0, 0, time.UTC).UnixMilli()
}

func mustZone(t *testing.T, id string) Zone {
	t.Helper()
	z, err := ForID(id)
	if err != nil {
		t.Fatalf("ForID(%q) error = %v", id, err)
	}
	return z
}

func TestForIDFixedOffsets(t *testing.T) {
	tests := []struct {
		id     string
		wantID string
		offset int
	}{
		{id: "+02:00", wantID: "+02:00", offset: 2 * int(hour)},
		{id: "-05:30", wantID: "-05:30", offset: -(5*int(hour) + 30*60000)},
		{id: "+00:00", wantID: "UTC", offset: 0},
		{id: "Z", wantID: "UTC", offset: 0},
	}
	for _, tt := range tests {
		z := mustZone(t, tt.id)
		if z.ID() != tt.wantID {
			t.Fatalf("ForID(%q).ID() = %q, want %q", tt.id, z.ID(), tt.wantID)
		}
		if got := z.Offset(0); got != tt.offset {
			t.Fatalf("ForID(%q).Offset(0) = %d, want %d", tt.id, got, tt.offset)
		}
		if !z.IsFixed() {
			t.Fatalf("ForID(%q).IsFixed() = false, want true", tt.id)
		}
	}
}

func TestForIDRejectsGarbage(t *testing.T) {
	for _, id := range []string{"", "+25:00", "+1:00", "Not/AZone"} {
		if _, err := ForID(id); !errors.Is(err, chronoerrors.InvalidArgument) {
			t.Fatalf("ForID(%q) error = %v, want InvalidArgument", id, err)
		}
	}
}

func TestForIDCachesZones(t *testing.T) {
	a := mustZone(t, "Europe/Paris")
	b := mustZone(t, "Europe/Paris")
	if a != b {
		t.Fatalf("ForID returned distinct zones for the same id")
	}
}

func TestLocationOffsets(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	if got := ny.Offset(winter); got != int(-5*hour) {
		t.Fatalf("Offset(winter) = %d, want %d", got, -5*hour)
	}
	if got := ny.Offset(summer); got != int(-4*hour) {
		t.Fatalf("Offset(summer) = %d, want %d", got, -4*hour)
	}
	if got := ny.StandardOffset(summer); got != int(-5*hour) {
		t.Fatalf("StandardOffset(summer) = %d, want %d", got, -5*hour)
	}
	if ny.IsFixed() {
		t.Fatalf("IsFixed() = true, want false")
	}
}

func TestTransitions(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	springForward := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC).UnixMilli()
	before := springForward - 10*hour
	if got := ny.NextTransition(before); got != springForward {
		t.Fatalf("NextTransition() = %d, want %d", got, springForward)
	}
	if got := ny.PreviousTransition(springForward + hour); got != springForward-1 {
		t.Fatalf("PreviousTransition() = %d, want %d", got, springForward-1)
	}
	if got := UTC.NextTransition(before); got != before {
		t.Fatalf("UTC.NextTransition() = %d, want %d", got, before)
	}
}

func TestOffsetFromLocalGapShiftsForward(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	local := localMillis(2024, time.March, 10, 2, 30)
	if got := OffsetFromLocal(ny, local); got != int(-5*hour) {
		t.Fatalf("OffsetFromLocal(gap) = %d, want %d", got, -5*hour)
	}
	utc, err := LocalToUTC(ny, local, false)
	if err != nil {
		t.Fatalf("LocalToUTC() error = %v", err)
	}
	wall := time.UnixMilli(utc).In(time.UTC).Add(-4 * time.Hour)
	if wall.Hour() != 3 || wall.Minute() != 30 {
		t.Fatalf("wall time = %s, want 03:30", wall.Format("15:04"))
	}
	if _, err := LocalToUTC(ny, local, true); !errors.Is(err, chronoerrors.IllegalInstant) {
		t.Fatalf("LocalToUTC(strict) error = %v, want IllegalInstant", err)
	}
}

func TestOffsetFromLocalOverlapPrefersEarlier(t *testing.T) {
	tests := []struct {
		id    string
		local int64
		want  int64
	}{
		{id: "America/New_York", local: localMillis(2024, time.November, 3, 1, 30), want: -4 * hour},
		{id: "Europe/Paris", local: localMillis(2024, time.October, 27, 2, 30), want: 2 * hour},
	}
	for _, tt := range tests {
		z := mustZone(t, tt.id)
		if got := OffsetFromLocal(z, tt.local); int64(got) != tt.want {
			t.Fatalf("%s OffsetFromLocal(overlap) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestUTCToLocalOverflow(t *testing.T) {
	z, err := Fixed(int(hour))
	if err != nil {
		t.Fatalf("Fixed() error = %v", err)
	}
	if _, err := UTCToLocal(z, 1<<63-1); !errors.Is(err, chronoerrors.ArithmeticOverflow) {
		t.Fatalf("UTCToLocal(max) error = %v, want ArithmeticOverflow", err)
	}
	got, err := UTCToLocal(z, 0)
	if err != nil || got != hour {
		t.Fatalf("UTCToLocal(0) = (%d, %v), want (%d, nil)", got, err, hour)
	}
}

func TestLocalToUTCNearKeepsOriginalOffset(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	// 01:30 local on the fall-back day exists twice; stay on the standard side
	// when the original instant was already on it.
	original := time.Date(2024, 11, 3, 6, 45, 0, 0, time.UTC).UnixMilli()
	local := localMillis(2024, time.November, 3, 1, 30)
	got, err := LocalToUTCNear(ny, local, original)
	if err != nil {
		t.Fatalf("LocalToUTCNear() error = %v", err)
	}
	if want := local + 5*hour; got != want {
		t.Fatalf("LocalToUTCNear() = %d, want %d", got, want)
	}
}
