package chrono

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/zone"
)

func TestConcurrentLookupsShareInstances(t *testing.T) {
	ids := []string{"America/New_York", "Europe/Lisbon", "Asia/Kolkata", "Australia/Sydney"}
	combos := len(ids) * len(Kinds())
	workers := 2 * combos
	results := make([]Chronology, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			n := i % combos
			z, err := zone.ForID(ids[n%len(ids)])
			if err != nil {
				return err
			}
			c, err := New(Kinds()[n/len(ids)], InZone(z))
			if err != nil {
				return err
			}
			if again := c.WithUTC().WithZone(z); again != c {
				return fmt.Errorf("%s: WithZone returned a new instance", c)
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("lookup error = %v", err)
	}
	for i := range combos {
		if results[i] != results[i+combos] {
			t.Fatalf("workers %d and %d got distinct instances of %s", i, i+combos, results[i])
		}
	}
}

func TestConcurrentFieldAccess(t *testing.T) {
	c := ISO(mustZone(t, "Europe/Berlin"))
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	var g errgroup.Group
	g.SetLimit(4)
	for w := range 8 {
		g.Go(func() error {
			start := utcMillis(1980+w*5, time.January, 1, 0, 0)
			for instant := start; instant < start+5*365*MillisPerDay; instant += 11 * MillisPerHour {
				tm := time.UnixMilli(instant).In(loc)
				day, err := c.Field(field.DayOfMonth).Get(instant)
				if err != nil {
					return err
				}
				hour, err := c.Field(field.HourOfDay).Get(instant)
				if err != nil {
					return err
				}
				if day != tm.Day() || hour != tm.Hour() {
					return fmt.Errorf("%s: got day %d hour %d", tm, day, hour)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("field access error = %v", err)
	}
}
