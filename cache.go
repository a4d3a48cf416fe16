package chrono

import (
	"sync"

	"github.com/jacoelho/chrono/zone"
)

// cacheKey identifies a configured calendar system in one zone.
type cacheKey struct {
	kind    Kind
	zoneID  string
	minDays int
	cutover int64
}

// instances holds every chronology handed out by the constructors. Entries
// are never evicted; there is one per calendar configuration and zone in use.
var instances sync.Map

// cached returns the instance for key, building it on a miss. Concurrent
// misses may build twice; the first stored instance wins.
func cached(key cacheKey, build func() (Chronology, error)) (Chronology, error) {
	if key.zoneID == "" {
		key.zoneID = zone.UTC.ID()
	}
	if c, ok := instances.Load(key); ok {
		return c.(Chronology), nil
	}
	c, err := build()
	if err != nil {
		return nil, err
	}
	actual, _ := instances.LoadOrStore(key, c)
	return actual.(Chronology), nil
}

// keyed is implemented by the UTC chronologies owning a cache entry.
type keyed interface {
	instanceKey() (cacheKey, bool)
}

func (b *basic) instanceKey() (cacheKey, bool) {
	return cacheKey{kind: b.kind, minDays: b.minDays}, !b.bounded
}

// zonedInstance returns utc evaluated in z, shared per zone when utc is one
// of the cached calendar systems.
func zonedInstance(utc Chronology, z zone.Zone) Chronology {
	z = zoneOrDefault(z)
	if zone.Equal(z, zone.UTC) {
		return utc
	}
	k, ok := utc.(keyed)
	if !ok {
		return newZoned(utc, z)
	}
	key, ok := k.instanceKey()
	if !ok {
		return newZoned(utc, z)
	}
	key.zoneID = z.ID()
	c, _ := cached(key, func() (Chronology, error) { return newZoned(utc, z), nil })
	return c
}
