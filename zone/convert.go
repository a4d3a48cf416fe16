package zone

import (
	"math"

	chronoerrors "github.com/jacoelho/chrono/errors"
)

const (
	minInstant = math.MinInt64
	maxInstant = math.MaxInt64
)

// OffsetFromLocal returns the offset to subtract from a local instant to get UTC.
//
// In a gap the offset before the transition is used, which shifts the wall
// time forward. In an overlap the earlier (pre-transition) offset wins.
func OffsetFromLocal(z Zone, local int64) int {
	offsetLocal := z.Offset(local)
	adjusted := local - int64(offsetLocal)
	offsetAdjusted := z.Offset(adjusted)
	if offsetLocal != offsetAdjusted {
		if offsetLocal-offsetAdjusted < 0 {
			nextLocal := z.NextTransition(adjusted)
			if nextLocal == local-int64(offsetLocal) {
				nextLocal = maxInstant
			}
			nextAdjusted := z.NextTransition(local - int64(offsetAdjusted))
			if nextAdjusted == local-int64(offsetAdjusted) {
				nextAdjusted = maxInstant
			}
			if nextLocal != nextAdjusted {
				return offsetLocal
			}
		}
	} else if offsetLocal >= 0 {
		prev := z.PreviousTransition(adjusted)
		if prev < adjusted {
			offsetPrev := z.Offset(prev)
			diff := int64(offsetPrev - offsetLocal)
			if adjusted-prev <= diff {
				return offsetPrev
			}
		}
	}
	return offsetAdjusted
}

// UTCToLocal adds the zone offset to a UTC instant.
func UTCToLocal(z Zone, instant int64) (int64, error) {
	offset := int64(z.Offset(instant))
	local := instant + offset
	if (instant^local) < 0 && (instant^offset) >= 0 {
		return 0, chronoerrors.NewOverflow("adding time zone offset caused overflow")
	}
	return local, nil
}

// LocalToUTC converts a local instant to UTC. When strict is set, local
// instants in a gap fail with an IllegalInstant error; otherwise the offset
// before the gap is used.
func LocalToUTC(z Zone, local int64, strict bool) (int64, error) {
	offsetLocal := z.Offset(local)
	offset := z.Offset(local - int64(offsetLocal))
	if offsetLocal != offset && (strict || offsetLocal < 0) {
		nextLocal := z.NextTransition(local - int64(offsetLocal))
		if nextLocal == local-int64(offsetLocal) {
			nextLocal = maxInstant
		}
		nextAdjusted := z.NextTransition(local - int64(offset))
		if nextAdjusted == local-int64(offset) {
			nextAdjusted = maxInstant
		}
		if nextLocal != nextAdjusted {
			if strict {
				return 0, chronoerrors.NewIllegalInstant(local, z.ID())
			}
			offset = offsetLocal
		}
	}
	utc := local - int64(offset)
	if (local^utc) < 0 && (local^int64(offset)) < 0 {
		return 0, chronoerrors.NewOverflow("subtracting time zone offset caused overflow")
	}
	return utc, nil
}

// LocalToUTCNear converts a local instant to UTC, preferring the offset in
// effect at original so that field updates away from a transition keep
// their offset.
func LocalToUTCNear(z Zone, local int64, original int64) (int64, error) {
	offsetOriginal := int64(z.Offset(original))
	utc := local - offsetOriginal
	if int64(z.Offset(utc)) == offsetOriginal {
		return utc, nil
	}
	return LocalToUTC(z, local, false)
}
