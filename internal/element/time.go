package element

import (
	"fmt"
	"time"

	"github.com/ordkv/tuplekey/errs"
)

// Timestamps pack a millisecond epoch and a UTC offset (in units of 15
// minutes) into a single composite integer: (epochMs << 7) | offsetBits.
// offsetBits = 64 + offsetSeconds/900 (truncated toward zero). Offsets
// outside [-31, 32] quarter-hours are rejected, so offsetBits lies in
// [33, 96].
const (
	offsetBias     = 64
	offsetUnitSecs = 15 * 60
	minOffsetUnits = -31
	maxOffsetUnits = 32
	timeShift      = 7
)

// CompositeTime packs t's millisecond-truncated instant and fixed UTC
// offset into the single integer the wire format stores. The returned
// magnitude is always non-negative; the caller selects KindTime or
// KindNegTime (and the XOR mask) based on the sign of the millisecond
// epoch, per spec section 4.3.
func CompositeTime(t time.Time) (magnitude uint64, negative bool, err error) {
	_, offsetSec := t.Zone()
	if offsetSec < minOffsetUnits*offsetUnitSecs || offsetSec > maxOffsetUnits*offsetUnitSecs {
		return 0, false, fmt.Errorf("%w: utc offset %ds is outside [-31,32] quarter-hours", errs.ErrOutOfRange, offsetSec)
	}
	units := offsetSec / offsetUnitSecs

	epochMs := t.UnixMilli()
	negative = epochMs < 0
	absMs := epochMs
	if negative {
		absMs = -absMs
	}

	offsetBits := uint64(offsetBias + units)
	magnitude = (uint64(absMs) << timeShift) | offsetBits

	return magnitude, negative, nil
}

// DecomposeTime reverses CompositeTime: given the magnitude stored on the
// wire and whether it was encoded under KindNegTime, it reconstructs a
// fixed-offset time.Time truncated to millisecond precision.
func DecomposeTime(magnitude uint64, negative bool) time.Time {
	offsetBits := magnitude & 0x7F
	absMs := int64(magnitude >> timeShift)
	epochMs := absMs
	if negative {
		epochMs = -absMs
	}

	units := int(offsetBits) - offsetBias
	offsetSec := units * offsetUnitSecs

	return time.UnixMilli(epochMs).In(time.FixedZone("", offsetSec))
}
