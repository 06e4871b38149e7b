package booking

import "time"

// overlaps is the canonical half-open interval test: [aStart, aEnd) and
// [bStart, bEnd) intersect iff aStart < bEnd and bStart < aEnd. A stay
// checking in exactly when another checks out does not conflict.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// legacyConflict reproduces the predicate the previous system used: three
// sub-cases with inclusive bounds instead of the general overlap test. Kept
// for parity comparison only; the repository query uses the canonical test.
// The inclusive bounds make it flag back-to-back stays (checkout == checkin)
// as conflicts, which the canonical test correctly allows.
func legacyConflict(newIn, newOut, exIn, exOut time.Time) bool {
	inRange := func(t, lo, hi time.Time) bool {
		return !t.Before(lo) && !t.After(hi)
	}

	// existing check-in falls inside the new range
	if inRange(exIn, newIn, newOut) {
		return true
	}
	// existing check-out falls inside the new range
	if inRange(exOut, newIn, newOut) {
		return true
	}
	// existing range fully contains the new range
	if !exIn.After(newIn) && !exOut.Before(newOut) {
		return true
	}
	return false
}
