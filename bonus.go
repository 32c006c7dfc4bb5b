package fuzzymatch

// Bonus scoring, recovery adjustments, and final score composition for the
// edit-distance pipeline (C7/C8).

type bonusBreakdown struct {
	wordBoundary float64
	consecutive  float64
	gapPenalty   float64
	firstMatch   float64
}

func (b bonusBreakdown) total() float64 {
	return b.wordBoundary + b.consecutive - b.gapPenalty + b.firstMatch
}

// computeBonuses scores a set of match positions against the boundary mask
// per §4.6: word-boundary bonus per boundary-aligned position, consecutive
// bonus per adjacent pair, gap penalty per gap between consecutive matches,
// and a first-match bonus that decays with how far into the candidate the
// first match sits.
func computeBonuses(positions []int, boundaryMask uint64, cfg EditDistanceConfig) bonusBreakdown {
	var bb bonusBreakdown
	if len(positions) == 0 {
		return bb
	}

	for _, p := range positions {
		if isBoundaryBit(boundaryMask, p) {
			bb.wordBoundary += cfg.WordBoundaryBonus
		}
	}

	for k := 0; k < len(positions)-1; k++ {
		gap := positions[k+1] - positions[k] - 1
		if gap == 0 {
			bb.consecutive += cfg.ConsecutiveBonus
		} else {
			bb.gapPenalty += cfg.GapPenalty.cost(gap)
		}
	}

	firstRatio := float64(positions[0]) / cfg.FirstMatchBonusRange
	remain := 1 - firstRatio
	if remain < 0 {
		remain = 0
	}
	bb.firstMatch = cfg.FirstMatchBonus * remain

	return bb
}

// applyBonusCap folds bonuses into composed per §4.6's final step: a perfect
// (distance==0) match may reach 1.0 via bonuses; an imperfect match is
// capped at 80% of its remaining headroom below 1.0.
func applyBonusCap(composed float64, bonuses float64, distanceZero bool) float64 {
	if distanceZero {
		final := composed + bonuses
		if final > 1.0 {
			return 1.0
		}
		return final
	}
	headroom := 0.8 * (1.0 - composed)
	if bonuses > headroom {
		bonuses = headroom
	}
	return composed + bonuses
}

// isWordBounded reports whether position i in orig (original-case,
// compressed-index bytes) sits at a word boundary: the start of the
// string or a position where isBoundaryAt says so.
func isWordBounded(orig []byte, i int) bool {
	return isBoundaryAt(orig, i)
}

// isEndBounded reports whether the byte following position end (exclusive)
// is end-of-string or a non-alnum byte, i.e. end closes a word.
func isEndBounded(orig []byte, end int) bool {
	if end >= len(orig) {
		return true
	}
	return !isAlnumForBoundary(orig[end])
}

// findContiguousWindow scans orig/lowered for a literal occurrence of query
// (already lowercased), preferring a whole-word-bounded occurrence (both
// ends at boundaries) over the first occurrence found.
func findContiguousWindow(lowered, orig, query []byte) (start int, found bool) {
	qLen := len(query)
	if qLen == 0 || qLen > len(lowered) {
		return 0, false
	}
	firstMatch := -1
	for i := 0; i+qLen <= len(lowered); i++ {
		if !bytesEqual(lowered[i:i+qLen], query) {
			continue
		}
		if firstMatch < 0 {
			firstMatch = i
		}
		if isWordBounded(orig, i) && isEndBounded(orig, i+qLen) {
			return i, true
		}
	}
	if firstMatch >= 0 {
		return firstMatch, true
	}
	return 0, false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scoreComposition carries the shared arithmetic from §4.6's "Score
// composition" subsection.
type scoreComposition struct {
	base          float64
	weighted      float64
	lengthPenalty float64
	composed      float64
}

func composeScore(distance, qLen, cLen int, weight float64, cfg EditDistanceConfig, applyLengthPenalty bool) scoreComposition {
	base := 1.0 - float64(distance)/float64(qLen)
	if base < 0 {
		base = 0
	}
	weighted := 1.0 - (1.0-base)/weight
	if weighted < 0 {
		weighted = 0
	}
	var lengthPenalty float64
	if applyLengthPenalty {
		lengthPenalty = float64(cLen-qLen) * cfg.LengthPenalty
	}
	return scoreComposition{
		base:          base,
		weighted:      weighted,
		lengthPenalty: lengthPenalty,
		composed:      weighted - lengthPenalty,
	}
}

const recoveryCap = 0.15

func cappedRecovery(fraction, lengthPenalty float64) float64 {
	r := fraction * lengthPenalty
	if r > recoveryCap {
		return recoveryCap
	}
	return r
}
