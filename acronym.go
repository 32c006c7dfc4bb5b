package fuzzymatch

// Acronym matcher (C11), shared by the edit-distance and Smith-Waterman
// pipelines as a competing fallback. Fires only for short queries against
// candidates with enough words to plausibly be an acronym source.

const (
	acronymMinQLen   = 2
	acronymMaxQLen   = 8
	acronymMinWords  = 3
)

// acronymWordCount counts word boundaries over the full candidate: the
// popcount of the first 64 mask bits plus a linear scan for anything beyond
// byte 64 (boundary.go's countBoundariesFrom already treats continuation
// bytes as alnum, so it never double-counts a multi-byte character).
func acronymWordCount(boundaryMask uint64, orig []byte) int {
	count := boundaryMaskPopcount(boundaryMask)
	if len(orig) > 64 {
		count += countBoundariesFrom(orig, 64)
	}
	return count
}

// extractWordInitials fills dst with the first lowercased byte of each word
// in lowered, as delimited by orig's boundary classification.
func extractWordInitials(dst []byte, lowered, orig []byte) []byte {
	dst = dst[:0]
	for i := 0; i < len(lowered); i++ {
		if isBoundaryAt(orig, i) {
			dst = append(dst, lowered[i])
		}
	}
	return dst
}

// isSubsequence reports whether every byte of query appears in order
// (not necessarily contiguously) within hay.
func isSubsequence(query, hay []byte) bool {
	hi := 0
	for _, qb := range query {
		found := false
		for hi < len(hay) {
			if hay[hi] == qb {
				hi++
				found = true
				break
			}
			hi++
		}
		if !found {
			return false
		}
	}
	return true
}

// acronymScore runs the full C11 gate and scoring formula. ok is false when
// the gate (qLen range, word-count floor) or the subsequence check fails.
func acronymScore(buf *ScoringBuffer, query, lowered, orig []byte, acronymWeight float64, boundaryMask uint64) (score float64, ok bool) {
	qLen := len(query)
	if qLen < acronymMinQLen || qLen > acronymMaxQLen {
		return 0, false
	}

	wordCount := acronymWordCount(boundaryMask, orig)
	if wordCount < acronymMinWords || wordCount < qLen {
		return 0, false
	}

	buf.ensureWordInitials(wordCount)
	initials := extractWordInitials(buf.wordInitials, lowered, orig)

	if !isSubsequence(query, initials) {
		return 0, false
	}

	coverage := float64(qLen) / float64(wordCount)
	return (0.55 + 0.4*coverage) * acronymWeight, true
}
