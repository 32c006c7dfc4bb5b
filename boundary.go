package fuzzymatch

import "math/bits"

// Word-boundary detection over a compressed candidate. A position is a
// boundary iff it starts the string, follows an underscore, follows a digit
// with a non-digit current byte, follows a lowercase ASCII letter with an
// uppercase current byte (camelCase), or follows a byte that isn't
// alphanumeric (multi-byte lead/continuation bytes count as alphanumeric).
//
// The mask only covers the first 64 compressed positions; anything beyond
// that is classified on demand, which is all the acronym matcher needs.

func isBoundaryByte(prev, cur byte) bool {
	if prev == '_' {
		return true
	}
	if isASCIIDigit(prev) && !isASCIIDigit(cur) {
		return true
	}
	if isASCIILower(prev) && isASCIIUpper(cur) {
		return true
	}
	return !isAlnumForBoundary(prev)
}

// isBoundaryAt reports whether position i in a candidate's original-case
// boundary-classification bytes (see compressCandidate) is a word boundary.
func isBoundaryAt(orig []byte, i int) bool {
	if i <= 0 {
		return true
	}
	return isBoundaryByte(orig[i-1], orig[i])
}

// computeBoundaryMask builds the 64-bit boundary bitmap over the first 64
// positions of orig.
func computeBoundaryMask(orig []byte) uint64 {
	var mask uint64
	n := len(orig)
	if n > 64 {
		n = 64
	}
	for i := 0; i < n; i++ {
		if isBoundaryAt(orig, i) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// boundaryMaskPopcount reports how many boundary bits are set.
func boundaryMaskPopcount(mask uint64) int {
	return bits.OnesCount64(mask)
}

// countBoundariesFrom counts additional word boundaries at or beyond
// position from, for candidates longer than the 64-bit mask's reach.
func countBoundariesFrom(orig []byte, from int) int {
	count := 0
	for i := from; i < len(orig); i++ {
		if isBoundaryAt(orig, i) {
			count++
		}
	}
	return count
}
