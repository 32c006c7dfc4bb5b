package fuzzymatch

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Byte classification and case folding.
//
// Folding covers ASCII, Latin-1 Supplement, basic Greek and basic Cyrillic,
// plus stripping of combining marks (U+0300-U+036F). Fullwidth Latin letters
// and digits (common in financial-instrument symbol feeds transcribed from
// double-byte character sets) are narrowed via golang.org/x/text/width before
// the ASCII fold table applies; fullwidth punctuation is not narrowed. Everything else passes through unchanged,
// byte for byte: this is not a full-Unicode library.

// classSentinel stands in for "this compressed position came from a
// multi-byte sequence" wherever boundary detection needs a representative
// original-case byte. It is never produced by the ASCII path, so boundary
// checks can treat it as alnum without colliding with real ASCII bytes.
const classSentinel byte = 0x01

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

func isASCIIUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isASCIILower(b byte) bool { return b >= 'a' && b <= 'z' }
func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
func isASCIIAlnum(b byte) bool {
	return isASCIILower(b) || isASCIIUpper(b) || isASCIIDigit(b)
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDelimiter(b byte) bool {
	switch b {
	case '/', ':', ';', '|':
		return true
	}
	return false
}

func isTwoByteLead(b byte) bool {
	return b == 0xC3 || b == 0xCE || b == 0xCF || b == 0xD0 || b == 0xD1
}

// isAlnumForBoundary treats multi-byte lead/continuation bytes as alnum, per
// the word-boundary rule in the candidate-boundary component.
func isAlnumForBoundary(b byte) bool {
	return b == classSentinel || isASCIIAlnum(b)
}

// latin1Fold maps a lowercased Latin-1 Supplement second byte (0xA0-0xBF) to
// its ASCII base letter, or 0 if the letter has no ASCII fold.
var latin1Fold = [32]byte{
	0x00: 'a', // à
	0x01: 'a', // á
	0x02: 'a', // â
	0x03: 'a', // ã
	0x04: 'a', // ä
	0x05: 'a', // å
	0x06: 0,   // æ
	0x07: 'c', // ç
	0x08: 'e', // è
	0x09: 'e', // é
	0x0A: 'e', // ê
	0x0B: 'e', // ë
	0x0C: 'i', // ì
	0x0D: 'i', // í
	0x0E: 'i', // î
	0x0F: 'i', // ï
	0x10: 0,   // ð
	0x11: 'n', // ñ
	0x12: 'o', // ò
	0x13: 'o', // ó
	0x14: 'o', // ô
	0x15: 'o', // õ
	0x16: 'o', // ö
	0x17: 0,   // ÷
	0x18: 0,   // ø
	0x19: 'u', // ù
	0x1A: 'u', // ú
	0x1B: 'u', // û
	0x1C: 'u', // ü
	0x1D: 'y', // ý
	0x1E: 0,   // þ
	0x1F: 'y', // ÿ
}

// foldLatin1Second lowercases the second byte of a C3-led Latin-1 Supplement
// pair in place (0x80-0x9E, excluding the unassigned-to-uppercase 0x97
// multiplication sign; 0x9F has no uppercase form).
func foldLatin1Second(second byte) byte {
	if second >= 0x80 && second <= 0x9E && second != 0x97 {
		return second + 0x20
	}
	return second
}

func foldGreekSecond(second byte) (lead, out byte) {
	switch {
	case second >= 0x91 && second <= 0x9F:
		return 0xCE, second + 0x20
	case second >= 0xA0 && second <= 0xA9:
		return 0xCF, second - 0x20
	default:
		return 0xCE, second
	}
}

func foldCyrillicSecond(second byte) (lead, out byte) {
	switch {
	case second >= 0x90 && second <= 0x9F:
		return 0xD0, second + 0x20
	case second >= 0xA0 && second <= 0xAF:
		return 0xD1, second - 0x20
	case second >= 0x80 && second <= 0x8F:
		return 0xD1, second + 0x10
	default:
		return 0xD0, second
	}
}

func isCombiningMarkLead(lead, second byte) bool {
	if lead == 0xCC && second >= 0x80 && second <= 0xBF {
		return true
	}
	if lead == 0xCD && second >= 0x80 && second <= 0xAF {
		return true
	}
	return false
}

// narrowFullwidthLatin narrows a single fullwidth rune (U+FF01-FF5E) to its
// standard-width ASCII equivalent, reporting ok=false for punctuation that
// has no plain letter/digit form worth folding.
func narrowFullwidthLatin(r rune) (byte, bool) {
	out, _, err := transform.String(width.Narrow, string(r))
	if err != nil || len(out) != 1 {
		return 0, false
	}
	b := out[0]
	if isASCIIAlnum(b) {
		return b, true
	}
	return 0, false
}

// nextFoldedInto decodes the multi-byte unit starting at src[i], writing 0,
// 1, or 2 output bytes into out (the case-folded/compressed bytes) and the
// same count into orig (a parallel, case-preserving byte used only for
// boundary classification: classSentinel for anything that isn't plain
// ASCII). It returns how many output bytes were written and how many input
// bytes were consumed. A combining mark yields outLen == 0.
func nextFoldedInto(out, orig *[2]byte, src []byte, i int) (outLen, consumed int) {
	b := src[i]
	if b < 0x80 {
		out[0] = lowerASCII(b)
		orig[0] = b
		return 1, 1
	}
	if i+1 >= len(src) {
		out[0] = b
		orig[0] = classSentinel
		return 1, 1
	}
	if b == 0xEF && i+2 < len(src) {
		if r, size := utf8.DecodeRune(src[i:]); size == 3 && r >= 0xFF01 && r <= 0xFF5E {
			if narrow, ok := narrowFullwidthLatin(r); ok {
				out[0] = lowerASCII(narrow)
				orig[0] = classSentinel
				return 1, 3
			}
		}
	}

	second := src[i+1]
	switch b {
	case 0xC3:
		lsec := foldLatin1Second(second)
		if lsec >= 0xA0 && lsec <= 0xBF {
			if ascii := latin1Fold[lsec-0xA0]; ascii != 0 {
				out[0] = ascii
				orig[0] = classSentinel
				return 1, 2
			}
		}
		out[0], out[1] = 0xC3, lsec
		orig[0], orig[1] = classSentinel, classSentinel
		return 2, 2
	case 0xCE:
		lead, sec := foldGreekSecond(second)
		out[0], out[1] = lead, sec
		orig[0], orig[1] = classSentinel, classSentinel
		return 2, 2
	case 0xD0:
		lead, sec := foldCyrillicSecond(second)
		out[0], out[1] = lead, sec
		orig[0], orig[1] = classSentinel, classSentinel
		return 2, 2
	case 0xCF, 0xD1:
		// Lowercase Greek π-ω and lowercase Cyrillic р-я/ѐ-џ live entirely on
		// these lead bytes already; foldGreekSecond/foldCyrillicSecond only
		// handle the 0xCE/0xD0-led uppercase forms, so pass through as-is.
		out[0], out[1] = b, second
		orig[0], orig[1] = classSentinel, classSentinel
		return 2, 2
	case 0xCC, 0xCD:
		if isCombiningMarkLead(b, second) {
			return 0, 2
		}
	}
	out[0] = b
	orig[0] = classSentinel
	return 1, 1
}

// compressQuery folds src (query text) into dst, reusing dst's storage.
func compressQuery(dst []byte, src []byte) []byte {
	dst = dst[:0]
	i := 0
	for i < len(src) {
		var out, orig [2]byte
		outLen, consumed := nextFoldedInto(&out, &orig, src, i)
		dst = append(dst, out[:outLen]...)
		i += consumed
	}
	return dst
}

// compressCandidate folds src (candidate text) into dst, and fills origDst
// with the parallel case-preserving boundary-classification bytes.
func compressCandidate(dst, origDst []byte, src []byte) ([]byte, []byte) {
	dst = dst[:0]
	origDst = origDst[:0]
	i := 0
	for i < len(src) {
		var out, orig [2]byte
		outLen, consumed := nextFoldedInto(&out, &orig, src, i)
		dst = append(dst, out[:outLen]...)
		origDst = append(origDst, orig[:outLen]...)
		i += consumed
	}
	return dst, origDst
}

// foldedEqual reports whether a and b fold to the same compressed byte
// sequence, without allocating an intermediate buffer. Used for the
// case-insensitive equality fast path.
func foldedEqual(a, b []byte) bool {
	ai, bi := 0, 0
	for {
		var outA, origA, outB, origB [2]byte
		alen, blen := 0, 0
		// Units that fold to nothing (combining marks) are skipped.
		for alen == 0 && ai < len(a) {
			var n int
			alen, n = nextFoldedInto(&outA, &origA, a, ai)
			ai += n
		}
		for blen == 0 && bi < len(b) {
			var n int
			blen, n = nextFoldedInto(&outB, &origB, b, bi)
			bi += n
		}
		if alen != blen {
			return false
		}
		if alen == 0 {
			return true
		}
		for k := 0; k < alen; k++ {
			if outA[k] != outB[k] {
				return false
			}
		}
	}
}
