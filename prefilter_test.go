package fuzzymatch

import "testing"

func TestLengthAccept(t *testing.T) {
	if !lengthAccept(5, 5, 1) {
		t.Error("equal length should be accepted")
	}
	if !lengthAccept(5, 4, 1) {
		t.Error("cLen == qLen - maxDist should be accepted")
	}
	if lengthAccept(5, 3, 1) {
		t.Error("cLen < qLen - maxDist should be rejected")
	}
}

func TestCharBitmaskASCII(t *testing.T) {
	mask := charBitmask([]byte("abc123_"))
	for _, bit := range []uint{0, 1, 2, 26, 27, 28, 36} {
		if mask&(1<<bit) == 0 {
			t.Errorf("expected bit %d set", bit)
		}
	}
}

func TestBitmaskAcceptTolerance(t *testing.T) {
	q := charBitmask([]byte("abc"))
	c := charBitmask([]byte("ab"))
	if bitmaskAccept(q, c, 0) {
		t.Error("missing character class should fail zero tolerance")
	}
	if !bitmaskAccept(q, c, 1) {
		t.Error("missing one character class should pass tolerance 1")
	}
}

func TestComputeTrigramsDedupSortedExcludesSpace(t *testing.T) {
	tri := computeTrigrams([]byte("ab ab abc"))
	for i := 1; i < len(tri); i++ {
		if tri[i] <= tri[i-1] {
			t.Fatalf("trigrams not strictly increasing at %d: %v", i, tri)
		}
	}
	for _, v := range tri {
		a := byte(v)
		b := byte(v >> 8)
		c := byte(v >> 16)
		if a == ' ' || b == ' ' || c == ' ' {
			t.Errorf("trigram %v contains a space byte", v)
		}
	}
}

func TestTrigramAcceptExactMatch(t *testing.T) {
	buf := NewScoringBuffer()
	q := computeTrigrams([]byte("hello"))
	if !trigramAccept(buf, q, []byte("hello world"), 0) {
		t.Error("candidate containing the full query should pass trigram filter")
	}
}

func TestTrigramAcceptRejectsUnrelated(t *testing.T) {
	buf := NewScoringBuffer()
	q := computeTrigrams([]byte("xyzxyz"))
	if trigramAccept(buf, q, []byte("abcdefabcdef"), 0) {
		t.Error("unrelated candidate should fail trigram filter at zero tolerance")
	}
}
