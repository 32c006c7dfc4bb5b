package fuzzymatch

import "testing"

func TestIsBoundaryAtStart(t *testing.T) {
	orig := []byte("hello")
	if !isBoundaryAt(orig, 0) {
		t.Error("position 0 must always be a boundary")
	}
}

func TestIsBoundaryAtUnderscore(t *testing.T) {
	orig := []byte("get_user")
	if !isBoundaryAt(orig, 4) {
		t.Error("position after '_' must be a boundary")
	}
}

func TestIsBoundaryAtCamelCase(t *testing.T) {
	orig := []byte("getUserById")
	if !isBoundaryAt(orig, 3) {
		t.Error("position at 'U' (camelCase) must be a boundary")
	}
	if isBoundaryAt(orig, 1) {
		t.Error("position at 'e' mid-lowercase-run must not be a boundary")
	}
}

func TestIsBoundaryAtDigitTransition(t *testing.T) {
	orig := []byte("v2Release")
	if !isBoundaryAt(orig, 2) {
		t.Error("position after digit followed by non-digit must be a boundary")
	}
}

func TestIsBoundaryAtNonAlnum(t *testing.T) {
	orig := []byte("foo-bar")
	if !isBoundaryAt(orig, 4) {
		t.Error("position after '-' must be a boundary")
	}
}

func TestComputeBoundaryMaskMatchesLinearScan(t *testing.T) {
	orig := []byte("Bristol-Myers Squibb")
	mask := computeBoundaryMask(orig)
	for i := 0; i < len(orig); i++ {
		want := isBoundaryAt(orig, i)
		got := mask&(1<<uint(i)) != 0
		if got != want {
			t.Errorf("position %d: mask bit %v, want %v", i, got, want)
		}
	}
}

func TestCountBoundariesFromBeyond64(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	long[70] = '_'
	long[71] = 'b'
	count := countBoundariesFrom(long, 64)
	if count == 0 {
		t.Error("expected at least one boundary beyond position 64")
	}
}
