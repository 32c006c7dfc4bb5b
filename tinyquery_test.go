package fuzzymatch

import "testing"

func TestTinyQuerySingleByteExact(t *testing.T) {
	cfg := DefaultEditDistance()
	m, ok := tinyQueryScore('a', []byte("A"), cfg)
	if !ok || m.Score != 1.0 || m.Kind != KindExact {
		t.Errorf("got %+v, %v, want exact 1.0", m, ok)
	}
}

func TestTinyQueryPrefixMatch(t *testing.T) {
	cfg := DefaultEditDistance()
	m, ok := tinyQueryScore('a', []byte("apple"), cfg)
	if !ok || m.Kind != KindPrefix {
		t.Errorf("got %+v, %v, want prefix kind", m, ok)
	}
	if m.Score <= 0 || m.Score > 1.0 {
		t.Errorf("score out of range: %f", m.Score)
	}
}

func TestTinyQuerySubstringMatch(t *testing.T) {
	cfg := DefaultEditDistance()
	m, ok := tinyQueryScore('p', []byte("apple"), cfg)
	if !ok || m.Kind != KindSubstring {
		t.Errorf("got %+v, %v, want substring kind", m, ok)
	}
}

func TestTinyQueryPrefixBeatsSubstring(t *testing.T) {
	cfg := DefaultEditDistance()
	prefix, _ := tinyQueryScore('a', []byte("aardvark"), cfg)
	substr, _ := tinyQueryScore('a', []byte("banana"), cfg)
	if prefix.Score <= substr.Score {
		t.Errorf("prefix score %f should exceed a substring-only score %f for a shorter candidate", prefix.Score, substr.Score)
	}
}

func TestTinyQueryNoMatch(t *testing.T) {
	cfg := DefaultEditDistance()
	_, ok := tinyQueryScore('z', []byte("apple"), cfg)
	if ok {
		t.Error("expected no match")
	}
}
