package fuzzymatch

import "testing"

func assertFold(t *testing.T, src, wantLower string) {
	t.Helper()
	got := compressQuery(nil, []byte(src))
	if string(got) != wantLower {
		t.Errorf("compressQuery(%q) = %q, want %q", src, got, wantLower)
	}
}

func TestCompressQueryASCII(t *testing.T) {
	assertFold(t, "Hello World", "hello world")
	assertFold(t, "ABC123_xyz", "abc123_xyz")
}

func TestCompressQueryLatin1Fold(t *testing.T) {
	assertFold(t, "café", "cafe")
	assertFold(t, "Àéîõü", "aeiou")
	assertFold(t, "æøþð", "æøþð") // no ASCII fold, passes through as two bytes each
}

func TestCompressQueryLatin1NonLetter(t *testing.T) {
	assertFold(t, "5×3÷1", "5×3÷1")
}

func TestCompressQueryGreek(t *testing.T) {
	assertFold(t, "ΑΒΓ", "αβγ")
	assertFold(t, "αβγ", "αβγ")
}

func TestCompressQueryCyrillic(t *testing.T) {
	assertFold(t, "АБВ", "абв")
	assertFold(t, "ЁЂ", "ёђ")
}

func TestCompressQueryCombiningMarkStripped(t *testing.T) {
	// "e" + U+0301 (combining acute accent) should compress to plain "e".
	src := "é"
	got := compressQuery(nil, []byte(src))
	if string(got) != "e" {
		t.Errorf("compressQuery(%q) = %q, want %q", src, got, "e")
	}
}

func TestCompressQueryGreekLowercaseCFLead(t *testing.T) {
	// π ρ ό σ φ live on the 0xCF lead byte while ο is 0xCE-led, so this
	// switches lead bytes mid-string; a desync here would corrupt every
	// byte after the first occurrence.
	assertFold(t, "πρόσφορο", "πρόσφορο")
	assertFold(t, "ΠΡΟΣΦΟΡΟ", "προσφορο")
}

func TestCompressQueryCyrillicLowercaseD1Lead(t *testing.T) {
	// р and ь are 0xD1-led; б and л are 0xD0-led, so this exercises a
	// lead-byte switch mid-string.
	assertFold(t, "рубль", "рубль")
	assertFold(t, "РУБЛЬ", "рубль")
}

func TestCompressQueryFullwidthLatinNarrows(t *testing.T) {
	// U+FF21 U+FF22 U+FF23 spells "ＡＢＣ" in fullwidth Latin, as seen in
	// symbol feeds transcribed from DBCS sources.
	assertFold(t, "ＡＢＣ", "abc")
}

func TestFoldedEqualCaseInsensitive(t *testing.T) {
	if !foldedEqual([]byte("Hello"), []byte("hello")) {
		t.Error("expected case-insensitive equality")
	}
	if !foldedEqual([]byte("café"), []byte("CAFE")) {
		t.Error("expected café == CAFE after folding")
	}
	if foldedEqual([]byte("hello"), []byte("hallo")) {
		t.Error("expected mismatch")
	}
}

func TestCompressCandidatePreservesOrigForBoundary(t *testing.T) {
	lowered, orig := compressCandidate(nil, nil, []byte("GetUserById"))
	if string(lowered) != "getuserbyid" {
		t.Fatalf("lowered = %q", lowered)
	}
	if len(orig) != len(lowered) {
		t.Fatalf("orig length %d != lowered length %d", len(orig), len(lowered))
	}
	if orig[0] != 'G' {
		t.Errorf("orig[0] = %q, want 'G'", orig[0])
	}
}
