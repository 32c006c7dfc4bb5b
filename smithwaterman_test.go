package fuzzymatch

import "testing"

func TestBonusTierWhitespaceAtStart(t *testing.T) {
	cfg := DefaultSmithWaterman()
	_, orig := compressCandidate(nil, nil, []byte("bar"))
	tier := bonusTier(orig, 0, cfg)
	if tier != int32(cfg.BonusBoundaryWhitespace) {
		t.Errorf("tier = %d, want whitespace tier %d", tier, cfg.BonusBoundaryWhitespace)
	}
}

func TestBonusTierDelimiter(t *testing.T) {
	cfg := DefaultSmithWaterman()
	_, orig := compressCandidate(nil, nil, []byte("foo/bar"))
	tier := bonusTier(orig, 4, cfg) // position of 'b', preceded by '/'
	if tier != int32(cfg.BonusBoundaryDelimiter) {
		t.Errorf("tier = %d, want delimiter tier %d", tier, cfg.BonusBoundaryDelimiter)
	}
}

func TestBonusTierCamelCase(t *testing.T) {
	cfg := DefaultSmithWaterman()
	_, orig := compressCandidate(nil, nil, []byte("fooBar"))
	tier := bonusTier(orig, 3, cfg) // position of 'B', preceded by lowercase 'o'
	if tier != int32(cfg.BonusCamelCase) {
		t.Errorf("tier = %d, want camelCase tier %d", tier, cfg.BonusCamelCase)
	}
}

func TestSmithWatermanRawExactMatchPositive(t *testing.T) {
	buf := NewScoringBuffer()
	cfg := DefaultSmithWaterman()
	lowered, bonus := computeBonusPrecompute(buf, []byte("bar"), cfg)
	raw := smithWatermanRaw(buf, []byte("bar"), lowered, bonus, cfg)
	if raw <= 0 {
		t.Errorf("expected positive raw score for exact match, got %d", raw)
	}
}

func TestSmithWatermanRawNoMatchIsZero(t *testing.T) {
	buf := NewScoringBuffer()
	cfg := DefaultSmithWaterman()
	lowered, bonus := computeBonusPrecompute(buf, []byte("xyz"), cfg)
	raw := smithWatermanRaw(buf, []byte("abc"), lowered, bonus, cfg)
	if raw != 0 {
		t.Errorf("expected zero raw score for no match, got %d", raw)
	}
}

func TestSmithWatermanDelimiterTierScoresHigherThanNone(t *testing.T) {
	buf := NewScoringBuffer()
	cfg := DefaultSmithWaterman()

	lowered1, bonus1 := computeBonusPrecompute(buf, []byte("foo/bar"), cfg)
	withDelim := smithWatermanRaw(buf, []byte("bar"), lowered1, bonus1, cfg)

	buf2 := NewScoringBuffer()
	lowered2, bonus2 := computeBonusPrecompute(buf2, []byte("foobar"), cfg)
	withoutDelim := smithWatermanRaw(buf2, []byte("bar"), lowered2, bonus2, cfg)

	if withDelim <= withoutDelim {
		t.Errorf("expected delimiter-preceded match (%d) to score higher than mid-word match (%d)", withDelim, withoutDelim)
	}
}

func TestNormalizeSWScoreClampsToUnitRange(t *testing.T) {
	if v := normalizeSWScore(1000, 100); v != 1.0 {
		t.Errorf("normalizeSWScore overflow = %f, want 1.0", v)
	}
	if v := normalizeSWScore(0, 0); v != 0 {
		t.Errorf("normalizeSWScore with zero denominator = %f, want 0", v)
	}
}
