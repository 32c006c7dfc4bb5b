package fuzzymatch

// Edit-distance pipeline (C8): the ten-step state machine described in
// §4.8, orchestrating prefilters (C2), boundary detection (C3), the
// restricted edit-distance core (C6), position finding and bonus scoring
// (C7), the subsequence fallback (§4.7), and the acronym fallback (C11).

func scoreEditDistance(buf *ScoringBuffer, prepared *PreparedQuery, candidateText string, cfg EditDistanceConfig, minScore float64) (ScoredMatch, bool) {
	query := prepared.lowercased
	qLen := len(query)
	candidateRaw := []byte(candidateText)

	// 1. Empty query.
	if qLen == 0 {
		return ScoredMatch{Score: 1.0, Kind: KindExact}, true
	}

	// 2. Case-insensitive byte equality.
	if foldedEqual([]byte(prepared.original), candidateRaw) {
		return ScoredMatch{Score: 1.0, Kind: KindExact}, true
	}

	// 3. Tiny-query fast path.
	if qLen == 1 {
		return tinyQueryScore(query[0], candidateRaw, cfg)
	}

	cLen := len(candidateRaw)
	if cLen == 0 {
		return ScoredMatch{}, false
	}

	// 4. Prefilters. The bitmask and trigram filters run over the compressed
	// (case-folded) candidate, the same form the prepared query uses.
	if !lengthAccept(qLen, cLen, prepared.effectiveMaxEditDistance) {
		return ScoredMatch{}, false
	}
	buf.ensureCandidateStorage(cLen)
	lowered, orig := compressCandidate(buf.candidateBytes, buf.candidateOrig, candidateRaw)
	buf.candidateBytes = lowered
	buf.candidateOrig = orig
	candMask := charBitmask(lowered)
	if !bitmaskAccept(prepared.charBitmask, candMask, prepared.bitmaskTolerance) {
		return ScoredMatch{}, false
	}
	if qLen >= 4 && len(prepared.trigrams) > 3*prepared.effectiveMaxEditDistance {
		if !trigramAccept(buf, prepared.trigrams, lowered, prepared.effectiveMaxEditDistance) {
			return ScoredMatch{}, false
		}
	}

	// 5. Boundary mask.
	boundaryMask := computeBoundaryMask(orig)

	shortQuery := qLen <= 3
	lengthsDiffer := cLen != qLen

	var best float64 = -1
	var bestKind MatchKind

	// 6. Prefix edit distance. Per the short-query same-length restriction,
	// a qLen<=3 match with distance > 0 is rejected here when the candidate
	// length differs from the query length; a literal (distance 0) prefix
	// match always counts regardless of length.
	prefixDist := prefixDistance(buf, query, lowered, prepared.effectiveMaxEditDistance)
	prefixZero := false
	if prefixDist >= 0 && !(shortQuery && prefixDist > 0 && lengthsDiffer) {
		positions := findPositions(buf, query, lowered, boundaryMask, cfg)
		score, ok := scorePrefixCandidate(query, lowered, orig, positions, boundaryMask, prefixDist, cfg)
		if ok && score > best {
			best = score
			bestKind = KindPrefix
		}
		prefixZero = prefixDist == 0
	}

	// 7. Substring edit distance, under the same restriction.
	if best < 0.7 && !prefixZero {
		substrDist := substringDistance(buf, query, lowered, prepared.effectiveMaxEditDistance)
		if substrDist >= 0 && !(shortQuery && substrDist > 0 && lengthsDiffer) {
			positions := findPositions(buf, query, lowered, boundaryMask, cfg)
			score, ok := scoreSubstringCandidate(query, lowered, orig, positions, boundaryMask, substrDist, cfg)
			if ok && score > best {
				best = score
				bestKind = KindSubstring
			}
		}
	}

	// 8-9. Subsequence and acronym fallback.
	haveBest := best >= 0
	if !haveBest || best < minScore {
		best, bestKind, haveBest = runSubsequenceAndAcronym(buf, query, lowered, orig, boundaryMask, cfg, best, bestKind)
	} else if score, ok := acronymScore(buf, query, lowered, orig, cfg.AcronymWeight, boundaryMask); ok && score > best {
		best, bestKind = score, KindAcronym
	}

	return finalizeEdit(best, bestKind, haveBest, minScore)
}

func runSubsequenceAndAcronym(buf *ScoringBuffer, query, lowered, orig []byte, boundaryMask uint64, cfg EditDistanceConfig, seedBest float64, seedKind MatchKind) (float64, MatchKind, bool) {
	best := seedBest
	bestKind := seedKind
	haveBest := best >= 0

	if score, ok := subsequenceFallback(buf, query, lowered, boundaryMask, cfg); ok && score > best {
		best = score
		bestKind = KindAlignment
		haveBest = true
	}
	if score, ok := acronymScore(buf, query, lowered, orig, cfg.AcronymWeight, boundaryMask); ok {
		if !haveBest || score > best {
			best = score
			bestKind = KindAcronym
			haveBest = true
		}
	}
	return best, bestKind, haveBest
}

func finalizeEdit(best float64, kind MatchKind, have bool, minScore float64) (ScoredMatch, bool) {
	if !have || best < minScore {
		return ScoredMatch{}, false
	}
	return ScoredMatch{Score: best, Kind: kind}, true
}

// scorePrefixCandidate applies the prefix-path recoveries from §4.6:
// exact-prefix length-penalty recovery and the same-length near-exact boost.
// When no positions could be recovered (e.g. a transposition the greedy
// scanner cannot place in order), the match is scored with zero bonuses.
func scorePrefixCandidate(query, lowered, orig []byte, positions []int, boundaryMask uint64, distance int, cfg EditDistanceConfig) (float64, bool) {
	qLen, cLen := len(query), len(lowered)
	comp := composeScore(distance, qLen, cLen, cfg.PrefixWeight, cfg, true)
	composed := comp.composed

	if distance == 0 {
		composed += cappedRecovery(0.9, comp.lengthPenalty)
	} else if cLen == qLen {
		composed += 0.7 * (1.0 - comp.weighted)
	}

	bonuses := computeBonuses(positions, boundaryMask, cfg).total()
	final := applyBonusCap(composed, bonuses, distance == 0)
	return clamp01(final), true
}

// scoreSubstringCandidate applies the substring-path recoveries: contiguous
// and whole-word recovery when the distance is zero but positions are not
// already a contiguous, boundary-aligned window. As on the prefix path, a
// match with no recoverable positions is scored with zero bonuses.
func scoreSubstringCandidate(query, lowered, orig []byte, positions []int, boundaryMask uint64, distance int, cfg EditDistanceConfig) (float64, bool) {
	qLen, cLen := len(query), len(lowered)
	comp := composeScore(distance, qLen, cLen, cfg.SubstringWeight, cfg, true)
	composed := comp.composed

	usedPositions := positions
	if distance == 0 && qLen >= 2 && qLen <= 4 && !contiguous(positions) {
		if start, ok := findContiguousWindow(lowered, orig, query); ok {
			fillRange(usedPositions, start)
		}
	}

	if distance == 0 && len(usedPositions) > 0 && contiguous(usedPositions) {
		start := usedPositions[0]
		end := usedPositions[len(usedPositions)-1] + 1
		if isWordBounded(orig, start) && isEndBounded(orig, end) {
			composed += cappedRecovery(0.8, comp.lengthPenalty)
		}
	}

	bonuses := computeBonuses(usedPositions, boundaryMask, cfg).total()
	final := applyBonusCap(composed, bonuses, distance == 0)
	return clamp01(final), true
}

func contiguous(positions []int) bool {
	for k := 0; k < len(positions)-1; k++ {
		if positions[k+1] != positions[k]+1 {
			return false
		}
	}
	return true
}

// fillRange overwrites dst in place with start, start+1, ..., reusing its
// existing backing array instead of allocating a new one.
func fillRange(dst []int, start int) {
	for i := range dst {
		dst[i] = start + i
	}
}

// subsequenceFallback implements §4.7: greedy positions over the full
// candidate, scored by gap ratio rather than edit distance.
func subsequenceFallback(buf *ScoringBuffer, query, lowered []byte, boundaryMask uint64, cfg EditDistanceConfig) (float64, bool) {
	positions := greedyPositions(buf, query, lowered, boundaryMask)
	if positions == nil {
		return 0, false
	}
	cLen := len(lowered)
	totalGaps := positions[0]
	for k := 1; k < len(positions); k++ {
		totalGaps += positions[k] - positions[k-1] - 1
	}
	gapRatio := float64(totalGaps) / float64(cLen)
	baseSub := 1 - gapRatio
	if baseSub < 0.3 {
		baseSub = 0.3
	}
	composed := baseSub * cfg.SubstringWeight

	bonuses := computeBonuses(positions, boundaryMask, cfg).total()
	final := applyBonusCap(composed, bonuses, false)
	return clamp01(final), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
