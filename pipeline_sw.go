package fuzzymatch

// Smith-Waterman pipeline (C10): merged lowercase+bonus precomputation,
// bitmask prefilter over the folded candidate, exact check, single/multi-atom
// DP with AND semantics
// across whitespace-delimited atoms, acronym competition, and the minScore
// gate.

func scoreSmithWaterman(buf *ScoringBuffer, prepared *PreparedQuery, candidateText string, cfg SmithWatermanConfig, acronymWeight, minScore float64) (ScoredMatch, bool) {
	candidateRaw := []byte(candidateText)
	cLen := len(candidateRaw)
	qLen := len(prepared.lowercased)

	if qLen == 0 {
		return ScoredMatch{Score: 1.0, Kind: KindExact}, true
	}
	if cLen == 0 {
		return ScoredMatch{}, false
	}

	// 1. Bitmask prefilter, tolerance 0, over the folded candidate produced
	// by the merged lowercase + bonus precomputation.
	if !lengthAccept(qLen, cLen, 0) {
		return ScoredMatch{}, false
	}
	lowered, bonus := computeBonusPrecompute(buf, candidateRaw, cfg)
	candMask := charBitmask(lowered)
	if !bitmaskAccept(prepared.charBitmask, candMask, 0) {
		return ScoredMatch{}, false
	}

	// 2. Exact case-insensitive match.
	if foldedEqual([]byte(prepared.original), candidateRaw) {
		return ScoredMatch{Score: 1.0, Kind: KindExact}, true
	}

	// 3. Boundary mask over the precomputed original-case bytes.
	orig := buf.candidateOrig
	boundaryMask := computeBoundaryMask(orig)

	var alignmentScore float64
	var haveAlignment bool

	if len(prepared.atoms) > 1 {
		// 4. Multi-atom AND semantics.
		totalRaw := int32(0)
		allPositive := true
		for _, atom := range prepared.atoms {
			raw := smithWatermanRaw(buf, atom.lowercased, lowered, bonus, cfg)
			if raw <= 0 {
				allPositive = false
				break
			}
			totalRaw += raw
		}
		if allPositive && prepared.maxSWScore > 0 {
			alignmentScore = normalizeSWScore(totalRaw, prepared.maxSWScore)
			haveAlignment = true
		}
	} else {
		// 5. Single DP run.
		raw := smithWatermanRaw(buf, prepared.lowercased, lowered, bonus, cfg)
		if raw > 0 {
			alignmentScore = normalizeSWScore(raw, prepared.maxSWScore)
			haveAlignment = true
		}
	}

	best := alignmentScore
	bestKind := KindAlignment
	haveBest := haveAlignment

	// 6. Acronym fallback competes.
	if score, ok := acronymScore(buf, prepared.lowercased, lowered, orig, acronymWeight, boundaryMask); ok {
		if !haveBest || score > best {
			best, bestKind, haveBest = score, KindAcronym, true
		}
	}

	// 7. minScore gate.
	if !haveBest || best < minScore {
		return ScoredMatch{}, false
	}
	return ScoredMatch{Score: best, Kind: bestKind}, true
}
