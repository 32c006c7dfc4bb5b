package fuzzymatch

// Smith-Waterman local alignment core (C9): a three-state (match / gap /
// carried-bonus) integer DP with diagonal carry, scored per §4.9. Valid
// scores are strictly positive; 0 means "no valid state", so there is no
// separate sentinel to track.

// bonusTier classifies position i of the compressed candidate (orig is the
// parallel original-case array) into one of the five integer tiers from
// §4.9. Every position that came from a multi-byte character (lead and
// continuation bytes, and Latin-1 letters folded to one ASCII byte) receives
// 0.
func bonusTier(orig []byte, i int, cfg SmithWatermanConfig) int32 {
	cur := orig[i]
	if cur == classSentinel {
		return 0
	}

	var prev byte
	atStart := i == 0
	if !atStart {
		prev = orig[i-1]
	}

	if atStart || (prev != classSentinel && isWhitespace(prev)) || isWhitespace(cur) {
		return int32(cfg.BonusBoundaryWhitespace)
	}
	if prev != classSentinel && isDelimiter(prev) {
		return int32(cfg.BonusBoundaryDelimiter)
	}
	if prev != classSentinel && !isAlnumForBoundary(prev) && !isWhitespace(prev) && !isDelimiter(prev) {
		return int32(cfg.BonusBoundary)
	}
	if !isAlnumForBoundary(cur) && !isWhitespace(cur) {
		return int32(cfg.BonusBoundary)
	}
	if prev != classSentinel {
		if isASCIILower(prev) && isASCIIUpper(cur) {
			return int32(cfg.BonusCamelCase)
		}
		if !isASCIIDigit(prev) && isASCIIDigit(cur) {
			return int32(cfg.BonusCamelCase)
		}
	}
	return 0
}

// computeBonusPrecompute produces the compressed lowercased candidate and
// parallel bonus[] array in a single O(cLen) pass, writing into buf's
// scratch storage.
func computeBonusPrecompute(buf *ScoringBuffer, candidate []byte, cfg SmithWatermanConfig) (lowered []byte, bonus []int32) {
	buf.ensureCandidateStorage(len(candidate))
	lowered, orig := compressCandidate(buf.candidateBytes, buf.candidateOrig, candidate)
	buf.candidateBytes = lowered
	buf.candidateOrig = orig

	if cap(buf.bonus) < len(lowered) {
		buf.bonus = make([]int32, 0, len(lowered))
	}
	buf.bonus = buf.bonus[:len(lowered)]
	for i := range lowered {
		buf.bonus[i] = bonusTier(orig, i, cfg)
	}
	return lowered, buf.bonus
}

// smithWatermanRaw runs the three-state DP over a single query/candidate
// pair, returning the best raw (unnormalized) alignment score.
func smithWatermanRaw(buf *ScoringBuffer, query, lowered []byte, bonus []int32, cfg SmithWatermanConfig) int32 {
	qLen := len(query)
	cLen := len(lowered)
	if qLen == 0 || cLen == 0 {
		return 0
	}

	buf.ensureSmithWatermanRows(qLen)
	M, G, B := buf.smithWatermanM, buf.smithWatermanG, buf.smithWatermanB

	scoreMatch := int32(cfg.ScoreMatch)
	gapStart := int32(cfg.PenaltyGapStart)
	gapExtend := int32(cfg.PenaltyGapExtend)
	bonusConsecutive := int32(cfg.BonusConsecutive)
	bonusBoundary := int32(cfg.BonusBoundary)
	firstCharMult := int32(cfg.BonusFirstCharMultiplier)

	var best int32

	for i := 0; i < cLen; i++ {
		candByte := lowered[i]
		bonusI := bonus[i]

		var diagM, diagG, diagB int32

		for j := 0; j < qLen; j++ {
			oldM, oldG := M[j], G[j]

			gapCandidate := oldM - gapStart
			if v := oldG - gapExtend; v > gapCandidate {
				gapCandidate = v
			}
			if gapCandidate < 0 {
				gapCandidate = 0
			}

			var newM, newB int32
			if candByte == query[j] {
				if j == 0 {
					newM = scoreMatch + bonusI*firstCharMult
					newB = bonusI
				} else {
					var fromCons int32 = -1
					if diagM > 0 {
						carried := diagB
						if bonusConsecutive > carried {
							carried = bonusConsecutive
						}
						if bonusI >= bonusBoundary && bonusI > carried {
							carried = bonusI
						}
						eff := carried
						if bonusI > eff {
							eff = bonusI
						}
						fromCons = diagM + scoreMatch + eff
						newB = eff
					}
					var fromGap int32 = -1
					if diagG > 0 {
						fromGap = diagG + scoreMatch + bonusI
					}
					if fromCons >= fromGap {
						newM = fromCons
						if fromCons < 0 {
							newM = 0
							newB = 0
						}
					} else {
						newM = fromGap
						newB = bonusI
					}
				}
			}
			if newM < 0 {
				newM = 0
				newB = 0
			}

			diagM, diagG, diagB = oldM, oldG, B[j]

			M[j] = newM
			G[j] = gapCandidate
			B[j] = newB
		}

		if v := M[qLen-1]; v > best {
			best = v
		}
		if v := G[qLen-1]; v > best {
			best = v
		}
	}

	return best
}

// normalizeSWScore clamps a raw score against its precomputed denominator.
func normalizeSWScore(raw int32, maxSWScore int) float64 {
	if maxSWScore <= 0 {
		return 0
	}
	v := float64(raw) / float64(maxSWScore)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
