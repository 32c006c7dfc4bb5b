package fuzzymatch

// Position finders used by the edit-distance pipeline (C8) to recover where
// in the candidate the query characters matched, so bonus.go can score word
// boundaries, consecutive runs, and gaps.

const greedyLookahead = 5

// greedyPositions scans left to right, placing each query byte within a
// look-ahead window, preferring a word-boundary occurrence, then the
// nearest occurrence, then falling back to the first occurrence in the
// remainder. It also prefers extending the previous match by one byte
// (consecutive-preference) when that byte equals the current query byte.
// Returns nil if any query byte cannot be placed.
func greedyPositions(buf *ScoringBuffer, query, candidate []byte, boundaryMask uint64) []int {
	qLen := len(query)
	if qLen == 0 {
		return nil
	}
	buf.ensureMatchPositions(qLen)
	positions := buf.matchPositions
	searchFrom := 0

	for qi := 0; qi < qLen; qi++ {
		qb := query[qi]

		if len(positions) > 0 {
			prev := positions[len(positions)-1]
			if prev+1 < len(candidate) && candidate[prev+1] == qb {
				positions = append(positions, prev+1)
				searchFrom = prev + 2
				continue
			}
		}

		windowEnd := searchFrom + qLen + greedyLookahead
		if windowEnd > len(candidate) {
			windowEnd = len(candidate)
		}

		boundaryPos := -1
		nearestPos := -1
		for i := searchFrom; i < windowEnd; i++ {
			if candidate[i] != qb {
				continue
			}
			if nearestPos < 0 {
				nearestPos = i
			}
			if isBoundaryBit(boundaryMask, i) {
				boundaryPos = i
				break
			}
		}

		chosen := -1
		switch {
		case boundaryPos >= 0:
			chosen = boundaryPos
		case nearestPos >= 0:
			chosen = nearestPos
		default:
			for i := windowEnd; i < len(candidate); i++ {
				if candidate[i] == qb {
					chosen = i
					break
				}
			}
		}

		if chosen < 0 {
			return nil
		}
		positions = append(positions, chosen)
		searchFrom = chosen + 1
	}

	buf.matchPositions = positions
	return positions
}

func isBoundaryBit(mask uint64, i int) bool {
	if i >= 64 {
		return false
	}
	return mask&(1<<uint(i)) != 0
}

// dpAlignPositions runs a two-state DP over buf's alignment matrices
// (qLen x cLen, cLen capped at maxAlignmentCLen by the caller) and recovers
// the best-scoring positions by traceback. M[i][j] is the best score of an
// alignment ending in a match at candidate[i-1]/query[j-1]; G[i][j] is the
// best score ending in a gap. Matches score only the word-boundary bonus,
// and every skipped candidate byte costs GapPenalty.Open (there is no
// separate, cheaper extension cost). An alignment must begin with query[0]
// matching candidate[0]; when none does, the result is nil and
// findPositions falls back to the greedy scanner.
func dpAlignPositions(buf *ScoringBuffer, query, candidate []byte, boundaryMask uint64, cfg EditDistanceConfig) []int {
	qLen := len(query)
	cLen := len(candidate)
	if qLen == 0 || cLen == 0 {
		return nil
	}

	buf.ensureAlignmentState(qLen, cLen)
	stride := qLen + 1
	M := buf.alignmentM
	G := buf.alignmentG

	const negInf = int32(-1 << 30)
	for j := 0; j <= qLen; j++ {
		M[j] = negInf
		G[j] = negInf
	}
	M[0] = 0
	G[0] = negInf

	for i := 1; i <= cLen; i++ {
		row := i * stride
		prevRow := (i - 1) * stride
		M[row] = negInf
		G[row] = negInf

		for j := 1; j <= qLen; j++ {
			idx := row + j
			M[idx] = negInf
			if candidate[i-1] == query[j-1] {
				matchBonus := int32(0)
				if isBoundaryBit(boundaryMask, i-1) {
					matchBonus = int32(cfg.WordBoundaryBonus * 1000)
				}
				if prevRow+j-1 >= 0 {
					diag := M[prevRow+j-1]
					if diag == negInf && j-1 == 0 && i-1 == 0 {
						diag = 0
					}
					if diag > negInf {
						candScore := diag + matchBonus
						if candScore > M[idx] {
							M[idx] = candScore
						}
					}
					diagG := G[prevRow+j-1]
					if diagG > negInf {
						candScore := diagG + matchBonus
						if candScore > M[idx] {
							M[idx] = candScore
						}
					}
				}
			}
			bestGapSource := M[prevRow+j]
			if g := G[prevRow+j]; g > bestGapSource {
				bestGapSource = g
			}
			if bestGapSource > negInf {
				G[idx] = bestGapSource - int32(cfg.GapPenalty.Open*1000)
			} else {
				G[idx] = negInf
			}
		}
	}

	return traceback(buf, M, G, query, candidate, stride)
}

func traceback(buf *ScoringBuffer, M, G []int32, query, candidate []byte, stride int) []int {
	qLen := len(query)
	cLen := len(candidate)

	best := M[cLen*stride+qLen]
	bestIsGap := false
	if g := G[cLen*stride+qLen]; g > best {
		best = g
		bestIsGap = true
	}
	const negInf = int32(-1 << 30)
	if best <= negInf {
		return nil
	}

	buf.ensureMatchPositions(qLen)
	positions := buf.matchPositions
	i, j := cLen, qLen
	inGap := bestIsGap
	for j > 0 && i > 0 {
		if inGap {
			mSrc := M[(i-1)*stride+j]
			gSrc := G[(i-1)*stride+j]
			i--
			inGap = gSrc > mSrc
			continue
		}
		if candidate[i-1] == query[j-1] {
			positions = append(positions, i-1)
			diag := M[(i-1)*stride+j-1]
			diagG := G[(i-1)*stride+j-1]
			i--
			j--
			inGap = diagG > diag
			continue
		}
		// Should not happen given the DP only transitions M on a match;
		// guard against malformed traceback by bailing out.
		return nil
	}
	if j != 0 {
		return nil
	}

	for l, r := 0, len(positions)-1; l < r; l, r = l+1, r-1 {
		positions[l], positions[r] = positions[r], positions[l]
	}
	buf.matchPositions = positions
	return positions
}

// findPositions dispatches to the greedy scanner for short queries and
// oversized candidates, otherwise runs the DP-optimal aligner.
func findPositions(buf *ScoringBuffer, query, candidate []byte, boundaryMask uint64, cfg EditDistanceConfig) []int {
	if len(query) <= 4 || len(candidate) > maxAlignmentCLen {
		return greedyPositions(buf, query, candidate, boundaryMask)
	}
	if positions := dpAlignPositions(buf, query, candidate, boundaryMask, cfg); positions != nil {
		return positions
	}
	return greedyPositions(buf, query, candidate, boundaryMask)
}
