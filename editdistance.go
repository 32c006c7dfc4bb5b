package fuzzymatch

// Restricted Damerau-Levenshtein (Optimal String Alignment): insert, delete,
// substitute, and adjacent transpose, with three rolling rows so the
// transposition rule dp[i-2][j-2]+1 is available without keeping a full
// matrix. Both entry points apply row-minimum pruning: once a row's minimum
// exceeds maxEditDistance, no cheaper completion is possible and the
// function aborts.

const noDistance = -1

// prefixDistance finds the minimum cost to match the full query against
// some prefix of the candidate (the candidate may have trailing bytes).
// Returns noDistance if the bound is exceeded on every path.
func prefixDistance(buf *ScoringBuffer, query, candidate []byte, maxEditDistance int) int {
	return restrictedDistance(buf, query, candidate, maxEditDistance, false)
}

// substringDistance finds the minimum cost to match the full query against
// some contiguous window of the candidate (matches may start anywhere).
func substringDistance(buf *ScoringBuffer, query, candidate []byte, maxEditDistance int) int {
	return restrictedDistance(buf, query, candidate, maxEditDistance, true)
}

// restrictedDistance runs the shared DP. anchoredAnywhere selects the
// substring variant's dp[i][0]=0 initialization; otherwise dp[i][0]=i, so
// the match is anchored at candidate position 0 (prefix variant). Both seed
// row 0 with dp[0][j]=j.
func restrictedDistance(buf *ScoringBuffer, query, candidate []byte, maxEditDistance int, anchoredAnywhere bool) int {
	qLen := len(query)
	cLen := len(candidate)

	if qLen == 0 {
		return 0
	}

	buf.ensureEditDistanceRows(qLen)
	prev2, prev1, cur := buf.editDistanceRows[0], buf.editDistanceRows[1], buf.editDistanceRows[2]

	for j := 0; j <= qLen; j++ {
		prev1[j] = j
	}
	for j := range prev2 {
		prev2[j] = 0
	}

	// Both variants allow the match to end at any candidate position, so
	// the answer is the running minimum of row[qLen] over every row seen so
	// far, starting with row 0 (matching the full query into an empty
	// candidate window costs qLen deletions).
	best := prev1[qLen]

	for i := 1; i <= cLen; i++ {
		if anchoredAnywhere {
			cur[0] = 0
		} else {
			cur[0] = i
		}
		rowMin := cur[0]
		candByte := candidate[i-1]

		for j := 1; j <= qLen; j++ {
			queryByte := query[j-1]
			cost := 1
			if candByte == queryByte {
				cost = 0
			}
			val := prev1[j-1] + cost
			if d := prev1[j] + 1; d < val {
				val = d
			}
			if d := cur[j-1] + 1; d < val {
				val = d
			}
			if i >= 2 && j >= 2 &&
				candByte == query[j-2] && candidate[i-2] == queryByte {
				if d := prev2[j-2] + 1; d < val {
					val = d
				}
			}
			cur[j] = val
			if val < rowMin {
				rowMin = val
			}
		}

		if cur[qLen] < best {
			best = cur[qLen]
		}

		if rowMin > maxEditDistance {
			return clampDistance(best, maxEditDistance)
		}

		prev2, prev1, cur = prev1, cur, prev2
	}

	return clampDistance(best, maxEditDistance)
}

func clampDistance(best, maxEditDistance int) int {
	if best < 0 || best > maxEditDistance {
		return noDistance
	}
	return best
}
