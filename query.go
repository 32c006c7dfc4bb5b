package fuzzymatch

import "bytes"

// PreparedQuery is the one-time precomputation over a query string: folded
// bytes, the character bitmask, the trigram set, adaptive edit budget, and
// (for Smith-Waterman) the whitespace-split atoms. Immutable once built and
// freely shareable across threads.
type PreparedQuery struct {
	original    string
	lowercased  []byte
	charBitmask uint64
	trigrams    []uint32

	effectiveMaxEditDistance int
	bitmaskTolerance         int
	minCandidateLength       int

	atoms       []preparedAtom
	maxSWScore  int
}

type preparedAtom struct {
	lowercased  []byte
	charBitmask uint64
	maxSWScore  int
}

// Prepare builds a PreparedQuery from raw text, applying the configured
// algorithm's rules for edit budget, atom splitting, and SW normalization.
func (m *FuzzyMatcher) Prepare(text string) *PreparedQuery {
	src := []byte(text)
	lowered := compressQuery(make([]byte, 0, len(src)), src)

	pq := &PreparedQuery{
		original:    text,
		lowercased:  lowered,
		charBitmask: charBitmask(lowered),
		trigrams:    computeTrigrams(lowered),
	}

	qLen := len(lowered)
	pq.effectiveMaxEditDistance = effectiveEditBudget(qLen, m.config.Algorithm.EditDistance)
	if qLen <= 3 {
		pq.bitmaskTolerance = 0
	} else {
		pq.bitmaskTolerance = pq.effectiveMaxEditDistance
	}
	pq.minCandidateLength = qLen - pq.effectiveMaxEditDistance

	if m.config.Algorithm.Kind == AlgorithmSmithWaterman {
		swCfg := m.config.Algorithm.SmithWaterman
		if swCfg.SplitSpaces {
			pq.atoms = splitAtoms(src, swCfg)
		}
		if len(pq.atoms) == 0 {
			pq.maxSWScore = swMaxScore(qLen, swCfg)
		} else {
			total := 0
			for _, a := range pq.atoms {
				total += a.maxSWScore
			}
			pq.maxSWScore = total
		}
	}

	return pq
}

// effectiveEditBudget computes min(configMax, max(1, (qLen-1)/2)), using the
// long-query bound once qLen reaches longQueryThreshold.
func effectiveEditBudget(qLen int, cfg EditDistanceConfig) int {
	configMax := cfg.MaxEditDistance
	if qLen >= cfg.LongQueryThreshold {
		configMax = cfg.LongQueryMaxEditDistance
	}
	adaptive := (qLen - 1) / 2
	if adaptive < 1 {
		adaptive = 1
	}
	if adaptive < configMax {
		return adaptive
	}
	return configMax
}

func splitAtoms(src []byte, swCfg SmithWatermanConfig) []preparedAtom {
	fields := bytes.FieldsFunc(src, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	atoms := make([]preparedAtom, 0, len(fields))
	for _, f := range fields {
		lowered := compressQuery(make([]byte, 0, len(f)), f)
		if len(lowered) == 0 {
			continue
		}
		atoms = append(atoms, preparedAtom{
			lowercased:  lowered,
			charBitmask: charBitmask(lowered),
			maxSWScore:  swMaxScore(len(lowered), swCfg),
		})
	}
	return atoms
}

// swMaxScore is the normalization denominator from §4.9: the score a
// perfect alignment (every character matching at whitespace-tier bonus,
// first character multiplied) would achieve.
func swMaxScore(qLen int, cfg SmithWatermanConfig) int {
	if qLen == 0 {
		return 0
	}
	return qLen*cfg.ScoreMatch + cfg.BonusBoundaryWhitespace*(cfg.BonusFirstCharMultiplier+qLen-1)
}
