package fuzzymatch

import "sort"

// TopMatches and Matches are thin convenience wrappers over Score: the
// caller owns ordering and pagination per spec, but shipping a ranking
// helper alongside the core saves every caller from re-deriving the same
// stable sort. Grounded on fzf's ByRelevance/ByRelevanceTac: ties keep the
// original candidate order.

// TopMatches scores every candidate against prepared and returns the
// highest-scoring limit results, stable on ties by original index.
func TopMatches(matcher *FuzzyMatcher, candidates []string, prepared *PreparedQuery, limit int) []MatchResult {
	results := Matches(matcher, candidates, prepared)
	if limit < 0 || limit > len(results) {
		limit = len(results)
	}
	return results[:limit]
}

// Matches scores every candidate and returns all matches ranked best first,
// stable on ties by original index.
func Matches(matcher *FuzzyMatcher, candidates []string, prepared *PreparedQuery) []MatchResult {
	buf := matcher.MakeBuffer()
	results := make([]MatchResult, 0, len(candidates))
	for i, c := range candidates {
		scored, ok := matcher.Score(c, prepared, buf)
		if !ok {
			continue
		}
		results = append(results, MatchResult{
			Index:     i,
			Candidate: c,
			Score:     scored.Score,
			Kind:      scored.Kind,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
