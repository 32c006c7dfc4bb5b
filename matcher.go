package fuzzymatch

import "go.uber.org/zap"

// FuzzyMatcher is the immutable config + algorithm selector. It is safe to
// share across threads; each worker calling Score must own its own
// ScoringBuffer (see MakeBuffer).
type FuzzyMatcher struct {
	config MatchConfig
	logger *zap.Logger
}

// MatcherOption customizes NewMatcher beyond the required MatchConfig.
type MatcherOption func(*FuzzyMatcher)

// WithLogger attaches a *zap.Logger used exactly once, at construction, to
// record the resolved configuration at Debug level. The scoring hot path
// never logs. The default is zap.NewNop().
func WithLogger(logger *zap.Logger) MatcherOption {
	return func(m *FuzzyMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMatcher constructs a FuzzyMatcher from a MatchConfig.
func NewMatcher(config MatchConfig, opts ...MatcherOption) *FuzzyMatcher {
	m := &FuzzyMatcher{config: config, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	m.logger.Debug("fuzzymatch matcher constructed",
		zap.String("algorithm", string(config.Algorithm.Kind)),
		zap.Float64("minScore", config.MinScore),
	)
	return m
}

// MakeBuffer returns a fresh scratch buffer with default capacities, ready
// to be passed to Score. Buffers are thread-confined.
func (m *FuzzyMatcher) MakeBuffer() *ScoringBuffer {
	return NewScoringBuffer()
}

// Score scores candidate against prepared using buf as scratch storage,
// dispatching to the edit-distance or Smith-Waterman pipeline per the
// matcher's configured algorithm. Returns (zero, false) if nothing met
// minScore.
func (m *FuzzyMatcher) Score(candidate string, prepared *PreparedQuery, buf *ScoringBuffer) (ScoredMatch, bool) {
	buf.recordUsage(len(prepared.lowercased), len(candidate))

	switch m.config.Algorithm.Kind {
	case AlgorithmSmithWaterman:
		cfg := m.config.Algorithm.SmithWaterman
		return scoreSmithWaterman(buf, prepared, candidate, cfg, defaultAcronymWeightForSW, m.config.MinScore)
	default:
		cfg := m.config.Algorithm.EditDistance
		return scoreEditDistance(buf, prepared, candidate, cfg, m.config.MinScore)
	}
}

// defaultAcronymWeightForSW is the fixed acronym weight the Smith-Waterman
// pipeline passes to the shared acronym matcher: SmithWatermanConfig has no
// acronymWeight field of its own (only EditDistanceConfig does), so the
// shared C11 matcher is given neutral weight 1.0 when run from C10.
const defaultAcronymWeightForSW = 1.0
