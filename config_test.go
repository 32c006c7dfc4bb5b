package fuzzymatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGapPenaltyJSONRoundTrip(t *testing.T) {
	cases := []GapPenalty{
		NoGapPenalty(),
		LinearGapPenalty(0.02),
		AffineGapPenalty(0.03, 0.005),
	}
	for _, gp := range cases {
		data, err := json.Marshal(gp)
		require.NoError(t, err)

		var decoded GapPenalty
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, gp, decoded)
	}
}

func TestGapPenaltyUnknownTagFails(t *testing.T) {
	var gp GapPenalty
	err := json.Unmarshal([]byte(`{"type":"exponential"}`), &gp)
	require.Error(t, err)
}

func TestMatchingAlgorithmJSONRoundTrip(t *testing.T) {
	alg := EditDistanceAlgorithm(DefaultEditDistance())
	data, err := json.Marshal(alg)
	require.NoError(t, err)
	require.Contains(t, string(data), `"type":"editDistance"`)

	var decoded MatchingAlgorithm
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, alg, decoded)

	swAlg := SmithWatermanAlgorithm(DefaultSmithWaterman())
	data, err = json.Marshal(swAlg)
	require.NoError(t, err)

	var decodedSW MatchingAlgorithm
	require.NoError(t, json.Unmarshal(data, &decodedSW))
	require.Equal(t, swAlg, decodedSW)
}

func TestMatchingAlgorithmUnknownTagFails(t *testing.T) {
	var alg MatchingAlgorithm
	err := json.Unmarshal([]byte(`{"type":"regex","config":{}}`), &alg)
	require.Error(t, err)
}

func TestMatchConfigJSONRoundTrip(t *testing.T) {
	cfg := DefaultEditDistanceMatchConfig()
	cfg.MinScore = 0.3

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded MatchConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, cfg, decoded)
}

func TestMatchKindJSONRoundTrip(t *testing.T) {
	for _, k := range []MatchKind{KindExact, KindPrefix, KindSubstring, KindAcronym, KindAlignment} {
		data, err := json.Marshal(k)
		require.NoError(t, err)
		var decoded MatchKind
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, k, decoded)
	}
}

func TestMatchKindUnmarshalRejectsUnknown(t *testing.T) {
	var k MatchKind
	err := json.Unmarshal([]byte(`"bogus"`), &k)
	require.Error(t, err)
}

func TestScoredMatchJSONRoundTrip(t *testing.T) {
	sm := ScoredMatch{Score: 0.87, Kind: KindSubstring}
	data, err := json.Marshal(sm)
	require.NoError(t, err)

	var decoded ScoredMatch
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, sm, decoded)
}
