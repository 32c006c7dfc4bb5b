package fuzzymatch

import (
	"encoding/json"
	"fmt"
)

// MatchKind classifies how a score was produced.
type MatchKind string

const (
	KindExact     MatchKind = "exact"
	KindPrefix    MatchKind = "prefix"
	KindSubstring MatchKind = "substring"
	KindAcronym   MatchKind = "acronym"
	KindAlignment MatchKind = "alignment"
)

func (k MatchKind) String() string { return string(k) }

func (k MatchKind) valid() bool {
	switch k {
	case KindExact, KindPrefix, KindSubstring, KindAcronym, KindAlignment:
		return true
	}
	return false
}

// MarshalJSON renders MatchKind as its bare string form.
func (k MatchKind) MarshalJSON() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("fuzzymatch: invalid MatchKind %q", string(k))
	}
	return []byte(`"` + string(k) + `"`), nil
}

// UnmarshalJSON rejects any value outside the five documented kinds.
func (k *MatchKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	candidate := MatchKind(s)
	if !candidate.valid() {
		return fmt.Errorf("fuzzymatch: unknown MatchKind %q", s)
	}
	*k = candidate
	return nil
}

// ScoredMatch is the result of scoring one candidate against a prepared
// query: a normalized similarity in [0,1] and the classification that
// produced it.
type ScoredMatch struct {
	Score float64   `json:"score"`
	Kind  MatchKind `json:"kind"`
}

// MatchResult pairs a ScoredMatch with the candidate it was computed for,
// as returned by the ranking convenience wrappers in rank.go.
type MatchResult struct {
	Index     int       `json:"index"`
	Candidate string    `json:"candidate"`
	Score     float64   `json:"score"`
	Kind      MatchKind `json:"kind"`
}
