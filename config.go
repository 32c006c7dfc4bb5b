package fuzzymatch

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// GapPenaltyKind discriminates the three gap-penalty shapes a
// MatchingAlgorithm's edit-distance bonus scoring can use.
type GapPenaltyKind string

const (
	GapPenaltyNone   GapPenaltyKind = "none"
	GapPenaltyLinear GapPenaltyKind = "linear"
	GapPenaltyAffine GapPenaltyKind = "affine"
)

// GapPenalty is a tagged union over the three gap-cost shapes named in
// EditDistanceConfig.gapPenalty.
type GapPenalty struct {
	Kind         GapPenaltyKind
	PerCharacter float64 // linear
	Open         float64 // affine
	Extend       float64 // affine
}

func NoGapPenalty() GapPenalty { return GapPenalty{Kind: GapPenaltyNone} }

func LinearGapPenalty(perCharacter float64) GapPenalty {
	return GapPenalty{Kind: GapPenaltyLinear, PerCharacter: perCharacter}
}

func AffineGapPenalty(open, extend float64) GapPenalty {
	return GapPenalty{Kind: GapPenaltyAffine, Open: open, Extend: extend}
}

// cost returns the penalty for a gap of length g (g is the number of
// unmatched candidate bytes strictly between two consecutive match
// positions). g <= 0 costs nothing.
func (p GapPenalty) cost(g int) float64 {
	if g <= 0 {
		return 0
	}
	switch p.Kind {
	case GapPenaltyLinear:
		return float64(g) * p.PerCharacter
	case GapPenaltyAffine:
		return p.Open + float64(g-1)*p.Extend
	default:
		return 0
	}
}

type gapPenaltyJSON struct {
	Type         GapPenaltyKind `json:"type"`
	PerCharacter *float64       `json:"perCharacter,omitempty"`
	Open         *float64       `json:"open,omitempty"`
	Extend       *float64       `json:"extend,omitempty"`
}

func (p GapPenalty) MarshalJSON() ([]byte, error) {
	wire := gapPenaltyJSON{Type: p.Kind}
	switch p.Kind {
	case GapPenaltyLinear:
		wire.PerCharacter = &p.PerCharacter
	case GapPenaltyAffine:
		wire.Open = &p.Open
		wire.Extend = &p.Extend
	case GapPenaltyNone:
	default:
		return nil, fmt.Errorf("fuzzymatch: unknown GapPenalty type %q", p.Kind)
	}
	return json.Marshal(wire)
}

func (p *GapPenalty) UnmarshalJSON(data []byte) error {
	var wire gapPenaltyJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Type {
	case GapPenaltyNone:
		*p = NoGapPenalty()
	case GapPenaltyLinear:
		if wire.PerCharacter == nil {
			return errors.New("fuzzymatch: linear gap penalty missing perCharacter")
		}
		*p = LinearGapPenalty(*wire.PerCharacter)
	case GapPenaltyAffine:
		if wire.Open == nil || wire.Extend == nil {
			return errors.New("fuzzymatch: affine gap penalty missing open/extend")
		}
		*p = AffineGapPenalty(*wire.Open, *wire.Extend)
	default:
		return fmt.Errorf("fuzzymatch: unknown GapPenalty type %q", wire.Type)
	}
	return nil
}

// EditDistanceConfig tunes the restricted Damerau-Levenshtein pipeline (C6-C8).
type EditDistanceConfig struct {
	MaxEditDistance          int        `json:"maxEditDistance"`
	LongQueryMaxEditDistance int        `json:"longQueryMaxEditDistance"`
	LongQueryThreshold       int        `json:"longQueryThreshold"`
	PrefixWeight             float64    `json:"prefixWeight"`
	SubstringWeight          float64    `json:"substringWeight"`
	WordBoundaryBonus        float64    `json:"wordBoundaryBonus"`
	ConsecutiveBonus         float64    `json:"consecutiveBonus"`
	GapPenalty               GapPenalty `json:"gapPenalty"`
	FirstMatchBonus          float64    `json:"firstMatchBonus"`
	FirstMatchBonusRange     float64    `json:"firstMatchBonusRange"`
	LengthPenalty            float64    `json:"lengthPenalty"`
	AcronymWeight            float64    `json:"acronymWeight"`
}

// DefaultEditDistance returns the reference edit-distance tuning from §3.
func DefaultEditDistance() EditDistanceConfig {
	return EditDistanceConfig{
		MaxEditDistance:          2,
		LongQueryMaxEditDistance: 3,
		LongQueryThreshold:       13,
		PrefixWeight:             1.5,
		SubstringWeight:          1.0,
		WordBoundaryBonus:        0.1,
		ConsecutiveBonus:         0.05,
		GapPenalty:               AffineGapPenalty(0.03, 0.005),
		FirstMatchBonus:          0.15,
		FirstMatchBonusRange:     10,
		LengthPenalty:            0.003,
		AcronymWeight:            1.0,
	}
}

// SmithWatermanConfig tunes the local-alignment pipeline (C9-C10). All
// scoring quantities are integers per §3/§4.9.
type SmithWatermanConfig struct {
	ScoreMatch               int  `json:"scoreMatch"`
	PenaltyGapStart          int  `json:"penaltyGapStart"`
	PenaltyGapExtend         int  `json:"penaltyGapExtend"`
	BonusConsecutive         int  `json:"bonusConsecutive"`
	BonusBoundary            int  `json:"bonusBoundary"`
	BonusBoundaryWhitespace  int  `json:"bonusBoundaryWhitespace"`
	BonusBoundaryDelimiter   int  `json:"bonusBoundaryDelimiter"`
	BonusCamelCase           int  `json:"bonusCamelCase"`
	BonusFirstCharMultiplier int  `json:"bonusFirstCharMultiplier"`
	SplitSpaces              bool `json:"splitSpaces"`
}

// DefaultSmithWaterman returns the reference Smith-Waterman tuning from §3.
func DefaultSmithWaterman() SmithWatermanConfig {
	return SmithWatermanConfig{
		ScoreMatch:               16,
		PenaltyGapStart:          3,
		PenaltyGapExtend:         1,
		BonusConsecutive:         4,
		BonusBoundary:            8,
		BonusBoundaryWhitespace:  10,
		BonusBoundaryDelimiter:   9,
		BonusCamelCase:           5,
		BonusFirstCharMultiplier: 2,
		SplitSpaces:              true,
	}
}

// MatchingAlgorithmKind discriminates the two MatchingAlgorithm variants.
type MatchingAlgorithmKind string

const (
	AlgorithmEditDistance  MatchingAlgorithmKind = "editDistance"
	AlgorithmSmithWaterman MatchingAlgorithmKind = "smithWaterman"
)

// MatchingAlgorithm is a tagged union selecting which pipeline a
// FuzzyMatcher runs: edit-distance (C6-C8) or Smith-Waterman (C9-C10).
// Exactly one of EditDistance / SmithWaterman is populated, per Kind.
type MatchingAlgorithm struct {
	Kind          MatchingAlgorithmKind
	EditDistance  EditDistanceConfig
	SmithWaterman SmithWatermanConfig
}

func EditDistanceAlgorithm(cfg EditDistanceConfig) MatchingAlgorithm {
	return MatchingAlgorithm{Kind: AlgorithmEditDistance, EditDistance: cfg}
}

func SmithWatermanAlgorithm(cfg SmithWatermanConfig) MatchingAlgorithm {
	return MatchingAlgorithm{Kind: AlgorithmSmithWaterman, SmithWaterman: cfg}
}

type matchingAlgorithmJSON struct {
	Type   MatchingAlgorithmKind `json:"type"`
	Config json.RawMessage       `json:"config"`
}

func (a MatchingAlgorithm) MarshalJSON() ([]byte, error) {
	var cfg interface{}
	switch a.Kind {
	case AlgorithmEditDistance:
		cfg = a.EditDistance
	case AlgorithmSmithWaterman:
		cfg = a.SmithWaterman
	default:
		return nil, fmt.Errorf("fuzzymatch: unknown MatchingAlgorithm type %q", a.Kind)
	}
	rawCfg, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(matchingAlgorithmJSON{Type: a.Kind, Config: rawCfg})
}

func (a *MatchingAlgorithm) UnmarshalJSON(data []byte) error {
	var wire matchingAlgorithmJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Type {
	case AlgorithmEditDistance:
		var cfg EditDistanceConfig
		if err := json.Unmarshal(wire.Config, &cfg); err != nil {
			return errors.Wrap(err, "fuzzymatch: decoding editDistance config")
		}
		*a = EditDistanceAlgorithm(cfg)
	case AlgorithmSmithWaterman:
		var cfg SmithWatermanConfig
		if err := json.Unmarshal(wire.Config, &cfg); err != nil {
			return errors.Wrap(err, "fuzzymatch: decoding smithWaterman config")
		}
		*a = SmithWatermanAlgorithm(cfg)
	default:
		return fmt.Errorf("fuzzymatch: unknown MatchingAlgorithm type %q", wire.Type)
	}
	return nil
}

// MatchConfig is the top-level configuration passed to NewMatcher: an
// algorithm selection plus the shared acceptance threshold.
type MatchConfig struct {
	Algorithm MatchingAlgorithm `json:"algorithm"`
	MinScore  float64           `json:"minScore"`
}

// DefaultEditDistanceMatchConfig is the preset most callers reach for first:
// DefaultEditDistance() with minScore 0.
func DefaultEditDistanceMatchConfig() MatchConfig {
	return MatchConfig{Algorithm: EditDistanceAlgorithm(DefaultEditDistance())}
}

// DefaultSmithWatermanMatchConfig mirrors DefaultEditDistanceMatchConfig for
// the Smith-Waterman algorithm.
func DefaultSmithWatermanMatchConfig() MatchConfig {
	return MatchConfig{Algorithm: SmithWatermanAlgorithm(DefaultSmithWaterman())}
}
