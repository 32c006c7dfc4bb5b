package fuzzymatch

// ScoringBuffer is caller-owned scratch storage reused across score() calls.
// It is thread-confined: concurrent score() calls sharing a buffer race by
// construction, so each worker must own its own buffer (matcher.MakeBuffer()).
//
// All slices grow on demand and are periodically shrunk back down once usage
// drops, so a buffer that handled one oversized candidate doesn't keep that
// capacity forever.
type ScoringBuffer struct {
	// editDistanceRows holds three rolling rows of qLen+1 ints for the
	// restricted Damerau-Levenshtein core (C6).
	editDistanceRows [3][]int

	// candidateBytes is the compressed (lowercased, mark-stripped) candidate.
	// candidateOrig is the parallel original-case byte array used for
	// boundary classification.
	candidateBytes []byte
	candidateOrig  []byte
	bonus          []int32

	matchPositions []int

	// alignmentM / alignmentG are the two-state (match / gap) DP matrices
	// used by the DP position finder (C7), capped at 512 candidate bytes.
	alignmentM []int32
	alignmentG []int32
	alignCLen  int
	alignQLen  int

	wordInitials []byte

	// smithWatermanM/G/B are the three DP rows used by the Smith-Waterman
	// core (C9).
	smithWatermanM []int32
	smithWatermanG []int32
	smithWatermanB []int32

	trigramSeen []bool

	highWaterQ     int
	highWaterC     int
	callsSinceCheck int
}

const (
	shrinkCheckInterval = 128
	shrinkFactor        = 4

	candidateFloor = 128
	queryFloor     = 64
	swFloor        = 64

	maxAlignmentCLen = 512
)

// NewScoringBuffer returns a buffer with default starting capacities.
func NewScoringBuffer() *ScoringBuffer {
	return &ScoringBuffer{
		editDistanceRows: [3][]int{
			make([]int, 0, queryFloor+1),
			make([]int, 0, queryFloor+1),
			make([]int, 0, queryFloor+1),
		},
		candidateBytes: make([]byte, 0, candidateFloor),
		candidateOrig:  make([]byte, 0, candidateFloor),
		bonus:          make([]int32, 0, candidateFloor),
		matchPositions: make([]int, 0, queryFloor),
		wordInitials:   make([]byte, 0, queryFloor),
		smithWatermanM: make([]int32, 0, queryFloor),
		smithWatermanG: make([]int32, 0, queryFloor),
		smithWatermanB: make([]int32, 0, queryFloor),
	}
}

// recordUsage tracks high-water marks for qLen and cLen and runs the
// periodic shrink check every shrinkCheckInterval calls.
func (b *ScoringBuffer) recordUsage(qLen, cLen int) {
	if qLen > b.highWaterQ {
		b.highWaterQ = qLen
	}
	if cLen > b.highWaterC {
		b.highWaterC = cLen
	}
	b.callsSinceCheck++
	if b.callsSinceCheck >= shrinkCheckInterval {
		b.maybeShrink()
		b.highWaterQ = 0
		b.highWaterC = 0
		b.callsSinceCheck = 0
	}
}

func shrinkTarget(floor, highWater int) int {
	target := 2 * highWater
	if target < floor {
		target = floor
	}
	return target
}

func (b *ScoringBuffer) maybeShrink() {
	if cap(b.candidateBytes) > shrinkFactor*max(b.highWaterC, 1) {
		target := shrinkTarget(candidateFloor, b.highWaterC)
		b.candidateBytes = make([]byte, 0, target)
		b.candidateOrig = make([]byte, 0, target)
		b.bonus = make([]int32, 0, target)
	}
	if cap(b.editDistanceRows[0]) > shrinkFactor*max(b.highWaterQ, 1) {
		target := shrinkTarget(queryFloor, b.highWaterQ) + 1
		for i := range b.editDistanceRows {
			b.editDistanceRows[i] = make([]int, 0, target)
		}
		b.matchPositions = make([]int, 0, target)
		b.wordInitials = make([]byte, 0, target)
	}
	if cap(b.smithWatermanM) > shrinkFactor*max(b.highWaterQ, 1) {
		target := shrinkTarget(swFloor, b.highWaterQ)
		b.smithWatermanM = make([]int32, 0, target)
		b.smithWatermanG = make([]int32, 0, target)
		b.smithWatermanB = make([]int32, 0, target)
	}
}

// ensureEditDistanceRows sizes the three rows to length qLen+1 in place,
// reusing storage when it already has enough capacity.
func (b *ScoringBuffer) ensureEditDistanceRows(qLen int) {
	n := qLen + 1
	for i := range b.editDistanceRows {
		if cap(b.editDistanceRows[i]) < n {
			b.editDistanceRows[i] = make([]int, n)
		} else {
			b.editDistanceRows[i] = b.editDistanceRows[i][:n]
		}
	}
}

func (b *ScoringBuffer) ensureCandidateStorage(n int) {
	if cap(b.candidateBytes) < n {
		b.candidateBytes = make([]byte, 0, n)
	}
	if cap(b.candidateOrig) < n {
		b.candidateOrig = make([]byte, 0, n)
	}
	if cap(b.bonus) < n {
		b.bonus = make([]int32, 0, n)
	}
}

func (b *ScoringBuffer) ensureMatchPositions(n int) {
	if cap(b.matchPositions) < n {
		b.matchPositions = make([]int, 0, n)
	}
	b.matchPositions = b.matchPositions[:0]
}

func (b *ScoringBuffer) ensureWordInitials(n int) {
	if cap(b.wordInitials) < n {
		b.wordInitials = make([]byte, 0, n)
	}
	b.wordInitials = b.wordInitials[:0]
}

func (b *ScoringBuffer) ensureSmithWatermanRows(qLen int) {
	if cap(b.smithWatermanM) < qLen {
		b.smithWatermanM = make([]int32, qLen)
		b.smithWatermanG = make([]int32, qLen)
		b.smithWatermanB = make([]int32, qLen)
	} else {
		b.smithWatermanM = b.smithWatermanM[:qLen]
		b.smithWatermanG = b.smithWatermanG[:qLen]
		b.smithWatermanB = b.smithWatermanB[:qLen]
	}
	for i := range b.smithWatermanM {
		b.smithWatermanM[i] = 0
		b.smithWatermanG[i] = 0
		b.smithWatermanB[i] = 0
	}
}

func (b *ScoringBuffer) ensureTrigramSeen(n int) {
	if cap(b.trigramSeen) < n {
		b.trigramSeen = make([]bool, n)
	} else {
		b.trigramSeen = b.trigramSeen[:n]
		for i := range b.trigramSeen {
			b.trigramSeen[i] = false
		}
	}
}

// ensureAlignmentState sizes the two DP matrices for qLen x cLen, capped at
// maxAlignmentCLen candidate bytes per §4.6; callers must check
// cLen <= maxAlignmentCLen before using it (see findPositions in position.go).
func (b *ScoringBuffer) ensureAlignmentState(qLen, cLen int) {
	n := (cLen + 1) * (qLen + 1)
	if cap(b.alignmentM) < n {
		b.alignmentM = make([]int32, n)
		b.alignmentG = make([]int32, n)
	} else {
		b.alignmentM = b.alignmentM[:n]
		b.alignmentG = b.alignmentG[:n]
	}
	b.alignCLen = cLen
	b.alignQLen = qLen
}
