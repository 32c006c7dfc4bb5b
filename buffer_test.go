package fuzzymatch

import "testing"

func TestShrinkTargetRespectsFloor(t *testing.T) {
	if got := shrinkTarget(128, 10); got != 128 {
		t.Errorf("shrinkTarget(128, 10) = %d, want 128 (floor)", got)
	}
	if got := shrinkTarget(128, 1000); got != 2000 {
		t.Errorf("shrinkTarget(128, 1000) = %d, want 2000", got)
	}
}

func TestEnsureEditDistanceRowsGrows(t *testing.T) {
	buf := NewScoringBuffer()
	buf.ensureEditDistanceRows(10)
	for i, row := range buf.editDistanceRows {
		if len(row) != 11 {
			t.Errorf("row %d length = %d, want 11", i, len(row))
		}
	}
}

func TestEnsureMatchPositionsResetsLength(t *testing.T) {
	buf := NewScoringBuffer()
	buf.ensureMatchPositions(5)
	buf.matchPositions = append(buf.matchPositions, 1, 2, 3)
	buf.ensureMatchPositions(5)
	if len(buf.matchPositions) != 0 {
		t.Errorf("expected reset length 0, got %d", len(buf.matchPositions))
	}
	if cap(buf.matchPositions) < 5 {
		t.Errorf("expected capacity >= 5, got %d", cap(buf.matchPositions))
	}
}

func TestMaybeShrinkAfterOversizedCandidate(t *testing.T) {
	buf := NewScoringBuffer()
	buf.ensureCandidateStorage(10000)
	bigCap := cap(buf.candidateBytes)
	if bigCap < 10000 {
		t.Fatalf("expected growth to >= 10000, got %d", bigCap)
	}

	buf.highWaterC = 10
	buf.maybeShrink()

	if cap(buf.candidateBytes) >= bigCap {
		t.Errorf("expected candidateBytes to shrink below %d, got %d", bigCap, cap(buf.candidateBytes))
	}
	if cap(buf.candidateBytes) < candidateFloor {
		t.Errorf("shrunk capacity %d below floor %d", cap(buf.candidateBytes), candidateFloor)
	}
}

func TestRecordUsageTriggersShrinkOnInterval(t *testing.T) {
	buf := NewScoringBuffer()
	buf.ensureCandidateStorage(10000)
	bigCap := cap(buf.candidateBytes)

	for i := 0; i < shrinkCheckInterval; i++ {
		buf.recordUsage(3, 5)
	}

	if cap(buf.candidateBytes) >= bigCap {
		t.Errorf("expected shrink after %d calls with small usage, cap stayed at %d", shrinkCheckInterval, cap(buf.candidateBytes))
	}
	if buf.callsSinceCheck != 0 {
		t.Errorf("callsSinceCheck = %d, want reset to 0", buf.callsSinceCheck)
	}
}

func TestEnsureAlignmentStateSizing(t *testing.T) {
	buf := NewScoringBuffer()
	buf.ensureAlignmentState(3, 5)
	want := (5 + 1) * (3 + 1)
	if len(buf.alignmentM) != want || len(buf.alignmentG) != want {
		t.Errorf("alignment matrices length = %d/%d, want %d", len(buf.alignmentM), len(buf.alignmentG), want)
	}
}

func TestEnsureTrigramSeenClearsStaleFlags(t *testing.T) {
	buf := NewScoringBuffer()
	buf.ensureTrigramSeen(4)
	buf.trigramSeen[2] = true
	buf.ensureTrigramSeen(4)
	for i, seen := range buf.trigramSeen {
		if seen {
			t.Errorf("trigramSeen[%d] still true after re-ensure", i)
		}
	}
}
