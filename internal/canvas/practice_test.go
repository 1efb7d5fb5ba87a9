package canvas

import (
	"context"
	"errors"
	"testing"
)

// scriptedChecker returns queued single-stroke accuracies and records calls.
type scriptedChecker struct {
	strokeScores []float64
	strokeErr    error
	kanjiResult  *AccuracyResult
	kanjiErr     error

	strokeCalls int
	kanjiCalls  int
}

func (c *scriptedChecker) CheckStroke(_ context.Context, _ Stroke, _ ReferenceStroke) (*AccuracyResult, error) {
	c.strokeCalls++
	if c.strokeErr != nil {
		return nil, c.strokeErr
	}
	score := 1.0
	if len(c.strokeScores) > 0 {
		score = c.strokeScores[0]
		c.strokeScores = c.strokeScores[1:]
	}
	return &AccuracyResult{OverallAccuracy: score, StrokeAccuracies: []float64{score}}, nil
}

func (c *scriptedChecker) CheckKanji(_ context.Context, user []Stroke, _ []ReferenceStroke) (*AccuracyResult, error) {
	c.kanjiCalls++
	if c.kanjiErr != nil {
		return nil, c.kanjiErr
	}
	if c.kanjiResult != nil {
		return c.kanjiResult, nil
	}
	accs := make([]float64, len(user))
	for i := range accs {
		accs[i] = 1
	}
	return &AccuracyResult{OverallAccuracy: 1, StrokeAccuracies: accs}, nil
}

func twoRefs() []ReferenceStroke {
	return []ReferenceStroke{
		{{10, 10}, {50, 50}},
		{{60, 10}, {60, 90}},
	}
}

func TestGuided_PassThrough(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{strokeScores: []float64{0.9, 0.8}}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	m.PointerDown(Point{10, 10})
	m.PointerMove(Point{50, 50})
	res := m.PointerUp(ctx)
	if !res.Accepted || res.EnteredFree {
		t.Fatalf("first stroke: %+v, want accepted, not free", res)
	}
	if m.StrokeIndex() != 1 {
		t.Errorf("StrokeIndex = %d, want 1", m.StrokeIndex())
	}

	m.PointerDown(Point{60, 10})
	m.PointerMove(Point{60, 90})
	res = m.PointerUp(ctx)
	if !res.Accepted || !res.EnteredFree {
		t.Fatalf("second stroke: %+v, want accepted and entered free", res)
	}
	if m.Mode() != ModeFree {
		t.Errorf("Mode = %v, want ModeFree", m.Mode())
	}
	if len(m.Attempt()) != 0 {
		t.Errorf("attempt has %d strokes after mode transition, want 0", len(m.Attempt()))
	}
	if m.StrokeIndex() != 0 {
		t.Errorf("StrokeIndex = %d after transition, want 0", m.StrokeIndex())
	}
}

func TestGuided_RetryBelowThreshold(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{strokeScores: []float64{0.5}}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	m.PointerDown(Point{10, 10})
	res := m.PointerUp(ctx)
	if !res.Retry {
		t.Fatalf("result %+v, want retry", res)
	}
	if m.StrokeIndex() != 0 {
		t.Errorf("StrokeIndex = %d, want 0 (unchanged)", m.StrokeIndex())
	}
	if len(m.Attempt()) != 0 {
		t.Errorf("attempt has %d strokes, want 0 (stroke discarded)", len(m.Attempt()))
	}
}

func TestGuided_GatewayFailureDiscardsStroke(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{strokeErr: errors.New("network down")}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	m.PointerDown(Point{10, 10})
	res := m.PointerUp(ctx)
	if res.Err == nil {
		t.Fatal("expected gateway error surfaced")
	}
	if m.StrokeIndex() != 0 || len(m.Attempt()) != 0 {
		t.Error("failed submission must leave the machine unmoved with no attempt entry")
	}
}

func TestGuided_IndexMonotonic(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{strokeScores: []float64{0.9, 0.3, 0.3, 0.71}}
	refs := []ReferenceStroke{{{0, 0}}, {{1, 1}}, {{2, 2}}}
	m := NewMachine(refs, checker, LearningOptions())

	prev := m.StrokeIndex()
	for i := 0; i < 4; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
		if m.StrokeIndex() < prev {
			t.Fatalf("StrokeIndex decreased: %d -> %d", prev, m.StrokeIndex())
		}
		if m.StrokeIndex() > prev+1 {
			t.Fatalf("StrokeIndex jumped: %d -> %d", prev, m.StrokeIndex())
		}
		prev = m.StrokeIndex()
	}
}

func TestFree_StrokesKeptUnconditionally(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, ReviewOptions())

	if m.Mode() != ModeFree {
		t.Fatal("review machine must start in free mode")
	}
	for i := 0; i < 3; i++ {
		m.PointerDown(Point{float64(i * 10), 10})
		m.PointerUp(ctx)
	}
	if len(m.Attempt()) != 3 {
		t.Errorf("attempt has %d strokes, want 3", len(m.Attempt()))
	}
	if checker.strokeCalls != 0 {
		t.Errorf("free mode issued %d single-stroke checks, want 0", checker.strokeCalls)
	}
}

func TestFinalCheck_CountMismatchShortCircuits(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{}
	refs := []ReferenceStroke{{{0, 0}}, {{1, 1}}, {{2, 2}}} // N=3
	m := NewMachine(refs, checker, ReviewOptions())

	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}

	res := m.FinalCheck(ctx)
	if res.Score != 0 || !res.Mismatch {
		t.Fatalf("result %+v, want score 0 with mismatch", res)
	}
	if checker.kanjiCalls != 0 {
		t.Errorf("mismatch issued %d network calls, want 0", checker.kanjiCalls)
	}
	if res.Result == nil || len(res.Result.StrokeAccuracies) != 2 {
		t.Fatalf("synthesized result %+v, want 2 zero entries", res.Result)
	}
	for i, a := range res.Result.StrokeAccuracies {
		if a != 0 {
			t.Errorf("StrokeAccuracies[%d] = %v, want 0", i, a)
		}
	}
	if !m.Reviewing() {
		t.Error("mismatch must still enter the reviewing state")
	}
}

func TestFinalCheck_CountMismatchBlocksInLearning(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{strokeScores: []float64{0.9, 0.9}}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	// Pass guided, then draw the wrong number of free strokes.
	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}
	m.PointerDown(Point{5, 5})
	m.PointerUp(ctx)

	res := m.FinalCheck(ctx)
	if !res.Mismatch || res.Result != nil {
		t.Fatalf("result %+v, want blocking mismatch with no synthesized result", res)
	}
	if checker.kanjiCalls != 0 {
		t.Errorf("mismatch issued %d network calls, want 0", checker.kanjiCalls)
	}
	if m.Reviewing() {
		t.Error("blocking mismatch must not enter the reviewing state")
	}
	if len(m.Attempt()) != 1 {
		t.Error("attempt must be preserved so the learner can fix it")
	}
}

func TestFinalCheck_SuccessRoundsScore(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{kanjiResult: &AccuracyResult{
		OverallAccuracy:  0.875,
		StrokeAccuracies: []float64{0.9, 0.85},
	}}
	m := NewMachine(twoRefs(), checker, ReviewOptions())

	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}

	res := m.FinalCheck(ctx)
	if res.Score != 88 {
		t.Errorf("Score = %d, want 88 (round(0.875*100))", res.Score)
	}
	if !m.Reviewing() {
		t.Error("expected reviewing state after successful final check")
	}
	if m.Result() == nil {
		t.Error("expected stored accuracy result")
	}
}

func TestFinalCheck_GatewayFailure(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{kanjiErr: errors.New("503")}
	m := NewMachine(twoRefs(), checker, ReviewOptions())

	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}

	res := m.FinalCheck(ctx)
	if res.Score != 0 || res.Err == nil {
		t.Fatalf("result %+v, want score 0 with error", res)
	}
	if m.Reviewing() {
		t.Error("gateway failure must not enter the reviewing state")
	}
	if len(m.Attempt()) != 2 {
		t.Error("attempt must be preserved after gateway failure")
	}
}

func TestFinalCheck_RequiresNonEmptyAttempt(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, ReviewOptions())

	res := m.FinalCheck(ctx)
	if res.Result != nil || m.Reviewing() || checker.kanjiCalls != 0 {
		t.Error("final check on empty attempt must be a no-op")
	}
}

func TestUndo_ExitsReviewing(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, ReviewOptions())

	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}
	m.FinalCheck(ctx)
	if !m.Reviewing() {
		t.Fatal("precondition: reviewing")
	}

	m.Undo()
	if m.Reviewing() {
		t.Error("Undo must clear the reviewing state")
	}
	if m.Result() != nil {
		t.Error("Undo must discard the accuracy result")
	}
	if len(m.Attempt()) != 1 {
		t.Errorf("attempt has %d strokes after undo, want 1", len(m.Attempt()))
	}
}

func TestUndo_IgnoredInGuidedMode(t *testing.T) {
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, LearningOptions())
	m.Undo()
	if m.Mode() != ModeGuided || m.StrokeIndex() != 0 {
		t.Error("Undo in guided mode must be a no-op")
	}
}

func TestReset_FullAndPartial(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{strokeScores: []float64{0.9, 0.9}}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	// Pass guided, draw in free, score.
	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}
	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}
	m.FinalCheck(ctx)

	// Partial reset: clears attempt/result but stays in free mode.
	m.ClearAttempt()
	if m.Mode() != ModeFree {
		t.Error("partial reset must not re-enter guided mode")
	}
	if len(m.Attempt()) != 0 || m.Reviewing() || m.Result() != nil {
		t.Error("partial reset must clear attempt, result and reviewing flag")
	}

	// Full reset: back to guided step zero.
	m.Reset()
	if m.Mode() != ModeGuided || m.StrokeIndex() != 0 {
		t.Error("full reset must return to guided stroke 0")
	}
}

func TestSealStroke_DefersGuidedJudgment(t *testing.T) {
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	m.PointerDown(Point{10, 10})
	m.PointerMove(Point{50, 50})
	stroke := m.SealStroke()
	if stroke == nil {
		t.Fatal("expected a sealed stroke")
	}
	if checker.strokeCalls != 0 {
		t.Fatalf("SealStroke issued %d checks, want 0 (caller submits)", checker.strokeCalls)
	}
	if len(m.Attempt()) != 1 {
		t.Error("sealed stroke must stay visible in the attempt while pending")
	}
	if m.StrokeIndex() != 0 {
		t.Error("guided step must not advance before the verdict")
	}

	res := m.ResolveStroke(&AccuracyResult{OverallAccuracy: 0.9}, nil)
	if !res.Accepted {
		t.Fatalf("result %+v, want accepted", res)
	}
	if m.StrokeIndex() != 1 {
		t.Errorf("StrokeIndex = %d after accept, want 1", m.StrokeIndex())
	}
}

func TestResolveStroke_RequiresPendingStroke(t *testing.T) {
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, LearningOptions())

	res := m.ResolveStroke(&AccuracyResult{OverallAccuracy: 1}, nil)
	if res.Accepted || res.Retry || res.Err != nil {
		t.Fatalf("result %+v, want zero result with no pending stroke", res)
	}
	if m.StrokeIndex() != 0 {
		t.Error("verdict without a pending stroke must not move the machine")
	}

	// A second verdict for the same stroke is likewise dropped.
	m.PointerDown(Point{10, 10})
	m.SealStroke()
	m.ResolveStroke(&AccuracyResult{OverallAccuracy: 0.9}, nil)
	res = m.ResolveStroke(&AccuracyResult{OverallAccuracy: 0.9}, nil)
	if res.Accepted || m.StrokeIndex() != 1 {
		t.Error("duplicate verdict must be a no-op")
	}
}

func TestBeginFinalCheck_DefersScoring(t *testing.T) {
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, ReviewOptions())
	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.SealStroke()
	}

	r, submit := m.BeginFinalCheck()
	if !submit {
		t.Fatalf("result %+v, want pending submission", r)
	}
	if checker.kanjiCalls != 0 {
		t.Fatal("BeginFinalCheck must not call the backend itself")
	}
	if m.Reviewing() {
		t.Fatal("machine must stay out of reviewing while the check is in flight")
	}

	final := m.ResolveFinal(&AccuracyResult{
		OverallAccuracy:  0.8,
		StrokeAccuracies: []float64{0.8, 0.8},
	}, nil)
	if final.Score != 80 || !m.Reviewing() {
		t.Fatalf("result %+v (reviewing=%v), want score 80 and reviewing", final, m.Reviewing())
	}

	// Without a pending check the verdict is dropped.
	if again := m.ResolveFinal(&AccuracyResult{OverallAccuracy: 1}, nil); again.Result != nil {
		t.Error("duplicate final verdict must be a no-op")
	}
}

func TestBeginFinalCheck_MismatchResolvesLocally(t *testing.T) {
	checker := &scriptedChecker{}
	refs := []ReferenceStroke{{{0, 0}}, {{1, 1}}, {{2, 2}}}
	m := NewMachine(refs, checker, ReviewOptions())
	m.PointerDown(Point{5, 5})
	m.SealStroke()

	r, submit := m.BeginFinalCheck()
	if submit {
		t.Fatal("mismatch must resolve without a submission")
	}
	if !r.Mismatch || r.Result == nil || !m.Reviewing() {
		t.Fatalf("result %+v, want local zero-accuracy completion", r)
	}
}

func TestAttempt_ReturnsIsolatedCopy(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, ReviewOptions())
	m.PointerDown(Point{10, 10})
	m.PointerUp(ctx)
	m.PointerDown(Point{20, 20})
	m.PointerUp(ctx)

	captured := m.Attempt()

	// Edit the attempt after the handoff: the caller's slice must not see it.
	m.Undo()
	m.PointerDown(Point{90, 90})
	m.PointerUp(ctx)

	if len(captured) != 2 {
		t.Fatalf("captured attempt has %d strokes, want 2", len(captured))
	}
	if captured[1][0] != (Point{20, 20}) {
		t.Errorf("captured stroke mutated after undo/redraw: %v", captured[1][0])
	}
}

func TestPointerDown_IgnoredWhileReviewing(t *testing.T) {
	ctx := context.Background()
	checker := &scriptedChecker{}
	m := NewMachine(twoRefs(), checker, ReviewOptions())
	for i := 0; i < 2; i++ {
		m.PointerDown(Point{5, 5})
		m.PointerUp(ctx)
	}
	m.FinalCheck(ctx)

	m.PointerDown(Point{5, 5})
	if m.Drawing() {
		t.Error("drawing must be frozen while reviewing")
	}
}
