package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
)

// recordingChecker counts backend calls and returns a fixed score.
type recordingChecker struct {
	score       float64
	strokeCalls int
	kanjiCalls  int
}

func (c *recordingChecker) CheckStroke(_ context.Context, _ canvas.Stroke, _ canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	c.strokeCalls++
	return &canvas.AccuracyResult{OverallAccuracy: c.score, StrokeAccuracies: []float64{c.score}}, nil
}

func (c *recordingChecker) CheckKanji(_ context.Context, user []canvas.Stroke, _ []canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	c.kanjiCalls++
	accs := make([]float64, len(user))
	for i := range accs {
		accs[i] = c.score
	}
	return &canvas.AccuracyResult{OverallAccuracy: c.score, StrokeAccuracies: accs}, nil
}

func twoStrokeChar() api.CharacterDetail {
	return api.CharacterDetail{
		UUID:      "u-1",
		Character: "二",
		ReferenceStrokes: [][][2]float64{
			{{10, 30}, {90, 30}},
			{{10, 70}, {90, 70}},
		},
	}
}

func drawStroke(s *PracticeScreen) tea.Cmd {
	s.Update(tea.MouseClickMsg{X: canvasLeft + 5, Y: canvasTop + 5, Button: tea.MouseLeft})
	s.Update(tea.MouseMotionMsg{X: canvasLeft + 20, Y: canvasTop + 10})
	_, cmd := s.Update(tea.MouseReleaseMsg{})
	return cmd
}

func TestGuidedRelease_SealsOnUpdateLoop(t *testing.T) {
	checker := &recordingChecker{score: 0.9}
	s := New(Config{
		Character: twoStrokeChar(),
		Checker:   checker,
		Options:   canvas.LearningOptions(),
	})

	cmd := drawStroke(s)
	if cmd == nil {
		t.Fatal("expected a judgment command")
	}

	// The release handler itself must not touch the network: the stroke is
	// sealed synchronously and the check runs inside the command.
	if checker.strokeCalls != 0 {
		t.Fatalf("release issued %d checks on the update loop, want 0", checker.strokeCalls)
	}
	if s.machine.Drawing() {
		t.Error("stroke must be sealed before the command runs")
	}
	if len(s.machine.Attempt()) != 1 {
		t.Error("sealed stroke must stay visible while the check is in flight")
	}
	if !s.checking {
		t.Error("screen must block input while the check is in flight")
	}

	// Further motion while in flight must not reopen or extend anything.
	s.Update(tea.MouseMotionMsg{X: canvasLeft + 25, Y: canvasTop + 12})
	if s.machine.Drawing() {
		t.Error("motion after release must not reopen the stroke")
	}

	msg := cmd()
	judged, ok := msg.(strokeJudgedMsg)
	if !ok {
		t.Fatalf("command produced %T, want strokeJudgedMsg", msg)
	}
	if checker.strokeCalls != 1 {
		t.Fatalf("command issued %d checks, want 1", checker.strokeCalls)
	}

	s.Update(judged)
	if s.checking {
		t.Error("checking must clear once the verdict lands")
	}
	if s.machine.StrokeIndex() != 1 {
		t.Errorf("StrokeIndex = %d after accepted verdict, want 1", s.machine.StrokeIndex())
	}
}

func TestFinalCheck_ScoresInCommand(t *testing.T) {
	checker := &recordingChecker{score: 0.8}
	s := New(Config{
		Character: twoStrokeChar(),
		Checker:   checker,
		Options:   canvas.ReviewOptions(),
	})

	drawStroke(s)
	drawStroke(s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a scoring command")
	}
	if checker.kanjiCalls != 0 {
		t.Fatalf("enter issued %d scoring calls on the update loop, want 0", checker.kanjiCalls)
	}
	if s.machine.Reviewing() {
		t.Error("machine must not review before the score lands")
	}

	msg := cmd()
	checked, ok := msg.(finalCheckedMsg)
	if !ok {
		t.Fatalf("command produced %T, want finalCheckedMsg", msg)
	}
	if checker.kanjiCalls != 1 {
		t.Fatalf("command issued %d scoring calls, want 1", checker.kanjiCalls)
	}

	s.Update(checked)
	if !s.machine.Reviewing() {
		t.Error("verdict must enter the reviewing state")
	}
	if s.lastResult == nil || s.lastResult.Score != 80 {
		t.Fatalf("lastResult = %+v, want score 80", s.lastResult)
	}
}

func TestFinalCheck_MismatchResolvesWithoutCommand(t *testing.T) {
	checker := &recordingChecker{score: 0.8}
	s := New(Config{
		Character: twoStrokeChar(),
		Checker:   checker,
		Options:   canvas.ReviewOptions(),
	})

	drawStroke(s) // one stroke, reference wants two

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if checker.kanjiCalls != 0 {
		t.Error("stroke-count mismatch must not reach the backend")
	}
	if !s.machine.Reviewing() {
		t.Error("review mismatch must complete locally")
	}
	if s.lastResult == nil || !s.lastResult.Mismatch || s.lastResult.Score != 0 {
		t.Fatalf("lastResult = %+v, want local zero-score mismatch", s.lastResult)
	}
	// The only command is the journal append; without an event repo there is
	// nothing left to run.
	if cmd != nil {
		t.Error("expected no command without an event repo")
	}
}
