package srs

import (
	"testing"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
)

func testBatch(chars ...string) []api.CharacterDetail {
	batch := make([]api.CharacterDetail, len(chars))
	for i, c := range chars {
		batch[i] = api.CharacterDetail{UUID: "uuid-" + c, Character: c}
	}
	return batch
}

func TestSessionWalksBatchInOrder(t *testing.T) {
	s := NewSession(KindLesson, testBatch("水", "火", "木"))

	if s.Done() {
		t.Fatal("fresh session reports done")
	}
	if s.ID() == "" {
		t.Error("expected non-empty session ID")
	}

	order := []string{"水", "火", "木"}
	for i, want := range order {
		cur := s.Current()
		if cur == nil {
			t.Fatalf("Current() = nil at step %d", i)
		}
		if cur.Character != want {
			t.Errorf("step %d character = %q, want %q", i, cur.Character, want)
		}
		pos, total := s.Position()
		if pos != i+1 || total != 3 {
			t.Errorf("step %d position = %d/%d, want %d/3", i, pos, total, i+1)
		}
		s.Complete(80 + i)
	}

	if !s.Done() {
		t.Error("session not done after completing all characters")
	}
	if s.Current() != nil {
		t.Error("Current() should be nil when done")
	}

	// Completing past the end must not grow results.
	s.Complete(99)
	if len(s.Results()) != 3 {
		t.Errorf("results = %d, want 3", len(s.Results()))
	}
}

func TestSummarize(t *testing.T) {
	s := NewSession(KindReview, testBatch("水", "火", "木", "金"))
	for _, score := range []int{90, 70, 60, 0} {
		s.Complete(score)
	}

	sum := s.Summarize()
	if sum.Kind != KindReview {
		t.Errorf("kind = %q, want review", sum.Kind)
	}
	if sum.ItemsTotal != 4 || sum.ItemsDone != 4 {
		t.Errorf("items = %d/%d, want 4/4", sum.ItemsDone, sum.ItemsTotal)
	}
	if sum.AverageScore != 55 {
		t.Errorf("average = %v, want 55", sum.AverageScore)
	}
	// 90 and 70 pass, 60 and 0 do not.
	if sum.Passed != 2 {
		t.Errorf("passed = %d, want 2", sum.Passed)
	}
}

func TestSummarizeMidSession(t *testing.T) {
	s := NewSession(KindLesson, testBatch("水", "火", "木"))
	s.Complete(100)

	sum := s.Summarize()
	if sum.ItemsDone != 1 || sum.ItemsTotal != 3 {
		t.Errorf("items = %d/%d, want 1/3", sum.ItemsDone, sum.ItemsTotal)
	}
	if sum.AverageScore != 100 {
		t.Errorf("average = %v, want 100", sum.AverageScore)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewSession(KindLesson, nil)
	if !s.Done() {
		t.Error("empty batch should be immediately done")
	}
	sum := s.Summarize()
	if sum.AverageScore != 0 || sum.Passed != 0 {
		t.Errorf("empty summary = %+v", sum)
	}
}
