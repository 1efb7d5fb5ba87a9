package canvas

import (
	"context"
	"errors"
	"testing"
)

func TestRecognizer_EmptyInputShortCircuits(t *testing.T) {
	calls := 0
	r := NewRecognizer(func(_ context.Context, _ []Stroke) ([]Candidate, error) {
		calls++
		return nil, nil
	})

	out := r.Submit(context.Background(), nil)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if len(out.Candidates) != 0 {
		t.Errorf("candidates = %v, want empty", out.Candidates)
	}
	if calls != 0 {
		t.Errorf("endpoint called %d times, want 0", calls)
	}
}

func TestRecognizer_LatestWins(t *testing.T) {
	r := NewRecognizer(func(_ context.Context, strokes []Stroke) ([]Candidate, error) {
		return []Candidate{{UUID: "u", Character: "字"}}, nil
	})

	ctx := context.Background()
	first := r.Submit(ctx, []Stroke{{{1, 1}}})
	second := r.Submit(ctx, []Stroke{{{1, 1}}, {{2, 2}}})

	// Newer response arrives first.
	if !r.Accept(second) {
		t.Fatal("newest outcome must be accepted")
	}
	// The older response is now stale.
	if r.Accept(first) {
		t.Error("stale outcome must be rejected")
	}
	// Re-applying the same outcome is also rejected.
	if r.Accept(second) {
		t.Error("already-applied outcome must be rejected")
	}
}

func TestRecognizer_ErrorPassedThrough(t *testing.T) {
	wantErr := errors.New("recognizer unavailable")
	r := NewRecognizer(func(_ context.Context, _ []Stroke) ([]Candidate, error) {
		return nil, wantErr
	})

	out := r.Submit(context.Background(), []Stroke{{{1, 1}}})
	if !errors.Is(out.Err, wantErr) {
		t.Errorf("err = %v, want %v", out.Err, wantErr)
	}
}
