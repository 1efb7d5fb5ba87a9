package canvas

import (
	"context"
	"sync/atomic"
)

// Candidate is a ranked character candidate returned by the recognition
// endpoint.
type Candidate struct {
	UUID      string `json:"uuid"`
	Character string `json:"character"`
}

// RecognizeFunc submits strokes-so-far to the recognition endpoint.
type RecognizeFunc func(ctx context.Context, strokes []Stroke) ([]Candidate, error)

// Recognizer serializes recognition requests with a monotonically increasing
// sequence number so a slow response can never overwrite the candidates of a
// newer one. Requests are re-issued after every completed stroke and every
// undo; only the latest result is applied.
type Recognizer struct {
	fn     RecognizeFunc
	issued atomic.Uint64
	latest atomic.Uint64
}

// NewRecognizer creates a Recognizer over the given endpoint func.
func NewRecognizer(fn RecognizeFunc) *Recognizer {
	return &Recognizer{fn: fn}
}

// Outcome is the result of one recognition request.
type Outcome struct {
	Seq        uint64
	Candidates []Candidate
	Err        error
}

// Submit issues a recognition request for the given strokes. Empty input
// short-circuits to an empty candidate list without a network call, but
// still consumes a sequence number so it supersedes in-flight requests.
func (r *Recognizer) Submit(ctx context.Context, strokes []Stroke) Outcome {
	seq := r.issued.Add(1)

	if len(strokes) == 0 {
		return Outcome{Seq: seq, Candidates: []Candidate{}}
	}

	cands, err := r.fn(ctx, strokes)
	return Outcome{Seq: seq, Candidates: cands, Err: err}
}

// Accept reports whether the outcome is still the freshest response and, if
// so, marks it applied. A stale outcome (an older request resolving after a
// newer one) returns false and must be dropped by the caller.
func (r *Recognizer) Accept(out Outcome) bool {
	for {
		cur := r.latest.Load()
		if out.Seq <= cur {
			return false
		}
		if r.latest.CompareAndSwap(cur, out.Seq) {
			return true
		}
	}
}
