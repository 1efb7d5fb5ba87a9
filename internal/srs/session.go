// Package srs holds the client-side state of one SRS session. Scheduling
// decisions live on the backend; the client walks a fetched batch in order,
// records per-character scores, and summarizes the run at the end.
package srs

import (
	"time"

	"github.com/google/uuid"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
)

// Kind distinguishes the two session flavors.
type Kind string

const (
	KindLesson Kind = "lesson"
	KindReview Kind = "review"
)

// PassScore is the completion percentage at or above which a character
// counts as passed in the session summary.
const PassScore = 70

// Result is one completed character within a session.
type Result struct {
	Character api.CharacterDetail
	Score     int
}

// Summary describes a finished session.
type Summary struct {
	SessionID    string
	Kind         Kind
	ItemsTotal   int
	ItemsDone    int
	AverageScore float64
	Passed       int
	Duration     time.Duration
}

// Session walks a batch of characters in order. Not safe for concurrent
// use; it is owned by a single screen.
type Session struct {
	id      string
	kind    Kind
	batch   []api.CharacterDetail
	results []Result
	started time.Time
}

// NewSession starts a session over the given batch.
func NewSession(kind Kind, batch []api.CharacterDetail) *Session {
	return &Session{
		id:      uuid.NewString(),
		kind:    kind,
		batch:   batch,
		started: time.Now(),
	}
}

// ID returns the session's UUID, used to group journal events.
func (s *Session) ID() string { return s.id }

// Kind returns the session flavor.
func (s *Session) Kind() Kind { return s.kind }

// Current returns the character to practice next, or nil when the batch
// is exhausted.
func (s *Session) Current() *api.CharacterDetail {
	if s.Done() {
		return nil
	}
	return &s.batch[len(s.results)]
}

// Position returns the 1-based index of the current character and the
// batch size, for the progress header.
func (s *Session) Position() (int, int) {
	done := len(s.results)
	if done >= len(s.batch) {
		return len(s.batch), len(s.batch)
	}
	return done + 1, len(s.batch)
}

// Complete records the score for the current character and advances.
// Calling it after the batch is exhausted is a no-op.
func (s *Session) Complete(score int) {
	cur := s.Current()
	if cur == nil {
		return
	}
	s.results = append(s.results, Result{Character: *cur, Score: score})
}

// Done reports whether every character in the batch has been completed.
func (s *Session) Done() bool {
	return len(s.results) >= len(s.batch)
}

// Results returns the completed characters in order.
func (s *Session) Results() []Result {
	return s.results
}

// Summarize computes the session summary over whatever has been completed
// so far. Valid to call mid-session (e.g. on early exit).
func (s *Session) Summarize() Summary {
	sum := Summary{
		SessionID:  s.id,
		Kind:       s.kind,
		ItemsTotal: len(s.batch),
		ItemsDone:  len(s.results),
		Duration:   time.Since(s.started),
	}
	if len(s.results) == 0 {
		return sum
	}

	total := 0
	for _, r := range s.results {
		total += r.Score
		if r.Score >= PassScore {
			sum.Passed++
		}
	}
	sum.AverageScore = float64(total) / float64(len(s.results))
	return sum
}
