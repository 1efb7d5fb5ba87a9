package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/srs"
)

func testSummary() (srs.Summary, []srs.Result) {
	sum := srs.Summary{
		SessionID:    "sess-1",
		Kind:         srs.KindReview,
		ItemsTotal:   3,
		ItemsDone:    3,
		AverageScore: 76.7,
		Passed:       2,
		Duration:     4 * time.Minute,
	}
	results := []srs.Result{
		{Character: api.CharacterDetail{Character: "山", Meaning: "mountain"}, Score: 92},
		{Character: api.CharacterDetail{Character: "川", Meaning: "river"}, Score: 80},
		{Character: api.CharacterDetail{Character: "火", Meaning: "fire"}, Score: 58},
	}
	return sum, results
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	for _, want := range []string{"Reviews complete!", "mountain", "58%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
