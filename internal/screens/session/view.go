package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/srs"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch {
	case s.loading:
		return center.Render(theme.Hint.Render("Fetching your batch..."))

	case s.errMsg != "":
		return center.Render(theme.Incorrect.Render("Couldn't start the session\n\n") +
			theme.Hint.Render(s.errMsg))

	case s.empty:
		if s.cfg.Kind == srs.KindReview {
			return center.Render(theme.Body.Render("No reviews due right now.\n\n") +
				theme.Hint.Render("Come back after your next SRS interval."))
		}
		return center.Render(theme.Body.Render("No new lessons available.\n\n") +
			theme.Hint.Render("Clear your review queue to unlock more."))
	}

	return center.Render(s.renderInterstitial())
}

// renderInterstitial is the between-characters view: progress, the score of
// the character just finished, and the prompt for the next one.
func (s *SessionScreen) renderInterstitial() string {
	var b strings.Builder

	pos, total := s.sess.Position()
	b.WriteString(theme.Title.Render(fmt.Sprintf("Character %d of %d", pos, total)))
	b.WriteString("\n")
	b.WriteString(renderProgressDots(s.sess.Results(), total))
	b.WriteString("\n\n")

	if s.lastOutcome != nil {
		style := theme.Correct
		if s.lastOutcome.Score < srs.PassScore {
			style = theme.Incorrect
		}
		b.WriteString(theme.Body.Render(s.lastChar+"  ") +
			style.Render(fmt.Sprintf("%d%%", s.lastOutcome.Score)))
		if s.lastOutcome.Mismatch {
			b.WriteString(theme.Hint.Render("  (wrong stroke count)"))
		}
		b.WriteString("\n\n")
	}

	cur := s.sess.Current()
	if cur != nil {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Next up: %s — press Enter", cur.Character)))
	}

	return b.String()
}

// renderProgressDots draws one dot per batch item: filled green for passed,
// filled red for failed, hollow for not yet attempted.
func renderProgressDots(results []srs.Result, total int) string {
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i < len(results) {
			if results[i].Score >= srs.PassScore {
				b.WriteString(theme.Correct.Render("●"))
			} else {
				b.WriteString(theme.Incorrect.Render("●"))
			}
		} else {
			b.WriteString(theme.Hint.Render("○"))
		}
		if i < total-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
