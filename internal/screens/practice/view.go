package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	strokes := s.machine.Attempt()
	if s.machine.Drawing() {
		strokes = append(append([]canvas.Stroke{}, strokes...), s.machine.CurrentStroke())
	}

	surface := s.grid.View(strokes, s.machine.References(), s.templateDepth())

	// Two columns of margin keep the border at the position the mouse
	// mapping expects; the leading newline accounts for the blank row
	// above the canvas.
	left := lipgloss.JoinHorizontal(lipgloss.Top, "  ", surface)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", s.sidebar(width))
	return "\n" + body
}

// templateDepth decides how many reference strokes the canvas overlays.
func (s *PracticeScreen) templateDepth() int {
	if s.machine.Reviewing() {
		return len(s.refs)
	}
	if s.machine.Mode() == canvas.ModeGuided {
		depth := s.machine.StrokeIndex()
		if s.machine.HintShown() {
			depth++
		}
		return depth
	}
	return 0
}

func (s *PracticeScreen) sidebar(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.char.Character))
	b.WriteString("\n")
	if s.char.Meaning != "" {
		b.WriteString(theme.Subtitle.Render(s.char.Meaning))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.progressLine())
	b.WriteString("\n\n")

	if s.machine.Reviewing() {
		b.WriteString(s.reviewPanel())
	}

	if len(s.candidates) > 0 && !s.machine.Reviewing() {
		b.WriteString(theme.Body.Render("Looks like:"))
		b.WriteString("\n")
		var chars []string
		for i, c := range s.candidates {
			if i >= 5 {
				break
			}
			chars = append(chars, c.Character)
		}
		b.WriteString(theme.Hint.Render("  " + strings.Join(chars, "  ")))
		b.WriteString("\n\n")
	}

	if s.status != "" {
		style := theme.Hint
		if s.statusErr {
			style = theme.Incorrect
		}
		b.WriteString(style.Render(s.status))
		b.WriteString("\n")
	}

	panelWidth := width - s.grid.Cols - 8
	if panelWidth < 20 {
		panelWidth = 20
	}
	return lipgloss.NewStyle().Width(panelWidth).Render(b.String())
}

func (s *PracticeScreen) progressLine() string {
	total := len(s.refs)
	if s.machine.Mode() == canvas.ModeGuided {
		return theme.Body.Render(fmt.Sprintf("Guided stroke %d of %d", s.machine.StrokeIndex()+1, total))
	}
	return theme.Body.Render(fmt.Sprintf("Strokes drawn: %d of %d", len(s.machine.Attempt()), total))
}

func (s *PracticeScreen) reviewPanel() string {
	res := s.machine.Result()
	if res == nil {
		return ""
	}

	var b strings.Builder
	score := 0
	if s.lastResult != nil {
		score = s.lastResult.Score
	}

	scoreStyle := theme.Correct
	if score < 70 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d%%", score)))
	b.WriteString("\n")

	if s.lastResult != nil && s.lastResult.Mismatch {
		b.WriteString(theme.Incorrect.Render("Wrong number of strokes"))
		b.WriteString("\n")
	}

	for i, acc := range res.StrokeAccuracies {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  stroke %2d  %s", i+1, accuracyBar(acc))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// accuracyBar renders a ten-segment bar for one stroke's accuracy.
func accuracyBar(acc float64) string {
	filled := int(acc * 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", 10-filled)
}
