// Package history browses per-day practice activity from the backend:
// left/right walks days, enter expands one attempt with its per-stroke
// accuracies and a replay of the drawn strokes.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/components"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

const dateFormat = "2006-01-02"

// dayLoadedMsg carries one day's attempts.
type dayLoadedMsg struct {
	date string
	day  *api.ActivityDay
	err  error
}

// detailLoadedMsg carries the expanded record of one attempt.
type detailLoadedMsg struct {
	detail *api.ActivityDetail
	err    error
}

// HistoryScreen displays past attempts day by day.
type HistoryScreen struct {
	client *api.Client

	date     time.Time
	day      *api.ActivityDay
	selected int
	loading  bool
	errMsg   string

	detail        *api.ActivityDetail
	detailPending bool
	grid          components.CanvasGrid
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen opened on today.
func New(client *api.Client) *HistoryScreen {
	return &HistoryScreen{
		client:  client,
		date:    time.Now(),
		loading: true,
		grid:    components.NewCanvasGrid(30, 15),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.loadDay()
}

func (s *HistoryScreen) Title() string {
	return "Activity"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Day"},
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.detail != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Collapse"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Detail"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		// A slow response for a day we already navigated away from.
		if msg.date != s.date.Format(dateFormat) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.day = msg.day
		s.selected = 0
		return s, nil

	case detailLoadedMsg:
		s.detailPending = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.detail = msg.detail
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		return s, s.shiftDay(-1)
	case "right", "l":
		// Never navigate into the future.
		if s.date.Format(dateFormat) != time.Now().Format(dateFormat) {
			return s, s.shiftDay(1)
		}
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.detail = nil
		}
	case "down", "j":
		if s.day != nil && s.selected < len(s.day.Attempts)-1 {
			s.selected++
			s.detail = nil
		}
	case "enter":
		if s.detail != nil {
			s.detail = nil
			return s, nil
		}
		return s, s.loadDetail()
	}
	return s, nil
}

func (s *HistoryScreen) shiftDay(days int) tea.Cmd {
	s.date = s.date.AddDate(0, 0, days)
	s.day = nil
	s.detail = nil
	s.errMsg = ""
	s.loading = true
	return s.loadDay()
}

func (s *HistoryScreen) loadDay() tea.Cmd {
	client := s.client
	date := s.date.Format(dateFormat)
	return func() tea.Msg {
		day, err := client.ActivityHistory(context.Background(), date)
		return dayLoadedMsg{date: date, day: day, err: err}
	}
}

func (s *HistoryScreen) loadDetail() tea.Cmd {
	if s.day == nil || s.selected >= len(s.day.Attempts) || s.detailPending {
		return nil
	}
	s.detailPending = true
	client := s.client
	uuid := s.day.Attempts[s.selected].UUID
	return func() tea.Msg {
		detail, err := client.ActivityDetail(context.Background(), uuid)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	dateLabel := s.date.Format("Monday, Jan 2 2006")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("◂ "+dateLabel+" ▸")))
	b.WriteString("\n\n")

	switch {
	case s.errMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Error: "+s.errMsg)))
		return b.String()
	case s.loading:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Loading...")))
		return b.String()
	case s.day == nil || len(s.day.Attempts) == 0:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No practice on this day.")))
		return b.String()
	}

	for i, a := range s.day.Attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		scoreStyle := theme.Correct
		if a.Score < 70 {
			scoreStyle = theme.Incorrect
		}

		line := fmt.Sprintf("%s%s  %s  %-9s %s",
			prefix, a.Timestamp.Format("15:04"), a.Character, a.Kind,
			scoreStyle.Render(fmt.Sprintf("%3d%%", a.Score)))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && s.detail != nil {
			b.WriteString(s.renderDetail(width))
		}
		if i == s.selected && s.detailPending {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    loading detail...")))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDetail shows the replayed strokes next to their accuracies.
func (s *HistoryScreen) renderDetail(width int) string {
	strokes := make([]canvas.Stroke, len(s.detail.UserStrokes))
	for i, raw := range s.detail.UserStrokes {
		stroke := make(canvas.Stroke, len(raw))
		for j, p := range raw {
			stroke[j] = canvas.Point{X: p[0], Y: p[1]}
		}
		strokes[i] = stroke
	}
	replay := s.grid.View(strokes, nil, 0)

	var acc strings.Builder
	for i, a := range s.detail.StrokeAccuracies {
		style := theme.Correct
		if a < canvas.AccuracyThreshold {
			style = theme.Incorrect
		}
		acc.WriteString(style.Render(fmt.Sprintf("stroke %2d  %3.0f%%", i+1, a*100)))
		acc.WriteString("\n")
	}

	block := lipgloss.JoinHorizontal(lipgloss.Top, replay, "   ", acc.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block) + "\n"
}
