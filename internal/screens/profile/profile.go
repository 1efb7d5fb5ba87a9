// Package profile is the dashboard screen: backend activity stats with a
// snapshot-cache fallback for offline runs, plus recent attempts from the
// local journal.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/history"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// snapshotsKept is how many dashboard snapshots survive pruning.
const snapshotsKept = 5

// statsMsg carries the backend dashboard numbers, or the fetch failure.
type statsMsg struct {
	stats *api.ActivityStats
	err   error
}

// cachedStatsMsg carries the snapshot fallback after a failed fetch.
type cachedStatsMsg struct {
	cache *store.ActivityCache
}

// recentMsg carries the local journal extract.
type recentMsg struct {
	attempts  []store.AttemptEventRecord
	lessonAvg float64
	lessonN   int
	reviewAvg float64
	reviewN   int
}

// ProfileScreen is the learner dashboard.
type ProfileScreen struct {
	client *api.Client
	events store.EventRepo
	snaps  store.SnapshotRepo

	stats     *api.ActivityStats
	cache     *store.ActivityCache
	statsErr  string
	loading   bool
	attempts  []store.AttemptEventRecord
	lessonAvg float64
	lessonN   int
	reviewAvg float64
	reviewN   int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen; data loads in Init.
func New(client *api.Client, events store.EventRepo, snaps store.SnapshotRepo) *ProfileScreen {
	return &ProfileScreen{client: client, events: events, snaps: snaps, loading: true}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return tea.Batch(p.loadStats(), p.loadRecent())
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Activity"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		p.loading = false
		if msg.err != nil {
			p.statsErr = msg.err.Error()
			return p, p.loadCache()
		}
		p.stats = msg.stats
		return p, p.saveSnapshot(msg.stats)

	case cachedStatsMsg:
		p.cache = msg.cache
		return p, nil

	case recentMsg:
		p.attempts = msg.attempts
		p.lessonAvg, p.lessonN = msg.lessonAvg, msg.lessonN
		p.reviewAvg, p.reviewN = msg.reviewAvg, msg.reviewN
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "a" {
			return p, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(p.client)}
			}
		}
	}
	return p, nil
}

func (p *ProfileScreen) loadStats() tea.Cmd {
	client := p.client
	return func() tea.Msg {
		stats, err := client.ActivityStats(context.Background())
		return statsMsg{stats: stats, err: err}
	}
}

// loadCache falls back to the last snapshot when the backend is down.
func (p *ProfileScreen) loadCache() tea.Cmd {
	if p.snaps == nil {
		return nil
	}
	snaps := p.snaps
	return func() tea.Msg {
		snap, err := snaps.Latest(context.Background())
		if err != nil || snap == nil || snap.Data.Activity == nil {
			return nil
		}
		return cachedStatsMsg{cache: snap.Data.Activity}
	}
}

// saveSnapshot caches fresh dashboard numbers for offline runs and the
// home-screen header, then prunes old snapshots.
func (p *ProfileScreen) saveSnapshot(stats *api.ActivityStats) tea.Cmd {
	if p.snaps == nil {
		return nil
	}
	snaps := p.snaps
	return func() tea.Msg {
		ctx := context.Background()
		snap := &store.Snapshot{
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version: 1,
				Activity: &store.ActivityCache{
					TotalAttempts:   stats.TotalAttempts,
					TotalLearned:    stats.TotalLearned,
					TotalReviews:    stats.TotalReviews,
					AverageAccuracy: stats.AverageAccuracy,
					CurrentStreak:   stats.CurrentStreak,
					LongestStreak:   stats.LongestStreak,
					FetchedAt:       time.Now(),
				},
			},
		}
		if err := snaps.Save(ctx, snap); err == nil {
			_ = snaps.Prune(ctx, snapshotsKept)
		}
		return nil
	}
}

func (p *ProfileScreen) loadRecent() tea.Cmd {
	if p.events == nil {
		return nil
	}
	events := p.events
	return func() tea.Msg {
		ctx := context.Background()
		var out recentMsg
		out.attempts, _ = events.QueryAttemptEvents(ctx, store.QueryOpts{Limit: 8})
		out.lessonAvg, out.lessonN, _ = events.AverageScore(ctx, "lesson", 50)
		out.reviewAvg, out.reviewN, _ = events.AverageScore(ctx, "review", 50)
		return out
	}
}

func (p *ProfileScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if p.loading {
		return center.Render(theme.Hint.Render("Loading..."))
	}

	var b strings.Builder
	b.WriteString(p.renderStats())
	b.WriteString("\n\n")
	b.WriteString(p.renderLocal())

	return center.Render(b.String())
}

func (p *ProfileScreen) renderStats() string {
	var b strings.Builder

	switch {
	case p.stats != nil:
		s := p.stats
		b.WriteString(statLine("Characters learned", fmt.Sprintf("%d", s.TotalLearned)))
		b.WriteString(statLine("Reviews completed", fmt.Sprintf("%d", s.TotalReviews)))
		b.WriteString(statLine("Total attempts", fmt.Sprintf("%d", s.TotalAttempts)))
		b.WriteString(statLine("Average accuracy", fmt.Sprintf("%.0f%%", s.AverageAccuracy*100)))
		b.WriteString(statLine("Current streak", fmt.Sprintf("%d days", s.CurrentStreak)))
		b.WriteString(statLine("Longest streak", fmt.Sprintf("%d days", s.LongestStreak)))

	case p.cache != nil:
		c := p.cache
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Offline — cached %s",
			c.FetchedAt.Format("Jan 2 15:04"))))
		b.WriteString("\n\n")
		b.WriteString(statLine("Characters learned", fmt.Sprintf("%d", c.TotalLearned)))
		b.WriteString(statLine("Reviews completed", fmt.Sprintf("%d", c.TotalReviews)))
		b.WriteString(statLine("Average accuracy", fmt.Sprintf("%.0f%%", c.AverageAccuracy*100)))
		b.WriteString(statLine("Current streak", fmt.Sprintf("%d days", c.CurrentStreak)))

	default:
		b.WriteString(theme.Incorrect.Render("Couldn't reach the server"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(p.statsErr))
	}

	return theme.Card.Width(48).Render(b.String())
}

func (p *ProfileScreen) renderLocal() string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("This device"))
	b.WriteString("\n\n")

	if p.lessonN > 0 {
		b.WriteString(statLine(fmt.Sprintf("Lesson average (%d)", p.lessonN),
			fmt.Sprintf("%.0f%%", p.lessonAvg)))
	}
	if p.reviewN > 0 {
		b.WriteString(statLine(fmt.Sprintf("Review average (%d)", p.reviewN),
			fmt.Sprintf("%.0f%%", p.reviewAvg)))
	}

	if len(p.attempts) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Recent attempts"))
		b.WriteString("\n")
		for _, a := range p.attempts {
			style := theme.Correct
			if a.Score < 70 {
				style = theme.Incorrect
			}
			line := fmt.Sprintf("  %s  %s  %s",
				a.Timestamp.Format("Jan 2"), a.Character,
				style.Render(fmt.Sprintf("%3d%%", a.Score)))
			b.WriteString(theme.Hint.Render(line))
			b.WriteString("\n")
		}
	} else if p.lessonN == 0 && p.reviewN == 0 {
		b.WriteString(theme.Hint.Render("No attempts recorded yet."))
	}

	return theme.Card.Width(48).Render(b.String())
}

func statLine(label, value string) string {
	const lineWidth = 42
	pad := lineWidth - lipgloss.Width(label) - lipgloss.Width(value)
	if pad < 1 {
		pad = 1
	}
	return theme.Body.Render(label) +
		strings.Repeat(" ", pad) +
		theme.Body.Bold(true).Render(value) + "\n"
}
