// Package levels is the dictionary browser entry point: pick an entity
// kind and a level, then drill into the per-level listing.
package levels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/entities"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

const levelsPerRow = 10

var kinds = []api.EntityKind{api.KindRadical, api.KindKanji, api.KindVocabulary}

// LevelsScreen lets the learner pick an entity kind and level.
type LevelsScreen struct {
	client    *api.Client
	events    store.EventRepo
	assistant *assistant.Service

	kindIdx int
	level   int // 1-based
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates the level browser, starting at kanji level 1.
func New(client *api.Client, events store.EventRepo, assist *assistant.Service) *LevelsScreen {
	return &LevelsScreen{
		client:    client,
		events:    events,
		assistant: assist,
		kindIdx:   1, // kanji
		level:     1,
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (l *LevelsScreen) Title() string {
	return "Browse Levels"
}

func (l *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Kind"},
		{Key: "←↑↓→", Description: "Level"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "tab":
		l.kindIdx = (l.kindIdx + 1) % len(kinds)
	case "shift+tab":
		l.kindIdx = (l.kindIdx + len(kinds) - 1) % len(kinds)
	case "left", "h":
		if l.level > 1 {
			l.level--
		}
	case "right", "l":
		if l.level < api.MaxLevel {
			l.level++
		}
	case "up", "k":
		if l.level > levelsPerRow {
			l.level -= levelsPerRow
		}
	case "down", "j":
		if l.level+levelsPerRow <= api.MaxLevel {
			l.level += levelsPerRow
		}
	case "enter":
		kind := kinds[l.kindIdx]
		level := l.level
		return l, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: entities.New(l.client, l.events, l.assistant, kind, level),
			}
		}
	}
	return l, nil
}

func (l *LevelsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(renderKindTabs(l.kindIdx))
	b.WriteString("\n\n")
	b.WriteString(l.renderLevelGrid())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func renderKindTabs(selected int) string {
	active := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 2)

	var tabs []string
	for i, k := range kinds {
		label := strings.ToUpper(string(k))
		if i == selected {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (l *LevelsScreen) renderLevelGrid() string {
	selected := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Secondary).
		Bold(true)
	normal := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	for lv := 1; lv <= api.MaxLevel; lv++ {
		cell := fmt.Sprintf(" %2d ", lv)
		if lv == l.level {
			b.WriteString(selected.Render(cell))
		} else {
			b.WriteString(normal.Render(cell))
		}
		if lv%levelsPerRow == 0 && lv != api.MaxLevel {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(b.String())
}
