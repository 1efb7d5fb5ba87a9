// Package entities lists one level's radicals, kanji or vocabulary, with
// incremental reveal for the longer vocabulary lists.
package entities

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/pager"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/detail"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

const itemsPerRow = 10

// loadMoreDelay paces the reveal animation so it reads as loading rather
// than flickering.
const loadMoreDelay = 150 * time.Millisecond

// listLoadedMsg carries the level listing, or the fetch failure.
type listLoadedMsg struct {
	items []api.EntitySummary
	err   error
}

// loadMoreDoneMsg completes a paced load-more step.
type loadMoreDoneMsg struct{}

// EntitiesScreen shows one level's entity listing.
type EntitiesScreen struct {
	client    *api.Client
	events    store.EventRepo
	assistant *assistant.Service
	kind      api.EntityKind
	level     int

	pager   *pager.Pager[api.EntitySummary]
	cursor  int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*EntitiesScreen)(nil)
var _ screen.KeyHintProvider = (*EntitiesScreen)(nil)

// New creates the listing screen for one kind and level.
func New(client *api.Client, events store.EventRepo, assist *assistant.Service, kind api.EntityKind, level int) *EntitiesScreen {
	return &EntitiesScreen{
		client:    client,
		events:    events,
		assistant: assist,
		kind:      kind,
		level:     level,
		pager:     pager.New[api.EntitySummary](pager.DefaultPageSize),
		loading:   true,
	}
}

func (e *EntitiesScreen) Init() tea.Cmd {
	client, kind, level := e.client, e.kind, e.level
	return func() tea.Msg {
		items, err := client.ListByLevel(context.Background(), kind, level)
		return listLoadedMsg{items: items, err: err}
	}
}

func (e *EntitiesScreen) Title() string {
	kind := string(e.kind)
	kind = strings.ToUpper(kind[:1]) + kind[1:]
	return fmt.Sprintf("Level %d %s", e.level, kind)
}

func (e *EntitiesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←↑↓→", Description: "Navigate"},
		{Key: "Enter", Description: "Detail"},
	}
	if !e.pager.Exhausted() {
		hints = append(hints, layout.KeyHint{Key: "m", Description: "More"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (e *EntitiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		e.loading = false
		if msg.err != nil {
			e.errMsg = msg.err.Error()
			return e, nil
		}
		e.pager.Reset(msg.items)
		e.cursor = 0
		return e, nil

	case loadMoreDoneMsg:
		e.pager.FinishLoadMore()
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *EntitiesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if e.loading || e.errMsg != "" {
		return e, nil
	}

	visible := e.pager.Displayed()
	switch msg.String() {
	case "left", "h":
		if e.cursor > 0 {
			e.cursor--
		}
	case "right", "l":
		if e.cursor < visible-1 {
			e.cursor++
		}
	case "up", "k":
		if e.cursor >= itemsPerRow {
			e.cursor -= itemsPerRow
		}
	case "down", "j":
		if e.cursor+itemsPerRow < visible {
			e.cursor += itemsPerRow
		} else if !e.pager.Exhausted() {
			return e, e.loadMore()
		}
	case "m":
		return e, e.loadMore()
	case "enter":
		items := e.pager.Visible()
		if e.cursor < len(items) {
			item := items[e.cursor]
			return e, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: detail.New(e.client, e.events, e.assistant, item.UUID),
				}
			}
		}
	}
	return e, nil
}

// loadMore begins a paced reveal step; no-op while one is in flight or the
// list is exhausted.
func (e *EntitiesScreen) loadMore() tea.Cmd {
	if !e.pager.StartLoadMore() {
		return nil
	}
	return tea.Tick(loadMoreDelay, func(time.Time) tea.Msg {
		return loadMoreDoneMsg{}
	})
}

func (e *EntitiesScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch {
	case e.loading:
		return center.Render(theme.Hint.Render("Loading..."))
	case e.errMsg != "":
		return center.Render(theme.Incorrect.Render("Couldn't load the listing\n\n") +
			theme.Hint.Render(e.errMsg))
	case e.pager.Total() == 0:
		return center.Render(theme.Hint.Render("Nothing at this level."))
	}

	var b strings.Builder
	b.WriteString(e.renderGrid())
	b.WriteString("\n\n")

	status := fmt.Sprintf("%d of %d", e.pager.Displayed(), e.pager.Total())
	if e.pager.Loading() {
		status += "  loading..."
	} else if !e.pager.Exhausted() {
		status += "  (m for more)"
	}
	b.WriteString(theme.Hint.Render(status))

	return center.Render(b.String())
}

func (e *EntitiesScreen) renderGrid() string {
	selected := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 1)
	normal := lipgloss.NewStyle().
		Foreground(theme.Text).
		Padding(0, 1)

	items := e.pager.Visible()
	var rows []string
	for start := 0; start < len(items); start += itemsPerRow {
		end := min(start+itemsPerRow, len(items))
		var cells []string
		for i := start; i < end; i++ {
			style := normal
			if i == e.cursor {
				style = selected
			}
			cells = append(cells, style.Render(items[i].Display()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return strings.Join(rows, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
