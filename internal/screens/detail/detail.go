// Package detail shows one character: the reference stroke template, its
// dictionary data, an optional tutor-generated study card, and a freestyle
// practice entry point.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/practice"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/components"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// detailLoadedMsg carries the full character payload.
type detailLoadedMsg struct {
	char *api.CharacterDetail
	err  error
}

// cardMsg carries the tutor-generated study card.
type cardMsg struct {
	card *assistant.KanjiCard
	err  error
}

// DetailScreen shows one character's full record.
type DetailScreen struct {
	client    *api.Client
	events    store.EventRepo
	assistant *assistant.Service
	uuid      string

	char    *api.CharacterDetail
	grid    components.CanvasGrid
	loading bool
	errMsg  string

	card        *assistant.KanjiCard
	cardPending bool
	cardErr     string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen; the character is fetched in Init.
func New(client *api.Client, events store.EventRepo, assist *assistant.Service, uuid string) *DetailScreen {
	return &DetailScreen{
		client:    client,
		events:    events,
		assistant: assist,
		uuid:      uuid,
		grid:      components.NewCanvasGrid(40, 20),
		loading:   true,
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	client, uuid := d.client, d.uuid
	return func() tea.Msg {
		char, err := client.CharacterByUUID(context.Background(), uuid)
		return detailLoadedMsg{char: char, err: err}
	}
}

func (d *DetailScreen) Title() string {
	if d.char != nil {
		return d.char.Character
	}
	return "Detail"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if d.char == nil {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "p", Description: "Practice"},
	}
	if d.assistant != nil && d.card == nil && !d.cardPending {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		d.loading = false
		if msg.err != nil {
			d.errMsg = msg.err.Error()
			return d, nil
		}
		d.char = msg.char
		return d, nil

	case cardMsg:
		d.cardPending = false
		if msg.err != nil {
			d.cardErr = "Tutor unavailable: " + msg.err.Error()
			return d, nil
		}
		d.card = msg.card
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DetailScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if d.char == nil {
		return d, nil
	}

	switch msg.String() {
	case "p":
		return d, d.openPractice()
	case "e":
		return d, d.requestCard()
	}
	return d, nil
}

// openPractice starts freestyle practice on this character: free mode with
// live recognition, journaled outside any session.
func (d *DetailScreen) openPractice() tea.Cmd {
	p := practice.New(practice.Config{
		Character: *d.char,
		Checker:   &api.ReviewChecker{Client: d.client},
		Options:   canvas.ReviewOptions(),
		Events:    d.events,
		Kind:      "freestyle",
		Recognize: d.client.Recognize,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: p}
	}
}

func (d *DetailScreen) requestCard() tea.Cmd {
	if d.assistant == nil || d.card != nil || d.cardPending {
		return nil
	}
	d.cardPending = true
	d.cardErr = ""

	assist, char := d.assistant, d.char
	return func() tea.Msg {
		card, err := assist.ExplainKanji(context.Background(), char.Character, char.Meaning, char.Level)
		return cardMsg{card: card, err: err}
	}
}

func (d *DetailScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch {
	case d.loading:
		return center.Render(theme.Hint.Render("Loading..."))
	case d.errMsg != "":
		return center.Render(theme.Incorrect.Render("Couldn't load the character\n\n") +
			theme.Hint.Render(d.errMsg))
	}

	refs := make([]canvas.ReferenceStroke, len(d.char.ReferenceStrokes))
	for i, r := range d.char.ReferenceStrokes {
		refs[i] = canvas.ReferenceStroke(r)
	}
	template := d.grid.View(nil, refs, len(refs))

	info := d.renderInfo()
	body := lipgloss.JoinHorizontal(lipgloss.Top, template, "  ", info)

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n" + body)
}

func (d *DetailScreen) renderInfo() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(d.char.Character))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(d.char.Meaning))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Level %d %s · %d strokes",
		d.char.Level, d.char.Type, len(d.char.ReferenceStrokes))))
	b.WriteString("\n\n")

	switch {
	case d.cardPending:
		b.WriteString(theme.Hint.Render("Asking the tutor..."))
		b.WriteString("\n")
	case d.cardErr != "":
		b.WriteString(theme.Incorrect.Render(d.cardErr))
		b.WriteString("\n")
	case d.card != nil:
		b.WriteString(renderCard(d.card))
	}

	return lipgloss.NewStyle().Width(44).Render(b.String())
}

func renderCard(card *assistant.KanjiCard) string {
	var b strings.Builder

	if len(card.Onyomi) > 0 {
		b.WriteString(theme.Body.Render("On: " + strings.Join(card.Onyomi, "、")))
		b.WriteString("\n")
	}
	if len(card.Kunyomi) > 0 {
		b.WriteString(theme.Body.Render("Kun: " + strings.Join(card.Kunyomi, "、")))
		b.WriteString("\n")
	}
	if card.Mnemonic != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(card.Mnemonic))
		b.WriteString("\n")
	}
	if len(card.ExampleWords) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Examples"))
		b.WriteString("\n")
		for _, w := range card.ExampleWords {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s (%s) — %s", w.Word, w.Reading, w.Meaning)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
