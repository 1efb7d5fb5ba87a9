// Package chat is the free-form tutor conversation screen. The full
// transcript goes back to the model on every turn so the tutor keeps
// context.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/components"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// replyMsg carries the tutor's answer to the latest turn.
type replyMsg struct {
	text string
	err  error
}

// ChatScreen is the tutor conversation.
type ChatScreen struct {
	assistant  *assistant.Service
	transcript []assistant.Turn
	input      components.TextInput
	busy       bool
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen.
func New(assist *assistant.Service) *ChatScreen {
	return &ChatScreen{
		assistant: assist,
		input:     components.NewTextInput("Ask about kanji, grammar, anything...", false, 0),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Tutor Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.busy = false
		if msg.err != nil {
			c.errMsg = msg.err.Error()
			// Drop the failed user turn so a resend doesn't duplicate it.
			if n := len(c.transcript); n > 0 && c.transcript[n-1].FromUser {
				c.transcript = c.transcript[:n-1]
			}
			return c, nil
		}
		c.transcript = append(c.transcript, assistant.Turn{Text: msg.text})
		return c, nil

	case tea.KeyMsg:
		if c.busy {
			return c, nil
		}
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}

	// Prior turns only; the new message is passed separately.
	prior := make([]assistant.Turn, len(c.transcript))
	copy(prior, c.transcript)

	c.transcript = append(c.transcript, assistant.Turn{FromUser: true, Text: text})
	c.input = components.NewTextInput("Ask about kanji, grammar, anything...", false, 0)
	c.busy = true
	c.errMsg = ""

	assist := c.assistant
	return tea.Batch(c.input.Init(), func() tea.Msg {
		reply, err := assist.Chat(context.Background(), prior, text)
		return replyMsg{text: reply, err: err}
	})
}

func (c *ChatScreen) View(width, height int) string {
	innerWidth := min(width-8, 76)
	if innerWidth < 20 {
		innerWidth = 20
	}

	userStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 1)
	tutorStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(innerWidth)

	var lines []string
	for _, t := range c.transcript {
		if t.FromUser {
			lines = append(lines, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Right,
				userStyle.Render(t.Text)))
		} else {
			lines = append(lines, tutorStyle.Render(t.Text))
		}
		lines = append(lines, "")
	}

	if c.busy {
		lines = append(lines, theme.Hint.Render("Tutor is thinking..."))
	}
	if c.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(c.errMsg))
	}

	transcript := strings.Join(lines, "\n")

	// Keep the tail of the conversation in view.
	maxLines := height - 4
	if maxLines > 0 {
		all := strings.Split(transcript, "\n")
		if len(all) > maxLines {
			transcript = strings.Join(all[len(all)-maxLines:], "\n")
		}
	}

	prompt := theme.Body.Render("> ") + c.input.View()

	body := transcript + "\n\n" + prompt

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Bottom).
		Render(lipgloss.NewStyle().Width(innerWidth).Render(body))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
