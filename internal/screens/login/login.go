// Package login is the sign-in form shown when no usable session token
// exists. On success the token is written to disk and the screen pops back
// to the menu.
package login

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/components"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// loginResultMsg carries the backend response to a login attempt.
type loginResultMsg struct {
	token string
	err   error
}

// LoginScreen is the username/password form.
type LoginScreen struct {
	client *api.Client
	tokens *api.FileTokenSource

	username components.TextInput
	password components.TextInput
	focus    int // 0 username, 1 password
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(client *api.Client, tokens *api.FileTokenSource) *LoginScreen {
	username := components.NewTextInput("username", false, 64)
	password := components.NewTextInput("password", false, 128)
	password.Model.EchoMode = textinput.EchoPassword
	password.Model.Blur()

	return &LoginScreen{
		client:   client,
		tokens:   tokens,
		username: username,
		password: password,
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.username.Init()
}

func (l *LoginScreen) Title() string {
	return "Sign In"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Sign in"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		l.busy = false
		if msg.err != nil {
			l.errMsg = "Sign-in failed: " + msg.err.Error()
			return l, nil
		}
		if err := l.tokens.Save(msg.token); err != nil {
			l.errMsg = "Couldn't save session: " + err.Error()
			return l, nil
		}
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			return l, l.toggleFocus()
		case "enter":
			if l.focus == 0 {
				return l, l.toggleFocus()
			}
			return l, l.submit()
		}
	}

	var cmd tea.Cmd
	if l.focus == 0 {
		l.username, cmd = l.username.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) toggleFocus() tea.Cmd {
	if l.focus == 0 {
		l.focus = 1
		l.username.Model.Blur()
		return l.password.Model.Focus()
	}
	l.focus = 0
	l.password.Model.Blur()
	return l.username.Model.Focus()
}

func (l *LoginScreen) submit() tea.Cmd {
	username := l.username.Value()
	password := l.password.Value()
	if username == "" || password == "" {
		l.errMsg = "Enter both username and password"
		return nil
	}

	l.busy = true
	l.errMsg = ""
	client := l.client
	return func() tea.Msg {
		token, err := client.Login(context.Background(), username, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var form string

	form += theme.Title.Render("Welcome to Fuji") + "\n"
	form += theme.Subtitle.Render("Sign in to sync your progress") + "\n\n"

	form += theme.Body.Render("Username") + "\n"
	form += l.username.View() + "\n\n"
	form += theme.Body.Render("Password") + "\n"
	form += l.password.View() + "\n"

	if l.busy {
		form += "\n" + theme.Hint.Render("Signing in...")
	}
	if l.errMsg != "" {
		form += "\n" + theme.Incorrect.Render(l.errMsg)
	}

	card := theme.Card.Width(44).Render(form)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
