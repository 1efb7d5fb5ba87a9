package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/home"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
)

// Deps carries the services screens need, built once in cmd and threaded
// through the screen constructors.
type Deps struct {
	Client    *api.Client
	Tokens    *api.FileTokenSource
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Assistant *assistant.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   Deps
	streak int
	width  int
	height int
}

// streakLoadedMsg carries the cached streak for the header.
type streakLoadedMsg struct {
	days int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(home.Deps{
		Client:    deps.Client,
		Tokens:    deps.Tokens,
		EventRepo: deps.EventRepo,
		SnapRepo:  deps.SnapRepo,
		Assistant: deps.Assistant,
	})
	return AppModel{
		router: router.New(homeScreen),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.loadStreak, m.router.Active().Init())
}

// loadStreak reads the cached dashboard stats so the header has a streak
// before (and without) any network round trip.
func (m AppModel) loadStreak() tea.Msg {
	if m.deps.SnapRepo == nil {
		return nil
	}
	snap, err := m.deps.SnapRepo.Latest(context.Background())
	if err != nil || snap == nil || snap.Data.Activity == nil {
		return nil
	}
	return streakLoadedMsg{days: snap.Data.Activity.CurrentStreak}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakLoadedMsg:
		m.streak = msg.days
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. Mouse motion is enabled globally so
// the practice canvas receives drag events.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
