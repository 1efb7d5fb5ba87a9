package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/assistant"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/chat"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/levels"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/login"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/placeholder"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/profile"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/session"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/srs"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/components"
)

// Deps carries the shared services the home menu threads into the screens
// it opens.
type Deps struct {
	Client    *api.Client
	Tokens    *api.FileTokenSource
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Assistant *assistant.Service
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps        Deps
	menu        components.Menu
	menuLabels  []string
	learned     int
	streak      int
	avgAccuracy float64
	variant     FujiVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Dashboard numbers come from the snapshot
// cache so the menu renders instantly, offline included.
func New(deps Deps) *HomeScreen {
	var snap *store.Snapshot
	if deps.SnapRepo != nil {
		snap, _ = deps.SnapRepo.Latest(context.Background())
	}

	var learned, streak int
	var avgAccuracy float64
	if snap != nil && snap.Data.Activity != nil {
		learned = snap.Data.Activity.TotalLearned
		streak = snap.Data.Activity.CurrentStreak
		avgAccuracy = snap.Data.Activity.AverageAccuracy
	}

	variant := FujiDawn
	if streak >= 3 {
		variant = FujiSunrise
	}

	menuLabels := []string{"LESSONS", "REVIEWS", "BROWSE LEVELS", "TUTOR CHAT", "PROFILE", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: session.New(session.Config{
						Kind:   srs.KindLesson,
						Client: deps.Client,
						Events: deps.EventRepo,
					}),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: session.New(session.Config{
						Kind:   srs.KindReview,
						Client: deps.Client,
						Events: deps.EventRepo,
					}),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: levels.New(deps.Client, deps.EventRepo, deps.Assistant),
				}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if deps.Assistant == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Tutor Chat")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(deps.Assistant)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: profile.New(deps.Client, deps.EventRepo, deps.SnapRepo),
				}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:        deps,
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		learned:     learned,
		streak:      streak,
		avgAccuracy: avgAccuracy,
		variant:     variant,
	}
}

// Init pushes the login screen when no usable session token exists, so the
// first thing a fresh install sees is the sign-in form.
func (h *HomeScreen) Init() tea.Cmd {
	if h.deps.Tokens == nil || h.deps.Client == nil {
		return nil
	}
	if _, err := h.deps.Tokens.Token(); err != nil {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: login.New(h.deps.Client, h.deps.Tokens)}
		}
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderFujiBox(h.variant, cw))
	}

	sections = append(sections, renderStatsBar(h.learned, h.streak, h.avgAccuracy, cw, compact))

	if h.deps.Assistant == nil {
		sections = append(sections, renderTutorBanner(cw))
	}

	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	return renderGateFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
