// Package session drives one SRS run: fetch the batch, walk it character by
// character through the practice screen, journal the results and finish on
// the summary screen.
package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/practice"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/summary"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/srs"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
)

// Config carries the services a session needs.
type Config struct {
	Kind   srs.Kind
	Client *api.Client
	Events store.EventRepo
}

// SessionScreen implements screen.Screen for an active lesson or review run.
type SessionScreen struct {
	cfg     Config
	sess    *srs.Session
	loading bool
	errMsg  string
	empty   bool

	// lastOutcome is shown on the interstitial between characters.
	lastOutcome *practice.Outcome
	lastChar    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen; the batch is fetched in Init.
func New(cfg Config) *SessionScreen {
	return &SessionScreen{cfg: cfg, loading: true}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.loadBatch()
}

func (s *SessionScreen) Title() string {
	if s.cfg.Kind == srs.KindReview {
		return "Reviews"
	}
	return "Lessons"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return nil
	}
	if s.errMsg != "" || s.empty {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next character"},
		{Key: "q", Description: "End session"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchLoadedMsg:
		return s.handleBatchLoaded(msg)

	case itemDoneMsg:
		return s.handleItemDone(msg)

	case sessionEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) loadBatch() tea.Cmd {
	cfg := s.cfg
	return func() tea.Msg {
		ctx := context.Background()
		var items []api.CharacterDetail
		var err error
		if cfg.Kind == srs.KindReview {
			items, err = cfg.Client.ReviewBatch(ctx)
		} else {
			items, err = cfg.Client.LessonBatch(ctx)
		}
		return batchLoadedMsg{items: items, err: err}
	}
}

func (s *SessionScreen) handleBatchLoaded(msg batchLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false

	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return s, nil
	}
	if len(msg.items) == 0 {
		s.empty = true
		return s, nil
	}

	s.sess = srs.NewSession(s.cfg.Kind, msg.items)

	startCmd := s.journalSessionEvent("start")
	return s, tea.Batch(startCmd, s.openPractice())
}

func (s *SessionScreen) handleItemDone(msg itemDoneMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, nil
	}

	cur := s.sess.Current()
	if cur != nil {
		s.lastChar = cur.Character
	}
	out := msg.outcome
	s.lastOutcome = &out
	s.sess.Complete(out.Score)

	if s.sess.Done() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, nil
}

func (s *SessionScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	endCmd := s.journalSessionEvent("end")
	sum := s.sess.Summarize()
	results := s.sess.Results()

	return s, tea.Batch(endCmd, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, results)}
	})
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	// Error or empty batch: any key goes back.
	if s.errMsg != "" || s.empty {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "enter":
		if s.sess != nil && !s.sess.Done() {
			return s, s.openPractice()
		}
	case "q":
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, nil
}

// openPractice pushes the drawing screen for the current character. The
// practice screen pops itself and reports through itemDoneMsg.
func (s *SessionScreen) openPractice() tea.Cmd {
	cur := s.sess.Current()
	if cur == nil {
		return nil
	}

	var checker canvas.Checker
	var opts canvas.Options
	if s.cfg.Kind == srs.KindReview {
		checker = &api.ReviewChecker{Client: s.cfg.Client}
		opts = canvas.ReviewOptions()
	} else {
		checker = &api.LearningChecker{Client: s.cfg.Client, KanjiUUID: cur.UUID, IsLearning: true}
		opts = canvas.LearningOptions()
	}

	p := practice.New(practice.Config{
		Character: *cur,
		Checker:   checker,
		Options:   opts,
		Events:    s.cfg.Events,
		Kind:      string(s.cfg.Kind),
		SessionID: s.sess.ID(),
		OnDone: func(out practice.Outcome) tea.Cmd {
			return func() tea.Msg { return itemDoneMsg{outcome: out} }
		},
	})

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: p}
	}
}

// journalSessionEvent appends a start or end event for the run.
func (s *SessionScreen) journalSessionEvent(action string) tea.Cmd {
	if s.cfg.Events == nil || s.sess == nil {
		return nil
	}
	sum := s.sess.Summarize()
	data := store.SessionEventData{
		SessionID:      sum.SessionID,
		Kind:           string(sum.Kind),
		Action:         action,
		ItemsTotal:     sum.ItemsTotal,
		ItemsCompleted: sum.ItemsDone,
		AverageScore:   sum.AverageScore,
		DurationSecs:   int(sum.Duration.Seconds()),
	}
	events := s.cfg.Events
	return func() tea.Msg {
		_ = events.AppendSessionEvent(context.Background(), data)
		return nil
	}
}
