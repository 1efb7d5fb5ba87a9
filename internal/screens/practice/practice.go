// Package practice is the drawing screen: a terminal canvas driven by mouse
// input, backed by the per-character practice machine. The same screen
// serves guided learning, free-mode review and freestyle practice; the
// machine options select the variant.
package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/router"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screen"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/store"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/components"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/layout"
)

// Screen position of the canvas interior's top-left cell: the header box
// is 3 rows, then one blank line and the canvas border; 2 columns of left
// margin plus the border column.
const (
	canvasTop  = 5
	canvasLeft = 3
)

// Outcome is what a finished attempt reports to the owning session.
type Outcome struct {
	Score    int
	Mismatch bool
	Strokes  int
}

// PracticeScreen renders one character's drawing surface.
type PracticeScreen struct {
	char      api.CharacterDetail
	refs      []canvas.ReferenceStroke
	machine   *canvas.Machine
	checker   canvas.Checker
	recog     *canvas.Recognizer
	events    store.EventRepo
	kind      string
	sessionID string

	// onDone, when set, is invoked after the learner confirms the reviewed
	// attempt; the screen pops itself first so the command reaches the
	// session screen underneath.
	onDone func(Outcome) tea.Cmd

	grid       components.CanvasGrid
	checking   bool
	status     string
	statusErr  bool
	candidates []canvas.Candidate
	lastResult *canvas.FinalResult
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// Config assembles a practice screen.
type Config struct {
	Character api.CharacterDetail
	Checker   canvas.Checker
	Options   canvas.Options
	Events    store.EventRepo
	Kind      string
	SessionID string

	// Recognize enables the candidate sidebar (freestyle practice).
	Recognize canvas.RecognizeFunc

	// OnDone receives the confirmed outcome; nil keeps the screen
	// standalone (freestyle).
	OnDone func(Outcome) tea.Cmd
}

// New creates a practice screen for one character.
func New(cfg Config) *PracticeScreen {
	refs := make([]canvas.ReferenceStroke, len(cfg.Character.ReferenceStrokes))
	for i, r := range cfg.Character.ReferenceStrokes {
		refs[i] = canvas.ReferenceStroke(r)
	}

	s := &PracticeScreen{
		char:      cfg.Character,
		refs:      refs,
		machine:   canvas.NewMachine(refs, cfg.Checker, cfg.Options),
		checker:   cfg.Checker,
		events:    cfg.Events,
		kind:      cfg.Kind,
		sessionID: cfg.SessionID,
		onDone:    cfg.OnDone,
		grid:      components.NewCanvasGrid(50, 25),
	}
	if cfg.Recognize != nil {
		s.recog = canvas.NewRecognizer(cfg.Recognize)
	}
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice " + s.char.Character
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.machine.Reviewing() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "u", Description: "Undo"},
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.machine.Mode() == canvas.ModeGuided {
		return []layout.KeyHint{
			{Key: "Mouse", Description: "Draw"},
			{Key: "h", Description: "Hint"},
			{Key: "r", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Mouse", Description: "Draw"},
		{Key: "Enter", Description: "Check"},
		{Key: "u", Description: "Undo"},
		{Key: "c", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft && !s.checking {
			if p, ok := s.cellAt(msg.X, msg.Y); ok {
				s.machine.PointerDown(p)
			}
		}
		return s, nil

	case tea.MouseMotionMsg:
		if s.machine.Drawing() {
			if p, ok := s.cellAt(msg.X, msg.Y); ok {
				s.machine.PointerMove(p)
			}
		}
		return s, nil

	case tea.MouseReleaseMsg:
		return s, s.sealStroke()

	case strokeJudgedMsg:
		s.checking = false
		s.applyStrokeResult(s.machine.ResolveStroke(msg.res, msg.err))
		return s, nil

	case finalCheckedMsg:
		s.checking = false
		return s, s.applyFinalResult(s.machine.ResolveFinal(msg.res, msg.err))

	case candidatesMsg:
		if s.recog != nil && s.recog.Accept(msg.outcome) && msg.outcome.Err == nil {
			s.candidates = msg.outcome.Candidates
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.checking {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		if s.machine.Reviewing() {
			return s, s.confirm()
		}
		return s, s.finalCheck()
	case "u":
		wasReviewing := s.machine.Reviewing()
		s.machine.Undo()
		if wasReviewing {
			s.lastResult = nil
			s.status = ""
		}
		return s, s.submitRecognition()
	case "c":
		s.machine.ClearAttempt()
		s.lastResult = nil
		s.status = ""
		return s, s.submitRecognition()
	case "r":
		s.machine.Reset()
		s.lastResult = nil
		s.candidates = nil
		s.status = ""
		return s, nil
	case "h":
		s.machine.ShowHint()
		return s, nil
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// cellAt converts absolute terminal coordinates to a canvas point, or
// reports that the position is outside the drawing surface.
func (s *PracticeScreen) cellAt(x, y int) (canvas.Point, bool) {
	col := x - canvasLeft
	row := y - canvasTop
	if col < 0 || col >= s.grid.Cols || row < 0 || row >= s.grid.Rows {
		return canvas.Point{}, false
	}
	return s.grid.CellToPoint(col, row), true
}

// sealStroke closes the open stroke on the update loop. Guided strokes need
// a backend score, so only the network call runs as a command; the verdict
// is applied when strokeJudgedMsg lands.
func (s *PracticeScreen) sealStroke() tea.Cmd {
	stroke := s.machine.SealStroke()
	if stroke == nil {
		return nil
	}

	if s.machine.Mode() == canvas.ModeGuided {
		s.checking = true
		s.status = "checking stroke..."
		s.statusErr = false
		checker := s.checker
		ref := s.machine.CurrentReference()
		return func() tea.Msg {
			res, err := checker.CheckStroke(context.Background(), stroke, ref)
			return strokeJudgedMsg{res: res, err: err}
		}
	}

	return s.submitRecognition()
}

func (s *PracticeScreen) applyStrokeResult(r canvas.StrokeResult) {
	switch {
	case r.Err != nil:
		s.status = "couldn't reach the server, stroke discarded"
		s.statusErr = true
	case r.EnteredFree:
		s.status = "guide complete! now draw the whole character"
		s.statusErr = false
	case r.Retry:
		s.status = "not quite, try that stroke again"
		s.statusErr = true
	case r.Accepted:
		s.status = ""
		s.statusErr = false
	}
}

// finalCheck validates the attempt on the update loop; only the
// whole-character scoring call runs as a command.
func (s *PracticeScreen) finalCheck() tea.Cmd {
	r, submit := s.machine.BeginFinalCheck()
	if !submit {
		return s.applyFinalResult(r)
	}

	s.checking = true
	s.status = "scoring..."
	s.statusErr = false
	checker := s.checker
	attempt := s.machine.Attempt()
	refs := s.refs
	return func() tea.Msg {
		res, err := checker.CheckKanji(context.Background(), attempt, refs)
		return finalCheckedMsg{res: res, err: err}
	}
}

func (s *PracticeScreen) applyFinalResult(r canvas.FinalResult) tea.Cmd {
	if r.Result == nil && r.Err == nil && !r.Mismatch {
		return nil
	}
	if r.Err != nil {
		s.status = "couldn't reach the server, attempt kept"
		s.statusErr = true
		return nil
	}

	// Blocking mismatch (learning variant): no completion, the learner
	// fixes the stroke count and checks again.
	if r.Mismatch && r.Result == nil {
		s.status = "stroke count doesn't match — undo or clear, then check again"
		s.statusErr = true
		return nil
	}

	res := r
	s.lastResult = &res
	s.status = ""

	return s.journalAttempt(r)
}

// journalAttempt records the finalized attempt in the local event log.
func (s *PracticeScreen) journalAttempt(r canvas.FinalResult) tea.Cmd {
	if s.events == nil {
		return nil
	}
	data := store.AttemptEventData{
		SessionID:     s.sessionID,
		CharacterUUID: s.char.UUID,
		Character:     s.char.Character,
		Kind:          s.kind,
		Score:         r.Score,
		StrokeCount:   len(s.machine.Attempt()),
		Mismatch:      r.Mismatch,
	}
	events := s.events
	return func() tea.Msg {
		_ = events.AppendAttemptEvent(context.Background(), data)
		return nil
	}
}

// confirm hands the reviewed outcome back to the session screen, or clears
// the canvas for another freestyle round.
func (s *PracticeScreen) confirm() tea.Cmd {
	if s.onDone == nil {
		s.machine.ClearAttempt()
		s.lastResult = nil
		return s.submitRecognition()
	}

	out := Outcome{Strokes: len(s.machine.Attempt())}
	if s.lastResult != nil {
		out.Score = s.lastResult.Score
		out.Mismatch = s.lastResult.Mismatch
	}
	done := s.onDone(out)
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		done,
	)
}

// submitRecognition kicks off a candidate lookup for the current attempt.
// Stale responses are rejected by sequence number when they land.
func (s *PracticeScreen) submitRecognition() tea.Cmd {
	if s.recog == nil {
		return nil
	}
	strokes := s.machine.Attempt()
	recog := s.recog
	return func() tea.Msg {
		return candidatesMsg{outcome: recog.Submit(context.Background(), strokes)}
	}
}
