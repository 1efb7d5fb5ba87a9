package canvas

import (
	"context"
	"math"
)

// AccuracyThreshold is the minimum per-stroke score treated as "correct"
// for guided-mode progression.
const AccuracyThreshold = 0.70

// Mode is the current practice mode of a Machine.
type Mode int

const (
	// ModeGuided requires one correct stroke at a time before advancing.
	ModeGuided Mode = iota
	// ModeFree requires the full character before any scoring occurs.
	ModeFree
)

// AccuracyResult is a backend-produced score. The client never computes
// accuracy itself; the only locally synthesized result is the all-zeros one
// used for stroke-count mismatches.
type AccuracyResult struct {
	OverallAccuracy  float64   `json:"overallAccuracy"`
	StrokeAccuracies []float64 `json:"strokeAccuracies"`
}

// Checker is the accuracy request gateway the machine submits strokes to.
// Implementations return an error on any transport, HTTP or auth failure;
// errors are terminal for the user action that triggered the call.
type Checker interface {
	CheckStroke(ctx context.Context, user Stroke, ref ReferenceStroke) (*AccuracyResult, error)
	CheckKanji(ctx context.Context, user []Stroke, refs []ReferenceStroke) (*AccuracyResult, error)
}

// Options selects the behavior variant of a Machine. Historically the
// learning, practice and review canvases were three near-identical copies;
// one parameterized machine replaces them.
type Options struct {
	// GuidedMode starts the character in stroke-by-stroke guided mode.
	// When false the machine starts (and stays) in free mode.
	GuidedMode bool

	// ShortCircuitOnMismatch resolves a free-mode stroke-count mismatch
	// locally as a zero-accuracy completion. When false the mismatch blocks
	// instead: no completion, the learner must fix the attempt. Neither
	// variant calls the backend on a mismatch. The two policies are
	// intentionally different: review counts the miss and moves on, while
	// learning keeps the learner on the character until the count is right.
	ShortCircuitOnMismatch bool

	// TrackHint records whether the reference-stroke guide overlay was
	// revealed for the current guided stroke.
	TrackHint bool
}

// LearningOptions configures the machine for first-time learning sessions:
// guided warm-up, then a free-mode final check.
func LearningOptions() Options {
	return Options{GuidedMode: true, ShortCircuitOnMismatch: false, TrackHint: true}
}

// ReviewOptions configures the machine for review sessions: free mode only,
// one scoring call per character.
func ReviewOptions() Options {
	return Options{GuidedMode: false, ShortCircuitOnMismatch: true}
}

// StrokeResult reports the outcome of completing one stroke.
type StrokeResult struct {
	// Accepted is set in guided mode when the stroke met the threshold.
	Accepted bool
	// EnteredFree is set when the last guided stroke was just accepted.
	EnteredFree bool
	// Retry is set in guided mode when the stroke scored below threshold;
	// the stroke was discarded and the same step is re-presented.
	Retry bool
	// Accuracy is the single-stroke score, when a check was performed.
	Accuracy float64
	// Err is the gateway failure, if any. The stroke was discarded and the
	// machine did not move.
	Err error
}

// FinalResult reports the outcome of a free-mode final check.
type FinalResult struct {
	// Score is the completion accuracy reported to the caller, 0..100.
	Score int
	// Result is the stored accuracy result, nil on gateway failure.
	Result *AccuracyResult
	// Mismatch is set when the attempt stroke count differed from the
	// reference count. With the short-circuit variant the result was
	// synthesized locally; with the blocking variant Result is nil and the
	// machine stayed out of the reviewing state.
	Mismatch bool
	// Err is the gateway failure, if any. Score is 0 and the machine did
	// not enter the reviewing state.
	Err error
}

// Machine is the per-character practice state machine. It owns the stroke
// buffer and the attempt; a new character always starts a fresh Machine or
// a full Reset. All methods must be called from a single goroutine: the
// SealStroke/ResolveStroke and BeginFinalCheck/ResolveFinal pairs exist so
// a TUI can keep every state mutation on its update loop and move only the
// network call off it.
type Machine struct {
	opts    Options
	refs    []ReferenceStroke
	checker Checker

	buf         StrokeBuffer
	mode        Mode
	strokeIndex int
	pending     bool
	reviewing   bool
	result      *AccuracyResult
	hintShown   bool
}

// NewMachine creates a machine for a character with the given reference
// strokes.
func NewMachine(refs []ReferenceStroke, checker Checker, opts Options) *Machine {
	m := &Machine{refs: refs, checker: checker, opts: opts}
	if !opts.GuidedMode {
		m.mode = ModeFree
	}
	return m
}

// Mode returns the current practice mode.
func (m *Machine) Mode() Mode { return m.mode }

// StrokeIndex returns the current guided stroke index. Meaningful only in
// guided mode; always within [0, reference stroke count).
func (m *Machine) StrokeIndex() int { return m.strokeIndex }

// Reviewing reports whether the machine is in the terminal display state for
// the current attempt.
func (m *Machine) Reviewing() bool { return m.reviewing }

// Result returns the stored accuracy result, nil before a final check.
func (m *Machine) Result() *AccuracyResult { return m.result }

// References returns the reference strokes for the current character.
func (m *Machine) References() []ReferenceStroke { return m.refs }

// Attempt returns a copy of the sealed strokes of the current attempt.
// Strokes are never mutated after sealing, so the copy is safe to hand to
// a background command while the machine keeps moving.
func (m *Machine) Attempt() []Stroke {
	s := m.buf.Strokes()
	out := make([]Stroke, len(s))
	copy(out, s)
	return out
}

// Drawing reports whether a stroke is currently open.
func (m *Machine) Drawing() bool { return m.buf.Open() }

// CurrentStroke returns the in-progress stroke for live rendering.
func (m *Machine) CurrentStroke() Stroke { return m.buf.Current() }

// PointerDown begins a new stroke. Ignored while reviewing: the attempt is
// frozen until the learner undoes or resets.
func (m *Machine) PointerDown(p Point) {
	if m.reviewing {
		return
	}
	m.buf.Begin(p)
}

// PointerMove extends the open stroke.
func (m *Machine) PointerMove(p Point) {
	m.buf.Extend(p)
}

// SealStroke closes the open stroke. In free mode the stroke joins the
// attempt immediately and all judgment is deferred to FinalCheck. In guided
// mode the stroke stays in the attempt as pending: the caller checks it
// against CurrentReference off the update loop and applies the verdict with
// ResolveStroke. Returns nil when no stroke was open.
func (m *Machine) SealStroke() Stroke {
	stroke := m.buf.End()
	if stroke == nil {
		return nil
	}
	if m.mode == ModeGuided {
		m.pending = true
	}
	return stroke
}

// CurrentReference returns the reference stroke the current guided step is
// judged against.
func (m *Machine) CurrentReference() ReferenceStroke {
	return m.refs[m.strokeIndex]
}

// ResolveStroke applies the single-stroke verdict for the pending guided
// stroke. A no-op when no stroke is pending.
func (m *Machine) ResolveStroke(res *AccuracyResult, err error) StrokeResult {
	if !m.pending {
		return StrokeResult{}
	}
	m.pending = false

	if err != nil {
		// Unreachable backend: discard the stroke, stay on this step.
		m.buf.RemoveLast()
		return StrokeResult{Err: err}
	}

	if res.OverallAccuracy < AccuracyThreshold {
		m.buf.RemoveLast()
		return StrokeResult{Retry: true, Accuracy: res.OverallAccuracy}
	}

	m.hintShown = false
	if m.strokeIndex < len(m.refs)-1 {
		m.strokeIndex++
		return StrokeResult{Accepted: true, Accuracy: res.OverallAccuracy}
	}

	// Last guided stroke accepted: switch to free mode exactly once, with a
	// cleared attempt. Guided strokes do not carry over.
	m.mode = ModeFree
	m.strokeIndex = 0
	m.buf.Clear()
	return StrokeResult{Accepted: true, EnteredFree: true, Accuracy: res.OverallAccuracy}
}

// PointerUp seals the open stroke and, in guided mode, runs the
// single-stroke check synchronously. Callers that must not block use the
// SealStroke/ResolveStroke pair and perform the check themselves.
func (m *Machine) PointerUp(ctx context.Context) StrokeResult {
	stroke := m.SealStroke()
	if stroke == nil {
		return StrokeResult{}
	}
	if m.mode == ModeFree {
		return StrokeResult{Accepted: true}
	}
	res, err := m.checker.CheckStroke(ctx, stroke, m.CurrentReference())
	return m.ResolveStroke(res, err)
}

// BeginFinalCheck validates the free-mode attempt and resolves the cases
// that need no backend call. When it returns true the attempt awaits a
// whole-character check; the caller scores Attempt() against References()
// and applies the outcome with ResolveFinal.
func (m *Machine) BeginFinalCheck() (FinalResult, bool) {
	if m.mode != ModeFree || m.buf.Len() == 0 || m.reviewing {
		return FinalResult{}, false
	}

	if m.buf.Len() != len(m.refs) {
		if m.opts.ShortCircuitOnMismatch {
			m.result = &AccuracyResult{
				OverallAccuracy:  0,
				StrokeAccuracies: make([]float64, m.buf.Len()),
			}
			m.reviewing = true
			return FinalResult{Score: 0, Result: m.result, Mismatch: true}, false
		}
		// Blocking variant: no completion, the learner edits the attempt.
		return FinalResult{Mismatch: true}, false
	}

	m.pending = true
	return FinalResult{}, true
}

// ResolveFinal applies the whole-character verdict for a pending final
// check. A no-op when no check is pending.
func (m *Machine) ResolveFinal(res *AccuracyResult, err error) FinalResult {
	if !m.pending {
		return FinalResult{}
	}
	m.pending = false

	if err != nil {
		return FinalResult{Score: 0, Err: err}
	}

	m.result = res
	m.reviewing = true
	return FinalResult{
		Score:  int(math.Round(res.OverallAccuracy * 100)),
		Result: res,
	}
}

// FinalCheck scores the full free-mode attempt synchronously. A stroke-count
// mismatch never reaches the backend. Callers that must not block use the
// BeginFinalCheck/ResolveFinal pair and perform the check themselves.
func (m *Machine) FinalCheck(ctx context.Context) FinalResult {
	r, submit := m.BeginFinalCheck()
	if !submit {
		return r
	}
	res, err := m.checker.CheckKanji(ctx, m.buf.Strokes(), m.refs)
	return m.ResolveFinal(res, err)
}

// Undo removes the last attempt stroke. Free mode only. Leaving the
// reviewing state discards the stored accuracy result.
func (m *Machine) Undo() {
	if m.mode != ModeFree {
		return
	}
	if m.reviewing {
		m.reviewing = false
		m.result = nil
	}
	m.buf.RemoveLast()
}

// Reset returns the machine to its initial state for the character: guided
// step zero (when the variant has guided mode), empty attempt, no result.
func (m *Machine) Reset() {
	m.buf.Clear()
	m.strokeIndex = 0
	m.pending = false
	m.reviewing = false
	m.result = nil
	m.hintShown = false
	if m.opts.GuidedMode {
		m.mode = ModeGuided
	} else {
		m.mode = ModeFree
	}
}

// ClearAttempt is the partial, free-mode-only reset used mid-session: it
// clears the attempt and result but never re-enters guided mode.
func (m *Machine) ClearAttempt() {
	if m.mode != ModeFree {
		return
	}
	m.buf.Clear()
	m.reviewing = false
	m.result = nil
}

// ShowHint reveals the guide overlay for the current guided stroke.
func (m *Machine) ShowHint() {
	if m.opts.TrackHint {
		m.hintShown = true
	}
}

// HintShown reports whether the guide overlay is revealed.
func (m *Machine) HintShown() bool { return m.hintShown }
