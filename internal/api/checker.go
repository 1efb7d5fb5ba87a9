package api

import (
	"context"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
)

// Accuracy-checking and recognition endpoints. Strokes go over the wire as
// plain JSON arrays of [x, y] pairs; no retries are performed here — a
// failed call is a terminal outcome for that drawing action.

type checkStrokeRequest struct {
	UserStroke      [][2]float64 `json:"userStroke"`
	ReferenceStroke [][2]float64 `json:"referenceStroke"`
}

type checkKanjiRequest struct {
	KanjiUUID         string         `json:"kanjiUuid,omitempty"`
	UserStrokes       [][][2]float64 `json:"userStrokes"`
	ReferenceStrokes  [][][2]float64 `json:"referenceStrokes"`
	IsLearningSession *bool          `json:"isLearningSession,omitempty"`
}

type recognizeRequest struct {
	UserStrokes [][][2]float64 `json:"userStrokes"`
}

// CheckStroke submits a single-stroke comparison during guided practice.
func (c *Client) CheckStroke(ctx context.Context, user canvas.Stroke, ref canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	req := checkStrokeRequest{
		UserStroke:      user.Pairs(),
		ReferenceStroke: ref,
	}
	var res canvas.AccuracyResult
	if err := c.post(ctx, "/api/v1/checker/stroke", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckKanjiLearning submits a full-attempt comparison for a first-time
// learning session, including the character identity.
func (c *Client) CheckKanjiLearning(ctx context.Context, kanjiUUID string, user []canvas.Stroke, refs []canvas.ReferenceStroke, isLearning bool) (*canvas.AccuracyResult, error) {
	req := checkKanjiRequest{
		KanjiUUID:         kanjiUUID,
		UserStrokes:       strokesToPairs(user),
		ReferenceStrokes:  refsToPairs(refs),
		IsLearningSession: &isLearning,
	}
	var res canvas.AccuracyResult
	if err := c.post(ctx, "/api/v1/checker/kanji", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckKanjiReview submits a full-attempt comparison for a review session.
func (c *Client) CheckKanjiReview(ctx context.Context, user []canvas.Stroke, refs []canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	req := checkKanjiRequest{
		UserStrokes:      strokesToPairs(user),
		ReferenceStrokes: refsToPairs(refs),
	}
	var res canvas.AccuracyResult
	if err := c.post(ctx, "/api/v1/accuracy/kanji", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Recognize submits strokes-so-far and returns ranked character candidates.
// Empty input short-circuits to an empty result without a network call.
func (c *Client) Recognize(ctx context.Context, strokes []canvas.Stroke) ([]canvas.Candidate, error) {
	if len(strokes) == 0 {
		return []canvas.Candidate{}, nil
	}
	req := recognizeRequest{UserStrokes: strokesToPairs(strokes)}
	var res []canvas.Candidate
	if err := c.post(ctx, "/api/v1/recognizer/recognize", req, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// LearningChecker adapts the client to the canvas gateway interface for
// learning sessions: full-kanji checks carry the character identity and the
// learning flag.
type LearningChecker struct {
	Client     *Client
	KanjiUUID  string
	IsLearning bool
}

func (l *LearningChecker) CheckStroke(ctx context.Context, user canvas.Stroke, ref canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	return l.Client.CheckStroke(ctx, user, ref)
}

func (l *LearningChecker) CheckKanji(ctx context.Context, user []canvas.Stroke, refs []canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	return l.Client.CheckKanjiLearning(ctx, l.KanjiUUID, user, refs, l.IsLearning)
}

// ReviewChecker adapts the client to the canvas gateway interface for
// review sessions, which use the plain accuracy endpoint.
type ReviewChecker struct {
	Client *Client
}

func (r *ReviewChecker) CheckStroke(ctx context.Context, user canvas.Stroke, ref canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	return r.Client.CheckStroke(ctx, user, ref)
}

func (r *ReviewChecker) CheckKanji(ctx context.Context, user []canvas.Stroke, refs []canvas.ReferenceStroke) (*canvas.AccuracyResult, error) {
	return r.Client.CheckKanjiReview(ctx, user, refs)
}

func strokesToPairs(strokes []canvas.Stroke) [][][2]float64 {
	out := make([][][2]float64, len(strokes))
	for i, s := range strokes {
		out[i] = s.Pairs()
	}
	return out
}

func refsToPairs(refs []canvas.ReferenceStroke) [][][2]float64 {
	out := make([][][2]float64, len(refs))
	for i, r := range refs {
		out[i] = r
	}
	return out
}
