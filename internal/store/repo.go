package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ActivityCache is the last dashboard payload fetched from the backend,
// kept so the profile screen can render stale numbers while offline.
type ActivityCache struct {
	TotalAttempts   int       `json:"total_attempts"`
	TotalLearned    int       `json:"total_learned"`
	TotalReviews    int       `json:"total_reviews"`
	AverageAccuracy float64   `json:"average_accuracy"`
	CurrentStreak   int       `json:"current_streak"`
	LongestStreak   int       `json:"longest_streak"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// SnapshotData is the cached client state persisted between runs.
type SnapshotData struct {
	Version  int            `json:"version"`
	Activity *ActivityCache `json:"activity,omitempty"`
}

// Snapshot represents a point-in-time capture of cached client state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages cached state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one finalized drawing attempt.
type AttemptEventData struct {
	SessionID     string
	CharacterUUID string
	Character     string
	Kind          string
	Score         int
	StrokeCount   int
	Mismatch      bool
}

// AttemptEventRecord is a persisted attempt event with its log position.
type AttemptEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// SessionEventData captures an SRS session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Kind           string
	Action         string
	ItemsTotal     int
	ItemsCompleted int
	AverageScore   float64
	DurationSecs   int
}

// SessionSummaryRecord is one completed session as shown by `fuji stats`.
type SessionSummaryRecord struct {
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	Kind           string
	ItemsTotal     int
	ItemsCompleted int
	AverageScore   float64
	DurationSecs   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token counts for one purpose or model.
type LLMUsage struct {
	Key          string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the local journal.
type EventRepo interface {
	// AppendAttemptEvent records a finalized drawing attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// QueryAttemptEvents returns attempts newest-first.
	QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error)

	// AverageScore returns the mean score over the most recent lastN
	// attempts of the given kind, and how many attempts were found.
	AverageScore(ctx context.Context, kind string, lastN int) (float64, int, error)

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns completed sessions newest-first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events newest-first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
