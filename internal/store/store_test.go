package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Activity: &ActivityCache{
				TotalAttempts: 120,
				CurrentStreak: 7,
				FetchedAt:     now,
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Activity == nil {
		t.Fatal("expected cached activity to round-trip")
	}
	if snap.Data.Activity.TotalAttempts != 120 {
		t.Errorf("total attempts = %d, want 120", snap.Data.Activity.TotalAttempts)
	}
	if snap.Data.Activity.CurrentStreak != 7 {
		t.Errorf("current streak = %d, want 7", snap.Data.Activity.CurrentStreak)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{CharacterUUID: "u1", Character: "水", Kind: "lesson", Score: 85, StrokeCount: 4},
		{CharacterUUID: "u2", Character: "火", Kind: "review", Score: 92, StrokeCount: 4},
		{CharacterUUID: "u3", Character: "木", Kind: "review", Score: 0, StrokeCount: 2, Mismatch: true},
	}
	for i, a := range attempts {
		if err := repo.AppendAttemptEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryAttemptEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].Character != "木" {
		t.Errorf("records[0].Character = %q, want 木", records[0].Character)
	}
	if !records[0].Mismatch {
		t.Error("expected mismatch flag on newest record")
	}
	if records[0].Sequence <= records[2].Sequence {
		t.Errorf("sequences not descending: %d vs %d", records[0].Sequence, records[2].Sequence)
	}

	limited, err := repo.QueryAttemptEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited records = %d, want 2", len(limited))
	}
}

func TestAverageScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	avg, n, err := repo.AverageScore(ctx, "review", 10)
	if err != nil {
		t.Fatalf("average (empty): %v", err)
	}
	if n != 0 || avg != 0 {
		t.Errorf("empty average = %v over %d, want 0 over 0", avg, n)
	}

	scores := []int{80, 90, 100}
	for _, sc := range scores {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			CharacterUUID: "u", Character: "日", Kind: "review", Score: sc,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	// A lesson attempt must not count toward the review average.
	err = repo.AppendAttemptEvent(ctx, AttemptEventData{
		CharacterUUID: "u", Character: "日", Kind: "lesson", Score: 10,
	})
	if err != nil {
		t.Fatalf("append lesson: %v", err)
	}

	avg, n, err = repo.AverageScore(ctx, "review", 10)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if avg != 90 {
		t.Errorf("average = %v, want 90", avg)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Kind: "lesson", Action: "start", ItemsTotal: 5,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Kind: "lesson", Action: "end",
		ItemsTotal: 5, ItemsCompleted: 5, AverageScore: 84.2, DurationSecs: 310,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1 (start events excluded)", len(summaries))
	}
	got := summaries[0]
	if got.SessionID != "s1" || got.Kind != "lesson" {
		t.Errorf("summary = %+v", got)
	}
	if got.ItemsCompleted != 5 || got.AverageScore != 84.2 || got.DurationSecs != 310 {
		t.Errorf("summary totals = %+v", got)
	}
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "explain", InputTokens: 40, OutputTokens: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].Purpose != "explain" {
		t.Errorf("records[0].Purpose = %q, want explain (newest first)", records[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ErrorMessage != "rate limited" {
		t.Errorf("GetLLMEvent = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage groups = %d, want 2", len(usage))
	}
	// Sorted by key: chat, explain.
	if usage[0].Key != "chat" || usage[0].Requests != 2 || usage[0].InputTokens != 300 {
		t.Errorf("chat usage = %+v", usage[0])
	}
	if usage[1].Key != "explain" || usage[1].OutputTokens != 300 {
		t.Errorf("explain usage = %+v", usage[1])
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "attempt_events", "session_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
