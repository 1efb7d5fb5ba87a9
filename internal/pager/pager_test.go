package pager

import (
	"context"
	"errors"
	"testing"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPager_ResetToOnePage(t *testing.T) {
	p := New[int](10)
	p.Reset(intRange(25))

	if p.Displayed() != 10 {
		t.Errorf("Displayed = %d, want 10", p.Displayed())
	}
	if p.Total() != 25 {
		t.Errorf("Total = %d, want 25", p.Total())
	}
	if len(p.Visible()) != 10 {
		t.Errorf("Visible len = %d, want 10", len(p.Visible()))
	}
}

func TestPager_ShortListRevealsAll(t *testing.T) {
	p := New[int](10)
	p.Reset(intRange(4))
	if p.Displayed() != 4 || !p.Exhausted() {
		t.Errorf("Displayed = %d, Exhausted = %v; want 4, true", p.Displayed(), p.Exhausted())
	}
}

func TestPager_LoadMoreGrowsClamped(t *testing.T) {
	p := New[int](10)
	p.Reset(intRange(25))

	if !p.StartLoadMore() {
		t.Fatal("first StartLoadMore must succeed")
	}
	p.FinishLoadMore()
	if p.Displayed() != 20 {
		t.Errorf("Displayed = %d, want 20", p.Displayed())
	}

	if !p.StartLoadMore() {
		t.Fatal("second StartLoadMore must succeed")
	}
	p.FinishLoadMore()
	if p.Displayed() != 25 {
		t.Errorf("Displayed = %d, want 25 (clamped)", p.Displayed())
	}

	if p.StartLoadMore() {
		t.Error("StartLoadMore on exhausted list must be a no-op")
	}
}

func TestPager_ReentrantLoadMoreIsNoOp(t *testing.T) {
	p := New[int](10)
	p.Reset(intRange(30))

	if !p.StartLoadMore() {
		t.Fatal("first StartLoadMore must succeed")
	}
	if p.StartLoadMore() {
		t.Error("StartLoadMore while loading must return false")
	}
	p.FinishLoadMore()
	if p.Displayed() != 20 {
		t.Errorf("Displayed = %d, want 20 (no double increment)", p.Displayed())
	}
}

func TestPager_FinishWithoutStartIsNoOp(t *testing.T) {
	p := New[int](10)
	p.Reset(intRange(30))
	p.FinishLoadMore()
	if p.Displayed() != 10 {
		t.Errorf("Displayed = %d, want 10", p.Displayed())
	}
}

func TestPager_DisplayedNeverExceedsTotal(t *testing.T) {
	p := New[int](7)
	p.Reset(intRange(16))
	for i := 0; i < 5; i++ {
		if p.StartLoadMore() {
			p.FinishLoadMore()
		}
		if p.Displayed() < 0 || p.Displayed() > p.Total() {
			t.Fatalf("invariant violated: displayed %d, total %d", p.Displayed(), p.Total())
		}
	}
}

func TestPager_ResetRewindsAfterGrowth(t *testing.T) {
	p := New[int](10)
	p.Reset(intRange(25))
	p.StartLoadMore()
	p.FinishLoadMore()
	if p.Displayed() != 20 {
		t.Fatalf("precondition: Displayed = %d, want 20", p.Displayed())
	}

	// Parameter change.
	p.Reset(intRange(25))
	if p.Displayed() != 10 {
		t.Errorf("Displayed = %d after reset, want 10", p.Displayed())
	}
}

func TestFetcher_LoadResetsAndCountsFetches(t *testing.T) {
	fetches := 0
	f := NewFetcher(10, func(_ context.Context) ([]int, error) {
		fetches++
		return intRange(25), nil
	})

	if err := f.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	f.StartLoadMore()
	f.FinishLoadMore()

	// Parameter change triggers exactly one refetch and a rewind.
	if err := f.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fetches != 2 {
		t.Errorf("fetches = %d, want 2", fetches)
	}
	if f.Displayed() != 10 {
		t.Errorf("Displayed = %d, want 10", f.Displayed())
	}
}

func TestFetcher_ErrorRetainedUntilSuccess(t *testing.T) {
	wantErr := errors.New("503")
	fail := true
	f := NewFetcher(10, func(_ context.Context) ([]int, error) {
		if fail {
			return nil, wantErr
		}
		return intRange(5), nil
	})

	if err := f.Load(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Load err = %v, want %v", err, wantErr)
	}
	if !errors.Is(f.Err(), wantErr) {
		t.Errorf("Err() = %v, want retained %v", f.Err(), wantErr)
	}
	if f.Total() != 0 {
		t.Errorf("Total = %d after failed load, want 0", f.Total())
	}

	fail = false
	if err := f.Refetch(context.Background()); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if f.Err() != nil {
		t.Errorf("Err() = %v after success, want nil", f.Err())
	}
	if f.Displayed() != 5 {
		t.Errorf("Displayed = %d, want 5", f.Displayed())
	}
}
