// Package pager implements incremental reveal of larger lists for the
// browsing screens: a fixed window of items grows by one page at a time,
// with re-entrant load-more calls guarded and a full reset on parameter
// change.
package pager

// DefaultPageSize is the number of items revealed per load-more step.
const DefaultPageSize = 10

// Pager incrementally reveals a list already held in memory.
// The zero value is unusable; construct with New.
type Pager[T any] struct {
	items     []T
	displayed int
	pageSize  int
	loading   bool
}

// New creates a Pager revealing pageSize items per step.
func New[T any](pageSize int) *Pager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager[T]{pageSize: pageSize}
}

// Reset replaces the underlying items and rewinds the window to one page.
// Used on every parameter change (level, entity type).
func (p *Pager[T]) Reset(items []T) {
	p.items = items
	p.displayed = min(p.pageSize, len(items))
	p.loading = false
}

// Visible returns the currently revealed slice.
func (p *Pager[T]) Visible() []T {
	return p.items[:p.displayed]
}

// Displayed returns the number of revealed items.
func (p *Pager[T]) Displayed() int { return p.displayed }

// Total returns the number of underlying items.
func (p *Pager[T]) Total() int { return len(p.items) }

// Exhausted reports whether every item is already revealed.
func (p *Pager[T]) Exhausted() bool { return p.displayed >= len(p.items) }

// Loading reports whether a load-more step is in progress.
func (p *Pager[T]) Loading() bool { return p.loading }

// StartLoadMore begins a load-more step. Returns false (no-op) while a step
// is already in progress or the list is exhausted; callers skip the pacing
// delay in that case.
func (p *Pager[T]) StartLoadMore() bool {
	if p.loading || p.Exhausted() {
		return false
	}
	p.loading = true
	return true
}

// FinishLoadMore completes the in-progress step, growing the window by one
// page clamped to the total. No-op unless StartLoadMore succeeded.
func (p *Pager[T]) FinishLoadMore() {
	if !p.loading {
		return
	}
	p.displayed = min(p.displayed+p.pageSize, len(p.items))
	p.loading = false
}
