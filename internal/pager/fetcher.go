package pager

import "context"

// FetchFunc loads the full item list for the current parameters.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Fetcher is the backend-backed Pager variant: the underlying list comes
// from a fetch call, a failed fetch is terminal (no automatic retry) and
// exposed for messaging, and Refetch repeats the last fetch.
type Fetcher[T any] struct {
	*Pager[T]
	fetch FetchFunc[T]
	err   error
}

// NewFetcher creates a Fetcher over the given fetch func.
func NewFetcher[T any](pageSize int, fetch FetchFunc[T]) *Fetcher[T] {
	return &Fetcher[T]{Pager: New[T](pageSize), fetch: fetch}
}

// Load fetches the full list and resets the window to one page. On failure
// the previous items are discarded and the error is retained; callers
// classify it (auth vs. server) for messaging only.
func (f *Fetcher[T]) Load(ctx context.Context) error {
	items, err := f.fetch(ctx)
	if err != nil {
		f.err = err
		f.Reset(nil)
		return err
	}
	f.err = nil
	f.Reset(items)
	return nil
}

// Refetch repeats the last fetch with the same parameters.
func (f *Fetcher[T]) Refetch(ctx context.Context) error {
	return f.Load(ctx)
}

// Err returns the error from the last fetch, nil after a successful load.
func (f *Fetcher[T]) Err() error { return f.err }
