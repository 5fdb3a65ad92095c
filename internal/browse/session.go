// The browse package models an interactive paginated browsing flow as an
// explicit state machine: a session holds the accumulated items, the active
// filter and the pagination cursor, and serializes loads so a page is never
// spliced into a list it no longer belongs to.

package browse

import (
	"context"
	"sync"
)

// State is the lifecycle phase of a session.
type State int

const (
	// Idle means no load is running and the session can accept one.
	Idle State = iota
	// Loading means a page fetch is in flight.
	Loading
	// Loaded means the last fetch succeeded.
	Loaded
	// Errored means the last fetch failed; the accumulated items are kept.
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// Filter is the set of catalog filters a session browses under. Changing
// any field restarts pagination from page one.
type Filter struct {
	Sort   string
	Format string
	Status string
	Genre  string
	Search string
}

// PageResult is one fetched page plus whether more pages follow.
type PageResult[T any] struct {
	Items   []T
	HasMore bool
}

// FetchFunc loads one page for the given filter.
type FetchFunc[T any] func(ctx context.Context, filter Filter, page int) (PageResult[T], error)

// Session accumulates pages of T under one filter. Page one replaces the
// item list; later pages append. All methods are safe for concurrent use.
type Session[T any] struct {
	fetch FetchFunc[T]

	mu      sync.Mutex
	filter  Filter
	items   []T
	page    int
	hasMore bool
	state   State
	err     error
	gen     uint64
	closed  bool
}

// NewSession creates an idle session that loads pages through fetch.
func NewSession[T any](fetch FetchFunc[T]) *Session[T] {
	return &Session[T]{fetch: fetch, hasMore: true}
}

// SetFilter installs a new filter and resets pagination. Any load already
// in flight is abandoned: its result will be discarded when it lands.
func (s *Session[T]) SetFilter(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.filter = filter
	s.items = nil
	s.page = 0
	s.hasMore = true
	s.state = Idle
	s.err = nil
	s.gen++
}

// LoadMore fetches the next page and folds it into the session. It is a
// no-op while a load is running, after the last page, or after Close. A
// failed fetch moves the session to Errored without touching the items
// already accumulated; the same page is retried on the next call.
func (s *Session[T]) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.state == Loading || !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	s.state = Loading
	s.err = nil
	gen := s.gen
	filter := s.filter
	page := s.page + 1
	s.mu.Unlock()

	result, err := s.fetch(ctx, filter, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		// The session moved on (filter change or reset) while this page
		// was in flight; it belongs to a list that no longer exists.
		return nil
	}
	if err != nil {
		s.state = Errored
		s.err = err
		return err
	}
	if page == 1 {
		s.items = append([]T(nil), result.Items...)
	} else {
		s.items = append(s.items, result.Items...)
	}
	s.page = page
	s.hasMore = result.HasMore
	s.state = Loaded
	return nil
}

// Reset clears the session back to an idle first-page state, keeping the
// current filter.
func (s *Session[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.items = nil
	s.page = 0
	s.hasMore = true
	s.state = Idle
	s.err = nil
	s.gen++
}

// Close permanently retires the session. Every later call is a no-op.
func (s *Session[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
}

// Items returns a copy of the accumulated items in load order.
func (s *Session[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Filter returns the active filter.
func (s *Session[T]) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// State returns the current lifecycle phase.
func (s *Session[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error from the last failed load, or nil.
func (s *Session[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Page returns the highest page folded in so far (0 before the first load).
func (s *Session[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// HasMore reports whether another page can be requested.
func (s *Session[T]) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore && !s.closed
}
