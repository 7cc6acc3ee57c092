// Package store holds the client-side hierarchy state: four parallel
// containers (pages, sections, groups, bookmarks), each keyed by parent id,
// holding ordered child lists fetched lazily from the backend.
//
// STATE DISCIPLINE:
// Each level's in-memory state is mutated only by that level's own store,
// and only in two ways:
//
//  1. Replacing a scope's list with a server response (loads, bulk
//     reorders). Local order is never predicted client-side — the one
//     extra round trip buys us a guarantee that local and server order
//     can't diverge.
//  2. Splicing for cross-parent moves (Remove + Append), applied only
//     AFTER the server confirmed the move. The moved item lands at the
//     destination's end until the destination is refetched.
//
// Every server-calling action sets the store's loading flag before the
// call and clears it on all paths; a failure message is recorded in the
// store's error field for components to render. Overlapping calls against
// the same parent are not queued — last response wins, as specified.
//
// CANCELLATION:
// All actions take a context. A response that arrives after the caller's
// context was cancelled is discarded before any store mutation, so a
// closed view can no longer mutate now-irrelevant global state.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// Stores bundles the four hierarchy stores sharing one api client.
type Stores struct {
	Pages     *PageStore
	Sections  *SectionStore
	Groups    *GroupStore
	Bookmarks *BookmarkStore
}

// New wires the four stores to one backend client.
func New(client *api.Client, logger *slog.Logger) *Stores {
	return &Stores{
		Pages:     &PageStore{client: client, logger: logger},
		Sections:  &SectionStore{client: client, logger: logger, byPage: map[string][]model.Section{}},
		Groups:    &GroupStore{client: client, logger: logger, bySection: map[string][]model.Group{}},
		Bookmarks: &BookmarkStore{client: client, logger: logger, byGroup: map[string][]model.Bookmark{}},
	}
}

// status carries the loading/error UI state every store exposes.
// Guarded by the owning store's mutex.
type status struct {
	loading bool
	errMsg  string
}

func (s *status) begin() {
	s.loading = true
	s.errMsg = ""
}

// finish clears the loading flag on every path and records the failure
// message (if any) for the UI. Cancellation is not a failure the UI should
// render — the view that would have rendered it is gone — so it clears the
// flag without recording a message.
func (s *status) finish(err error) error {
	s.loading = false
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		s.errMsg = err.Error()
	}
	return err
}

// discard reports whether a completed call's result must be thrown away
// because the caller's context was cancelled while it was in flight.
func discard(ctx context.Context) bool {
	return ctx.Err() != nil
}

// lockedStatus is the begin/finish dance shared by all four stores: take
// the lock, flip the flags, run the action with the lock RELEASED (the
// network call must not hold it), then re-take the lock to finish.
type lockedStatus struct {
	mu sync.Mutex
	status
}

func (l *lockedStatus) run(action func() error) error {
	l.mu.Lock()
	l.begin()
	l.mu.Unlock()

	err := action()

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.finish(err)
}

// Loading reports whether a server call is in flight for this store.
func (l *lockedStatus) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the last recorded failure message, or "" after a success.
func (l *lockedStatus) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}
