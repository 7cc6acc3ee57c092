package store

import (
	"context"
	"log/slog"
	"sort"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/apperror"
	"github.com/pingrid/pingrid/internal/model"
)

// BookmarkStore holds bookmarks keyed by their group id. Each group's
// list covers all of the group's columns in canonical order (column, then
// position). Only manual groups have entries here — dynamic groups own no
// persisted bookmarks and are resolved at read time via VisibleBookmarks.
type BookmarkStore struct {
	lockedStatus
	client *api.Client
	logger *slog.Logger

	byGroup map[string][]model.Bookmark
}

// Load fetches a group's bookmarks, replacing that group's local list.
func (s *BookmarkStore) Load(ctx context.Context, groupID string) error {
	return s.run(func() error {
		bookmarks, err := s.client.ListBookmarks(ctx, groupID)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byGroup[groupID] = bookmarks
		s.mu.Unlock()
		return nil
	})
}

// Ensure loads a group's bookmarks only if they were never loaded.
func (s *BookmarkStore) Ensure(ctx context.Context, groupID string) error {
	s.mu.Lock()
	_, loaded := s.byGroup[groupID]
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx, groupID)
}

// Bookmarks returns a copy of a group's full bookmark list (all columns)
// and whether it has been loaded.
func (s *BookmarkStore) Bookmarks(groupID string) ([]model.Bookmark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bookmarks, ok := s.byGroup[groupID]
	if !ok {
		return nil, false
	}
	out := make([]model.Bookmark, len(bookmarks))
	copy(out, bookmarks)
	return out, true
}

// Column returns a copy of one column's bookmarks in position order.
func (s *BookmarkStore) Column(groupID string, column int) []model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Bookmark, 0)
	for _, b := range s.byGroup[groupID] {
		if b.Column == column {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// VisibleBookmarks is the live-view read for one group.
//
// Manual groups: the loaded list with columns clamped into the group's
// current column range (stored values stay untouched). Dynamic groups:
// resolved from the global top-used ranking via model.ResolveDynamic —
// the same function the snapshot builder uses, so live and cached views
// can never disagree on column assignment.
func (s *BookmarkStore) VisibleBookmarks(g model.Group, topUsed []model.Bookmark) []model.Bookmark {
	if g.IsDynamic() {
		return model.ResolveDynamic(g, topUsed)
	}
	bookmarks, _ := s.Bookmarks(g.ID)
	for i := range bookmarks {
		bookmarks[i].Column = model.ClampColumn(bookmarks[i].Column, g.ColumnCount)
	}
	return bookmarks
}

// Create validates and creates a bookmark in its (manual) group.
func (s *BookmarkStore) Create(ctx context.Context, bookmark model.Bookmark) (*model.Bookmark, error) {
	if err := bookmark.Validate(); err != nil {
		return nil, err
	}
	var created *model.Bookmark
	err := s.run(func() error {
		resp, err := s.client.CreateBookmark(ctx, bookmark)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byGroup[resp.GroupID] = append(s.byGroup[resp.GroupID], *resp)
		s.mu.Unlock()
		created = resp
		return nil
	})
	return created, err
}

// QuickAdd drops a pasted URL into the reserved Inbox staging group,
// creating the inbox on first use.
func (s *BookmarkStore) QuickAdd(ctx context.Context, groups *GroupStore, title, url string) (*model.Bookmark, error) {
	bookmark := model.Bookmark{Title: title, URL: url, Column: 1}
	if err := bookmark.Validate(); err != nil {
		return nil, err
	}
	inbox, err := groups.EnsureInbox(ctx)
	if err != nil {
		return nil, err
	}
	bookmark.GroupID = inbox.ID
	return s.Create(ctx, bookmark)
}

// Update patches a bookmark in place (title, url, description, favicon).
// Column changes and cross-group moves go through the reorder engine.
func (s *BookmarkStore) Update(ctx context.Context, groupID, id string, patch api.BookmarkPatch) (*model.Bookmark, error) {
	if patch.URL != nil && !model.ValidURL(*patch.URL) {
		return nil, apperror.ValidationFailed("url", "url must start with http:// or https://")
	}
	var updated *model.Bookmark
	err := s.run(func() error {
		resp, err := s.client.UpdateBookmark(ctx, id, patch)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		replaceBookmark(s.byGroup[groupID], *resp)
		s.mu.Unlock()
		updated = resp
		return nil
	})
	return updated, err
}

// Delete removes a bookmark.
func (s *BookmarkStore) Delete(ctx context.Context, groupID, id string) error {
	return s.run(func() error {
		if err := s.client.DeleteBookmark(ctx, id); err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byGroup[groupID] = removeBookmark(s.byGroup[groupID], id)
		s.mu.Unlock()
		return nil
	})
}

// SetColumnOrder issues the bulk reorder for one column of one group. The
// server's response covers the whole group (all columns, canonical
// order), and it replaces the group's local list wholesale.
func (s *BookmarkStore) SetColumnOrder(ctx context.Context, groupID string, column int, orderedIDs []string) error {
	return s.run(func() error {
		bookmarks, err := s.client.ReorderBookmarks(ctx, groupID, column, orderedIDs)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byGroup[groupID] = bookmarks
		s.mu.Unlock()
		return nil
	})
}

// ApplyMove commits a confirmed cross-group move locally, removing from
// the source group's list and appending to the destination's under one
// lock — the bookmark ends up in exactly one group's list.
func (s *BookmarkStore) ApplyMove(fromGroupID string, moved model.Bookmark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byGroup[fromGroupID] = removeBookmark(s.byGroup[fromGroupID], moved.ID)
	s.byGroup[moved.GroupID] = append(s.byGroup[moved.GroupID], moved)
}

// ReplaceAfterColumnChange commits a same-group column change: the
// server-returned bookmark replaces the stale local copy.
func (s *BookmarkStore) ReplaceAfterColumnChange(moved model.Bookmark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaceBookmark(s.byGroup[moved.GroupID], moved)
}

// Click fires the visit-count increment for a bookmark. Failures are
// logged inside the client and never surfaced — navigation to the
// bookmark's URL must not block on this.
func (s *BookmarkStore) Click(ctx context.Context, id string) {
	s.client.TrackClick(ctx, id)
}

// TopUsed fetches the global visit-count ranking.
func (s *BookmarkStore) TopUsed(ctx context.Context, limit int) ([]model.Bookmark, error) {
	return s.client.TopUsed(ctx, limit)
}

func replaceBookmark(bookmarks []model.Bookmark, updated model.Bookmark) {
	for i := range bookmarks {
		if bookmarks[i].ID == updated.ID {
			bookmarks[i] = updated
			return
		}
	}
}

func removeBookmark(bookmarks []model.Bookmark, id string) []model.Bookmark {
	out := bookmarks[:0]
	for _, b := range bookmarks {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
