package store

import (
	"context"
	"log/slog"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// PageStore holds the user's pages. Pages have no parent entity (their
// parent is the user), so this is a single ordered list rather than a map.
type PageStore struct {
	lockedStatus
	client *api.Client
	logger *slog.Logger

	pages  []model.Page
	loaded bool
}

// Load fetches the page list from the backend, replacing local state.
func (s *PageStore) Load(ctx context.Context) error {
	return s.run(func() error {
		pages, err := s.client.ListPages(ctx)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.pages = pages
		s.loaded = true
		s.mu.Unlock()
		return nil
	})
}

// Ensure loads the page list only if it was never loaded.
func (s *PageStore) Ensure(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Pages returns a copy of the current page list in display order.
func (s *PageStore) Pages() []model.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Create validates and creates a page. Validation failures never reach
// the network; the server-returned page (with its assigned id and order)
// is appended locally.
func (s *PageStore) Create(ctx context.Context, page model.Page) (*model.Page, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	var created *model.Page
	err := s.run(func() error {
		resp, err := s.client.CreatePage(ctx, page)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.pages = append(s.pages, *resp)
		s.mu.Unlock()
		created = resp
		return nil
	})
	return created, err
}

// Update patches a page and replaces the local copy with the server's.
func (s *PageStore) Update(ctx context.Context, id string, patch api.PagePatch) (*model.Page, error) {
	var updated *model.Page
	err := s.run(func() error {
		resp, err := s.client.UpdatePage(ctx, id, patch)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		for i := range s.pages {
			if s.pages[i].ID == id {
				s.pages[i] = *resp
				break
			}
		}
		s.mu.Unlock()
		updated = resp
		return nil
	})
	return updated, err
}

// Delete removes a page (descendants cascade server-side).
func (s *PageStore) Delete(ctx context.Context, id string) error {
	return s.run(func() error {
		if err := s.client.DeletePage(ctx, id); err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.pages = removePage(s.pages, id)
		s.mu.Unlock()
		return nil
	})
}

// SetOrder issues the bulk reorder call and replaces local state with the
// server's authoritative returned order.
func (s *PageStore) SetOrder(ctx context.Context, orderedIDs []string) error {
	return s.run(func() error {
		pages, err := s.client.ReorderPages(ctx, orderedIDs)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.pages = pages
		s.mu.Unlock()
		return nil
	})
}

func removePage(pages []model.Page, id string) []model.Page {
	out := pages[:0]
	for _, p := range pages {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
