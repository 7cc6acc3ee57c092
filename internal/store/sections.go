package store

import (
	"context"
	"log/slog"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// SectionStore holds sections keyed by their page id. A page's entry is
// absent until the page is first expanded/viewed (lazy population).
type SectionStore struct {
	lockedStatus
	client *api.Client
	logger *slog.Logger

	byPage map[string][]model.Section
}

// Load fetches a page's sections, replacing that page's local list.
func (s *SectionStore) Load(ctx context.Context, pageID string) error {
	return s.run(func() error {
		sections, err := s.client.ListSections(ctx, pageID)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byPage[pageID] = sections
		s.mu.Unlock()
		return nil
	})
}

// Ensure loads a page's sections only if they were never loaded.
func (s *SectionStore) Ensure(ctx context.Context, pageID string) error {
	s.mu.Lock()
	_, loaded := s.byPage[pageID]
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx, pageID)
}

// Sections returns a copy of a page's section list and whether it has
// been loaded at all (an empty loaded list is not the same as "never
// fetched").
func (s *SectionStore) Sections(pageID string) ([]model.Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sections, ok := s.byPage[pageID]
	if !ok {
		return nil, false
	}
	out := make([]model.Section, len(sections))
	copy(out, sections)
	return out, true
}

// Create validates and creates a section under its page.
func (s *SectionStore) Create(ctx context.Context, section model.Section) (*model.Section, error) {
	if err := section.Validate(); err != nil {
		return nil, err
	}
	var created *model.Section
	err := s.run(func() error {
		resp, err := s.client.CreateSection(ctx, section)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byPage[resp.PageID] = append(s.byPage[resp.PageID], *resp)
		s.mu.Unlock()
		created = resp
		return nil
	})
	return created, err
}

// Update patches a section in place (rename, collapse toggle). Moves to a
// different page go through the reorder engine, which uses ApplyMove.
func (s *SectionStore) Update(ctx context.Context, pageID, id string, patch api.SectionPatch) (*model.Section, error) {
	var updated *model.Section
	err := s.run(func() error {
		resp, err := s.client.UpdateSection(ctx, id, patch)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		replaceSection(s.byPage[pageID], *resp)
		s.mu.Unlock()
		updated = resp
		return nil
	})
	return updated, err
}

// Delete removes a section (groups and bookmarks cascade server-side).
func (s *SectionStore) Delete(ctx context.Context, pageID, id string) error {
	return s.run(func() error {
		if err := s.client.DeleteSection(ctx, id); err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byPage[pageID] = removeSection(s.byPage[pageID], id)
		s.mu.Unlock()
		return nil
	})
}

// SetOrder issues the bulk reorder for one page's sections and replaces
// the local list with the server's returned order.
func (s *SectionStore) SetOrder(ctx context.Context, pageID string, orderedIDs []string) error {
	return s.run(func() error {
		sections, err := s.client.ReorderSections(ctx, pageID, orderedIDs)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.byPage[pageID] = sections
		s.mu.Unlock()
		return nil
	})
}

// ApplyMove commits a confirmed cross-page move locally: the section is
// removed from the source list and appended to the destination list under
// one lock — both sides of the splice or neither, so the section can
// never appear in both pages or in no page.
func (s *SectionStore) ApplyMove(fromPageID string, moved model.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPage[fromPageID] = removeSection(s.byPage[fromPageID], moved.ID)
	s.byPage[moved.PageID] = append(s.byPage[moved.PageID], moved)
}

func replaceSection(sections []model.Section, updated model.Section) {
	for i := range sections {
		if sections[i].ID == updated.ID {
			sections[i] = updated
			return
		}
	}
}

func removeSection(sections []model.Section, id string) []model.Section {
	out := sections[:0]
	for _, sec := range sections {
		if sec.ID != id {
			out = append(out, sec)
		}
	}
	return out
}
