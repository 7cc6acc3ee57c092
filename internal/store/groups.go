package store

import (
	"context"
	"log/slog"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// GroupStore holds groups keyed by their section id, plus the lazily
// created Inbox staging group.
type GroupStore struct {
	lockedStatus
	client *api.Client
	logger *slog.Logger

	bySection map[string][]model.Group
	inbox     *model.Group // cached after the first EnsureInbox
}

// Load fetches a section's groups, replacing that section's local list.
func (s *GroupStore) Load(ctx context.Context, sectionID string) error {
	return s.run(func() error {
		groups, err := s.client.ListGroups(ctx, sectionID)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.bySection[sectionID] = groups
		s.mu.Unlock()
		return nil
	})
}

// Ensure loads a section's groups only if they were never loaded.
func (s *GroupStore) Ensure(ctx context.Context, sectionID string) error {
	s.mu.Lock()
	_, loaded := s.bySection[sectionID]
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx, sectionID)
}

// Groups returns a copy of a section's group list and whether it has been
// loaded.
func (s *GroupStore) Groups(sectionID string) ([]model.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups, ok := s.bySection[sectionID]
	if !ok {
		return nil, false
	}
	out := make([]model.Group, len(groups))
	copy(out, groups)
	return out, true
}

// Create validates and creates a group under its section.
func (s *GroupStore) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}
	var created *model.Group
	err := s.run(func() error {
		resp, err := s.client.CreateGroup(ctx, group)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.bySection[resp.SectionID] = append(s.bySection[resp.SectionID], *resp)
		s.mu.Unlock()
		created = resp
		return nil
	})
	return created, err
}

// Update patches a group in place (rename, column count, width, limit).
// Cross-section moves go through the reorder engine and ApplyMove.
func (s *GroupStore) Update(ctx context.Context, sectionID, id string, patch api.GroupPatch) (*model.Group, error) {
	var updated *model.Group
	err := s.run(func() error {
		resp, err := s.client.UpdateGroup(ctx, id, patch)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		replaceGroup(s.bySection[sectionID], *resp)
		s.mu.Unlock()
		updated = resp
		return nil
	})
	return updated, err
}

// Delete removes a group (its bookmarks cascade server-side).
func (s *GroupStore) Delete(ctx context.Context, sectionID, id string) error {
	return s.run(func() error {
		if err := s.client.DeleteGroup(ctx, id); err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.bySection[sectionID] = removeGroup(s.bySection[sectionID], id)
		s.mu.Unlock()
		return nil
	})
}

// SetOrder issues the bulk reorder for one section's groups and replaces
// the local list with the server's returned order.
func (s *GroupStore) SetOrder(ctx context.Context, sectionID string, orderedIDs []string) error {
	return s.run(func() error {
		groups, err := s.client.ReorderGroups(ctx, sectionID, orderedIDs)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.bySection[sectionID] = groups
		s.mu.Unlock()
		return nil
	})
}

// ApplyMove commits a confirmed cross-section move locally, removing from
// the source list and appending to the destination under one lock.
func (s *GroupStore) ApplyMove(fromSectionID string, moved model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySection[fromSectionID] = removeGroup(s.bySection[fromSectionID], moved.ID)
	s.bySection[moved.SectionID] = append(s.bySection[moved.SectionID], moved)
}

// EnsureInbox returns the reserved quick-add staging group, asking the
// backend to create it on first use. The result is cached — the inbox
// never moves or renames, so one round trip per session is enough.
func (s *GroupStore) EnsureInbox(ctx context.Context) (*model.Group, error) {
	s.mu.Lock()
	if s.inbox != nil {
		cached := *s.inbox
		s.mu.Unlock()
		return &cached, nil
	}
	s.mu.Unlock()

	var inbox *model.Group
	err := s.run(func() error {
		resp, err := s.client.EnsureInbox(ctx)
		if err != nil {
			return err
		}
		if discard(ctx) {
			return ctx.Err()
		}
		s.mu.Lock()
		s.inbox = resp
		s.mu.Unlock()
		inbox = resp
		return nil
	})
	return inbox, err
}

func replaceGroup(groups []model.Group, updated model.Group) {
	for i := range groups {
		if groups[i].ID == updated.ID {
			groups[i] = updated
			return
		}
	}
}

func removeGroup(groups []model.Group, id string) []model.Group {
	out := groups[:0]
	for _, g := range groups {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}
