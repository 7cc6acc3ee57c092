package apitest

import (
	"sort"

	"github.com/pingrid/pingrid/internal/model"
)

// Ordered views over the entity maps. Callers must hold s.mu.

func (s *Server) orderedPages() []*model.Page {
	out := make([]*model.Page, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

func (s *Server) sectionsOf(pageID string) []*model.Section {
	out := make([]*model.Section, 0)
	for _, sec := range s.sections {
		if sec.PageID == pageID {
			out = append(out, sec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

func (s *Server) groupsOf(sectionID string) []*model.Group {
	out := make([]*model.Group, 0)
	for _, g := range s.groups {
		if g.SectionID == sectionID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// bookmarksOf returns a group's bookmarks in canonical order: by column,
// then by position within the column.
func (s *Server) bookmarksOf(groupID string) []*model.Bookmark {
	out := make([]*model.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.GroupID == groupID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Column != out[j].Column {
			return out[i].Column < out[j].Column
		}
		return out[i].Position < out[j].Position
	})
	return out
}

func (s *Server) bookmarksOfColumn(groupID string, column int) []*model.Bookmark {
	out := make([]*model.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.GroupID == groupID && b.Column == column {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// renumber* rewrite a scope's whole order sequence so it stays dense —
// zero-based, no gaps, no duplicates — after any removal or move.

func (s *Server) renumberPages() {
	for i, p := range s.orderedPages() {
		p.DisplayOrder = i
	}
}

func (s *Server) renumberSections(pageID string) {
	for i, sec := range s.sectionsOf(pageID) {
		sec.DisplayOrder = i
	}
}

func (s *Server) renumberGroups(sectionID string) {
	for i, g := range s.groupsOf(sectionID) {
		g.DisplayOrder = i
	}
}

func (s *Server) renumberColumn(groupID string, column int) {
	for i, b := range s.bookmarksOfColumn(groupID, column) {
		b.Position = i
	}
}
