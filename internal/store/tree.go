package store

import (
	"context"
	"fmt"

	"github.com/pingrid/pingrid/internal/model"
)

// AssemblePageTree materialises one page's full tree from the stores,
// lazily loading whatever levels were never fetched. Manual groups carry
// their persisted bookmark lists verbatim; dynamic groups carry no
// bookmarks here — resolution against the top-used ranking happens at
// read time (live view) or build time (snapshot), never during assembly.
func (s *Stores) AssemblePageTree(ctx context.Context, page model.Page) (*model.PageTree, error) {
	if err := s.Sections.Ensure(ctx, page.ID); err != nil {
		return nil, fmt.Errorf("assembling page tree: %w", err)
	}
	sections, _ := s.Sections.Sections(page.ID)

	tree := &model.PageTree{Page: page, Sections: make([]model.SectionTree, 0, len(sections))}
	for _, sec := range sections {
		if err := s.Groups.Ensure(ctx, sec.ID); err != nil {
			return nil, fmt.Errorf("assembling page tree: %w", err)
		}
		groups, _ := s.Groups.Groups(sec.ID)

		secTree := model.SectionTree{Section: sec, Groups: make([]model.GroupTree, 0, len(groups))}
		for _, g := range groups {
			groupTree := model.GroupTree{Group: g}
			if !g.IsDynamic() {
				if err := s.Bookmarks.Ensure(ctx, g.ID); err != nil {
					return nil, fmt.Errorf("assembling page tree: %w", err)
				}
				groupTree.Bookmarks, _ = s.Bookmarks.Bookmarks(g.ID)
			}
			secTree.Groups = append(secTree.Groups, groupTree)
		}
		tree.Sections = append(tree.Sections, secTree)
	}
	return tree, nil
}
