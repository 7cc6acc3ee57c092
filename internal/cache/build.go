package cache

import (
	"github.com/pingrid/pingrid/internal/model"
)

// TopUsedFetchLimit is how many top-used bookmarks a snapshot build
// fetches, once per build. Dynamic groups slice their own bookmark_limit
// out of this shared list.
const TopUsedFetchLimit = 50

// BuildSnapshot computes the denormalised tree a snapshot stores, without
// touching storage. Manual groups keep their loaded bookmark lists
// verbatim; dynamic groups are resolved against topUsed through the same
// function the live view uses, so the two paths cannot drift apart.
// Groups carrying the reserved Inbox name are dropped from every section
// — the inbox is a staging area, never displayed content.
//
// The input tree is not mutated; all lists in the result are fresh.
func BuildSnapshot(tree model.PageTree, topUsed []model.Bookmark) model.PageTree {
	out := model.PageTree{
		Page:     tree.Page,
		Sections: make([]model.SectionTree, 0, len(tree.Sections)),
	}
	for _, sec := range tree.Sections {
		built := model.SectionTree{
			Section: sec.Section,
			Groups:  make([]model.GroupTree, 0, len(sec.Groups)),
		}
		for _, gt := range sec.Groups {
			g := gt.Group
			if g.IsInbox() {
				continue
			}
			node := model.GroupTree{Group: g}
			if g.IsDynamic() {
				node.Bookmarks = model.ResolveDynamic(g, topUsed)
			} else {
				node.Bookmarks = append([]model.Bookmark(nil), gt.Bookmarks...)
			}
			built.Groups = append(built.Groups, node)
		}
		out.Sections = append(out.Sections, built)
	}
	return out
}
