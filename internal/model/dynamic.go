package model

// ResolveDynamic turns the global top-used ranking into the concrete
// bookmark list a dynamic group displays.
//
// WHY ONE FUNCTION?
// Both the live-view render path and the snapshot-build path need the same
// answer — "which bookmarks, in which column, at which position". If each
// path computed it independently they could disagree on column assignment,
// and the cached view would not match the live one. This is the only code
// allowed to resolve dynamic membership; everything else calls it.
//
// The group's BookmarkLimit caps how many entries are taken from the
// ranking. Each resolved bookmark gets a synthetic column
// (index mod ColumnCount, 1-based) and position (its rank); whatever
// column/position the bookmark carries in its home group is discarded,
// because dynamic membership is recomputed on every resolution.
func ResolveDynamic(g Group, topUsed []Bookmark) []Bookmark {
	if !g.IsDynamic() {
		return nil
	}

	limit := g.BookmarkLimit
	if limit <= 0 || limit > len(topUsed) {
		limit = len(topUsed)
	}

	columns := g.ColumnCount
	if columns < MinColumnCount {
		columns = MinColumnCount
	}

	resolved := make([]Bookmark, 0, limit)
	for i := 0; i < limit; i++ {
		b := topUsed[i] // copy — the ranking list is never mutated
		b.Column = i%columns + 1
		b.Position = i
		resolved = append(resolved, b)
	}
	return resolved
}
