package model

// Nested tree types used when a whole page is materialised at once — the
// snapshot cache stores exactly this shape, and the importer/live-view
// assembly code produces it.

// PageTree is one page with all descendants, fully denormalised.
type PageTree struct {
	Page     Page          `json:"page"`
	Sections []SectionTree `json:"sections"`
}

// SectionTree is one section with its ordered groups.
type SectionTree struct {
	Section Section     `json:"section"`
	Groups  []GroupTree `json:"groups"`
}

// GroupTree is one group with its bookmarks. For manual groups the
// bookmarks are the persisted rows; for dynamic groups they are the
// resolved top-used entries (see ResolveDynamic).
type GroupTree struct {
	Group     Group      `json:"group"`
	Bookmarks []Bookmark `json:"bookmarks"`
}
