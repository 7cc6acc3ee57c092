package model

import "strings"

const (
	MaxBookmarkTitleLength       = 200
	MaxBookmarkDescriptionLength = 500
)

// Bookmark is a child of exactly one Group — manual groups only. Dynamic
// groups compute membership at read time and are never directly mutated by
// reorder operations.
//
// Column is 1-based and must lie in [1, group.column_count] when written.
// Changing a group's column count does not retroactively fix out-of-range
// columns; display paths clamp with ClampColumn instead (the stored value
// is left intact so widening the group restores the original layout).
type Bookmark struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	FaviconURL  string `json:"favicon_url,omitempty"`
	Column      int    `json:"column"`   // 1-based, ≤ group.column_count
	Position    int    `json:"position"` // ordering within the column
	VisitCount  int    `json:"visit_count"`
}

func (b *Bookmark) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return requiredField("title", "bookmark title is required")
	}
	if len(b.Title) > MaxBookmarkTitleLength {
		return tooLong("title", "bookmark title", MaxBookmarkTitleLength)
	}
	if !ValidURL(b.URL) {
		return requiredField("url", "url must start with http:// or https://")
	}
	if len(b.Description) > MaxBookmarkDescriptionLength {
		return tooLong("description", "bookmark description", MaxBookmarkDescriptionLength)
	}
	return nil
}

// ValidURL reports whether a bookmark URL passes the client-side format
// check. The rule is deliberately shallow — scheme prefix only — because
// the backend does the authoritative parse.
func ValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// ClampColumn forces a stored column number into the displayable range
// [1, columnCount]. Out-of-range values appear when a group's column count
// shrinks after bookmarks were placed; we clamp at read time and never
// write the clamped value back.
func ClampColumn(col, columnCount int) int {
	if columnCount < MinColumnCount {
		columnCount = MinColumnCount
	}
	if col < 1 {
		return 1
	}
	if col > columnCount {
		return columnCount
	}
	return col
}
