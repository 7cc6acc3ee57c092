package api

// Patch types for partial updates.
//
// POINTER FIELDS = "FIELD PRESENT":
// A PATCH body must distinguish "set this field to its zero value" from
// "don't touch this field". Pointer fields give us that for free with
// encoding/json: nil pointers are omitted entirely (omitempty), non-nil
// pointers are sent even when they point at "" or 0 or false.
//
// Reparenting is just a patch that sets the parent foreign key — a group
// moves to another section by patching SectionID, a bookmark moves to
// another group by patching GroupID (optionally with a target Column).

type PagePatch struct {
	Name  *string `json:"name,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

type SectionPatch struct {
	PageID    *string `json:"page_id,omitempty"`
	Name      *string `json:"name,omitempty"`
	Collapsed *bool   `json:"collapsed,omitempty"`
}

type GroupPatch struct {
	SectionID     *string `json:"section_id,omitempty"`
	Name          *string `json:"name,omitempty"`
	ColumnCount   *int    `json:"column_count,omitempty"`
	BookmarkLimit *int    `json:"bookmark_limit,omitempty"`
	Width         *int    `json:"width,omitempty"`
}

type BookmarkPatch struct {
	GroupID     *string `json:"group_id,omitempty"`
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	FaviconURL  *string `json:"favicon_url,omitempty"`
	Column      *int    `json:"column,omitempty"`
}

// String returns a pointer to s — tiny helper for building patches inline.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
