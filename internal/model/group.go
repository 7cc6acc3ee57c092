package model

import (
	"fmt"
	"strings"
)

// GroupType distinguishes how a group's bookmark membership is determined.
type GroupType string

const (
	// GroupManual groups are explicitly user-curated; their bookmarks are
	// persisted rows and the target of every reorder/move operation.
	GroupManual GroupType = "manual"

	// GroupDynamicTopUsed groups never own persisted bookmark rows. Their
	// displayed content is derived at read time from the global visit_count
	// ranking — see ResolveDynamic.
	GroupDynamicTopUsed GroupType = "dynamic-top-used"
)

// InboxGroupName is the reserved name of the per-user quick-add staging
// group. It is created lazily on first use and must never appear in a page
// snapshot (it is a staging area, not a displayed group).
const InboxGroupName = "Inbox"

const (
	MaxGroupNameLength = 100
	MinColumnCount     = 1
	MaxColumnCount     = 6
)

// GroupWidths are the only legal width percentages for a group.
var GroupWidths = []int{25, 33, 50, 66, 75, 100}

// Group is a child of exactly one Section.
type Group struct {
	ID            string    `json:"id"`
	SectionID     string    `json:"section_id"`
	Name          string    `json:"name"`
	ColumnCount   int       `json:"column_count"` // 1–6
	Type          GroupType `json:"group_type"`
	BookmarkLimit int       `json:"bookmark_limit"` // only meaningful when dynamic
	Width         int       `json:"width"`          // percentage: 25/33/50/66/75/100
	DisplayOrder  int       `json:"display_order"`
}

// IsDynamic reports whether the group's membership is computed at read time.
func (g *Group) IsDynamic() bool {
	return g.Type == GroupDynamicTopUsed
}

// IsInbox reports whether the group is the reserved quick-add staging group.
func (g *Group) IsInbox() bool {
	return g.Name == InboxGroupName
}

func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return requiredField("name", "group name is required")
	}
	if len(g.Name) > MaxGroupNameLength {
		return tooLong("name", "group name", MaxGroupNameLength)
	}
	if g.ColumnCount < MinColumnCount || g.ColumnCount > MaxColumnCount {
		return requiredField("column_count",
			fmt.Sprintf("column count must be between %d and %d", MinColumnCount, MaxColumnCount))
	}
	switch g.Type {
	case GroupManual, GroupDynamicTopUsed:
	default:
		return requiredField("group_type", fmt.Sprintf("unknown group type %q", g.Type))
	}
	if g.Width != 0 && !validWidth(g.Width) {
		return requiredField("width", "width must be one of 25, 33, 50, 66, 75 or 100 percent")
	}
	return nil
}

func validWidth(w int) bool {
	for _, allowed := range GroupWidths {
		if w == allowed {
			return true
		}
	}
	return false
}
