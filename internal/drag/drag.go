// Package drag holds the ambient "what is currently being dragged"
// state shared across the component tree.
//
// WHY AMBIENT STATE?
// A cross-parent move completes at a drop target in a different branch of
// the tree than the drag source. Prop-threading the dragged item through
// every intermediate component would couple the whole tree to drag
// details; instead, a single shared slot per drag kind carries the item
// and its origin parent, and any drop target reads it.
//
// WHY TWO SLOTS?
// A bookmark drag must stay active while the pointer passes over group
// and section chrome without being confused with a group drag. Group
// drags and bookmark drags therefore get independent contexts — they are
// never allowed to share a slot, and neither is ever process-global
// state: both live in a Scope created for one workspace view.
package drag

import (
	"fmt"
	"sync"

	"github.com/pingrid/pingrid/internal/model"
)

// Context is one drag slot: the item being dragged plus the id of the
// parent it was picked up from. The zero value is "no drag in progress".
type Context[T any] struct {
	mu           sync.Mutex
	kind         string // for error messages only
	item         *T
	originParent string
}

// StartDrag records the dragged item and its origin parent. Called
// exactly once per native drag-start event. Starting over an active drag
// is a gesture-bookkeeping bug, so it fails loudly instead of silently
// clobbering the slot.
func (c *Context[T]) StartDrag(item T, originParentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.item != nil {
		panic(fmt.Sprintf("drag: StartDrag(%s) while a drag is already active", c.kind))
	}
	c.item = &item
	c.originParent = originParentID
}

// EndDrag clears the slot. Called on drop completion or drag
// cancellation (native dragend). Safe to call when no drag is active —
// cancellation paths can't always know.
func (c *Context[T]) EndDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.item = nil
	c.originParent = ""
}

// IsDragging reports whether a drag is in progress in this slot.
func (c *Context[T]) IsDragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.item != nil
}

// Current returns the dragged item and its origin parent id, with
// ok=false when no drag is active.
func (c *Context[T]) Current() (item T, originParentID string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.item == nil {
		var zero T
		return zero, "", false
	}
	return *c.item, c.originParent, true
}

// Scope owns the drag contexts for one workspace view. Components receive
// the scope from their composition root; asking a nil scope for a context
// is the Go equivalent of reading a context outside its provider's
// subtree, and it fails fast rather than corrupting drag state silently.
type Scope struct {
	groups    *Context[model.Group]
	bookmarks *Context[model.Bookmark]
}

// NewScope creates the two independent drag contexts for a view.
func NewScope() *Scope {
	return &Scope{
		groups:    &Context[model.Group]{kind: "group"},
		bookmarks: &Context[model.Bookmark]{kind: "bookmark"},
	}
}

// Groups returns the group-drag context (origin parent = section id).
func (s *Scope) Groups() *Context[model.Group] {
	if s == nil || s.groups == nil {
		panic("drag: group context used outside a drag scope")
	}
	return s.groups
}

// Bookmarks returns the bookmark-drag context (origin parent = group id).
func (s *Scope) Bookmarks() *Context[model.Bookmark] {
	if s == nil || s.bookmarks == nil {
		panic("drag: bookmark context used outside a drag scope")
	}
	return s.bookmarks
}
