// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
//
// THE HIERARCHY:
// PinGrid organises bookmarks into four levels, parent-to-child:
//
//	Page → Section → Group → Bookmark
//
// Every entity is owned by the authenticated user transitively through its
// parent. IDs are server-assigned UUIDs — the client never invents one.
// Within each parent scope, children carry a dense display-order sequence
// (no gaps, no duplicates); reordering always rewrites the whole sequence.
package model

import "strings"

// MaxPageNameLength bounds page names; the backend enforces the same limit.
const MaxPageNameLength = 100

// Page is the top of the hierarchy, owned directly by a user.
// Deleting a page cascades to all descendants (handled server-side).
type Page struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`  // emoji string
	Color        string `json:"color"` // hex string, e.g. "#1a2b3c"
	DisplayOrder int    `json:"display_order"`
}

// Validate enforces the client-side rules for a page before any network
// call. Violations never reach the server; they render as inline form errors.
func (p *Page) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return requiredField("name", "page name is required")
	}
	if len(p.Name) > MaxPageNameLength {
		return tooLong("name", "page name", MaxPageNameLength)
	}
	return nil
}
