package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pingrid/pingrid/internal/model"
)

// Fetch-by-parent, one per hierarchy level. These back the lazy store
// population: a level's store calls the matching List the first time a
// parent is expanded or viewed.

func (c *Client) ListPages(ctx context.Context) ([]model.Page, error) {
	var pages []model.Page
	if err := c.do(ctx, http.MethodGet, "/api/pages", nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (c *Client) ListSections(ctx context.Context, pageID string) ([]model.Section, error) {
	var sections []model.Section
	path := fmt.Sprintf("/api/pages/%s/sections", pageID)
	if err := c.do(ctx, http.MethodGet, path, nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) ListGroups(ctx context.Context, sectionID string) ([]model.Group, error) {
	var groups []model.Group
	path := fmt.Sprintf("/api/sections/%s/groups", sectionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) ListBookmarks(ctx context.Context, groupID string) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	path := fmt.Sprintf("/api/groups/%s/bookmarks", groupID)
	if err := c.do(ctx, http.MethodGet, path, nil, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Create per entity. The server assigns the id and the trailing display
// order; the returned resource is the canonical one.

func (c *Client) CreatePage(ctx context.Context, page model.Page) (*model.Page, error) {
	var created model.Page
	if err := c.do(ctx, http.MethodPost, "/api/pages", page, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateSection(ctx context.Context, section model.Section) (*model.Section, error) {
	var created model.Section
	if err := c.do(ctx, http.MethodPost, "/api/sections", section, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateGroup(ctx context.Context, group model.Group) (*model.Group, error) {
	var created model.Group
	if err := c.do(ctx, http.MethodPost, "/api/groups", group, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateBookmark(ctx context.Context, bookmark model.Bookmark) (*model.Bookmark, error) {
	var created model.Bookmark
	if err := c.do(ctx, http.MethodPost, "/api/bookmarks", bookmark, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Partial update per entity. Returns the full updated resource — after any
// mutation the server is the source of truth, so callers replace their
// local copy with the returned one instead of patching it themselves.

func (c *Client) UpdatePage(ctx context.Context, id string, patch PagePatch) (*model.Page, error) {
	var updated model.Page
	if err := c.do(ctx, http.MethodPatch, "/api/pages/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateSection(ctx context.Context, id string, patch SectionPatch) (*model.Section, error) {
	var updated model.Section
	if err := c.do(ctx, http.MethodPatch, "/api/sections/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id string, patch GroupPatch) (*model.Group, error) {
	var updated model.Group
	if err := c.do(ctx, http.MethodPatch, "/api/groups/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateBookmark(ctx context.Context, id string, patch BookmarkPatch) (*model.Bookmark, error) {
	var updated model.Bookmark
	if err := c.do(ctx, http.MethodPatch, "/api/bookmarks/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete per entity. Cascading deletion of descendants happens server-side.

func (c *Client) DeletePage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/pages/"+id, nil, nil)
}

func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/sections/"+id, nil, nil)
}

func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/groups/"+id, nil, nil)
}

func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookmarks/"+id, nil, nil)
}

// Bulk reorder, one per level. The request carries the FULL ordered id
// list for the parent scope — never a single moved id — and the response
// is the full child list with canonical position values assigned
// server-side. Local state is replaced with that response, never predicted.

type reorderRequest struct {
	IDs []string `json:"ids"`
}

type reorderBookmarksRequest struct {
	Column int      `json:"column"`
	IDs    []string `json:"ids"`
}

func (c *Client) ReorderPages(ctx context.Context, orderedIDs []string) ([]model.Page, error) {
	var pages []model.Page
	err := c.do(ctx, http.MethodPut, "/api/pages/order", reorderRequest{IDs: orderedIDs}, &pages)
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (c *Client) ReorderSections(ctx context.Context, pageID string, orderedIDs []string) ([]model.Section, error) {
	var sections []model.Section
	path := fmt.Sprintf("/api/pages/%s/sections/order", pageID)
	if err := c.do(ctx, http.MethodPut, path, reorderRequest{IDs: orderedIDs}, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) ReorderGroups(ctx context.Context, sectionID string, orderedIDs []string) ([]model.Group, error) {
	var groups []model.Group
	path := fmt.Sprintf("/api/sections/%s/groups/order", sectionID)
	if err := c.do(ctx, http.MethodPut, path, reorderRequest{IDs: orderedIDs}, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ReorderBookmarks reorders one column of one group. Bookmark positions
// are dense per group+column, so the column rides along with the ordered
// id list. The response is the group's full bookmark list, all columns,
// in canonical order.
func (c *Client) ReorderBookmarks(ctx context.Context, groupID string, column int, orderedIDs []string) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	path := fmt.Sprintf("/api/groups/%s/bookmarks/order", groupID)
	body := reorderBookmarksRequest{Column: column, IDs: orderedIDs}
	if err := c.do(ctx, http.MethodPut, path, body, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// EnsureInbox returns the user's reserved quick-add staging group,
// creating it server-side on first use. Every quick-add (paste/drop URL)
// and the importer land bookmarks here; the group never appears in page
// snapshots.
func (c *Client) EnsureInbox(ctx context.Context) (*model.Group, error) {
	var inbox model.Group
	if err := c.do(ctx, http.MethodPost, "/api/groups/inbox", nil, &inbox); err != nil {
		return nil, err
	}
	return &inbox, nil
}

// TrackClick increments a bookmark's visit count. Fire-and-forget:
// failures are logged, never surfaced, and never block navigating to the
// bookmark's URL.
func (c *Client) TrackClick(ctx context.Context, bookmarkID string) {
	var updated model.Bookmark
	path := fmt.Sprintf("/api/bookmarks/%s/click", bookmarkID)
	if err := c.do(ctx, http.MethodPost, path, nil, &updated); err != nil {
		c.logger.Warn("click tracking failed",
			slog.String("bookmark_id", bookmarkID),
			slog.String("error", err.Error()),
		)
	}
}

// TopUsed returns bookmarks globally ranked by visit count, descending.
// This is the sole data source for dynamic group resolution.
func (c *Client) TopUsed(ctx context.Context, limit int) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	path := fmt.Sprintf("/api/bookmarks/top-used?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}
