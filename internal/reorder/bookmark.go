package reorder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// BookmarkDrop describes a bookmark drop event: what the drag context
// recorded at drag start, plus what the drop surface knows about itself.
type BookmarkDrop struct {
	Dragged      model.Bookmark
	OriginGroup  model.Group // group the bookmark was rendered in at drag start
	OriginColumn int         // column recorded at drag start

	TargetGroup   model.Group
	TargetColumn  int             // column of the hovered drop zone
	TargetSibling *model.Bookmark // hovered sibling; nil = empty container space
}

// DropBookmark resolves one bookmark drop into its outcome and issues
// the corresponding persistence call(s).
func (e *Engine) DropBookmark(ctx context.Context, d BookmarkDrop) (Outcome, error) {
	// Dynamic groups own no persisted bookmarks: they are never a legal
	// source or target for reorder/move, so such drops resolve to no-op
	// before any network traffic. A bookmark rendered inside a dynamic
	// group is a projection of a bookmark living in some manual group;
	// treating the projection as a drag source would patch the real
	// bookmark and splice against the dynamic group's empty list.
	if d.OriginGroup.IsDynamic() {
		e.logger.Debug("drag from dynamic group ignored",
			slog.String("bookmark_id", d.Dragged.ID),
			slog.String("group_id", d.OriginGroup.ID),
		)
		return OutcomeNone, nil
	}
	if d.TargetGroup.IsDynamic() {
		e.logger.Debug("drop on dynamic group ignored",
			slog.String("bookmark_id", d.Dragged.ID),
			slog.String("group_id", d.TargetGroup.ID),
		)
		return OutcomeNone, nil
	}

	// Self-drop is a no-op.
	if d.TargetSibling != nil && d.TargetSibling.ID == d.Dragged.ID {
		return OutcomeNone, nil
	}

	if d.TargetGroup.ID != d.OriginGroup.ID {
		return e.moveBookmark(ctx, d)
	}
	if d.TargetColumn != d.OriginColumn {
		return e.changeColumn(ctx, d)
	}
	return e.reorderColumn(ctx, d)
}

// reorderColumn is outcome 1: a same-group, same-column reorder. One bulk
// set-order call for the column; local state becomes the server's answer.
func (e *Engine) reorderColumn(ctx context.Context, d BookmarkDrop) (Outcome, error) {
	ids := columnIDs(e.stores.Bookmarks.Column(d.OriginGroup.ID, d.OriginColumn))

	var (
		next []string
		ok   bool
	)
	if d.TargetSibling != nil {
		next, ok = spliceBefore(ids, d.Dragged.ID, d.TargetSibling.ID)
	} else {
		next, ok = moveToEnd(ids, d.Dragged.ID)
	}
	if !ok || equalIDs(ids, next) {
		// Nothing to persist: unknown target, or the splice is an
		// identity (e.g. "move to end" of an item already at the end).
		return OutcomeNone, nil
	}

	if err := e.stores.Bookmarks.SetColumnOrder(ctx, d.OriginGroup.ID, d.OriginColumn, next); err != nil {
		return OutcomeReorder, fmt.Errorf("reordering column %d of group %s: %w", d.OriginColumn, d.OriginGroup.ID, err)
	}
	return OutcomeReorder, nil
}

// changeColumn is outcome 2: same group, different column. The column
// patch always fires; a hovered sibling additionally triggers an
// outcome-1 reorder scoped to the destination column so the bookmark
// slots in above that sibling instead of trailing at the end.
func (e *Engine) changeColumn(ctx context.Context, d BookmarkDrop) (Outcome, error) {
	moved, err := e.client.UpdateBookmark(ctx, d.Dragged.ID, api.BookmarkPatch{
		Column: api.Int(d.TargetColumn),
	})
	if err != nil {
		return OutcomeColumnChange, fmt.Errorf("changing column of bookmark %s: %w", d.Dragged.ID, err)
	}
	if ctx.Err() != nil {
		return OutcomeColumnChange, ctx.Err()
	}
	e.stores.Bookmarks.ReplaceAfterColumnChange(*moved)

	if d.TargetSibling == nil {
		// Dropped onto empty column space: the server already appended
		// it at the trailing position, nothing more to do.
		return OutcomeColumnChange, nil
	}

	// Refresh the group so the spliced order is computed against the
	// server's canonical positions, then slot the bookmark in.
	if err := e.stores.Bookmarks.Load(ctx, d.OriginGroup.ID); err != nil {
		return OutcomeColumnChange, err
	}
	ids := columnIDs(e.stores.Bookmarks.Column(d.OriginGroup.ID, moved.Column))
	next, ok := spliceBefore(ids, d.Dragged.ID, d.TargetSibling.ID)
	if !ok || equalIDs(ids, next) {
		return OutcomeColumnChange, nil
	}
	if err := e.stores.Bookmarks.SetColumnOrder(ctx, d.OriginGroup.ID, moved.Column, next); err != nil {
		return OutcomeColumnChange, fmt.Errorf("placing bookmark %s in column %d: %w", d.Dragged.ID, moved.Column, err)
	}
	return OutcomeColumnChange, nil
}

// moveBookmark is outcome 3: a cross-group move. The patch changes the
// parent foreign key (and targets a column); only after the server
// confirms is the local splice applied — remove from source, append to
// destination — as one staged operation, so a network failure leaves no
// phantom entry anywhere.
func (e *Engine) moveBookmark(ctx context.Context, d BookmarkDrop) (Outcome, error) {
	patch := api.BookmarkPatch{GroupID: api.String(d.TargetGroup.ID)}
	if d.TargetColumn > 0 {
		patch.Column = api.Int(d.TargetColumn)
	}

	moved, err := e.client.UpdateBookmark(ctx, d.Dragged.ID, patch)
	if err != nil {
		return OutcomeMove, fmt.Errorf("moving bookmark %s to group %s: %w", d.Dragged.ID, d.TargetGroup.ID, err)
	}
	if ctx.Err() != nil {
		return OutcomeMove, ctx.Err()
	}

	e.stores.Bookmarks.ApplyMove(d.OriginGroup.ID, *moved)
	e.logger.Info("bookmark moved",
		slog.String("bookmark_id", moved.ID),
		slog.String("from_group", d.OriginGroup.ID),
		slog.String("to_group", moved.GroupID),
		slog.Int("column", moved.Column),
	)
	return OutcomeMove, nil
}

func columnIDs(bookmarks []model.Bookmark) []string {
	ids := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.ID
	}
	return ids
}
