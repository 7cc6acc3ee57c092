package reorder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// GroupDrop describes a group drop: the dragged group and its origin
// section against the section the drop surface belongs to.
type GroupDrop struct {
	Dragged         model.Group
	OriginSectionID string

	TargetSectionID string
	TargetSibling   *model.Group // nil = dropped into open section space
}

// SectionDrop describes a section drop across the page sidebar.
type SectionDrop struct {
	Dragged      model.Section
	OriginPageID string

	TargetPageID  string
	TargetSibling *model.Section
}

// PageDrop describes a page-tab drop. Pages have no parent entity, so the
// only possible outcomes are a reorder or a no-op.
type PageDrop struct {
	Dragged       model.Page
	TargetSibling *model.Page
}

// DropGroup resolves a group drop: reorder within the section, or move to
// another section (appended at the end of its group list).
func (e *Engine) DropGroup(ctx context.Context, d GroupDrop) (Outcome, error) {
	if d.TargetSibling != nil && d.TargetSibling.ID == d.Dragged.ID {
		return OutcomeNone, nil
	}

	if d.TargetSectionID != d.OriginSectionID {
		moved, err := e.client.UpdateGroup(ctx, d.Dragged.ID, api.GroupPatch{
			SectionID: api.String(d.TargetSectionID),
		})
		if err != nil {
			return OutcomeMove, fmt.Errorf("moving group %s to section %s: %w", d.Dragged.ID, d.TargetSectionID, err)
		}
		if ctx.Err() != nil {
			return OutcomeMove, ctx.Err()
		}
		e.stores.Groups.ApplyMove(d.OriginSectionID, *moved)
		e.logger.Info("group moved",
			slog.String("group_id", moved.ID),
			slog.String("from_section", d.OriginSectionID),
			slog.String("to_section", moved.SectionID),
		)
		return OutcomeMove, nil
	}

	groups, _ := e.stores.Groups.Groups(d.OriginSectionID)
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	var target string
	if d.TargetSibling != nil {
		target = d.TargetSibling.ID
	}
	next, ok := e.splice(ids, d.Dragged.ID, target)
	if !ok || equalIDs(ids, next) {
		return OutcomeNone, nil
	}
	if err := e.stores.Groups.SetOrder(ctx, d.OriginSectionID, next); err != nil {
		return OutcomeReorder, fmt.Errorf("reordering groups in section %s: %w", d.OriginSectionID, err)
	}
	return OutcomeReorder, nil
}

// DropSection resolves a section drop: reorder within the page, or move to
// another page (appended at the end of its section list).
func (e *Engine) DropSection(ctx context.Context, d SectionDrop) (Outcome, error) {
	if d.TargetSibling != nil && d.TargetSibling.ID == d.Dragged.ID {
		return OutcomeNone, nil
	}

	if d.TargetPageID != d.OriginPageID {
		moved, err := e.client.UpdateSection(ctx, d.Dragged.ID, api.SectionPatch{
			PageID: api.String(d.TargetPageID),
		})
		if err != nil {
			return OutcomeMove, fmt.Errorf("moving section %s to page %s: %w", d.Dragged.ID, d.TargetPageID, err)
		}
		if ctx.Err() != nil {
			return OutcomeMove, ctx.Err()
		}
		e.stores.Sections.ApplyMove(d.OriginPageID, *moved)
		e.logger.Info("section moved",
			slog.String("section_id", moved.ID),
			slog.String("from_page", d.OriginPageID),
			slog.String("to_page", moved.PageID),
		)
		return OutcomeMove, nil
	}

	sections, _ := e.stores.Sections.Sections(d.OriginPageID)
	ids := make([]string, len(sections))
	for i, sec := range sections {
		ids[i] = sec.ID
	}
	var target string
	if d.TargetSibling != nil {
		target = d.TargetSibling.ID
	}
	next, ok := e.splice(ids, d.Dragged.ID, target)
	if !ok || equalIDs(ids, next) {
		return OutcomeNone, nil
	}
	if err := e.stores.Sections.SetOrder(ctx, d.OriginPageID, next); err != nil {
		return OutcomeReorder, fmt.Errorf("reordering sections on page %s: %w", d.OriginPageID, err)
	}
	return OutcomeReorder, nil
}

// DropPage resolves a page-tab drop into a reorder of the top-level page
// list, or a no-op.
func (e *Engine) DropPage(ctx context.Context, d PageDrop) (Outcome, error) {
	if d.TargetSibling != nil && d.TargetSibling.ID == d.Dragged.ID {
		return OutcomeNone, nil
	}

	pages := e.stores.Pages.Pages()
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	var target string
	if d.TargetSibling != nil {
		target = d.TargetSibling.ID
	}
	next, ok := e.splice(ids, d.Dragged.ID, target)
	if !ok || equalIDs(ids, next) {
		return OutcomeNone, nil
	}
	if err := e.stores.Pages.SetOrder(ctx, next); err != nil {
		return OutcomeReorder, fmt.Errorf("reordering pages: %w", err)
	}
	return OutcomeReorder, nil
}

// splice picks spliceBefore or moveToEnd depending on whether a sibling
// was hovered. An empty target means "append to the end of the scope".
func (e *Engine) splice(ids []string, draggedID, targetID string) ([]string, bool) {
	if targetID == "" {
		return moveToEnd(ids, draggedID)
	}
	return spliceBefore(ids, draggedID, targetID)
}
