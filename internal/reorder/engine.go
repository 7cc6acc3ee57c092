// Package reorder translates drop events into persistence calls.
//
// THE FOUR OUTCOMES:
// Every drop resolves to exactly one of:
//
//  1. Same-parent reorder — splice the dragged item to the target index
//     and issue one bulk "set order" call for the parent scope; local
//     state is replaced with the server's returned order.
//  2. Same-group cross-column move (bookmarks only) — patch the column;
//     if the drop landed on a specific sibling, additionally reorder the
//     destination column so the bookmark slots in at the right index.
//  3. Cross-parent move — patch the parent foreign key; on success the
//     item is spliced out of the source list and appended to the
//     destination list, which holds until the destination is refetched.
//  4. No-op — dropping an item on itself, or with no valid target while
//     no cross-parent context applies. No persistence call.
//
// The decision is made by comparing the dragged item's origin parent
// (recorded at drag start) with the drop target's parent; for bookmarks,
// the drag-start column against the hovered drop zone's column. Target
// resolution prefers the hovered sibling over the container; with no
// sibling the item is appended to the end of the container's scope.
//
// FAILURE SEMANTICS:
// Local state is only ever mutated after the server confirms. A failed
// same-parent reorder leaves local order exactly as it was; a failed
// cross-parent move applies no local splice at all, so no phantom
// entries can appear. Errors carry the server's message for the
// component to render; there is no automatic retry and no rollback
// beyond "local state = last successful server state".
package reorder

import (
	"log/slog"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/store"
)

// Outcome says which of the four drop resolutions fired.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReorder
	OutcomeColumnChange
	OutcomeMove
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "no-op"
	case OutcomeReorder:
		return "same-parent reorder"
	case OutcomeColumnChange:
		return "column change"
	case OutcomeMove:
		return "cross-parent move"
	default:
		return "unknown"
	}
}

// Engine resolves drops against the hierarchy stores.
type Engine struct {
	client *api.Client
	stores *store.Stores
	logger *slog.Logger
}

// NewEngine wires the drop resolver to the backend client and the stores
// whose lists it splices after confirmed moves.
func NewEngine(client *api.Client, stores *store.Stores, logger *slog.Logger) *Engine {
	return &Engine{
		client: client,
		stores: stores,
		logger: logger,
	}
}
