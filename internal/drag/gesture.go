package drag

import (
	"fmt"
	"sync"
)

// Phase is one state of a drag gesture.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseHovering
	PhaseDropped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseHovering:
		return "hovering"
	case PhaseDropped:
		return "dropped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Gesture tracks one drag gesture through its state machine:
//
//	idle → dragging → hovering(target)* → dropped → idle
//
// Hovering is repeatable and updates only the transient highlight — no
// network call happens until the drop, and exactly one happens then. A
// drag released outside every valid drop surface (dragend without drop)
// goes dragging → idle directly, with no network call.
type Gesture struct {
	mu          sync.Mutex
	phase       Phase
	hoverTarget string
}

// Phase returns the gesture's current phase.
func (g *Gesture) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// HoverTarget returns the id of the currently highlighted drop target,
// or "" when nothing is hovered.
func (g *Gesture) HoverTarget() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hoverTarget
}

// Start moves idle → dragging.
func (g *Gesture) Start() error {
	return g.transition(PhaseDragging, PhaseIdle)
}

// Hover moves dragging/hovering → hovering and records the highlight
// target. Repeated hovers just retarget the highlight.
func (g *Gesture) Hover(targetID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseDragging && g.phase != PhaseHovering {
		return fmt.Errorf("drag gesture: hover in phase %s", g.phase)
	}
	g.phase = PhaseHovering
	g.hoverTarget = targetID
	return nil
}

// Leave moves hovering → dragging, clearing the highlight. The drag
// itself stays active.
func (g *Gesture) Leave() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase == PhaseHovering {
		g.phase = PhaseDragging
		g.hoverTarget = ""
	}
}

// Drop moves dragging/hovering → dropped. The caller issues its single
// network call in this phase, then Ends the gesture.
func (g *Gesture) Drop() error {
	return g.transition(PhaseDropped, PhaseDragging, PhaseHovering)
}

// End returns to idle from any phase and clears the highlight. This runs
// on drop completion AND on cancellation, success or failure — the
// highlight must never survive the gesture.
func (g *Gesture) End() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.phase = PhaseIdle
	g.hoverTarget = ""
}

func (g *Gesture) transition(to Phase, from ...Phase) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, f := range from {
		if g.phase == f {
			g.phase = to
			if to == PhaseDropped {
				g.hoverTarget = ""
			}
			return nil
		}
	}
	return fmt.Errorf("drag gesture: cannot move %s → %s", g.phase, to)
}
