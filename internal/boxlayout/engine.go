// Package boxlayout is a minimal horizontal box layout engine. It keeps a set
// of active constraints between a content region and fixed-size slots and
// resolves them into slot positions and a content width.
package boxlayout

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/pageview/internal/pageview"
)

var (
	// ErrConflict indicates a constraint overlaps an already active one.
	ErrConflict = errors.New("constraint conflicts with an active constraint")
	// ErrUnresolved indicates the active constraints do not determine a layout.
	ErrUnresolved = errors.New("layout is unresolved")
)

// Frame is the resolved geometry of the content region.
type Frame struct {
	// ContentWidth is the width of the scrollable content.
	ContentWidth float64
	// Positions holds the leading x of every placed slot.
	Positions map[pageview.SlotID]float64
	// Order lists placed slots from leading to trailing.
	Order []pageview.SlotID
}

// Placed reports whether id has a position in the frame.
func (f Frame) Placed(id pageview.SlotID) bool {
	_, ok := f.Positions[id]
	return ok
}

// Engine stores active constraints. It implements pageview.LayoutEngine.
type Engine struct {
	active []pageview.Constraint
}

// New returns an engine without constraints.
func New() *Engine {
	return &Engine{}
}

// Activate adds constraints. Either all of them are activated or, on
// conflict, none is.
func (e *Engine) Activate(constraints []pageview.Constraint) error {
	for i, c := range constraints {
		if other, ok := conflicting(c, e.active); ok {
			return fmt.Errorf("%w: %s overlaps active %s", ErrConflict, c, other)
		}
		if other, ok := conflicting(c, constraints[:i]); ok {
			return fmt.Errorf("%w: %s overlaps %s in the same set", ErrConflict, c, other)
		}
	}
	e.active = append(e.active, constraints...)
	return nil
}

// Deactivate removes the given constraints. Unknown constraints are ignored.
func (e *Engine) Deactivate(constraints []pageview.Constraint) {
	for _, c := range constraints {
		for i, a := range e.active {
			if a == c {
				e.active = append(e.active[:i], e.active[i+1:]...)
				break
			}
		}
	}
}

// Active returns a copy of the active constraints.
func (e *Engine) Active() []pageview.Constraint {
	out := make([]pageview.Constraint, len(e.active))
	copy(out, e.active)
	return out
}

// Resolve lays out the slots for a viewport of the given width.
func (e *Engine) Resolve(viewportWidth float64) (Frame, error) {
	frame := Frame{Positions: make(map[pageview.SlotID]float64)}

	var (
		pin      *pageview.Constraint
		next     = make(map[pageview.SlotID]pageview.SlotID)
		widths   = make(map[pageview.SlotID]bool)
		hasWidth bool
	)
	for i := range e.active {
		c := e.active[i]
		switch c.Kind {
		case pageview.PinLeading:
			pin = &e.active[i]
		case pageview.Adjacent:
			next[c.Slot] = c.Next
		case pageview.ContentWidth:
			frame.ContentWidth = c.Multiplier * viewportWidth
			hasWidth = true
		case pageview.SlotWidth:
			widths[c.Slot] = true
		}
	}

	if pin == nil {
		if len(next) > 0 || hasWidth {
			return frame, fmt.Errorf("%w: no leading pin", ErrUnresolved)
		}
		return frame, nil
	}

	x := 0.0
	id := pin.Slot
	for {
		if !widths[id] {
			return frame, fmt.Errorf("%w: slot %d has no width", ErrUnresolved, id)
		}
		if frame.Placed(id) {
			return frame, fmt.Errorf("%w: slot %d placed twice", ErrUnresolved, id)
		}
		frame.Positions[id] = x
		frame.Order = append(frame.Order, id)
		x += viewportWidth

		n, ok := next[id]
		if !ok {
			break
		}
		id = n
	}

	if !hasWidth {
		frame.ContentWidth = x
	}
	return frame, nil
}

// ContentWidth resolves the layout and returns its content width, or 0 when
// it cannot be resolved.
func (e *Engine) ContentWidth(viewportWidth float64) float64 {
	frame, err := e.Resolve(viewportWidth)
	if err != nil {
		return 0
	}
	return frame.ContentWidth
}

// conflicting returns the constraint in set that c would overlap.
func conflicting(c pageview.Constraint, set []pageview.Constraint) (pageview.Constraint, bool) {
	for _, a := range set {
		if a.Kind != c.Kind {
			continue
		}
		switch c.Kind {
		case pageview.PinLeading, pageview.ContentWidth, pageview.ContentHeight:
			return a, true
		case pageview.Adjacent:
			if a.Slot == c.Slot || a.Next == c.Next {
				return a, true
			}
		case pageview.SlotWidth, pageview.SlotHeight:
			if a.Slot == c.Slot {
				return a, true
			}
		}
	}
	return pageview.Constraint{}, false
}
