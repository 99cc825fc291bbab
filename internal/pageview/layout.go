package pageview

import "fmt"

// Shape is one of the constraint layouts the slots can be arranged in.
type Shape int

const (
	// ShapeNone means there are no pages and nothing is laid out.
	ShapeNone Shape = iota
	// ShapeSingle lays out prev only.
	ShapeSingle
	// ShapeLeading lays out prev and main.
	ShapeLeading
	// ShapeTrailing lays out main and next.
	ShapeTrailing
	// ShapeInterior lays out prev, main and next.
	ShapeInterior
)

// ShapeFor picks the layout for a logical index within total pages.
func ShapeFor(index, total int) Shape {
	switch {
	case total <= 0:
		return ShapeNone
	case index == 0 && total == 1:
		return ShapeSingle
	case index == 0 || (index == 1 && total == 2):
		return ShapeLeading
	case index == total-1:
		return ShapeTrailing
	default:
		return ShapeInterior
	}
}

// Roles returns the roles laid out by the shape, leading first.
func (s Shape) Roles() []Role {
	switch s {
	case ShapeSingle:
		return []Role{RolePrev}
	case ShapeLeading:
		return []Role{RolePrev, RoleMain}
	case ShapeTrailing:
		return []Role{RoleMain, RoleNext}
	case ShapeInterior:
		return []Role{RolePrev, RoleMain, RoleNext}
	default:
		return nil
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeSingle:
		return "single"
	case ShapeLeading:
		return "leading"
	case ShapeTrailing:
		return "trailing"
	case ShapeInterior:
		return "interior"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ConstraintKind is the relation a Constraint expresses.
type ConstraintKind int

const (
	// PinLeading pins the content leading edge to Slot's leading edge.
	PinLeading ConstraintKind = iota
	// Adjacent places Next's leading edge at Slot's trailing edge.
	Adjacent
	// ContentWidth sets the content width to Multiplier viewport widths.
	ContentWidth
	// SlotWidth sets Slot's width to the viewport width.
	SlotWidth
	// SlotHeight sets Slot's height to the viewport height.
	SlotHeight
	// ContentHeight sets the content height to the viewport height.
	ContentHeight
)

func (k ConstraintKind) String() string {
	switch k {
	case PinLeading:
		return "pin-leading"
	case Adjacent:
		return "adjacent"
	case ContentWidth:
		return "content-width"
	case SlotWidth:
		return "slot-width"
	case SlotHeight:
		return "slot-height"
	case ContentHeight:
		return "content-height"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Constraint is one box layout relation between the content region and slots.
type Constraint struct {
	Kind       ConstraintKind
	Slot       SlotID
	Next       SlotID
	Multiplier float64
}

func (c Constraint) String() string {
	switch c.Kind {
	case PinLeading, SlotWidth, SlotHeight:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Slot)
	case Adjacent:
		return fmt.Sprintf("%s(%d->%d)", c.Kind, c.Slot, c.Next)
	default:
		return fmt.Sprintf("%s(x%g)", c.Kind, c.Multiplier)
	}
}

// BaseConstraints sizes every slot and the content height to the viewport.
// They never change and are installed once.
func BaseConstraints() []Constraint {
	cs := []Constraint{{Kind: ContentHeight, Multiplier: 1}}
	for id := SlotID(0); id < 3; id++ {
		cs = append(cs,
			Constraint{Kind: SlotWidth, Slot: id},
			Constraint{Kind: SlotHeight, Slot: id},
		)
	}
	return cs
}

// Constraints builds the shape's constraint set for the slots of window:
// the first laid out slot is pinned to the leading edge, consecutive slots
// are chained, and the content is as wide as the laid out slots.
func Constraints(shape Shape, window Window) []Constraint {
	laid := shape.Roles()
	if len(laid) == 0 {
		return nil
	}
	cs := make([]Constraint, 0, len(laid)+1)
	cs = append(cs, Constraint{Kind: PinLeading, Slot: window.Slot(laid[0])})
	for i := 1; i < len(laid); i++ {
		cs = append(cs, Constraint{
			Kind: Adjacent,
			Slot: window.Slot(laid[i-1]),
			Next: window.Slot(laid[i]),
		})
	}
	cs = append(cs, Constraint{Kind: ContentWidth, Multiplier: float64(len(laid))})
	return cs
}

// Reconciler keeps the engine's shape-dependent constraint set in sync with
// the controller's index.
type Reconciler struct {
	engine LayoutEngine
	active []Constraint
	shape  Shape
}

// NewReconciler creates a reconciler driving engine. A nil engine only
// tracks the computed constraints.
func NewReconciler(engine LayoutEngine) *Reconciler {
	return &Reconciler{engine: engine}
}

// Install activates the base constraints.
func (r *Reconciler) Install() error {
	if r.engine == nil {
		return nil
	}
	if err := r.engine.Activate(BaseConstraints()); err != nil {
		return fmt.Errorf("activate base constraints: %w", err)
	}
	return nil
}

// Update replaces the active set with the one for index within total pages.
// The previous set is always deactivated before the new one is activated.
func (r *Reconciler) Update(index, total int, window Window) error {
	shape := ShapeFor(index, total)
	next := Constraints(shape, window)

	if r.engine != nil && len(r.active) > 0 {
		r.engine.Deactivate(r.active)
	}
	r.active = nil
	r.shape = shape

	if r.engine != nil && len(next) > 0 {
		if err := r.engine.Activate(next); err != nil {
			return fmt.Errorf("activate %s constraints: %w", shape, err)
		}
	}
	r.active = next
	return nil
}

// Shape returns the shape of the active set.
func (r *Reconciler) Shape() Shape {
	return r.shape
}

// Active returns a copy of the active shape-dependent constraints.
func (r *Reconciler) Active() []Constraint {
	out := make([]Constraint, len(r.active))
	copy(out, r.active)
	return out
}
