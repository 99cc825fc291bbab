package pageview

// SlotID names one of the three physical slots.
type SlotID int

// Window maps each Role to the physical slot currently playing it.
// It is always a permutation of the three slot ids.
type Window [3]SlotID

// NewWindow returns the initial identity mapping.
func NewWindow() Window {
	return Window{0, 1, 2}
}

// Slot returns the physical slot playing role r.
func (w Window) Slot(r Role) SlotID {
	return w[r]
}

// Forward relabels (prev, main, next) as (main, next, prev).
// The old prev slot becomes next and is the one to refill.
func (w Window) Forward() Window {
	return Window{w[RoleMain], w[RoleNext], w[RolePrev]}
}

// Backward relabels (prev, main, next) as (next, prev, main).
// The old next slot becomes prev and is the one to refill.
func (w Window) Backward() Window {
	return Window{w[RoleNext], w[RolePrev], w[RoleMain]}
}

// SlotState is a read-only view of one role of the window.
type SlotState[C any] struct {
	Slot    SlotID
	Visible bool
	Content *C
	// Page is the logical index the content was fetched for, or -1.
	Page int
}

// Snapshot is the state of all three roles, indexed by Role.
type Snapshot[C any] [3]SlotState[C]

// Get returns the state of role r.
func (s Snapshot[C]) Get(r Role) SlotState[C] {
	return s[r]
}

// VisiblePages lists the pages of the visible roles in leading-to-trailing order.
func (s Snapshot[C]) VisiblePages() []int {
	pages := make([]int, 0, len(s))
	for _, r := range roles {
		if s[r].Visible {
			pages = append(pages, s[r].Page)
		}
	}
	return pages
}
