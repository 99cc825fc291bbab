// Package pageview implements a horizontally paging window over a lazily
// supplied sequence of pages. Exactly three content slots are kept alive:
// the page the viewport rests on and its two neighbours. Slots are relabeled
// rather than recreated as the logical page index moves.
package pageview

// Role identifies which of the three slots a container currently plays
// relative to the resting viewport position.
type Role int

const (
	// RolePrev is the leading slot.
	RolePrev Role = iota
	// RoleMain is the middle slot.
	RoleMain
	// RoleNext is the trailing slot.
	RoleNext
)

// roles lists every role in leading-to-trailing order.
var roles = [3]Role{RolePrev, RoleMain, RoleNext}

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RolePrev:
		return "prev"
	case RoleMain:
		return "main"
	case RoleNext:
		return "next"
	default:
		return "unknown"
	}
}
