package pageview

// Epsilon absorbs float rounding and scroll physics noise when comparing offsets.
const Epsilon = 10.0

// Classify infers which role the viewport is resting on from the scroll
// offset and the total content width. It has no side effects.
func Classify(contentWidth, viewportWidth, offsetX float64, prevVisible, nextVisible bool) Role {
	switch {
	case contentWidth < viewportWidth+Epsilon:
		return RolePrev
	case contentWidth < viewportWidth*2+Epsilon:
		if offsetX < Epsilon {
			if prevVisible {
				return RolePrev
			}
			return RoleMain
		}
		if nextVisible {
			return RoleNext
		}
		return RoleMain
	default:
		switch {
		case offsetX < Epsilon:
			return RolePrev
		case offsetX < viewportWidth+Epsilon:
			return RoleMain
		default:
			return RoleNext
		}
	}
}
