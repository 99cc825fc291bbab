// Package scroll implements a paging scroll surface: a horizontal offset
// driven by drag gestures that, once released, decelerates onto a page
// boundary and reports the end of the drag and of the deceleration.
package scroll

import "math"

const (
	defaultFlickVelocity = 2.0
	defaultFriction      = 0.35
	defaultMinStep       = 1.0
	// landTolerance is how close to the target counts as landed.
	landTolerance = 0.5
)

// Delegate receives the end-of-gesture events.
type Delegate interface {
	DidEndDragging(decelerate bool)
	DidEndDecelerating()
}

// Option configures a Surface.
type Option func(*Surface)

// WithFlickVelocity sets the release velocity, in offset units per event,
// above which the surface moves to the next page in the direction of the
// flick instead of the nearest one.
func WithFlickVelocity(v float64) Option {
	return func(s *Surface) {
		if v > 0 {
			s.flickVelocity = v
		}
	}
}

// WithFriction sets the fraction of the remaining distance covered per frame.
func WithFriction(f float64) Option {
	return func(s *Surface) {
		if f > 0 && f <= 1 {
			s.friction = f
		}
	}
}

// Surface is a horizontally paging viewport. It implements pageview.Viewport.
type Surface struct {
	width        float64
	offset       float64
	content      func() float64
	delegate     Delegate
	tracking     bool
	decelerating bool
	target       float64

	flickVelocity float64
	friction      float64
	minStep       float64
}

// NewSurface creates a surface of the given width. content reports the
// current content width.
func NewSurface(width float64, content func() float64, opts ...Option) *Surface {
	s := &Surface{
		width:         width,
		content:       content,
		flickVelocity: defaultFlickVelocity,
		friction:      defaultFriction,
		minStep:       defaultMinStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDelegate sets the receiver of gesture events.
func (s *Surface) SetDelegate(d Delegate) {
	s.delegate = d
}

// Resize changes the viewport width.
func (s *Surface) Resize(width float64) {
	s.width = width
}

// Width returns the viewport width.
func (s *Surface) Width() float64 {
	return s.width
}

// ContentWidth returns the content width reported by the layout.
func (s *Surface) ContentWidth() float64 {
	if s.content == nil {
		return 0
	}
	return s.content()
}

// Offset returns the current horizontal offset.
func (s *Surface) Offset() float64 {
	return s.offset
}

// SetOffset moves the surface without animation. It is not clamped: the
// layout may not have caught up with the new content width yet.
func (s *Surface) SetOffset(x float64) {
	s.offset = x
}

// Tracking reports whether a drag is in progress.
func (s *Surface) Tracking() bool {
	return s.tracking
}

// Decelerating reports whether the surface is still moving after a release.
func (s *Surface) Decelerating() bool {
	return s.decelerating
}

// BeginDrag starts tracking a gesture, catching the surface if it is still
// decelerating.
func (s *Surface) BeginDrag() {
	s.decelerating = false
	s.tracking = true
}

// DragBy moves the offset by dx while tracking, clamped to the content.
func (s *Surface) DragBy(dx float64) {
	if !s.tracking {
		return
	}
	s.offset = s.clamp(s.offset + dx)
}

// EndDrag releases the gesture with the given velocity. The delegate is
// told whether the surface keeps moving; if it does, Step must be called
// until it returns false.
func (s *Surface) EndDrag(velocity float64) {
	if !s.tracking {
		return
	}
	s.tracking = false
	s.target = s.pageTarget(velocity)

	if math.Abs(s.target-s.offset) < landTolerance {
		s.offset = s.target
		s.endDragging(false)
		return
	}
	s.decelerating = true
	s.endDragging(true)
}

// Swipe performs a complete drag of half a page in direction (-1 or 1)
// released with a flick.
func (s *Surface) Swipe(direction int) {
	if direction == 0 {
		return
	}
	dir := float64(direction) / math.Abs(float64(direction))
	s.BeginDrag()
	s.DragBy(dir * s.width / 2)
	s.EndDrag(dir * s.flickVelocity * 2)
}

// Step advances the deceleration by one frame. It returns true while the
// surface is still moving.
func (s *Surface) Step() bool {
	if !s.decelerating {
		return false
	}
	remaining := s.target - s.offset
	step := remaining * s.friction
	if math.Abs(step) < s.minStep {
		step = math.Copysign(math.Min(s.minStep, math.Abs(remaining)), remaining)
	}
	s.offset += step

	if math.Abs(s.target-s.offset) < landTolerance {
		s.offset = s.target
		s.decelerating = false
		if s.delegate != nil {
			s.delegate.DidEndDecelerating()
		}
		return false
	}
	return true
}

// Stop abandons any drag or deceleration without notifying the delegate.
// The offset stays where it is.
func (s *Surface) Stop() {
	s.tracking = false
	s.decelerating = false
}

// Target returns the offset the surface is decelerating towards.
func (s *Surface) Target() float64 {
	return s.target
}

func (s *Surface) endDragging(decelerate bool) {
	if s.delegate != nil {
		s.delegate.DidEndDragging(decelerate)
	}
}

// maxOffset is the largest offset that keeps the viewport inside the content.
func (s *Surface) maxOffset() float64 {
	return math.Max(0, s.ContentWidth()-s.width)
}

func (s *Surface) clamp(x float64) float64 {
	return math.Min(math.Max(x, 0), s.maxOffset())
}

// pageTarget picks the page boundary to land on after a release.
func (s *Surface) pageTarget(velocity float64) float64 {
	if s.width <= 0 {
		return 0
	}
	progress := s.offset / s.width
	page := math.Round(progress)
	switch {
	case velocity >= s.flickVelocity:
		page = math.Ceil(progress)
	case velocity <= -s.flickVelocity:
		page = math.Floor(progress)
	}
	last := math.Round(s.maxOffset() / s.width)
	page = math.Min(math.Max(page, 0), last)
	return page * s.width
}
