package pageview

// DataSource supplies pages to a Controller.
// PageCount may change between calls; the controller reads it once per operation.
// PageContent must return a non-nil pointer for every index in [0, PageCount()-1].
// Returned pointers are compared by identity: returning the same pointer for
// an index means the page is unchanged.
type DataSource[C any] interface {
	PageCount() int
	PageContent(index int) *C
}

// Observer is notified every time the controller settles on a page.
// The index may repeat the previous one.
type Observer interface {
	PageSettled(index int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(index int)

// PageSettled calls f(index).
func (f ObserverFunc) PageSettled(index int) {
	f(index)
}

// Viewport is the scrollable surface the slots are laid out in.
type Viewport interface {
	// Width is the visible width, which is also the width of one page.
	Width() float64
	// ContentWidth is the total width of the laid out slots.
	ContentWidth() float64
	// Offset is the horizontal scroll position.
	Offset() float64
	// SetOffset moves the viewport without animation.
	SetOffset(x float64)
	// Tracking reports whether a drag is in progress.
	Tracking() bool
	// Decelerating reports whether the viewport is still moving after a drag.
	Decelerating() bool
}

// LayoutEngine applies constraint sets produced by the Reconciler.
type LayoutEngine interface {
	Activate(constraints []Constraint) error
	Deactivate(constraints []Constraint)
}

// Logger is the subset of structured logging the controller uses.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
