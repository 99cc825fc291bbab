package pageview

import "fmt"

// fillMode controls whether populating a slot consults the data source.
type fillMode int

const (
	// fillCached skips the fetch when the slot already holds the page.
	fillCached fillMode = iota
	// fillRefresh always fetches; the slot is only touched when the
	// returned reference differs from the one it holds.
	fillRefresh
)

// options holds the collaborators shared by every Controller instantiation.
type options struct {
	viewport Viewport
	engine   LayoutEngine
	observer Observer
	logger   Logger
	evict    bool
}

// Option configures a Controller.
type Option func(*options)

// WithViewport sets the scroll surface the controller repositions and classifies.
func WithViewport(v Viewport) Option {
	return func(o *options) {
		o.viewport = v
	}
}

// WithLayoutEngine sets the engine constraint sets are applied to.
func WithLayoutEngine(e LayoutEngine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithObserver sets the transition observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithEvictWhenDistant makes slots release their content as soon as they are hidden.
func WithEvictWhenDistant(evict bool) Option {
	return func(o *options) {
		o.evict = evict
	}
}

// Controller owns the three slots, the logical page index and every
// transition between pages. It is not safe for concurrent use: all calls are
// expected to come from a single event loop.
type Controller[C any] struct {
	slots  [3]slot[C]
	window Window
	index  int
	role   Role

	source     DataSource[C]
	observer   Observer
	viewport   Viewport
	reconciler *Reconciler
	logger     Logger

	needsLayout bool
}

// New creates a controller at index 0 with no data source attached.
func New[C any](opts ...Option) *Controller[C] {
	o := options{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = noopLogger{}
	}

	c := &Controller[C]{
		window:     NewWindow(),
		role:       RolePrev,
		observer:   o.observer,
		viewport:   o.viewport,
		reconciler: NewReconciler(o.engine),
		logger:     o.logger,
	}
	for i := range c.slots {
		c.slots[i] = newSlot[C](SlotID(i))
		c.slots[i].evictOnHide = o.evict
	}
	if err := c.reconciler.Install(); err != nil {
		c.logger.Warn("pageview: install base constraints", "error", err)
	}
	return c
}

// Index returns the logical page index.
func (c *Controller[C]) Index() int {
	return c.index
}

// Role returns the role of the slot the viewport rests on.
func (c *Controller[C]) Role() Role {
	return c.role
}

// Window returns the current role to slot mapping.
func (c *Controller[C]) Window() Window {
	return c.window
}

// PageCount returns the attached source's page count, or 0 without a source.
func (c *Controller[C]) PageCount() int {
	if c.source == nil {
		return 0
	}
	return c.source.PageCount()
}

// Snapshot returns the visible state and content of every role.
func (c *Controller[C]) Snapshot() Snapshot[C] {
	var snap Snapshot[C]
	for _, r := range roles {
		s := c.slot(r)
		snap[r] = SlotState[C]{
			Slot:    s.id,
			Visible: s.visible,
			Content: s.content,
			Page:    s.page,
		}
	}
	return snap
}

// Shape returns the shape of the constraint set last applied.
func (c *Controller[C]) Shape() Shape {
	return c.reconciler.Shape()
}

// Constraints returns the shape-dependent constraints last applied.
func (c *Controller[C]) Constraints() []Constraint {
	return c.reconciler.Active()
}

// EvictWhenDistant reports whether hidden slots release their content.
func (c *Controller[C]) EvictWhenDistant() bool {
	return c.slots[0].evictOnHide
}

// SetEvictWhenDistant toggles content release on hide. Enabling it also
// releases whatever hidden slots still hold.
func (c *Controller[C]) SetEvictWhenDistant(evict bool) {
	for i := range c.slots {
		s := &c.slots[i]
		s.evictOnHide = evict
		if evict && !s.visible {
			s.release()
		}
	}
}

// SetObserver replaces the transition observer. Nil removes it.
func (c *Controller[C]) SetObserver(obs Observer) {
	c.observer = obs
}

// AttachDataSource binds src, re-validates the index against its page count
// (clamping to the last page when out of range) and repopulates the window.
// The controller never takes ownership of src.
func (c *Controller[C]) AttachDataSource(src DataSource[C]) {
	if src == nil {
		c.DetachDataSource()
		return
	}
	c.source = src
	c.Reload()
}

// DetachDataSource unbinds the source. Slots keep their content until the
// next attach.
func (c *Controller[C]) DetachDataSource() {
	c.source = nil
}

// SetIndex jumps to page i and rebuilds the whole window for it.
// Without a source the index is only recorded. With a source, an index
// outside [0, PageCount()-1] is ignored.
func (c *Controller[C]) SetIndex(i int) {
	if c.source == nil {
		if i >= 0 {
			c.index = i
		}
		return
	}
	total := c.source.PageCount()
	if i < 0 || i >= total {
		c.logger.Debug("pageview: ignoring out of range index", "index", i, "pages", total)
		return
	}
	c.index = i
	c.populate(total, fillCached)
}

// Reload re-reads the source. An index beyond the new last page is clamped
// to it; otherwise every shown slot is fetched again and replaced only when
// the source returns a different reference.
func (c *Controller[C]) Reload() {
	if c.source == nil {
		return
	}
	total := c.source.PageCount()
	if total == 0 {
		c.clear()
		return
	}
	if c.index >= total {
		c.logger.Debug("pageview: clamping index after reload", "index", c.index, "pages", total)
		c.index = total - 1
	}
	c.populate(total, fillRefresh)
}

// Settle applies the single step transition implied by the viewport coming
// to rest on the observed role. Adjacent slots are reused by rotating the
// window so at most one page is fetched. The observer is not notified; see
// DidEndDragging and DidEndDecelerating.
func (c *Controller[C]) Settle(observed Role) {
	if c.source == nil {
		return
	}
	total := c.source.PageCount()
	if total == 0 {
		return
	}

	switch observed {
	case RolePrev:
		if c.index == 0 {
			return
		}
		c.index--
		switch {
		case c.index == 0:
			c.hide(RoleNext)
			c.ensure(RolePrev, 0)
			c.role = RolePrev
		case !c.slot(RolePrev).visible:
			// Leaving the last-page layout: main already holds the new
			// index, so the hidden prev slot is refilled instead of rotated in.
			c.ensure(RoleMain, c.index)
			c.ensure(RolePrev, c.index-1)
			c.role = RoleMain
		default:
			c.fill(c.slot(RoleNext), c.index-1, fillCached)
			c.window = c.window.Backward()
			c.showAll()
			c.role = RoleMain
		}
	case RoleNext:
		if c.index >= total-1 {
			return
		}
		c.index++
		switch {
		case c.index == total-1:
			c.hide(RolePrev)
			c.ensure(RoleNext, c.index)
			c.role = RoleNext
		case !c.slot(RoleNext).visible:
			// Leaving the first-page layout: main already holds the new
			// index, so the hidden next slot is refilled instead of rotated in.
			c.ensure(RoleMain, c.index)
			c.ensure(RoleNext, c.index+1)
			c.role = RoleMain
		default:
			c.fill(c.slot(RolePrev), c.index+1, fillCached)
			c.window = c.window.Forward()
			c.showAll()
			c.role = RoleMain
		}
	default:
		switch {
		case c.index == 0 && total > 1:
			c.index++
			if total > 2 {
				c.ensure(RoleNext, c.index+1)
			}
			c.role = RoleMain
		case c.index == total-1 && total > 2:
			c.index--
			c.ensure(RolePrev, c.index-1)
			c.role = RoleNext
		default:
			return
		}
	}

	c.logger.Debug("pageview: settled", "index", c.index, "role", c.role.String(), "pages", total)
	c.reposition()
	c.requestLayout()
}

// DidEndDragging handles the end of a drag. When the viewport keeps
// decelerating the transition waits for DidEndDecelerating.
func (c *Controller[C]) DidEndDragging(decelerate bool) {
	if decelerate {
		return
	}
	c.settleFromViewport()
}

// DidEndDecelerating handles the viewport coming to rest after momentum scrolling.
func (c *Controller[C]) DidEndDecelerating() {
	c.settleFromViewport()
}

// Layout is the layout pass: it applies a pending constraint update and,
// unless a gesture is in flight, pins the viewport to the resting role.
func (c *Controller[C]) Layout() {
	if c.needsLayout {
		c.needsLayout = false
		if err := c.reconciler.Update(c.index, c.PageCount(), c.window); err != nil {
			c.logger.Warn("pageview: update constraints", "error", err, "index", c.index)
		}
	}
	if c.viewport != nil && !c.viewport.Tracking() && !c.viewport.Decelerating() {
		c.reposition()
	}
}

// NeedsLayout reports whether a constraint update is pending.
func (c *Controller[C]) NeedsLayout() bool {
	return c.needsLayout
}

// settleFromViewport settles on the role under the viewport, if any, and
// always reports the resulting index.
func (c *Controller[C]) settleFromViewport() {
	if c.source != nil && c.viewport != nil {
		c.Settle(Classify(
			c.viewport.ContentWidth(),
			c.viewport.Width(),
			c.viewport.Offset(),
			c.slot(RolePrev).visible,
			c.slot(RoleNext).visible,
		))
	}
	c.notify()
}

// populate rebuilds all three roles for the current index.
func (c *Controller[C]) populate(total int, mode fillMode) {
	switch {
	case c.index == 0:
		c.show(RolePrev, 0, mode)
		if total > 1 {
			c.show(RoleMain, 1, mode)
		} else {
			c.hide(RoleMain)
		}
		c.hide(RoleNext)
		c.role = RolePrev
	case c.index == 1:
		c.show(RolePrev, 0, mode)
		c.show(RoleMain, 1, mode)
		if total > 3 {
			c.show(RoleNext, 2, mode)
		} else {
			c.hide(RoleNext)
		}
		c.role = RoleMain
	case c.index == total-1:
		c.hide(RolePrev)
		c.show(RoleMain, c.index-1, mode)
		c.show(RoleNext, c.index, mode)
		c.role = RoleNext
	default:
		c.show(RolePrev, c.index-1, mode)
		c.show(RoleMain, c.index, mode)
		c.show(RoleNext, c.index+1, mode)
		c.role = RoleMain
	}

	c.reposition()
	c.requestLayout()
	c.notify()
}

// clear hides and empties every slot for a source without pages.
func (c *Controller[C]) clear() {
	for i := range c.slots {
		c.slots[i].setVisible(false)
		c.slots[i].release()
	}
	c.index = 0
	c.role = RolePrev
	c.reposition()
	c.requestLayout()
}

func (c *Controller[C]) slot(r Role) *slot[C] {
	return &c.slots[c.window.Slot(r)]
}

func (c *Controller[C]) show(r Role, page int, mode fillMode) {
	s := c.slot(r)
	s.setVisible(true)
	c.fill(s, page, mode)
}

func (c *Controller[C]) hide(r Role) {
	c.slot(r).setVisible(false)
}

func (c *Controller[C]) showAll() {
	for _, r := range roles {
		c.slot(r).setVisible(true)
	}
}

// ensure shows role r and populates it only when it does not hold page yet.
func (c *Controller[C]) ensure(r Role, page int) {
	s := c.slot(r)
	s.setVisible(true)
	c.fill(s, page, fillCached)
}

func (c *Controller[C]) fill(s *slot[C], page int, mode fillMode) {
	if mode == fillCached && s.holds(page) {
		return
	}
	if s.setContent(c.fetch(page), page) {
		c.logger.Debug("pageview: slot content replaced", "slot", int(s.id), "page", page)
	}
}

func (c *Controller[C]) fetch(page int) *C {
	content := c.source.PageContent(page)
	if content == nil {
		panic(fmt.Errorf("pageview: %w: page %d", ErrMissingContent, page))
	}
	return content
}

func (c *Controller[C]) reposition() {
	if c.viewport == nil {
		return
	}
	if c.role == RolePrev {
		c.viewport.SetOffset(0)
		return
	}
	c.viewport.SetOffset(c.viewport.Width())
}

func (c *Controller[C]) requestLayout() {
	c.needsLayout = true
}

func (c *Controller[C]) notify() {
	if c.observer != nil {
		c.observer.PageSettled(c.index)
	}
}
