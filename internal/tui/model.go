// Package tui hosts the three-slot pager in a bubbletea program.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/pageview/internal/boxlayout"
	"github.com/cristianoliveira/pageview/internal/errors"
	"github.com/cristianoliveira/pageview/internal/logging"
	"github.com/cristianoliveira/pageview/internal/pages"
	"github.com/cristianoliveira/pageview/internal/pageview"
	"github.com/cristianoliveira/pageview/internal/scroll"
)

const (
	defaultWidth         = 80
	defaultHeight        = 24
	defaultFrameInterval = 16 * time.Millisecond
	statusTTL            = 4 * time.Second

	// chromeWidth is the border plus horizontal padding around a page.
	chromeWidth = 4
	// chromeHeight is the header, the page border, the status and help lines.
	chromeHeight = 5
)

// Source is a page source the pager can display.
type Source = pageview.DataSource[pages.Page]

// Resizer is implemented by sources that repaginate for the page size.
type Resizer interface {
	Resize(width, height int) bool
}

// Invalidator is implemented by sources that cache pages.
type Invalidator interface {
	Invalidate()
}

// Options configures a Model.
type Options struct {
	Title  string
	Source Source
	// StartPage is the page shown first; it is clamped to the source.
	StartPage int
	// Observer is told about every settled page, e.g. to save the position.
	Observer pageview.Observer
	EvictDistant  bool
	FrameInterval time.Duration
	FlickVelocity float64
	Debug         bool
	Logger        logging.Logger
}

// Model is the bubbletea model of the pager.
type Model struct {
	title   string
	source  Source
	ctrl    *pageview.Controller[pages.Page]
	surface *scroll.Surface
	engine  *boxlayout.Engine

	keys      keyMap
	help      help.Model
	paginator paginator.Model
	status    *errors.TUIHandler
	logger    logging.Logger

	width, height int
	frameInterval time.Duration
	debug         bool

	animating   bool
	statusDirty bool

	// Mouse drag state.
	pointerDown bool
	pointerX    int
	velocity    float64
}

// NewModel creates the pager and attaches opts.Source.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetGlobal()
	}
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	m := &Model{
		title:         opts.Title,
		source:        opts.Source,
		engine:        boxlayout.New(),
		keys:          defaultKeyMap(),
		help:          help.New(),
		paginator:     newPaginator(),
		logger:        logger,
		width:         defaultWidth,
		height:        defaultHeight,
		frameInterval: interval,
		debug:         opts.Debug,
	}
	m.status = errors.NewTUIHandler(statusTTL, func(errors.Message) {
		m.statusDirty = true
	})

	pw, ph := m.pageSize()
	var surfaceOpts []scroll.Option
	if opts.FlickVelocity > 0 {
		surfaceOpts = append(surfaceOpts, scroll.WithFlickVelocity(opts.FlickVelocity))
	}
	m.surface = scroll.NewSurface(float64(pw), func() float64 {
		return m.engine.ContentWidth(m.surface.Width())
	}, surfaceOpts...)

	observer := opts.Observer
	m.ctrl = pageview.New[pages.Page](
		pageview.WithViewport(m.surface),
		pageview.WithLayoutEngine(m.engine),
		pageview.WithLogger(logger),
		pageview.WithEvictWhenDistant(opts.EvictDistant),
		pageview.WithObserver(pageview.ObserverFunc(func(index int) {
			logger.Debug("tui: page settled", "index", index)
			if observer != nil {
				observer.PageSettled(index)
			}
		})),
	)
	m.surface.SetDelegate(m.ctrl)

	if r, ok := m.source.(Resizer); ok {
		r.Resize(pw, ph)
	}
	m.ctrl.SetIndex(max(opts.StartPage, 0))
	if m.source != nil {
		m.ctrl.AttachDataSource(m.source)
	}
	m.ctrl.Layout()
	return m
}

func newPaginator() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = titleStyle.Render("•")
	p.InactiveDot = dimStyle.Render("•")
	return p
}

// Controller exposes the page controller.
func (m *Model) Controller() *pageview.Controller[pages.Page] {
	return m.ctrl
}

// Status returns the status line handler.
func (m *Model) Status() *errors.TUIHandler {
	return m.status
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		m.animating = false
		m.surface.Step()
	case statusExpiredMsg:
	}

	m.ctrl.Layout()

	if m.surface.Decelerating() && !m.animating {
		m.animating = true
		cmds = append(cmds, m.frame())
	}
	if m.statusDirty {
		m.statusDirty = false
		cmds = append(cmds, tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusExpiredMsg{} }))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.surface.Swipe(-1)
	case key.Matches(msg, m.keys.Forward):
		m.surface.Swipe(1)
	case key.Matches(msg, m.keys.DragBack):
		m.drag(-m.dragStep())
	case key.Matches(msg, m.keys.DragAhead):
		m.drag(m.dragStep())
	case key.Matches(msg, m.keys.Release):
		if m.surface.Tracking() {
			m.surface.EndDrag(0)
		}
	case key.Matches(msg, m.keys.First):
		m.jump(0)
	case key.Matches(msg, m.keys.Last):
		m.jump(m.ctrl.PageCount() - 1)
	case key.Matches(msg, m.keys.Reload):
		m.reload()
	case key.Matches(msg, m.keys.Evict):
		evict := !m.ctrl.EvictWhenDistant()
		m.ctrl.SetEvictWhenDistant(evict)
		m.status.Info(fmt.Sprintf("eviction %s", onOff(evict)))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointerDown = true
		m.pointerX = msg.X
		m.velocity = 0
		m.surface.BeginDrag()
	case tea.MouseActionMotion:
		if !m.pointerDown {
			return
		}
		// Moving the pointer left reveals the page on the right.
		dx := float64(m.pointerX - msg.X)
		m.pointerX = msg.X
		m.velocity = dx
		m.surface.DragBy(dx)
	case tea.MouseActionRelease:
		if !m.pointerDown {
			return
		}
		m.pointerDown = false
		m.surface.EndDrag(m.velocity)
	}
}

func (m *Model) drag(dx float64) {
	if !m.surface.Tracking() {
		m.surface.BeginDrag()
	}
	m.surface.DragBy(dx)
}

func (m *Model) dragStep() float64 {
	return max(1, m.surface.Width()/4)
}

// cancelGesture drops any in-flight drag so a programmatic move is not
// followed by a stale settle.
func (m *Model) cancelGesture() {
	m.surface.Stop()
	m.pointerDown = false
}

func (m *Model) jump(index int) {
	if index < 0 {
		return
	}
	m.cancelGesture()
	m.ctrl.SetIndex(index)
}

func (m *Model) reload() {
	m.cancelGesture()
	if inv, ok := m.source.(Invalidator); ok {
		inv.Invalidate()
	}
	m.ctrl.Reload()
	m.status.Info(fmt.Sprintf("reloaded, %d pages", m.ctrl.PageCount()))
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	m.help.Width = width

	pw, ph := m.pageSize()
	m.cancelGesture()
	m.surface.Resize(float64(pw))
	if r, ok := m.source.(Resizer); ok && r.Resize(pw, ph) {
		m.logger.Debug("tui: repaginated", "width", pw, "height", ph)
		m.ctrl.Reload()
		return
	}
	// Same pages, new geometry: the controller re-pins the offset on layout.
}

// pageSize returns the page area in cells.
func (m *Model) pageSize() (int, int) {
	height := m.height - chromeHeight
	if m.debug {
		height--
	}
	return max(m.width-chromeWidth, 1), max(height, 1)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
