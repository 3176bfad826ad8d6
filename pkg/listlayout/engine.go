package listlayout

import (
	"cmp"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tesselkit/listflow/pkg/errors"
	"github.com/tesselkit/listflow/pkg/observability"
	"github.com/tesselkit/listflow/pkg/scene"
)

// DriverName is the identifier the engine writes into the container's
// layout-driver slot. Construction fails when a different driver already
// holds the slot.
const DriverName = "listlayout"

// =============================================================================
// Engine
// =============================================================================

// Engine lays out the direct children of one container node. Create it
// with New; it then reacts to scene signals until Destroy is called or
// the container itself is destroyed.
type Engine struct {
	container *scene.Node
	cfg       Config
	debug     bool
	logger    *log.Logger

	containerConns []scene.Conn
	tracked        map[*scene.Node]*trackedChild
	content        float64
	markers        map[*scene.Node]struct{}
	destroyed      bool
}

// trackedChild is the per-child subscription record. extent and visible
// mirror the child's last observed state so the aggregate content size
// can be adjusted incrementally when signals arrive.
type trackedChild struct {
	conns   []scene.Conn
	extent  float64
	visible bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithDebug enables debug markers: every layout pass materializes
// disposable nodes showing the axis bounds, midpoint, and content region.
func WithDebug(enabled bool) Option {
	return func(e *Engine) { e.debug = enabled }
}

// WithLogger routes the engine's debug logging to l. Without it the
// engine is silent.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New constructs an Engine bound to container and performs the initial
// layout pass. It fails with errors.ErrCodeConflict when the container
// already hosts a different layout driver, and with
// errors.ErrCodeInvalidConfig / errors.ErrCodeInvalidScene on bad input.
// The engine observes the container from this point on; call Destroy to
// release it.
func New(container *scene.Node, cfg Config, opts ...Option) (*Engine, error) {
	if container == nil {
		return nil, errors.New(errors.ErrCodeInvalidScene, "container is nil")
	}
	if container.Destroyed() {
		return nil, errors.New(errors.ErrCodeInvalidScene, "container %q is destroyed", container.Name())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !container.AttachDriver(DriverName) {
		return nil, errors.New(errors.ErrCodeConflict,
			"container %q already hosts layout driver %q", container.Name(), container.Driver())
	}

	e := &Engine{
		container: container,
		cfg:       cfg,
		logger:    log.New(io.Discard),
		tracked:   make(map[*scene.Node]*trackedChild),
		markers:   make(map[*scene.Node]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.containerConns = []scene.Conn{
		container.OnChildAdded(e.onChildAdded),
		container.OnChildRemoved(e.onChildRemoved),
		container.OnDestroyed(func(*scene.Node) { e.Destroy() }),
	}

	for _, c := range container.Children() {
		e.track(c)
	}
	e.Recompute()
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Container returns the node the engine is bound to.
func (e *Engine) Container() *scene.Node { return e.container }

// ContentSize returns the aggregate fill-axis extent of all visible
// tracked children, excluding padding.
func (e *Engine) ContentSize() float64 { return e.content }

// Destroy releases every subscription the engine holds, destroys its
// debug markers, and frees the container's driver slot. It is idempotent
// and the engine must not be used afterwards.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true

	e.clearMarkers()
	for c, t := range e.tracked {
		for _, conn := range t.conns {
			conn.Disconnect()
		}
		delete(e.tracked, c)
	}
	for _, conn := range e.containerConns {
		conn.Disconnect()
	}
	e.containerConns = nil
	e.content = 0
	e.container.DetachDriver(DriverName)

	e.logger.Debug("layout engine destroyed", "container", e.container.Name())
}

// =============================================================================
// Recompute - the core layout pass
// =============================================================================

// Recompute performs a full layout pass: it collects eligible children,
// sorts them by the configured key (stable, so equal keys keep the
// container's insertion order), and assigns each a fill-axis offset and a
// cross-axis offset. Only the fixed position components are written; the
// children's proportional components are preserved.
//
// Recompute runs automatically on every tracked change; calling it by
// hand is only needed after mutations the engine does not observe, such
// as order-index changes or container resizes.
func (e *Engine) Recompute() {
	if e.destroyed {
		return
	}
	e.resyncExtents()

	kids := e.eligible()
	n := len(kids)
	observability.Layout().OnRecomputeStart(e.container.Name(), n)
	start := time.Now()

	containerExt := e.container.AbsoluteExtent()
	fillExt := e.fillOf(containerExt)
	crossExt := e.crossOf(containerExt)
	pad := e.cfg.Padding.Resolve(fillExt)

	span := e.content
	if n > 1 {
		span += float64(n-1) * pad
	}

	var offset float64
	switch e.cfg.fillAlign() {
	case alignEnd:
		offset = fillExt - span
	case alignCenter:
		offset = fillExt/2 - span/2
	}

	if e.debug {
		e.refreshMarkers(fillExt, offset, span)
	}

	for _, c := range kids {
		childExt := c.AbsoluteExtent()
		var cross float64
		switch e.cfg.crossAlign() {
		case alignEnd:
			cross = crossExt - e.crossOf(childExt)
		case alignCenter:
			cross = (crossExt - e.crossOf(childExt)) / 2
		}

		pos := c.Position()
		if e.cfg.Direction == Horizontal {
			pos.X.Offset = offset
			pos.Y.Offset = cross
		} else {
			pos.Y.Offset = offset
			pos.X.Offset = cross
		}
		c.SetPosition(pos)

		offset += e.fillOf(childExt) + pad
	}

	e.logger.Debug("layout pass",
		"container", e.container.Name(),
		"children", n,
		"content", e.content,
		"padding", pad,
	)
	observability.Layout().OnRecomputeComplete(e.container.Name(), n, time.Since(start))
}

// resyncExtents refreshes every tracked child's fill-axis extent and the
// aggregate content size. Proportionally sized children resolve against
// the container, so a container resize moves their extents without
// firing their own ExtentChanged signal.
func (e *Engine) resyncExtents() {
	for c, t := range e.tracked {
		ext := e.fillOf(c.AbsoluteExtent())
		if ext == t.extent {
			continue
		}
		if t.visible {
			e.content += ext - t.extent
		}
		t.extent = ext
	}
}

// eligible returns the visible, non-marker direct children in the
// container's insertion order, sorted by the configured key.
func (e *Engine) eligible() []*scene.Node {
	var kids []*scene.Node
	for _, c := range e.container.Children() {
		if _, owned := e.markers[c]; owned {
			continue
		}
		if !c.Visible() {
			continue
		}
		kids = append(kids, c)
	}

	switch e.cfg.SortOrder {
	case ByName:
		slices.SortStableFunc(kids, func(a, b *scene.Node) int {
			return strings.Compare(a.Name(), b.Name())
		})
	default:
		slices.SortStableFunc(kids, func(a, b *scene.Node) int {
			return cmp.Compare(a.OrderIndex(), b.OrderIndex())
		})
	}
	return kids
}

func (e *Engine) fillOf(v scene.Vec2) float64 {
	if e.cfg.Direction == Horizontal {
		return v.X
	}
	return v.Y
}

func (e *Engine) crossOf(v scene.Vec2) float64 {
	if e.cfg.Direction == Horizontal {
		return v.Y
	}
	return v.X
}

// =============================================================================
// Subscription management
// =============================================================================

// track registers subscriptions for a new direct child and folds its
// extent into the aggregate content size when visible. Engine-owned
// markers and already-tracked children are ignored.
func (e *Engine) track(c *scene.Node) {
	if _, owned := e.markers[c]; owned {
		return
	}
	if _, ok := e.tracked[c]; ok {
		return
	}

	t := &trackedChild{
		extent:  e.fillOf(c.AbsoluteExtent()),
		visible: c.Visible(),
	}
	t.conns = []scene.Conn{
		c.OnVisibilityChanged(e.onVisibilityChanged),
		c.OnExtentChanged(e.onExtentChanged),
	}
	e.tracked[c] = t
	if t.visible {
		e.content += t.extent
	}
	observability.Layout().OnTrack(e.container.Name(), c.Name())
}

// untrack releases a child's subscriptions and removes its extent from
// the aggregate content size.
func (e *Engine) untrack(c *scene.Node) {
	t, ok := e.tracked[c]
	if !ok {
		return
	}
	for _, conn := range t.conns {
		conn.Disconnect()
	}
	delete(e.tracked, c)
	if t.visible {
		e.content -= t.extent
	}
	observability.Layout().OnUntrack(e.container.Name(), c.Name())
}

func (e *Engine) onChildAdded(c *scene.Node) {
	if e.destroyed {
		return
	}
	if _, owned := e.markers[c]; owned {
		return
	}
	e.track(c)
	e.Recompute()
}

func (e *Engine) onChildRemoved(c *scene.Node) {
	if e.destroyed {
		return
	}
	if _, owned := e.markers[c]; owned {
		// A marker removed behind the engine's back; the next pass
		// recreates it.
		delete(e.markers, c)
		return
	}
	if _, ok := e.tracked[c]; !ok {
		return
	}
	e.untrack(c)
	e.Recompute()
}

func (e *Engine) onVisibilityChanged(c *scene.Node) {
	if e.destroyed {
		return
	}
	t, ok := e.tracked[c]
	if !ok {
		return
	}
	v := c.Visible()
	if v == t.visible {
		return
	}
	t.visible = v
	if v {
		e.content += t.extent
	} else {
		e.content -= t.extent
	}
	e.Recompute()
}

func (e *Engine) onExtentChanged(c *scene.Node) {
	if e.destroyed {
		return
	}
	t, ok := e.tracked[c]
	if !ok {
		return
	}
	ext := e.fillOf(c.AbsoluteExtent())
	if t.visible {
		e.content += ext - t.extent
	}
	t.extent = ext
	// Cross-axis changes do not move the aggregate but still need a
	// pass for cross alignment.
	e.Recompute()
}
