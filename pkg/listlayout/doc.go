// Package listlayout implements a reactive one-dimensional list layout
// engine over a scene-graph container.
//
// An [Engine] binds to one container node and continuously positions its
// visible children along a single fill axis (horizontal or vertical),
// honoring padding, sort order, and alignment. The engine subscribes to
// structural and geometric change signals on the container and every
// tracked child; any relevant mutation triggers a synchronous full
// recomputation of child positions.
//
// # Usage
//
//	root := scene.New("panel")
//	root.SetSize(scene.FixedSize(300, 100))
//
//	engine, err := listlayout.New(root, listlayout.Config{
//	    Direction:       listlayout.Horizontal,
//	    HorizontalAlign: listlayout.HorizontalCenter,
//	    Padding:         scene.Fixed(10),
//	})
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeConflict) when another driver
//	    // already owns the container
//	}
//	defer engine.Destroy()
//
// From here on the engine reacts on its own: adding, removing, resizing,
// or toggling visibility of children relayouts the container before the
// mutating call returns.
//
// # Layout Rules
//
// Eligible children are the container's direct children that are visible
// and not engine-owned debug markers. They are sorted by the configured
// key (order index or name; ties keep insertion order), then placed
// sequentially along the fill axis separated by the resolved padding.
// The starting offset depends on the fill-axis alignment; each child's
// cross-axis offset depends on the cross-axis alignment and that child's
// own cross extent. Only the fixed (offset) position components are
// written; caller-set proportional components survive layout untouched.
//
// # Content Size
//
// The engine maintains the aggregate fill-axis extent of visible tracked
// children incrementally, adjusting it on every visibility and extent
// signal. [Engine.ContentSize] exposes the running value; it always
// equals the sum recomputed from scratch.
//
// # Debug Markers
//
// With [WithDebug], every pass also materializes five engine-owned
// marker nodes under the container: fill-axis start, end, and midpoint,
// plus content-region start and end. Markers are destroyed and recreated
// each pass and never participate in layout.
//
// # Concurrency
//
// The engine inherits the scene graph's single-threaded model: all
// recomputation runs synchronously inside the signal callback that
// triggered it.
package listlayout
