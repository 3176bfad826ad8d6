package listlayout

import "github.com/tesselkit/listflow/pkg/scene"

// markerPrefix names engine-owned debug nodes. The prefix is reserved by
// errors.ValidateNodeName so real children can never collide with it.
const markerPrefix = "listflow.marker."

// markerExtent is the size of a marker node along both axes. Markers are
// visual pinpoints, not regions.
const markerExtent = 1.0

// Markers returns the engine-owned debug marker nodes currently parented
// under the container. Without WithDebug the slice is empty.
func (e *Engine) Markers() []*scene.Node {
	out := make([]*scene.Node, 0, len(e.markers))
	for _, c := range e.container.Children() {
		if _, owned := e.markers[c]; owned {
			out = append(out, c)
		}
	}
	return out
}

// IsMarker reports whether n is a debug marker owned by this engine.
// Ownership is tracked by the engine itself, not by flags on the node.
func (e *Engine) IsMarker(n *scene.Node) bool {
	_, owned := e.markers[n]
	return owned
}

// refreshMarkers destroys the previous pass's markers and emits a fresh
// set: fill-axis start, end, and midpoint, plus the content region's
// start and end (content plus inter-child padding).
func (e *Engine) refreshMarkers(fillExt, contentStart, span float64) {
	e.clearMarkers()
	e.emitMarker("axis-start", 0)
	e.emitMarker("axis-end", fillExt)
	e.emitMarker("axis-mid", fillExt/2)
	e.emitMarker("content-start", contentStart)
	e.emitMarker("content-end", contentStart+span)
}

// clearMarkers destroys every owned marker. Entries leave the owned set
// before destruction so the container's ChildRemoved signal sees them as
// foreign nodes and skips relayout.
func (e *Engine) clearMarkers() {
	for m := range e.markers {
		delete(e.markers, m)
		m.Destroy()
	}
}

// emitMarker creates one marker node at the given fill-axis coordinate
// and parents it under the container. The owned set is updated before
// parenting so the ChildAdded signal ignores it.
func (e *Engine) emitMarker(label string, at float64) {
	m := scene.New(markerPrefix + label)
	m.SetSize(scene.FixedSize(markerExtent, markerExtent))

	var pos scene.Dim2
	if e.cfg.Direction == Horizontal {
		pos.X = scene.Fixed(at)
	} else {
		pos.Y = scene.Fixed(at)
	}
	m.SetPosition(pos)

	e.markers[m] = struct{}{}
	if err := m.SetParent(e.container); err != nil {
		delete(e.markers, m)
		m.Destroy()
	}
}
