// Package pkg provides the core libraries for listflow list layout.
//
// # Overview
//
// Listflow is a reactive one-dimensional list-layout engine: bind an
// engine to a scene-graph container and it continuously positions the
// container's visible children along one fill axis, honoring padding,
// sort order, and alignment. The pkg directory is organized as:
//
//  1. [scene] - In-memory reactive scene graph (nodes, signals, scale/offset geometry)
//  2. [listlayout] - The layout engine and its subscription management
//  3. [errors] - Structured error codes
//  4. [observability] - Optional hooks for layout instrumentation
//  5. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Build a container, attach an engine, and mutate freely:
//
//	import (
//	    "github.com/tesselkit/listflow/pkg/listlayout"
//	    "github.com/tesselkit/listflow/pkg/scene"
//	)
//
//	panel := scene.New("panel")
//	panel.SetSize(scene.FixedSize(300, 100))
//
//	engine, err := listlayout.New(panel, listlayout.Config{
//	    Direction: listlayout.Horizontal,
//	})
//	if err != nil {
//	    // handle CONFLICT: another layout driver owns the panel
//	}
//	defer engine.Destroy()
//
//	// From here every child add/remove/resize/visibility change
//	// relayouts the panel before the mutating call returns.
//
// # Concurrency
//
// The scene graph and engine are single-threaded by design: all mutation
// and signal delivery must happen on one goroutine.
package pkg
