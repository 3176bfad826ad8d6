// Package scene provides an in-memory reactive scene graph for listflow.
//
// The package models the host environment a layout engine embeds into: a
// tree of nodes, each with a name, an order index, a visibility flag, and
// scale/offset coordinates for size and position. Mutations fire signals
// synchronously on the mutating goroutine, so observers always see a
// fully-consistent tree.
//
// # Core Types
//
//   - [Node]: a tree node with geometry, visibility, and signals
//   - [Dim], [Dim2]: one- and two-axis scale/offset values
//   - [Vec2]: a resolved absolute coordinate pair
//   - [Conn]: a disposable subscription handle
//
// # Coordinates
//
// Sizes and positions are expressed per axis as a proportional part
// (Scale, relative to the parent's extent) plus a fixed part (Offset):
//
//	resolved = Scale*parentExtent + Offset
//
// [Node.AbsoluteExtent] and [Node.AbsolutePosition] resolve the scale
// parts against the parent chain. Root nodes resolve against zero, so
// they are effectively offset-only.
//
// # Signals
//
// Each node exposes subscription points for structural and geometric
// changes:
//
//	conn := node.OnChildAdded(func(child *scene.Node) { ... })
//	defer conn.Disconnect()
//
// Delivery is synchronous and ordered by connection time. Disconnecting
// a handle after the node is destroyed is a harmless no-op.
//
// # Layout Drivers
//
// A node carries a single driver slot so competing layout systems cannot
// fight over the same container. [Node.AttachDriver] claims the slot and
// reports failure when a different driver already holds it.
//
// # Concurrency
//
// The scene graph is single-threaded by design: all mutation and signal
// delivery must happen on one goroutine.
package scene
