// Package observability provides hooks for instrumenting layout activity.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Embedders can register
// hooks at startup to receive events about layout passes and child
// tracking, and route them to whatever backend they use.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for layout events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This keeps the layout engine dependency-free from metrics frameworks
// while still making every pass observable.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks around every pass:
//
//	observability.Layout().OnRecomputeStart(container, children)
//	// ... layout math ...
//	observability.Layout().OnRecomputeComplete(container, children, duration)
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from layout engines.
type LayoutHooks interface {
	// OnRecomputeStart fires at the beginning of a layout pass.
	OnRecomputeStart(container string, children int)

	// OnRecomputeComplete fires when a layout pass has written all
	// positions.
	OnRecomputeComplete(container string, children int, duration time.Duration)

	// OnTrack fires when the engine begins observing a child.
	OnTrack(container, child string)

	// OnUntrack fires when the engine releases a child's subscriptions.
	OnUntrack(container, child string)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnRecomputeStart(string, int)                   {}
func (NoopLayoutHooks) OnRecomputeComplete(string, int, time.Duration) {}
func (NoopLayoutHooks) OnTrack(string, string)                         {}
func (NoopLayoutHooks) OnUntrack(string, string)                       {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any engine is
// constructed.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
