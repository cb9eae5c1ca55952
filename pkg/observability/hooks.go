// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drag sessions and board persistence.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the drag core stays
// free of any metrics framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnSessionStart(sessionID, item, container)
//	// ... pointer moves ...
//	observability.Drag().OnSessionEnd(sessionID, observability.OutcomeDropped, elapsed)
//
// Drag hooks run on the UI thread for every pointer move and take no
// context. Store hooks wrap I/O and receive the caller's context.
package observability

import (
	"context"
	"sync"
	"time"
)

// Outcome describes how a drag session ended.
type Outcome string

const (
	OutcomeDropped  Outcome = "dropped"
	OutcomeCanceled Outcome = "canceled"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from the drag session store.
type DragHooks interface {
	// OnSessionStart records a drag that was picked up.
	OnSessionStart(sessionID, item, container string)

	// OnTargetChange records a change of the resolved drop target.
	OnTargetChange(sessionID, container string, index int)

	// OnSessionEnd records a drop or a cancel.
	OnSessionEnd(sessionID string, outcome Outcome, duration time.Duration)

	// OnRejected records a lifecycle event that could not be applied,
	// such as a drag start for an unregistered item.
	OnRejected(event string, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from board persistence.
type StoreHooks interface {
	// OnLoad records a board read.
	OnLoad(ctx context.Context, backend, name string, duration time.Duration, err error)

	// OnSave records a board write.
	OnSave(ctx context.Context, backend, name string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnSessionStart(string, string, string)       {}
func (NoopDragHooks) OnTargetChange(string, string, int)          {}
func (NoopDragHooks) OnSessionEnd(string, Outcome, time.Duration) {}
func (NoopDragHooks) OnRejected(string, error)                    {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, string, time.Duration, error) {}
func (NoopStoreHooks) OnSave(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks  DragHooks  = NoopDragHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag starts.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any board I/O.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	storeHooks = NoopStoreHooks{}
}
