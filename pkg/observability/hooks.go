// Package observability provides optional instrumentation hooks for rendering.
//
// This package enables instrumentation without adding hard dependencies on
// specific observability backends. Consumers can register hooks at startup
// to receive events about render calls: how large the document was, how many
// bytes were produced, and how long layout took.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for printer events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach keeps the core library dependency-free from observability
// frameworks while still letting formatter front-ends meter their layout
// passes. A ready-made logging backend is available via [NewLogHooks].
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPrinterHooks(myHooks{})
//	    // ... run application
//	}
//
// The printer calls hooks around every render:
//
//	observability.Printer().OnRenderStart(nodes)
//	// ... layout walk ...
//	observability.Printer().OnRenderComplete(nodes, bytes, duration)
package observability

import (
	"sync"
	"time"
)

// PrinterHooks receives events from the layout engine.
type PrinterHooks interface {
	// OnRenderStart records the beginning of a render call.
	// nodes is the number of nodes in the document tree.
	OnRenderStart(nodes int)

	// OnRenderComplete records a finished render call.
	// bytes is the length of the produced output.
	OnRenderComplete(nodes, bytes int, duration time.Duration)
}

// NoopPrinterHooks is a no-op implementation of PrinterHooks.
type NoopPrinterHooks struct{}

func (NoopPrinterHooks) OnRenderStart(int)                        {}
func (NoopPrinterHooks) OnRenderComplete(int, int, time.Duration) {}

var (
	printerHooks PrinterHooks = NoopPrinterHooks{}
	hooksMu      sync.RWMutex
)

// SetPrinterHooks registers custom printer hooks.
// This should be called once at application startup before any render calls.
func SetPrinterHooks(h PrinterHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		printerHooks = h
	}
}

// Printer returns the registered printer hooks.
func Printer() PrinterHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return printerHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	printerHooks = NoopPrinterHooks{}
}
