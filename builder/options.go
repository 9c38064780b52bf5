// Package builder: functional options for Pool construction.
package builder

import "time"

// Defaults for Pool behavior.
const (
	// DefaultMaxEntries bounds the number of pooled nodes before
	// interning stops admitting new ones (cleanup runs first).
	DefaultMaxEntries = 1 << 16

	// DefaultCleanupInterval gates Monitor-driven cleanup.
	DefaultCleanupInterval = 30 * time.Second
)

// PoolOption configures a Pool before first use.
type PoolOption func(*Pool)

// WithMaxEntries bounds the pool size. Values below 1 are ignored.
func WithMaxEntries(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.maxEntries = n
		}
	}
}

// WithCleanupInterval sets how often the Monitor triggers cleanup.
// Non-positive intervals are ignored.
func WithCleanupInterval(d time.Duration) PoolOption {
	return func(p *Pool) {
		if d > 0 {
			p.monitor.interval = d
		}
	}
}

// WithSharingDisabled turns hash-consing off: every construction
// yields a fresh node. Useful for isolating aliasing bugs and for
// measuring what sharing saves.
func WithSharingDisabled() PoolOption {
	return func(p *Pool) { p.sharingOff = true }
}

// WithMonitorDisabled starts the Monitor disabled; Check returns
// nothing until Enable is called.
func WithMonitorDisabled() PoolOption {
	return func(p *Pool) { p.monitor.enabled = false }
}
