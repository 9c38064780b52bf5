// Package builder: timer-gated memory monitoring.
package builder

import "time"

// Monitor rate-limits statistics collection and cleanup for a Pool.
// Stats is O(n) over pooled nodes, so hot paths call Check, which
// does nothing until the configured interval has elapsed.
type Monitor struct {
	pool     *Pool
	enabled  bool
	interval time.Duration
	last     time.Time
}

// Enable turns periodic checks on.
func (m *Monitor) Enable() { m.enabled = true }

// Disable turns periodic checks off; Check returns nothing.
func (m *Monitor) Disable() { m.enabled = false }

// Enabled reports whether periodic checks are on.
func (m *Monitor) Enabled() bool { return m.enabled }

// SetInterval changes the check cadence. Non-positive values are
// ignored.
func (m *Monitor) SetInterval(d time.Duration) {
	if d > 0 {
		m.interval = d
	}
}

// Check returns a stats snapshot when the monitor is enabled and the
// interval since the previous check has elapsed; otherwise nil. A
// returned snapshot follows a cleanup pass, so it reflects live nodes
// only.
func (m *Monitor) Check() *Stats {
	if !m.enabled || time.Since(m.last) < m.interval {
		return nil
	}
	m.last = time.Now()
	m.pool.Cleanup()
	s := m.pool.Stats()
	return &s
}

// Stats snapshots immediately, ignoring the interval gate.
func (m *Monitor) Stats() Stats { return m.pool.Stats() }

// Cleanup runs a pool cleanup immediately and returns the eviction
// count.
func (m *Monitor) Cleanup() int { return m.pool.Cleanup() }
