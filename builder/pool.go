// Package builder: the hash-consing Pool.
//
// The pool maps structural hashes to buckets of nodes. Interning a
// fresh node either finds a structurally equal pooled node (hit: the
// fresh node is dropped and the pooled handle returned with its count
// bumped) or admits the node (miss). Buckets are slices because
// distinct expressions may collide on 64 bits; equality always
// confirms.
package builder

import (
	"time"

	"github.com/katalvlaran/symlath/expr"
)

// Pool is a hash-consing cache over expression nodes. Not safe for
// concurrent use.
type Pool struct {
	buckets    map[uint64][]*expr.Shared
	maxEntries int
	entries    int
	sharingOff bool

	hits    uint64
	misses  uint64
	cowHits uint64

	monitor Monitor
}

// Stats is a point-in-time snapshot of pool state and traffic.
type Stats struct {
	// ActiveExpressions counts pooled nodes referenced outside the
	// pool.
	ActiveExpressions int

	// SharedExpressions counts pooled nodes with more than one
	// outside holder, the nodes where hash-consing is paying off.
	SharedExpressions int

	// CacheHits and CacheMisses count intern outcomes.
	CacheHits   uint64
	CacheMisses uint64

	// CowTriggers counts copy-on-write copies observed by MakeMut.
	CowTriggers uint64

	// EstimatedMemoryUsage is a heuristic byte count of pooled nodes.
	EstimatedMemoryUsage int

	// LastUpdated is when this snapshot was taken.
	LastUpdated time.Time
}

// NewPool returns an empty pool configured by opts.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		buckets:    make(map[uint64][]*expr.Shared),
		maxEntries: DefaultMaxEntries,
		monitor: Monitor{
			enabled:  true,
			interval: DefaultCleanupInterval,
			last:     time.Now(),
		},
	}
	p.monitor.pool = p
	for _, o := range opts {
		o(p)
	}
	return p
}

// Intern returns the pooled node structurally equal to h, adding h to
// the pool if none exists. On a hit the caller's reference moves to
// the pooled node (h is released). On a miss the pool takes its own
// reference and h stays the caller's. O(1) expected.
func (p *Pool) Intern(h *expr.Shared) *expr.Shared {
	if h == nil || p.sharingOff {
		return h
	}
	key := h.Hash()
	for _, cand := range p.buckets[key] {
		if cand == h {
			p.hits++
			return h
		}
		if expr.Equal(cand, h) {
			p.hits++
			h.Release()
			return cand.Clone()
		}
	}
	p.misses++
	if p.entries >= p.maxEntries {
		p.Cleanup()
		if p.entries >= p.maxEntries {
			// Full of live nodes; hand back unpooled.
			return h
		}
	}
	p.buckets[key] = append(p.buckets[key], h.Clone())
	p.entries++
	return h
}

// MakeMut is the counted copy-on-write entry point: it forwards to
// the handle's MakeMut and records whether a copy actually happened.
func (p *Pool) MakeMut(h *expr.Shared) *expr.Shared {
	m := h.MakeMut()
	if m != h {
		p.cowHits++
	}
	return m
}

// Cleanup evicts every node whose only remaining holder is the pool
// and returns how many were evicted. Evicting a parent releases its
// children, which can orphan them in turn, so rounds repeat until a
// round evicts nothing. O(n) per round over pooled nodes.
func (p *Pool) Cleanup() int {
	evicted := 0
	for {
		round := 0
		for key, bucket := range p.buckets {
			kept := bucket[:0]
			for _, n := range bucket {
				if n.RefCount() <= 1 {
					n.Release()
					round++
					continue
				}
				kept = append(kept, n)
			}
			if len(kept) == 0 {
				delete(p.buckets, key)
			} else {
				p.buckets[key] = kept
			}
		}
		evicted += round
		if round == 0 {
			break
		}
	}
	p.entries -= evicted
	return evicted
}

// Len reports the number of pooled nodes.
func (p *Pool) Len() int { return p.entries }

// Stats takes a fresh snapshot. O(n) over pooled nodes.
func (p *Pool) Stats() Stats {
	s := Stats{
		CacheHits:   p.hits,
		CacheMisses: p.misses,
		CowTriggers: p.cowHits,
		LastUpdated: time.Now(),
	}
	for _, bucket := range p.buckets {
		for _, n := range bucket {
			s.EstimatedMemoryUsage += estimateNodeBytes(n)
			// One reference is the pool's own.
			switch outside := n.RefCount() - 1; {
			case outside > 1:
				s.SharedExpressions++
				s.ActiveExpressions++
			case outside == 1:
				s.ActiveExpressions++
			}
		}
	}
	return s
}

// Monitor returns the pool's monitor.
func (p *Pool) Monitor() *Monitor { return &p.monitor }

// estimateNodeBytes approximates the footprint of one node: header,
// per-child handle, and name payload. Deliberately coarse; the value
// feeds trend monitoring, not allocation decisions.
func estimateNodeBytes(n *expr.Shared) int {
	e := n.Expr()
	return 96 + 16*len(e.Args()) + len(e.Name())
}
