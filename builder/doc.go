// Package builder provides the high-level construction API for
// expression graphs: a fluent Builder, a hash-consing Pool that makes
// structurally equal subtrees share one node, and a memory Monitor
// with usage statistics and cleanup.
//
// What you get:
//
//	• Builder  - Variable/Number/Add/Multiply/Sqrt/… constructors that
//	             intern every node and apply cheap construction-time
//	             identities (x+0 → x, x*1 → x, x^0 → 1, x-x → 0, …)
//	• Pool     - hash-consing cache bucketed by structural hash, with
//	             hit/miss counters and eviction of nodes only the pool
//	             still holds
//	• Monitor  - timer-gated statistics snapshots and cleanup
//	• Stats    - active/shared node counts, cache traffic, estimated
//	             memory usage
//
// Identities applied at construction never need a rewrite pass: asking
// for x + 0 hands back the existing handle for x, reference count
// bumped, no node allocated. Everything beyond single-node identities
// (constant folding, like terms, trigonometry) belongs to package
// simplify.
//
// A Builder and its Pool are not synchronized. Give each goroutine
// its own, or guard one externally.
//
// Constructors are nil-safe: a nil operand propagates to a nil result
// instead of dereferencing.
package builder
