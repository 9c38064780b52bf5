// Package expr: reference-counted handles and copy-on-write.
//
// Shared plays the role a reference-counted smart pointer plays in
// languages that have one: an O(1) Clone that bumps a count, an
// explicit Release, and MakeMut, which hands back an exclusively
// owned copy only when the node is actually aliased. Counts are not
// atomic; graphs are single-goroutine or externally synchronized.
package expr

import "sync/atomic"

// nextID issues diagnostic identities for handles.
var nextID uint64

// Shared is a reference-counted handle to one immutable expression
// node. The structural hash is computed once at construction and
// cached for the life of the node.
type Shared struct {
	expr Expr
	hash uint64
	id   uint64
	refs int
}

// newShared wraps a node with an initial reference count of 1.
func newShared(e Expr, hash uint64) *Shared {
	return &Shared{
		expr: e,
		hash: hash,
		id:   atomic.AddUint64(&nextID, 1),
		refs: 1,
	}
}

// Expr returns the underlying immutable node.
func (s *Shared) Expr() *Expr { return &s.expr }

// Hash returns the cached structural hash. O(1).
func (s *Shared) Hash() uint64 { return s.hash }

// ID returns a stable identity for this handle, distinct per node
// allocation. Two handles with the same ID are the same node; the
// converse does not hold for structurally equal nodes.
func (s *Shared) ID() uint64 { return s.id }

// Clone returns s with the reference count incremented. O(1); the
// node itself is never copied.
func (s *Shared) Clone() *Shared {
	s.refs++
	return s
}

// Release drops one reference. A node reaching zero releases the
// references it holds on its children, iteratively, so an entire dead
// subtree becomes reclaimable in one call chain. Counts never go
// below zero; actual memory is the garbage collector's business, the
// counts drive IsUnique, MakeMut and pool cleanup.
func (s *Shared) Release() {
	stack := []*Shared{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.refs == 0 {
			continue
		}
		n.refs--
		if n.refs == 0 {
			stack = append(stack, n.expr.args...)
		}
	}
}

// RefCount reports the current number of references.
func (s *Shared) RefCount() int { return s.refs }

// IsUnique reports whether s holds the only reference, meaning the
// node may be reused in place without copying.
func (s *Shared) IsUnique() bool { return s.refs == 1 }

// MakeMut returns a handle that is safe to replace: s itself when
// unique, otherwise a fresh copy of the top node (children stay
// shared, with their counts bumped) while s loses one reference.
// This is the copy-on-write primitive; Cow builds on it.
func (s *Shared) MakeMut() *Shared {
	if s.IsUnique() {
		return s
	}
	s.refs--
	e := s.expr
	if len(e.args) > 0 {
		kids := make([]*Shared, len(e.args))
		for i, k := range e.args {
			kids[i] = k.Clone()
		}
		e.args = kids
	}
	return newShared(e, s.hash)
}

// ReplaceChild swaps child i for a new subtree, in place. The node
// must be exclusively owned (IsUnique), otherwise ErrAliased is
// returned and nothing changes; aliased holders go through MakeMut
// first. The old child loses a reference, the new one gains one, and
// the cached hash is recomputed from the children's cached hashes.
func (s *Shared) ReplaceChild(i int, child *Shared) error {
	if !s.IsUnique() {
		return ErrAliased
	}
	if i < 0 || i >= len(s.expr.args) {
		return ErrBadChild
	}
	old := s.expr.args[i]
	s.expr.args[i] = child.Clone()
	old.Release()
	s.rehash()
	return nil
}

// rehash recomputes the cached hash after a child swap.
func (s *Shared) rehash() {
	switch s.expr.kind {
	case NodeUnary:
		s.hash = hashNode(NodeUnary, uint64(s.expr.uop), "", s.expr.args)
	case NodeBinary:
		s.hash = hashNode(NodeBinary, uint64(s.expr.op), "", s.expr.args)
	case NodeFunction:
		s.hash = hashNode(NodeFunction, 0, s.expr.name, s.expr.args)
	}
}

// Cow is a copy-on-write view over a Shared handle. Read access never
// copies; the first mutable access while the handle is aliased copies
// the top node and remembers that it did.
type Cow struct {
	inner    *Shared
	modified bool
}

// NewCow wraps handle in a copy-on-write view, taking over the
// caller's reference.
func NewCow(handle *Shared) *Cow {
	return &Cow{inner: handle}
}

// AsRef returns the node for reading. Never copies.
func (c *Cow) AsRef() *Expr { return c.inner.Expr() }

// Handle returns the current underlying Shared without transferring
// ownership.
func (c *Cow) Handle() *Shared { return c.inner }

// AsMut returns an exclusively owned handle, copying the top node
// only if it is aliased. Sibling references keep observing the
// original value. The view counts as modified from the first AsMut
// on, whether or not a copy was needed.
func (c *Cow) AsMut() *Shared {
	if !c.inner.IsUnique() {
		c.inner = c.inner.MakeMut()
	}
	c.modified = true
	return c.inner
}

// Replace swaps the wrapped handle for a new one, releasing the old
// reference and marking the view modified.
func (c *Cow) Replace(h *Shared) {
	if h != c.inner {
		c.inner.Release()
		c.inner = h
		c.modified = true
	}
}

// IsModified reports whether any mutable access copied or replaced
// the original node.
func (c *Cow) IsModified() bool { return c.modified }

// RefCount reports the reference count of the wrapped handle.
func (c *Cow) RefCount() int { return c.inner.RefCount() }

// IntoShared releases the view and returns the underlying handle,
// transferring the reference to the caller.
func (c *Cow) IntoShared() *Shared {
	h := c.inner
	c.inner = nil
	return h
}
