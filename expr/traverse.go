// Package expr: traversals over the shared graph.
//
// All walks here use explicit stacks. Expression graphs routinely get
// deep enough (nested rewriting, machine-built input) that recursion
// depth is a real failure mode.
package expr

import "sort"

// Variables returns the free variable names of the subtree, sorted
// and deduplicated. O(n log n).
func (s *Shared) Variables() []string {
	seen := map[string]struct{}{}
	stack := []*Shared{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.expr.kind == NodeVariable {
			seen[n.expr.name] = struct{}{}
		}
		stack = append(stack, n.expr.args...)
	}
	names := make([]string, 0, len(seen))
	for v := range seen {
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}

// IsConstant reports whether the subtree contains no variables.
func (s *Shared) IsConstant() bool {
	stack := []*Shared{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.expr.kind == NodeVariable {
			return false
		}
		stack = append(stack, n.expr.args...)
	}
	return true
}

// Complexity returns the node count of the subtree, counting shared
// nodes once per occurrence. Useful as a size metric for rewriting
// heuristics.
func (s *Shared) Complexity() int {
	count := 0
	stack := []*Shared{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, n.expr.args...)
	}
	return count
}

// Substitute returns a new tree with every variable that has a
// binding replaced by its subtree. Untouched subtrees are shared with
// the original (reference counts bumped), not copied. The caller owns
// the returned reference.
func (s *Shared) Substitute(bindings map[string]*Shared) *Shared {
	if len(bindings) == 0 {
		return s.Clone()
	}
	return substitute(s, bindings)
}

// substitute rebuilds bottom-up with an explicit frame stack. A node
// none of whose descendants changed is returned as-is with its count
// bumped, preserving sharing.
func substitute(root *Shared, bindings map[string]*Shared) *Shared {
	type frame struct {
		node *Shared
		kids []*Shared
		next int
	}
	var stack []frame
	var result *Shared

	push := func(n *Shared) {
		stack = append(stack, frame{node: n, kids: make([]*Shared, 0, len(n.expr.args))})
	}
	push(root)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		e := &f.node.expr

		if f.next < len(e.args) {
			f.next++
			push(e.args[f.next-1])
			continue
		}

		var out *Shared
		switch {
		case e.kind == NodeVariable:
			if b, ok := bindings[e.name]; ok {
				out = b.Clone()
			} else {
				out = f.node.Clone()
			}
		case len(e.args) == 0:
			out = f.node.Clone()
		default:
			changed := false
			for i, k := range f.kids {
				if k != e.args[i] {
					changed = true
					break
				}
			}
			if !changed {
				for _, k := range f.kids {
					k.Release()
				}
				out = f.node.Clone()
			} else {
				out = rebuild(e, f.kids)
				for _, k := range f.kids {
					k.Release()
				}
			}
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			result = out
		} else {
			parent := &stack[len(stack)-1]
			parent.kids = append(parent.kids, out)
		}
	}
	return result
}

// rebuild constructs a node like e but with the given children.
func rebuild(e *Expr, kids []*Shared) *Shared {
	switch e.kind {
	case NodeUnary:
		return NewUnary(e.uop, kids[0])
	case NodeBinary:
		return NewBinary(e.op, kids[0], kids[1])
	case NodeFunction:
		return NewFunction(e.name, kids...)
	default:
		// Leaves never reach here; arity is fixed by kind.
		return NewNumber(e.num)
	}
}
