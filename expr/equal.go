// Package expr: structural equality.
package expr

import "github.com/katalvlaran/symlath/number"

// Equal reports structural equality of the two subtrees. The ladder
// is: pointer identity, then cached hash mismatch, then a full
// comparison driven by an explicit work stack, so arbitrarily deep
// trees cannot overflow the goroutine stack. O(n) worst case, O(1)
// for distinct hashes.
func Equal(a, b *Shared) bool {
	type pair struct{ a, b *Shared }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == p.b {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if p.a.hash != p.b.hash {
			return false
		}
		ea, eb := &p.a.expr, &p.b.expr
		if ea.kind != eb.kind {
			return false
		}
		switch ea.kind {
		case NodeNumber:
			if !number.Equal(ea.num, eb.num) {
				return false
			}
		case NodeVariable:
			if ea.name != eb.name {
				return false
			}
		case NodeConstant:
			if ea.con != eb.con {
				return false
			}
		case NodeUnary:
			if ea.uop != eb.uop {
				return false
			}
		case NodeBinary:
			if ea.op != eb.op {
				return false
			}
		case NodeFunction:
			if ea.name != eb.name {
				return false
			}
		}
		if len(ea.args) != len(eb.args) {
			return false
		}
		for i := range ea.args {
			stack = append(stack, pair{ea.args[i], eb.args[i]})
		}
	}
	return true
}

// FastEq is the equality ladder entered from its cheap end: pointer
// identity first (interned graphs make it hit often), then a cached
// hash comparison that rejects almost all unequal trees in O(1), and
// only then the structural walk. Structurally equal trees built
// independently still compare true.
func FastEq(a, b *Shared) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.hash != b.hash {
		return false
	}
	return Equal(a, b)
}
