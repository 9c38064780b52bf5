// Package expr: canonical textual rendering with precedence-driven
// parenthesization.
package expr

import (
	"strings"

	"github.com/katalvlaran/symlath/number"
)

// String renders the subtree in canonical infix form. Parentheses
// appear only where precedence or associativity demands them: x^y^z
// renders without parens (power is right-associative), (x+y)*z keeps
// its pair. Rendering walks an explicit work stack of tokens and
// pending nodes, so deep trees cannot overflow the goroutine stack.
func (s *Shared) String() string {
	// An item is either a literal token or a node still to render.
	type item struct {
		lit  string
		node *Shared
	}
	var b strings.Builder
	stack := []item{{node: s}}

	// push appends items so they pop in reading order.
	push := func(items ...item) {
		for i := len(items) - 1; i >= 0; i-- {
			stack = append(stack, items[i])
		}
	}
	wrapped := func(n *Shared) []item {
		return []item{{lit: "("}, {node: n}, {lit: ")"}}
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node == nil {
			b.WriteString(it.lit)
			continue
		}

		e := &it.node.expr
		switch e.kind {
		case NodeNumber:
			b.WriteString(e.num.String())

		case NodeVariable:
			b.WriteString(e.name)

		case NodeConstant:
			b.WriteString(e.con.Symbol())

		case NodeUnary:
			operand := e.args[0]
			switch e.uop {
			case UnaryNeg, UnaryPlus:
				// A binary operand needs parens: -(x+y), not -x+y.
				if operand.expr.kind == NodeBinary {
					push(append([]item{{lit: e.uop.Symbol()}}, wrapped(operand)...)...)
				} else {
					push(item{lit: e.uop.Symbol()}, item{node: operand})
				}
			default:
				push(append([]item{{lit: e.uop.Symbol()}}, wrapped(operand)...)...)
			}

		case NodeBinary:
			left, right := e.args[0], e.args[1]
			items := make([]item, 0, 7)
			if needsParens(left, e.op, false) {
				items = append(items, wrapped(left)...)
			} else {
				items = append(items, item{node: left})
			}
			items = append(items, item{lit: " " + e.op.Symbol() + " "})
			if needsParens(right, e.op, true) {
				items = append(items, wrapped(right)...)
			} else {
				items = append(items, item{node: right})
			}
			push(items...)

		case NodeFunction:
			items := make([]item, 0, 2*len(e.args)+2)
			items = append(items, item{lit: e.name + "("})
			for i, a := range e.args {
				if i > 0 {
					items = append(items, item{lit: ", "})
				}
				items = append(items, item{node: a})
			}
			items = append(items, item{lit: ")"})
			push(items...)
		}
	}
	return b.String()
}

// needsParens decides whether a binary child must be wrapped when
// rendered under parent: lower precedence always, equal precedence on
// the side the operator does not associate toward. Composite literals
// (rationals, complexes, negatives) are wrapped too, so x^(1/2) does
// not read as (x^1)/2.
func needsParens(child *Shared, parent Op, rightSide bool) bool {
	if child.expr.kind == NodeNumber {
		v := child.expr.num
		switch v.Kind() {
		case number.KindRational, number.KindComplex:
			return true
		default:
			return v.IsNegative()
		}
	}
	if child.expr.kind != NodeBinary {
		return false
	}
	cp, pp := child.expr.op.Precedence(), parent.Precedence()
	if cp < pp {
		return true
	}
	if cp != pp {
		return false
	}
	if rightSide {
		return !parent.RightAssociative()
	}
	return parent.RightAssociative()
}
