// Package expr: node variant, operators, constants, and constructors.
//
// This file declares NodeKind, Op, UnaryOp, Constant, the Expr node
// type, and the New* constructors. Construction is where structural
// hashes are computed: children carry their hashes already, so every
// node hashes in O(1) and no traversal ever recurses for hashing.
package expr

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/symlath/number"
)

// NodeKind discriminates the expression variants.
type NodeKind uint8

const (
	// NodeNumber is a numeric literal.
	NodeNumber NodeKind = iota

	// NodeVariable is a named free variable.
	NodeVariable

	// NodeConstant is a named mathematical constant.
	NodeConstant

	// NodeUnary is a unary operation (negation, plus, absolute value).
	NodeUnary

	// NodeBinary is a binary operation.
	NodeBinary

	// NodeFunction is a named function application (sqrt, sin, ...).
	NodeFunction
)

// Op enumerates binary operators.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Symbol returns the operator's textual form.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "?"
	}
}

// Precedence returns the binding strength used for parenthesization:
// additive 6, multiplicative 7, power 9.
func (o Op) Precedence() int {
	switch o {
	case OpAdd, OpSub:
		return 6
	case OpMul, OpDiv:
		return 7
	case OpPow:
		return 9
	default:
		return 0
	}
}

// RightAssociative reports whether the operator groups to the right.
// Only power does: x^y^z parses as x^(y^z).
func (o Op) RightAssociative() bool { return o == OpPow }

// UnaryOp enumerates unary operators. Square roots, trigonometry and
// the like are Function nodes, not unary operators, so that rewrite
// rules can match them by name.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota
	UnaryPlus
	UnaryAbs
)

// Symbol returns the operator's textual form.
func (u UnaryOp) Symbol() string {
	switch u {
	case UnaryNeg:
		return "-"
	case UnaryPlus:
		return "+"
	case UnaryAbs:
		return "abs"
	default:
		return "?"
	}
}

// Constant enumerates the named mathematical constants.
type Constant uint8

const (
	ConstPi Constant = iota
	ConstE
	ConstI
	ConstEulerGamma
	ConstGoldenRatio
	ConstCatalan
	ConstInfinity
	ConstNegInfinity
	ConstUndefined
)

// Symbol returns the constant's canonical textual form.
func (c Constant) Symbol() string {
	switch c {
	case ConstPi:
		return "π"
	case ConstE:
		return "e"
	case ConstI:
		return "i"
	case ConstEulerGamma:
		return "γ"
	case ConstGoldenRatio:
		return "φ"
	case ConstCatalan:
		return "G"
	case ConstInfinity:
		return "∞"
	case ConstNegInfinity:
		return "-∞"
	case ConstUndefined:
		return "undefined"
	default:
		return "?"
	}
}

// Approx returns the closest float64 to the constant. ConstI and
// ConstUndefined have no real approximation and yield NaN.
func (c Constant) Approx() float64 {
	switch c {
	case ConstPi:
		return math.Pi
	case ConstE:
		return math.E
	case ConstEulerGamma:
		return 0.5772156649015329
	case ConstGoldenRatio:
		return 1.618033988749895
	case ConstCatalan:
		return 0.915965594177219
	case ConstInfinity:
		return math.Inf(1)
	case ConstNegInfinity:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// ParseConstant resolves a textual name to a Constant.
func ParseConstant(s string) (Constant, bool) {
	switch s {
	case "pi", "π":
		return ConstPi, true
	case "e":
		return ConstE, true
	case "i":
		return ConstI, true
	case "gamma", "γ":
		return ConstEulerGamma, true
	case "phi", "φ":
		return ConstGoldenRatio, true
	case "catalan", "G":
		return ConstCatalan, true
	case "inf", "∞":
		return ConstInfinity, true
	case "-inf", "-∞":
		return ConstNegInfinity, true
	case "undefined":
		return ConstUndefined, true
	default:
		return 0, false
	}
}

// Expr is one immutable node of the expression graph. Children are
// held through *Shared handles so subtrees can be shared freely.
type Expr struct {
	kind NodeKind
	num  number.Value // NodeNumber
	name string       // NodeVariable, NodeFunction
	con  Constant     // NodeConstant
	op   Op           // NodeBinary
	uop  UnaryOp      // NodeUnary
	args []*Shared    // NodeUnary (1), NodeBinary (2), NodeFunction (n)
}

// Kind reports the node variant.
func (e *Expr) Kind() NodeKind { return e.kind }

// Number returns the literal of a NodeNumber.
func (e *Expr) Number() number.Value { return e.num }

// Name returns the variable or function name.
func (e *Expr) Name() string { return e.name }

// Const returns the constant of a NodeConstant.
func (e *Expr) Const() Constant { return e.con }

// Op returns the operator of a NodeBinary.
func (e *Expr) Op() Op { return e.op }

// Unary returns the operator of a NodeUnary.
func (e *Expr) Unary() UnaryOp { return e.uop }

// Operand returns the single child of a NodeUnary.
func (e *Expr) Operand() *Shared { return e.args[0] }

// Left returns the first child of a NodeBinary.
func (e *Expr) Left() *Shared { return e.args[0] }

// Right returns the second child of a NodeBinary.
func (e *Expr) Right() *Shared { return e.args[1] }

// Args returns the children slice. Callers must not mutate it.
func (e *Expr) Args() []*Shared { return e.args }

// NewNumber returns a handle to a numeric literal node.
func NewNumber(v number.Value) *Shared {
	e := Expr{kind: NodeNumber, num: v}
	return newShared(e, hashLeaf(NodeNumber, v.Hash()))
}

// NewVariable returns a handle to a variable node.
func NewVariable(name string) *Shared {
	e := Expr{kind: NodeVariable, name: name}
	return newShared(e, hashString(NodeVariable, name))
}

// NewConstant returns a handle to a constant node.
func NewConstant(c Constant) *Shared {
	e := Expr{kind: NodeConstant, con: c}
	return newShared(e, hashLeaf(NodeConstant, uint64(c)))
}

// NewUnary returns a handle applying op to operand. The node retains
// its child: the operand's reference count is incremented.
func NewUnary(op UnaryOp, operand *Shared) *Shared {
	e := Expr{kind: NodeUnary, uop: op, args: []*Shared{operand.Clone()}}
	return newShared(e, hashNode(NodeUnary, uint64(op), "", e.args))
}

// NewBinary returns a handle combining left and right with op. Both
// children are retained.
func NewBinary(op Op, left, right *Shared) *Shared {
	e := Expr{kind: NodeBinary, op: op, args: []*Shared{left.Clone(), right.Clone()}}
	return newShared(e, hashNode(NodeBinary, uint64(op), "", e.args))
}

// NewFunction returns a handle applying the named function to args.
// All children are retained.
func NewFunction(name string, args ...*Shared) *Shared {
	kids := make([]*Shared, len(args))
	for i, a := range args {
		kids[i] = a.Clone()
	}
	e := Expr{kind: NodeFunction, name: name, args: kids}
	return newShared(e, hashNode(NodeFunction, 0, name, kids))
}

// hashLeaf digests a leaf node: kind plus one 64-bit payload.
func hashLeaf(kind NodeKind, payload uint64) uint64 {
	var buf [9]byte
	buf[0] = byte(kind)
	binary.BigEndian.PutUint64(buf[1:], payload)
	return xxhash.Sum64(buf[:])
}

// hashString digests a named leaf.
func hashString(kind NodeKind, name string) uint64 {
	h := xxhash.New()
	_, _ = h.Write([]byte{byte(kind)})
	_, _ = h.WriteString(name)
	return h.Sum64()
}

// hashNode digests an interior node from its tag and the cached
// hashes of its children.
func hashNode(kind NodeKind, tag uint64, name string, kids []*Shared) uint64 {
	h := xxhash.New()
	var buf [9]byte
	buf[0] = byte(kind)
	binary.BigEndian.PutUint64(buf[1:], tag)
	_, _ = h.Write(buf[:])
	_, _ = h.WriteString(name)
	var kb [8]byte
	for _, k := range kids {
		binary.BigEndian.PutUint64(kb[:], k.Hash())
		_, _ = h.Write(kb[:])
	}
	return h.Sum64()
}
