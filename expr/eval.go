// Package expr: exact evaluation.
package expr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symlath/number"
)

// Evaluate computes the exact numeric value of the subtree in the
// given environment. Values that cannot be resolved exactly (trig of
// a general argument, transcendental constants) come back as
// number.Symbolic rather than approximations.
//
// Errors, all wrapped for errors.Is:
//
//	ErrUndefinedVariable   - a variable has no binding in env.
//	number.ErrDivisionByZero - a Divide node met a zero divisor.
//	ErrDomain              - sqrt of a negative real literal, or 0
//	                         raised to a negative power.
//	ErrOverflow            - a float result reached ±Inf.
//
// Traversal uses an explicit frame stack with a parallel value stack:
// a frame descends into its children first, then folds the top
// len(args) values into one. Deep trees cannot overflow the goroutine
// stack.
func (s *Shared) Evaluate(env map[string]number.Value) (number.Value, error) {
	type frame struct {
		node *Shared
		next int
	}
	stack := []frame{{node: s}}
	var vals []number.Value

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		args := f.node.expr.args

		if f.next < len(args) {
			f.next++
			stack = append(stack, frame{node: args[f.next-1]})
			continue
		}

		v, err := evalNode(&f.node.expr, vals[len(vals)-len(args):], env)
		if err != nil {
			return number.Value{}, err
		}
		vals = vals[:len(vals)-len(args)]
		vals = append(vals, v)
		stack = stack[:len(stack)-1]
	}
	return vals[0], nil
}

// evalNode folds one node over its already-evaluated children.
func evalNode(e *Expr, kids []number.Value, env map[string]number.Value) (number.Value, error) {
	switch e.kind {
	case NodeNumber:
		return e.num, nil

	case NodeVariable:
		v, ok := env[e.name]
		if !ok {
			return number.Value{}, fmt.Errorf("%w: %s", ErrUndefinedVariable, e.name)
		}
		return v, nil

	case NodeConstant:
		return evalConstant(e.con), nil

	case NodeUnary:
		switch e.uop {
		case UnaryNeg:
			return checkedFloat(number.Neg(kids[0]))
		case UnaryPlus:
			return kids[0], nil
		default:
			return checkedFloat(number.Abs(kids[0]))
		}

	case NodeBinary:
		return evalBinary(e.op, kids[0], kids[1])

	default: // NodeFunction
		return evalFunction(e.name, kids)
	}
}

// evalConstant resolves the exactly representable constants and keeps
// the transcendental ones symbolic.
func evalConstant(c Constant) number.Value {
	switch c {
	case ConstI:
		return number.ImaginaryUnit()
	default:
		return number.Symbolic(c.Symbol())
	}
}

func evalBinary(op Op, l, r number.Value) (number.Value, error) {
	switch op {
	case OpAdd:
		return checkedFloat(number.Add(l, r))
	case OpSub:
		return checkedFloat(number.Sub(l, r))
	case OpMul:
		return checkedFloat(number.Mul(l, r))
	case OpDiv:
		v, err := number.Divide(l, r)
		if err != nil {
			return number.Value{}, err
		}
		return checkedFloat(v)
	default: // OpPow
		if l.IsZero() && r.IsNegative() {
			return number.Value{}, fmt.Errorf("%w: 0 raised to a negative power", ErrDomain)
		}
		return checkedFloat(number.Pow(l, r))
	}
}

// evalFunction resolves the functions with exact values; everything
// else stays symbolic so no precision is invented.
func evalFunction(name string, args []number.Value) (number.Value, error) {
	if name == "sqrt" && len(args) == 1 {
		a := args[0]
		if root, ok := number.SqrtExact(a); ok {
			return root, nil
		}
		if a.IsReal() && a.IsNegative() {
			return number.Value{}, fmt.Errorf("%w: sqrt(%s)", ErrDomain, a)
		}
		return number.Symbolic(fmt.Sprintf("sqrt(%s)", a)), nil
	}
	if name == "abs" && len(args) == 1 {
		return checkedFloat(number.Abs(args[0]))
	}

	rendered := ""
	for i, a := range args {
		if i > 0 {
			rendered += ", "
		}
		rendered += a.String()
	}
	return number.Symbolic(name + "(" + rendered + ")"), nil
}

// checkedFloat maps an infinite float result to ErrOverflow. Exact
// kinds pass through untouched; they cannot overflow.
func checkedFloat(v number.Value) (number.Value, error) {
	if v.Kind() == number.KindFloat {
		if f, _ := v.Float64(); math.IsInf(f, 0) {
			return number.Value{}, fmt.Errorf("%w: %s", ErrOverflow, v)
		}
	}
	return v, nil
}
