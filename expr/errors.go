// Package expr: sentinel errors for evaluation.
package expr

import "errors"

// Sentinel errors returned (wrapped) by Evaluate.
var (
	// ErrUndefinedVariable indicates a variable had no binding in the
	// evaluation environment. Recoverable: bind it and retry.
	ErrUndefinedVariable = errors.New("expr: undefined variable")

	// ErrDomain indicates an operation outside its numeric domain,
	// such as sqrt of a negative real literal.
	ErrDomain = errors.New("expr: domain error")

	// ErrOverflow indicates a float operation overflowed to ±Inf.
	// Not recoverable by retrying with the same operands.
	ErrOverflow = errors.New("expr: float overflow")

	// ErrAliased indicates an in-place mutation was attempted on a
	// node with more than one reference. Call MakeMut first.
	ErrAliased = errors.New("expr: node is aliased")

	// ErrBadChild indicates a child index outside the node's arity.
	ErrBadChild = errors.New("expr: child index out of range")
)
