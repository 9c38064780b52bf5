// Package expr implements the immutable, structurally shared
// expression graph at the heart of the library: numbers, variables,
// mathematical constants, unary and binary operations, and named
// function applications, held together by reference-counted handles.
//
// What you get:
//
//	• Expr       - immutable node variant (Number/Variable/Constant/
//	               Unary/Binary/Function)
//	• Shared     - reference-counted handle enabling subtree sharing:
//	               Clone is O(1), Release drops a reference, IsUnique
//	               gates in-place reuse, MakeMut copies on write
//	• Cow        - copy-on-write wrapper that clones lazily on the
//	               first mutable access while the node is aliased
//	• Equal      - pointer, then cached hash, then iterative deep
//	               comparison; safe on arbitrarily deep trees
//	• Hash       - structural xxhash, computed once at construction
//	• Evaluate   - exact evaluation against a variable environment
//	• Substitute, Variables, Complexity, IsConstant, String
//
// Sharing model: children are held only through *Shared, so common
// subtrees occur once in memory however many parents point at them.
// Handles are not synchronized; share a graph across goroutines only
// behind external synchronization, or give each goroutine its own.
//
// Errors:
//
//	ErrUndefinedVariable - evaluation met a variable with no binding.
//	ErrDomain            - operation left its numeric domain (for
//	                       example sqrt of a negative literal).
//	ErrOverflow          - a float operation overflowed to ±Inf.
package expr
