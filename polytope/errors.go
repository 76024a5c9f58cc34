package polytope

import "errors"

// Sentinel errors for polytope operations, following the teacher's
// one-error-per-failure-mode convention.
var (
	// ErrDimMismatch indicates two polyhedra or a polyhedron and a
	// matrix disagree on ambient dimension.
	ErrDimMismatch = errors.New("polytope: dimension mismatch")

	// ErrEmptySet indicates an operation that requires at least one
	// member was given an empty Set.
	ErrEmptySet = errors.New("polytope: set has no members")

	// ErrNotFullDimensional indicates an operation that assumes a
	// full-dimensional polyhedron was given one with implicit equalities.
	ErrNotFullDimensional = errors.New("polytope: polyhedron is not full-dimensional")

	// ErrPreconditionViolation names a violated documented
	// precondition. No function in this module returns it;
	// hullctx.Context.Violate wraps whatever error its caller passes.
	ErrPreconditionViolation = errors.New("polytope: precondition violation")
)
