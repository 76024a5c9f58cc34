package hull

import "errors"

// Sentinel errors, one per failure mode, following the teacher's
// core/graph/flow convention of a single errors.New per error kind.
var (
	// ErrWrapFailed indicates the wrapping LP (§4.4) reported neither
	// an optimum nor unboundedness — an internal invariant violation.
	ErrWrapFailed = errors.New("hull: wrap LP returned neither optimum nor unbounded")

	// ErrNoFacet indicates IndepBounds could not assemble d
	// independent supporting bounds, violating InitialFacet's
	// precondition that the union be bounded and full-dimensional.
	ErrNoFacet = errors.New("hull: could not assemble an initial facet")

	// ErrNotFullDimensional indicates SimpleHull/Extend received a
	// union whose affine hull has not yet been factored out.
	ErrNotFullDimensional = errors.New("hull: expected a full-dimensional union")

	// ErrUnexpectedLPResult indicates an exact LP call returned an
	// Error result, the Go analogue of an isl_assert failure deep
	// inside the wrapping or bound-search machinery.
	ErrUnexpectedLPResult = errors.New("hull: unexpected LP result")
)
