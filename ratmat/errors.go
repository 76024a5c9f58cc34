package ratmat

import "errors"

// Sentinel errors for matrix operations.
var (
	// ErrDimMismatch indicates an operation received matrices whose
	// dimensions are incompatible.
	ErrDimMismatch = errors.New("ratmat: dimension mismatch")

	// ErrNotFullRowRank indicates RightInverse was asked to invert a
	// matrix whose rows are not linearly independent.
	ErrNotFullRowRank = errors.New("ratmat: matrix is not full row rank")

	// ErrSingular indicates an attempted Gauss-Jordan inversion hit a
	// singular (all-zero) pivot column.
	ErrSingular = errors.New("ratmat: singular matrix")
)
