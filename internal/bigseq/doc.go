// Package bigseq provides exact, arbitrary-precision integer vector
// primitives used throughout the convex-hull kernel.
//
// A Form is an ordered vector of *big.Int: index 0 is the constant
// term, indices 1..n are the coefficients of an affine expression
//
//	c0 + c1*x1 + ... + cn*xn
//
// interpreted either as an equality (= 0) or an inequality (>= 0) by
// the container that owns it. All operations are exact: there is no
// rounding or approximation anywhere in this package.
package bigseq
