// Package ratmat provides exact rational matrix primitives used by the
// convex-hull kernel's coordinate-transform machinery: right inverse,
// matrix product, and row/column dropping.
//
// Every entry is a *big.Rat; there is no floating point anywhere in
// this package, matching the exactness the convex-hull kernel
// requires.
package ratmat
