// Package simplex implements the convex-hull kernel's only numeric
// collaborator: an exact rational simplex solver and the tableau type
// (Tab) that backs redundancy and implicit-equality detection.
//
// Every pivot is performed over *big.Rat; there is no tolerance, no
// epsilon, and no floating point anywhere in this package. The
// bookkeeping (basic/non-basic index arrays, phase-1 artificial
// objective, ratio-test pivot selection) follows the classic
// two-phase simplex shape used by the corpus's own (floating-point)
// simplex implementation, redone here with exact arithmetic so every
// LP result is provably correct rather than numerically approximate.
package simplex
