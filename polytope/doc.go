// Package polytope implements the polyhedron, union, and map data
// types that the hull kernel operates on: ordered equality and
// inequality lists over a shared ambient dimension, copy-on-write
// mutation, Gaussian reduction of the equality block, affine-hull
// extraction, and preimage under an integer coordinate change.
//
// Every numeric field is an internal/bigseq.Form or a ratmat.Matrix;
// nothing here ever holds a float64. The type itself has no upstream
// library in the retrieved corpus — it is the "polyhedron data type"
// the kernel spec names as an external collaborator, rebuilt here
// because nothing in the example pack supplies one.
package polytope
