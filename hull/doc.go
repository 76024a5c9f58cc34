// Package hull implements the convex-hull kernel: redundancy
// elimination on a single polyhedron, the wrapping-based convex hull
// of a union of polyhedra, the Fourier-Motzkin fallback for unbounded
// unions, and the two simple-hull approximations built from bound
// translation alone. Every exported function takes a *hullctx.Context
// as its first argument and threads it through every recursive call,
// mirroring isl_convex_hull.c's use of a single isl_ctx.
//
// The recursive structure follows the original closely:
// ConvexHull (through AffineReduce and dispatchFullDimensional)
// dispatches on dimension and boundedness; the bounded
// full-dimensional case assembles a first facet (IndepBounds +
// InitialFacet) and enumerates the rest by gift-wrapping (Extend +
// Wrap), recursing into each facet's own affine subspace (FacetHull);
// the unbounded case folds the union pairwise via projection
// (ElimHull); a shared affine hull is always factored out first
// (AffineReduce) so the wrapping algorithm only ever sees
// full-dimensional input.
package hull
