// Package hullctx carries the ambient state every hull algorithm needs
// but none of them own: a pair of cached big.Int constants, a sticky
// error slot that short-circuits a whole call tree once something has
// gone wrong, a debug-trace logger, and an external cancellation
// signal. It plays the role the original's isl_ctx plays for
// isl_convex_hull.c: a single object threaded by reference into every
// recursive call, instead of each function allocating its own scratch
// state.
//
// Shape is modeled on the teacher's flow.FlowOptions/opts.Ctx pair:
// a plain options struct built through a small option-pattern
// constructor, carrying a context.Context for cancellation and a bool
// for verbosity. hullctx.Context folds both into one object because,
// unlike flow's stateless algorithms, the hull kernel recurses deeply
// (ConvexHull reaches Extend, which calls Wrap per ridge and FacetHull
// per facet, and FacetHull recurses back into ConvexHull) and
// needs one shared place to record "this branch already failed."
package hullctx
