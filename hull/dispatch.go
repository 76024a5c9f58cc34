package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/polytope"
)

// ConvexHull computes conv(S) for a union of polyhedra sharing an
// ambient dimension, mirroring uset_convex_hull: normalise away empty
// constituents, take the 0/1-member short-cuts, then fold out any
// equalities shared by every constituent's affine hull (AffineReduce,
// §4.10) before routing to the dimension/boundedness dispatch.
func ConvexHull(ctx *hullctx.Context, s *polytope.Set) (*polytope.Polyhedron, error) {
	if err := ctx.Check(); err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return polytope.Empty(s.Dim), nil
	}
	members := s.NonEmptyMembers()
	if len(members) == 1 {
		return SingleHull(ctx, members[0])
	}
	return AffineReduce(ctx, s)
}

// MapConvexHull aligns every member's div count, flattens the
// relation to its underlying set, and returns ConvexHull of that set
// as a plain Polyhedron over all InDim+OutDim dimensions; the map's
// input/output split is not carried on the result. Mirrors
// isl_map_convex_hull.
func MapConvexHull(ctx *hullctx.Context, m *polytope.Map) (*polytope.Polyhedron, error) {
	aligned := m.AlignDivs()
	return ConvexHull(ctx, aligned.Set)
}

// MapSimpleHull is MapConvexHull's SimpleHull counterpart, mirroring
// isl_map_simple_hull.
func MapSimpleHull(ctx *hullctx.Context, m *polytope.Map) (*polytope.Polyhedron, error) {
	aligned := m.AlignDivs()
	return SimpleHull(ctx, aligned.Set)
}
