package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/polytope"
)

// AffineReduce computes conv(S) by first factoring out any equalities
// shared by every member's affine hull, mirroring
// uset_convex_hull_modulo_affine_hull. If the affine hull has no
// equalities S is already full-dimensional and AffineReduce recurses
// straight into the dimension/boundedness dispatch; otherwise it maps
// S down to the reduced full-dimensional space, computes the hull
// there, lifts the result back up, and intersects it with the
// original affine hull to restore the equalities the projection
// dropped.
func AffineReduce(ctx *hullctx.Context, s *polytope.Set) (*polytope.Polyhedron, error) {
	if err := ctx.Check(); err != nil {
		return nil, err
	}

	affine, err := polytope.AffineHull(s)
	if err != nil {
		return nil, ctx.Poison(err)
	}
	if len(affine.Equalities) == 0 {
		return dispatchFullDimensional(ctx, s)
	}

	down, up, _, err := polytope.RemoveEqualities(affine)
	if err != nil {
		return nil, ctx.Poison(err)
	}

	reduced, err := preimageAll(s.NonEmptyMembers(), down)
	if err != nil {
		return nil, ctx.Poison(err)
	}

	reducedHull, err := ConvexHull(ctx, reduced)
	if err != nil {
		return nil, err
	}

	lifted, err := polytope.Preimage(reducedHull, up)
	if err != nil {
		return nil, ctx.Poison(err)
	}

	return polytope.Intersect(lifted, affine)
}
