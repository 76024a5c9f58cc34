package hull

import (
	"fmt"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// FacetHull recursively computes the hull of the facet named by form
// (a supporting hyperplane of conv(S)): it slices every constituent
// by form = 0 and recurses into the top-level dispatcher on the
// resulting (lower-dimensional) union, mirroring compute_facet's
// "transform into the hyperplane, recurse, lift back" structure — the
// transform itself is AffineReduce's job once ConvexHull notices the
// slice's affine hull carries the new equality.
func FacetHull(ctx *hullctx.Context, s *polytope.Set, form bigseq.Form) (*polytope.Polyhedron, error) {
	sliced, err := intersectEquality(s, form)
	if err != nil {
		return nil, ctx.Poison(err)
	}
	return ConvexHull(ctx, sliced)
}

// Extend enumerates every facet of conv(S) by breadth-first
// gift-wrapping, starting from the facets already present in hull
// (which must contain at least one true facet), mirroring the main
// loop of uset_convex_hull_wrap.
//
// The loop walks hull.Inequalities by index while appending to it, so
// newly discovered facets are themselves visited — growth-during-
// iteration over an indexed slice, not a channel or iterator,
// following graph.BFS's own growing-queue idiom.
func Extend(ctx *hullctx.Context, s *polytope.Set, hull *polytope.Polyhedron) (*polytope.Polyhedron, error) {
	out := hull.Clone()

	for i := 0; i < len(out.Inequalities); i++ {
		if err := ctx.Check(); err != nil {
			return nil, err
		}
		fi := out.Inequalities[i]

		facet, err := FacetHull(ctx, s, fi)
		if err != nil {
			return nil, err
		}

		hullFacet := out.Clone()
		row := hullFacet.AllocEquality()
		bigseq.CopyInto(row, fi)
		hullFacet = hullFacet.Gauss().Normalize()

		for _, ridge := range facet.Inequalities {
			if containsIneq(hullFacet.Inequalities, ridge) {
				continue
			}
			newFacet := bigseq.Clone(fi)
			out.Inequalities = append(out.Inequalities, newFacet)
			wrapped, err := Wrap(ctx, s, newFacet, ridge)
			if err != nil {
				return nil, err
			}
			out.Inequalities[len(out.Inequalities)-1] = wrapped
			ctx.Trace("facet discovered", map[string]any{
				"from_facet": fmt.Sprint(fi),
				"ridge":      fmt.Sprint(ridge),
				"new_facet":  fmt.Sprint(wrapped),
				"total":      len(out.Inequalities),
			})
		}
	}

	return out.Simplify(), nil
}
