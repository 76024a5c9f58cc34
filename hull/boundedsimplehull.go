package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// BoundedSimpleHull computes SimpleHull(S) and then repairs any
// dimension left without both a lower and an upper bound by computing
// the exact 1-D hull of that dimension alone (after projecting every
// other dimension away), mirroring isl_set_bounded_simple_hull.
//
// Divs are removed (folded away by Fourier-Motzkin, since this kernel
// treats them as ordinary trailing dimensions) only once, the first
// time a repair is actually needed, and reused for every later
// dimension that also needs one.
func BoundedSimpleHull(ctx *hullctx.Context, s *polytope.Set) (*polytope.Polyhedron, error) {
	h, err := SimpleHull(ctx, s)
	if err != nil {
		return nil, err
	}
	if h.IsEmpty() {
		return h, nil
	}

	var withoutDivs *polytope.Set
	for i := 0; i < s.Dim; i++ {
		lower, upper := dimBounds(h, i)
		if lower && upper {
			continue
		}
		if withoutDivs == nil {
			withoutDivs, err = removeDivs(s)
			if err != nil {
				return nil, ctx.Poison(err)
			}
		}
		bounds, err := hullOfSingleDim(ctx, withoutDivs, i)
		if err != nil {
			return nil, err
		}
		h, err = polytope.Intersect(h, bounds)
		if err != nil {
			return nil, ctx.Poison(err)
		}
	}
	return h, nil
}

// dimBounds reports whether h already names a lower and an upper
// bound on set-dimension i alone: either a single equality mentioning
// only i (which is both at once), or separate inequalities mentioning
// only i with positive (lower) and negative (upper) coefficients.
func dimBounds(h *polytope.Polyhedron, i int) (lower, upper bool) {
	col := i + 1
	onlyThisDim := func(row bigseq.Form) bool {
		for j := 1; j < len(row); j++ {
			if j != col && row[j].Sign() != 0 {
				return false
			}
		}
		return row[col].Sign() != 0
	}
	for _, e := range h.Equalities {
		if onlyThisDim(e) {
			return true, true
		}
	}
	for _, ineq := range h.Inequalities {
		if !onlyThisDim(ineq) {
			continue
		}
		if ineq[col].Sign() > 0 {
			lower = true
		} else {
			upper = true
		}
	}
	return lower, upper
}

// removeDivs eliminates every member's trailing div dimensions by
// Fourier-Motzkin, mirroring isl_basic_set_remove_divs.
func removeDivs(s *polytope.Set) (*polytope.Set, error) {
	if s.Divs == 0 {
		return s, nil
	}
	out := make([]*polytope.Polyhedron, len(s.Members))
	for i, m := range s.Members {
		if m.Divs == 0 {
			out[i] = m
			continue
		}
		reduced := polytope.RemoveDims(m, m.Dim-m.Divs, m.Divs)
		reduced.Divs = 0
		out[i] = reduced
	}
	return polytope.NewSet(s.Dim-s.Divs, out...)
}

// hullOfSingleDim computes the exact convex hull of dimension i alone
// (every other dimension projected out via Fourier-Motzkin) and
// re-embeds the resulting 1-D bounds back into s's full ambient
// dimension at position i, mirroring the projectOutExcept/convex_hull
// call of §4.12.
func hullOfSingleDim(ctx *hullctx.Context, s *polytope.Set, i int) (*polytope.Polyhedron, error) {
	projected := make([]*polytope.Polyhedron, len(s.Members))
	for idx, m := range s.Members {
		p := m
		if i+1 < p.Dim {
			p = polytope.RemoveDims(p, i+1, p.Dim-i-1)
		}
		if i > 0 {
			p = polytope.RemoveDims(p, 0, i)
		}
		projected[idx] = p
	}
	projectedSet, err := polytope.NewSet(1, projected...)
	if err != nil {
		return nil, ctx.Poison(err)
	}

	oneDim, err := ConvexHull(ctx, projectedSet)
	if err != nil {
		return nil, err
	}

	out := polytope.New(s.Dim)
	for _, e := range oneDim.Equalities {
		row := out.AllocEquality()
		row[0].Set(e[0])
		row[i+1].Set(e[1])
	}
	for _, ineq := range oneDim.Inequalities {
		row := out.AllocInequality()
		row[0].Set(ineq[0])
		row[i+1].Set(ineq[1])
	}
	return out, nil
}
