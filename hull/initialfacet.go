package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// InitialFacet reduces d independent supporting bounds (from
// IndepBounds) to a single row naming a true facet of conv(S),
// mirroring initial_facet_constraint.
//
// Loop while more than one bound row remains: slice S by the first
// bound and take the slice's affine hull. If that hull has exactly
// one equality, the slice is already full-dimensional on the
// hyperplane and the first bound is itself a facet. Otherwise the
// slice's affine hull names at least one further equality beyond the
// bound itself; that extra equality proves one of the other bound
// rows dependent on it, so it is eliminated from the remaining bounds
// (the same elimination step RemoveDims' equality-substitution path
// uses) and any bound row that collapses to zero is dropped. The last
// surviving bound is then wrapped around the first, in the original
// ambient coordinates, and discarded.
func InitialFacet(ctx *hullctx.Context, s *polytope.Set, bounds []bigseq.Form) (bigseq.Form, error) {
	d := make([]bigseq.Form, len(bounds))
	for i, b := range bounds {
		d[i] = bigseq.Clone(b)
	}

	for len(d) > 1 {
		if err := ctx.Check(); err != nil {
			return nil, err
		}
		sliced, err := intersectEquality(s, d[0])
		if err != nil {
			return nil, err
		}
		h, err := polytope.AffineHull(sliced)
		if err != nil {
			return nil, ctx.Poison(err)
		}
		if len(h.Equalities) == 1 {
			break
		}

		extra := pickIndependentEquality(h.Equalities, d[0])
		if extra != nil {
			pivotCol := bigseq.FirstNonZero(extra, 1)
			for i := 1; i < len(d); i++ {
				if d[i][pivotCol].Sign() != 0 {
					bigseq.EliminateAt(d[i], extra, pivotCol)
					bigseq.Normalize(d[i])
				}
			}
		}

		filtered := d[:1]
		for _, row := range d[1:] {
			if !bigseq.IsZero(row, 0) {
				filtered = append(filtered, row)
			}
		}
		d = filtered
		if len(d) <= 1 {
			break
		}

		last := d[len(d)-1]
		wrapped, err := Wrap(ctx, s, d[0], last)
		if err != nil {
			return nil, err
		}
		d[0] = wrapped
		d = d[:len(d)-1]
	}
	return d[0], nil
}

// pickIndependentEquality returns the first equality in eqs that is
// not a scalar multiple of skip (the bound already accounted for by
// the slice itself), or nil if every equality is dependent on skip.
func pickIndependentEquality(eqs []bigseq.Form, skip bigseq.Form) bigseq.Form {
	for _, e := range eqs {
		if bigseq.Eq(e, skip) || bigseq.IsNeg(e, skip) {
			continue
		}
		return e
	}
	return nil
}
