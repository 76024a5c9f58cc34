package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// pairwiseHull computes conv(b1 ∪ b2) by projection in homogenised
// coordinates, mirroring convex_hull_pair.
//
// Variables of the expanded space, in order: the dim result
// coordinates x (kept), then one (dim+1)-wide block per input
// (dilation coefficient first, the input's own coordinates scaled by
// that dilation following) — the same "own constant term lands on the
// dilation slot" copy Wrap's LP already performs. Two families of
// equalities tie the blocks together: the dilations sum to 1, and
// x equals the sum of the two scaled blocks coordinate-wise. The
// block variables are then eliminated by Fourier-Motzkin
// (polytope.RemoveDims), and the result is pruned by SingleHull.
func pairwiseHull(ctx *hullctx.Context, b1, b2 *polytope.Polyhedron) (*polytope.Polyhedron, error) {
	if err := ctx.Check(); err != nil {
		return nil, err
	}
	dim := b1.Dim
	blockWidth := dim + 1
	total := dim + 2*blockWidth

	var eqs, ineqs []bigseq.Form
	inputs := [2]*polytope.Polyhedron{b1, b2}
	for i, b := range inputs {
		blockStart := dim + 1 + i*blockWidth
		for _, e := range b.Equalities {
			row := bigseq.Zero(total + 1)
			copy(row[blockStart:blockStart+blockWidth], e)
			eqs = append(eqs, row)
		}
		for _, ineq := range b.Inequalities {
			row := bigseq.Zero(total + 1)
			copy(row[blockStart:blockStart+blockWidth], ineq)
			ineqs = append(ineqs, row)
		}
		aRow := bigseq.Zero(total + 1)
		aRow[blockStart].SetInt64(1)
		ineqs = append(ineqs, aRow)
	}

	sumRow := bigseq.Zero(total + 1)
	sumRow[0].SetInt64(-1)
	sumRow[dim+1].SetInt64(1)
	sumRow[dim+1+blockWidth].SetInt64(1)
	eqs = append(eqs, sumRow)

	for j := 1; j <= dim; j++ {
		row := bigseq.Zero(total + 1)
		row[j].SetInt64(-1)
		row[dim+1+j].SetInt64(1)
		row[dim+1+blockWidth+j].SetInt64(1)
		eqs = append(eqs, row)
	}

	expanded := polytope.New(total, polytope.WithRational(), polytope.WithEqualities(eqs...), polytope.WithInequalities(ineqs...))
	projected := polytope.RemoveDims(expanded, dim, 2*blockWidth)
	return SingleHull(ctx, projected)
}

// ElimHull computes conv(S) for an unbounded union by left-associative
// pairwise folding, mirroring uset_convex_hull_elim. Precondition: S
// has at least one non-empty member.
func ElimHull(ctx *hullctx.Context, s *polytope.Set) (*polytope.Polyhedron, error) {
	members := s.NonEmptyMembers()
	hull := members[0]
	for _, next := range members[1:] {
		if err := ctx.Check(); err != nil {
			return nil, err
		}
		merged, err := pairwiseHull(ctx, hull, next)
		if err != nil {
			return nil, err
		}
		hull = merged
	}
	return hull, nil
}
