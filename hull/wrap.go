package hull

import (
	"fmt"
	"math/big"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/schqiushui/isl/ratmat"
	"github.com/schqiushui/isl/simplex"
)

// Wrap computes the facet of conv(S) adjacent to facet across ridge,
// the classical gift-wrapping step, mirroring wrap_facet.
//
// Method: build the coordinate change T = [e0; facet; ridge] (square,
// via right-inverse completed with a null-space basis so it is
// invertible); in the transformed coordinates facet becomes x1 >= 0
// and ridge becomes x2 >= 0. Assemble one linear program over the
// direct sum of every transformed constituent — one dilation
// coefficient a_i and one homogenised point per constituent — and
// minimize the sum of their x2 coordinates subject to the dilations
// summing their x1 coordinates to 1. If the LP is unbounded, facet was
// already the adjacent facet along this ridge; otherwise the new
// facet is the combination (-n)*facet + d*ridge in original
// coordinates, n/d being the LP optimum.
func Wrap(ctx *hullctx.Context, s *polytope.Set, facet, ridge bigseq.Form) (bigseq.Form, error) {
	if err := ctx.Check(); err != nil {
		return nil, err
	}
	dim := s.Dim

	e0 := bigseq.Zero(dim + 1)
	e0[0].SetInt64(1)
	stacked := ratmat.FromForms([]bigseq.Form{e0, facet, ridge})

	u, err := ratmat.RightInverse(stacked)
	if err != nil {
		return nil, ctx.Poison(err)
	}
	nullBasis := ratmat.NullSpace(stacked)
	n := ratmat.New(dim+1, nullBasis.Rows)
	for j := 0; j < nullBasis.Rows; j++ {
		for r := 0; r <= dim; r++ {
			n.Data[r][j].Set(nullBasis.Data[j][r])
		}
	}
	full, err := ratmat.HStack(u, n)
	if err != nil {
		return nil, ctx.Poison(err)
	}

	members := s.NonEmptyMembers()
	transformed := make([]*polytope.Polyhedron, len(members))
	for i, m := range members {
		tm, err := polytope.Preimage(m, full)
		if err != nil {
			return nil, ctx.Poison(err)
		}
		transformed[i] = tm
	}

	perBlock := dim + 1
	total := perBlock * len(transformed)
	var eqs, ineqs []bigseq.Form

	sumRow := bigseq.Zero(total + 1)
	sumRow[0].SetInt64(-1)
	for i := range transformed {
		sumRow[1+i*perBlock+1].SetInt64(1)
	}
	eqs = append(eqs, sumRow)

	for i, tm := range transformed {
		aRow := bigseq.Zero(total + 1)
		aRow[1+i*perBlock].SetInt64(1)
		ineqs = append(ineqs, aRow)

		for _, e := range tm.Equalities {
			row := bigseq.Zero(total + 1)
			for p := 0; p <= dim; p++ {
				row[1+i*perBlock+p].Set(e[p])
			}
			eqs = append(eqs, row)
		}
		for _, ineq := range tm.Inequalities {
			row := bigseq.Zero(total + 1)
			for p := 0; p <= dim; p++ {
				row[1+i*perBlock+p].Set(ineq[p])
			}
			ineqs = append(ineqs, row)
		}
	}

	objective := bigseq.Zero(total + 1)
	for i := range transformed {
		objective[1+i*perBlock+2].SetInt64(1)
	}

	tab := simplex.FromConstraints(total, eqs, ineqs)
	res, num, den, err := tab.Min(objective)
	if err != nil {
		return nil, ctx.Poison(err)
	}
	switch res {
	case simplex.Unbounded:
		ctx.Trace("wrap: facet already adjacent", map[string]any{
			"facet": fmt.Sprint(facet),
			"ridge": fmt.Sprint(ridge),
		})
		return bigseq.Clone(facet), nil
	case simplex.Ok:
		neg := new(big.Int).Neg(num)
		wrapped := bigseq.Combine(neg, facet, den, ridge)
		ctx.Trace("wrap: lp solved", map[string]any{
			"facet": fmt.Sprint(facet),
			"ridge": fmt.Sprint(ridge),
			"num":   num.String(),
			"den":   den.String(),
		})
		return wrapped, nil
	default:
		return nil, ctx.Violate(ErrWrapFailed)
	}
}
