package hull

import (
	"sort"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// boundRow pairs a bound row already known to be a supporting
// hyperplane with the pivot column used to keep the running matrix in
// echelon form.
type boundRow struct {
	form  bigseq.Form
	pivot int
}

// IndepBounds assembles up to dim linearly independent supporting
// hyperplanes of s from its constituents' own constraints, mirroring
// independent_bounds. Precondition for guaranteed success: s is
// bounded and full-dimensional (InitialFacet's precondition).
func IndepBounds(ctx *hullctx.Context, s *polytope.Set) ([]bigseq.Form, error) {
	dim := s.Dim
	var accepted []boundRow

	tryAdd := func(candidate bigseq.Form) error {
		if len(accepted) == dim {
			return nil
		}
		row := bigseq.Clone(candidate)
		for _, a := range accepted {
			if row[a.pivot+1].Sign() != 0 {
				bigseq.EliminateAt(row, a.form, a.pivot+1)
			}
		}
		bigseq.Normalize(row)
		pivot := bigseq.FirstNonZero(row, 1)
		if pivot == -1 {
			return nil // dependent on already-accepted rows
		}
		bounded, ok, err := BoundSearch(ctx, s, row)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		accepted = append(accepted, boundRow{form: bounded, pivot: pivot - 1})
		sort.Slice(accepted, func(i, j int) bool { return accepted[i].pivot < accepted[j].pivot })
		return nil
	}

members:
	for _, p := range s.NonEmptyMembers() {
		for _, e := range p.Equalities {
			if err := tryAdd(e); err != nil {
				return nil, err
			}
			if len(accepted) == dim {
				break members
			}
			if err := tryAdd(bigseq.Negate(e)); err != nil {
				return nil, err
			}
			if len(accepted) == dim {
				break members
			}
		}
		for _, ineq := range p.Inequalities {
			if err := tryAdd(ineq); err != nil {
				return nil, err
			}
			if len(accepted) == dim {
				break members
			}
		}
	}

	out := make([]bigseq.Form, len(accepted))
	for i, a := range accepted {
		out[i] = a.form
	}
	return out, nil
}
