package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/schqiushui/isl/simplex"
)

// SimpleHull computes a polyhedron containing conv(S) whose every
// inequality is a translate of some constituent's own inequality,
// mirroring isl_set_simple_hull. It never solves a genuine
// gift-wrapping LP, only per-constituent bound checks, so it is far
// cheaper than ConvexHull at the cost of precision (the result may be
// strictly larger than the true hull).
//
// A per-constituent table of already-processed linear forms (sign
// insensitive) avoids re-deriving the same bound twice; a global table
// of accepted hull inequalities avoids emitting duplicates.
func SimpleHull(ctx *hullctx.Context, s *polytope.Set) (*polytope.Polyhedron, error) {
	if err := ctx.Check(); err != nil {
		return nil, err
	}

	members := s.NonEmptyMembers()
	if len(members) == 0 {
		return polytope.Empty(s.Dim), nil
	}

	affine, err := polytope.AffineHull(s)
	if err != nil {
		return nil, ctx.Poison(err)
	}
	h := polytope.New(s.Dim, polytope.WithEqualities(affine.Equalities...))

	tables := make([]map[string]bool, len(members))
	for i := range tables {
		tables[i] = make(map[string]bool)
	}
	globalTable := make(map[string]bool)

	candidateRows := func(p *polytope.Polyhedron) []bigseq.Form {
		rows := make([]bigseq.Form, 0, len(p.Equalities)*2+len(p.Inequalities))
		for _, e := range p.Equalities {
			rows = append(rows, e, bigseq.Negate(e))
		}
		rows = append(rows, p.Inequalities...)
		return rows
	}

	for i, p := range members {
		for _, c := range candidateRows(p) {
			key, _ := bigseq.SignKey(c)
			if globalTable[key] {
				continue
			}
			alreadySeen := false
			for j := 0; j < i; j++ {
				if tables[j][key] {
					alreadySeen = true
					break
				}
			}
			if alreadySeen {
				continue
			}
			tables[i][key] = true

			candidate := bigseq.Clone(c)
			ok, err := relaxAgainstRest(ctx, members, i, candidate)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			row := h.AllocInequality()
			bigseq.CopyInto(row, candidate)
			globalTable[key] = true
		}
	}

	return SingleHull(ctx, h)
}

// relaxAgainstRest raises candidate's constant term in place so that
// it bounds every other constituent of members besides index self,
// returning false if no finite relaxation exists against some
// constituent (candidate is discarded entirely in that case),
// mirroring SimpleHull's per-pair BoundCheck step (§4.11 steps 3-4).
//
// Each constituent's LP is evaluated against candidate as it stands
// (constant term included, not re-zeroed), exactly BoundSearch's
// running-accumulator discipline: a negative minimum means the
// current bound is violated by this member and must be raised by
// exactly that amount; a non-negative minimum means the bound already
// holds here and candidate is left untouched.
func relaxAgainstRest(ctx *hullctx.Context, members []*polytope.Polyhedron, self int, candidate bigseq.Form) (bool, error) {
	for j, other := range members {
		if j == self {
			continue
		}
		tab := simplex.FromConstraints(other.Dim, other.Equalities, other.Inequalities)
		res, n, d, err := tab.Min(candidate)
		if err != nil {
			return false, ctx.Poison(err)
		}
		switch res {
		case simplex.Unbounded:
			return false, nil
		case simplex.Empty:
			continue
		case simplex.Error:
			return false, ctx.Violate(ErrUnexpectedLPResult)
		}
		if d.Cmp(one) != 0 {
			// Rescaling candidate by d turns the just-computed
			// opt = n/d into exactly n against the new candidate.
			bigseq.ScaleInPlace(candidate, d)
		}
		if n.Sign() < 0 {
			candidate[0].Sub(candidate[0], n)
		}
	}
	return true, nil
}
