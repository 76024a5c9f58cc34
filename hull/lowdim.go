package hull

import (
	"math/big"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// Hull0D handles the degenerate zero-dimensional case: the universe if
// S has any non-empty member, the empty polyhedron otherwise,
// mirroring convex_hull_0d.
func Hull0D(s *polytope.Set) *polytope.Polyhedron {
	if s.IsEmpty() {
		return polytope.Empty(0)
	}
	return polytope.Universe(0)
}

// Hull1D keeps the loosest lower bound and the loosest upper bound
// found among every constituent's rows (the least lower and greatest
// upper end point), without any LP, mirroring the one-dimensional
// fast path of uset_convex_hull (a facet in one dimension is just a
// scalar, so wrapping degenerates to a running extremum).
//
// A bound is compared as the exact fraction -c0/c1; equalities
// contribute both a lower and an upper bound simultaneously. Two
// candidate lower bounds lower and ineq are compared via
// lower[0]*ineq[1] against ineq[0]*lower[1] cross-multiplication,
// avoiding any division.
func Hull1D(s *polytope.Set) *polytope.Polyhedron {
	var lower, upper bigseq.Form
	haveLower, haveUpper := false, false
	takeLower := func(row bigseq.Form) {
		if !haveLower || tighterLowerBound(lower, row) {
			lower = row
			haveLower = true
		}
	}
	takeUpper := func(row bigseq.Form) {
		if !haveUpper || tighterUpperBound(upper, row) {
			upper = row
			haveUpper = true
		}
	}

	for _, p := range s.NonEmptyMembers() {
		for _, e := range p.Equalities {
			if e[1].Sign() == 0 {
				continue
			}
			takeLower(normalizeBound(e, true))
			takeUpper(normalizeBound(e, false))
		}
		for _, ineq := range p.Inequalities {
			if ineq[1].Sign() == 0 {
				continue
			}
			if ineq[1].Sign() > 0 {
				takeLower(ineq)
			} else {
				takeUpper(ineq)
			}
		}
	}

	out := polytope.New(1)
	if haveLower {
		row := out.AllocInequality()
		bigseq.CopyInto(row, lower)
	}
	if haveUpper {
		row := out.AllocInequality()
		bigseq.CopyInto(row, upper)
	}
	return out
}

// normalizeBound reorients an equality row (a*x + b >= 0 and <= 0
// both hold) into the inequality direction requested: asLower=true
// wants a positive coefficient on x (a genuine lower bound a*x+b>=0
// reads x >= -b/a), asLower=false wants the negated form.
func normalizeBound(e bigseq.Form, asLower bool) bigseq.Form {
	wantPositive := asLower
	if (e[1].Sign() > 0) == wantPositive {
		return bigseq.Clone(e)
	}
	return bigseq.Negate(e)
}

// tighterLowerBound reports whether candidate is a strictly tighter
// (larger) lower bound than current: both read "a*x + b >= 0" with
// a > 0, i.e. x >= -b/a; comparing -b1/a1 to -b2/a2 cross-multiplied
// by the (positive) denominators avoids rationals.
func tighterLowerBound(candidate, current bigseq.Form) bool {
	negCandidate0 := new(big.Int).Neg(candidate[0])
	negCurrent0 := new(big.Int).Neg(current[0])
	lhs := new(big.Int).Mul(negCandidate0, current[1])
	rhs := new(big.Int).Mul(negCurrent0, candidate[1])
	return lhs.Cmp(rhs) > 0
}

// tighterUpperBound reports whether candidate is a strictly tighter
// (smaller) upper bound than current: both read "a*x + b >= 0" with
// a < 0, i.e. x <= -b/a. Cross-multiplying by a1*a2 (positive, since
// both coefficients are negative) preserves the comparison direction.
func tighterUpperBound(candidate, current bigseq.Form) bool {
	negCandidate0 := new(big.Int).Neg(candidate[0])
	negCurrent0 := new(big.Int).Neg(current[0])
	lhs := new(big.Int).Mul(negCandidate0, current[1])
	rhs := new(big.Int).Mul(negCurrent0, candidate[1])
	return lhs.Cmp(rhs) < 0
}

// dispatchFullDimensional routes a bounded, full-dimensional,
// non-trivial union to the wrapping-based hull (§4.2-§4.7) or an
// unbounded union to ElimHull (§4.8), mirroring uset_convex_hull's
// dimension/boundedness switch once AffineReduce (§4.10) has already
// stripped any shared equalities.
func dispatchFullDimensional(ctx *hullctx.Context, s *polytope.Set) (*polytope.Polyhedron, error) {
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
	switch s.Dim {
	case 0:
		return Hull0D(s), nil
	case 1:
		return Hull1D(s), nil
	}

	seed, isHull, err := ProtoHull(ctx, s)
	if err != nil {
		return nil, err
	}
	if isHull {
		return SingleHull(ctx, polytope.New(s.Dim, polytope.WithInequalities(seed...)))
	}

	bounded, err := s.IsBounded()
	if err != nil {
		return nil, ctx.Poison(err)
	}
	if !bounded {
		return ElimHull(ctx, s)
	}

	bounds, err := IndepBounds(ctx, s)
	if err != nil {
		return nil, err
	}
	if len(bounds) < s.Dim {
		return ElimHull(ctx, s)
	}

	var start *polytope.Polyhedron
	if len(seed) > 0 {
		start = polytope.New(s.Dim, polytope.WithInequalities(seed...))
	} else {
		facet, err := InitialFacet(ctx, s, bounds)
		if err != nil {
			return nil, err
		}
		start = polytope.New(s.Dim, polytope.WithInequalities(facet))
	}

	return Extend(ctx, s, start)
}
