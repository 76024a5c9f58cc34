package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/schqiushui/isl/simplex"
)

// BoundSearch determines whether linear form's linear part is bounded
// below on every non-empty member of s, mirroring uset_is_bound.
//
// On success it returns a rescaled copy of form whose constant term
// has been shifted so that the combined form is >= 0 on every member
// and exactly 0 on at least one, and ok is true. On failure (the form
// is unbounded below on some member) ok is false and the returned form
// is nil; this is not an error, it is a normal negative result.
func BoundSearch(ctx *hullctx.Context, s *polytope.Set, form bigseq.Form) (bigseq.Form, bool, error) {
	if err := ctx.Check(); err != nil {
		return nil, false, err
	}

	c := bigseq.Clone(form)
	c[0].SetInt64(0)
	first := true

	for _, p := range s.NonEmptyMembers() {
		tab := simplex.FromConstraints(p.Dim, p.Equalities, p.Inequalities)
		res, n, d, err := tab.Min(c)
		if err != nil {
			return nil, false, ctx.Poison(err)
		}
		switch res {
		case simplex.Empty:
			// A subproblem with no feasible point at all puts no
			// constraint on the bound; skip it, matching the
			// original's "mark Pj empty and continue".
			continue
		case simplex.Unbounded:
			return nil, false, nil
		case simplex.Error:
			return nil, false, ctx.Violate(ErrUnexpectedLPResult)
		}

		if d.Cmp(one) != 0 {
			// Rescaling the whole running form by d turns the just
			// computed opt = n/d into exactly n on the new form.
			bigseq.ScaleInPlace(c, d)
		}
		if first || n.Sign() < 0 {
			c[0].Sub(c[0], n)
			first = false
		}
	}
	return c, true, nil
}
