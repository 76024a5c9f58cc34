package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/polytope"
	"github.com/schqiushui/isl/simplex"
)

// SingleHull removes redundant inequalities from a single polyhedron,
// mirroring isl_basic_map_remove_redundancies.
//
// B is Gauss-reduced first. If it is already empty, already flagged
// non-redundant, or has at most one inequality (nothing to be
// redundant against), it is returned as-is. Otherwise a tableau built
// from B's constraints is asked to promote implicit equalities and
// drop redundant inequalities; the results are written back and the
// non-redundant flag is set.
func SingleHull(ctx *hullctx.Context, b *polytope.Polyhedron) (*polytope.Polyhedron, error) {
	if err := ctx.Check(); err != nil {
		return nil, err
	}

	out := b.Gauss()
	if out.IsEmpty() || out.Flags.Has(polytope.FlagNoRedundant) || len(out.Inequalities) <= 1 {
		return out, nil
	}

	tab := simplex.FromConstraints(out.Dim, out.Equalities, out.Inequalities)

	withEqs, err := tab.DetectEqualities()
	if err != nil {
		return nil, ctx.Poison(err)
	}
	reduced, err := withEqs.DetectRedundant()
	if err != nil {
		return nil, ctx.Poison(err)
	}

	out.Equalities = reduced.Eqs
	out.Inequalities = reduced.Ineqs
	out = out.Gauss()
	out.Flags |= polytope.FlagNoRedundant
	return out, nil
}
