package hull

import (
	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
)

// protoEntry tracks one candidate facet of conv(S) while
// CommonConstraints walks the constituents, mirroring isl's
// isl_mat-backed "value + count + still an inequality" bookkeeping.
type protoEntry struct {
	form       bigseq.Form
	count      int
	inequality bool
}

// ProtoHull computes an initial facet seed for the wrapping algorithm
// without solving a single LP, by intersecting every constituent's own
// constraints against one reference constituent, mirroring
// uset_convex_hull_wrap's proto_hull/common_constraints fast path. It
// returns the surviving facets plus whether they already equal an
// entire constituent (isHull), in which case Extend can be skipped
// altogether.
func ProtoHull(ctx *hullctx.Context, s *polytope.Set) ([]bigseq.Form, bool, error) {
	if err := ctx.Check(); err != nil {
		return nil, false, err
	}

	members := s.NonEmptyMembers()
	var best *polytope.Polyhedron
	for _, p := range members {
		if len(p.Equalities) > 0 {
			continue
		}
		if best == nil || len(p.Inequalities) < len(best.Inequalities) {
			best = p
		}
	}
	if best == nil {
		return nil, false, nil
	}

	table := make(map[string]*protoEntry, len(best.Inequalities))
	var order []string
	for _, ineq := range best.Inequalities {
		key := bigseq.LinearKey(ineq)
		table[key] = &protoEntry{form: bigseq.Clone(ineq), count: 1, inequality: true}
		order = append(order, key)
	}

	for _, p := range members {
		if p == best {
			continue
		}
		seen := make(map[string]bool)
		touch := func(form bigseq.Form, fromEquality bool) {
			key := bigseq.LinearKey(form)
			entry, ok := table[key]
			if !ok {
				return
			}
			if seen[key] {
				return
			}
			seen[key] = true
			if form[0].Cmp(entry.form[0]) > 0 {
				entry.form[0].Set(form[0])
			}
			if fromEquality {
				entry.inequality = false
			}
			entry.count++
		}
		for _, e := range p.Equalities {
			touch(e, true)
			touch(bigseq.Negate(e), true)
		}
		for _, ineq := range p.Inequalities {
			touch(ineq, false)
		}
		for key := range table {
			if !seen[key] {
				delete(table, key)
			}
		}
	}

	nonBest := 0
	for _, p := range members {
		if p != best {
			nonBest++
		}
	}

	var facets []bigseq.Form
	for _, key := range order {
		entry, ok := table[key]
		if !ok {
			continue
		}
		if entry.inequality && entry.count == nonBest+1 {
			facets = append(facets, entry.form)
		}
	}

	isHull := len(facets) == len(best.Inequalities)
	if isHull {
		for _, f := range facets {
			if !containsIneq(best.Inequalities, f) {
				isHull = false
				break
			}
		}
	}
	return facets, isHull, nil
}
