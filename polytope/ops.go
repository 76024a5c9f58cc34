package polytope

import (
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/simplex"
)

// Intersect returns the conjunction of a and b: every equality and
// inequality of both, mirroring isl_basic_map_intersect. a and b must
// share Dim.
func Intersect(a, b *Polyhedron) (*Polyhedron, error) {
	if a.Dim != b.Dim {
		return nil, ErrDimMismatch
	}
	if a.IsEmpty() || b.IsEmpty() {
		return Empty(a.Dim), nil
	}
	divs := a.Divs
	if b.Divs > divs {
		divs = b.Divs
	}
	out := New(a.Dim, WithDivs(divs))
	out.Equalities = append(cloneForms(a.Equalities), cloneForms(b.Equalities)...)
	out.Inequalities = append(cloneForms(a.Inequalities), cloneForms(b.Inequalities)...)
	return out.Gauss(), nil
}

// RemoveDims eliminates count dimensions starting at the 0-indexed
// set-dimension `first` via Fourier-Motzkin projection, mirroring
// isl_basic_map_remove_dims/isl_basic_map_eliminate as used by
// ElimHull (§4.8) to project the auxiliary y,z variables back out of
// the 2+3d-dimensional pairwise-hull space.
//
// Any dimension still pinned by an equality is eliminated by direct
// substitution instead of the combinatorial pairwise step, matching
// isl's own preference for substitution over full Fourier-Motzkin
// whenever an equality is available.
func RemoveDims(p *Polyhedron, first, count int) *Polyhedron {
	out := p.Clone()
	if out.IsEmpty() {
		out.Dim -= count
		return out
	}

	for elim := 0; elim < count; elim++ {
		col := first + 1 + elim

		eqIdx := -1
		for i, e := range out.Equalities {
			if e[col].Sign() != 0 {
				eqIdx = i
				break
			}
		}
		if eqIdx != -1 {
			pivot := out.Equalities[eqIdx]
			newEqs := make([]bigseq.Form, 0, len(out.Equalities)-1)
			for i, e := range out.Equalities {
				if i == eqIdx {
					continue
				}
				if e[col].Sign() != 0 {
					bigseq.EliminateAt(e, pivot, col)
					bigseq.Normalize(e)
				}
				newEqs = append(newEqs, e)
			}
			for _, ineq := range out.Inequalities {
				if ineq[col].Sign() != 0 {
					bigseq.EliminateAt(ineq, pivot, col)
					bigseq.Normalize(ineq)
				}
			}
			out.Equalities = newEqs
			continue
		}

		var pos, neg, zero []bigseq.Form
		for _, ineq := range out.Inequalities {
			switch ineq[col].Sign() {
			case 1:
				pos = append(pos, ineq)
			case -1:
				neg = append(neg, ineq)
			default:
				zero = append(zero, ineq)
			}
		}
		combined := make([]bigseq.Form, 0, len(zero)+len(pos)*len(neg))
		combined = append(combined, zero...)
		for _, pRow := range pos {
			for _, nRow := range neg {
				c := bigseq.Clone(nRow)
				bigseq.EliminateAt(c, pRow, col)
				bigseq.Normalize(c)
				combined = append(combined, c)
			}
		}
		out.Inequalities = combined
	}

	drop := func(forms []bigseq.Form) []bigseq.Form {
		res := make([]bigseq.Form, len(forms))
		for i, f := range forms {
			nf := make(bigseq.Form, 0, len(f)-count)
			nf = append(nf, f[:first+1]...)
			nf = append(nf, f[first+1+count:]...)
			res[i] = nf
		}
		return res
	}
	out.Equalities = drop(out.Equalities)
	out.Inequalities = drop(out.Inequalities)
	out.Dim -= count
	out.Flags &^= FlagNoRedundant | FlagNoImplicit
	return out
}

// Normalize divides every constraint row through by its own gcd,
// mirroring isl_basic_map_normalize's per-row call to isl_seq_normalize.
func (p *Polyhedron) Normalize() *Polyhedron {
	out := p.Clone()
	for _, e := range out.Equalities {
		bigseq.Normalize(e)
	}
	for _, ineq := range out.Inequalities {
		bigseq.Normalize(ineq)
	}
	return out
}

// Simplify runs Gauss reduction, drops exact-duplicate inequality
// rows, and normalizes what remains, mirroring the cheap
// isl_basic_map_simplify pass done before every recursive hull call.
func (p *Polyhedron) Simplify() *Polyhedron {
	out := p.Gauss()
	if out.IsEmpty() {
		return out
	}
	out = out.Normalize()

	seen := make(map[string]bool, len(out.Inequalities))
	kept := out.Inequalities[:0]
	for _, ineq := range out.Inequalities {
		key := bigseq.LinearKey(ineq) + "|" + ineq[0].String()
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, ineq)
	}
	out.Inequalities = kept
	return out
}

// IsBounded reports whether p's recession cone contains only the
// origin, i.e. whether p is bounded, mirroring
// isl_basic_set_is_bounded.
func (p *Polyhedron) IsBounded() (bool, error) {
	if p.IsEmpty() {
		return true, nil
	}
	tab := simplex.FromConstraints(p.Dim, p.Equalities, p.Inequalities)
	cone := simplex.FromRecessionCone(tab)
	return cone.ConeIsBounded()
}
