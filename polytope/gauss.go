package polytope

import (
	"github.com/schqiushui/isl/internal/bigseq"
)

// Gauss reduces the equality block to echelon form (ascending pivot
// column) and uses each pivot to eliminate that column from every
// other equality and every inequality, mirroring
// isl_basic_map_gauss. It returns a new Polyhedron; the receiver is
// left untouched.
//
// If two equalities combine to a manifestly inconsistent row (all
// coefficients zero but a non-zero constant), the result is the empty
// polyhedron.
func (p *Polyhedron) Gauss() *Polyhedron {
	out := p.Clone()
	if out.IsEmpty() || len(out.Equalities) == 0 {
		return out
	}

	eqs := out.Equalities
	pivotCol := 0
	row := 0
	for row < len(eqs) && pivotCol < out.Dim {
		// find a row at or after `row` with a non-zero entry at pivotCol+1
		best := -1
		for r := row; r < len(eqs); r++ {
			if eqs[r][pivotCol+1].Sign() != 0 {
				best = r
				break
			}
		}
		if best == -1 {
			pivotCol++
			continue
		}
		eqs[row], eqs[best] = eqs[best], eqs[row]
		bigseq.Normalize(eqs[row])
		if eqs[row][pivotCol+1].Sign() < 0 {
			bigseq.NegateInPlace(eqs[row])
		}

		for r := 0; r < len(eqs); r++ {
			if r == row || eqs[r][pivotCol+1].Sign() == 0 {
				continue
			}
			bigseq.EliminateAt(eqs[r], eqs[row], pivotCol+1)
			bigseq.Normalize(eqs[r])
			if bigseq.IsZero(eqs[r], 0) {
				// 0 = 0, drop degenerate row later
			}
		}
		for _, ineq := range out.Inequalities {
			if ineq[pivotCol+1].Sign() == 0 {
				continue
			}
			bigseq.EliminateAt(ineq, eqs[row], pivotCol+1)
			bigseq.Normalize(ineq)
		}
		row++
		pivotCol++
	}

	// Drop any equality row that became identically zero, and detect
	// manifest inconsistency (0 = nonzero constant).
	kept := eqs[:0]
	for _, e := range eqs {
		if bigseq.IsZero(e, 1) {
			if e[0].Sign() != 0 {
				out.SetToEmpty()
				return out
			}
			continue // 0 = 0, redundant
		}
		kept = append(kept, e)
	}
	out.Equalities = kept
	return out
}
