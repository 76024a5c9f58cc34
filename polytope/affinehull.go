package polytope

import (
	"math/big"

	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/ratmat"
	"github.com/schqiushui/isl/simplex"
)

// AffineHull computes the smallest affine subspace containing every
// point of every non-empty member of s, returned as a Polyhedron
// carrying only that equality block (no inequalities). This is the
// `affine_hull` Polyhedron primitive spec.md §6 lists as a collaborator
// of AffineReduce (§4.10).
//
// Per member, implicit equalities are first promoted via the exact
// tableau (mirroring isl_tab_detect_implicit_equalities), since a
// member's own Equalities list may not yet capture every tight
// inequality. The affine hulls of the individual members are then
// combined pairwise: the equality row space of aff(A ∪ B) is exactly
// the intersection of A's and B's equality row spaces (a linear form
// is an equality of the union iff it vanishes identically on both
// halves), computed as a null space of a stacked coefficient matrix.
func AffineHull(s *Set) (*Polyhedron, error) {
	members := s.NonEmptyMembers()
	if len(members) == 0 {
		return Empty(s.Dim), nil
	}

	combined, err := memberAffineHull(members[0])
	if err != nil {
		return nil, err
	}
	for _, m := range members[1:] {
		next, err := memberAffineHull(m)
		if err != nil {
			return nil, err
		}
		combined = intersectRowSpaces(s.Dim, combined, next)
	}

	out := New(s.Dim, WithEqualities(combined...))
	return out.Gauss(), nil
}

// memberAffineHull promotes implicit equalities of p via the exact
// tableau and returns the resulting (Gauss-reduced) equality block.
func memberAffineHull(p *Polyhedron) ([]bigseq.Form, error) {
	if len(p.Inequalities) == 0 {
		return p.Gauss().Equalities, nil
	}
	tab := simplex.FromConstraints(p.Dim, p.Equalities, p.Inequalities)
	detected, err := tab.DetectEqualities()
	if err != nil {
		return nil, err
	}
	promoted := New(p.Dim, WithEqualities(detected.Eqs...))
	return promoted.Gauss().Equalities, nil
}

// intersectRowSpaces returns a basis for the intersection of the row
// spaces spanned by a and b (each a list of dim+1-length forms).
func intersectRowSpaces(dim int, a, b []bigseq.Form) []bigseq.Form {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	width := dim + 1
	stacked := ratmat.New(width, len(a)+len(b))
	for j, row := range a {
		for r := 0; r < width; r++ {
			stacked.Data[r][j].SetInt(row[r])
		}
	}
	for j, row := range b {
		for r := 0; r < width; r++ {
			stacked.Data[r][len(a)+j].SetInt(row[r])
			stacked.Data[r][len(a)+j].Neg(stacked.Data[r][len(a)+j])
		}
	}

	kernel := ratmat.NullSpace(stacked)
	out := make([]bigseq.Form, 0, kernel.Rows)
	for i := 0; i < kernel.Rows; i++ {
		alpha := kernel.Data[i][:len(a)]
		combo := ratmat.New(1, width)
		for j, coeff := range alpha {
			if coeff.Sign() == 0 {
				continue
			}
			for r := 0; r < width; r++ {
				term := new(big.Rat).Mul(coeff, new(big.Rat).SetInt(a[j][r]))
				combo.Data[0][r].Add(combo.Data[0][r], term)
			}
		}
		row := ratmat.ToForms(combo)[0]
		if !bigseq.IsZero(row, 0) {
			out = append(out, row)
		}
	}
	return out
}
