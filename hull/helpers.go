package hull

import (
	"math/big"

	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/schqiushui/isl/ratmat"
)

// intersectEquality returns a Set equal to s with form additionally
// imposed as an equality (= 0) on every non-empty member, Gauss'd
// immediately so inconsistent members collapse to empty. This is the
// "S ∩ {row = 0}" construction used throughout §4.5/§4.6/§4.10.
func intersectEquality(s *polytope.Set, form bigseq.Form) (*polytope.Set, error) {
	members := s.NonEmptyMembers()
	out := make([]*polytope.Polyhedron, 0, len(members))
	for _, m := range members {
		clone := m.Clone()
		row := clone.AllocEquality()
		bigseq.CopyInto(row, form)
		reduced := clone.Gauss()
		for _, ineq := range reduced.Inequalities {
			if bigseq.IsZero(ineq, 1) && ineq[0].Sign() < 0 {
				reduced.SetToEmpty()
				break
			}
		}
		out = append(out, reduced)
	}
	return polytope.NewSet(s.Dim, out...)
}

// asPolyhedronSet wraps a single Polyhedron in a one-member Set, the
// shape FacetHull/AffineReduce's recursive uset_convex_hull call needs.
func asPolyhedronSet(p *polytope.Polyhedron) (*polytope.Set, error) {
	return polytope.NewSet(p.Dim, p)
}

// rowThroughMatrix computes form*m, the coordinate-change image of a
// single AffineForm under preimage matrix m (c(m*y) = (c*m)*y), the
// same transform Preimage applies to a whole constraint list.
func rowThroughMatrix(form bigseq.Form, m ratmat.Matrix) bigseq.Form {
	rowMat := ratmat.FromForms([]bigseq.Form{form})
	prod, err := ratmat.Product(rowMat, m)
	if err != nil {
		panic(err) // dimension mismatch here is always a programming error
	}
	return ratmat.ToForms(prod)[0]
}

// preimageAll applies polytope.Preimage to every member of members
// under matrix m, returning the transformed Set.
func preimageAll(members []*polytope.Polyhedron, m ratmat.Matrix) (*polytope.Set, error) {
	out := make([]*polytope.Polyhedron, len(members))
	for i, p := range members {
		tp, err := polytope.Preimage(p, m)
		if err != nil {
			return nil, err
		}
		out[i] = tp
	}
	return polytope.NewSet(m.Cols-1, out...)
}

// ineqKey is an exact, sign-sensitive membership key for an
// inequality row (linear part plus constant), used to test whether a
// facet's ridge already appears among another polyhedron's
// inequalities (Extend §4.6).
func ineqKey(f bigseq.Form) string {
	return bigseq.LinearKey(f) + "|" + f[0].String()
}

// containsIneq reports whether forms contains a row with the same
// ineqKey as target.
func containsIneq(forms []bigseq.Form, target bigseq.Form) bool {
	key := ineqKey(target)
	for _, f := range forms {
		if ineqKey(f) == key {
			return true
		}
	}
	return false
}

var one = big.NewInt(1)
