package polytope

import (
	"github.com/schqiushui/isl/ratmat"
)

// Preimage applies the coordinate change x = m*y to p, returning the
// polyhedron in the new coordinates y (dimension m.Cols-1). Every
// constraint row c (read as c(x) = c0 + c.x) becomes c*m in the new
// coordinates, since c(m*y) = (c*m)*y. Used by Wrap's and
// InitialFacet's coordinate-transform steps (isl_basic_map_preimage).
func Preimage(p *Polyhedron, m ratmat.Matrix) (*Polyhedron, error) {
	newDim := m.Cols - 1
	out := New(newDim, func(np *Polyhedron) {
		np.Divs = p.Divs
		np.Flags = p.Flags &^ (FlagNoRedundant | FlagNoImplicit)
	})
	if p.IsEmpty() {
		out.SetToEmpty()
		return out, nil
	}

	eqMat := ratmat.FromForms(p.Equalities)
	if eqMat.Rows > 0 {
		prod, err := ratmat.Product(eqMat, m)
		if err != nil {
			return nil, err
		}
		out.Equalities = ratmat.ToForms(prod)
	}
	ineqMat := ratmat.FromForms(p.Inequalities)
	if ineqMat.Rows > 0 {
		prod, err := ratmat.Product(ineqMat, m)
		if err != nil {
			return nil, err
		}
		out.Inequalities = ratmat.ToForms(prod)
	}
	if len(out.Equalities) > 0 {
		out = out.Gauss()
	}
	return out, nil
}
