package polytope

import (
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/ratmat"
)

// RemoveEqualities computes a pair of coordinate-change matrices
// (down, up) that eliminate p's equality block, mirroring
// isl_basic_map_remove_equalities and the "project out the
// equalities... via right-inverse" step of InitialFacet (§4.5) and
// AffineReduce (§4.10).
//
// down has shape (Dim+1) x (Dim-k+1): Preimage(p, down) yields p's
// full-dimensional reduction (the equalities become literally absent,
// not merely zeroed). up has shape (Dim-k+1) x (Dim+1): Preimage of a
// polyhedron expressed in the reduced coordinates, applied with up,
// lifts it back into the original Dim-dimensional space. k is the
// number of equalities removed.
//
// Construction: stack e0=(1,0,...,0) on top of p's equalities E and
// take the combined matrix's right inverse U (columns 0..k map the
// homogeneous direction and each equality to a unit vector) together
// with a basis N of its null space (the directions left free by every
// equality). full = [U | N] is square and invertible; down keeps
// column 0 (the homogeneous direction) and the N-block (drops the k
// equality-pinned columns); up is full's inverse with the same k
// pinned rows dropped.
func RemoveEqualities(p *Polyhedron) (down, up ratmat.Matrix, k int, err error) {
	dim := p.Dim
	k = len(p.Equalities)
	if k == 0 {
		id := ratmat.Identity(dim + 1)
		return id, id, 0, nil
	}

	e0 := bigseq.Zero(dim + 1)
	e0[0].SetInt64(1)
	stackedForms := append([]bigseq.Form{e0}, p.Equalities...)
	stacked := ratmat.FromForms(stackedForms) // (k+1) x (dim+1)

	u, err := ratmat.RightInverse(stacked) // (dim+1) x (k+1)
	if err != nil {
		return ratmat.Matrix{}, ratmat.Matrix{}, 0, err
	}
	nullBasis := ratmat.NullSpace(stacked) // rows: (dim-k) x (dim+1)
	n := ratmat.New(dim+1, nullBasis.Rows)
	for j := 0; j < nullBasis.Rows; j++ {
		for r := 0; r <= dim; r++ {
			n.Data[r][j].Set(nullBasis.Data[j][r])
		}
	}

	full, err := ratmat.HStack(u, n) // (dim+1) x (dim+1)
	if err != nil {
		return ratmat.Matrix{}, ratmat.Matrix{}, 0, err
	}
	down = ratmat.DropCols(full, 1, k)

	fullInv, err := ratmat.Invert(full)
	if err != nil {
		return ratmat.Matrix{}, ratmat.Matrix{}, 0, err
	}
	up = ratmat.DropRows(fullInv, 1, k)
	return down, up, k, nil
}
