package ratmat

import "math/big"

// RightInverse computes a matrix U (Cols x Rows) such that m*U is the
// Rows x Rows identity. m must have full row rank (Rows <= Cols); any
// right inverse is acceptable here — the convex-hull kernel only
// needs *a* coordinate change that sends m's rows to unit vectors, not
// the minimum-norm one.
//
// The method: run Gauss-Jordan elimination to find a set of Rows
// linearly independent pivot columns, invert the Rows x Rows
// submatrix formed by those columns, and scatter the inverse's rows
// back into the pivot-column rows of U, leaving every other row of U
// zero. Grounded on isl_mat_right_inverse's role in wrap_facet,
// initial_facet_constraint and compute_facet.
func RightInverse(m Matrix) (Matrix, error) {
	work := Clone(m)
	pivotCols := make([]int, 0, m.Rows)

	row := 0
	for col := 0; col < work.Cols && row < work.Rows; col++ {
		pivot := -1
		for r := row; r < work.Rows; r++ {
			if work.Data[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		work.Data[row], work.Data[pivot] = work.Data[pivot], work.Data[row]

		inv := new(big.Rat).Inv(work.Data[row][col])
		for c := 0; c < work.Cols; c++ {
			work.Data[row][c].Mul(work.Data[row][c], inv)
		}
		for r := 0; r < work.Rows; r++ {
			if r == row {
				continue
			}
			factor := new(big.Rat).Set(work.Data[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for c := 0; c < work.Cols; c++ {
				tmp := new(big.Rat).Mul(factor, work.Data[row][c])
				work.Data[r][c].Sub(work.Data[r][c], tmp)
			}
		}
		pivotCols = append(pivotCols, col)
		row++
	}
	if len(pivotCols) != m.Rows {
		return Matrix{}, ErrNotFullRowRank
	}

	basis := New(m.Rows, m.Rows)
	for r := 0; r < m.Rows; r++ {
		for i, col := range pivotCols {
			basis.Data[r][i].Set(m.Data[r][col])
		}
	}
	basisInv, err := invertSquare(basis)
	if err != nil {
		return Matrix{}, err
	}

	u := New(m.Cols, m.Rows)
	for i, col := range pivotCols {
		for k := 0; k < m.Rows; k++ {
			u.Data[col][k].Set(basisInv.Data[i][k])
		}
	}
	return u, nil
}

// invertSquare inverts an n x n matrix via Gauss-Jordan elimination
// with exact rational pivots.
func invertSquare(m Matrix) (Matrix, error) {
	if m.Rows != m.Cols {
		return Matrix{}, ErrDimMismatch
	}
	n := m.Rows
	work := Clone(m)
	inv := Identity(n)

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if work.Data[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return Matrix{}, ErrSingular
		}
		work.Data[col], work.Data[pivot] = work.Data[pivot], work.Data[col]
		inv.Data[col], inv.Data[pivot] = inv.Data[pivot], inv.Data[col]

		scale := new(big.Rat).Inv(work.Data[col][col])
		for c := 0; c < n; c++ {
			work.Data[col][c].Mul(work.Data[col][c], scale)
			inv.Data[col][c].Mul(inv.Data[col][c], scale)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := new(big.Rat).Set(work.Data[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				t1 := new(big.Rat).Mul(factor, work.Data[col][c])
				work.Data[r][c].Sub(work.Data[r][c], t1)
				t2 := new(big.Rat).Mul(factor, inv.Data[col][c])
				inv.Data[r][c].Sub(inv.Data[r][c], t2)
			}
		}
	}
	return inv, nil
}
