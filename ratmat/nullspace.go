package ratmat

import "math/big"

// NullSpace returns a basis (one basis vector per row) for the right
// null space of m: every returned row v satisfies m*v = 0, and the
// rows together span the full solution space. Used by AffineReduce's
// affine-hull merging, where the combined equality set of a union is
// the intersection of each member's equality row space, itself found
// as a null space of a stacked coefficient matrix — the same
// Gauss-Jordan elimination isl_mat routines use throughout
// isl_convex_hull.c's coordinate-transform bookkeeping.
func NullSpace(m Matrix) Matrix {
	work := Clone(m)
	pivotOfCol := make([]int, work.Cols)
	for i := range pivotOfCol {
		pivotOfCol[i] = -1
	}

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
		pivotOfCol[col] = row
		row++
	}

	var basisRows [][]*big.Rat
	for freeCol := 0; freeCol < work.Cols; freeCol++ {
		if pivotOfCol[freeCol] != -1 {
			continue
		}
		v := make([]*big.Rat, work.Cols)
		for i := range v {
			v[i] = new(big.Rat)
		}
		v[freeCol].SetInt64(1)
		for col := 0; col < work.Cols; col++ {
			r := pivotOfCol[col]
			if r == -1 {
				continue
			}
			v[col].Neg(work.Data[r][freeCol])
		}
		basisRows = append(basisRows, v)
	}

	out := New(len(basisRows), work.Cols)
	for i, v := range basisRows {
		out.Data[i] = v
	}
	return out
}
