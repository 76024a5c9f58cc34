package simplex

import "math/big"

// solveStandardForm minimizes c^T x subject to A x = b, x >= 0, using
// a two-phase primal simplex with exact big.Rat pivots and Bland's
// rule (smallest-index entering/leaving variable) to guarantee
// termination without cycling despite degenerate exact arithmetic.
//
// A is m x n, b has length m, c has length n. Returns the classified
// Result, the optimal value (only meaningful when Ok), and the
// optimal x (only meaningful when Ok).
func solveStandardForm(a [][]*big.Rat, b []*big.Rat, c []*big.Rat) (Result, *big.Rat, []*big.Rat, error) {
	m := len(a)
	if m == 0 {
		// No constraints: bounded iff c is all zero.
		allZero := true
		for _, ci := range c {
			if ci.Sign() != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return Ok, new(big.Rat), make([]*big.Rat, len(c)), nil
		}
		return Unbounded, nil, nil, nil
	}
	n := len(a[0])

	// Normalize every row to non-negative RHS.
	rows := make([][]*big.Rat, m)
	rhs := make([]*big.Rat, m)
	for i := 0; i < m; i++ {
		row := make([]*big.Rat, n)
		for j := 0; j < n; j++ {
			row[j] = new(big.Rat).Set(a[i][j])
		}
		rv := new(big.Rat).Set(b[i])
		if rv.Sign() < 0 {
			rv.Neg(rv)
			for j := range row {
				row[j].Neg(row[j])
			}
		}
		rows[i] = row
		rhs[i] = rv
	}

	// Phase 1: append one artificial variable per row, minimize their sum.
	total := n + m
	tab := make([][]*big.Rat, m)
	for i := 0; i < m; i++ {
		r := make([]*big.Rat, total+1) // +1 for RHS column
		for j := 0; j < n; j++ {
			r[j] = new(big.Rat).Set(rows[i][j])
		}
		for j := n; j < total; j++ {
			r[j] = new(big.Rat)
		}
		r[n+i] = big.NewRat(1, 1)
		r[total] = new(big.Rat).Set(rhs[i])
		tab[i] = r
	}
	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	phase1Cost := make([]*big.Rat, total)
	for j := 0; j < total; j++ {
		if j >= n {
			phase1Cost[j] = big.NewRat(1, 1)
		} else {
			phase1Cost[j] = new(big.Rat)
		}
	}
	if err := pivotToOptimum(tab, basis, phase1Cost, total); err != nil {
		return Error, nil, nil, err
	}
	phase1Obj := rowObjective(tab, basis, phase1Cost, total)
	if phase1Obj.Sign() > 0 {
		return Empty, nil, nil, nil
	}

	// Drive any remaining artificial out of the basis (degenerate zero row).
	for i, bi := range basis {
		if bi < n {
			continue
		}
		pivoted := false
		for j := 0; j < n; j++ {
			if tab[i][j].Sign() != 0 {
				doPivot(tab, i, j)
				basis[i] = j
				pivoted = true
				break
			}
		}
		_ = pivoted // if the row cannot pivot into a real column it is a redundant row; leave as is
	}

	// Phase 2: minimize the real objective over columns 0..n-1, ignoring
	// artificial columns (fix their effective cost to 0 but they are no
	// longer eligible to re-enter since phase 1 drove them to 0 and we
	// simply never select them preferentially; to keep them out for
	// good we zero every artificial column out of future pivots by
	// excluding indices >= n from the entering-variable search).
	phase2Cost := make([]*big.Rat, total)
	for j := 0; j < n; j++ {
		phase2Cost[j] = new(big.Rat).Set(c[j])
	}
	for j := n; j < total; j++ {
		phase2Cost[j] = new(big.Rat)
	}
	result, err := pivotToOptimumBounded(tab, basis, phase2Cost, n)
	if err != nil {
		return Error, nil, nil, err
	}
	if result == Unbounded {
		return Unbounded, nil, nil, nil
	}

	obj := rowObjective(tab, basis, phase2Cost, total)
	x := make([]*big.Rat, n)
	for j := range x {
		x[j] = new(big.Rat)
	}
	for i, bi := range basis {
		if bi < n {
			x[bi].Set(tab[i][total])
		}
	}
	return Ok, obj, x, nil
}

// pivotToOptimum runs simplex pivots (Bland's rule, full column range)
// until no improving column remains.
func pivotToOptimum(tab [][]*big.Rat, basis []int, cost []*big.Rat, ncols int) error {
	_, err := pivotToOptimumBounded(tab, basis, cost, ncols)
	return err
}

// pivotToOptimumBounded runs simplex pivots considering only entering
// columns in [0, limit), used in phase 2 to permanently exclude
// artificial columns from re-entering the basis.
func pivotToOptimumBounded(tab [][]*big.Rat, basis []int, cost []*big.Rat, limit int) (Result, error) {
	m := len(tab)
	total := len(cost)
	rhsCol := total

	for iter := 0; ; iter++ {
		if iter > 10000*(m+1) {
			return Error, ErrInvariant
		}
		zBasisCost := make([]*big.Rat, m)
		for i, bi := range basis {
			zBasisCost[i] = cost[bi]
		}
		entering := -1
		for j := 0; j < limit; j++ {
			isBasic := false
			for _, bi := range basis {
				if bi == j {
					isBasic = true
					break
				}
			}
			if isBasic {
				continue
			}
			z := new(big.Rat)
			for i := 0; i < m; i++ {
				t := new(big.Rat).Mul(zBasisCost[i], tab[i][j])
				z.Add(z, t)
			}
			rc := new(big.Rat).Sub(cost[j], z)
			if rc.Sign() < 0 && entering == -1 {
				entering = j
			}
		}
		if entering == -1 {
			return Ok, nil
		}

		leaving := -1
		var bestRatio *big.Rat
		for i := 0; i < m; i++ {
			if tab[i][entering].Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(tab[i][rhsCol], tab[i][entering])
			if bestRatio == nil || ratio.Cmp(bestRatio) < 0 ||
				(ratio.Cmp(bestRatio) == 0 && leaving != -1 && basis[i] < basis[leaving]) {
				bestRatio = ratio
				leaving = i
			}
		}
		if leaving == -1 {
			return Unbounded, nil
		}
		doPivot(tab, leaving, entering)
		basis[leaving] = entering
	}
}

// doPivot performs a Gauss-Jordan pivot on tab at (row, col), making
// column col a unit vector with a 1 in row.
func doPivot(tab [][]*big.Rat, row, col int) {
	pivotVal := new(big.Rat).Set(tab[row][col])
	inv := new(big.Rat).Inv(pivotVal)
	for j := range tab[row] {
		tab[row][j].Mul(tab[row][j], inv)
	}
	for i := range tab {
		if i == row {
			continue
		}
		factor := new(big.Rat).Set(tab[i][col])
		if factor.Sign() == 0 {
			continue
		}
		for j := range tab[i] {
			t := new(big.Rat).Mul(factor, tab[row][j])
			tab[i][j].Sub(tab[i][j], t)
		}
	}
}

// rowObjective computes the current objective value c^T x from the
// tableau's RHS column and basis.
func rowObjective(tab [][]*big.Rat, basis []int, cost []*big.Rat, total int) *big.Rat {
	obj := new(big.Rat)
	for i, bi := range basis {
		t := new(big.Rat).Mul(cost[bi], tab[i][total])
		obj.Add(obj, t)
	}
	return obj
}
