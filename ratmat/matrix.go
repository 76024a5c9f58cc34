package ratmat

import (
	"math/big"

	"github.com/schqiushui/isl/internal/bigseq"
)

// Matrix is a dense Rows x Cols matrix of exact rationals.
type Matrix struct {
	Data       [][]*big.Rat
	Rows, Cols int
}

// New allocates a Rows x Cols matrix of zeros.
func New(rows, cols int) Matrix {
	data := make([][]*big.Rat, rows)
	for r := range data {
		row := make([]*big.Rat, cols)
		for c := range row {
			row[c] = new(big.Rat)
		}
		data[r] = row
	}
	return Matrix{Data: data, Rows: rows, Cols: cols}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.Data[i][i].SetInt64(1)
	}
	return m
}

// FromForms stacks a slice of equal-length bigseq.Form rows into a
// Matrix of rationals (each entry has denominator 1).
func FromForms(forms []bigseq.Form) Matrix {
	if len(forms) == 0 {
		return Matrix{}
	}
	m := New(len(forms), len(forms[0]))
	for r, f := range forms {
		for c, v := range f {
			m.Data[r][c].SetInt(v)
		}
	}
	return m
}

// ToForms converts each row of m back to an integer bigseq.Form,
// clearing denominators row by row (scaling each row by its own LCM
// of denominators). This never fails: any rational row has some
// integer scaling.
func ToForms(m Matrix) []bigseq.Form {
	out := make([]bigseq.Form, m.Rows)
	for r := 0; r < m.Rows; r++ {
		lcm := big.NewInt(1)
		for c := 0; c < m.Cols; c++ {
			d := m.Data[r][c].Denom()
			lcm = lcmBig(lcm, d)
		}
		row := make(bigseq.Form, m.Cols)
		for c := 0; c < m.Cols; c++ {
			n := new(big.Int).Mul(m.Data[r][c].Num(), new(big.Int).Div(lcm, m.Data[r][c].Denom()))
			row[c] = n
		}
		out[r] = row
	}
	return out
}

func lcmBig(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	out := new(big.Int).Div(a, g)
	out.Mul(out, b)
	return new(big.Int).Abs(out)
}

// Clone returns a deep copy of m.
func Clone(m Matrix) Matrix {
	out := New(m.Rows, m.Cols)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Data[r][c].Set(m.Data[r][c])
		}
	}
	return out
}

// Product returns a*b.
func Product(a, b Matrix) (Matrix, error) {
	if a.Cols != b.Rows {
		return Matrix{}, ErrDimMismatch
	}
	out := New(a.Rows, b.Cols)
	tmp := new(big.Rat)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			sum := out.Data[i][j]
			for k := 0; k < a.Cols; k++ {
				tmp.Mul(a.Data[i][k], b.Data[k][j])
				sum.Add(sum, tmp)
			}
		}
	}
	return out, nil
}

// DropRows returns a copy of m with the `count` rows starting at
// `first` removed.
func DropRows(m Matrix, first, count int) Matrix {
	out := New(m.Rows-count, m.Cols)
	w := 0
	for r := 0; r < m.Rows; r++ {
		if r >= first && r < first+count {
			continue
		}
		for c := 0; c < m.Cols; c++ {
			out.Data[w][c].Set(m.Data[r][c])
		}
		w++
	}
	return out
}

// DropCols returns a copy of m with the `count` columns starting at
// `first` removed.
func DropCols(m Matrix, first, count int) Matrix {
	out := New(m.Rows, m.Cols-count)
	for r := 0; r < m.Rows; r++ {
		w := 0
		for c := 0; c < m.Cols; c++ {
			if c >= first && c < first+count {
				continue
			}
			out.Data[r][w].Set(m.Data[r][c])
			w++
		}
	}
	return out
}

// SubAlloc extracts the rowCount x colCount submatrix starting at
// (rowFirst, colFirst) as a fresh copy.
func SubAlloc(m Matrix, rowFirst, rowCount, colFirst, colCount int) Matrix {
	out := New(rowCount, colCount)
	for r := 0; r < rowCount; r++ {
		for c := 0; c < colCount; c++ {
			out.Data[r][c].Set(m.Data[rowFirst+r][colFirst+c])
		}
	}
	return out
}
