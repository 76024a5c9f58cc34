package bigseq

import (
	"math/big"
	"strings"
)

// Form is an affine form c0 + c1*x1 + ... + cn*xn stored as
// [c0, c1, ..., cn]. Len() is always 1 + (number of dimensions).
type Form []*big.Int

// Zero returns a new Form of the given total length (1+dim) with
// every entry set to 0.
func Zero(length int) Form {
	f := make(Form, length)
	for i := range f {
		f[i] = new(big.Int)
	}
	return f
}

// New builds a Form from int64 coefficients, constant first.
func New(vals ...int64) Form {
	f := make(Form, len(vals))
	for i, v := range vals {
		f[i] = big.NewInt(v)
	}
	return f
}

// Clone returns a deep copy of f.
func Clone(f Form) Form {
	out := make(Form, len(f))
	for i, c := range f {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// CopyInto copies src into dst. dst and src must have equal length.
func CopyInto(dst, src Form) {
	for i := range src {
		dst[i].Set(src[i])
	}
}

// Negate returns a new Form equal to -f.
func Negate(f Form) Form {
	out := make(Form, len(f))
	for i, c := range f {
		out[i] = new(big.Int).Neg(c)
	}
	return out
}

// NegateInPlace negates every entry of f.
func NegateInPlace(f Form) {
	for _, c := range f {
		c.Neg(c)
	}
}

// Scale returns a new Form equal to factor*f.
func Scale(f Form, factor *big.Int) Form {
	out := make(Form, len(f))
	for i, c := range f {
		out[i] = new(big.Int).Mul(c, factor)
	}
	return out
}

// ScaleInPlace multiplies every entry of f by factor.
func ScaleInPlace(f Form, factor *big.Int) {
	for _, c := range f {
		c.Mul(c, factor)
	}
}

// Combine returns n1*f1 + n2*f2. f1 and f2 must have equal length.
func Combine(n1 *big.Int, f1 Form, n2 *big.Int, f2 Form) Form {
	out := make(Form, len(f1))
	tmp := new(big.Int)
	for i := range f1 {
		out[i] = new(big.Int).Mul(n1, f1[i])
		tmp.Mul(n2, f2[i])
		out[i].Add(out[i], tmp)
	}
	return out
}

// CombineInto writes n1*f1 + n2*f2 into dst.
func CombineInto(dst Form, n1 *big.Int, f1 Form, n2 *big.Int, f2 Form) {
	tmp := new(big.Int)
	for i := range dst {
		dst[i].Mul(n1, f1[i])
		tmp.Mul(n2, f2[i])
		dst[i].Add(dst[i], tmp)
	}
}

// Eq reports whether a and b are identical, entry for entry.
func Eq(a, b Form) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// IsNeg reports whether a == -b, entry for entry.
func IsNeg(a, b Form) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Sign() != -b[i].Sign() && a[i].Sign() != 0 {
			return false
		}
		t := new(big.Int).Neg(b[i])
		if a[i].Cmp(t) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry of f (from index `from` onward)
// is zero.
func IsZero(f Form, from int) bool {
	for i := from; i < len(f); i++ {
		if f[i].Sign() != 0 {
			return false
		}
	}
	return true
}

// FirstNonZero returns the first index >= from whose entry is
// nonzero, or -1 if none exists.
func FirstNonZero(f Form, from int) int {
	for i := from; i < len(f); i++ {
		if f[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// EliminateAt eliminates dst's entry at position pos using src, whose
// entry at pos must be nonzero:
//
//	dst <- src[pos]*dst - dst[pos]*src
//
// This is the Gauss/Fourier-Motzkin elimination step (isl_seq_elim).
// The result is not automatically normalized by gcd; callers that
// need a canonical row call Normalize afterwards.
func EliminateAt(dst, src Form, pos int) {
	a := new(big.Int).Set(src[pos])
	b := new(big.Int).Set(dst[pos])
	CombineInto(dst, a, dst, new(big.Int).Neg(b), src)
}

// GCDAll returns the (non-negative) GCD of every entry in f, or nil
// if f is entirely zero.
func GCDAll(f Form) *big.Int {
	g := new(big.Int)
	for _, c := range f {
		if c.Sign() == 0 {
			continue
		}
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
	}
	if g.Sign() == 0 {
		return nil
	}
	return g
}

// Normalize divides every entry of f by the GCD of all entries,
// leaving f unchanged if it is entirely zero.
func Normalize(f Form) {
	g := GCDAll(f)
	if g == nil || g.Cmp(big.NewInt(1)) == 0 {
		return
	}
	for _, c := range f {
		c.Div(c, g)
	}
}

// LinearKey returns an exact, sign-sensitive canonical string of the
// linear part (entries 1..n, constant excluded), suitable as a Go map
// key. Equal linear parts (same sign, same coefficients) produce equal
// keys; c and -c produce different keys. Used by ConstraintMultiSet in
// ProtoHull, which must not fold a constraint together with its
// negation.
func LinearKey(f Form) string {
	var b strings.Builder
	for _, c := range f[1:] {
		b.WriteString(c.String())
		b.WriteByte(',')
	}
	return b.String()
}

// SignKey returns a canonical string of the linear part that is
// invariant under negation (c and -c produce the same key), along
// with whether f had to be negated to reach the canonical form. The
// canonical form is the one whose first nonzero coefficient is
// positive. Used by IneqTable in SimpleHull, where "h" and "-h" name
// the same hyperplane.
func SignKey(f Form) (key string, negated bool) {
	pos := FirstNonZero(f, 1)
	if pos == -1 {
		return LinearKey(f), false
	}
	if f[pos].Sign() < 0 {
		return LinearKey(Negate(f)), true
	}
	return LinearKey(f), false
}
