package hull

import (
	"math/big"
	"testing"

	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

// point is a rational vector, one entry per set-dimension, used to
// probe containment in the property tests below.
type point []*big.Rat

func pt(vals ...int64) point {
	p := make(point, len(vals))
	for i, v := range vals {
		p[i] = big.NewRat(v, 1)
	}
	return p
}

// evalRow computes c0 + sum(ci*xi) for a constraint row against p.
func evalRow(row bigseq.Form, p point) *big.Rat {
	sum := new(big.Rat).SetInt(row[0])
	for i, x := range p {
		term := new(big.Rat).Mul(new(big.Rat).SetInt(row[i+1]), x)
		sum.Add(sum, term)
	}
	return sum
}

// contains reports whether p satisfies every constraint of h.
func contains(h *polytope.Polyhedron, p point) bool {
	for _, e := range h.Equalities {
		if evalRow(e, p).Sign() != 0 {
			return false
		}
	}
	for _, ineq := range h.Inequalities {
		if evalRow(ineq, p).Sign() < 0 {
			return false
		}
	}
	return true
}

// normalizedRowSet returns a canonical string for each row (scaled to
// primitive form, sign-fixed on its first nonzero linear coefficient),
// as a set, for order-independent constraint comparison.
func normalizedRowSet(rows []bigseq.Form) map[string]bool {
	out := make(map[string]bool, len(rows))
	for _, r := range rows {
		c := bigseq.Clone(r)
		bigseq.Normalize(c)
		if pos := bigseq.FirstNonZero(c, 1); pos != -1 && c[pos].Sign() < 0 {
			c = bigseq.Negate(c)
		}
		var b []byte
		for _, v := range c {
			b = append(b, []byte(v.String()+",")...)
		}
		out[string(b)] = true
	}
	return out
}

// requireSameInequalities asserts that got and want name the same set
// of inequalities up to ordering and positive rescaling.
func requireSameInequalities(t *testing.T, want, got []bigseq.Form) {
	t.Helper()
	require.Equal(t, normalizedRowSet(want), normalizedRowSet(got))
}
