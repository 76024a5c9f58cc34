package simplex

import (
	"math/big"

	"github.com/schqiushui/isl/internal/bigseq"
)

// Tab is the high-level view of a constraint system used throughout
// the hull kernel: a fixed ambient dimension plus a list of equality
// and inequality AffineForms (constant term first, coefficients
// following), mirroring isl_tab's role as the thin wrapper the
// convex-hull code calls solve_lp and redundancy detection through.
type Tab struct {
	Dim   int
	Eqs   []bigseq.Form
	Ineqs []bigseq.Form
}

// FromConstraints builds a Tab directly from equality and inequality
// rows sharing ambient dimension dim (rows have length dim+1).
func FromConstraints(dim int, eqs, ineqs []bigseq.Form) *Tab {
	return &Tab{Dim: dim, Eqs: cloneAll(eqs), Ineqs: cloneAll(ineqs)}
}

// FromRecessionCone builds the homogeneous cone of a Tab: every
// constant term is dropped (set to zero), turning "c0 + c.x >= 0"
// into "c.x >= 0" and likewise for equalities. This is the recession
// cone isl_basic_set_is_bounded studies via isl_basic_map_dim.
func FromRecessionCone(t *Tab) *Tab {
	cone := &Tab{Dim: t.Dim}
	for _, e := range t.Eqs {
		h := bigseq.Clone(e)
		h[0].SetInt64(0)
		cone.Eqs = append(cone.Eqs, h)
	}
	for _, ineq := range t.Ineqs {
		h := bigseq.Clone(ineq)
		h[0].SetInt64(0)
		cone.Ineqs = append(cone.Ineqs, h)
	}
	return cone
}

func cloneAll(forms []bigseq.Form) []bigseq.Form {
	out := make([]bigseq.Form, len(forms))
	for i, f := range forms {
		out[i] = bigseq.Clone(f)
	}
	return out
}

// toStandardForm lowers the Tab's equalities and inequalities, plus an
// objective AffineForm, into the A x = b, x >= 0 shape solveStandardForm
// expects. Ambient variables are unrestricted in sign, so each is split
// into a positive and a negative part; each inequality gets its own
// slack. The returned mapping lets Min/Max recover x_i = xplus_i - xminus_i.
func (t *Tab) toStandardForm(objective bigseq.Form) (a [][]*big.Rat, b []*big.Rat, c []*big.Rat, dim int) {
	dim = t.Dim
	nSlack := len(t.Ineqs)
	// columns: [x+_0..x+_{dim-1}, x-_0..x-_{dim-1}, slack_0..slack_{nSlack-1}]
	ncols := 2*dim + nSlack
	rows := len(t.Eqs) + len(t.Ineqs)
	a = make([][]*big.Rat, rows)
	b = make([]*big.Rat, rows)

	row := 0
	appendRow := func(form bigseq.Form, slackIdx int) {
		r := make([]*big.Rat, ncols)
		for j := range r {
			r[j] = new(big.Rat)
		}
		for i := 0; i < dim; i++ {
			v := new(big.Rat).SetInt(form[i+1])
			r[i].Add(r[i], v)
			r[dim+i].Sub(r[dim+i], v)
		}
		if slackIdx >= 0 {
			r[2*dim+slackIdx].SetInt64(-1)
		}
		a[row] = r
		b[row] = new(big.Rat).SetInt(new(big.Int).Neg(form[0]))
		row++
	}
	for _, e := range t.Eqs {
		appendRow(e, -1)
	}
	for i, ineq := range t.Ineqs {
		appendRow(ineq, i)
	}

	c = make([]*big.Rat, ncols)
	for j := range c {
		c[j] = new(big.Rat)
	}
	for i := 0; i < dim; i++ {
		v := new(big.Rat).SetInt(objective[i+1])
		c[i].Add(c[i], v)
		c[dim+i].Sub(c[dim+i], v)
	}
	return a, b, c, dim
}

// Min minimizes objective (an AffineForm c0 + c.x, constant term
// ignored by the LP itself and added back into the reported value)
// over the Tab's feasible region. The optimum is reported as an exact
// n/d pair in lowest terms, mirroring isl_lp.c's opt_n/opt_d
// convention rather than returning a float.
func (t *Tab) Min(objective bigseq.Form) (Result, *big.Int, *big.Int, error) {
	a, b, c, _ := t.toStandardForm(objective)
	res, obj, _, err := solveStandardForm(a, b, c)
	if err != nil || res != Ok {
		return res, nil, nil, err
	}
	constant := new(big.Rat).SetInt(objective[0])
	obj.Add(obj, constant)
	n := new(big.Int).Set(obj.Num())
	d := new(big.Int).Set(obj.Denom())
	return Ok, n, d, nil
}

// Max minimizes the negated objective and negates the result back,
// following isl_tab's own max-via-min convention.
func (t *Tab) Max(objective bigseq.Form) (Result, *big.Int, *big.Int, error) {
	neg := bigseq.Negate(objective)
	res, n, d, err := t.Min(neg)
	if res == Ok {
		n.Neg(n)
	}
	return res, n, d, err
}

// DetectEqualities finds inequalities that hold with equality
// throughout the feasible region (both >= 0 and <= 0 are implied) and
// promotes them, mirroring isl_basic_map_detect_inequality_pairs and
// the later isl_tab_detect_implicit_equalities pass used before
// wrapping begins. It returns a new Tab; the receiver is untouched.
func (t *Tab) DetectEqualities() (*Tab, error) {
	out := &Tab{Dim: t.Dim, Eqs: cloneAll(t.Eqs)}
	for _, ineq := range t.Ineqs {
		probe := &Tab{Dim: t.Dim, Eqs: t.Eqs, Ineqs: t.Ineqs}
		res, n, _, err := probe.Max(ineq)
		if err != nil {
			return nil, err
		}
		if res == Ok && n.Sign() == 0 {
			dup := false
			for _, e := range out.Eqs {
				if bigseq.Eq(e, ineq) || bigseq.IsNeg(e, ineq) {
					dup = true
					break
				}
			}
			if !dup {
				out.Eqs = append(out.Eqs, bigseq.Clone(ineq))
			}
			continue
		}
		out.Ineqs = append(out.Ineqs, bigseq.Clone(ineq))
	}
	return out, nil
}

// DetectRedundant drops every inequality whose removal does not
// change the feasible region, i.e. minimizing it over the rest of the
// system still yields >= 0, matching
// isl_basic_map_constraint_is_redundant's role inside proto_hull and
// common_constraints.
func (t *Tab) DetectRedundant() (*Tab, error) {
	keep := make([]bigseq.Form, 0, len(t.Ineqs))
	for i, ineq := range t.Ineqs {
		rest := make([]bigseq.Form, 0, len(t.Ineqs)-1)
		rest = append(rest, keep...)
		rest = append(rest, t.Ineqs[i+1:]...)
		probe := &Tab{Dim: t.Dim, Eqs: t.Eqs, Ineqs: rest}
		res, n, d, err := probe.Min(ineq)
		if err != nil {
			return nil, err
		}
		if res == Ok && n.Sign() >= 0 && d.Sign() != 0 {
			continue // redundant: minimum over the rest is already >= 0
		}
		keep = append(keep, ineq)
	}
	return &Tab{Dim: t.Dim, Eqs: cloneAll(t.Eqs), Ineqs: keep}, nil
}

// ConeIsBounded reports whether the Tab, interpreted as a homogeneous
// recession cone (see FromRecessionCone), contains only the origin.
// It tests boundedness along every coordinate axis in both
// directions, following isl_basic_set_is_bounded's
// "bounded iff every direction is bounded" argument specialized to
// the 2*dim standard basis directions, which suffices for a cone.
func (t *Tab) ConeIsBounded() (bool, error) {
	for i := 0; i < t.Dim; i++ {
		for _, sign := range []int64{1, -1} {
			obj := bigseq.Zero(t.Dim + 1)
			obj[i+1] = big.NewInt(sign)
			res, _, _, err := t.Min(obj)
			if err != nil {
				return false, err
			}
			if res == Unbounded {
				return false, nil
			}
			if res == Error {
				return false, ErrInvariant
			}
		}
	}
	return true, nil
}

// SolveLP is the package-level convenience entry point matching the
// kernel's solve_lp(P, objective) call sites: build a Tab from the
// given constraints and minimize objective over it directly.
func SolveLP(dim int, eqs, ineqs []bigseq.Form, objective bigseq.Form) (Result, *big.Int, *big.Int, error) {
	t := FromConstraints(dim, eqs, ineqs)
	return t.Min(objective)
}
