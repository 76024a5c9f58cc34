package polytope

import (
	"github.com/schqiushui/isl/internal/bigseq"
)

// Flag is a bitset of the redundancy/implicit-equality/rational/empty
// markers a Polyhedron carries, mirroring isl_basic_map's ISL_BASIC_MAP_*
// flags consulted throughout isl_convex_hull.c.
type Flag uint8

const (
	// FlagRational marks the polyhedron as a real relaxation (true)
	// rather than restricted to the integer lattice (false).
	FlagRational Flag = 1 << iota
	// FlagEmpty marks the polyhedron's feasible region as empty; when
	// set, Equalities and Inequalities are cleared.
	FlagEmpty
	// FlagNoRedundant records that SingleHull has already pruned every
	// redundant inequality.
	FlagNoRedundant
	// FlagNoImplicit records that no inequality can be promoted to an
	// implicit equality (Tab.DetectEqualities would find nothing new).
	FlagNoImplicit
)

// Has reports whether every bit in want is set in f.
func (f Flag) Has(want Flag) bool { return f&want == want }

// Polyhedron is a conjunction of affine equalities (`= 0`) and
// inequalities (`>= 0`) over a shared ambient dimension, optionally
// extended with existentially quantified "div" auxiliary dimensions
// that this kernel treats as ordinary dimensions.
//
// Polyhedra are immutable by convention: every mutating helper in this
// package either operates on a private (unshared) value or returns a
// fresh copy. Owners that alias a *Polyhedron must call Clone before
// any in-place mutation — the copy-on-write discipline described in
// the kernel's concurrency model.
type Polyhedron struct {
	Dim  int
	Divs int

	Equalities   []bigseq.Form
	Inequalities []bigseq.Form

	Flags Flag
}

// Option configures a Polyhedron at construction time, following the
// teacher's GraphOption pattern.
type Option func(*Polyhedron)

// WithRational marks the polyhedron as a rational relaxation.
func WithRational() Option {
	return func(p *Polyhedron) { p.Flags |= FlagRational }
}

// WithDivs sets the number of existential "div" dimensions already
// folded into Dim.
func WithDivs(n int) Option {
	return func(p *Polyhedron) { p.Divs = n }
}

// WithEqualities seeds the equality block.
func WithEqualities(eqs ...bigseq.Form) Option {
	return func(p *Polyhedron) { p.Equalities = append(p.Equalities, cloneForms(eqs)...) }
}

// WithInequalities seeds the inequality block.
func WithInequalities(ineqs ...bigseq.Form) Option {
	return func(p *Polyhedron) { p.Inequalities = append(p.Inequalities, cloneForms(ineqs)...) }
}

// New allocates a Polyhedron of ambient dimension dim (not counting
// the constant column), applying opts in order.
func New(dim int, opts ...Option) *Polyhedron {
	p := &Polyhedron{Dim: dim}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Universe returns the polyhedron with no constraints at all: all of
// Q^dim.
func Universe(dim int) *Polyhedron {
	return New(dim)
}

// Empty returns the canonical empty polyhedron of ambient dimension dim.
func Empty(dim int) *Polyhedron {
	return New(dim, func(p *Polyhedron) { p.Flags |= FlagEmpty })
}

// IsEmpty reports the empty flag.
func (p *Polyhedron) IsEmpty() bool { return p.Flags.Has(FlagEmpty) }

// IsRational reports the rational flag.
func (p *Polyhedron) IsRational() bool { return p.Flags.Has(FlagRational) }

// SetToEmpty clears the constraint lists and sets the empty flag,
// mirroring isl_basic_map_set_to_empty.
func (p *Polyhedron) SetToEmpty() {
	p.Equalities = nil
	p.Inequalities = nil
	p.Flags |= FlagEmpty
	p.Flags &^= FlagNoRedundant | FlagNoImplicit
}

// SetRational sets the rational flag in place, matching
// isl_basic_set_set_rational.
func (p *Polyhedron) SetRational() { p.Flags |= FlagRational }

// Clone returns a deep, independent copy of p safe to mutate, the
// copy-on-write escape hatch every mutator in this package uses
// before writing to a possibly-shared Polyhedron.
func (p *Polyhedron) Clone() *Polyhedron {
	return &Polyhedron{
		Dim:          p.Dim,
		Divs:         p.Divs,
		Equalities:   cloneForms(p.Equalities),
		Inequalities: cloneForms(p.Inequalities),
		Flags:        p.Flags,
	}
}

// AllocEquality appends a fresh zero equality row (length Dim+1) and
// returns it for the caller to fill in, mirroring
// isl_basic_map_alloc_equality.
func (p *Polyhedron) AllocEquality() bigseq.Form {
	row := bigseq.Zero(p.Dim + 1)
	p.Equalities = append(p.Equalities, row)
	p.Flags &^= FlagNoRedundant | FlagNoImplicit
	return row
}

// AllocInequality appends a fresh zero inequality row and returns it
// for the caller to fill in, mirroring isl_basic_map_alloc_inequality.
func (p *Polyhedron) AllocInequality() bigseq.Form {
	row := bigseq.Zero(p.Dim + 1)
	p.Inequalities = append(p.Inequalities, row)
	p.Flags &^= FlagNoRedundant | FlagNoImplicit
	return row
}

func cloneForms(forms []bigseq.Form) []bigseq.Form {
	if forms == nil {
		return nil
	}
	out := make([]bigseq.Form, len(forms))
	for i, f := range forms {
		out[i] = bigseq.Clone(f)
	}
	return out
}
