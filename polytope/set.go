package polytope

// Set is an ordered union of Polyhedra sharing an ambient dimension
// and div count — the set-theoretic union of its members, following
// the teacher's habit of threading a single shared structure (its
// *core.Graph) through every algorithm package rather than re-deriving
// shared state per call.
type Set struct {
	Dim     int
	Divs    int
	Members []*Polyhedron
}

// NewSet builds a Set from members that must already share dim/divs.
// Returns ErrDimMismatch if any member disagrees.
func NewSet(dim int, members ...*Polyhedron) (*Set, error) {
	s := &Set{Dim: dim}
	for _, m := range members {
		if m.Dim != dim {
			return nil, ErrDimMismatch
		}
		if m.Divs > s.Divs {
			s.Divs = m.Divs
		}
		s.Members = append(s.Members, m)
	}
	return s, nil
}

// Clone deep-copies every member.
func (s *Set) Clone() *Set {
	out := &Set{Dim: s.Dim, Divs: s.Divs, Members: make([]*Polyhedron, len(s.Members))}
	for i, m := range s.Members {
		out.Members[i] = m.Clone()
	}
	return out
}

// NonEmptyMembers returns the members whose empty flag is not set,
// the view every hull algorithm iterates over (emptiness is filtered
// locally, never surfaced as an error).
func (s *Set) NonEmptyMembers() []*Polyhedron {
	out := make([]*Polyhedron, 0, len(s.Members))
	for _, m := range s.Members {
		if !m.IsEmpty() {
			out = append(out, m)
		}
	}
	return out
}

// IsEmpty reports whether every member is empty (the union itself
// denotes the empty set).
func (s *Set) IsEmpty() bool {
	return len(s.NonEmptyMembers()) == 0
}

// IsBounded reports whether every non-empty member is bounded,
// matching uset_is_bound's recession-cone test applied to an entire
// union (used by the dispatcher to route between the wrapping-based
// hull and ElimHull's unbounded fallback).
func (s *Set) IsBounded() (bool, error) {
	for _, m := range s.NonEmptyMembers() {
		bounded, err := m.IsBounded()
		if err != nil {
			return false, err
		}
		if !bounded {
			return false, nil
		}
	}
	return true, nil
}

// Map wraps a Set with the "divs aligned across members" bookkeeping
// map_convex_hull/map_simple_hull require before delegating to the
// set-level routine: isl_map_align_divs in the original collapses
// every member onto a common div count and ordering before the
// underlying isl_set routine runs.
type Map struct {
	*Set
	// InDim/OutDim split Set.Dim into input and output components of
	// the original relation; the hull kernel itself only ever sees the
	// flattened Set.Dim = InDim + OutDim space.
	InDim, OutDim int
}

// NewMap builds a Map over a set of dimension inDim+outDim.
func NewMap(inDim, outDim int, members ...*Polyhedron) (*Map, error) {
	s, err := NewSet(inDim+outDim, members...)
	if err != nil {
		return nil, err
	}
	return &Map{Set: s, InDim: inDim, OutDim: outDim}, nil
}

// AlignDivs raises every member's Divs count to the largest count among
// the Set and its members, mirroring isl_map_align_divs. Only the
// counts change: no member gains dimensions, and Dim and the
// constraint rows are left as they were.
func (m *Map) AlignDivs() *Map {
	maxDivs := m.Divs
	for _, mem := range m.Members {
		if mem.Divs > maxDivs {
			maxDivs = mem.Divs
		}
	}
	out := m.Clone()
	for _, mem := range out.Members {
		if mem.Divs < maxDivs {
			mem.Divs = maxDivs
		}
	}
	return &Map{Set: out, InDim: m.InDim, OutDim: m.OutDim}
}
