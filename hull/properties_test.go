package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

// fixtureUnion returns the two-square union from scenario 3, reused
// across several of the universal-invariant checks below.
func fixtureUnion(t *testing.T) *polytope.Set {
	t.Helper()
	square := func(lo, hi int64) *polytope.Polyhedron {
		return polytope.New(2, polytope.WithInequalities(
			bigseq.New(-lo, 1, 0),
			bigseq.New(hi, -1, 0),
			bigseq.New(-lo, 0, 1),
			bigseq.New(hi, 0, -1),
		))
	}
	s, err := polytope.NewSet(2, square(0, 1), square(2, 3))
	require.NoError(t, err)
	return s
}

// Containment: every member of S lies inside hull(S), checked by
// probing each member's own vertices.
func TestPropertyContainment(t *testing.T) {
	ctx := hullctx.New()
	s := fixtureUnion(t)
	got, err := ConvexHull(ctx, s)
	require.NoError(t, err)

	for _, p := range []point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1), pt(2, 2), pt(3, 2), pt(2, 3), pt(3, 3)} {
		require.True(t, contains(got, p))
	}
}

// Idempotence: hull({hull(S)}) has the same constraints as hull(S).
func TestPropertyIdempotence(t *testing.T) {
	ctx := hullctx.New()
	s := fixtureUnion(t)
	once, err := ConvexHull(ctx, s)
	require.NoError(t, err)

	wrapped, err := polytope.NewSet(2, once)
	require.NoError(t, err)
	twice, err := ConvexHull(ctx, wrapped)
	require.NoError(t, err)

	requireSameInequalities(t, once.Inequalities, twice.Inequalities)
	requireSameInequalities(t, once.Equalities, twice.Equalities)
}

// Monotonicity: enlarging one member can only enlarge the hull.
func TestPropertyMonotonicity(t *testing.T) {
	ctx := hullctx.New()
	small := fixtureUnion(t)
	smallHull, err := ConvexHull(ctx, small)
	require.NoError(t, err)

	bigSquare := polytope.New(2, polytope.WithInequalities(
		bigseq.New(0, 1, 0),
		bigseq.New(4, -1, 0),
		bigseq.New(0, 0, 1),
		bigseq.New(4, 0, -1),
	))
	enlarged, err := polytope.NewSet(2, small.Members[0], bigSquare)
	require.NoError(t, err)
	bigHull, err := ConvexHull(ctx, enlarged)
	require.NoError(t, err)

	for _, v := range []point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)} {
		require.True(t, contains(smallHull, v))
		require.True(t, contains(bigHull, v))
	}
	require.True(t, contains(bigHull, pt(4, 4)))
	require.False(t, contains(smallHull, pt(4, 4)))
}

// Convexity of output: ConvexHull's own result is a SingleHull no-op.
func TestPropertyOutputIsAlreadySingleHull(t *testing.T) {
	ctx := hullctx.New()
	s := fixtureUnion(t)
	got, err := ConvexHull(ctx, s)
	require.NoError(t, err)

	pruned, err := SingleHull(ctx, got.Clone())
	require.NoError(t, err)
	requireSameInequalities(t, got.Inequalities, pruned.Inequalities)
	require.Len(t, pruned.Equalities, len(got.Equalities))
}

// Affine-hull preservation: a set confined to a line has the same
// affine hull before and after ConvexHull.
func TestPropertyAffineHullPreservation(t *testing.T) {
	ctx := hullctx.New()
	onLine := func(x int64) *polytope.Polyhedron {
		return polytope.New(2, polytope.WithEqualities(
			bigseq.New(-x, 1, 0),
			bigseq.New(0, 1, -1), // y = x
		))
	}
	s, err := polytope.NewSet(2, onLine(0), onLine(1), onLine(2))
	require.NoError(t, err)

	before, err := polytope.AffineHull(s)
	require.NoError(t, err)
	hull, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	after, err := polytope.AffineHull(mustSingletonSet(t, hull))
	require.NoError(t, err)

	requireSameInequalities(t, before.Equalities, after.Equalities)
}

// Order independence: permuting S's members yields the same hull.
func TestPropertyOrderIndependence(t *testing.T) {
	ctx := hullctx.New()
	s := fixtureUnion(t)
	forward, err := ConvexHull(ctx, s)
	require.NoError(t, err)

	reversed, err := polytope.NewSet(2, s.Members[1], s.Members[0])
	require.NoError(t, err)
	backward, err := ConvexHull(ctx, reversed)
	require.NoError(t, err)

	requireSameInequalities(t, forward.Inequalities, backward.Inequalities)
}

// Simple-hull containment: hull(S) subset simple_hull(S), and every
// simple_hull facet shares a linear part with some member's own row.
func TestPropertySimpleHullContains(t *testing.T) {
	ctx := hullctx.New()
	s := fixtureUnion(t)
	exact, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	simple, err := SimpleHull(ctx, s)
	require.NoError(t, err)

	for _, v := range []point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1), pt(2, 2), pt(3, 3)} {
		if contains(exact, v) {
			require.True(t, contains(simple, v))
		}
	}

	ownLinearParts := make(map[string]bool)
	for _, m := range s.NonEmptyMembers() {
		for _, row := range m.Inequalities {
			key, _ := bigseq.SignKey(row)
			ownLinearParts[key] = true
		}
	}
	for _, row := range simple.Inequalities {
		key, _ := bigseq.SignKey(row)
		require.True(t, ownLinearParts[key], "simple_hull facet %v not traceable to any member", row)
	}
}

// Bounded-simple-hull tightness: every dimension of
// bounded_simple_hull(S) is bounded above and below whenever S itself
// is bounded in that dimension.
func TestPropertyBoundedSimpleHullTightness(t *testing.T) {
	ctx := hullctx.New()
	s := fixtureUnion(t)
	got, err := BoundedSimpleHull(ctx, s)
	require.NoError(t, err)

	for i := 0; i < s.Dim; i++ {
		lower, upper := dimBounds(got, i)
		require.True(t, lower, "dimension %d missing a lower bound", i)
		require.True(t, upper, "dimension %d missing an upper bound", i)
	}
}

func mustSingletonSet(t *testing.T, p *polytope.Polyhedron) *polytope.Set {
	t.Helper()
	s, err := polytope.NewSet(p.Dim, p)
	require.NoError(t, err)
	return s
}
