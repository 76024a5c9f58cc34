package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

// Scenario 1: two disjoint 1-D intervals hull to their enclosing span.
func TestScenarioOneDIntervals(t *testing.T) {
	ctx := hullctx.New()
	left := polytope.New(1, polytope.WithInequalities(
		bigseq.New(0, 1),  // x >= 0
		bigseq.New(2, -1), // x <= 2
	))
	right := polytope.New(1, polytope.WithInequalities(
		bigseq.New(-3, 1), // x >= 3
		bigseq.New(5, -1), // x <= 5
	))
	s, err := polytope.NewSet(1, left, right)
	require.NoError(t, err)

	got, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	requireSameInequalities(t, []bigseq.Form{
		bigseq.New(0, 1),
		bigseq.New(5, -1),
	}, got.Inequalities)
}

// Scenario 2: three points hull to the unit-simplex triangle.
func TestScenarioTrianglePoints(t *testing.T) {
	ctx := hullctx.New()
	origin := polytope.New(2, polytope.WithEqualities(bigseq.New(0, 1, 0), bigseq.New(0, 0, 1)))
	onX := polytope.New(2, polytope.WithEqualities(bigseq.New(-1, 1, 0), bigseq.New(0, 0, 1)))
	onY := polytope.New(2, polytope.WithEqualities(bigseq.New(0, 1, 0), bigseq.New(-1, 0, 1)))
	s, err := polytope.NewSet(2, origin, onX, onY)
	require.NoError(t, err)

	got, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	requireSameInequalities(t, []bigseq.Form{
		bigseq.New(0, 1, 0),  // x >= 0
		bigseq.New(0, 0, 1),  // y >= 0
		bigseq.New(1, -1, -1), // x+y <= 1
	}, got.Inequalities)
}

// Scenario 3: two unit squares hull to a hexagon.
func TestScenarioTwoSquaresHexagon(t *testing.T) {
	ctx := hullctx.New()
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

	got, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	for _, p := range []point{pt(0, 0), pt(3, 3), pt(1, 0), pt(0, 1), pt(3, 2), pt(2, 3)} {
		require.True(t, contains(got, p), "expected %v inside hexagon hull", p)
	}
	require.False(t, contains(got, pt(3, 0)), "corner (3,0) must lie outside the hexagon hull")
	require.False(t, contains(got, pt(0, 3)), "corner (0,3) must lie outside the hexagon hull")
}

// Scenario 4: unbounded union of two half-planes, routed through ElimHull.
func TestScenarioUnboundedHalfPlanes(t *testing.T) {
	ctx := hullctx.New()
	xPos := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 1, 0)))
	yPos := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 0, 1)))
	s, err := polytope.NewSet(2, xPos, yPos)
	require.NoError(t, err)

	got, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	require.True(t, contains(got, pt(-1, 2)))
	require.True(t, contains(got, pt(2, -1)))
	require.False(t, contains(got, pt(-1, -1)))
}

// Scenarios 5 and 6 are loaded from the YAML fixture since they carry
// a parametric family (scenario 6's n, fixed to a concrete value there).
func TestScenariosFromFixture(t *testing.T) {
	ctx := hullctx.New()
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	simple := scenarios[0]
	s, err := simple.Set()
	require.NoError(t, err)
	got, err := SimpleHull(ctx, s)
	require.NoError(t, err)
	want := simple.ExpectedPolyhedron()
	requireSameInequalities(t, want.Inequalities, got.Inequalities)

	bounded := scenarios[1]
	s2, err := bounded.Set()
	require.NoError(t, err)
	got2, err := BoundedSimpleHull(ctx, s2)
	require.NoError(t, err)
	want2 := bounded.ExpectedPolyhedron()
	requireSameInequalities(t, want2.Inequalities, got2.Inequalities)
}
