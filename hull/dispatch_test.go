package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

func TestConvexHullEmptySet(t *testing.T) {
	ctx := hullctx.New()
	s, err := polytope.NewSet(2, polytope.Empty(2), polytope.Empty(2))
	require.NoError(t, err)

	out, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}

func TestConvexHullSingleMemberShortcut(t *testing.T) {
	ctx := hullctx.New()
	p := polytope.New(1, polytope.WithInequalities(bigseq.New(0, 1), bigseq.New(1, 1), bigseq.New(5, -1)))
	s, err := polytope.NewSet(1, p)
	require.NoError(t, err)

	out, err := ConvexHull(ctx, s)
	require.NoError(t, err)
	require.Len(t, out.Inequalities, 2, "the redundant x>=-1 row should be pruned by SingleHull")
}

// MapConvexHull flattens the relation (here a union of the overlapping
// squares [0,2]^2 and [1,3]^2) to its underlying set, computes the hull,
// and hands it back un-split, mirroring isl_map_convex_hull.
func TestMapConvexHullFlattensToUnderlyingSet(t *testing.T) {
	ctx := hullctx.New()
	one := polytope.New(2, polytope.WithInequalities(
		bigseq.New(0, 1, 0),
		bigseq.New(2, -1, 0),
		bigseq.New(0, 0, 1),
		bigseq.New(2, 0, -1),
	))
	other := polytope.New(2, polytope.WithInequalities(
		bigseq.New(-1, 1, 0),
		bigseq.New(3, -1, 0),
		bigseq.New(-1, 0, 1),
		bigseq.New(3, 0, -1),
	))
	m, err := polytope.NewMap(1, 1, one, other)
	require.NoError(t, err)

	out, err := MapConvexHull(ctx, m)
	require.NoError(t, err)
	require.True(t, contains(out, pt(0, 0)))
	require.True(t, contains(out, pt(3, 3)))
}

// MapSimpleHull is MapConvexHull's cheaper counterpart: same flatten-
// then-dispatch shape, routed to SimpleHull instead of ConvexHull.
func TestMapSimpleHullFlattensToUnderlyingSet(t *testing.T) {
	ctx := hullctx.New()
	one := polytope.New(2, polytope.WithInequalities(
		bigseq.New(2, -1, -1),
		bigseq.New(0, 1, 0),
		bigseq.New(0, 0, 1),
	))
	other := polytope.New(2, polytope.WithInequalities(
		bigseq.New(4, -1, -1),
		bigseq.New(-1, 1, 0),
		bigseq.New(-1, 0, 1),
	))
	m, err := polytope.NewMap(1, 1, one, other)
	require.NoError(t, err)

	out, err := MapSimpleHull(ctx, m)
	require.NoError(t, err)
	requireSameInequalities(t, []bigseq.Form{
		bigseq.New(0, 1, 0),
		bigseq.New(0, 0, 1),
		bigseq.New(4, -1, -1),
	}, out.Inequalities)
}
