package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

// Wrap starting from the triangle's x>=0 facet, rotated about the
// ridge it shares with y>=0 at the origin, must recover y>=0 itself
// (the only other facet meeting x=0 at (0,0)).
func TestWrapRecoversAdjacentFacet(t *testing.T) {
	ctx := hullctx.New()
	origin := polytope.New(2, polytope.WithEqualities(bigseq.New(0, 1, 0), bigseq.New(0, 0, 1)))
	onX := polytope.New(2, polytope.WithEqualities(bigseq.New(-1, 1, 0), bigseq.New(0, 0, 1)))
	onY := polytope.New(2, polytope.WithEqualities(bigseq.New(0, 1, 0), bigseq.New(-1, 0, 1)))
	s, err := polytope.NewSet(2, origin, onX, onY)
	require.NoError(t, err)

	facet := bigseq.New(0, 1, 0) // x >= 0
	ridge := bigseq.New(0, 0, 1) // y >= 0, the other facet meeting the slice at the origin

	next, err := Wrap(ctx, s, facet, ridge)
	require.NoError(t, err)

	for _, p := range []point{pt(0, 0), pt(1, 0), pt(0, 1)} {
		require.GreaterOrEqual(t, evalRow(next, p).Sign(), 0)
	}
	bigseq.Normalize(next)
	require.Equal(t, int64(0), next[0].Int64())
	require.Equal(t, int64(0), next[1].Int64())
	require.NotEqual(t, int64(0), next[2].Int64())
}

// When the candidate ridge direction is not actually constrained by
// any member (here s has no constraint at all on y), the wrapping LP
// is unbounded and Wrap reports facet unchanged.
func TestWrapUnboundedReturnsFacetUnchanged(t *testing.T) {
	ctx := hullctx.New()
	halfPlane := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 1, 0))) // x >= 0 only
	s, err := polytope.NewSet(2, halfPlane)
	require.NoError(t, err)

	facet := bigseq.New(0, 1, 0) // x >= 0
	ridge := bigseq.New(0, 0, 1) // y is entirely unconstrained here

	next, err := Wrap(ctx, s, facet, ridge)
	require.NoError(t, err)
	require.True(t, bigseq.Eq(next, facet))
}
