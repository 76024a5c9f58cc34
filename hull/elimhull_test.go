package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

func TestPairwiseHullOfTwoHalfPlanes(t *testing.T) {
	ctx := hullctx.New()
	xPos := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 1, 0)))
	yPos := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 0, 1)))

	out, err := pairwiseHull(ctx, xPos, yPos)
	require.NoError(t, err)

	require.True(t, contains(out, pt(-1, 2)))
	require.True(t, contains(out, pt(2, -1)))
	require.False(t, contains(out, pt(-1, -1)))
}

func TestElimHullFoldsThreeMembersLeftAssociatively(t *testing.T) {
	ctx := hullctx.New()
	xPos := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 1, 0)))
	yPos := polytope.New(2, polytope.WithInequalities(bigseq.New(0, 0, 1)))
	origin := polytope.New(2, polytope.WithEqualities(bigseq.New(0, 1, 0), bigseq.New(0, 0, 1)))
	s, err := polytope.NewSet(2, xPos, yPos, origin)
	require.NoError(t, err)

	out, err := ElimHull(ctx, s)
	require.NoError(t, err)
	require.True(t, contains(out, pt(0, 0)))
	require.True(t, contains(out, pt(-1, 2)))
	require.False(t, contains(out, pt(-1, -1)))
}
