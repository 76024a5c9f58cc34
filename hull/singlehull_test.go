package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

func TestSingleHullDropsRedundantInequality(t *testing.T) {
	ctx := hullctx.New()
	p := polytope.New(1, polytope.WithInequalities(
		bigseq.New(0, 1),  // x >= 0
		bigseq.New(1, 1),  // x >= -1, redundant given x >= 0
		bigseq.New(5, -1), // x <= 5
	))
	out, err := SingleHull(ctx, p)
	require.NoError(t, err)
	require.Len(t, out.Inequalities, 2)
}

func TestSingleHullPromotesImplicitEquality(t *testing.T) {
	ctx := hullctx.New()
	p := polytope.New(1, polytope.WithInequalities(
		bigseq.New(0, 1),  // x >= 0
		bigseq.New(0, -1), // x <= 0, together forcing x = 0
	))
	out, err := SingleHull(ctx, p)
	require.NoError(t, err)
	require.Len(t, out.Equalities, 1)
	require.Empty(t, out.Inequalities)
}

func TestSingleHullIsIdempotentOnFlag(t *testing.T) {
	ctx := hullctx.New()
	p := polytope.New(1, polytope.WithInequalities(bigseq.New(0, 1), bigseq.New(5, -1)))
	once, err := SingleHull(ctx, p)
	require.NoError(t, err)
	require.True(t, once.Flags.Has(polytope.FlagNoRedundant))

	twice, err := SingleHull(ctx, once)
	require.NoError(t, err)
	require.Equal(t, once.Inequalities, twice.Inequalities)
}
