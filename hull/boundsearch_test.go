package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

func TestBoundSearchFindsTightestConstant(t *testing.T) {
	ctx := hullctx.New()
	left := polytope.New(1, polytope.WithInequalities(bigseq.New(0, 1), bigseq.New(2, -1)))   // 0<=x<=2
	right := polytope.New(1, polytope.WithInequalities(bigseq.New(-3, 1), bigseq.New(5, -1))) // 3<=x<=5
	s, err := polytope.NewSet(1, left, right)
	require.NoError(t, err)

	form, ok, err := BoundSearch(ctx, s, bigseq.New(0, 1)) // x
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, form[0].Sign(), "tightest lower bound on x over both members is x>=0")
	require.Equal(t, int64(1), form[1].Int64())
}

func TestBoundSearchUnboundedReportsFalse(t *testing.T) {
	ctx := hullctx.New()
	p := polytope.New(1, polytope.WithInequalities(bigseq.New(0, 1))) // x >= 0, unbounded above
	s, err := polytope.NewSet(1, p)
	require.NoError(t, err)

	_, ok, err := BoundSearch(ctx, s, bigseq.New(0, -1)) // -x, unbounded below on x>=0
	require.NoError(t, err)
	require.False(t, ok)
}
