package hull

import (
	"testing"

	"github.com/schqiushui/isl/hullctx"
	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

func TestIndepBoundsCollectsDimManyRows(t *testing.T) {
	ctx := hullctx.New()
	square := polytope.New(2, polytope.WithInequalities(
		bigseq.New(0, 1, 0),
		bigseq.New(1, -1, 0),
		bigseq.New(0, 0, 1),
		bigseq.New(1, 0, -1),
	))
	s, err := polytope.NewSet(2, square)
	require.NoError(t, err)

	bounds, err := IndepBounds(ctx, s)
	require.NoError(t, err)
	require.Len(t, bounds, 2)

	for _, p := range []point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)} {
		for _, b := range bounds {
			require.GreaterOrEqual(t, evalRow(b, p).Sign(), 0)
		}
	}
}
