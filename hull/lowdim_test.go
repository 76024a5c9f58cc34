package hull

import (
	"testing"

	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"github.com/stretchr/testify/require"
)

func TestHull0D(t *testing.T) {
	nonEmpty, err := polytope.NewSet(0, polytope.Universe(0))
	require.NoError(t, err)
	require.False(t, Hull0D(nonEmpty).IsEmpty())

	empty, err := polytope.NewSet(0, polytope.Empty(0))
	require.NoError(t, err)
	require.True(t, Hull0D(empty).IsEmpty())
}

func TestHull1DTracksTightestBounds(t *testing.T) {
	left := polytope.New(1, polytope.WithInequalities(bigseq.New(0, 1), bigseq.New(2, -1)))
	right := polytope.New(1, polytope.WithInequalities(bigseq.New(-3, 1), bigseq.New(5, -1)))
	s, err := polytope.NewSet(1, left, right)
	require.NoError(t, err)

	out := Hull1D(s)
	requireSameInequalities(t, []bigseq.Form{bigseq.New(0, 1), bigseq.New(5, -1)}, out.Inequalities)
}

func TestHull1DWithEqualityMember(t *testing.T) {
	point := polytope.New(1, polytope.WithEqualities(bigseq.New(-2, 1))) // x = 2
	interval := polytope.New(1, polytope.WithInequalities(bigseq.New(0, 1), bigseq.New(5, -1)))
	s, err := polytope.NewSet(1, point, interval)
	require.NoError(t, err)

	out := Hull1D(s)
	requireSameInequalities(t, []bigseq.Form{bigseq.New(0, 1), bigseq.New(5, -1)}, out.Inequalities)
}
