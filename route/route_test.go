package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmorlo/PyVRP-BM-standard/internal/fixture"
	"github.com/bmorlo/PyVRP-BM-standard/route"
)

func TestNewRoute_RejectsDepotAndOutOfRangeClients(t *testing.T) {
	pd := fixture.OkSmall()

	_, err := route.NewRoute(pd, 0, []int{0, 1})
	require.Error(t, err)

	_, err = route.NewRoute(pd, 0, []int{1, 99})
	require.Error(t, err)
}

func TestRoute_TimeWarpAndFeasibility_MatchFixtureScenarios(t *testing.T) {
	pd := fixture.OkSmall()

	r13, err := route.NewRoute(pd, 0, []int{1, 3})
	require.NoError(t, err)
	require.Equal(t, int64(15_600+360+1_427-15_300), r13.TimeWarp())
	require.False(t, r13.IsFeasible(), "route [1,3] should be infeasible due to time warp")

	r24, err := route.NewRoute(pd, 1, []int{2, 4})
	require.NoError(t, err)
	require.Zero(t, r24.TimeWarp())
	require.True(t, r24.IsFeasible())
}

func TestRoute_AllClientsOnOneRoute_IsInfeasible(t *testing.T) {
	pd := fixture.OkSmall()

	r, err := route.NewRoute(pd, 0, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, int64(18), r.Load())
	require.True(t, r.HasExcessCapacity())
	require.False(t, r.IsFeasible())
}

func TestRoute_DistAndLoadBetween_AreConsistentWithTotals(t *testing.T) {
	pd := fixture.OkSmall()

	r, err := route.NewRoute(pd, 0, []int{1, 2, 3, 4})
	require.NoError(t, err)

	full, err := r.DistBetween(0, r.Size()+1)
	require.NoError(t, err)
	require.Equal(t, r.Distance(), full)

	loadFull, err := r.LoadBetween(0, r.Size()+1)
	require.NoError(t, err)
	require.Equal(t, r.Load(), loadFull)
}

func TestRoute_TWBetween_AnchoredAtDepotMatchesNodeCache(t *testing.T) {
	pd := fixture.OkSmall()

	r, err := route.NewRoute(pd, 0, []int{1, 3})
	require.NoError(t, err)

	n, err := r.At(2)
	require.NoError(t, err)

	got, err := r.TWBetween(0, 2)
	require.NoError(t, err)
	require.Equal(t, n.TWBefore(), got)
}

func TestRoute_RemoveAndInsertAfter_RebuildCachesCorrectly(t *testing.T) {
	pd := fixture.OkSmall()

	r, err := route.NewRoute(pd, 0, []int{1, 2, 3})
	require.NoError(t, err)

	mid, err := r.At(2) // client 2
	require.NoError(t, err)
	require.NoError(t, mid.Remove())
	require.Equal(t, 2, r.Size())
	require.Nil(t, mid.Route(), "removed node should be detached")

	start, err := r.At(0)
	require.NoError(t, err)
	require.NoError(t, mid.InsertAfter(start))
	require.Equal(t, 3, r.Size())

	got, err := r.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, got.Client())
}

func TestNode_SwapWith_AcrossRoutes(t *testing.T) {
	pd := fixture.OkSmall()

	r1, err := route.NewRoute(pd, 0, []int{1, 2})
	require.NoError(t, err)
	r2, err := route.NewRoute(pd, 1, []int{3, 4})
	require.NoError(t, err)

	a, err := r1.At(1) // client 1
	require.NoError(t, err)
	b, err := r2.At(2) // client 4
	require.NoError(t, err)

	require.NoError(t, a.SwapWith(b))

	got1, err := r1.At(1)
	require.NoError(t, err)
	got2, err := r2.At(2)
	require.NoError(t, err)
	require.Equal(t, 4, got1.Client())
	require.Equal(t, 1, got2.Client())
	require.Equal(t, r2, a.Route())
	require.Equal(t, r1, b.Route())
}
