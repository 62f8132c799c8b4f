package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmorlo/PyVRP-BM-standard/internal/fixture"
	"github.com/bmorlo/PyVRP-BM-standard/problem"
)

func TestNew_RejectsDepotWithDemand(t *testing.T) {
	clients := []problem.Client{
		{Demand: 1},
		{Demand: 0},
	}
	dist, err := problem.NewDistanceMatrix(2, []int64{0, 1, 1, 0})
	require.NoError(t, err)

	_, err = problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrDepotDemand)
}

func TestNew_RejectsDimensionMismatch(t *testing.T) {
	clients := []problem.Client{{}, {}}
	dist, err := problem.NewDistanceMatrix(3, make([]int64, 9))
	require.NoError(t, err)

	_, err = problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrDimensionMismatch)
}

func TestNew_RejectsBadWindow(t *testing.T) {
	clients := []problem.Client{
		{Demand: 0},
		{Demand: 1, Earliest: 10, Latest: 5},
	}
	dist, err := problem.NewDistanceMatrix(2, []int64{0, 1, 1, 0})
	require.NoError(t, err)

	_, err = problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrBadWindow)
}

func TestNew_RejectsNonPositiveFleetParameters(t *testing.T) {
	clients := []problem.Client{{}, {Demand: 1}}
	dist, err := problem.NewDistanceMatrix(2, []int64{0, 1, 1, 0})
	require.NoError(t, err)

	_, err = problem.New(clients, dist, 0, 10)
	require.ErrorIs(t, err, problem.ErrNonPositiveVehicles)

	_, err = problem.New(clients, dist, 1, 0)
	require.ErrorIs(t, err, problem.ErrNonPositiveCapacity)
}

func TestDistSeq(t *testing.T) {
	pd := fixture.OkSmall()

	got := pd.DistSeq(0, 1, 2, 0)
	want := pd.Dist(0, 1) + pd.Dist(1, 2) + pd.Dist(2, 0)
	require.Equal(t, want, got)

	require.Zero(t, pd.DistSeq(3))
	require.Zero(t, pd.DistSeq())
}

func TestDistanceMatrix_Close_RepairsTriangleInequality(t *testing.T) {
	// A direct edge 0->2 that's longer than the 0->1->2 detour must shrink
	// to the shorter path once Close runs.
	data := []int64{
		0, 1, 100,
		1, 0, 1,
		100, 1, 0,
	}
	m, err := problem.NewDistanceMatrix(3, data)
	require.NoError(t, err)
	m.Close()

	got, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), got)
}

func TestDistanceMatrix_At_OutOfRange(t *testing.T) {
	m, err := problem.NewDistanceMatrix(2, []int64{0, 1, 1, 0})
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, problem.ErrIndexOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, problem.ErrIndexOutOfRange)
}
