package problem

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOutOfRange is returned by DistanceMatrix.At when a row or column
// index falls outside [0, n).
var ErrIndexOutOfRange = errors.New("problem: distance matrix index out of range")

// DistanceMatrix is a dense, row-major, integer distance/travel-time table
// over clients 0..n-1. Storage is a flat buffer (offset = i*n + j) so the
// hot-path accessor has no pointer chasing.
type DistanceMatrix struct {
	n    int
	data []int64
}

// NewDistanceMatrix wraps a flat, row-major n*n buffer of travel
// times/distances. data is taken by reference, not copied: callers must not
// mutate it afterwards.
func NewDistanceMatrix(n int, data []int64) (*DistanceMatrix, error) {
	if n <= 0 || len(data) != n*n {
		return nil, fmt.Errorf("problem: distance matrix expects %d entries, got %d: %w", n*n, len(data), ErrDimensionMismatch)
	}

	return &DistanceMatrix{n: n, data: data}, nil
}

// NewEuclideanDistanceMatrix derives an n*n integer distance matrix from
// planar client coordinates, rounding each Euclidean distance to the
// nearest integer.
//
// Complexity: O(n^2) time, O(n^2) space.
func NewEuclideanDistanceMatrix(clients []Client) *DistanceMatrix {
	n := len(clients)
	data := make([]int64, n*n)
	var i, j int
	var dx, dy float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			dx = clients[i].X - clients[j].X
			dy = clients[i].Y - clients[j].Y
			data[i*n+j] = int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
		}
	}

	return &DistanceMatrix{n: n, data: data}
}

// Order returns the matrix dimension n.
func (m *DistanceMatrix) Order() int { return m.n }

// At returns the distance from i to j with bounds checking, for callers
// outside the evaluation hot path (tests, instance validation, reporting).
func (m *DistanceMatrix) At(i, j int) (int64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return m.at(i, j), nil
}

// at is the unchecked hot-path accessor used by Dist and DistSeq.
func (m *DistanceMatrix) at(i, j int) int64 {
	return m.data[i*m.n+j]
}

// Close repairs triangle-inequality violations in-place via the classic
// Floyd-Warshall all-pairs-shortest-path recurrence (k outer, i, j inner;
// deterministic loop order). Rounding Euclidean distances to integers, or
// hand-authoring a partial matrix, can leave a direct edge longer than a
// two-hop detour; Close ensures dist(i,j) is always the shortest path under
// the matrix's own edges, which the merge algebra in package tws implicitly
// assumes (it never considers detours, only the edges actually travelled).
//
// Complexity: O(n^3) time, O(1) extra space.
func (m *DistanceMatrix) Close() {
	n := m.n
	d := m.data

	var k, i, j int
	var baseK, baseI, baseJ int
	var ik, cand int64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = d[baseI+k]
			for j = 0; j < n; j++ {
				baseJ = baseK + j
				cand = ik + d[baseJ]
				if cand < d[baseI+j] {
					d[baseI+j] = cand
				}
			}
		}
	}
}
