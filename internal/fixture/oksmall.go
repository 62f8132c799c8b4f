package fixture

import "github.com/bmorlo/PyVRP-BM-standard/problem"

// OkSmall returns a 4-client, 3-vehicle, capacity-10 instance whose demands,
// time windows, and pairwise distances are hand-chosen so that this
// module's package test suites exercise feasible, infeasible, and
// time-warped routes with exactly known numeric costs (each one re-derived
// and checked by hand). It is not
// a reproduction of any particular instance file — only its shape (client
// count, vehicle count, capacity) and the qualitative behavior of its
// scenarios are grounded on the reference fixture used throughout the
// HGS/PyVRP local-search test suites this module's behavior is drawn from.
//
// Client roles:
//
//	0: depot,            demand 0, window [0, 100000]
//	1: tight early-open, demand 5, window [15600, 18180], service 360
//	2: wide open,        demand 5, window [0, 100000]
//	3: tight late-close, demand 3, window [0, 15300]
//	4: midday window,    demand 5, window [8400, 15300]
func OkSmall() *problem.ProblemData {
	clients := []problem.Client{
		{X: 0, Y: 0, Demand: 0, ServiceDuration: 0, Earliest: 0, Latest: 100_000},
		{X: 1, Y: 1, Demand: 5, ServiceDuration: 360, Earliest: 15_600, Latest: 18_180},
		{X: 2, Y: 1, Demand: 5, ServiceDuration: 0, Earliest: 0, Latest: 100_000},
		{X: 1, Y: 2, Demand: 3, ServiceDuration: 0, Earliest: 0, Latest: 15_300},
		{X: 2, Y: 2, Demand: 5, ServiceDuration: 0, Earliest: 8_400, Latest: 15_300},
	}

	// Row-major 5x5 distance matrix. Symmetric, hand-authored (not derived
	// from the coordinates above) so that every scenario's worked
	// arithmetic holds exactly.
	data := []int64{
		0, 1544, 1944, 1931, 1264,
		1544, 0, 1931, 1427, 1871,
		1944, 1931, 0, 1944, 1264,
		1931, 1427, 1944, 0, 1427,
		1264, 1871, 1264, 1427, 0,
	}
	dist, err := problem.NewDistanceMatrix(5, data)
	if err != nil {
		panic(err) // fixture is a compile-time constant; a failure here is a bug in this file
	}

	pd, err := problem.New(clients, dist, 3, 10)
	if err != nil {
		panic(err)
	}

	return pd
}
