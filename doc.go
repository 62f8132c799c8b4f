// Package pyvrp holds this repository's module-level documentation. The
// actual API lives in its subpackages:
//
//	problem/    — static instance data: clients, demands, time windows, the
//	              distance matrix, and its Floyd-Warshall metric closure
//	tws/        — the time-window-segment algebra used to merge route
//	              pieces without re-walking every visit in between
//	penalty/    — converts raw excess load and time warp into a single
//	              penalized cost under two externally tunable multipliers
//	route/      — the mutable, doubly-linked representation of a single
//	              vehicle's visit sequence
//	solution/   — Individual, a full assignment of every client to a route,
//	              plus its cost and diversity (broken-pairs distance) metrics
//	localsearch — the Exchange<N,M> neighborhood operators and the
//	              first-improvement driver that applies them
//
// A typical caller builds a problem.ProblemData from an instance, wraps an
// initial assignment in a solution.Individual, and hands it to a
// localsearch.LocalSearch to drive it towards a local optimum:
//
//	pd, _ := problem.New(clients, dist, nbVehicles, capacity)
//	ind, _ := solution.New(pd, initialRoutes)
//	pm := penalty.New(initCapacityMultiplier, initTimeWarpMultiplier)
//	ls, _ := localsearch.NewLocalSearch(pd, pm, localsearch.DefaultOptions())
//	ls.Run(ind)
package pyvrp
