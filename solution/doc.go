// Package solution defines Individual, a complete candidate CVRPTW
// solution: a fixed-size vector of routes, the scalar cost components
// distance, excess load, and time warp computed eagerly at construction,
// a client-indexed (predecessor, successor) neighbour map, and the
// broken-pairs diversity metric, which compares the route adjacencies of
// two Individuals.
package solution
