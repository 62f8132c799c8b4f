// Package problem defines the immutable CVRPTW instance: the client table,
// the distance matrix, and the fleet parameters every other package in this
// module treats as read-only ground truth.
//
// A ProblemData is built once — either from an instance file via FromFile,
// or directly from a client table and distance matrix via New — and never
// mutated afterwards. It may be shared by reference across goroutines; every
// exported method is a pure read.
package problem
