// Package fixture provides small, hand-verified CVRPTW instances shared by
// the test suites of every package in this module. It is not part of the
// public API.
package fixture
