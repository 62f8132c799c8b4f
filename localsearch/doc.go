// Package localsearch implements the Exchange<N,M> family of neighborhood
// operators: evaluating and applying the cost delta of swapping N
// consecutive nodes starting at U with M consecutive nodes starting at V
// (relocate when M=0, swap when N=M, a mixed segment exchange otherwise).
//
// The source this package is grounded on parameterizes Exchange by two
// compile-time integers per (N,M) instance. Go has no non-type integer
// generics expressive enough to recover the source's static_assert at
// compile time, so Exchange carries N and M as ordinary runtime fields,
// validated once at construction by New — one runtime-parameterized type
// standing in for the whole family, per the source's own admission that
// this is an acceptable equivalent.
package localsearch
