package localsearch

import (
	"github.com/bmorlo/PyVRP-BM-standard/penalty"
	"github.com/bmorlo/PyVRP-BM-standard/problem"
)

// StandardOperators is the library's default (N, M) table: relocations of
// length 1 to 3, and swaps of every size up to 3x3.
var StandardOperators = [][2]int{
	{1, 0}, {2, 0}, {3, 0},
	{1, 1}, {2, 1}, {2, 2}, {3, 1}, {3, 2}, {3, 3},
}

// NewStandardExchanges builds one Exchange per entry of StandardOperators,
// in table order.
func NewStandardExchanges(pd *problem.ProblemData, pm *penalty.Manager) ([]*Exchange, error) {
	ops := make([]*Exchange, 0, len(StandardOperators))
	for _, nm := range StandardOperators {
		ex, err := New(nm[0], nm[1], pd, pm)
		if err != nil {
			return nil, err
		}
		ops = append(ops, ex)
	}

	return ops, nil
}
