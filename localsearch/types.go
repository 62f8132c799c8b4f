package localsearch

import (
	"errors"
	"fmt"

	"github.com/bmorlo/PyVRP-BM-standard/penalty"
	"github.com/bmorlo/PyVRP-BM-standard/problem"
)

// ErrInvalidOperatorSize is returned by New when N < M or N < 1.
var ErrInvalidOperatorSize = errors.New("localsearch: require N >= M and N >= 1")

// Exchange evaluates and applies the move that replaces the N-node segment
// starting at U with the M-node segment starting at V (and vice versa):
// pure relocation of U's segment when M=0, a pure swap when N=M, and a
// mixed segment exchange otherwise.
type Exchange struct {
	N, M int
	pd   *problem.ProblemData
	pm   *penalty.Manager
}

// New builds an Exchange<N,M> operator bound to the given instance and
// penalty manager. Requires N >= M and N >= 1, mirroring the source's
// static_assert.
func New(n, m int, pd *problem.ProblemData, pm *penalty.Manager) (*Exchange, error) {
	if n < m || n < 1 {
		return nil, fmt.Errorf("localsearch: N=%d M=%d: %w", n, m, ErrInvalidOperatorSize)
	}

	return &Exchange{N: n, M: m, pd: pd, pm: pm}, nil
}

// ErrInvalidOptions is returned by NewLocalSearch when Options violates one
// of its own internal constraints.
var ErrInvalidOptions = errors.New("localsearch: invalid options")

// DefaultK is the neighbour-list granularity used when Options.K is left
// at its zero value.
const DefaultK = 8

// Options configures a LocalSearch driver: how many candidate neighbours
// each client considers, how large an improvement must be before it is
// accepted, and how many full passes the driver is allowed to make.
type Options struct {
	// K is the number of nearest neighbours kept per client. Zero falls
	// back to DefaultK.
	K int
	// Eps is the acceptance tolerance: a move is applied only when its
	// delta is strictly less than -Eps. Zero accepts any strict
	// improvement.
	Eps int64
	// MaxPasses caps the number of full scans over every client. Zero
	// means unlimited: run to a fixed point.
	MaxPasses int
}

// DefaultOptions returns the driver's standard configuration: DefaultK
// neighbours, zero tolerance, unlimited passes.
func DefaultOptions() Options {
	return Options{K: DefaultK}
}

// validateOptions checks Options for internal consistency, independent of
// any instance or penalty manager.
func validateOptions(opts Options) error {
	if opts.K < 0 {
		return fmt.Errorf("localsearch: K=%d must be >= 0: %w", opts.K, ErrInvalidOptions)
	}
	if opts.Eps < 0 {
		return fmt.Errorf("localsearch: Eps=%d must be >= 0: %w", opts.Eps, ErrInvalidOptions)
	}
	if opts.MaxPasses < 0 {
		return fmt.Errorf("localsearch: MaxPasses=%d must be >= 0: %w", opts.MaxPasses, ErrInvalidOptions)
	}

	return nil
}
