package localsearch

import (
	"github.com/bmorlo/PyVRP-BM-standard/penalty"
	"github.com/bmorlo/PyVRP-BM-standard/problem"
	"github.com/bmorlo/PyVRP-BM-standard/route"
	"github.com/bmorlo/PyVRP-BM-standard/solution"
)

// LocalSearch drives a working Individual towards a local optimum: for
// every client, it looks up its K nearest neighbours, and for every
// registered Exchange tries (client-node, neighbour-node) and, for
// operators with N != M, also the reverse ordering; the first strictly
// improving move found is applied immediately, and the scan continues
// with the next client. This gives the core guarantee the
// operators promise: evaluate's delta matches the true cost change, and
// apply leaves every invariant intact — the driver adds only the
// candidate-generation and first-improvement policy around that core,
// which per the source is an implementation detail the core does not
// constrain.
type LocalSearch struct {
	pd        *problem.ProblemData
	pm        *penalty.Manager
	operators []*Exchange
	neighbors *NeighborList
	eps       int64
	maxPasses int
}

// NewLocalSearch builds a driver over the standard operator table and a
// neighbour list sized by opts.K, validated by validateOptions before any
// instance-dependent work (candidate-list construction, operator
// construction) is attempted — the same "validate first, build second"
// order the source's dispatcher uses.
func NewLocalSearch(pd *problem.ProblemData, pm *penalty.Manager, opts Options) (*LocalSearch, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	k := opts.K
	if k == 0 {
		k = DefaultK
	}

	ops, err := NewStandardExchanges(pd, pm)
	if err != nil {
		return nil, err
	}

	return &LocalSearch{
		pd:        pd,
		pm:        pm,
		operators: ops,
		neighbors: BuildNeighborList(pd, k),
		eps:       opts.Eps,
		maxPasses: opts.MaxPasses,
	}, nil
}

// Run repeatedly scans every client's candidate neighbours for an
// improving move, applying the first one found, until a full pass over
// every client finds none or MaxPasses is reached. It returns the number
// of moves applied. ind's cached cost components and neighbour map are
// brought back in sync (via Recompute) after every applied move.
func (ls *LocalSearch) Run(ind *solution.Individual) int {
	var applied int

	for pass := 0; ls.maxPasses == 0 || pass < ls.maxPasses; pass++ {
		improvedThisPass := false

		for c := 1; c < ls.pd.NumClients(); c++ {
			u := ind.NodeOf(c)
			if u == nil {
				continue
			}

			if ls.tryClient(ind, u) {
				improvedThisPass = true
				applied++
			}
		}

		if !improvedThisPass {
			return applied
		}
	}

	return applied
}

// tryClient tries every registered operator against u paired with each of
// u's candidate neighbours, in the (u, neighbour) ordering and, for
// operators with N != M, also (neighbour, u), applying the first strictly
// improving move found.
func (ls *LocalSearch) tryClient(ind *solution.Individual, u *route.Node) bool {
	for _, neighborClient := range ls.neighbors.Of(u.Client()) {
		v := ind.NodeOf(neighborClient)
		if v == nil {
			continue
		}

		for _, op := range ls.operators {
			if op.Evaluate(u, v) < -ls.eps {
				if err := op.Apply(u, v); err != nil {
					continue
				}
				ind.Recompute()

				return true
			}
			if op.N != op.M {
				if op.Evaluate(v, u) < -ls.eps {
					if err := op.Apply(v, u); err != nil {
						continue
					}
					ind.Recompute()

					return true
				}
			}
		}
	}

	return false
}
