package localsearch

import (
	"container/heap"

	"github.com/bmorlo/PyVRP-BM-standard/problem"
)

// NeighborList is a granular candidate list: for every client, the K
// geographically closest other clients, nearest first. The local-search
// driver only ever proposes (U, V) pairs where V is one of U's
// neighbours, which is what keeps move evaluation sparse instead of
// quadratic in the number of clients.
type NeighborList struct {
	k         int
	neighbors [][]int
}

// BuildNeighborList computes the k nearest non-depot clients of every
// non-depot client, by distance. For each client it keeps a bounded
// max-heap of its k best candidates seen so far, popping the worst
// whenever a closer one arrives — the same "grow a candidate set, evict
// the weakest" shape as a bounded Prim frontier, sized to k instead of
// the whole remaining vertex set.
func BuildNeighborList(pd *problem.ProblemData, k int) *NeighborList {
	n := pd.NumClients()
	if k > n-2 {
		k = n - 2
	}
	if k < 0 {
		k = 0
	}

	neighbors := make([][]int, n)
	for c := 1; c < n; c++ {
		cand := &candidateHeap{}
		heap.Init(cand)

		for other := 1; other < n; other++ {
			if other == c {
				continue
			}
			d := pd.Dist(c, other)
			if cand.Len() < k {
				heap.Push(cand, candidate{id: other, dist: d})
				continue
			}
			if k > 0 && d < (*cand)[0].dist {
				heap.Pop(cand)
				heap.Push(cand, candidate{id: other, dist: d})
			}
		}

		ids := make([]int, cand.Len())
		for i := len(ids) - 1; i >= 0; i-- {
			ids[i] = heap.Pop(cand).(candidate).id
		}
		neighbors[c] = ids
	}

	return &NeighborList{k: k, neighbors: neighbors}
}

// Of returns client c's nearest-first candidate list.
func (nl *NeighborList) Of(c int) []int { return nl.neighbors[c] }

type candidate struct {
	id   int
	dist int64
}

// candidateHeap is a max-heap on distance, so the farthest of the k kept
// candidates always sits at the root and is the one evicted.
type candidateHeap []candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
