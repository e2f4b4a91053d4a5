package parity

import (
	"container/heap"
	"math/bits"
	"sort"
)

// searchNode is one open-list entry of the fallback search.
type searchNode struct {
	f     uint64   // g plus the admissible remaining estimate
	g     uint64   // applications spent so far
	key   string   // packed state, also the bestG index
	state []uint64 // residual counts
}

// searchPQ is a min-heap of *searchNode ordered by f ascending. Improved
// routes push fresh entries; stale ones are skipped on pop via the bestG
// check.
type searchPQ []*searchNode

// Len returns the number of items in the heap.
func (pq searchPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq searchPQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq searchPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *searchNode.
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }

// Pop removes and returns the smallest element from the heap.
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// parentRec remembers the edge that reached a state at its best g.
type parentRec struct {
	prev string
	step int
}

// solveAStar searches residual vectors directly: one move applies one step
// once, decrementing every position it touches. The estimate never
// overestimates and is consistent, so the first goal settled is optimal.
// Used when the step kernel is too wide for coset enumeration.
func solveAStar(counts, steps []uint64) (uint64, []uint64, bool) {
	// Try big steps first; they shrink the residual sum fastest.
	order := make([]int, len(steps))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		wa, wb := bits.OnesCount64(steps[order[a]]), bits.OnesCount64(steps[order[b]])
		if wa != wb {
			return wa > wb
		}
		return order[a] < order[b]
	})
	maxSize := bits.OnesCount64(steps[order[0]])

	start := append([]uint64(nil), counts...)
	startKey := packCounts(start)

	bestG := map[string]uint64{startKey: 0}
	parents := make(map[string]parentRec)
	pq := &searchPQ{{f: estimate(start, maxSize), g: 0, key: startKey, state: start}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*searchNode)
		if cur.g > bestG[cur.key] {
			continue
		}
		if allZero(cur.state) {
			return cur.g, replaySchedule(parents, cur.key, startKey, len(steps)), true
		}
		for _, i := range order {
			next, viable := applyStep(cur.state, steps[i])
			if !viable {
				continue
			}
			key := packCounts(next)
			g := cur.g + 1
			if known, seen := bestG[key]; seen && g >= known {
				continue
			}
			bestG[key] = g
			parents[key] = parentRec{prev: cur.key, step: i}
			heap.Push(pq, &searchNode{f: g + estimate(next, maxSize), g: g, key: key, state: next})
		}
	}
	return 0, nil, false
}

// applyStep decrements every position the step touches, refusing moves that
// would drive a count below zero.
func applyStep(state []uint64, mask uint64) ([]uint64, bool) {
	next := append([]uint64(nil), state...)
	for m := mask; m != 0; m &= m - 1 {
		pos := bits.TrailingZeros64(m)
		if next[pos] == 0 {
			return nil, false
		}
		next[pos]--
	}
	return next, true
}

// estimate lower-bounds the applications still needed: no move fixes more
// than one unit of any single position, and no move removes more than
// maxSize units of the residual sum.
func estimate(state []uint64, maxSize int) uint64 {
	var maxRemaining, sum uint64
	for _, v := range state {
		if v > maxRemaining {
			maxRemaining = v
		}
		sum += v
	}
	bound := (sum + uint64(maxSize) - 1) / uint64(maxSize)
	if maxRemaining > bound {
		return maxRemaining
	}
	return bound
}

// replaySchedule walks the parent chain from the goal back to the start,
// counting applications per step.
func replaySchedule(parents map[string]parentRec, goal, start string, m int) []uint64 {
	uses := make([]uint64, m)
	for key := goal; key != start; {
		rec := parents[key]
		uses[rec.step]++
		key = rec.prev
	}
	return uses
}
