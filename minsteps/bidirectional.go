package minsteps

import (
	"fmt"

	"github.com/katalvlaran/togglenet/core"
)

// visit records how a state was first reached: its BFS depth and the parent
// edge, so the witnessing subset can be rebuilt once the frontiers meet.
type visit struct {
	dist int
	prev uint64
	step int // index into Steps; -1 at the root
}

// solveBidirectional walks the 2^n toggle states breadth-first from the
// all-off state and from the target at once, always expanding the smaller
// frontier. The first state generated on one side and already settled on
// the other closes an optimal path: both sides advance one full layer at a
// time, so the sum of the two depths cannot improve afterwards. Either
// frontier draining empty proves the target unreachable.
func solveBidirectional(p *core.Problem) (Result, error) {
	if p.Target == 0 {
		return Result{Count: 0, Mask: 0, Algo: BidirectionalBFS}, nil
	}

	fwd := map[uint64]visit{0: {dist: 0, prev: 0, step: -1}}
	bwd := map[uint64]visit{p.Target: {dist: 0, prev: 0, step: -1}}
	fq := []uint64{0}
	bq := []uint64{p.Target}

	for len(fq) > 0 && len(bq) > 0 {
		if len(fq) <= len(bq) {
			if res, ok := expandLayer(&fq, fwd, bwd, p.Steps); ok {
				return res, nil
			}
		} else {
			if res, ok := expandLayer(&bq, bwd, fwd, p.Steps); ok {
				return res, nil
			}
		}
	}

	return Result{}, fmt.Errorf("%w: target %#x", ErrUnreachable, p.Target)
}

// expandLayer advances one side by a full BFS layer, generating every
// unseen neighbour of the queued states. It reports the final result as
// soon as a generated state is already known to the other side.
func expandLayer(queue *[]uint64, this, other map[uint64]visit, steps []uint64) (Result, bool) {
	next := make([]uint64, 0, len(*queue))
	for _, state := range *queue {
		depth := this[state].dist
		for i, mask := range steps {
			cand := state ^ mask
			if _, seen := this[cand]; seen {
				continue
			}
			if o, met := other[cand]; met {
				return Result{
					Count: depth + 1 + o.dist,
					Mask:  pathMask(this, state, i) ^ pathMask(other, cand, -1),
					Algo:  BidirectionalBFS,
				}, true
			}
			this[cand] = visit{dist: depth + 1, prev: state, step: i}
			next = append(next, cand)
		}
	}
	*queue = next
	return Result{}, false
}

// pathMask rebuilds the step subset along one side's parent chain starting
// at state. extra is the meeting edge's step index, or -1 when the chain
// already ends at the meeting state. An optimal meeting uses each step at
// most once across both chains, so XOR accumulates without cancellation.
func pathMask(side map[uint64]visit, state uint64, extra int) uint64 {
	var mask uint64
	if extra >= 0 {
		mask = uint64(1) << uint(extra)
	}
	s := state
	for {
		v := side[s]
		if v.step < 0 {
			break
		}
		mask ^= uint64(1) << uint(v.step)
		s = v.prev
	}
	return mask
}
