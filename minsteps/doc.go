// Package minsteps answers the on/off question of a toggle network: the
// minimum number of distinct steps, each used at most once, whose combined
// toggles turn the all-off state into the target pattern.
//
// 🚀 Two interchangeable strategies
//
//	Because toggles compose by XOR, the answer is the minimum Hamming weight
//	over an affine coset of GF(2) solutions. Two engines compute it:
//
//	  • MeetInMiddle — solve the linear system (gf2), split the kernel basis
//	    in half, enumerate each half's XOR-combinations, and score every
//	    pair against the particular solution. Cost O(2^(k/2)) for kernel
//	    dimension k; independent of the position count.
//
//	  • BidirectionalBFS — breadth-first search over the 2^n state space
//	    from both ends at once, always expanding the smaller frontier.
//	    Cost grows with the position count, not with the step count.
//
//	Both satisfy the same contract and return identical counts; selection is
//	a pure performance heuristic (see chooseAlgo in select.go).
//
// ✨ Key features:
//   - dispatcher with an Algo switch and an AutoSelect policy
//   - witnessing step subset returned alongside the count
//   - unreachable targets reported as ErrUnreachable, a valid puzzle answer
//
// ⚙️ Usage:
//
//	res, err := minsteps.Solve(p, minsteps.DefaultOptions())
//	switch {
//	case errors.Is(err, minsteps.ErrUnreachable):
//	  // no subset of steps produces the target
//	case err != nil:
//	  // invalid input or options
//	default:
//	  fmt.Println(res.Count, res.Mask)
//	}
//
// Performance:
//
//   - MeetInMiddle:     O(n·m + 2^(k/2)) time.
//   - BidirectionalBFS: O(2^(d/2)·m) time for answer depth d, bounded by
//     the 2^n state space.
package minsteps
