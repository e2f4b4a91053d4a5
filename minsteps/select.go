package minsteps

import "math"

// chooseAlgo maps a problem shape to a strategy. It is a pure function of
// the position count, step count, approximate kernel dimension and the BFS
// position threshold, so the same shape always selects the same engine.
//
// The comparison pits the two exponents against each other: meet-in-the-
// middle costs about 2^(k/2)·2^(k-k/2) = 2^k pairings over a kernel of
// dimension k, while the bidirectional search touches at most 2^n states
// and scans m steps per state. Small state spaces always take the BFS;
// wide ones always take the algebra.
func chooseAlgo(positions, steps, kernelDim, bfsMaxPositions int) Algo {
	if positions <= bfsMaxPositions {
		return BidirectionalBFS
	}
	bfsLogCost := float64(positions) + math.Log2(float64(steps))
	if float64(kernelDim) < bfsLogCost || positions > 26 {
		return MeetInMiddle
	}
	return BidirectionalBFS
}
