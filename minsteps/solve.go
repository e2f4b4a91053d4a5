package minsteps

import (
	"fmt"

	"github.com/katalvlaran/togglenet/core"
)

// Solve returns the minimum number of distinct steps whose combined toggles
// produce p.Target from the all-off state, together with one witnessing
// subset. Step multiplicities are irrelevant here: applying a step twice
// cancels, so each step is either in the subset or not.
//
// Contracts:
//   - p must be non-nil; hand-built problems must respect the core limits.
//   - Options.Algo must be a declared constant.
//   - Both strategies return the same Count for the same problem.
//
// Errors:
//   - ErrNilProblem, ErrUnknownAlgo, ErrOptionViolation on bad input.
//   - ErrUnreachable when no subset of steps produces the target.
//
// Complexity: strategy dependent; see the package documentation.
func Solve(p *core.Problem, opts Options) (Result, error) {
	// Stage 1 - validate the problem and options.
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if opts.Algo < AutoSelect || opts.Algo > BidirectionalBFS {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgo, opts.Algo)
	}
	bfsMax := opts.BFSMaxPositions
	if bfsMax == 0 {
		bfsMax = DefaultBFSMaxPositions
	}
	if bfsMax < 0 || bfsMax > core.MaxPositions {
		return Result{}, fmt.Errorf("%w: BFSMaxPositions %d, want 1..%d",
			ErrOptionViolation, opts.BFSMaxPositions, core.MaxPositions)
	}

	// Stage 2 - resolve AutoSelect to a concrete strategy.
	algo := opts.Algo
	if algo == AutoSelect {
		algo = chooseAlgo(p.Positions, len(p.Steps), approxKernelDim(p), bfsMax)
	}

	// Stage 3 - the all-off target needs no steps at all.
	if p.Target == 0 {
		return Result{Count: 0, Mask: 0, Algo: algo}, nil
	}

	// Stage 4 - route to the selected engine.
	switch algo {
	case MeetInMiddle:
		return solveMeetInMiddle(p)
	case BidirectionalBFS:
		return solveBidirectional(p)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgo, algo)
	}
}

// approxKernelDim estimates the kernel dimension without running the
// elimination: assume full rank, so the kernel absorbs whatever the step
// count exceeds the position count by.
func approxKernelDim(p *core.Problem) int {
	n, m := p.Positions, len(p.Steps)
	if m < n {
		return 0
	}
	return m - n
}
