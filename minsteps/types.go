package minsteps

import (
	"errors"
	"fmt"
)

// Algo enumerates the available strategies.
type Algo int

const (
	// AutoSelect picks a strategy from the problem shape alone:
	// position count, step count and approximate kernel dimension.
	AutoSelect Algo = iota

	// MeetInMiddle enumerates two halves of the GF(2) kernel basis and
	// scores every pairing against the particular solution.
	MeetInMiddle

	// BidirectionalBFS walks the 2^n toggle state space from the all-off
	// state and from the target simultaneously.
	BidirectionalBFS
)

// String names the strategy for logs and errors.
func (a Algo) String() string {
	switch a {
	case AutoSelect:
		return "auto"
	case MeetInMiddle:
		return "meet-in-middle"
	case BidirectionalBFS:
		return "bidirectional-bfs"
	default:
		return fmt.Sprintf("algo(%d)", int(a))
	}
}

// DefaultBFSMaxPositions is the AutoSelect threshold: problems with at most
// this many positions go straight to BidirectionalBFS.
const DefaultBFSMaxPositions = 20

// Sentinel errors returned by Solve. Wrapped values carry context; match
// with errors.Is.
var (
	// ErrNilProblem - Solve received a nil problem.
	ErrNilProblem = errors.New("minsteps: problem is nil")
	// ErrUnknownAlgo - Options.Algo is not one of the declared constants.
	ErrUnknownAlgo = errors.New("minsteps: unknown algorithm")
	// ErrOptionViolation - an option value is outside its allowed range.
	ErrOptionViolation = errors.New("minsteps: invalid option supplied")
	// ErrUnreachable - no subset of steps toggles the start state into the
	// target. For puzzle inputs this is an answer, not a failure.
	ErrUnreachable = errors.New("minsteps: target unreachable")
)

// Options tunes strategy selection. The zero value is not valid on its own;
// start from DefaultOptions and override fields as needed.
type Options struct {
	// Algo selects the strategy. AutoSelect (the zero value) defers to the
	// shape heuristic; an explicit strategy is always honoured.
	Algo Algo

	// BFSMaxPositions caps the position count for which AutoSelect prefers
	// BidirectionalBFS. Zero means DefaultBFSMaxPositions. Ignored when
	// Algo is explicit. Must not exceed the problem position limit.
	BFSMaxPositions int
}

// DefaultOptions returns the recommended configuration: automatic strategy
// selection with the stock BFS threshold.
func DefaultOptions() Options {
	return Options{Algo: AutoSelect, BFSMaxPositions: DefaultBFSMaxPositions}
}

// Result reports the minimum step count together with one witnessing subset.
type Result struct {
	// Count is the minimum number of distinct steps whose toggles compose
	// to the target.
	Count int

	// Mask is one optimal subset: bit i set means step i is used. The
	// XOR of the selected step masks equals the target, and
	// bits.OnesCount64(Mask) equals Count.
	Mask uint64

	// Algo is the strategy that produced the answer, after AutoSelect
	// resolution.
	Algo Algo
}
