package parity

import "errors"

// DefaultSeedLimit is the stock kernel-dimension cap for coset enumeration.
// Kernels wider than the limit switch Solve to the A* fallback.
const DefaultSeedLimit = 20

// Sentinel errors returned by Solve. Wrapped values carry context; match
// with errors.Is.
var (
	// ErrNilProblem - Solve received a nil problem.
	ErrNilProblem = errors.New("parity: problem is nil")
	// ErrMissingCounts - the problem carries no press counts, so the
	// question is not posed.
	ErrMissingCounts = errors.New("parity: problem has no press counts")
	// ErrOptionViolation - an option value is outside its allowed range.
	ErrOptionViolation = errors.New("parity: invalid option supplied")
	// ErrUnreachable - no sequence of applications meets the counts. For
	// puzzle inputs this is an answer, not a failure.
	ErrUnreachable = errors.New("parity: counts unreachable")
)

// Options tunes the solver. Start from DefaultOptions and override fields
// as needed.
type Options struct {
	// SeedLimit caps the kernel dimension for which parity subsets are
	// enumerated; larger kernels take the A* fallback instead. Zero means
	// DefaultSeedLimit. Must not exceed the gf2 enumeration guard.
	SeedLimit int
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{SeedLimit: DefaultSeedLimit}
}

// Result reports the minimum application total and its distribution.
type Result struct {
	// Total is the minimum overall number of step applications.
	Total uint64

	// Uses holds one entry per original step: how many times it is
	// applied in an optimal schedule. Duplicate steps are collapsed
	// before solving, so all applications of a repeated mask land on its
	// first occurrence and later duplicates stay zero. The entries sum
	// to Total.
	Uses []uint64
}
