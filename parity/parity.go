package parity

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/togglenet/core"
	"github.com/katalvlaran/togglenet/gf2"
)

// Solve computes the minimum total number of step applications so that each
// position i is toggled exactly p.Counts[i] times. Steps may repeat; the
// endstate target plays no part in this question.
//
// Contracts:
//   - p must be non-nil and carry a count per position.
//   - Options.SeedLimit must stay within the gf2 enumeration guard.
//   - Result.Uses satisfies the counts exactly: for every position j, the
//     applications of steps touching j sum to p.Counts[j].
//
// Errors:
//   - ErrNilProblem, ErrMissingCounts, ErrOptionViolation on bad input.
//   - ErrUnreachable when no application schedule meets the counts.
//
// Complexity: see the package documentation; the path taken depends on the
// kernel dimension of the distinct step set.
func Solve(p *core.Problem, opts Options) (Result, error) {
	// Stage 1 - validate the problem and options.
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if !p.HasCounts() {
		return Result{}, ErrMissingCounts
	}
	limit := opts.SeedLimit
	if limit == 0 {
		limit = DefaultSeedLimit
	}
	if limit < 0 || limit > gf2.EnumerateLimit {
		return Result{}, fmt.Errorf("%w: SeedLimit %d, want 1..%d",
			ErrOptionViolation, opts.SeedLimit, gf2.EnumerateLimit)
	}

	// Stage 2 - trivial and hopeless inputs.
	uses := make([]uint64, len(p.Steps))
	if allZero(p.Counts) {
		return Result{Total: 0, Uses: uses}, nil
	}
	distinct, origin := p.DistinctSteps()
	if len(distinct) == 0 {
		return Result{}, fmt.Errorf("%w: no usable steps", ErrUnreachable)
	}
	if pos := firstUncovered(p.Counts, distinct); pos >= 0 {
		return Result{}, fmt.Errorf("%w: position %d is counted but never toggled",
			ErrUnreachable, pos)
	}

	// Stage 3 - linear structure of the distinct step set.
	sys, err := gf2.NewSystem(distinct, p.Positions)
	if err != nil {
		return Result{}, err
	}

	// Stage 4 - decompose by parity, or search directly when the kernel
	// is too wide to enumerate.
	var (
		total   uint64
		applied []uint64
		ok      bool
	)
	if sys.KernelDim() > limit {
		total, applied, ok = solveAStar(p.Counts, distinct)
	} else {
		total, applied, ok = newCosetSolver(sys, distinct).solve(p.Counts)
	}
	if !ok {
		return Result{}, fmt.Errorf("%w: no application schedule fits", ErrUnreachable)
	}

	// Stage 5 - attribute applications back to the original step order.
	for di, oi := range origin {
		uses[oi] = applied[di]
	}
	return Result{Total: total, Uses: uses}, nil
}

// cosetSolver runs the parity decomposition over one distinct step set. The
// memo is keyed by the packed residual vector and lives for a single
// top-level call, so concurrent solves never share state.
type cosetSolver struct {
	sys   *gf2.System
	steps []uint64
	memo  map[string]memoEntry
}

type memoEntry struct {
	total uint64
	uses  []uint64
	ok    bool
}

func newCosetSolver(sys *gf2.System, steps []uint64) *cosetSolver {
	return &cosetSolver{sys: sys, steps: steps, memo: make(map[string]memoEntry)}
}

// solve returns the minimum application total for the residual counts along
// with its per-step distribution. ok is false when no schedule exists; that
// outcome is memoized too.
func (cs *cosetSolver) solve(counts []uint64) (total uint64, uses []uint64, ok bool) {
	if allZero(counts) {
		return 0, make([]uint64, len(cs.steps)), true
	}
	key := packCounts(counts)
	if e, hit := cs.memo[key]; hit {
		return e.total, e.uses, e.ok
	}

	sol, err := cs.sys.Solve(parityOf(counts))
	if err != nil {
		cs.memo[key] = memoEntry{}
		return 0, nil, false
	}
	candidates, err := sol.Enumerate()
	if err != nil {
		// Kernel dimension was checked against the limit up front.
		cs.memo[key] = memoEntry{}
		return 0, nil, false
	}

	var (
		best     uint64
		bestUses []uint64
		found    bool
	)
	for _, c := range candidates {
		next, viable := applyOnceEach(counts, cs.steps, c)
		if !viable {
			continue
		}
		sub, subUses, okSub := cs.solve(next)
		if !okSub {
			continue
		}
		cost := uint64(bits.OnesCount64(c)) + 2*sub
		if !found || cost < best {
			best, bestUses, found = cost, combineUses(c, subUses, len(cs.steps)), true
		}
	}

	if !found {
		cs.memo[key] = memoEntry{}
		return 0, nil, false
	}
	cs.memo[key] = memoEntry{total: best, uses: bestUses, ok: true}
	return best, bestUses, true
}

// applyOnceEach subtracts one application of every step selected by c and
// halves the residual. The parity match guarantees even residuals; a count
// hitting zero before its decrement kills the candidate.
func applyOnceEach(counts, steps []uint64, c uint64) ([]uint64, bool) {
	next := append([]uint64(nil), counts...)
	for i, mask := range steps {
		if c&(uint64(1)<<uint(i)) == 0 {
			continue
		}
		for m := mask; m != 0; m &= m - 1 {
			pos := bits.TrailingZeros64(m)
			if next[pos] == 0 {
				return nil, false
			}
			next[pos]--
		}
	}
	for i := range next {
		next[i] /= 2
	}
	return next, true
}

// combineUses folds one parity level into the distribution: one application
// per selected step now, plus twice the halved subproblem's schedule.
func combineUses(c uint64, subUses []uint64, m int) []uint64 {
	uses := make([]uint64, m)
	for i := 0; i < m; i++ {
		uses[i] = 2 * subUses[i]
		if c&(uint64(1)<<uint(i)) != 0 {
			uses[i]++
		}
	}
	return uses
}

func allZero(counts []uint64) bool {
	for _, v := range counts {
		if v != 0 {
			return false
		}
	}
	return true
}

// parityOf packs count parities into a position mask: bit i set when
// counts[i] is odd.
func parityOf(counts []uint64) uint64 {
	var pattern uint64
	for i, v := range counts {
		if v&1 == 1 {
			pattern |= uint64(1) << uint(i)
		}
	}
	return pattern
}

// firstUncovered returns the lowest position with a nonzero count that no
// step touches, or -1 when every counted position is covered.
func firstUncovered(counts, steps []uint64) int {
	var covered uint64
	for _, mask := range steps {
		covered |= mask
	}
	for i, v := range counts {
		if v != 0 && covered&(uint64(1)<<uint(i)) == 0 {
			return i
		}
	}
	return -1
}

// packCounts serializes a residual vector into a map key.
func packCounts(counts []uint64) string {
	buf := make([]byte, 8*len(counts))
	for i, v := range counts {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	return string(buf)
}
