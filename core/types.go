// Package core declares the Problem type, its sentinel errors, and the
// NewProblem constructor. Derived views live in methods.go.
package core

import (
	"errors"
	"fmt"
)

const (
	// MaxPositions bounds the position count so any target or step pattern
	// fits one uint64 word (and the bidirectional search's 2^n state space
	// stays addressable).
	MaxPositions = 32

	// MaxSteps bounds the step count so a step subset fits one uint64 word
	// with one column index left for the augmented target during Gaussian
	// elimination.
	MaxSteps = 63
)

// Sentinel errors for Problem construction.
var (
	// ErrPositionsRange indicates a position count outside 1..MaxPositions.
	ErrPositionsRange = errors.New("core: position count out of range")

	// ErrStepsRange indicates a step count outside 1..MaxSteps.
	ErrStepsRange = errors.New("core: step count out of range")

	// ErrMaskRange indicates a target or step mask with bits set at or above
	// the position count.
	ErrMaskRange = errors.New("core: mask exceeds position range")

	// ErrCountsLength indicates a counts vector whose length differs from the
	// position count.
	ErrCountsLength = errors.New("core: counts length does not match positions")
)

// Problem is one toggle-network puzzle instance. It is immutable after
// NewProblem: solvers only read it, so a single Problem may be shared
// across goroutines.
type Problem struct {
	// Positions is the number of on/off counters, 1..MaxPositions.
	Positions int

	// Target is the desired on/off pattern; bit i corresponds to position i.
	Target uint64

	// Steps holds one bitmask per step; bit i set means the step toggles
	// (or increments) position i. A zero mask is a legal no-op step.
	Steps []uint64

	// Counts holds the exact per-position increment totals for the
	// "minimum total applications" question; empty when only the on/off
	// question is asked.
	Counts []uint64
}

// NewProblem validates the instance and returns an immutable Problem.
// The steps and counts slices are copied, so callers may reuse theirs.
//
// Errors: ErrPositionsRange, ErrStepsRange, ErrMaskRange, ErrCountsLength.
//
// Complexity: O(m + n) time, O(m + n) space.
func NewProblem(positions int, target uint64, steps, counts []uint64) (*Problem, error) {
	if positions < 1 || positions > MaxPositions {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrPositionsRange, positions, MaxPositions)
	}
	if len(steps) < 1 || len(steps) > MaxSteps {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrStepsRange, len(steps), MaxSteps)
	}

	posMask := maskOf(positions)
	if target&^posMask != 0 {
		return nil, fmt.Errorf("%w: target %#x with %d positions", ErrMaskRange, target, positions)
	}
	for i, s := range steps {
		if s&^posMask != 0 {
			return nil, fmt.Errorf("%w: step %d mask %#x with %d positions", ErrMaskRange, i, s, positions)
		}
	}
	if len(counts) != 0 && len(counts) != positions {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCountsLength, len(counts), positions)
	}

	p := &Problem{
		Positions: positions,
		Target:    target,
		Steps:     append([]uint64(nil), steps...),
	}
	if len(counts) != 0 {
		p.Counts = append([]uint64(nil), counts...)
	}

	return p, nil
}

// maskOf returns a mask with the low n bits set.
func maskOf(n int) uint64 {
	return (uint64(1) << n) - 1
}
