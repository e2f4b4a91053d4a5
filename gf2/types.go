// Package gf2 type declarations: System, Solution, and sentinel errors.
package gf2

import "errors"

const (
	// MaxColumns bounds the step count: step subsets live in one uint64 word
	// and the elimination reserves one extra column for the augmented target.
	MaxColumns = 63

	// MaxRows bounds the position count: position patterns live in one
	// uint64 word.
	MaxRows = 64

	// EnumerateLimit is the largest kernel dimension Enumerate accepts.
	// 2^30 words is already past any sensible working set; callers with a
	// tighter budget check the kernel dimension themselves.
	EnumerateLimit = 30
)

// Sentinel errors for system construction and solving.
var (
	// ErrRowRange indicates a position count outside 1..MaxRows.
	ErrRowRange = errors.New("gf2: position count out of range")

	// ErrColumnRange indicates a step count outside 1..MaxColumns.
	ErrColumnRange = errors.New("gf2: step count out of range")

	// ErrMaskRange indicates a step or target mask with bits at or above the
	// position count.
	ErrMaskRange = errors.New("gf2: mask exceeds position range")

	// ErrInconsistent indicates the system has no solution for the requested
	// target. It is deterministic in (positions, steps, target) and is the
	// sole solve failure.
	ErrInconsistent = errors.New("gf2: system is inconsistent")

	// ErrKernelTooLarge indicates the kernel dimension exceeds EnumerateLimit,
	// so the full coset cannot be materialized.
	ErrKernelTooLarge = errors.New("gf2: kernel too large to enumerate")
)

// pivot records one elimination pivot: rows[row] owns column col.
type pivot struct {
	row int
	col int
}

// System is the GF(2) linear system implied by a fixed step set. The kernel
// basis is computed once at construction and shared by every Solve call;
// a System is read-only after NewSystem and safe for concurrent use.
type System struct {
	positions int
	steps     []uint64
	basis     []uint64
}

// Solution is the affine coset of step subsets reaching one target:
// Particular XOR any combination of Basis vectors.
type Solution struct {
	// Particular is one solution with all free variables zero.
	Particular uint64

	// Basis spans the homogeneous solutions (kernel of the step matrix).
	Basis []uint64
}
