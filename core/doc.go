// Package core provides the immutable Problem model shared by every
// toggle-network solver in this module.
//
// A Problem describes one puzzle instance:
//
//   - Positions — how many on/off counters the network has (1..MaxPositions).
//   - Target    — the desired on/off pattern, one bit per position.
//   - Steps     — the available toggles, each a bitmask over positions;
//     applying a step flips (or increments) every position in its mask.
//   - Counts    — optional exact per-position increment totals; present only
//     when the "minimum total applications" question is asked.
//
// Why fixed-width masks?
//
//   - Positions ≤ 32 and steps ≤ 63, so a single uint64 word holds any
//     position pattern and any step subset; XOR is the whole group law.
//   - math/bits supplies popcount and scan primitives; no bitset type needed.
//
// Construction and lifecycle:
//
//	p, err := core.NewProblem(4, 0b0110, steps, counts)
//
// NewProblem validates ranges, copies its slice arguments, and the resulting
// Problem is read-only thereafter. Solvers never mutate it, so one Problem
// may be shared across goroutines freely.
//
// Derived views:
//
//	HasCounts()     // counts question available?
//	ParityPattern() // bit i set ⇔ Counts[i] is odd
//	PositionMask()  // low-Positions ones
//	DistinctSteps() // zero masks dropped, duplicates collapsed + origin map
//
// Errors:
//
//	ErrPositionsRange - position count outside 1..MaxPositions.
//	ErrStepsRange     - step count outside 1..MaxSteps.
//	ErrMaskRange      - target or step mask has bits above Positions.
//	ErrCountsLength   - counts present but not exactly one per position.
package core
