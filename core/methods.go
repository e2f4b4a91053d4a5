package core

import "sort"

// HasCounts reports whether the instance carries per-position target counts,
// i.e. whether the "minimum total applications" question can be asked.
func (p *Problem) HasCounts() bool {
	return len(p.Counts) != 0
}

// PositionMask returns a mask with one bit per position (the low Positions
// bits set).
func (p *Problem) PositionMask() uint64 {
	return maskOf(p.Positions)
}

// ParityPattern folds Counts into an on/off pattern: bit i is set iff
// Counts[i] is odd. It is the mod-2 shadow of the counts question and the
// entry point of the parity decomposition.
//
// Complexity: O(n) time, O(1) space.
func (p *Problem) ParityPattern() uint64 {
	var pattern uint64
	for i, c := range p.Counts {
		pattern |= (c & 1) << i
	}

	return pattern
}

// DistinctSteps returns the step set with zero masks dropped and duplicate
// masks collapsed, plus an origin table mapping each distinct step back to
// the first original index carrying that mask. Solvers that count
// applications work on the distinct view and report multiplicities through
// origin, since duplicate steps are interchangeable and a no-op step never
// belongs to a minimal solution.
//
// The distinct view is sorted ascending by mask, so it is deterministic
// regardless of the input order.
//
// Complexity: O(m log m) time, O(m) space.
func (p *Problem) DistinctSteps() (steps []uint64, origin []int) {
	type entry struct {
		mask  uint64
		index int
	}

	entries := make([]entry, 0, len(p.Steps))
	for i, s := range p.Steps {
		if s == 0 {
			continue
		}
		entries = append(entries, entry{mask: s, index: i})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].mask != entries[j].mask {
			return entries[i].mask < entries[j].mask
		}

		return entries[i].index < entries[j].index
	})

	steps = make([]uint64, 0, len(entries))
	origin = make([]int, 0, len(entries))
	for _, e := range entries {
		if len(steps) > 0 && steps[len(steps)-1] == e.mask {
			continue
		}
		steps = append(steps, e.mask)
		origin = append(origin, e.index)
	}

	return steps, origin
}
