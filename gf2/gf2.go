package gf2

import "fmt"

// NewSystem builds the linear system for the given step masks and derives
// its kernel basis.
//
// The matrix has one row per position: bit s of row r is set iff step s
// touches position r. Gaussian elimination (XOR row-reduction) brings it to
// reduced row echelon form; every column never chosen as pivot is free and
// contributes one kernel basis vector — bit f for the free column itself,
// plus the pivot-column bit of every reduced row that still carries bit f.
//
// The steps slice is copied; callers may reuse theirs.
//
// Errors: ErrRowRange, ErrColumnRange, ErrMaskRange.
//
// Complexity: O(n·m) time, O(n + k) words (k = kernel dimension).
func NewSystem(steps []uint64, positions int) (*System, error) {
	if positions < 1 || positions > MaxRows {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrRowRange, positions, MaxRows)
	}
	if len(steps) < 1 || len(steps) > MaxColumns {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrColumnRange, len(steps), MaxColumns)
	}
	posMask := onesMask(positions)
	for i, s := range steps {
		if s&^posMask != 0 {
			return nil, fmt.Errorf("%w: step %d mask %#x with %d positions", ErrMaskRange, i, s, positions)
		}
	}

	s := &System{
		positions: positions,
		steps:     append([]uint64(nil), steps...),
	}

	rows := s.buildRows(0, false)
	pivots := reduce(rows, len(steps))
	s.basis = kernelBasis(rows, pivots, len(steps))

	return s, nil
}

// Solve decides whether some step subset XORs to target and, if so, returns
// the full solution coset: one particular solution plus the kernel basis.
//
// Elimination runs with the target as augmented column (bit m of each row).
// After reduction, a row with zero coefficients but a set augmented bit
// proves no subset works: ErrInconsistent. Otherwise each pivot column's
// value is its row's augmented bit, free variables stay zero.
//
// The returned Basis is a fresh copy; mutating it does not affect the System.
//
// Errors: ErrMaskRange, ErrInconsistent.
//
// Complexity: O(n·m) time, O(n) words.
func (s *System) Solve(target uint64) (Solution, error) {
	if target&^onesMask(s.positions) != 0 {
		return Solution{}, fmt.Errorf("%w: target %#x with %d positions", ErrMaskRange, target, s.positions)
	}

	var (
		m      = len(s.steps)
		rows   = s.buildRows(target, true)
		pivots = reduce(rows, m)
	)

	// Rows below the pivot frontier have no coefficient bits left; a set
	// augmented bit there means the target is outside the column span.
	var r int
	for r = len(pivots); r < len(rows); r++ {
		if rows[r]>>uint(m)&1 == 1 {
			return Solution{}, fmt.Errorf("%w: target %#x", ErrInconsistent, target)
		}
	}

	var particular uint64
	for _, pv := range pivots {
		if rows[pv.row]>>uint(m)&1 == 1 {
			particular |= 1 << uint(pv.col)
		}
	}

	return Solution{
		Particular: particular,
		Basis:      append([]uint64(nil), s.basis...),
	}, nil
}

// Rank returns the rank of the step matrix.
func (s *System) Rank() int {
	return len(s.steps) - len(s.basis)
}

// KernelDim returns the dimension of the kernel (number of free variables).
func (s *System) KernelDim() int {
	return len(s.basis)
}

// Positions returns the row count of the system.
func (s *System) Positions() int {
	return s.positions
}

// Steps returns a copy of the step masks the system was built from.
func (s *System) Steps() []uint64 {
	return append([]uint64(nil), s.steps...)
}

// Enumerate materializes the whole coset by subset-XOR doubling: start from
// the particular solution, then for each basis vector append every existing
// entry XOR that vector. The result holds all 2^k solutions in a
// deterministic order.
//
// Errors: ErrKernelTooLarge when the kernel dimension exceeds EnumerateLimit.
//
// Complexity: O(2^k) time and space.
func (sol Solution) Enumerate() ([]uint64, error) {
	k := len(sol.Basis)
	if k > EnumerateLimit {
		return nil, fmt.Errorf("%w: dimension %d, limit %d", ErrKernelTooLarge, k, EnumerateLimit)
	}

	out := make([]uint64, 1, 1<<uint(k))
	out[0] = sol.Particular
	for _, b := range sol.Basis {
		n := len(out)
		for i := 0; i < n; i++ {
			out = append(out, out[i]^b)
		}
	}

	return out, nil
}

// buildRows lays the system out row-wise: bit c of row r is set iff step c
// touches position r; with withTarget, bit m carries the target's bit r.
func (s *System) buildRows(target uint64, withTarget bool) []uint64 {
	var (
		m    = len(s.steps)
		rows = make([]uint64, s.positions)
		row  uint64
		r    int
		c    int
	)
	for r = 0; r < s.positions; r++ {
		row = 0
		for c = 0; c < m; c++ {
			row |= (s.steps[c] >> uint(r) & 1) << uint(c)
		}
		if withTarget && target>>uint(r)&1 == 1 {
			row |= 1 << uint(m)
		}
		rows[r] = row
	}

	return rows
}

// reduce row-reduces rows in place over the low cols coefficient columns and
// returns the pivots in elimination order. Augmented bits (at or above cols)
// ride along with the XORs but never become pivots.
func reduce(rows []uint64, cols int) []pivot {
	var (
		pivots = make([]pivot, 0, minInt(len(rows), cols))
		next   int
		pr     int
		c      int
		r      int
	)
	for c = 0; c < cols && next < len(rows); c++ {
		pr = -1
		for r = next; r < len(rows); r++ {
			if rows[r]>>uint(c)&1 == 1 {
				pr = r
				break
			}
		}
		if pr < 0 {
			continue
		}
		rows[next], rows[pr] = rows[pr], rows[next]
		pivotRow := rows[next]
		for r = 0; r < len(rows); r++ {
			if r != next && rows[r]>>uint(c)&1 == 1 {
				rows[r] ^= pivotRow
			}
		}
		pivots = append(pivots, pivot{row: next, col: c})
		next++
	}

	return pivots
}

// kernelBasis derives one basis vector per free column from the reduced rows.
func kernelBasis(rows []uint64, pivots []pivot, cols int) []uint64 {
	isPivot := make([]bool, cols)
	for _, pv := range pivots {
		isPivot[pv.col] = true
	}

	var (
		basis = make([]uint64, 0, cols-len(pivots))
		vec   uint64
		f     int
	)
	for f = 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		vec = 1 << uint(f)
		for _, pv := range pivots {
			if rows[pv.row]>>uint(f)&1 == 1 {
				vec |= 1 << uint(pv.col)
			}
		}
		basis = append(basis, vec)
	}

	return basis
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// onesMask returns a mask with the low n bits set, n ≤ 64.
func onesMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}
