package minsteps

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/togglenet/core"
	"github.com/katalvlaran/togglenet/gf2"
)

// solveMeetInMiddle reduces the puzzle to GF(2) algebra. Every solution of
// the linear system is particular ^ (some XOR-combination of kernel basis
// vectors); the minimum step count is the smallest Hamming weight in that
// coset. The basis is split in half so memory stays at O(2^(k/2)) while the
// pairing loop still visits all 2^k coset members.
func solveMeetInMiddle(p *core.Problem) (Result, error) {
	sys, err := gf2.NewSystem(p.Steps, p.Positions)
	if err != nil {
		return Result{}, err
	}
	sol, err := sys.Solve(p.Target)
	if err != nil {
		if errors.Is(err, gf2.ErrInconsistent) {
			return Result{}, fmt.Errorf("%w: target %#x", ErrUnreachable, p.Target)
		}
		return Result{}, err
	}

	// A trivial kernel leaves exactly one solution.
	if len(sol.Basis) == 0 {
		return Result{
			Count: bits.OnesCount64(sol.Particular),
			Mask:  sol.Particular,
			Algo:  MeetInMiddle,
		}, nil
	}

	half := len(sol.Basis) / 2
	left := subsetXORs(sol.Basis[:half])
	right := subsetXORs(sol.Basis[half:])

	best, bestMask := -1, uint64(0)
	for _, a := range left {
		pa := sol.Particular ^ a
		for _, b := range right {
			cand := pa ^ b
			if w := bits.OnesCount64(cand); best < 0 || w < best {
				best, bestMask = w, cand
			}
		}
	}

	return Result{Count: best, Mask: bestMask, Algo: MeetInMiddle}, nil
}

// subsetXORs lists the XOR of every subset of basis, 2^len(basis) values.
// Index 0 is the empty subset.
func subsetXORs(basis []uint64) []uint64 {
	out := make([]uint64, 1, 1<<uint(len(basis)))
	for _, b := range basis {
		n := len(out)
		for i := 0; i < n; i++ {
			out = append(out, out[i]^b)
		}
	}
	return out
}
