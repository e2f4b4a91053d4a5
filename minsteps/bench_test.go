package minsteps

import (
	"testing"

	"github.com/katalvlaran/togglenet/core"
)

// syntheticProblem builds a reproducible reachable instance: steps come from
// an xorshift stream, the target is the XOR of every third step.
func syntheticProblem(b *testing.B, positions, steps int) *core.Problem {
	b.Helper()
	state := uint64(0x9E3779B97F4A7C15)
	mask := (uint64(1) << uint(positions)) - 1

	raw := make([]uint64, steps)
	var target uint64
	for i := range raw {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		raw[i] = state & mask
		if i%3 == 0 {
			target ^= raw[i]
		}
	}

	p, err := core.NewProblem(positions, target, raw, nil)
	if err != nil {
		b.Fatalf("synthetic problem: %v", err)
	}
	return p
}

func benchmarkSolve(b *testing.B, positions, steps int, algo Algo) {
	p := syntheticProblem(b, positions, steps)
	opts := Options{Algo: algo}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(p, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkSolve_BFS_12x18(b *testing.B)  { benchmarkSolve(b, 12, 18, BidirectionalBFS) }
func BenchmarkSolve_BFS_16x24(b *testing.B)  { benchmarkSolve(b, 16, 24, BidirectionalBFS) }
func BenchmarkSolve_MIM_24x32(b *testing.B)  { benchmarkSolve(b, 24, 32, MeetInMiddle) }
func BenchmarkSolve_MIM_32x48(b *testing.B)  { benchmarkSolve(b, 32, 48, MeetInMiddle) }
func BenchmarkSolve_Auto_18x24(b *testing.B) { benchmarkSolve(b, 18, 24, AutoSelect) }
