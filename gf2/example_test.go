package gf2_test

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/togglenet/gf2"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSystem_Solve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Six steps over four positions; two of the steps are linearly dependent
//	combinations of the others, so the kernel has dimension two and every
//	target admits four distinct step subsets.
//
// Use case:
//
//	Finding the lightest subset reaching a pattern: enumerate the coset and
//	take the minimum Hamming weight.
//
// Complexity: O(n·m) per Solve, O(2^k) for Enumerate.
func ExampleSystem_Solve() {
	steps := []uint64{0b1000, 0b1010, 0b0100, 0b1100, 0b0101, 0b0011}
	sys, err := gf2.NewSystem(steps, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol, err := sys.Solve(0b0110)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	all, _ := sol.Enumerate()
	best := 64
	for _, mask := range all {
		if w := bits.OnesCount64(mask); w < best {
			best = w
		}
	}

	fmt.Printf("kernel dim: %d\n", sys.KernelDim())
	fmt.Printf("coset size: %d\n", len(all))
	fmt.Printf("min weight: %d\n", best)
	// Output:
	// kernel dim: 2
	// coset size: 4
	// min weight: 2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSystem_Solve_inconsistent
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A single step touching only position 1 can never light position 0;
//	the system reports the target as inconsistent.
func ExampleSystem_Solve_inconsistent() {
	sys, err := gf2.NewSystem([]uint64{0b10}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if _, err = sys.Solve(0b01); err != nil {
		fmt.Println(err)
	}
	// Output:
	// gf2: system is inconsistent: target 0x1
}
