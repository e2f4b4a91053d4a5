// Package gf2 solves linear systems over GF(2) — the two-element field where
// addition is XOR — for step sets of a toggle network.
//
// 🚀 What does it solve?
//
//	Each step is a bitmask over n positions; applying a subset of steps XORs
//	their masks together. Given a target pattern, gf2 answers: which subsets
//	produce it? The answer is an affine coset — one particular solution plus
//	the span of the kernel (the subsets whose combined effect is zero).
//
// ✨ Key features:
//   - rows are single uint64 words; elimination is word-wide XOR
//   - kernel basis computed once per step set, reused across targets
//   - augmented-column elimination per target with a deterministic
//     inconsistency check (the sole failure mode)
//   - bounded coset enumeration with an allocation guard
//
// ⚙️ Usage:
//
//	sys, err := gf2.NewSystem(steps, positions)
//	if err != nil { ... }
//
//	sol, err := sys.Solve(target)
//	if errors.Is(err, gf2.ErrInconsistent) {
//	  // no subset of steps reaches target
//	}
//
//	all, err := sol.Enumerate() // the full coset, 2^k subsets
//
// Performance:
//
//   - NewSystem: O(n·m) time, O(n) words.
//   - Solve:     O(n·m) time per target.
//   - Enumerate: O(2^k) time and space, k = kernel dimension;
//     refused above EnumerateLimit.
package gf2
