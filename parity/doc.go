// Package parity answers the press-count question of a toggle network: the
// minimum total number of step applications, repeats allowed, so that every
// position is toggled exactly its required number of times.
//
// 🚀 Parity decomposition
//
//	Application counts split by parity. The odd "layer" of the requirement
//	must be matched by a subset of distinct steps whose combined toggles
//	hit exactly the odd-count positions - a GF(2) system solved by the gf2
//	package. Subtracting one application per selected step leaves an even
//	residual, which halves into a strictly smaller subproblem:
//
//	  cost(counts) = min over parity-matching subsets c of
//	                 |c| + 2·cost((counts - touches(c)) / 2)
//
//	Results are memoized per solver run, keyed by the residual vector, so
//	shared subproblems across branches are solved once.
//
// ✨ Key features:
//   - zero-mask and duplicate steps collapsed before solving, with
//     applications attributed back to the first original occurrence
//   - coset enumeration capped by Options.SeedLimit; wider kernels fall
//     back to an A* search over residual vectors that needs no enumeration
//   - per-step application counts returned alongside the total
//
// ⚙️ Usage:
//
//	res, err := parity.Solve(p, parity.DefaultOptions())
//	switch {
//	case errors.Is(err, parity.ErrUnreachable):
//	  // no application counts satisfy the targets
//	case err != nil:
//	  // invalid input or options
//	default:
//	  fmt.Println(res.Total, res.Uses)
//	}
//
// Performance:
//
//   - decomposition: O(2^k · n) per parity level for kernel dimension k,
//     with at most log2(max count) + 1 levels.
//   - A* fallback: admissible heuristic, so the first settled goal is
//     optimal; practical on small counts, exponential in the worst case.
package parity
