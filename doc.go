// Package togglenet solves toggle-network puzzles: lines of steps that each
// flip a fixed set of positions, asked either to reach a target endstate in
// the fewest distinct steps or to hit exact per-position press counts with
// the fewest total applications.
//
// 🚀 What is togglenet?
//
//	A small solver toolkit built around bitmask linear algebra:
//		• core     — the Problem model: positions, step masks, optional counts
//		• parse    — the "[..#.] (0,2) (1) {3,5}" line grammar
//		• gf2      — Gaussian elimination over GF(2): particular solution + kernel basis
//		• minsteps — fewest distinct steps (meet-in-the-middle / bidirectional BFS)
//		• parity   — fewest total applications (parity decomposition + A* fallback)
//		• cmd/togglenet — the CLI that solves whole files line by line
//
// ✨ Why togglenet?
//
//   - Exact answers – every solver is optimal, never heuristic-only
//   - Honest errors – unreachable targets surface as sentinel errors, totals
//     are overflow-checked
//   - Tunable – strategy selection and enumeration caps are plain Options
//
// Quick example of one puzzle line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//	endstate [.##.] wants positions 1 and 2 on; six steps are available;
//	the braces ask every position to be pressed the listed number of times.
//
//	go get github.com/katalvlaran/togglenet
package togglenet
