package parity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/togglenet/core"
	"github.com/katalvlaran/togglenet/parse"
)

// mustProblem builds a Problem or fails the test.
func mustProblem(t *testing.T, positions int, steps, counts []uint64) *core.Problem {
	t.Helper()
	p, err := core.NewProblem(positions, 0, steps, counts)
	require.NoError(t, err, "problem construction")
	return p
}

// checkUses verifies the schedule invariants: one entry per step, entries
// summing to the total, and every position toggled exactly its count.
func checkUses(t *testing.T, p *core.Problem, res Result) {
	t.Helper()
	require.Len(t, res.Uses, len(p.Steps), "one Uses entry per step")

	var sum uint64
	for _, u := range res.Uses {
		sum += u
	}
	assert.Equal(t, res.Total, sum, "Uses must sum to Total")

	for j := 0; j < p.Positions; j++ {
		var toggles uint64
		for i, mask := range p.Steps {
			if mask&(uint64(1)<<uint(j)) != 0 {
				toggles += res.Uses[i]
			}
		}
		assert.Equal(t, p.Counts[j], toggles, "position %d toggle count", j)
	}
}

var scenarios = []struct {
	name      string
	positions int
	steps     []uint64
	counts    []uint64
	want      uint64
}{
	{
		name:      "four_lamps_six_steps",
		positions: 4,
		steps:     []uint64{0b1000, 0b1010, 0b0100, 0b1100, 0b0101, 0b0011},
		counts:    []uint64{3, 5, 4, 7},
		want:      10,
	},
	{
		name:      "five_lamps_five_steps",
		positions: 5,
		steps:     []uint64{0b11101, 0b01100, 0b10001, 0b00111, 0b11110},
		counts:    []uint64{7, 5, 12, 7, 2},
		want:      12,
	},
	{
		name:      "six_lamps_four_steps",
		positions: 6,
		steps:     []uint64{0b011111, 0b011001, 0b110111, 0b000110},
		counts:    []uint64{10, 11, 11, 5, 10, 5},
		want:      11,
	},
}

func TestSolve_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			p := mustProblem(t, sc.positions, sc.steps, sc.counts)

			res, err := Solve(p, DefaultOptions())
			require.NoError(t, err, "Solve should succeed")

			assert.Equal(t, sc.want, res.Total, "minimum application total")
			checkUses(t, p, res)
		})
	}
}

func TestSolve_ZeroCounts(t *testing.T) {
	p := mustProblem(t, 2, []uint64{0b01, 0b11}, []uint64{0, 0})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Total)
	assert.Equal(t, []uint64{0, 0}, res.Uses)
}

func TestSolve_SingleLamp(t *testing.T) {
	p := mustProblem(t, 1, []uint64{0b1}, []uint64{4})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), res.Total)
	assert.Equal(t, []uint64{4}, res.Uses)
}

func TestSolve_LargeCount(t *testing.T) {
	p := mustProblem(t, 1, []uint64{0b1}, []uint64{100})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), res.Total, "halving keeps large counts tractable")
}

func TestSolve_RedundantSteps(t *testing.T) {
	// The duplicate mask collapses; all applications land on the first copy.
	p := mustProblem(t, 1, []uint64{0b1, 0b1}, []uint64{2})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total)
	assert.Equal(t, []uint64{2, 0}, res.Uses)
}

func TestSolve_OverlapPrefersCombo(t *testing.T) {
	// Two applications of (0,1) beat two of (0) plus two of (1).
	p := mustProblem(t, 2, []uint64{0b01, 0b10, 0b11}, []uint64{2, 2})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total)
	checkUses(t, p, res)
}

func TestSolve_FreeVariable(t *testing.T) {
	p := mustProblem(t, 2, []uint64{0b01, 0b10, 0b11}, []uint64{10, 10})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), res.Total)
	checkUses(t, p, res)
}

func TestSolve_EvenCountsOddSharing(t *testing.T) {
	// Every pairwise overlap forces all three steps despite even counts.
	p := mustProblem(t, 3, []uint64{0b011, 0b110, 0b101}, []uint64{2, 2, 2})

	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Total)
	checkUses(t, p, res)
}

func TestSolve_UnreachableParity(t *testing.T) {
	// The only step toggles both lamps; counts of differing parity cannot
	// both be met.
	p := mustProblem(t, 2, []uint64{0b11}, []uint64{1, 0})

	_, err := Solve(p, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSolve_UnreachableCoverage(t *testing.T) {
	// Lamp 1 needs a toggle, but no step reaches it.
	p := mustProblem(t, 2, []uint64{0b01}, []uint64{0, 1})

	_, err := Solve(p, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSolve_OnlyZeroMasks(t *testing.T) {
	p := mustProblem(t, 1, []uint64{0}, []uint64{1})
	_, err := Solve(p, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnreachable, "a no-op step cannot satisfy a count")

	p = mustProblem(t, 1, []uint64{0}, []uint64{0})
	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Total, "zero counts need nothing")
}

func TestSolve_InputValidation(t *testing.T) {
	_, err := Solve(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilProblem)

	noCounts, err := core.NewProblem(2, 0b01, []uint64{0b01}, nil)
	require.NoError(t, err)
	_, err = Solve(noCounts, DefaultOptions())
	assert.ErrorIs(t, err, ErrMissingCounts)

	p := mustProblem(t, 2, []uint64{0b01, 0b10}, []uint64{1, 1})
	_, err = Solve(p, Options{SeedLimit: -1})
	assert.ErrorIs(t, err, ErrOptionViolation)
	_, err = Solve(p, Options{SeedLimit: 31})
	assert.ErrorIs(t, err, ErrOptionViolation)
}

func TestSolve_CorpusLines(t *testing.T) {
	cases := []struct {
		name string
		line string
		want uint64
	}{
		{
			name: "nine_lamps_ten_steps",
			line: "[#..#....#] (2,4,6,8) (1,3,4) (0,1,2,4,5,7,8) (4,5,6,8) (1,2,3,5,6) (2,6,7,8) (0,2,3,4,5,6,7) (0,1,2,4,6,7,8) (0,2,3,4,6,7) (0,3,7,8) {65,49,88,60,82,65,88,67,78}",
			want: 121,
		},
		{
			name: "ten_lamps_thirteen_steps",
			line: "[#..##.###.] (0,1,2,3,5,6,7,8) (0,1,2,4,6,7,8,9) (5,8,9) (3,4,6,7) (3,5,6) (1,4,8,9) (2,3,7,8,9) (0,1,2,6,7,8) (0,6,9) (0,5,7,8,9) (0,2,3,4,6,7,8,9) (1,4,6,9) (1,2,5,6) {225,56,230,208,204,28,256,231,235,246}",
			want: 283,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := parse.Line(tc.line)
			require.NoError(t, err, "corpus line must parse")

			res, err := Solve(p, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Total)
			checkUses(t, p, res)
		})
	}
}

func TestSolve_SeedLimitPathsAgree(t *testing.T) {
	// A tight SeedLimit pushes wide-kernel instances onto the fallback;
	// the answer must not move.
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			p := mustProblem(t, sc.positions, sc.steps, sc.counts)

			wide, err := Solve(p, DefaultOptions())
			require.NoError(t, err)
			tight, err := Solve(p, Options{SeedLimit: 1})
			require.NoError(t, err)

			assert.Equal(t, wide.Total, tight.Total, "both paths must agree")
			checkUses(t, p, tight)
		})
	}
}

func TestAStar_MatchesDecomposition(t *testing.T) {
	cases := []struct {
		name      string
		positions int
		steps     []uint64
		counts    []uint64
	}{
		{"four_lamps_six_steps", 4, scenarios[0].steps, scenarios[0].counts},
		{"free_variable", 2, []uint64{0b01, 0b10, 0b11}, []uint64{10, 10}},
		{"odd_sharing", 3, []uint64{0b011, 0b110, 0b101}, []uint64{2, 2, 2}},
		{"single_lamp", 1, []uint64{0b1}, []uint64{100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustProblem(t, tc.positions, tc.steps, tc.counts)

			res, err := Solve(p, DefaultOptions())
			require.NoError(t, err)

			distinct, _ := p.DistinctSteps()
			total, uses, ok := solveAStar(p.Counts, distinct)
			require.True(t, ok, "fallback must find the schedule")
			assert.Equal(t, res.Total, total, "fallback total must match")

			var sum uint64
			for _, u := range uses {
				sum += u
			}
			assert.Equal(t, total, sum, "fallback Uses must sum to its total")
		})
	}
}

func TestAStar_Unreachable(t *testing.T) {
	_, _, ok := solveAStar([]uint64{1, 0}, []uint64{0b11})
	assert.False(t, ok, "parity mismatch has no schedule")
}
