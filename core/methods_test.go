package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/togglenet/core"
)

// TestParityPattern verifies the mod-2 folding of target counts.
func TestParityPattern(t *testing.T) {
	p, err := core.NewProblem(4, 0, []uint64{0b0001}, []uint64{3, 5, 4, 7})
	require.NoError(t, err)

	// 3,5,7 odd → bits 0,1,3; 4 even → bit 2 clear.
	assert.Equal(t, uint64(0b1011), p.ParityPattern(), "odd counts must map to set bits")
}

// TestParityPattern_NoCounts verifies the counts-free case folds to zero.
func TestParityPattern_NoCounts(t *testing.T) {
	p, err := core.NewProblem(4, 0b0110, []uint64{0b0001}, nil)
	require.NoError(t, err)
	assert.Zero(t, p.ParityPattern())
}

// TestPositionMask verifies the low-n ones mask.
func TestPositionMask(t *testing.T) {
	p, err := core.NewProblem(5, 0, []uint64{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b11111), p.PositionMask())

	full, err := core.NewProblem(core.MaxPositions, 0, []uint64{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFFFFFF), full.PositionMask())
}

// TestDistinctSteps verifies zero-mask dropping, duplicate collapsing, and
// the origin table pointing at first occurrences.
func TestDistinctSteps(t *testing.T) {
	p, err := core.NewProblem(3, 0, []uint64{0b011, 0, 0b100, 0b011, 0b001}, nil)
	require.NoError(t, err)

	steps, origin := p.DistinctSteps()
	assert.Equal(t, []uint64{0b001, 0b011, 0b100}, steps, "sorted, deduplicated, zero-free")
	assert.Equal(t, []int{4, 0, 2}, origin, "origin must name the first index per mask")
}

// TestDistinctSteps_AllZero verifies that a step set of pure no-ops collapses
// to the empty view.
func TestDistinctSteps_AllZero(t *testing.T) {
	p, err := core.NewProblem(2, 0, []uint64{0, 0}, nil)
	require.NoError(t, err)

	steps, origin := p.DistinctSteps()
	assert.Empty(t, steps)
	assert.Empty(t, origin)
}
