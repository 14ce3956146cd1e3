package sim

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/petridish/engine"
	"github.com/sheikhrachel/petridish/model"
)

func TestGenerations_CountAndOrder(t *testing.T) {
	t.Parallel()

	seed, err := model.Place(5, 5, model.Blinker, 2, 1)
	require.NoError(t, err)

	grids, err := Generations(seed, 4)
	require.NoError(t, err)
	require.Len(t, grids, 5)

	assert.Same(t, seed, grids[0])
	for i, g := range grids {
		h, w := g.Dimensions()
		assert.Equal(t, 5, h)
		assert.Equal(t, 5, w)
		if i%2 == 0 {
			assert.True(t, g.Equal(seed), "generation %d should match the seed", i)
		} else {
			assert.False(t, g.Equal(seed), "generation %d should be the vertical phase", i)
		}
	}
}

func TestGenerations_ZeroIterations(t *testing.T) {
	t.Parallel()

	seed, err := model.NewEmptyGrid(2, 2)
	require.NoError(t, err)

	grids, err := Generations(seed, 0)
	require.NoError(t, err)
	require.Len(t, grids, 1)
	assert.Same(t, seed, grids[0])
}

func TestRun_InvalidInput(t *testing.T) {
	t.Parallel()

	seed, err := model.NewEmptyGrid(2, 2)
	require.NoError(t, err)

	_, err = New(nil).Run(context.Background(), seed, -1)
	assert.True(t, errors.Is(err, ErrNegativeIterations), "got %v", err)

	_, err = New(nil).Run(context.Background(), nil, 3)
	assert.True(t, errors.Is(err, ErrNilSeed), "got %v", err)
}

func TestRun_MatchesDirectLoop(t *testing.T) {
	t.Parallel()

	seed, err := model.NewRandomGrid(24, 24, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)

	res, err := New(engine.New(engine.WithWorkers(4))).Run(context.Background(), seed, 20)
	require.NoError(t, err)

	direct := seed
	for range 20 {
		direct = engine.Step(direct)
	}
	assert.True(t, direct.Equal(res.Final))
	assert.Equal(t, 20, res.Generations)
	assert.Equal(t, 20, res.Stats.TotalGenerations)
}

func TestRun_DetectsCycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern model.Pattern
		period  int
	}{
		{"block still life", model.Block, 1},
		{"blinker oscillator", model.Blinker, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seed, err := model.PlaceCentered(6, 6, tt.pattern)
			require.NoError(t, err)

			res, err := New(nil).Run(context.Background(), seed, 6)
			require.NoError(t, err)
			assert.Equal(t, tt.period, res.CyclePeriod)
			assert.Equal(t, tt.period, res.CycleAt)
			assert.Equal(t, -1, res.ExtinctAt)
			// Detection never shortens the run
			assert.Equal(t, 6, res.Generations)
		})
	}
}

func TestRun_Extinction(t *testing.T) {
	t.Parallel()

	seed, err := model.NewGridFromSeed(3, 3, [][]model.CellState{
		{model.Alive, model.Dead, model.Dead},
		{model.Dead, model.Dead, model.Dead},
		{model.Dead, model.Dead, model.Dead},
	})
	require.NoError(t, err)

	res, err := New(nil, WithStagnationWindow(0)).Run(context.Background(), seed, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExtinctAt)
	assert.Zero(t, res.CyclePeriod)
	assert.Equal(t, 0, res.Final.CountLivingCells())
}

func TestRun_CollectorError(t *testing.T) {
	t.Parallel()

	seed, err := model.NewEmptyGrid(3, 3)
	require.NoError(t, err)

	boom := errors.New("boom")
	var seen []int
	collector := CollectorFunc(func(generation int, _ *model.Grid) error {
		seen = append(seen, generation)
		if generation == 2 {
			return boom
		}
		return nil
	})

	_, err = New(nil, WithCollectors(collector)).Run(context.Background(), seed, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	seed, err := model.NewEmptyGrid(3, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New(nil).Run(ctx, seed, 5)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	a, err := model.PlaceCentered(5, 5, model.Blinker)
	require.NoError(t, err)
	b := engine.Step(a)

	h := NewHistory(3)
	assert.Zero(t, h.Observe(a))
	assert.Zero(t, h.Observe(b))
	assert.Equal(t, 2, h.Observe(a))
	assert.Equal(t, 2, h.Observe(b))

	disabled := NewHistory(0)
	assert.Zero(t, disabled.Observe(a))
	assert.Zero(t, disabled.Observe(a))
}
