package sim

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/petridish/engine"
	"github.com/sheikhrachel/petridish/model"
	"github.com/sheikhrachel/petridish/utils"
)

var (
	// ErrNegativeIterations is returned when Run is asked for fewer than zero generations
	ErrNegativeIterations = errors.New("negative iteration count")
	// ErrNilSeed is returned when Run is given no initial grid
	ErrNilSeed = errors.New("nil seed grid")
)

// Stepper produces the generation after g
type Stepper interface {
	Step(g *model.Grid) *model.Grid
}

// StepperFunc adapts a plain function such as engine.Step to Stepper
type StepperFunc func(g *model.Grid) *model.Grid

func (f StepperFunc) Step(g *model.Grid) *model.Grid { return f(g) }

// Collector consumes snapshots in generation order, starting with the seed at generation 0
type Collector interface {
	Collect(generation int, g *model.Grid) error
}

// CollectorFunc adapts a plain function to Collector
type CollectorFunc func(generation int, g *model.Grid) error

func (f CollectorFunc) Collect(generation int, g *model.Grid) error { return f(generation, g) }

// Snapshots keeps every generation it is handed
type Snapshots struct {
	Grids []*model.Grid
}

func (s *Snapshots) Collect(_ int, g *model.Grid) error {
	s.Grids = append(s.Grids, g)
	return nil
}

// Result summarises a finished run
type Result struct {
	Generations int
	Final       *model.Grid
	Stats       *utils.Stats

	// CycleAt is the first generation that repeated an earlier one, 0 if none was seen
	CycleAt     int
	CyclePeriod int
	// ExtinctAt is the first generation with no living cells, -1 if the board never died out
	ExtinctAt int
}

// Simulation drives a Stepper for a fixed number of generations
type Simulation struct {
	stepper    Stepper
	collectors []Collector
	window     int
}

// Option configures a Simulation
type Option func(*Simulation)

// WithCollectors adds collectors that receive every snapshot
func WithCollectors(c ...Collector) Option {
	return func(s *Simulation) {
		s.collectors = append(s.collectors, c...)
	}
}

// WithStagnationWindow sets how many past generations are compared for cycle detection
func WithStagnationWindow(n int) Option {
	return func(s *Simulation) {
		s.window = n
	}
}

// New creates a simulation. A nil stepper uses engine.Step.
func New(stepper Stepper, opts ...Option) *Simulation {
	if stepper == nil {
		stepper = StepperFunc(engine.Step)
	}
	s := &Simulation{stepper: stepper, window: 5}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run hands the seed and the next iterations generations to every collector,
// N+1 snapshots in total. Cycle detection is reported only; it never ends a run
// early. ctx is checked between generations.
func (s *Simulation) Run(ctx context.Context, seed *model.Grid, iterations int) (*Result, error) {
	if seed == nil {
		return nil, errors.Wrap(ErrNilSeed, "[Run]")
	}
	if iterations < 0 {
		return nil, errors.Wrapf(ErrNegativeIterations, "[Run] iterations=%d", iterations)
	}

	var (
		history = NewHistory(s.window)
		stats   = utils.NewStats()
		result  = &Result{Stats: stats, ExtinctAt: -1}
		grid    = seed
	)

	observe := func(generation int, g *model.Grid, took time.Duration) error {
		living := g.CountLivingCells()
		stats.Update(generation, living, took)
		stats.BoundingBoxSize = g.BoundingBoxSize()

		if living == 0 && result.ExtinctAt < 0 {
			result.ExtinctAt = generation
		}
		if period := history.Observe(g); period > 0 && result.CycleAt == 0 {
			result.CycleAt = generation
			result.CyclePeriod = period
		}

		for _, c := range s.collectors {
			if err := c.Collect(generation, g); err != nil {
				return errors.Wrapf(err, "[Run] collector failed at generation %d", generation)
			}
		}
		return nil
	}

	if err := observe(0, grid, 0); err != nil {
		return nil, err
	}

	for generation := 1; generation <= iterations; generation++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "[Run] stopped before generation %d", generation)
		}

		start := time.Now()
		grid = s.stepper.Step(grid)
		if err := observe(generation, grid, time.Since(start)); err != nil {
			return nil, err
		}
		result.Generations = generation
	}

	result.Final = grid
	return result, nil
}

// Generations returns the seed followed by iterations generations computed with engine.Step
func Generations(seed *model.Grid, iterations int) ([]*model.Grid, error) {
	snapshots := &Snapshots{}
	if _, err := New(nil, WithCollectors(snapshots)).Run(context.Background(), seed, iterations); err != nil {
		return nil, err
	}
	return snapshots.Grids, nil
}
