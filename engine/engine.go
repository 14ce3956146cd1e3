package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/petridish/model"
	"github.com/sheikhrachel/petridish/rules"
)

// Engine computes successive generations. It holds options only; board
// dimensions always come from the grid being stepped.
type Engine struct {
	workers      int
	activeRegion bool
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers sets how many row bands are computed concurrently. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// WithActiveRegion restricts evaluation to the live bounding box plus a one cell margin
func WithActiveRegion(enabled bool) Option {
	return func(e *Engine) {
		e.activeRegion = enabled
	}
}

// New creates an engine using one worker per CPU by default
func New(opts ...Option) *Engine {
	e := &Engine{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var sequential = &Engine{workers: 1}

// Step returns the generation after g on a single goroutine
func Step(g *model.Grid) *model.Grid {
	return sequential.Step(g)
}

// Workers returns the configured worker count
func (e *Engine) Workers() int {
	return e.workers
}

// Step returns the generation after g. g is only read; the result is built in fresh storage.
func (e *Engine) Step(g *model.Grid) *model.Grid {
	var (
		next          = model.NewBuffer(g)
		height, width = g.Dimensions()
		region        = model.Bounds{MaxRow: height - 1, MaxCol: width - 1}
	)

	if e.activeRegion {
		active, ok := g.ActiveBounds()
		if !ok {
			return next.Freeze()
		}
		// Cells further than one step from any live cell stay dead
		region = active.Grow(1, height, width)
	}

	var (
		eg            errgroup.Group
		rows          = region.MaxRow - region.MinRow + 1
		numWorkers    = max(1, min(e.workers, rows))
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	if numWorkers == 1 {
		stepRows(g, next, region, region.MinRow, region.MaxRow+1)
		return next.Freeze()
	}

	for i := range numWorkers {
		var (
			startRow = region.MinRow + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, region.MaxRow+1)
		)
		if startRow > region.MaxRow {
			break
		}

		eg.Go(func() error {
			stepRows(g, next, region, startRow, endRow)
			return nil
		})
	}

	// Band workers have no failure path
	_ = eg.Wait()

	return next.Freeze()
}

// stepRows writes rows [startRow, endRow) of region into next
func stepRows(g *model.Grid, next *model.Buffer, region model.Bounds, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := region.MinCol; x <= region.MaxCol; x++ {
			if rules.ApplyConwayRules(g.LiveNeighbors(y, x), g.IsAlive(y, x)) {
				next.Set(y, x, model.Alive)
			}
		}
	}
}
