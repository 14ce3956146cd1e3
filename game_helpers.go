package main

import (
	"log"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/petridish/engine"
	"github.com/sheikhrachel/petridish/model"
	"github.com/sheikhrachel/petridish/render"
	"github.com/sheikhrachel/petridish/sim"
	"github.com/sheikhrachel/petridish/utils"
)

// outputs holds the collectors that write files once the run is over
type outputs struct {
	gif   *render.GIFWriter
	chart *render.PopulationChart
}

// initializeSeed builds the initial grid from a pattern name, a pattern file or random fill
func initializeSeed(config utils.Config) (*model.Grid, error) {
	if config.Pattern == "" {
		rng, seed := utils.NewRNG(config.Seed)
		log.Printf("random %dx%d board, seed %d", config.Height, config.Width, seed)
		return model.NewRandomGrid(config.Height, config.Width, rng)
	}

	pattern, ok := model.Patterns[config.Pattern]
	if !ok {
		var err error
		if pattern, err = model.LoadPattern(config.Pattern); err != nil {
			return nil, err
		}
	}
	log.Printf("%s pattern centered on a %dx%d board", pattern.Name, config.Height, config.Width)
	return model.PlaceCentered(config.Height, config.Width, pattern)
}

// initializeGame sets up the seed, the engine and every collector the config asks for
func initializeGame(config utils.Config) (*model.Grid, *sim.Simulation, *outputs, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, nil, err
	}

	seed, err := initializeSeed(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build seed")
	}

	var (
		out        = &outputs{}
		collectors []sim.Collector
	)
	if config.Terminal {
		collectors = append(collectors, render.NewTerminalRenderer(config.FrameDelay))
	}
	if config.GIFOutput != "" {
		out.gif = render.NewGIFWriter(0, config.FrameDelay)
		collectors = append(collectors, out.gif)
	}
	if config.ChartOutput != "" {
		out.chart = render.NewPopulationChart("Living cells per generation")
		collectors = append(collectors, out.chart)
	}

	opts := []engine.Option{engine.WithActiveRegion(config.UseActiveRegion)}
	// 0 keeps the one worker per CPU default
	if config.Workers > 0 {
		opts = append(opts, engine.WithWorkers(config.Workers))
	}

	simulation := sim.New(engine.New(opts...),
		sim.WithCollectors(collectors...),
		sim.WithStagnationWindow(config.StagnationWindow),
	)
	return seed, simulation, out, nil
}

// saveOutputs writes the collected animation and chart
func saveOutputs(config utils.Config, out *outputs) error {
	if out.gif != nil {
		if err := out.gif.Save(config.GIFOutput); err != nil {
			return err
		}
		log.Printf("wrote %d frames to %s", out.gif.Frames(), config.GIFOutput)
	}
	if out.chart != nil {
		if err := out.chart.Save(config.ChartOutput); err != nil {
			return err
		}
		log.Printf("wrote population chart (%s) to %s", out.chart, config.ChartOutput)
	}
	return nil
}

// displaySummary reports how the run ended
func displaySummary(res *sim.Result) {
	stats := res.Stats
	log.Printf("Final: %d generations in %.2fs | Living: %d | Peak: %d | Avg Pop: %.1f",
		res.Generations, stats.Runtime().Seconds(), stats.ActiveCells, stats.PeakPopulation, stats.AveragePopulation)
	if res.ExtinctAt >= 0 {
		log.Printf("Extinct at generation %d", res.ExtinctAt)
	}
	if res.CyclePeriod > 0 {
		log.Printf("Stagnant from generation %d (period %d)", res.CycleAt, res.CyclePeriod)
	}
}
