package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/petridish/utils"
)

// parseConfig loads the config file, if any, then applies command line overrides
func parseConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("petridish", flag.ContinueOnError)
	var (
		configPath   = fs.String("config", "", "JSON config file")
		height       = fs.Int("height", 0, "board height")
		width        = fs.Int("width", 0, "board width")
		iterations   = fs.Int("iterations", -1, "number of generations to compute")
		seed         = fs.Int64("seed", 0, "random seed (0 picks one)")
		pattern      = fs.String("pattern", "", "built-in pattern name (glider, blinker, block) or .cells file")
		gifOutput    = fs.String("gif", "", "animated GIF output path")
		chartOutput  = fs.String("chart", "", "population chart output path (.png, .svg, .pdf)")
		terminal     = fs.Bool("terminal", false, "print every generation to the terminal")
		workers      = fs.Int("workers", 0, "row band workers per generation (0 = one per CPU)")
		activeRegion = fs.Bool("active-region", false, "only evaluate cells near living ones")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, err
	}

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			return config, err
		}
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "height":
			config.Height = *height
		case "width":
			config.Width = *width
		case "iterations":
			config.Iterations = *iterations
		case "seed":
			config.Seed = *seed
		case "pattern":
			config.Pattern = *pattern
		case "gif":
			config.GIFOutput = *gifOutput
		case "chart":
			config.ChartOutput = *chartOutput
		case "terminal":
			config.Terminal = *terminal
		case "workers":
			config.Workers = *workers
		case "active-region":
			config.UseActiveRegion = *activeRegion
		}
	})

	return config, config.Validate()
}

func run(ctx context.Context, args []string) error {
	config, err := parseConfig(args)
	if err != nil {
		return err
	}

	seed, simulation, out, err := initializeGame(config)
	if err != nil {
		return err
	}

	res, err := simulation.Run(ctx, seed, config.Iterations)
	if err != nil {
		return errors.Wrap(err, "[run] simulation failed")
	}
	displaySummary(res)

	return saveOutputs(config, out)
}

func main() {
	log.SetPrefix("petridish: ")
	log.SetFlags(log.LstdFlags)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}
