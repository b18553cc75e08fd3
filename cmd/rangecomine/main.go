package main

import (
	"os"

	rangecomine "github.com/colomine/rangecomine"
	"github.com/colomine/rangecomine/internal/loader"
	"github.com/colomine/rangecomine/internal/runner"
	"github.com/colomine/rangecomine/internal/synthetic"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	var objects []rangecomine.Object
	if opts.CSV != "" {
		var err error
		objects, err = loader.LoadCSV(opts.CSV)
		if err != nil {
			gologger.Fatal().Msgf("failed to load csv: %v\n", err)
		}
	} else {
		objects = synthetic.Generate(synthetic.Config{
			Features:            opts.SyntheticFeatures,
			InstancesPerFeature: opts.SyntheticInstances,
			Width:               opts.SyntheticWidth,
			Height:              opts.SyntheticHeight,
			Seed:                opts.Seed,
		})
		gologger.Info().Msgf("generated %d synthetic objects (%d features x %d instances)", len(objects), opts.SyntheticFeatures, opts.SyntheticInstances)
	}

	progress := runner.NewLevelProgress(!opts.Silent)
	defer progress.Close()

	minerOpts := []rangecomine.Option{
		rangecomine.WithConcurrency(opts.Concurrency),
		rangecomine.WithLevelObserver(func(k, candidates, prevalent int) {
			progress.Level(k, candidates)
			progress.Done(prevalent)
			if opts.Verbose {
				gologger.Verbose().Msgf("%s", runner.VerboseLevelSummary(k, candidates, prevalent))
			}
		}),
	}

	var mine func([]rangecomine.Object, float64, float64, float64, ...rangecomine.Option) (rangecomine.ColList, error)
	switch opts.Algo {
	case "naive_range":
		mine = rangecomine.NaiveRange
	case "range_inc_mining":
		mine = rangecomine.RangeIncMining
	default:
		mine = rangecomine.RangeCoMine
	}

	col, err := mine(objects, opts.D1, opts.D2, opts.MinPrev, minerOpts...)
	if err != nil {
		gologger.Fatal().Msgf("mining failed: %v\n", err)
	}

	out, err := runner.OutputWriter(opts.Output)
	if err != nil {
		gologger.Fatal().Msgf("%v\n", err)
	}
	defer runner.CloseOutput(out)

	if err := runner.WriteResult(out, col); err != nil {
		gologger.Fatal().Msgf("failed to write result: %v\n", err)
	}

	os.Exit(0)
}
