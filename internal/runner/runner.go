package runner

import (
	"fmt"
	"os"
	"strconv"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	rangecomine "github.com/colomine/rangecomine"
)

// Options holds the parsed CLI configuration for a single mining run.
type Options struct {
	CSV                string
	SyntheticFeatures  int
	SyntheticInstances int
	SyntheticWidth     float64
	SyntheticHeight    float64
	Seed               int64
	D1                 float64
	D2                 float64
	MinPrev            float64
	Algo               string
	Output             string
	Config             string
	Verbose            bool
	Silent             bool
	Concurrency        int
	GenerateConfig     bool
}

// ParseFlags parses os.Args into Options: grouped flags, an optional
// config-file merge, and log-level wiring from --verbose/--silent.
func ParseFlags() *Options {
	defaults := rangecomine.DefaultConfig
	if cfg, err := rangecomine.NewConfig(rangecomine.DefaultConfigFilePath); err == nil {
		defaults = *cfg
	}

	var d1, d2, minPrev string
	opts := &Options{SyntheticWidth: 100, SyntheticHeight: 100}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Range co-location pattern miner: finds the critical distance at which feature patterns in spatial point data become prevalent.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVar(&opts.CSV, "csv", "", "csv file of spatial objects (columns: id,feature,x,y)"),
		flagSet.IntVarP(&opts.SyntheticFeatures, "features", "f", 4, "number of synthetic feature labels to generate when --csv is not set"),
		flagSet.IntVarP(&opts.SyntheticInstances, "instances", "n", 8, "instances per synthetic feature"),
		flagSet.Int64Var(&opts.Seed, "seed", 13, "seed for synthetic dataset generation"),
	)

	flagSet.CreateGroup("mining", "Mining",
		flagSet.StringVar(&d1, "d1", strconv.FormatFloat(defaults.D1, 'g', -1, 64), "minimum search distance"),
		flagSet.StringVar(&d2, "d2", strconv.FormatFloat(defaults.D2, 'g', -1, 64), "maximum search distance"),
		flagSet.StringVar(&minPrev, "min_prev", strconv.FormatFloat(defaults.MinPrev, 'g', -1, 64), "minimum prevalence threshold, in (0, 1]"),
		flagSet.StringVarP(&opts.Algo, "algo", "a", defaults.Algo, "mining algorithm: range_comine, naive_range, range_inc_mining"),
		flagSet.IntVarP(&opts.Concurrency, "concurrency", "c", defaults.Concurrency, "number of lattice-level candidates evaluated concurrently"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the ColList JSON result (default stdout)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose per-level output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `rangecomine cli config file (default '$HOME/.config/rangecomine/config.yaml')`),
		flagSet.BoolVar(&opts.GenerateConfig, "gcfg", false, fmt.Sprintf("generate a sample config file at %v and exit", rangecomine.DefaultConfigFilePath)),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.GenerateConfig {
		if err := rangecomine.GenerateSample(rangecomine.DefaultConfigFilePath); err != nil {
			gologger.Fatal().Msgf("failed to generate sample config: %s\n", err)
		}
		gologger.Info().Msgf("wrote sample config to %v\n", rangecomine.DefaultConfigFilePath)
		os.Exit(0)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	var err error
	opts.D1, err = strconv.ParseFloat(d1, 64)
	if err != nil {
		gologger.Fatal().Msgf("invalid --d1 value %q: %s\n", d1, err)
	}
	opts.D2, err = strconv.ParseFloat(d2, 64)
	if err != nil {
		gologger.Fatal().Msgf("invalid --d2 value %q: %s\n", d2, err)
	}
	opts.MinPrev, err = strconv.ParseFloat(minPrev, 64)
	if err != nil {
		gologger.Fatal().Msgf("invalid --min_prev value %q: %s\n", minPrev, err)
	}

	if opts.CSV != "" && !fileutil.FileExists(opts.CSV) {
		gologger.Fatal().Msgf("csv file does not exist: %s\n", opts.CSV)
	}

	switch opts.Algo {
	case "range_comine", "naive_range", "range_inc_mining":
	default:
		gologger.Fatal().Msgf("unknown --algo value %q\n", opts.Algo)
	}

	return opts
}

// OutputWriter opens --output for writing, or returns os.Stdout.
func OutputWriter(outputPath string) (*os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil
	}
	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %v: %w", outputPath, errorutil.New(err.Error()))
	}
	return f, nil
}

// CloseOutput closes the writer if it is a regular file (not stdout).
func CloseOutput(f *os.File) {
	if f != os.Stdout {
		_ = f.Close()
	}
}
