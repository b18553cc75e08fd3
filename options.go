package rangecomine

// LevelObserver is notified after each lattice level of RangeCoMine is
// evaluated, purely for progress reporting: k is the pattern size just
// evaluated, candidates is how many were generated at that level, and
// prevalent is how many survived into the ColList.
type LevelObserver func(k, candidates, prevalent int)

// minerConfig holds ambient, non-semantic settings for a single miner
// invocation: concurrency for level-k candidate evaluation, and an
// optional progress observer. Varying these must never change a run's
// ColList, only how it's computed and what's reported along the way.
type minerConfig struct {
	concurrency int
	onLevel     LevelObserver
}

// Option configures a RangeCoMine/NaiveRange/RangeIncMining invocation.
type Option func(*minerConfig)

// WithConcurrency bounds how many candidates at a lattice level are
// evaluated concurrently. n <= 1 runs sequentially, matching the core's
// single-threaded default; n > 1 opts into the level executor described
// in SPEC_FULL.md §4.6. Output is identical at any concurrency setting.
func WithConcurrency(n int) Option {
	return func(c *minerConfig) {
		c.concurrency = n
	}
}

// WithLevelObserver registers a callback invoked after every lattice
// level RangeCoMine evaluates, for CLI progress reporting. Never called
// by NaiveRange or RangeIncMining, which do not walk a level-wise
// lattice the same way.
func WithLevelObserver(fn LevelObserver) Option {
	return func(c *minerConfig) {
		c.onLevel = fn
	}
}

func newMinerConfig(opts []Option) minerConfig {
	cfg := minerConfig{concurrency: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = 1
	}
	return cfg
}
