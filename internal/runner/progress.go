package runner

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// LevelProgress reports lattice-level progress to the terminal, the way
// jscan's ProgressManagerImpl reports per-file analysis progress: an
// interactive bar when stderr is a terminal, a no-op otherwise.
type LevelProgress interface {
	// Level announces the start of level k with candidates to evaluate.
	Level(k, candidates int)
	// Done marks the level complete with the number of surviving patterns.
	Done(prevalent int)
	// Close releases any interactive resources.
	Close()
}

// NewLevelProgress returns an interactive progress reporter when enabled
// and stderr is a terminal, or a no-op reporter otherwise.
func NewLevelProgress(enabled bool) LevelProgress {
	if enabled && isInteractive() {
		return &barProgress{writer: os.Stderr}
	}
	return noopProgress{}
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

type barProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

func (p *barProgress) Level(k, candidates int) {
	p.bar = progressbar.NewOptions(candidates,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("level "+strconv.Itoa(k)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (p *barProgress) Done(prevalent int) {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func (p *barProgress) Close() {}

type noopProgress struct{}

func (noopProgress) Level(k, candidates int) {}
func (noopProgress) Done(prevalent int)      {}
func (noopProgress) Close()                  {}
