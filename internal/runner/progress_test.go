package runner

import "testing"

// Exercises the no-op path only: the interactive bar needs a real
// terminal, which tests don't have, and NewLevelProgress degrades to it
// automatically via isInteractive.
func TestNewLevelProgress_NoopWhenDisabled(t *testing.T) {
	p := NewLevelProgress(false)
	p.Level(1, 10)
	p.Done(5)
	p.Close()
}
