package rangecomine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMinerConfig_DefaultsToSequential(t *testing.T) {
	cfg := newMinerConfig(nil)
	require.Equal(t, 1, cfg.concurrency)
	require.Nil(t, cfg.onLevel)
}

func TestWithConcurrency_ClampsBelowOne(t *testing.T) {
	cfg := newMinerConfig([]Option{WithConcurrency(0)})
	require.Equal(t, 1, cfg.concurrency)

	cfg = newMinerConfig([]Option{WithConcurrency(-5)})
	require.Equal(t, 1, cfg.concurrency)
}

func TestWithConcurrency_SetsValue(t *testing.T) {
	cfg := newMinerConfig([]Option{WithConcurrency(8)})
	require.Equal(t, 8, cfg.concurrency)
}

func TestWithLevelObserver_Registered(t *testing.T) {
	called := false
	cfg := newMinerConfig([]Option{WithLevelObserver(func(k, candidates, prevalent int) {
		called = true
	})})
	require.NotNil(t, cfg.onLevel)
	cfg.onLevel(1, 2, 3)
	require.True(t, called)
}
