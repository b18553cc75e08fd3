package synthetic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	cfg := Config{Features: 3, InstancesPerFeature: 5, Width: 100, Height: 100, Seed: 13}
	objects := Generate(cfg)
	require.Len(t, objects, 15)

	byFeature := map[string]int{}
	for _, o := range objects {
		byFeature[o.Feature]++
		require.GreaterOrEqual(t, o.X, 0.0)
		require.Less(t, o.X, 100.0)
		require.GreaterOrEqual(t, o.Y, 0.0)
		require.Less(t, o.Y, 100.0)
	}
	require.Equal(t, map[string]int{"A": 5, "B": 5, "C": 5}, byFeature)
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	cfg := Config{Features: 2, InstancesPerFeature: 4, Width: 50, Height: 50, Seed: 42}
	first := Generate(cfg)
	second := Generate(cfg)
	require.Equal(t, first, second)
}

func TestGenerate_UniqueIDs(t *testing.T) {
	objects := Generate(Config{Features: 4, InstancesPerFeature: 8, Width: 10, Height: 10, Seed: 1})
	seen := make(map[string]struct{})
	for _, o := range objects {
		_, dup := seen[o.ID]
		require.False(t, dup, "duplicate id %s", o.ID)
		seen[o.ID] = struct{}{}
	}
}
