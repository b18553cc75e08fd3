package rangecomine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_RoundTripsGeneratedSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig, *cfg)
}

func TestNewConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
