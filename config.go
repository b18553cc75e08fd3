package rangecomine

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/rangecomine/config.yaml")
)

// Config is the user-facing sample/default configuration for the CLI's
// mining parameters, persisted as YAML at DefaultConfigFilePath.
type Config struct {
	D1          float64 `yaml:"d1"`
	D2          float64 `yaml:"d2"`
	MinPrev     float64 `yaml:"min_prev"`
	Algo        string  `yaml:"algo"`
	Concurrency int     `yaml:"concurrency"`
}

// DefaultConfig is the built-in sample configuration, matching the
// demo dataset's sensible defaults.
var DefaultConfig = Config{
	D1:          0,
	D2:          30,
	MinPrev:     0.5,
	Algo:        "range_comine",
	Concurrency: 1,
}

// NewConfig reads a Config from file.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml config file with default values.
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
