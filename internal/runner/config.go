package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	rangecomine "github.com/colomine/rangecomine"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultCfg := filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/rangecomine/config_%v.yaml", version))
	if fileutil.FileExists(defaultCfg) {
		if bin, err := os.ReadFile(defaultCfg); err == nil {
			var cfg rangecomine.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				rangecomine.DefaultConfig = cfg
				return
			} else {
				gologger.Error().Msgf("rangecomine yaml configuration syntax error.\n %v\n.", yaml.FormatError(errx, true, true))
				return
			}
		}
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/rangecomine")); err != nil {
		gologger.Error().Msgf("rangecomine config dir not found and failed to create got: %v", err)
		return
	}
	bin, err := yaml.Marshal(rangecomine.DefaultConfig)
	if err != nil {
		gologger.Error().Msgf("failed to marshal default config got: %v", err)
		return
	}
	if err := os.WriteFile(defaultCfg, bin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCfg, err)
	}
}

// validateDir checks if dir exists, if not creates it.
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
