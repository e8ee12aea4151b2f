package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/projectdiscovery/wordfreq"
)

// defaultConfigPath returns path of default analyzer config
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, fmt.Sprintf(".config/wordfreq/config_%v.yaml", version)), nil
}

// loadDefaultConfig uses default config file as wordfreq.DefaultConfig
// and creates it when it does not exist
func loadDefaultConfig() {
	cfgPath, err := defaultConfigPath()
	if err != nil {
		gologger.Verbose().Msgf("could not locate home directory: %v", err)
		return
	}
	if fileutil.FileExists(cfgPath) {
		cfg, err := wordfreq.NewConfig(cfgPath)
		if err != nil {
			gologger.Warning().Msgf("ignoring invalid default config %v: %v", cfgPath, err)
			return
		}
		mergeConfig(&wordfreq.DefaultConfig, cfg)
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", cfgPath, err)
		return
	}
	if err := wordfreq.GenerateSample(cfgPath); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", cfgPath, err)
	}
}

// mergeConfig overrides values of dst with non-zero values of src
func mergeConfig(dst *wordfreq.Config, src *wordfreq.Config) {
	if src.MinLength > 0 {
		dst.MinLength = src.MinLength
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.Top > 0 {
		dst.Top = src.Top
	}
	if src.RowFormat != "" {
		dst.RowFormat = src.RowFormat
	}
}
