package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileOverrides are the non-secret settings an operator may pin in a YAML
// file next to the binary. Credentials stay environment-only.
type FileOverrides struct {
	BaseURL      string `yaml:"baseUrl"`
	LogLevel     string `yaml:"logLevel"`
	LogFile      string `yaml:"logFile"`
	DefaultAsset string `yaml:"defaultAsset"`
}

const DefaultConfigFile = "trader.yaml"

// ApplyFile merges overrides from the given YAML file into cfg. A missing
// file leaves cfg untouched.
func (cfg *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("fail to load config file '%s': %w", path, err)
	}

	var overrides FileOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("fail to decode config file '%s': %w", path, err)
	}

	if overrides.BaseURL != "" {
		cfg.Binance.BaseURL = overrides.BaseURL
	}
	if overrides.LogLevel != "" {
		cfg.Log.Level = overrides.LogLevel
	}
	if overrides.LogFile != "" {
		cfg.Log.File = overrides.LogFile
	}
	if overrides.DefaultAsset != "" {
		cfg.Trading.DefaultAsset = overrides.DefaultAsset
	}
	return nil
}
