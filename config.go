package wordfreq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains analysis and report settings
type Config struct {
	MinLength int      `yaml:"min-length"`
	Exclude   []string `yaml:"exclude"`
	Top       int      `yaml:"top"`
	RowFormat string   `yaml:"row-format"`
}

// DefaultConfig is used when no config file is provided
var DefaultConfig = Config{
	MinLength: 1,
	Top:       10,
	RowFormat: DefaultRowFormat,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects out of range values; zero values mean unset
func (c *Config) validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("%w: min-length must be >= 1, got %d", ErrInvalidParameter, c.MinLength)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top must be >= 0, got %d", ErrInvalidParameter, c.Top)
	}
	if c.RowFormat != "" {
		return ValidateRowFormat(c.RowFormat)
	}
	return nil
}

// Options returns analyzer options of config (defaults for unset values)
func (c *Config) Options() *Options {
	opts := DefaultOptions()
	if c.MinLength > 0 {
		opts.MinLength = c.MinLength
	}
	opts.Exclude = append(opts.Exclude, c.Exclude...)
	return opts
}

// GenerateSample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
