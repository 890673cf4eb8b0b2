package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds faasspectre configuration loaded from .faasspectre.yaml.
// It supplies defaults that command flags override. The analytical
// thresholds are fixed constants and deliberately not configurable.
type Config struct {
	Profile           string  `yaml:"profile"`
	Region            string  `yaml:"region"`
	Format            string  `yaml:"format"`
	Output            string  `yaml:"output"`
	MinMonthlySavings float64 `yaml:"min_monthly_savings"`
	Timeout           string  `yaml:"timeout"`
}

// TimeoutDuration parses the timeout string as a duration.
func (c Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Load searches for .faasspectre.yaml or .faasspectre.yml in the given
// directory and returns the parsed config. Returns an empty Config if
// no file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".faasspectre.yaml"),
		filepath.Join(dir, ".faasspectre.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
