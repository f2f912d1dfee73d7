package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config drives a verification run. Every field can be set from the YAML
// file; command line flags override it.
type Config struct {
	LogLevel  string        `yaml:"log_level"`
	Realtime  bool          `yaml:"realtime"`
	SlowDelay time.Duration `yaml:"slow_delay"`
	FastDelay time.Duration `yaml:"fast_delay"`
	Scenarios []string      `yaml:"scenarios"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		SlowDelay: 300 * time.Millisecond,
		FastDelay: 0,
	}
}

// LoadConfig reads file on top of DefaultConfig.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, errors.Wrap(err, "os.ReadFile")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "yaml.Unmarshal")
	}
	return cfg, cfg.Validate()
}

// Validate checks the delays keep the slow source behind two ticks of the
// fast one, which the combine and lift expectations rely on.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	if c.FastDelay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "fast_delay %s is negative", c.FastDelay)
	}
	if c.SlowDelay <= 2*c.FastDelay {
		return errors.Wrapf(ErrInvalidConfig, "slow_delay %s must exceed twice fast_delay %s", c.SlowDelay, c.FastDelay)
	}
	return nil
}
