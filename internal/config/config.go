package config

import (
	"errors"
	"fmt"
	"handstrength-server/internal/util"
	"handstrength-server/pkg/poker"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hand strength server
type Config struct {
	loaded    bool
	Addr      string `yaml:"addr" envconfig:"addr"`
	WheelRank string `yaml:"wheelRank" envconfig:"wheel_rank"`
	MaxHands  int    `yaml:"maxHands" envconfig:"max_hands"`
	Log       struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:      ":5000",
		WheelRank: poker.WheelFive.String(),
		MaxHands:  10,
	}
	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional, environment variables prefixed with HSS_ take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HSS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("hss", &cfg); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func (c Config) validate() error {
	if _, err := poker.ParseWheelRank(c.WheelRank); err != nil {
		return err
	}

	if c.MaxHands <= 0 {
		return fmt.Errorf("maxHands must be greater than zero, got %d", c.MaxHands)
	}

	return nil
}

// Evaluator returns a hand evaluator configured with the wheel rank
func (c Config) Evaluator() *poker.Evaluator {
	// validated by Load()
	wheel, _ := poker.ParseWheelRank(c.WheelRank)
	return poker.NewEvaluator(poker.WithWheelRank(wheel))
}
