package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the top-level CLI configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenerateConfig controls the generate command.
type GenerateConfig struct {
	// Count is the default number of identifiers to print when --count is
	// not given.
	Count int `mapstructure:"count"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Generate: GenerateConfig{Count: 1},
	}
}

// Load returns the defaults overlaid with KSUID_LOG_LEVEL, KSUID_LOG_FORMAT,
// and KSUID_COUNT from the environment.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("generate.count", 1)

	_ = v.BindEnv("log.level", "KSUID_LOG_LEVEL")
	_ = v.BindEnv("log.format", "KSUID_LOG_FORMAT")
	_ = v.BindEnv("generate.count", "KSUID_COUNT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Generate.Count < 1 {
		return Config{}, fmt.Errorf("config: generate count must be >= 1, got %d", cfg.Generate.Count)
	}
	return cfg, nil
}
