package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EngineConfig covers the operational knobs of the scoring engine. The
// aggregation weights themselves are compile-time constants and not
// configurable here.
type EngineConfig struct {
	RescoreCron  string `mapstructure:"rescore_cron"`
	DefaultLimit int    `mapstructure:"default_limit"`
}

func (config EngineConfig) validate() error {
	if config.DefaultLimit < 0 {
		return fmt.Errorf("default_limit must not be negative")
	}
	return nil
}

func (config EngineConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("engine.rescore_cron", "RESCORE_CRON")
	if err != nil {
		return err
	}

	return viper.BindEnv("engine.default_limit", "DEFAULT_LIMIT")
}
