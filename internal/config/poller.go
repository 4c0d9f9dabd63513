package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	PeriodPollingInterval time.Duration `mapstructure:"period-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.PeriodPollingInterval <= 0 {
		return errors.New("period-polling-interval must be positive")
	}

	return nil
}
