package config

import "fmt"

// StakingConfig seeds the singleton period state the first time the engine
// starts against an empty database. Later changes go through the admin API,
// not through this file.
type StakingConfig struct {
	PeriodIntervalDays  int64 `mapstructure:"period-interval-days"`
	MaxClaimDelay       int64 `mapstructure:"max-claim-delay"`
	UnstakeDelayDays    int64 `mapstructure:"unstake-delay-days"`
	MaxUnstakeDelayDays int64 `mapstructure:"max-unstake-delay-days"`
	DaoControlled       bool  `mapstructure:"dao-controlled"`
}

func (cfg *StakingConfig) Validate() error {
	if cfg.PeriodIntervalDays <= 0 {
		return fmt.Errorf("period-interval-days must be positive")
	}
	if cfg.MaxClaimDelay <= 0 {
		return fmt.Errorf("max-claim-delay must be positive")
	}
	if cfg.UnstakeDelayDays < 0 {
		return fmt.Errorf("unstake-delay-days cannot be negative")
	}
	if cfg.MaxUnstakeDelayDays <= 0 {
		return fmt.Errorf("max-unstake-delay-days must be positive")
	}
	if cfg.UnstakeDelayDays > cfg.MaxUnstakeDelayDays {
		return fmt.Errorf("unstake-delay-days cannot exceed max-unstake-delay-days")
	}

	return nil
}
