package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Staking: StakingConfig{
			PeriodIntervalDays:  7,
			MaxClaimDelay:       10,
			UnstakeDelayDays:    7,
			MaxUnstakeDelayDays: 30,
			DaoControlled:       true,
		},
		Server: ServerConfig{
			Host:       "127.0.0.1",
			Port:       8080,
			AdminToken: "test",
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
		Queue: QueueConfig{
			User:           "test",
			Password:       "test",
			Url:            "localhost:5672",
			QueueName:      "staking_events",
			PublishTimeout: 5 * time.Second,
			MaxRetryTimes:  10,
			RetryInterval:  300 * time.Millisecond,
		},
		Poller: PollerConfig{
			PeriodPollingInterval: 1 * time.Minute,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestStakingConfig_Validate(t *testing.T) {
	t.Run("period interval not set - should error", func(t *testing.T) {
		cfg := validConfig()
		cfg.Staking.PeriodIntervalDays = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "period-interval-days must be positive")
	})

	t.Run("unstake delay above its maximum - should error", func(t *testing.T) {
		cfg := validConfig()
		cfg.Staking.UnstakeDelayDays = 31
		cfg.Staking.MaxUnstakeDelayDays = 30
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unstake-delay-days cannot exceed max-unstake-delay-days")
	})

	t.Run("zero unstake delay is allowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Staking.UnstakeDelayDays = 0
		require.NoError(t, cfg.Validate())
	})
}

func TestServerConfig_Defaults(t *testing.T) {
	cfg := &ServerConfig{Host: "127.0.0.1", Port: 8080, AdminToken: "test"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.Equal(t, defaultServerReadTimeout, cfg.GetReadTimeout())
	assert.Equal(t, defaultServerWriteTimeout, cfg.GetWriteTimeout())
}
