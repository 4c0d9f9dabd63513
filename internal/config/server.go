package config

import (
	"fmt"
	"time"
)

const (
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
)

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	AdminToken   string        `mapstructure:"admin-token"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("missing server host")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if cfg.AdminToken == "" {
		return fmt.Errorf("missing server admin token")
	}

	return nil
}

func (cfg *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

func (cfg *ServerConfig) GetReadTimeout() time.Duration {
	if cfg.ReadTimeout == 0 {
		return defaultServerReadTimeout
	}
	return cfg.ReadTimeout
}

func (cfg *ServerConfig) GetWriteTimeout() time.Duration {
	if cfg.WriteTimeout == 0 {
		return defaultServerWriteTimeout
	}
	return cfg.WriteTimeout
}
