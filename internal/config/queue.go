package config

import (
	"fmt"
	"time"
)

type QueueConfig struct {
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Url            string        `mapstructure:"url"`
	QueueName      string        `mapstructure:"queue-name"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return fmt.Errorf("missing queue user")
	}
	if cfg.Password == "" {
		return fmt.Errorf("missing queue password")
	}
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}
	if cfg.QueueName == "" {
		return fmt.Errorf("missing queue name")
	}
	if cfg.PublishTimeout <= 0 {
		return fmt.Errorf("queue publish timeout should be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("queue max retry times should be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("queue retry interval should be positive")
	}

	return nil
}

func (cfg *QueueConfig) AmqpURI() string {
	return fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url)
}
