package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avast/retry-go/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/config"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

// QueueManager publishes staking events to a RabbitMQ queue. Publishing is
// best effort from the caller's point of view: the manager retries
// transient failures internally, and callers decide whether a final
// failure is fatal to their operation.
type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.AmqpURI())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

func (qm *QueueManager) Start() error {
	_, err := qm.channel.QueueDeclare(
		qm.cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", qm.cfg.QueueName, err)
	}
	return nil
}

func (qm *QueueManager) PushStakingEvent(ctx context.Context, ev *types.StakingEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal staking event: %w", err)
	}

	err = retry.Do(
		func() error {
			publishCtx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
			defer cancel()

			return qm.channel.PublishWithContext(
				publishCtx,
				"",
				qm.cfg.QueueName,
				false, // mandatory
				false, // immediate
				amqp.Publishing{
					ContentType:  "application/json",
					DeliveryMode: amqp.Persistent,
					Body:         body,
				},
			)
		},
		retry.Context(ctx),
		retry.Attempts(qm.cfg.MaxRetryTimes),
		retry.Delay(qm.cfg.RetryInterval),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).
				Uint("attempt", n).
				Str("event_type", ev.EventType.String()).
				Msg("Failed to publish staking event, retrying")
		}),
	)
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish staking event: %w", err)
	}
	return nil
}

// Stop gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Stop() error {
	log.Info().Msg("Shutting down queue manager")
	if err := qm.channel.Close(); err != nil {
		return err
	}
	return qm.conn.Close()
}
