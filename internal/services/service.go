package services

import (
	"context"
	"sync"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/consumer"
	"github.com/stakewheel-io/staking-engine/internal/config"
	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
	"github.com/stakewheel-io/staking-engine/internal/types"
	"github.com/stakewheel-io/staking-engine/internal/utils/poller"
)

// Service owns all staking state transitions. State-changing operations are
// serialized by mu: each one runs to completion before the next starts, so an
// operation never observes another operation's partial writes. Inside an
// operation the discipline is validate-then-write: every read and
// precondition check completes before the first write.
type Service struct {
	cfg    *config.Config
	db     db.DbInterface
	clock  clock.Clock
	events consumer.EventConsumer

	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	clk clock.Clock,
	events consumer.EventConsumer,
) *Service {
	return &Service{
		cfg:    cfg,
		db:     db,
		clock:  clk,
		events: events,
	}
}

// Init seeds the singleton period state on the first start against an empty
// database. Restarts find the document already present and leave the running
// counters untouched.
func (s *Service) Init(ctx context.Context) error {
	now := s.clock.Now()
	state := &model.PeriodStateDocument{
		PeriodIntervalDays:  s.cfg.Staking.PeriodIntervalDays,
		NextPeriodBoundary:  now.Add(daysDuration(s.cfg.Staking.PeriodIntervalDays)),
		CurrentPeriod:       0,
		MaxClaimDelay:       s.cfg.Staking.MaxClaimDelay,
		UnstakeDelayDays:    s.cfg.Staking.UnstakeDelayDays,
		MaxUnstakeDelayDays: s.cfg.Staking.MaxUnstakeDelayDays,
		DaoControlled:       s.cfg.Staking.DaoControlled,
	}
	return s.db.InitPeriodState(ctx, state)
}

// StartPeriodPoller keeps periods advancing even when no holder operation
// arrives. It reuses the same idempotent entry point the operations call.
func (s *Service) StartPeriodPoller(ctx context.Context) {
	p := poller.NewPoller(s.cfg.Poller.PeriodPollingInterval, s.pollAdvancePeriods)
	go p.Start(ctx)
}

func (s *Service) pollAdvancePeriods(ctx context.Context) *types.Error {
	startTime := time.Now()
	err := s.AdvancePeriods(ctx)
	metrics.RecordPollerDuration(time.Since(startTime), "advance_periods", err != nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to advance periods from poller")
	}
	return err
}

func daysDuration(days int64) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

// observeOperation records the duration and outcome of one staking operation.
// Use with defer, passing the operation's named error return.
func observeOperation(operation string, start time.Time, opErr **types.Error) {
	metrics.RecordOperationDuration(time.Since(start), operation, *opErr != nil)
}
