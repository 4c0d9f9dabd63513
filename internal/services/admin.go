package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

// SetPeriodInterval changes the spacing of future period boundaries. The
// boundary already scheduled stays where it is; the new interval applies from
// the next advance onward.
func (s *Service) SetPeriodInterval(ctx context.Context, days int64) *types.Error {
	if days <= 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "period interval must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updatePeriodState(ctx, func(state *model.PeriodStateDocument) {
		state.PeriodIntervalDays = days
	})
}

func (s *Service) SetMaxClaimDelay(ctx context.Context, periods int64) *types.Error {
	if periods <= 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "max claim delay must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updatePeriodState(ctx, func(state *model.PeriodStateDocument) {
		state.MaxClaimDelay = periods
	})
}

// SetUnstakeDelay changes the wait between requesting and redeeming an
// unstake, bounded by the fixed maximum configured at bootstrap.
func (s *Service) SetUnstakeDelay(ctx context.Context, days int64) *types.Error {
	if days < 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "unstake delay cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.db.GetPeriodState(ctx)
	if err != nil {
		return types.NewInternalServiceError(err)
	}
	if days > state.MaxUnstakeDelayDays {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest,
			fmt.Sprintf("unstake delay %d exceeds maximum %d", days, state.MaxUnstakeDelayDays),
		)
	}

	state.UnstakeDelayDays = days
	if err := s.db.UpdatePeriodState(ctx, state); err != nil {
		return types.NewInternalServiceError(err)
	}

	log.Info().Int64("unstake_delay_days", days).Msg("Set unstake delay")
	return nil
}

// SetNextBoundaryToNow forces the next period boundary to the current
// instant, so the next AdvancePeriods call closes the running period
// immediately.
func (s *Service) SetNextBoundaryToNow(ctx context.Context) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	return s.updatePeriodState(ctx, func(state *model.PeriodStateDocument) {
		state.NextPeriodBoundary = now
	})
}

func (s *Service) FillRewardPool(ctx context.Context, amount model.Dec) *types.Error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "fill amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.FillRewardPool(ctx, amount); err != nil {
		return fromDbError(err)
	}

	s.recordRewardPoolBalance(ctx)
	log.Info().Str("amount", amount.String()).Msg("Filled reward pool")
	return nil
}

func (s *Service) WithdrawRewardPool(ctx context.Context, amount model.Dec) *types.Error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "withdraw amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithdrawRewardPool(ctx, amount); err != nil {
		return fromDbError(err)
	}

	s.recordRewardPoolBalance(ctx)
	log.Info().Str("amount", amount.String()).Msg("Withdrew from reward pool")
	return nil
}

// updatePeriodState applies a mutation to the singleton period state. Must be
// called with s.mu held.
func (s *Service) updatePeriodState(ctx context.Context, mutate func(*model.PeriodStateDocument)) *types.Error {
	state, err := s.db.GetPeriodState(ctx)
	if err != nil {
		return types.NewInternalServiceError(err)
	}

	mutate(state)
	if err := s.db.UpdatePeriodState(ctx, state); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}

func (s *Service) recordRewardPoolBalance(ctx context.Context) {
	balance, err := s.db.RewardPoolBalance(ctx)
	if err != nil {
		return
	}
	if f, err := balance.Float64(); err == nil {
		metrics.RecordRewardPoolBalance(f)
	}
}
