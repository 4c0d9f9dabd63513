package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

// AdvancePeriods rolls the global period counter forward if the boundary has
// passed. Safe to call at any time; does nothing when no period is due.
func (s *Service) AdvancePeriods(ctx context.Context) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advancePeriods(ctx)
}

// advancePeriods must be called with s.mu held. When the boundary has passed
// it freezes the current period's reward-per-staked-unit rate for every
// registered asset, increments the period counter, and moves the boundary
// forward by (1+elapsed) intervals. Only one rate is frozen per call no
// matter how overdue the boundary is: intervals that elapsed beyond the first
// are skipped outright and never receive a rate, so claims covering them pay
// nothing.
func (s *Service) advancePeriods(ctx context.Context) *types.Error {
	state, err := s.db.GetPeriodState(ctx)
	if err != nil {
		return types.NewInternalServiceError(err)
	}

	now := s.clock.Now()
	if now.Before(state.NextPeriodBoundary) {
		metrics.RecordCurrentPeriod(state.CurrentPeriod)
		return nil
	}

	stakables, err := s.db.GetStakables(ctx)
	if err != nil {
		return types.NewInternalServiceError(err)
	}

	for _, stakable := range stakables {
		rate := model.ZeroDec()
		if stakable.StakedAmount.IsPositive() {
			rate = stakable.RewardAmount.Quo(stakable.StakedAmount)
		}
		if err := s.db.SaveRewardRate(ctx, stakable.Asset, state.CurrentPeriod, rate); err != nil {
			// A rate already frozen for this (asset, period) is permanent.
			if db.IsDuplicateKeyError(err) {
				continue
			}
			return types.NewInternalServiceError(err)
		}
	}

	elapsed := extraPeriods(now, state.NextPeriodBoundary, state.PeriodIntervalDays)
	state.CurrentPeriod++
	state.NextPeriodBoundary = state.NextPeriodBoundary.Add(
		time.Duration(1+elapsed) * daysDuration(state.PeriodIntervalDays),
	)

	if err := s.db.UpdatePeriodState(ctx, state); err != nil {
		return types.NewInternalServiceError(err)
	}

	metrics.IncPeriodsAdvanced(1)
	metrics.RecordCurrentPeriod(state.CurrentPeriod)
	log.Info().
		Int64("current_period", state.CurrentPeriod).
		Time("next_boundary", state.NextPeriodBoundary).
		Int64("skipped_intervals", elapsed).
		Msg("Advanced period")

	return nil
}

// extraPeriods is the number of whole intervals that passed since the
// boundary was due, beyond the first. Zero when the call arrives on time.
func extraPeriods(now, boundary time.Time, intervalDays int64) int64 {
	if now.Before(boundary) {
		return 0
	}
	elapsed := int64(now.Sub(boundary) / daysDuration(intervalDays))
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
