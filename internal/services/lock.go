package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

// LockResult describes a voluntary lock: when it expires and the bonus paid
// out for taking it.
type LockResult struct {
	LockedUntil time.Time
	Bonus       model.Dec
}

// LockStake time-locks the position's stake in an asset for the asset's
// configured lock duration and immediately pays the lock bonus per staked
// unit from the reward pool. The bonus is an incentive separate from the
// periodic reward mechanism. Re-locking before the current lock expires is
// rejected.
func (s *Service) LockStake(ctx context.Context, owner, positionID, asset string) (_ *LockResult, opErr *types.Error) {
	defer observeOperation("lock_stake", time.Now(), &opErr)

	s.mu.Lock()
	defer s.mu.Unlock()

	position, state, stakables, serviceErr := s.loadPosition(ctx, owner, positionID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	stakable := findStakable(stakables, asset)
	if stakable == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound,
			fmt.Sprintf("asset %s is not registered for staking", asset),
		)
	}

	idx := stakable.AssetIndex
	now := s.clock.Now()
	if lockedUntil := position.LockedUntil[idx]; lockedUntil != nil && now.Before(*lockedUntil) {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict, types.Conflict,
			fmt.Sprintf("stake is already locked until %s", lockedUntil.Format(time.RFC3339)),
		)
	}

	lockedUntil := now.Add(daysDuration(stakable.Lock.DurationDays))
	bonus := stakable.Lock.Bonus.Mul(position.AmountsStaked[idx])

	if bonus.IsPositive() {
		balance, err := s.db.RewardPoolBalance(ctx)
		if err != nil {
			return nil, types.NewInternalServiceError(err)
		}
		if balance.LT(bonus) {
			return nil, types.NewErrorWithMsg(
				http.StatusConflict, types.InsufficientFunds,
				fmt.Sprintf("reward pool holds %s, lock bonus requires %s", balance, bonus),
			)
		}
	}

	position.LockedUntil[idx] = &lockedUntil
	position.UpdatedAt = now
	if err := s.db.UpdatePosition(ctx, position); err != nil {
		return nil, fromDbError(err)
	}

	if bonus.IsPositive() {
		if err := s.db.WithdrawRewardPool(ctx, bonus); err != nil {
			return nil, fromDbError(err)
		}
	}

	log.Info().
		Str("position_id", positionID).
		Str("asset", asset).
		Time("locked_until", lockedUntil).
		Str("bonus", bonus.String()).
		Msg("Stake locked")

	s.publishEvent(ctx, &types.StakingEvent{
		EventType:  types.EventStakeLockedType,
		PositionID: positionID,
		Asset:      asset,
		Amount:     bonus.String(),
		Period:     state.CurrentPeriod,
		Timestamp:  now,
	})

	return &LockResult{LockedUntil: lockedUntil, Bonus: bonus}, nil
}

// SetLock writes a position's lock expiry directly. This is the governance
// path for vote-escrow style locking; it is only available while the
// dao_controlled flag is set, so a lone admin cannot freeze holder funds.
func (s *Service) SetLock(ctx context.Context, positionID, asset string, lockedUntil time.Time) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.db.GetPeriodState(ctx)
	if err != nil {
		return types.NewInternalServiceError(err)
	}
	if !state.DaoControlled {
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.Forbidden,
			"governance locking is disabled",
		)
	}

	stakables, err := s.db.GetStakables(ctx)
	if err != nil {
		return types.NewInternalServiceError(err)
	}
	stakable := findStakable(stakables, asset)
	if stakable == nil {
		return types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound,
			fmt.Sprintf("asset %s is not registered for staking", asset),
		)
	}

	position, err := s.db.GetPosition(ctx, positionID)
	if err != nil {
		return fromDbError(err)
	}
	reconcileVectors(position, len(stakables))

	position.LockedUntil[stakable.AssetIndex] = &lockedUntil
	position.UpdatedAt = s.clock.Now()
	if err := s.db.UpdatePosition(ctx, position); err != nil {
		return fromDbError(err)
	}

	log.Info().
		Str("position_id", positionID).
		Str("asset", asset).
		Time("locked_until", lockedUntil).
		Msg("Governance lock set")

	return nil
}
