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

// Claim pays out the position's accrued rewards and advances its claim
// cursor past the current period. The payout sums each asset's frozen
// per-period rate times the position's staked amount over the claimable
// window; periods older than the max claim delay are forfeited, and periods
// that never had a rate frozen contribute nothing. Disbursement from the
// reward pool is all-or-nothing.
func (s *Service) Claim(ctx context.Context, owner, positionID string) (_ model.Dec, opErr *types.Error) {
	defer observeOperation("claim", time.Now(), &opErr)

	s.mu.Lock()
	defer s.mu.Unlock()

	position, state, stakables, serviceErr := s.loadPosition(ctx, owner, positionID)
	if serviceErr != nil {
		return model.Dec{}, serviceErr
	}

	claimable := claimableWindow(state.CurrentPeriod, position.NextPeriod, state.MaxClaimDelay)
	if claimable <= 0 {
		return model.Dec{}, types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.UnprocessableEntity,
			"nothing to claim yet",
		)
	}

	fromPeriod := state.CurrentPeriod - claimable
	toPeriod := state.CurrentPeriod - 1

	total := model.ZeroDec()
	for _, stakable := range stakables {
		staked := position.AmountsStaked[stakable.AssetIndex]
		if !staked.IsPositive() {
			continue
		}

		rates, err := s.db.GetRewardRates(ctx, stakable.Asset, fromPeriod, toPeriod)
		if err != nil {
			return model.Dec{}, types.NewInternalServiceError(err)
		}
		for _, rate := range rates {
			total = total.Add(rate.Mul(staked))
		}
	}

	if total.IsPositive() {
		balance, err := s.db.RewardPoolBalance(ctx)
		if err != nil {
			return model.Dec{}, types.NewInternalServiceError(err)
		}
		if balance.LT(total) {
			return model.Dec{}, types.NewErrorWithMsg(
				http.StatusConflict, types.InsufficientFunds,
				fmt.Sprintf("reward pool holds %s, claim requires %s", balance, total),
			)
		}
	}

	position.NextPeriod = state.CurrentPeriod + 1
	position.UpdatedAt = s.clock.Now()
	if err := s.db.UpdatePosition(ctx, position); err != nil {
		return model.Dec{}, fromDbError(err)
	}

	if total.IsPositive() {
		if err := s.db.WithdrawRewardPool(ctx, total); err != nil {
			return model.Dec{}, fromDbError(err)
		}
	}

	log.Info().
		Str("position_id", positionID).
		Str("amount", total.String()).
		Int64("periods", claimable).
		Msg("Claimed rewards")

	s.publishEvent(ctx, &types.StakingEvent{
		EventType:  types.EventRewardsClaimedType,
		PositionID: positionID,
		Amount:     total.String(),
		Period:     state.CurrentPeriod,
		Timestamp:  s.clock.Now(),
	})

	return total, nil
}

// claimableWindow is how many past periods the position can still claim:
// everything from its cursor through the last closed period, capped at
// maxClaimDelay. Zero or negative means no period has closed since the
// cursor was set.
func claimableWindow(currentPeriod, nextPeriod, maxClaimDelay int64) int64 {
	claimable := currentPeriod - nextPeriod + 1
	if claimable > maxClaimDelay {
		return maxClaimDelay
	}
	return claimable
}
