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

// UnstakeResult describes the receipt minted by StartUnstake. RedemptionTime
// is nil for transfer receipts, which carry no time lock.
type UnstakeResult struct {
	ReceiptID      string
	Asset          string
	Amount         model.Dec
	Transfer       bool
	RedemptionTime *time.Time
}

// StartUnstake debits the position immediately and mints either an unstake
// receipt redeemable after the configured delay, or a transfer receipt that
// can only be merged into a position via Stake. unstakeAll resolves the exact
// staked amount so no dust is left behind.
func (s *Service) StartUnstake(
	ctx context.Context,
	owner, positionID, asset string,
	amount model.Dec,
	unstakeAll, asTransfer bool,
) (_ *UnstakeResult, opErr *types.Error) {
	defer observeOperation("start_unstake", time.Now(), &opErr)

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
	staked := position.AmountsStaked[idx]
	if !staked.IsPositive() {
		return nil, types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.UnprocessableEntity,
			fmt.Sprintf("position has no %s staked", asset),
		)
	}

	now := s.clock.Now()
	if lockedUntil := position.LockedUntil[idx]; lockedUntil != nil && now.Before(*lockedUntil) {
		return nil, types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.UnprocessableEntity,
			fmt.Sprintf("stake is locked until %s", lockedUntil.Format(time.RFC3339)),
		)
	}

	if unstakeAll {
		amount = staked
	} else {
		if amount.IsNil() || !amount.IsPositive() {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "unstake amount must be positive")
		}
		if amount.GT(staked) {
			return nil, types.NewErrorWithMsg(
				http.StatusUnprocessableEntity, types.UnprocessableEntity,
				fmt.Sprintf("cannot unstake %s, only %s staked", amount, staked),
			)
		}
	}

	position.AmountsStaked[idx] = staked.Sub(amount)
	position.UpdatedAt = now

	result := &UnstakeResult{
		Asset:    asset,
		Amount:   amount,
		Transfer: asTransfer,
	}
	eventType := types.EventUnstakeStartedType
	if asTransfer {
		receipt := model.NewTransferReceiptDocument(asset, amount, now)
		if err := s.db.SaveTransferReceipt(ctx, receipt); err != nil {
			return nil, fromDbError(err)
		}
		result.ReceiptID = receipt.ID
		eventType = types.EventStakeTransferType
	} else {
		redemptionTime := now.Add(daysDuration(state.UnstakeDelayDays))
		receipt := model.NewUnstakeReceiptDocument(asset, amount, redemptionTime, now)
		if err := s.db.SaveUnstakeReceipt(ctx, receipt); err != nil {
			return nil, fromDbError(err)
		}
		result.ReceiptID = receipt.ID
		result.RedemptionTime = &redemptionTime
	}

	if err := s.db.UpdateStakableStakedAmount(ctx, asset, stakable.StakedAmount.Sub(amount)); err != nil {
		return nil, fromDbError(err)
	}
	if err := s.db.UpdatePosition(ctx, position); err != nil {
		return nil, fromDbError(err)
	}

	log.Info().
		Str("position_id", positionID).
		Str("asset", asset).
		Str("amount", amount.String()).
		Bool("transfer", asTransfer).
		Msg("Unstake started")

	s.publishEvent(ctx, &types.StakingEvent{
		EventType:  eventType,
		PositionID: positionID,
		ReceiptID:  result.ReceiptID,
		Asset:      asset,
		Amount:     amount.String(),
		Period:     state.CurrentPeriod,
		Timestamp:  now,
	})

	return result, nil
}

// FinishUnstake burns an unstake receipt and releases the custodied amount.
// Redemption is a temporal gate, not a queue: a call before the receipt's
// redemption time is rejected and must be resubmitted later. The burn is
// single-shot, so a receipt can never pay out twice.
func (s *Service) FinishUnstake(ctx context.Context, receiptID string) (_ *UnstakeResult, opErr *types.Error) {
	defer observeOperation("finish_unstake", time.Now(), &opErr)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.advancePeriods(ctx); err != nil {
		return nil, err
	}

	receipt, err := s.db.GetUnstakeReceipt(ctx, receiptID)
	if err != nil {
		return nil, fromDbError(err)
	}

	now := s.clock.Now()
	if now.Before(receipt.RedemptionTime) {
		return nil, types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.UnprocessableEntity,
			fmt.Sprintf("receipt is not redeemable until %s", receipt.RedemptionTime.Format(time.RFC3339)),
		)
	}

	if err := s.db.DeleteUnstakeReceipt(ctx, receiptID); err != nil {
		return nil, fromDbError(err)
	}
	if err := s.db.WithdrawFromVault(ctx, receipt.Asset, receipt.Amount); err != nil {
		return nil, fromDbError(err)
	}

	log.Info().
		Str("receipt_id", receiptID).
		Str("asset", receipt.Asset).
		Str("amount", receipt.Amount.String()).
		Msg("Unstake finished")

	s.publishEvent(ctx, &types.StakingEvent{
		EventType: types.EventUnstakeFinishedType,
		ReceiptID: receiptID,
		Asset:     receipt.Asset,
		Amount:    receipt.Amount.String(),
		Timestamp: now,
	})

	return &UnstakeResult{
		ReceiptID: receiptID,
		Asset:     receipt.Asset,
		Amount:    receipt.Amount,
	}, nil
}
