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

// Stake adds funds and/or a burned stake-transfer receipt to a position. The
// holder must have no unclaimed-period backlog: staking while rewards are
// pending would change the staked amounts that past periods' claims are
// computed from, so the claim has to happen first. New stake earns from the
// next period onward.
func (s *Service) Stake(
	ctx context.Context,
	owner, positionID, asset string,
	amount model.Dec,
	transferReceiptID string,
) (_ *model.PositionDocument, opErr *types.Error) {
	defer observeOperation("stake", time.Now(), &opErr)

	s.mu.Lock()
	defer s.mu.Unlock()

	position, state, stakables, serviceErr := s.loadPosition(ctx, owner, positionID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	if position.NextPeriod < state.CurrentPeriod {
		return nil, types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.UnprocessableEntity,
			"position has unclaimed rewards, claim before staking",
		)
	}

	stakable := findStakable(stakables, asset)
	if stakable == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound,
			fmt.Sprintf("asset %s is not registered for staking", asset),
		)
	}

	if amount.IsNil() {
		amount = model.ZeroDec()
	}
	if amount.IsNegative() {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "stake amount cannot be negative")
	}

	total := amount
	if transferReceiptID != "" {
		receipt, err := s.db.GetTransferReceipt(ctx, transferReceiptID)
		if err != nil {
			return nil, fromDbError(err)
		}
		if receipt.Asset != asset {
			return nil, types.NewErrorWithMsg(
				http.StatusUnprocessableEntity, types.UnprocessableEntity,
				fmt.Sprintf("transfer receipt is for asset %s, not %s", receipt.Asset, asset),
			)
		}
		total = total.Add(receipt.Amount)

		// Burning the receipt is what makes its funds single-spend.
		if err := s.db.DeleteTransferReceipt(ctx, transferReceiptID); err != nil {
			return nil, fromDbError(err)
		}
	}

	if !total.IsPositive() {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "stake amount must be positive")
	}

	idx := stakable.AssetIndex
	position.AmountsStaked[idx] = position.AmountsStaked[idx].Add(total)
	position.NextPeriod = state.CurrentPeriod + 1
	position.UpdatedAt = s.clock.Now()

	if err := s.db.UpdateStakableStakedAmount(ctx, asset, stakable.StakedAmount.Add(total)); err != nil {
		return nil, fromDbError(err)
	}
	// Only the fresh funds enter the vault here; a transfer receipt's amount
	// never left custody.
	if amount.IsPositive() {
		if err := s.db.DepositToVault(ctx, asset, amount); err != nil {
			return nil, fromDbError(err)
		}
	}
	if err := s.db.UpdatePosition(ctx, position); err != nil {
		return nil, fromDbError(err)
	}

	log.Info().
		Str("position_id", positionID).
		Str("asset", asset).
		Str("amount", total.String()).
		Msg("Staked")

	s.publishEvent(ctx, &types.StakingEvent{
		EventType:  types.EventActiveStakeType,
		PositionID: positionID,
		ReceiptID:  transferReceiptID,
		Asset:      asset,
		Amount:     total.String(),
		Period:     state.CurrentPeriod,
		Timestamp:  s.clock.Now(),
	})

	return position, nil
}

func findStakable(stakables []*model.StakableDocument, asset string) *model.StakableDocument {
	for _, stakable := range stakables {
		if stakable.Asset == asset {
			return stakable
		}
	}
	return nil
}
