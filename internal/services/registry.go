package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

// AddStakable registers a new asset. The asset takes the next free slot in
// the registry order; that index is permanent and defines the asset's
// position in every holder's vectors from now on. Overdue periods are rolled
// forward first so the new asset cannot be assigned a rate for a period it
// did not exist in.
func (s *Service) AddStakable(
	ctx context.Context,
	asset string,
	rewardAmount model.Dec,
	lock model.LockTerms,
) (*model.StakableDocument, *types.Error) {
	if asset == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "asset is required")
	}
	if rewardAmount.IsNil() || rewardAmount.IsNegative() {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "reward amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.advancePeriods(ctx); err != nil {
		return nil, err
	}

	stakables, err := s.db.GetStakables(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	stakable := model.NewStakableDocument(asset, len(stakables), rewardAmount, lock, s.clock.Now())
	if err := s.db.SaveNewStakable(ctx, stakable); err != nil {
		return nil, fromDbError(err)
	}

	log.Info().
		Str("asset", asset).
		Int("asset_index", stakable.AssetIndex).
		Msg("Registered stakable asset")

	return stakable, nil
}

// EditStakable replaces an asset's reward amount and lock terms. Rates
// already frozen for past periods are untouched; the new terms apply to
// periods not yet declared. Periods are rolled forward first so a boundary
// that was already due freezes under the old terms.
func (s *Service) EditStakable(
	ctx context.Context,
	asset string,
	rewardAmount model.Dec,
	lock model.LockTerms,
) *types.Error {
	if rewardAmount.IsNil() || rewardAmount.IsNegative() {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "reward amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.advancePeriods(ctx); err != nil {
		return err
	}

	if err := s.db.UpdateStakableTerms(ctx, asset, rewardAmount, lock); err != nil {
		return fromDbError(err)
	}

	log.Info().Str("asset", asset).Msg("Edited stakable asset")
	return nil
}

// SetRewardAmount changes only the per-period reward amount of an asset.
func (s *Service) SetRewardAmount(ctx context.Context, asset string, rewardAmount model.Dec) *types.Error {
	if rewardAmount.IsNil() || rewardAmount.IsNegative() {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "reward amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.advancePeriods(ctx); err != nil {
		return err
	}

	if err := s.db.UpdateStakableRewardAmount(ctx, asset, rewardAmount); err != nil {
		return fromDbError(err)
	}

	log.Info().Str("asset", asset).Str("reward_amount", rewardAmount.String()).Msg("Set reward amount")
	return nil
}

// GetStakables returns the registry in index order.
func (s *Service) GetStakables(ctx context.Context) ([]*model.StakableDocument, *types.Error) {
	stakables, err := s.db.GetStakables(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	return stakables, nil
}
