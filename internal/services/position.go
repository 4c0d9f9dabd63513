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

// CreatePosition mints a new staking ID for the owner. Its vectors are sized
// to the registry as of now and its claim cursor starts at the next period,
// so rewards begin accruing from the first full period the position exists.
func (s *Service) CreatePosition(ctx context.Context, owner string) (_ *model.PositionDocument, opErr *types.Error) {
	defer observeOperation("create_position", time.Now(), &opErr)

	if owner == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "owner is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.advancePeriods(ctx); err != nil {
		return nil, err
	}

	state, err := s.db.GetPeriodState(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	stakables, err := s.db.GetStakables(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	position := model.NewPositionDocument(owner, len(stakables), state.CurrentPeriod+1, s.clock.Now())
	if err := s.db.SaveNewPosition(ctx, position); err != nil {
		return nil, fromDbError(err)
	}

	log.Info().Str("position_id", position.ID).Str("owner", owner).Msg("Created position")
	return position, nil
}

// GetPositionDetails returns the owner's position after rolling periods
// forward and reconciling its vectors against the current registry.
func (s *Service) GetPositionDetails(ctx context.Context, owner, positionID string) (*model.PositionDocument, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	position, _, _, err := s.loadPosition(ctx, owner, positionID)
	if err != nil {
		return nil, err
	}
	return position, nil
}

// loadPosition is the shared preamble of every holder-facing operation: roll
// overdue periods forward, fetch the period state and the ordered registry,
// check ownership, and reconcile the position's vectors against registry
// growth. Must be called with s.mu held. A reconciled (grown) position is
// persisted before the caller proceeds.
func (s *Service) loadPosition(ctx context.Context, owner, positionID string) (
	*model.PositionDocument,
	*model.PeriodStateDocument,
	[]*model.StakableDocument,
	*types.Error,
) {
	if err := s.advancePeriods(ctx); err != nil {
		return nil, nil, nil, err
	}

	state, err := s.db.GetPeriodState(ctx)
	if err != nil {
		return nil, nil, nil, types.NewInternalServiceError(err)
	}
	stakables, err := s.db.GetStakables(ctx)
	if err != nil {
		return nil, nil, nil, types.NewInternalServiceError(err)
	}
	position, err := s.db.GetPosition(ctx, positionID)
	if err != nil {
		return nil, nil, nil, fromDbError(err)
	}
	if position.Owner != owner {
		return nil, nil, nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.Forbidden,
			fmt.Sprintf("position %s does not belong to caller", positionID),
		)
	}

	if reconcileVectors(position, len(stakables)) {
		position.UpdatedAt = s.clock.Now()
		if err := s.db.UpdatePosition(ctx, position); err != nil {
			return nil, nil, nil, fromDbError(err)
		}
	}

	return position, state, stakables, nil
}

// reconcileVectors extends the position's parallel vectors with zero/absent
// entries up to the registry size, preserving existing entries and their
// index alignment. It never truncates or reorders; calling it twice is a
// no-op the second time. Reports whether the vectors grew.
func reconcileVectors(position *model.PositionDocument, registrySize int) bool {
	if len(position.AmountsStaked) >= registrySize {
		return false
	}

	for i := len(position.AmountsStaked); i < registrySize; i++ {
		position.AmountsStaked = append(position.AmountsStaked, model.ZeroDec())
		position.AmountsLocked = append(position.AmountsLocked, model.ZeroDec())
		position.LockedUntil = append(position.LockedUntil, nil)
	}
	return true
}
