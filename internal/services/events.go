package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/types"
)

// publishEvent sends a staking event to the queue. Publishing is not part of
// the operation's transaction: a failed publish is logged and the operation
// still succeeds.
func (s *Service) publishEvent(ctx context.Context, ev *types.StakingEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PushStakingEvent(ctx, ev); err != nil {
		log.Error().Err(err).
			Str("event_type", ev.EventType.String()).
			Str("position_id", ev.PositionID).
			Msg("Failed to publish staking event")
	}
}
