package consumer

import (
	"context"

	"github.com/stakewheel-io/staking-engine/internal/types"
)

type EventConsumer interface {
	Start() error
	PushStakingEvent(ctx context.Context, ev *types.StakingEvent) error
	Stop() error
}
