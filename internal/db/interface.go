package db

import (
	"context"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	// Period accounting
	GetPeriodState(ctx context.Context) (*model.PeriodStateDocument, error)
	InitPeriodState(ctx context.Context, state *model.PeriodStateDocument) error
	UpdatePeriodState(ctx context.Context, state *model.PeriodStateDocument) error
	SaveRewardRate(ctx context.Context, asset string, period int64, rate model.Dec) error
	GetRewardRates(ctx context.Context, asset string, fromPeriod, toPeriod int64) (map[int64]model.Dec, error)

	// Stakable registry
	SaveNewStakable(ctx context.Context, stakable *model.StakableDocument) error
	GetStakable(ctx context.Context, asset string) (*model.StakableDocument, error)
	GetStakables(ctx context.Context) ([]*model.StakableDocument, error)
	UpdateStakableTerms(ctx context.Context, asset string, rewardAmount model.Dec, lock model.LockTerms) error
	UpdateStakableRewardAmount(ctx context.Context, asset string, rewardAmount model.Dec) error
	UpdateStakableStakedAmount(ctx context.Context, asset string, stakedAmount model.Dec) error

	// Positions
	SaveNewPosition(ctx context.Context, position *model.PositionDocument) error
	GetPosition(ctx context.Context, id string) (*model.PositionDocument, error)
	UpdatePosition(ctx context.Context, position *model.PositionDocument) error

	// Receipts
	SaveUnstakeReceipt(ctx context.Context, receipt *model.UnstakeReceiptDocument) error
	GetUnstakeReceipt(ctx context.Context, id string) (*model.UnstakeReceiptDocument, error)
	DeleteUnstakeReceipt(ctx context.Context, id string) error
	SaveTransferReceipt(ctx context.Context, receipt *model.TransferReceiptDocument) error
	GetTransferReceipt(ctx context.Context, id string) (*model.TransferReceiptDocument, error)
	DeleteTransferReceipt(ctx context.Context, id string) error

	// Custody bookkeeping
	DepositToVault(ctx context.Context, asset string, amount model.Dec) error
	WithdrawFromVault(ctx context.Context, asset string, amount model.Dec) error
	VaultBalance(ctx context.Context, asset string) (model.Dec, error)
	FillRewardPool(ctx context.Context, amount model.Dec) error
	WithdrawRewardPool(ctx context.Context, amount model.Dec) error
	RewardPoolBalance(ctx context.Context) (model.Dec, error)
}
