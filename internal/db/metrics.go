package db

import (
	"context"
	"time"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetPeriodState(ctx context.Context) (result *model.PeriodStateDocument, err error) {
	//nolint:errcheck
	d.run("GetPeriodState", func() error {
		result, err = d.db.GetPeriodState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) InitPeriodState(ctx context.Context, state *model.PeriodStateDocument) error {
	return d.run("InitPeriodState", func() error {
		return d.db.InitPeriodState(ctx, state)
	})
}

func (d *DbWithMetrics) UpdatePeriodState(ctx context.Context, state *model.PeriodStateDocument) error {
	return d.run("UpdatePeriodState", func() error {
		return d.db.UpdatePeriodState(ctx, state)
	})
}

func (d *DbWithMetrics) SaveRewardRate(ctx context.Context, asset string, period int64, rate model.Dec) error {
	return d.run("SaveRewardRate", func() error {
		return d.db.SaveRewardRate(ctx, asset, period, rate)
	})
}

func (d *DbWithMetrics) GetRewardRates(ctx context.Context, asset string, fromPeriod, toPeriod int64) (result map[int64]model.Dec, err error) {
	//nolint:errcheck
	d.run("GetRewardRates", func() error {
		result, err = d.db.GetRewardRates(ctx, asset, fromPeriod, toPeriod)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveNewStakable(ctx context.Context, stakable *model.StakableDocument) error {
	return d.run("SaveNewStakable", func() error {
		return d.db.SaveNewStakable(ctx, stakable)
	})
}

func (d *DbWithMetrics) GetStakable(ctx context.Context, asset string) (result *model.StakableDocument, err error) {
	//nolint:errcheck
	d.run("GetStakable", func() error {
		result, err = d.db.GetStakable(ctx, asset)
		return err
	})
	return
}

func (d *DbWithMetrics) GetStakables(ctx context.Context) (result []*model.StakableDocument, err error) {
	//nolint:errcheck
	d.run("GetStakables", func() error {
		result, err = d.db.GetStakables(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateStakableTerms(ctx context.Context, asset string, rewardAmount model.Dec, lock model.LockTerms) error {
	return d.run("UpdateStakableTerms", func() error {
		return d.db.UpdateStakableTerms(ctx, asset, rewardAmount, lock)
	})
}

func (d *DbWithMetrics) UpdateStakableRewardAmount(ctx context.Context, asset string, rewardAmount model.Dec) error {
	return d.run("UpdateStakableRewardAmount", func() error {
		return d.db.UpdateStakableRewardAmount(ctx, asset, rewardAmount)
	})
}

func (d *DbWithMetrics) UpdateStakableStakedAmount(ctx context.Context, asset string, stakedAmount model.Dec) error {
	return d.run("UpdateStakableStakedAmount", func() error {
		return d.db.UpdateStakableStakedAmount(ctx, asset, stakedAmount)
	})
}

func (d *DbWithMetrics) SaveNewPosition(ctx context.Context, position *model.PositionDocument) error {
	return d.run("SaveNewPosition", func() error {
		return d.db.SaveNewPosition(ctx, position)
	})
}

func (d *DbWithMetrics) GetPosition(ctx context.Context, id string) (result *model.PositionDocument, err error) {
	//nolint:errcheck
	d.run("GetPosition", func() error {
		result, err = d.db.GetPosition(ctx, id)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdatePosition(ctx context.Context, position *model.PositionDocument) error {
	return d.run("UpdatePosition", func() error {
		return d.db.UpdatePosition(ctx, position)
	})
}

func (d *DbWithMetrics) SaveUnstakeReceipt(ctx context.Context, receipt *model.UnstakeReceiptDocument) error {
	return d.run("SaveUnstakeReceipt", func() error {
		return d.db.SaveUnstakeReceipt(ctx, receipt)
	})
}

func (d *DbWithMetrics) GetUnstakeReceipt(ctx context.Context, id string) (result *model.UnstakeReceiptDocument, err error) {
	//nolint:errcheck
	d.run("GetUnstakeReceipt", func() error {
		result, err = d.db.GetUnstakeReceipt(ctx, id)
		return err
	})
	return
}

func (d *DbWithMetrics) DeleteUnstakeReceipt(ctx context.Context, id string) error {
	return d.run("DeleteUnstakeReceipt", func() error {
		return d.db.DeleteUnstakeReceipt(ctx, id)
	})
}

func (d *DbWithMetrics) SaveTransferReceipt(ctx context.Context, receipt *model.TransferReceiptDocument) error {
	return d.run("SaveTransferReceipt", func() error {
		return d.db.SaveTransferReceipt(ctx, receipt)
	})
}

func (d *DbWithMetrics) GetTransferReceipt(ctx context.Context, id string) (result *model.TransferReceiptDocument, err error) {
	//nolint:errcheck
	d.run("GetTransferReceipt", func() error {
		result, err = d.db.GetTransferReceipt(ctx, id)
		return err
	})
	return
}

func (d *DbWithMetrics) DeleteTransferReceipt(ctx context.Context, id string) error {
	return d.run("DeleteTransferReceipt", func() error {
		return d.db.DeleteTransferReceipt(ctx, id)
	})
}

func (d *DbWithMetrics) DepositToVault(ctx context.Context, asset string, amount model.Dec) error {
	return d.run("DepositToVault", func() error {
		return d.db.DepositToVault(ctx, asset, amount)
	})
}

func (d *DbWithMetrics) WithdrawFromVault(ctx context.Context, asset string, amount model.Dec) error {
	return d.run("WithdrawFromVault", func() error {
		return d.db.WithdrawFromVault(ctx, asset, amount)
	})
}

func (d *DbWithMetrics) VaultBalance(ctx context.Context, asset string) (result model.Dec, err error) {
	//nolint:errcheck
	d.run("VaultBalance", func() error {
		result, err = d.db.VaultBalance(ctx, asset)
		return err
	})
	return
}

func (d *DbWithMetrics) FillRewardPool(ctx context.Context, amount model.Dec) error {
	return d.run("FillRewardPool", func() error {
		return d.db.FillRewardPool(ctx, amount)
	})
}

func (d *DbWithMetrics) WithdrawRewardPool(ctx context.Context, amount model.Dec) error {
	return d.run("WithdrawRewardPool", func() error {
		return d.db.WithdrawRewardPool(ctx, amount)
	})
}

func (d *DbWithMetrics) RewardPoolBalance(ctx context.Context) (result model.Dec, err error) {
	//nolint:errcheck
	d.run("RewardPoolBalance", func() error {
		result, err = d.db.RewardPoolBalance(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
