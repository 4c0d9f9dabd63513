package services

import (
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/mock"

	"github.com/stakewheel-io/staking-engine/internal/config"
	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		Staking: config.StakingConfig{
			PeriodIntervalDays:  7,
			MaxClaimDelay:       10,
			UnstakeDelayDays:    7,
			MaxUnstakeDelayDays: 30,
			DaoControlled:       true,
		},
		Poller: config.PollerConfig{
			PeriodPollingInterval: time.Minute,
		},
	}
}

func newTestService(database db.DbInterface, clk clock.Clock) *Service {
	metrics.Init(9999)
	return NewService(testConfig(), database, clk, nil)
}

func dec(s string) model.Dec {
	d, err := model.DecFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// matchDec matches a model.Dec mock argument by numeric value.
func matchDec(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d model.Dec) bool {
		return !d.IsNil() && d.Equal(want)
	})
}

func testPeriodState(boundary time.Time, currentPeriod int64) *model.PeriodStateDocument {
	return &model.PeriodStateDocument{
		PeriodIntervalDays:  7,
		NextPeriodBoundary:  boundary,
		CurrentPeriod:       currentPeriod,
		MaxClaimDelay:       10,
		UnstakeDelayDays:    7,
		MaxUnstakeDelayDays: 30,
		DaoControlled:       true,
	}
}

func testStakable(asset string, index int, staked, reward string) *model.StakableDocument {
	return &model.StakableDocument{
		Asset:        asset,
		AssetIndex:   index,
		StakedAmount: dec(staked),
		RewardAmount: dec(reward),
		Lock: model.LockTerms{
			Bonus:        dec("0.1"),
			DurationDays: 30,
		},
	}
}

func testPosition(id, owner string, staked []string, nextPeriod int64) *model.PositionDocument {
	amountsStaked := make([]model.Dec, len(staked))
	amountsLocked := make([]model.Dec, len(staked))
	for i, s := range staked {
		amountsStaked[i] = dec(s)
		amountsLocked[i] = model.ZeroDec()
	}
	return &model.PositionDocument{
		ID:            id,
		Owner:         owner,
		AmountsStaked: amountsStaked,
		AmountsLocked: amountsLocked,
		LockedUntil:   make([]*time.Time, len(staked)),
		NextPeriod:    nextPeriod,
	}
}
