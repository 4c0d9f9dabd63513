package services

import (
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/tests/mocks"
)

func TestExtraPeriods(t *testing.T) {
	boundary := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("before boundary", func(t *testing.T) {
		assert.Equal(t, int64(0), extraPeriods(boundary.Add(-time.Hour), boundary, 7))
	})

	t.Run("exactly at boundary", func(t *testing.T) {
		assert.Equal(t, int64(0), extraPeriods(boundary, boundary, 7))
	})

	t.Run("late within one interval", func(t *testing.T) {
		assert.Equal(t, int64(0), extraPeriods(boundary.Add(6*24*time.Hour), boundary, 7))
	})

	t.Run("one full interval late", func(t *testing.T) {
		assert.Equal(t, int64(1), extraPeriods(boundary.Add(7*24*time.Hour), boundary, 7))
	})

	t.Run("several intervals late", func(t *testing.T) {
		assert.Equal(t, int64(2), extraPeriods(boundary.Add(20*24*time.Hour), boundary, 7))
	})
}

func TestAdvancePeriods_NoopBeforeBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).
		Return(testPeriodState(now.Add(time.Hour), 5), nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	require.Nil(t, srv.AdvancePeriods(t.Context()))
}

func TestAdvancePeriods_FreezesRatesAndMovesBoundary(t *testing.T) {
	boundary := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := boundary.Add(time.Hour)
	state := testPeriodState(boundary, 5)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil).Once()
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
		testStakable("TOKEN-B", 1, "0", "500"),
	}, nil).Once()
	// 700 reward over 350 staked freezes a rate of 2 per unit; an asset with
	// nothing staked freezes 0.
	database.On("SaveRewardRate", mock.Anything, "TOKEN-A", int64(5), matchDec("2")).Return(nil).Once()
	database.On("SaveRewardRate", mock.Anything, "TOKEN-B", int64(5), matchDec("0")).Return(nil).Once()
	database.On("UpdatePeriodState", mock.Anything, mock.MatchedBy(func(s *model.PeriodStateDocument) bool {
		return s.CurrentPeriod == 6 && s.NextPeriodBoundary.Equal(boundary.Add(7*24*time.Hour))
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	require.Nil(t, srv.AdvancePeriods(t.Context()))
}

func TestAdvancePeriods_OverdueSkipsIntervals(t *testing.T) {
	boundary := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// 17 days late with a 7 day interval: two whole extra intervals passed.
	now := boundary.Add(17 * 24 * time.Hour)
	state := testPeriodState(boundary, 5)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil).Once()
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil).Once()
	// Only one rate is frozen, for the period that was current. The skipped
	// intervals never get a rate.
	database.On("SaveRewardRate", mock.Anything, "TOKEN-A", int64(5), matchDec("2")).Return(nil).Once()
	database.On("UpdatePeriodState", mock.Anything, mock.MatchedBy(func(s *model.PeriodStateDocument) bool {
		return s.CurrentPeriod == 6 && s.NextPeriodBoundary.Equal(boundary.Add(21*24*time.Hour))
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	require.Nil(t, srv.AdvancePeriods(t.Context()))
}

func TestAdvancePeriods_AlreadyFrozenRateIsPermanent(t *testing.T) {
	boundary := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(boundary, 5)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil).Once()
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil).Once()
	database.On("SaveRewardRate", mock.Anything, "TOKEN-A", int64(5), mock.Anything).
		Return(&db.DuplicateKeyError{Key: "TOKEN-A", Message: "already frozen"}).Once()
	database.On("UpdatePeriodState", mock.Anything, mock.Anything).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(boundary.Add(time.Minute)))
	require.Nil(t, srv.AdvancePeriods(t.Context()))
}
