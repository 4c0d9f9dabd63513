package services

import (
	"net/http"
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

func TestSetUnstakeDelay_BoundedByMaximum(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	err := srv.SetUnstakeDelay(t.Context(), 31)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestSetUnstakeDelay_WithinBound(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil).Once()
	database.On("UpdatePeriodState", mock.Anything, mock.MatchedBy(func(s *model.PeriodStateDocument) bool {
		return s.UnstakeDelayDays == 14
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	require.Nil(t, srv.SetUnstakeDelay(t.Context(), 14))
}

func TestSetNextBoundaryToNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(100*24*time.Hour), 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil).Once()
	database.On("UpdatePeriodState", mock.Anything, mock.MatchedBy(func(s *model.PeriodStateDocument) bool {
		return s.NextPeriodBoundary.Equal(now)
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	require.Nil(t, srv.SetNextBoundaryToNow(t.Context()))
}

func TestAddStakable_AssignsNextIndex(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
		testStakable("TOKEN-B", 1, "0", "500"),
	}, nil).Once()
	database.On("SaveNewStakable", mock.Anything, mock.MatchedBy(func(s *model.StakableDocument) bool {
		return s.Asset == "TOKEN-C" && s.AssetIndex == 2 && s.StakedAmount.IsZero()
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	stakable, err := srv.AddStakable(t.Context(), "TOKEN-C", dec("100"), model.LockTerms{Bonus: dec("0.05"), DurationDays: 14})
	require.Nil(t, err)
	assert.Equal(t, 2, stakable.AssetIndex)
}

func TestAddStakable_DuplicateAssetRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil).Once()
	database.On("SaveNewStakable", mock.Anything, mock.Anything).
		Return(&db.DuplicateKeyError{Key: "TOKEN-A", Message: "stakable asset already exists"}).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	_, err := srv.AddStakable(t.Context(), "TOKEN-A", dec("100"), model.LockTerms{})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestFillRewardPool_RejectsNonPositive(t *testing.T) {
	database := mocks.NewDbInterface(t)
	srv := newTestService(database, clock.NewTestClock(time.Now()))

	require.NotNil(t, srv.FillRewardPool(t.Context(), dec("0")))
	require.NotNil(t, srv.FillRewardPool(t.Context(), model.Dec{}))
}
