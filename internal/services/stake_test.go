package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/types"
	"github.com/stakewheel-io/staking-engine/tests/mocks"
)

func TestStake_AddsFundsAndAdvancesCursor(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)
	position := testPosition("pos-1", "alice", []string{"100"}, 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()
	database.On("UpdateStakableStakedAmount", mock.Anything, "TOKEN-A", matchDec("450")).Return(nil).Once()
	database.On("DepositToVault", mock.Anything, "TOKEN-A", matchDec("100")).Return(nil).Once()
	database.On("UpdatePosition", mock.Anything, mock.MatchedBy(func(p *model.PositionDocument) bool {
		return p.AmountsStaked[0].Equal(dec("200")) && p.NextPeriod == 7
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	got, err := srv.Stake(t.Context(), "alice", "pos-1", "TOKEN-A", dec("100"), "")
	require.Nil(t, err)
	assert.True(t, got.AmountsStaked[0].Equal(dec("200")))
}

func TestStake_ClaimBacklogGate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)
	// A closed period is still unclaimed; adding stake now would dilute the
	// reward computation for that period.
	position := testPosition("pos-1", "alice", []string{"100"}, 4)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	_, err := srv.Stake(t.Context(), "alice", "pos-1", "TOKEN-A", dec("100"), "")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
}

func TestStake_UnknownAsset(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)
	position := testPosition("pos-1", "alice", []string{"100"}, 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	_, err := srv.Stake(t.Context(), "alice", "pos-1", "TOKEN-X", dec("100"), "")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestStake_MergesTransferReceipt(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)
	position := testPosition("pos-1", "bob", []string{"0"}, 6)
	receipt := &model.TransferReceiptDocument{
		ID:     "rcpt-1",
		Asset:  "TOKEN-A",
		Amount: dec("40"),
	}

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()
	database.On("GetTransferReceipt", mock.Anything, "rcpt-1").Return(receipt, nil).Once()
	database.On("DeleteTransferReceipt", mock.Anything, "rcpt-1").Return(nil).Once()
	database.On("UpdateStakableStakedAmount", mock.Anything, "TOKEN-A", matchDec("400")).Return(nil).Once()
	// Only the fresh 10 goes through the vault; the receipt's 40 never left
	// custody.
	database.On("DepositToVault", mock.Anything, "TOKEN-A", matchDec("10")).Return(nil).Once()
	database.On("UpdatePosition", mock.Anything, mock.MatchedBy(func(p *model.PositionDocument) bool {
		return p.AmountsStaked[0].Equal(dec("50"))
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	got, err := srv.Stake(t.Context(), "bob", "pos-1", "TOKEN-A", dec("10"), "rcpt-1")
	require.Nil(t, err)
	assert.True(t, got.AmountsStaked[0].Equal(dec("50")))
}

func TestStake_TransferReceiptAssetMismatch(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)
	position := testPosition("pos-1", "bob", []string{"0", "0"}, 6)
	receipt := &model.TransferReceiptDocument{
		ID:     "rcpt-1",
		Asset:  "TOKEN-B",
		Amount: dec("40"),
	}

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
		testStakable("TOKEN-B", 1, "40", "100"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()
	database.On("GetTransferReceipt", mock.Anything, "rcpt-1").Return(receipt, nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	_, err := srv.Stake(t.Context(), "bob", "pos-1", "TOKEN-A", model.Dec{}, "rcpt-1")
	require.NotNil(t, err)
	assert.Equal(t, types.UnprocessableEntity, err.ErrorCode)
}

func TestStake_ZeroAmountRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 6)
	position := testPosition("pos-1", "alice", []string{"100"}, 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	_, err := srv.Stake(t.Context(), "alice", "pos-1", "TOKEN-A", model.Dec{}, "")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}
