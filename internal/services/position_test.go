package services

import (
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/tests/mocks"
)

func TestReconcileVectors(t *testing.T) {
	t.Run("extends to registry size", func(t *testing.T) {
		position := testPosition("pos-1", "alice", []string{"100"}, 5)
		until := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		position.LockedUntil[0] = &until

		grew := reconcileVectors(position, 3)
		require.True(t, grew)
		require.Len(t, position.AmountsStaked, 3)
		require.Len(t, position.AmountsLocked, 3)
		require.Len(t, position.LockedUntil, 3)

		// existing entries keep their index alignment
		assert.True(t, position.AmountsStaked[0].Equal(dec("100")))
		assert.Equal(t, &until, position.LockedUntil[0])

		// new entries are zero/absent
		assert.True(t, position.AmountsStaked[1].IsZero())
		assert.True(t, position.AmountsStaked[2].IsZero())
		assert.Nil(t, position.LockedUntil[1])
		assert.Nil(t, position.LockedUntil[2])
	})

	t.Run("idempotent", func(t *testing.T) {
		position := testPosition("pos-1", "alice", []string{"100"}, 5)
		require.True(t, reconcileVectors(position, 2))
		require.False(t, reconcileVectors(position, 2))
		assert.Len(t, position.AmountsStaked, 2)
	})

	t.Run("never truncates", func(t *testing.T) {
		position := testPosition("pos-1", "alice", []string{"100", "50"}, 5)
		require.False(t, reconcileVectors(position, 1))
		assert.Len(t, position.AmountsStaked, 2)
	})
}

func TestCreatePosition(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 5)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "350", "700"),
		testStakable("TOKEN-B", 1, "0", "500"),
	}, nil)
	database.On("SaveNewPosition", mock.Anything, mock.MatchedBy(func(p *model.PositionDocument) bool {
		return p.Owner == "alice" && len(p.AmountsStaked) == 2 && p.NextPeriod == 6
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	position, err := srv.CreatePosition(t.Context(), "alice")
	require.Nil(t, err)
	assert.NotEmpty(t, position.ID)
	assert.True(t, position.AmountsStaked[0].IsZero())
	assert.True(t, position.AmountsStaked[1].IsZero())
}

func TestCreatePosition_RequiresOwner(t *testing.T) {
	database := mocks.NewDbInterface(t)
	srv := newTestService(database, clock.NewTestClock(time.Now()))

	_, err := srv.CreatePosition(t.Context(), "")
	require.NotNil(t, err)
}

func TestGetPositionDetails_ExtendsStaleVectors(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state := testPeriodState(now.Add(24*time.Hour), 5)
	// The position predates the asset: it was created against an empty
	// registry and has zero-length vectors.
	position := testPosition("pos-1", "alice", nil, 6)

	database := mocks.NewDbInterface(t)
	database.On("GetPeriodState", mock.Anything).Return(state, nil)
	database.On("GetStakables", mock.Anything).Return([]*model.StakableDocument{
		testStakable("TOKEN-A", 0, "0", "700"),
	}, nil)
	database.On("GetPosition", mock.Anything, "pos-1").Return(position, nil).Once()
	database.On("UpdatePosition", mock.Anything, mock.MatchedBy(func(p *model.PositionDocument) bool {
		return len(p.AmountsStaked) == 1 && p.AmountsStaked[0].IsZero()
	})).Return(nil).Once()

	srv := newTestService(database, clock.NewTestClock(now))
	got, err := srv.GetPositionDetails(t.Context(), "alice", "pos-1")
	require.Nil(t, err)
	require.Len(t, got.AmountsStaked, 1)
	require.Len(t, got.LockedUntil, 1)
	assert.Nil(t, got.LockedUntil[0])
}
