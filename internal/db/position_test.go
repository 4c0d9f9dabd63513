//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/testutil"
)

func TestPosition_WholeVectorWriteBack(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC().Truncate(time.Millisecond)

	position := model.NewPositionDocument(testutil.RandomOwner(), 2, 6, now)
	require.NoError(t, testDB.SaveNewPosition(ctx, position))

	position.AmountsStaked[0] = mustDec("100")
	position.AmountsStaked = append(position.AmountsStaked, mustDec("0"))
	position.AmountsLocked = append(position.AmountsLocked, mustDec("0"))
	lockedUntil := now.Add(30 * 24 * time.Hour)
	position.LockedUntil = append(position.LockedUntil, &lockedUntil)
	position.NextPeriod = 7
	position.UpdatedAt = now
	require.NoError(t, testDB.UpdatePosition(ctx, position))

	got, err := testDB.GetPosition(ctx, position.ID)
	require.NoError(t, err)
	require.Len(t, got.AmountsStaked, 3)
	require.Len(t, got.LockedUntil, 3)
	assert.True(t, got.AmountsStaked[0].Equal(mustDec("100")))
	assert.True(t, got.AmountsStaked[1].IsZero())
	assert.Nil(t, got.LockedUntil[0])
	require.NotNil(t, got.LockedUntil[2])
	assert.True(t, got.LockedUntil[2].Equal(lockedUntil))
	assert.Equal(t, int64(7), got.NextPeriod)
}

func TestPosition_NotFound(t *testing.T) {
	ctx := t.Context()

	_, err := testDB.GetPosition(ctx, "missing-position")
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	position := model.NewPositionDocument(testutil.RandomOwner(), 0, 1, time.Now().UTC())
	position.ID = "never-saved"
	err = testDB.UpdatePosition(ctx, position)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))
}
