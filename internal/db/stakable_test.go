//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/pkg"
)

func TestSaveNewStakable(t *testing.T) {
	ctx := t.Context()
	asset := "asset-" + pkg.RandString(8)

	stakable := model.NewStakableDocument(asset, 100, mustDec("700"), model.LockTerms{
		Bonus:        mustDec("0.1"),
		DurationDays: 30,
	}, time.Now().UTC())
	require.NoError(t, testDB.SaveNewStakable(ctx, stakable))

	t.Run("duplicate asset rejected", func(t *testing.T) {
		err := testDB.SaveNewStakable(ctx, stakable)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("roundtrip preserves decimals", func(t *testing.T) {
		got, err := testDB.GetStakable(ctx, asset)
		require.NoError(t, err)
		assert.True(t, got.RewardAmount.Equal(mustDec("700")))
		assert.True(t, got.StakedAmount.IsZero())
		assert.True(t, got.Lock.Bonus.Equal(mustDec("0.1")))
	})

	t.Run("unknown asset not found", func(t *testing.T) {
		_, err := testDB.GetStakable(ctx, "asset-"+pkg.RandString(8))
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
}

func TestGetStakables_OrderedByIndex(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	first := model.NewStakableDocument("asset-"+pkg.RandString(8), 200, mustDec("1"), model.LockTerms{}, now)
	second := model.NewStakableDocument("asset-"+pkg.RandString(8), 201, mustDec("2"), model.LockTerms{}, now)
	require.NoError(t, testDB.SaveNewStakable(ctx, second))
	require.NoError(t, testDB.SaveNewStakable(ctx, first))

	stakables, err := testDB.GetStakables(ctx)
	require.NoError(t, err)

	var indexes []int
	for _, s := range stakables {
		if s.AssetIndex == 200 || s.AssetIndex == 201 {
			indexes = append(indexes, s.AssetIndex)
		}
	}
	assert.Equal(t, []int{200, 201}, indexes)
}

func TestRewardRate_WriteOnce(t *testing.T) {
	ctx := t.Context()
	asset := "asset-" + pkg.RandString(8)

	require.NoError(t, testDB.SaveRewardRate(ctx, asset, 5, mustDec("2")))

	// a frozen rate never changes, the second write is rejected
	err := testDB.SaveRewardRate(ctx, asset, 5, mustDec("9"))
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))

	require.NoError(t, testDB.SaveRewardRate(ctx, asset, 6, mustDec("3")))

	rates, err := testDB.GetRewardRates(ctx, asset, 5, 6)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.True(t, rates[5].Equal(mustDec("2")))
	assert.True(t, rates[6].Equal(mustDec("3")))
}

func TestUpdateStakableStakedAmount(t *testing.T) {
	ctx := t.Context()
	asset := "asset-" + pkg.RandString(8)

	stakable := model.NewStakableDocument(asset, 300, mustDec("700"), model.LockTerms{}, time.Now().UTC())
	require.NoError(t, testDB.SaveNewStakable(ctx, stakable))

	require.NoError(t, testDB.UpdateStakableStakedAmount(ctx, asset, mustDec("350")))

	got, err := testDB.GetStakable(ctx, asset)
	require.NoError(t, err)
	assert.True(t, got.StakedAmount.Equal(mustDec("350")))

	t.Run("unknown asset not found", func(t *testing.T) {
		err := testDB.UpdateStakableStakedAmount(ctx, "asset-"+pkg.RandString(8), mustDec("1"))
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
}
