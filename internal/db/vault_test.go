//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/pkg"
)

func TestVault(t *testing.T) {
	ctx := t.Context()
	asset := "asset-" + pkg.RandString(8)

	balance, err := testDB.VaultBalance(ctx, asset)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	require.NoError(t, testDB.DepositToVault(ctx, asset, mustDec("100")))
	require.NoError(t, testDB.DepositToVault(ctx, asset, mustDec("50")))

	balance, err = testDB.VaultBalance(ctx, asset)
	require.NoError(t, err)
	assert.True(t, balance.Equal(mustDec("150")))

	t.Run("withdrawal above balance rejected whole", func(t *testing.T) {
		err := testDB.WithdrawFromVault(ctx, asset, mustDec("151"))
		require.Error(t, err)
		assert.True(t, db.IsInsufficientFundsError(err))

		balance, err := testDB.VaultBalance(ctx, asset)
		require.NoError(t, err)
		assert.True(t, balance.Equal(mustDec("150")))
	})

	require.NoError(t, testDB.WithdrawFromVault(ctx, asset, mustDec("150")))

	balance, err = testDB.VaultBalance(ctx, asset)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestRewardPool(t *testing.T) {
	ctx := t.Context()

	initial, err := testDB.RewardPoolBalance(ctx)
	require.NoError(t, err)

	require.NoError(t, testDB.FillRewardPool(ctx, mustDec("1000")))

	balance, err := testDB.RewardPoolBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(initial.Add(mustDec("1000"))))

	t.Run("all-or-nothing withdrawal", func(t *testing.T) {
		err := testDB.WithdrawRewardPool(ctx, balance.Add(mustDec("1")))
		require.Error(t, err)
		assert.True(t, db.IsInsufficientFundsError(err))
	})

	require.NoError(t, testDB.WithdrawRewardPool(ctx, mustDec("1000")))

	final, err := testDB.RewardPoolBalance(ctx)
	require.NoError(t, err)
	assert.True(t, final.Equal(initial))
}
