package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

func (db *Database) DepositToVault(ctx context.Context, asset string, amount model.Dec) error {
	balance, err := db.VaultBalance(ctx, asset)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"balance": balance.Add(amount)}}
	opts := options.Update().SetUpsert(true)
	_, err = db.collection(model.VaultCollection).
		UpdateOne(ctx, bson.M{"_id": asset}, update, opts)
	return err
}

func (db *Database) WithdrawFromVault(ctx context.Context, asset string, amount model.Dec) error {
	balance, err := db.VaultBalance(ctx, asset)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return &InsufficientFundsError{
			Message: fmt.Sprintf("vault %s holds %s, cannot withdraw %s", asset, balance, amount),
		}
	}

	update := bson.M{"$set": bson.M{"balance": balance.Sub(amount)}}
	_, err = db.collection(model.VaultCollection).
		UpdateOne(ctx, bson.M{"_id": asset}, update)
	return err
}

func (db *Database) VaultBalance(ctx context.Context, asset string) (model.Dec, error) {
	var result model.VaultDocument
	err := db.collection(model.VaultCollection).
		FindOne(ctx, bson.M{"_id": asset}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return model.ZeroDec(), nil
	}
	if err != nil {
		return model.Dec{}, err
	}
	return result.Balance, nil
}

func (db *Database) FillRewardPool(ctx context.Context, amount model.Dec) error {
	balance, err := db.RewardPoolBalance(ctx)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"balance": balance.Add(amount)}}
	opts := options.Update().SetUpsert(true)
	_, err = db.collection(model.RewardPoolCollection).
		UpdateOne(ctx, bson.M{}, update, opts)
	return err
}

// WithdrawRewardPool takes from the pool all-or-nothing: a pool that cannot
// cover the amount fails the whole withdrawal instead of partially paying.
func (db *Database) WithdrawRewardPool(ctx context.Context, amount model.Dec) error {
	balance, err := db.RewardPoolBalance(ctx)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return &InsufficientFundsError{
			Message: fmt.Sprintf("reward pool holds %s, cannot withdraw %s", balance, amount),
		}
	}

	update := bson.M{"$set": bson.M{"balance": balance.Sub(amount)}}
	opts := options.Update().SetUpsert(true)
	_, err = db.collection(model.RewardPoolCollection).
		UpdateOne(ctx, bson.M{}, update, opts)
	return err
}

func (db *Database) RewardPoolBalance(ctx context.Context) (model.Dec, error) {
	var result model.RewardPoolDocument
	err := db.collection(model.RewardPoolCollection).
		FindOne(ctx, bson.M{}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return model.ZeroDec(), nil
	}
	if err != nil {
		return model.Dec{}, err
	}
	return result.Balance, nil
}
