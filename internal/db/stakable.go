package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

func (db *Database) SaveNewStakable(ctx context.Context, stakable *model.StakableDocument) error {
	_, err := db.collection(model.StakableCollection).InsertOne(ctx, stakable)
	// nil check is inside IsDuplicateKeyError
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     stakable.Asset,
			Message: "stakable asset already registered",
		}
	}
	return err
}

func (db *Database) GetStakable(ctx context.Context, asset string) (*model.StakableDocument, error) {
	var result model.StakableDocument
	err := db.collection(model.StakableCollection).
		FindOne(ctx, bson.M{"_id": asset}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{
			Key:     asset,
			Message: "stakable asset not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStakables returns every registered asset ordered by asset_index. The
// order defines the index space of position vectors.
func (db *Database) GetStakables(ctx context.Context) ([]*model.StakableDocument, error) {
	opts := options.Find().SetSort(bson.M{"asset_index": 1})
	cursor, err := db.collection(model.StakableCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakables []*model.StakableDocument
	if err = cursor.All(ctx, &stakables); err != nil {
		return nil, err
	}

	return stakables, nil
}

func (db *Database) UpdateStakableTerms(
	ctx context.Context, asset string, rewardAmount model.Dec, lock model.LockTerms,
) error {
	update := bson.M{"$set": bson.M{
		"reward_amount": rewardAmount,
		"lock":          lock,
	}}
	return db.updateStakable(ctx, asset, update)
}

func (db *Database) UpdateStakableRewardAmount(ctx context.Context, asset string, rewardAmount model.Dec) error {
	update := bson.M{"$set": bson.M{"reward_amount": rewardAmount}}
	return db.updateStakable(ctx, asset, update)
}

func (db *Database) UpdateStakableStakedAmount(ctx context.Context, asset string, stakedAmount model.Dec) error {
	update := bson.M{"$set": bson.M{"staked_amount": stakedAmount}}
	return db.updateStakable(ctx, asset, update)
}

func (db *Database) updateStakable(ctx context.Context, asset string, update bson.M) error {
	result, err := db.collection(model.StakableCollection).
		UpdateOne(ctx, bson.M{"_id": asset}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     asset,
			Message: "stakable asset not found",
		}
	}
	return nil
}

// SaveRewardRate freezes the rate of one asset for one period. The unique
// (asset, period) index makes the write happen at most once; a duplicate key
// means the rate is already frozen and must not change.
func (db *Database) SaveRewardRate(ctx context.Context, asset string, period int64, rate model.Dec) error {
	doc := &model.RewardRateDocument{
		Asset:  asset,
		Period: period,
		Rate:   rate,
	}
	_, err := db.collection(model.RewardRateCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     fmt.Sprintf("%s/%d", asset, period),
			Message: "reward rate already frozen for this period",
		}
	}
	return err
}

// GetRewardRates returns the frozen rates of an asset for periods in
// [fromPeriod, toPeriod]. Periods that never got a rate are simply absent.
func (db *Database) GetRewardRates(
	ctx context.Context, asset string, fromPeriod, toPeriod int64,
) (map[int64]model.Dec, error) {
	filter := bson.M{
		"asset":  asset,
		"period": bson.M{"$gte": fromPeriod, "$lte": toPeriod},
	}
	cursor, err := db.collection(model.RewardRateCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.RewardRateDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rates := make(map[int64]model.Dec, len(docs))
	for _, doc := range docs {
		rates[doc.Period] = doc.Rate
	}
	return rates, nil
}
