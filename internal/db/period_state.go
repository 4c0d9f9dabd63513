package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

func (db *Database) GetPeriodState(ctx context.Context) (*model.PeriodStateDocument, error) {
	var result model.PeriodStateDocument
	err := db.collection(model.PeriodStateCollection).
		FindOne(ctx, bson.M{}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{
			Key:     model.PeriodStateCollection,
			Message: "period state has not been initialized",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// InitPeriodState inserts the singleton period state if it does not exist
// yet. An existing document is left untouched so restarts never reset the
// period counter.
func (db *Database) InitPeriodState(ctx context.Context, state *model.PeriodStateDocument) error {
	update := bson.M{"$setOnInsert": state}
	opts := options.Update().SetUpsert(true)
	_, err := db.collection(model.PeriodStateCollection).
		UpdateOne(ctx, bson.M{}, update, opts)
	return err
}

func (db *Database) UpdatePeriodState(ctx context.Context, state *model.PeriodStateDocument) error {
	update := bson.M{"$set": state}
	opts := options.Update().SetUpsert(true)
	_, err := db.collection(model.PeriodStateCollection).
		UpdateOne(ctx, bson.M{}, update, opts)
	return err
}
