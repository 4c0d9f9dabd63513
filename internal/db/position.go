package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

func (db *Database) SaveNewPosition(ctx context.Context, position *model.PositionDocument) error {
	_, err := db.collection(model.PositionCollection).InsertOne(ctx, position)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     position.ID,
			Message: "position already exists",
		}
	}
	return err
}

func (db *Database) GetPosition(ctx context.Context, id string) (*model.PositionDocument, error) {
	var result model.PositionDocument
	err := db.collection(model.PositionCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{
			Key:     id,
			Message: "position not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdatePosition writes back all mutable fields of a position at once. Every
// mutation rewrites the whole vectors instead of single indexes so that two
// operations touching different indexes of the same record can never leave a
// half-updated document behind.
func (db *Database) UpdatePosition(ctx context.Context, position *model.PositionDocument) error {
	update := bson.M{"$set": bson.M{
		"amounts_staked": position.AmountsStaked,
		"amounts_locked": position.AmountsLocked,
		"locked_until":   position.LockedUntil,
		"next_period":    position.NextPeriod,
		"updated_at":     position.UpdatedAt,
	}}
	result, err := db.collection(model.PositionCollection).
		UpdateOne(ctx, bson.M{"_id": position.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     position.ID,
			Message: "position not found",
		}
	}
	return nil
}
