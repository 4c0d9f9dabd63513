package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

func (db *Database) SaveUnstakeReceipt(ctx context.Context, receipt *model.UnstakeReceiptDocument) error {
	_, err := db.collection(model.UnstakeReceiptCollection).InsertOne(ctx, receipt)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     receipt.ID,
			Message: "unstake receipt already exists",
		}
	}
	return err
}

func (db *Database) GetUnstakeReceipt(ctx context.Context, id string) (*model.UnstakeReceiptDocument, error) {
	var result model.UnstakeReceiptDocument
	err := db.collection(model.UnstakeReceiptCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{
			Key:     id,
			Message: "unstake receipt not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUnstakeReceipt burns a receipt. The DeletedCount check is what makes
// redemption single-shot: the second caller sees NotFoundError.
func (db *Database) DeleteUnstakeReceipt(ctx context.Context, id string) error {
	result, err := db.collection(model.UnstakeReceiptCollection).
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "unstake receipt not found",
		}
	}
	return nil
}

func (db *Database) SaveTransferReceipt(ctx context.Context, receipt *model.TransferReceiptDocument) error {
	_, err := db.collection(model.TransferReceiptCollection).InsertOne(ctx, receipt)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     receipt.ID,
			Message: "stake transfer receipt already exists",
		}
	}
	return err
}

func (db *Database) GetTransferReceipt(ctx context.Context, id string) (*model.TransferReceiptDocument, error) {
	var result model.TransferReceiptDocument
	err := db.collection(model.TransferReceiptCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{
			Key:     id,
			Message: "stake transfer receipt not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (db *Database) DeleteTransferReceipt(ctx context.Context, id string) error {
	result, err := db.collection(model.TransferReceiptCollection).
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "stake transfer receipt not found",
		}
	}
	return nil
}
