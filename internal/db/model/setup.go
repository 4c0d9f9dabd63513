package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakewheel-io/staking-engine/internal/config"
)

const connectionTimeout = 10 * time.Second

type index struct {
	// Keys is ordered; compound index key order matters.
	Keys   bson.D
	Unique bool
}

var collections = map[string][]index{
	StakableCollection: {
		{Keys: bson.D{{Key: "asset_index", Value: 1}}, Unique: true},
	},
	RewardRateCollection: {
		{Keys: bson.D{{Key: "asset", Value: 1}, {Key: "period", Value: 1}}, Unique: true},
	},
	PositionCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}}, Unique: false},
	},
	UnstakeReceiptCollection: {
		{Keys: bson.D{{Key: "redemption_time", Value: 1}}, Unique: false},
	},
	TransferReceiptCollection: {{}},
	PeriodStateCollection:     {{}},
	VaultCollection:           {{}},
	RewardPoolCollection:      {{}},
}

// Setup creates the collections and indexes the engine relies on. It is
// idempotent and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	database := client.Database(cfg.DbName)

	for collection, idxs := range collections {
		if err := createCollection(ctx, database, collection); err != nil {
			return err
		}
		for _, idx := range idxs {
			if len(idx.Keys) == 0 {
				continue
			}
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return err
			}
		}
	}

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	// Check if the collection already exists.
	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "_id", Value: 1}},
	}); err != nil {
		log.Debug().Msgf("Collection maybe already exists: %s, skip the rest. err: %v", collectionName, err)
		return nil
	}

	if err := database.CreateCollection(ctx, collectionName); err != nil {
		log.Debug().Msgf("Failed to create collection: %s. err: %v", collectionName, err)
		return nil
	}

	log.Debug().Msgf("Collection created successfully: %s", collectionName)
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on collection %s: %w", collectionName, err)
	}

	log.Debug().Msgf("Index created successfully on collection: %s", collectionName)
	return nil
}
