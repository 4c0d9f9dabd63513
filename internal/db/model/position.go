package model

import (
	"time"

	"github.com/google/uuid"
)

const PositionCollection = "position"

// PositionDocument is a holder's staking ID. The three vectors are parallel
// and indexed by StakableDocument.AssetIndex; they are lazily extended (never
// shrunk) when new assets are registered. NextPeriod is the first period for
// which rewards have not been claimed yet.
type PositionDocument struct {
	ID            string       `bson:"_id"`
	Owner         string       `bson:"owner"`
	AmountsStaked []Dec        `bson:"amounts_staked"`
	AmountsLocked []Dec        `bson:"amounts_locked"`
	LockedUntil   []*time.Time `bson:"locked_until"`
	NextPeriod    int64        `bson:"next_period"`
	CreatedAt     time.Time    `bson:"created_at"`
	UpdatedAt     time.Time    `bson:"updated_at"`
}

func NewPositionDocument(owner string, registrySize int, nextPeriod int64, now time.Time) *PositionDocument {
	staked := make([]Dec, registrySize)
	locked := make([]Dec, registrySize)
	for i := range registrySize {
		staked[i] = ZeroDec()
		locked[i] = ZeroDec()
	}

	return &PositionDocument{
		ID:            uuid.NewString(),
		Owner:         owner,
		AmountsStaked: staked,
		AmountsLocked: locked,
		LockedUntil:   make([]*time.Time, registrySize),
		NextPeriod:    nextPeriod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
