package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UnstakeReceiptCollection  = "unstake_receipt"
	TransferReceiptCollection = "stake_transfer_receipt"
)

// UnstakeReceiptDocument is minted when an unstake is requested and burned on
// redemption. Redemption is rejected before RedemptionTime.
type UnstakeReceiptDocument struct {
	ID             string    `bson:"_id"`
	Asset          string    `bson:"asset"`
	Amount         Dec       `bson:"amount"`
	RedemptionTime time.Time `bson:"redemption_time"`
	CreatedAt      time.Time `bson:"created_at"`
}

func NewUnstakeReceiptDocument(asset string, amount Dec, redemptionTime, now time.Time) *UnstakeReceiptDocument {
	return &UnstakeReceiptDocument{
		ID:             uuid.NewString(),
		Asset:          asset,
		Amount:         amount,
		RedemptionTime: redemptionTime,
		CreatedAt:      now,
	}
}

// TransferReceiptDocument represents unstaked-but-custodied funds that can
// only be redeemed by merging them into a (possibly different) position. It
// carries no time lock.
type TransferReceiptDocument struct {
	ID        string    `bson:"_id"`
	Asset     string    `bson:"asset"`
	Amount    Dec       `bson:"amount"`
	CreatedAt time.Time `bson:"created_at"`
}

func NewTransferReceiptDocument(asset string, amount Dec, now time.Time) *TransferReceiptDocument {
	return &TransferReceiptDocument{
		ID:        uuid.NewString(),
		Asset:     asset,
		Amount:    amount,
		CreatedAt: now,
	}
}
