package model

import "time"

const (
	StakableCollection   = "stakable"
	RewardRateCollection = "reward_rate"
)

// LockTerms holds the voluntary-lock incentive of a stakable asset: the bonus
// paid per staked unit when a holder locks, and how long the lock lasts.
type LockTerms struct {
	Bonus        Dec   `bson:"bonus"`
	DurationDays int64 `bson:"duration_days"`
}

// StakableDocument is one registered stakable asset. AssetIndex is the
// asset's permanent slot in every position's parallel vectors; it is assigned
// once when the asset is registered and never reused or reordered.
type StakableDocument struct {
	Asset        string    `bson:"_id"`
	AssetIndex   int       `bson:"asset_index"`
	StakedAmount Dec       `bson:"staked_amount"`
	RewardAmount Dec       `bson:"reward_amount"`
	Lock         LockTerms `bson:"lock"`
	CreatedAt    time.Time `bson:"created_at"`
}

func NewStakableDocument(asset string, assetIndex int, rewardAmount Dec, lock LockTerms, now time.Time) *StakableDocument {
	return &StakableDocument{
		Asset:        asset,
		AssetIndex:   assetIndex,
		StakedAmount: ZeroDec(),
		RewardAmount: rewardAmount,
		Lock:         lock,
		CreatedAt:    now,
	}
}

// RewardRateDocument freezes the reward-per-staked-unit of one asset for one
// elapsed period. Written once when the period rolls over, read forever after.
type RewardRateDocument struct {
	Asset  string `bson:"asset"`
	Period int64  `bson:"period"`
	Rate   Dec    `bson:"rate"`
}
