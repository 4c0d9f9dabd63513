package model

const (
	VaultCollection      = "vault"
	RewardPoolCollection = "reward_pool"
)

// VaultDocument tracks the custodied balance of one stakable asset. Custody
// primitives themselves live outside this service; this is the bookkeeping
// side of the custody interface.
type VaultDocument struct {
	Asset   string `bson:"_id"`
	Balance Dec    `bson:"balance"`
}

// RewardPoolDocument is the singleton admin-refillable reward pool.
type RewardPoolDocument struct {
	Balance Dec `bson:"balance"`
}
