package types

import "time"

type EventType string

const (
	EventActiveStakeType     EventType = "ACTIVE_STAKE"
	EventUnstakeStartedType  EventType = "UNSTAKE_STARTED"
	EventUnstakeFinishedType EventType = "UNSTAKE_FINISHED"
	EventStakeTransferType   EventType = "STAKE_TRANSFER"
	EventRewardsClaimedType  EventType = "REWARDS_CLAIMED"
	EventStakeLockedType     EventType = "STAKE_LOCKED"
)

func (e EventType) String() string {
	return string(e)
}

// StakingEvent is the message published to the queue after a holder-facing
// operation commits. Amounts are decimal strings.
type StakingEvent struct {
	EventType  EventType `json:"event_type"`
	PositionID string    `json:"position_id,omitempty"`
	ReceiptID  string    `json:"receipt_id,omitempty"`
	Asset      string    `json:"asset,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Period     int64     `json:"period"`
	Timestamp  time.Time `json:"timestamp"`
}
