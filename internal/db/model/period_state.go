package model

import "time"

const PeriodStateCollection = "period_state"

// PeriodStateDocument is the singleton period accounting state.
// CurrentPeriod only ever increases and NextPeriodBoundary only ever moves
// forward, in multiples of PeriodIntervalDays.
type PeriodStateDocument struct {
	PeriodIntervalDays  int64     `bson:"period_interval_days"`
	NextPeriodBoundary  time.Time `bson:"next_period_boundary"`
	CurrentPeriod       int64     `bson:"current_period"`
	MaxClaimDelay       int64     `bson:"max_claim_delay"`
	UnstakeDelayDays    int64     `bson:"unstake_delay_days"`
	MaxUnstakeDelayDays int64     `bson:"max_unstake_delay_days"`
	DaoControlled       bool      `bson:"dao_controlled"`
}
