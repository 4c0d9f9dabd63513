package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type positionResponse struct {
	ID            string       `json:"id"`
	Owner         string       `json:"owner"`
	AmountsStaked []string     `json:"amounts_staked"`
	AmountsLocked []string     `json:"amounts_locked"`
	LockedUntil   []*time.Time `json:"locked_until"`
	NextPeriod    int64        `json:"next_period"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type stakableResponse struct {
	Asset            string    `json:"asset"`
	AssetIndex       int       `json:"asset_index"`
	StakedAmount     string    `json:"staked_amount"`
	RewardAmount     string    `json:"reward_amount"`
	LockBonus        string    `json:"lock_bonus"`
	LockDurationDays int64     `json:"lock_duration_days"`
	CreatedAt        time.Time `json:"created_at"`
}

func newPositionResponse(position *model.PositionDocument) *positionResponse {
	return &positionResponse{
		ID:            position.ID,
		Owner:         position.Owner,
		AmountsStaked: decStrings(position.AmountsStaked),
		AmountsLocked: decStrings(position.AmountsLocked),
		LockedUntil:   position.LockedUntil,
		NextPeriod:    position.NextPeriod,
		CreatedAt:     position.CreatedAt,
		UpdatedAt:     position.UpdatedAt,
	}
}

func newStakableResponse(stakable *model.StakableDocument) *stakableResponse {
	return &stakableResponse{
		Asset:            stakable.Asset,
		AssetIndex:       stakable.AssetIndex,
		StakedAmount:     stakable.StakedAmount.String(),
		RewardAmount:     stakable.RewardAmount.String(),
		LockBonus:        stakable.Lock.Bonus.String(),
		LockDurationDays: stakable.Lock.DurationDays,
		CreatedAt:        stakable.CreatedAt,
	}
}

func decStrings(decs []model.Dec) []string {
	out := make([]string, len(decs))
	for i, d := range decs {
		out[i] = d.String()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err *types.Error) {
	writeErrorMsg(w, err.StatusCode, string(err.ErrorCode), err.Error())
}

func writeErrorMsg(w http.ResponseWriter, status int, errorCode, message string) {
	writeJSON(w, status, &errorResponse{
		ErrorCode: errorCode,
		Message:   message,
	})
}
