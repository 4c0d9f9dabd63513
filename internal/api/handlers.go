package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

func (s *Server) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	position, err := s.service.CreatePosition(r.Context(), holderID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newPositionResponse(position))
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	position, err := s.service.GetPositionDetails(r.Context(), holderID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPositionResponse(position))
}

type stakeRequest struct {
	Asset             string `json:"asset"`
	Amount            string `json:"amount,omitempty"`
	TransferReceiptID string `json:"transfer_receipt_id,omitempty"`
}

func (s *Server) handleStake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseOptionalDec(w, req.Amount)
	if !ok {
		return
	}

	position, err := s.service.Stake(
		r.Context(), holderID(r), chi.URLParam(r, "id"),
		req.Asset, amount, req.TransferReceiptID,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPositionResponse(position))
}

type unstakeRequest struct {
	Asset      string `json:"asset"`
	Amount     string `json:"amount,omitempty"`
	UnstakeAll bool   `json:"unstake_all,omitempty"`
	AsTransfer bool   `json:"as_transfer,omitempty"`
}

type unstakeResponse struct {
	ReceiptID      string     `json:"receipt_id"`
	Asset          string     `json:"asset"`
	Amount         string     `json:"amount"`
	Transfer       bool       `json:"transfer"`
	RedemptionTime *time.Time `json:"redemption_time,omitempty"`
}

func (s *Server) handleStartUnstake(w http.ResponseWriter, r *http.Request) {
	var req unstakeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseOptionalDec(w, req.Amount)
	if !ok {
		return
	}

	result, err := s.service.StartUnstake(
		r.Context(), holderID(r), chi.URLParam(r, "id"),
		req.Asset, amount, req.UnstakeAll, req.AsTransfer,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &unstakeResponse{
		ReceiptID:      result.ReceiptID,
		Asset:          result.Asset,
		Amount:         result.Amount.String(),
		Transfer:       result.Transfer,
		RedemptionTime: result.RedemptionTime,
	})
}

func (s *Server) handleFinishUnstake(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.FinishUnstake(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &unstakeResponse{
		ReceiptID: result.ReceiptID,
		Asset:     result.Asset,
		Amount:    result.Amount.String(),
	})
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	amount, err := s.service.Claim(r.Context(), holderID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"amount": amount.String()})
}

type lockRequest struct {
	Asset string `json:"asset"`
}

func (s *Server) handleLockStake(w http.ResponseWriter, r *http.Request) {
	var req lockRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := s.service.LockStake(r.Context(), holderID(r), chi.URLParam(r, "id"), req.Asset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"locked_until": result.LockedUntil,
		"bonus":        result.Bonus.String(),
	})
}

func (s *Server) handleGetStakables(w http.ResponseWriter, r *http.Request) {
	stakables, err := s.service.GetStakables(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]*stakableResponse, len(stakables))
	for i, stakable := range stakables {
		out[i] = newStakableResponse(stakable)
	}
	writeJSON(w, http.StatusOK, out)
}

type stakableRequest struct {
	Asset            string `json:"asset,omitempty"`
	RewardAmount     string `json:"reward_amount"`
	LockBonus        string `json:"lock_bonus"`
	LockDurationDays int64  `json:"lock_duration_days"`
}

func (s *Server) handleAddStakable(w http.ResponseWriter, r *http.Request) {
	var req stakableRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rewardAmount, lock, ok := parseStakableTerms(w, &req)
	if !ok {
		return
	}

	stakable, err := s.service.AddStakable(r.Context(), req.Asset, rewardAmount, lock)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newStakableResponse(stakable))
}

func (s *Server) handleEditStakable(w http.ResponseWriter, r *http.Request) {
	var req stakableRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rewardAmount, lock, ok := parseStakableTerms(w, &req)
	if !ok {
		return
	}

	if err := s.service.EditStakable(r.Context(), chi.URLParam(r, "asset"), rewardAmount, lock); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type amountRequest struct {
	Amount string `json:"amount"`
}

func (s *Server) handleSetRewardAmount(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseOptionalDec(w, req.Amount)
	if !ok {
		return
	}

	if err := s.service.SetRewardAmount(r.Context(), chi.URLParam(r, "asset"), amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type daysRequest struct {
	Days int64 `json:"days"`
}

func (s *Server) handleSetPeriodInterval(w http.ResponseWriter, r *http.Request) {
	var req daysRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.service.SetPeriodInterval(r.Context(), req.Days); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleSetMaxClaimDelay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Periods int64 `json:"periods"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.service.SetMaxClaimDelay(r.Context(), req.Periods); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleSetUnstakeDelay(w http.ResponseWriter, r *http.Request) {
	var req daysRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.service.SetUnstakeDelay(r.Context(), req.Days); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleSetNextBoundaryToNow(w http.ResponseWriter, r *http.Request) {
	if err := s.service.SetNextBoundaryToNow(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleFillRewardPool(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseOptionalDec(w, req.Amount)
	if !ok {
		return
	}
	if err := s.service.FillRewardPool(r.Context(), amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleWithdrawRewardPool(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseOptionalDec(w, req.Amount)
	if !ok {
		return
	}
	if err := s.service.WithdrawRewardPool(r.Context(), amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type setLockRequest struct {
	Asset       string    `json:"asset"`
	LockedUntil time.Time `json:"locked_until"`
}

func (s *Server) handleSetLock(w http.ResponseWriter, r *http.Request) {
	var req setLockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.service.SetLock(r.Context(), chi.URLParam(r, "id"), req.Asset, req.LockedUntil); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, string(types.BadRequest), "invalid request body")
		return false
	}
	return true
}

// parseOptionalDec parses a decimal-string field. An empty string yields a
// nil Dec so the service can tell "absent" from "zero".
func parseOptionalDec(w http.ResponseWriter, s string) (model.Dec, bool) {
	if s == "" {
		return model.Dec{}, true
	}
	dec, err := model.DecFromString(s)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, string(types.BadRequest), err.Error())
		return model.Dec{}, false
	}
	return dec, true
}

func parseStakableTerms(w http.ResponseWriter, req *stakableRequest) (model.Dec, model.LockTerms, bool) {
	rewardAmount, ok := parseOptionalDec(w, req.RewardAmount)
	if !ok {
		return model.Dec{}, model.LockTerms{}, false
	}
	bonus, ok := parseOptionalDec(w, req.LockBonus)
	if !ok {
		return model.Dec{}, model.LockTerms{}, false
	}
	if bonus.IsNil() {
		bonus = model.ZeroDec()
	}
	return rewardAmount, model.LockTerms{Bonus: bonus, DurationDays: req.LockDurationDays}, true
}
