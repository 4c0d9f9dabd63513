package services

import (
	"net/http"

	"github.com/stakewheel-io/staking-engine/internal/db"
	"github.com/stakewheel-io/staking-engine/internal/types"
)

// fromDbError maps typed db errors onto the application error taxonomy.
// Anything unrecognized is an internal error.
func fromDbError(err error) *types.Error {
	switch {
	case db.IsNotFoundError(err):
		return types.NewError(http.StatusNotFound, types.NotFound, err)
	case db.IsDuplicateKeyError(err):
		return types.NewError(http.StatusConflict, types.Conflict, err)
	case db.IsInsufficientFundsError(err):
		return types.NewError(http.StatusConflict, types.InsufficientFunds, err)
	default:
		return types.NewInternalServiceError(err)
	}
}
