package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestMetrics)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/positions", s.handleCreatePosition)
		r.Get("/positions/{id}", s.handleGetPosition)
		r.Post("/positions/{id}/stake", s.handleStake)
		r.Post("/positions/{id}/unstake", s.handleStartUnstake)
		r.Post("/positions/{id}/claim", s.handleClaim)
		r.Post("/positions/{id}/lock", s.handleLockStake)
		r.Post("/receipts/unstake/{id}/redeem", s.handleFinishUnstake)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.adminAuth)
			r.Get("/stakables", s.handleGetStakables)
			r.Post("/stakables", s.handleAddStakable)
			r.Put("/stakables/{asset}", s.handleEditStakable)
			r.Put("/stakables/{asset}/reward-amount", s.handleSetRewardAmount)
			r.Put("/period-interval", s.handleSetPeriodInterval)
			r.Put("/max-claim-delay", s.handleSetMaxClaimDelay)
			r.Put("/unstake-delay", s.handleSetUnstakeDelay)
			r.Post("/next-boundary-now", s.handleSetNextBoundaryToNow)
			r.Post("/reward-pool/fill", s.handleFillRewardPool)
			r.Post("/reward-pool/withdraw", s.handleWithdrawRewardPool)
			r.Put("/positions/{id}/lock", s.handleSetLock)
		})
	})

	return r
}
