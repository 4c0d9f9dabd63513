package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakewheel-io/staking-engine/internal/config"
	"github.com/stakewheel-io/staking-engine/internal/services"
)

type Server struct {
	cfg     *config.ServerConfig
	service *services.Service
}

func New(cfg *config.ServerConfig, service *services.Service) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
	}
}

// Start blocks serving the API until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.GetReadTimeout(),
		WriteTimeout: s.cfg.GetWriteTimeout(),
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down API server")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error shutting down API server")
		}
	}()

	log.Info().Msgf("Starting API server on %s", s.cfg.Address())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("API server failed: %w", err)
	}
	return nil
}
