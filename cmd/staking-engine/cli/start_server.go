package cli

import (
	"fmt"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stakewheel-io/staking-engine/internal/api"
	"github.com/stakewheel-io/staking-engine/internal/config"
	"github.com/stakewheel-io/staking-engine/internal/db"
	dbmodel "github.com/stakewheel-io/staking-engine/internal/db/model"
	"github.com/stakewheel-io/staking-engine/internal/observability/metrics"
	"github.com/stakewheel-io/staking-engine/internal/observability/tracing"
	"github.com/stakewheel-io/staking-engine/internal/queue"
	"github.com/stakewheel-io/staking-engine/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking engine server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	queueManager, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	if err := queueManager.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to declare event queue")
	}

	service := services.NewService(cfg, dbClient, clock.NewDefaultClock(), queueManager)
	if err := service.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while seeding period state")
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartPeriodPoller(ctx)

	server := api.New(&cfg.Server, service)
	return server.Start(ctx)
}
