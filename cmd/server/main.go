package main

import (
	"context"
	"time"

	"github.com/Caesar-design242/beacongen/internal/api"
	v1 "github.com/Caesar-design242/beacongen/internal/api/v1"
	"github.com/Caesar-design242/beacongen/internal/config"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
	"github.com/Caesar-design242/beacongen/internal/repository"
	"github.com/Caesar-design242/beacongen/internal/service"
	"github.com/Caesar-design242/beacongen/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewSequenceRepository,
			repository.NewQuotaRepository,
			repository.NewIssuanceRepository,
			repository.NewSurveyorRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewAllocationService,
			service.NewSurveyorService,
			service.NewExportService,
		),
	)

	// API layer
	opts = append(opts,
		fx.Provide(
			v1.NewHealthHandler,
			v1.NewBeaconHandler,
			v1.NewSurveyorHandler,
			api.NewHandlers,
			api.NewRouter,
		),
	)

	opts = append(opts,
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
