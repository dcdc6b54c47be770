// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/http"
	"github.com/rs/zerolog/log"
)

// Application is the wired service: its router plus the background
// resources released on shutdown.
type Application struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *Application {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	log.Info().Str("rates", serviceComponents.RateSource).Bool("records", serviceComponents.QuoteBook != nil).
		Bool("ledger", serviceComponents.LedgerSyncer != nil).Msg("Application initialized")

	return &Application{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services: serviceComponents,
		Database: dbComponents,
	}
}

// Close stops the background pollers, drains the ledger queue until ctx
// ends, stops the quote caches and disconnects from MongoDB. Safe to call
// once the server has stopped.
func (a *Application) Close(ctx context.Context) {
	if a.Services != nil {
		if a.Services.RateWatcher != nil {
			a.Services.RateWatcher.Stop()
		}
		if a.Services.LedgerPuller != nil {
			a.Services.LedgerPuller.Stop()
		}
		if a.Services.LedgerSyncer != nil {
			a.Services.LedgerSyncer.Stop(ctx)
			pushed, failed, dropped := a.Services.LedgerSyncer.Stats()
			log.Info().Int64("pushed", pushed).Int64("failed", failed).Int64("dropped", dropped).Msg("Ledger sync stopped")
		}
		if a.Services.Cache != nil {
			a.Services.Cache.Stop()
		}
	}

	if a.Database != nil && a.Database.LogWriter != nil {
		a.Database.LogWriter.Stop()
		stats := a.Database.LogWriter.Stats()
		log.Info().Int64("written", stats.Written).Int64("failed", stats.Failed).Int64("dropped", stats.Dropped).Msg("Log writer stopped")
	}

	if a.Database != nil && a.Database.DB != nil {
		if err := a.Database.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
}
