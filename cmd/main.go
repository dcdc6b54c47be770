// Package main is the entry point for the print quote service.
//
// @title           Print Quote Service API
// @version         1.0.0
// @description     Pricing engine for print-shop jobs: flyers, business cards, leaflets,
// @description     letterheads, posters, books and brochures, plus the quote and order book.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/print-quote-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Pricing
// @tag.description Quote calculation and job summaries
//
// @tag.name        Rates
// @tag.description Versioned rate configuration
//
// @tag.name        Quotes
// @tag.description Saved quotes and their conversion to orders
//
// @tag.name        Orders
// @tag.description Orders, production and accounting statuses, statistics
//
// @tag.name        Stock
// @tag.description Paper stock, movements and low stock alerts
//
// @tag.name        Activity
// @tag.description Stored request lines and audit records
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/print-quote-service/docs" // swagger docs

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := server.Run(ctx)
	stop()

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	application.Close(closeCtx)

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
