package app

import (
	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/logger"
)

// serviceName tags every log line of the server.
const serviceName = "print-quote-service"

// InitializeLogger sets up the global logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(logger.Config{Level: cfg.Level, Pretty: cfg.Pretty, Service: serviceName})
}
