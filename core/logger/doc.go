// Package logger provides structured logging utilities built on Go's standard slog package.
//
// Create loggers with New and environment presets:
//
//	log := logger.New(logger.WithDevelopment("innkeeper"))
//	log := logger.New(logger.WithProduction("innkeeper"), logger.WithOutput(os.Stderr))
//
// Attribute helpers are nil safe, so errors can be logged without checks:
//
//	log.Error("render failed", logger.Component("response"), logger.Error(err))
package logger
