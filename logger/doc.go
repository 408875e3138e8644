// Package logger provides structured logging for the cereal pipeline
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("selector")
//	log.Info("selected cereal", logger.Fields("name", name))
package logger
