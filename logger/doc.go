// Package logger provides structured logging for voiceiq using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("alignment")
//	log.Info("alignment complete", logger.Fields("segments", 12))
package logger
