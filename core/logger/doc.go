// Package logger provides a structured logging facility based on Zap.
//
// The pipeline commands log through a console-encoded logger by default, while the
// HTTP server is usually run with the json encoding.
//
// # Context
//
// WithStage tags the loggers handed to the pipeline stages (skills, decorations,
// armor) so skipped records can be traced back to the stage that dropped them.
// WithRayID extracts the RayID from a Fiber context and attaches it to the entry.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	skillsLog := logger.WithStage(log, "skills")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
