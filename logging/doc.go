// Package logging provides a minimal logging interface and adapters for blogmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn,
// Error) that the runner, agents and pipeline use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - StructuredLogger with component context and model/stage helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	p := pipeline.New(invoker, func(o *pipeline.Options) { o.Logger = logger })
//
// Arguments after the message are slog-style key/value pairs.
package logging
