// Package telemetry is the ambient observability layer: structured
// logging (go.uber.org/zap), a per-invocation run ID
// (github.com/google/uuid) for log/metric correlation, and optional
// Prometheus instrumentation. See SPEC_FULL.md §4.8.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.SugaredLogger, tagged with a run ID so repeated
// CLI invocations can be correlated in aggregated logs — grounded on
// the teacher-adjacent go-coffee codebase's NewLogger
// (crypto-wallet/pkg/logger/logger.go), generalized from a
// request-scoped web logger to a one-shot CLI invocation logger.
type Logger struct {
	*zap.SugaredLogger
	RunID string
}

// New builds a Logger. verbose selects development-mode encoding
// (human-readable, debug level) over production-mode (JSON, info
// level).
func New(verbose bool) *Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	base, err := cfg.Build()
	if err != nil {
		// Logger construction failing is itself a programming error
		// (invalid static config), not a runtime condition to recover
		// from.
		panic(err)
	}

	runID := newRunID()
	return &Logger{
		SugaredLogger: base.Sugar().With("run_id", runID),
		RunID:         runID,
	}
}

// BudgetExhausted logs the normal, non-error early-termination
// diagnostic from spec.md §7, replacing the original implementation's
// bare print statement.
func (l *Logger) BudgetExhausted(callsUsed, score int) {
	l.Warnw("search budget exhausted before exploration completed",
		"calls_used", callsUsed,
		"incumbent_score", score,
	)
}

// Sync flushes any buffered log entries. Callers should defer this at
// the top of main.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
