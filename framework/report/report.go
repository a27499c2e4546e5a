// Package report provides structured test reporting on top of zap. A
// *Reporter is registered in the container under "IReporter"; page objects
// and fixtures resolve it to log steps, passes and failures.
package report

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Reporter logs suite and step events. Production environments emit JSON,
// everything else gets the console encoder.
type Reporter struct {
	log *zap.Logger
}

// New creates a Reporter appropriate for the environment. level is one of
// debug, info, warn, error; unknown values fall back to info.
func New(env, level string) (*Reporter, error) {
	var cfg zap.Config
	if env == "production" || env == "ci" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("report: build logger: %w", err)
	}
	return &Reporter{log: log}, nil
}

// NewNop returns a Reporter that discards everything — the default override
// for tests that don't assert on reporting.
func NewNop() *Reporter {
	return &Reporter{log: zap.NewNop()}
}

// Suite logs the start of a suite and returns a Reporter scoped to it.
func (r *Reporter) Suite(name string) *Reporter {
	scoped := &Reporter{log: r.log.With(zap.String("suite", name))}
	scoped.log.Info("suite started")
	return scoped
}

// Step logs a test step.
func (r *Reporter) Step(name string, fields ...zap.Field) {
	r.log.Info("step: "+name, fields...)
}

// Pass logs a passing check.
func (r *Reporter) Pass(name string) {
	r.log.Info("pass: " + name)
}

// Fail logs a failing check with its cause.
func (r *Reporter) Fail(name string, err error) {
	r.log.Error("fail: "+name, zap.Error(err))
}

// Debug logs framework-internal detail.
func (r *Reporter) Debug(msg string, fields ...zap.Field) {
	r.log.Debug(msg, fields...)
}

// With returns a Reporter carrying extra fields on every entry.
func (r *Reporter) With(fields ...zap.Field) *Reporter {
	return &Reporter{log: r.log.With(fields...)}
}

// Sync flushes buffered entries. Call on teardown.
func (r *Reporter) Sync() {
	_ = r.log.Sync()
}
