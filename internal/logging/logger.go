// SPDX-License-Identifier: MIT

// Package logging wraps slog.Logger with topeigen-specific helpers so the
// CLI emits progress records with consistent field names.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/topeigen/eigen"
	"github.com/katalvlaran/topeigen/sparse"
)

// Logger wraps slog.Logger with topeigen-specific context.
type Logger struct {
	*slog.Logger
}

// New builds a Logger writing to w. format is "text" or "json"; level is
// one of debug, info, warn, error.
func New(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewText(w, lvl), nil
	case "json":
		return NewJSON(w, lvl), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// NewText creates a Logger that outputs human-readable text logs.
func NewText(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewJSON creates a Logger that outputs JSON-formatted logs.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return NewText(io.Discard, slog.Level(1000))
}

// WithK adds the requested pair count.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogMatrix logs the shape of a freshly loaded matrix.
func (l *Logger) LogMatrix(ctx context.Context, source string, m *sparse.Matrix) {
	st := m.Stats()
	l.InfoContext(ctx, "matrix loaded",
		"source", source,
		"rows", st.N,
		"edges", st.Edges,
		"self_loops", st.SelfLoops,
		"isolated", st.Isolated,
	)
}

// LogSlot logs one converged eigenpair. It is shaped to be passed as an
// eigen.ObserverFunc.
func (l *Logger) LogSlot(st eigen.SlotStats) {
	attrs := []any{
		"slot", st.Slot,
		"eigenvalue", st.Value,
		"iterations", st.Iterations,
		"duration", st.Duration,
	}
	if st.Converged {
		attrs = append(attrs, "delta", st.Delta)
	}
	if st.ValueUndefined {
		l.Warn("eigenvalue estimate undefined; eigenvector kept (try --estimator rayleigh)", attrs...)
		return
	}
	l.Info("eigenpair found", attrs...)
}

// LogResult logs the outcome of a full run.
func (l *Logger) LogResult(ctx context.Context, target string, res *eigen.Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"target", target,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "result written",
		"target", target,
		"pairs", res.K(),
		"rows", res.N(),
	)
}
