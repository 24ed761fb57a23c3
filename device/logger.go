// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the active logger. Silent by default.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger used by the device package.
// The squircle package propagates its logger here; pass nil to disable
// logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current device logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
