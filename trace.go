// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"io"
	"log/slog"
)

const componentKey = "component"

func init() {
	// Trace output is a diagnostic collaborator, not part of the core
	// contract; it stays dark unless a handler is installed.
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

var defaultLogger *slog.Logger

// SetLogHandler routes the library's debug trace lines (operation
// names, resolved nodes, child counts) to the given handler. Maps
// created afterwards pick it up; it does not affect existing instances.
func SetLogHandler(handler slog.Handler) {
	defaultLogger = slog.New(handler)
}

func newLogger() *slog.Logger {
	return defaultLogger.With(slog.String(componentKey, "mkm"))
}
