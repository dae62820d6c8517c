// Copyright (c) 2024 Mythos Authors

package codec

import "github.com/echa/log"

// logger is initialized with no output filters, matching tzgo's
// per-package logger convention (see rpc/log.go): the codec never logs by
// default, it only ever returns errors. A verifier or host application
// that wants decode diagnostics opts in with UseLogger.
var logger log.Logger = log.Disabled

// UseLogger sets the logger used for decode diagnostics (malformed-input
// traces only; never load-bearing for correctness).
func UseLogger(l log.Logger) {
	logger = l
}

// DisableLog restores the default no-op logger.
func DisableLog() {
	logger = log.Disabled
}
