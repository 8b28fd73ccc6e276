// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package logging

import "time"

// Level indicates a logging level. A larger value means a more important log.
type Level int

const (
	// LevelDebug is used for command details such as the working directory.
	LevelDebug Level = iota
	// LevelInfo is used for the case progress lines shown by default.
	LevelInfo
)

// Logger consumes logs sent via context.Context.
type Logger interface {
	// Log gets called for a log entry.
	Log(level Level, ts time.Time, msg string)
}

// MultiLogger forwards every log to a fixed list of loggers, in order.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a MultiLogger over loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: append([]Logger(nil), loggers...)}
}

// Log implements Logger.
func (ml *MultiLogger) Log(level Level, ts time.Time, msg string) {
	for _, l := range ml.loggers {
		l.Log(level, ts, msg)
	}
}
