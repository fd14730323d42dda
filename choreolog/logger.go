package choreolog

import "go.uber.org/zap"

// Logger is the structured logger handle the pipeline package logs through.
// It is a thin alias over zap.SugaredLogger so callers can
// use the familiar key-value With/Debugw/Warnw API without importing zap
// directly.
type Logger = zap.SugaredLogger

// New returns a development-mode logger writing to stderr. Suitable for the
// demo command and for tests that want to observe log output.
func New() *Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		// zap.NewDevelopment only fails on a broken stderr sink; fall back to
		// a logger that discards everything rather than panic.
		return zap.NewNop().Sugar()
	}

	return l.Sugar()
}

// Noop returns a logger that discards all output. Used as the coordinator's
// default when the caller does not supply one.
func Noop() *Logger {
	return zap.NewNop().Sugar()
}
