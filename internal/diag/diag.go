// Package diag holds the diagnostics callback contract (spec.md §6,
// "Diagnostics contract") and a logrus-backed default implementation.
// Neither callback may panic; both are optional.
package diag

import "github.com/sirupsen/logrus"

// Sink is the optional pair of diagnostics callbacks a Context may carry.
// Implementations must never panic.
type Sink interface {
	// Debugf reports a non-fatal, build/match-time informational event.
	Debugf(format string, args ...any)
	// Errorf reports a recoverable error with a stable code, e.g. the
	// BadConfig kind from spec.md §7.
	Errorf(code, format string, args ...any)
}

// LogrusSink backs Sink with structured logging via
// github.com/sirupsen/logrus, a realistic choice for a parsing engine's
// diagnostics surface (see DESIGN.md).
type LogrusSink struct {
	Log *logrus.Logger
}

// NewLogrusSink returns a LogrusSink around a logrus.Logger configured
// with sane defaults (text formatter, Info level) if log is nil.
func NewLogrusSink(log *logrus.Logger) *LogrusSink {
	if log == nil {
		log = logrus.New()
	}
	return &LogrusSink{Log: log}
}

func (s *LogrusSink) Debugf(format string, args ...any) {
	s.Log.Debugf(format, args...)
}

func (s *LogrusSink) Errorf(code, format string, args ...any) {
	s.Log.WithField("code", code).Errorf(format, args...)
}

// Annotator augments a successful match's record with the terminal node's
// tags (spec.md §6, "Annotator contract"). Purely additive.
type Annotator interface {
	Annotate(tags []string, set func(key string, value any))
}

// NopAnnotator is the zero-value default: it does nothing beyond what the
// matcher already does (attaching event.tags itself).
type NopAnnotator struct{}

func (NopAnnotator) Annotate([]string, func(string, any)) {}
