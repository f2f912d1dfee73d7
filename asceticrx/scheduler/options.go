package scheduler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Epoch is a conventional start for virtual time.
var Epoch = time.Unix(0, 0).UTC()

// Option configures a Loop.
type Option func(*Loop)

// WithVirtualTime makes the loop run on a simulated clock starting at start.
// Run then never sleeps: it jumps the clock to the next due task.
func WithVirtualTime(start time.Time) Option {
	return func(l *Loop) {
		l.virtual = true
		l.now = start
	}
}

// WithLogger sets the logger. Defaults to logrus.StandardLogger().
func WithLogger(log logrus.Ext1FieldLogger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// WithName sets the loop name used in log fields and metric labels.
// Defaults to a random UUID.
func WithName(name string) Option {
	return func(l *Loop) {
		if name != "" {
			l.name = name
		}
	}
}

// WithRegisterer enables task metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(l *Loop) {
		l.registerer = reg
	}
}
