// Copyright (c) 2026 The asc Authors
//
// MIT License

package asc

// calcConfig is used to store the values of different parameters of the
// Calculator, following the same functional-options shape the teacher
// uses for its BDD sizing knobs.
type calcConfig struct {
	workers int
	logger  *Logger
}

const defaultWorkers = 8

func newCalcConfig() *calcConfig {
	return &calcConfig{
		workers: defaultWorkers,
		logger:  NoopLogger(),
	}
}

// Option configures a Calculator constructed by New.
type Option func(*calcConfig)

// Workers is a configuration option. Used as a parameter in New, it sets
// the size of the bounded worker pool that executes pairwise Model
// combinations and scope-closure lifts. The default is 8. Values below 1
// are ignored.
func Workers(n int) Option {
	return func(c *calcConfig) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithLogger is a configuration option. Used as a parameter in New, it
// installs l as the Calculator's logger. The default is NoopLogger.
func WithLogger(l *Logger) Option {
	return func(c *calcConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
