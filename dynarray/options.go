// SPDX-License-Identifier: MIT

// Package dynarray - construction options.
//
// Options are observational: they never change what an operation returns,
// only what is reported while it runs. They are carried by Clone and by
// every whole-array result, so a derived array reports the same way as
// its source.

package dynarray

import "github.com/rs/zerolog"

// GrowEvent describes one reallocation of the backing store.
type GrowEvent struct {
	From  int // capacity before growth
	To    int // capacity after growth
	Moved int // elements copied into the new store
}

// Option configures an Array at construction time.
type Option func(c *config)

// config holds per-instance reporting settings. The zero value reports nothing.
type config struct {
	logger *zerolog.Logger // nil disables logging
	onGrow func(GrowEvent) // nil disables the hook
}

// WithLogger emits a Debug event for every reallocation of the backing store.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = &l }
}

// WithGrowHook calls fn after every reallocation of the backing store.
// A nil fn is ignored.
func WithGrowHook(fn func(GrowEvent)) Option {
	return func(c *config) {
		if fn != nil {
			c.onGrow = fn
		}
	}
}

// newConfig applies opts in order over the zero config.
func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// reportGrow fans out a GrowEvent to the configured sinks.
func (c *config) reportGrow(ev GrowEvent) {
	if c.logger != nil {
		c.logger.Debug().
			Str("op", "grow").
			Int("from", ev.From).
			Int("to", ev.To).
			Int("moved", ev.Moved).
			Msg("dynarray: backing store reallocated")
	}
	if c.onGrow != nil {
		c.onGrow(ev)
	}
}
