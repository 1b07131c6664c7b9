// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

// config collects the optional construction-time knobs for NewInbox.
// There is no Builder here — spec.md's constructors take capacity,
// name, and message size directly — but the reporter and slot-padding
// tunable are genuinely optional, so they follow the teacher's own
// functional-options idiom rather than growing the constructor's
// positional argument list.
type config struct {
	reporter Reporter
	padded   bool
}

// Option configures NewInbox or NewNode.
type Option func(*config)

// WithReporter injects a Reporter that receives tagged diagnostics on
// construction failure. The default is NoopReporter.
func WithReporter(r Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithPaddedSlots rounds each slot's payload stride up to a cache-line
// multiple, trading memory for immunity to false sharing between
// adjacent slots when msgSize is small. spec.md §4.2 documents this as
// a tunable the reference implementation does not apply by default.
func WithPaddedSlots(padded bool) Option {
	return func(c *config) { c.padded = padded }
}

func newConfig(opts []Option) config {
	c := config{reporter: NoopReporter{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
