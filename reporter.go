// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

import "os"

// Reporter is a diagnostic sink invoked only from construction failures
// in NewInbox and NewNode — never from the hot read/write path.
//
// Report receives a short machine-readable tag (e.g.
// "INBOX_INCORRECT_SIZE") and the name that was passed to the failed
// constructor, mirroring the reference library's compile-time X9_DEBUG
// sink without resorting to a process-wide global or a build tag: a
// caller who wants the diagnostics wires a Reporter in with WithReporter,
// a caller who doesn't gets NoopReporter and pays nothing.
type Reporter interface {
	Report(tag, name string)
}

// NoopReporter discards every report. It is the default Reporter.
type NoopReporter struct{}

// Report implements Reporter.
func (NoopReporter) Report(string, string) {}

// StdoutReporter writes tagged construction failures to stdout, in the
// same "TAG: name" shape the reference library's X9_DEBUG sink prints.
// Report only ever runs on a construction failure (a cold path), so it
// writes directly rather than buffering or routing through a logger.
type StdoutReporter struct{}

// Report implements Reporter.
func (StdoutReporter) Report(tag, name string) {
	os.Stdout.WriteString("RINGMSG_ERROR: " + tag + ": " + name + "\n")
}
