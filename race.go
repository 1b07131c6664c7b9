// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringmsg

// RaceEnabled is true when the race detector is active.
// Used by tests to skip the heavy multi-goroutine scenarios, which
// trigger race-detector false positives: the detector cannot resolve
// happens-before edges established purely through atomic acquire/release
// pairs on independent slot flags.
const RaceEnabled = true
