// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

import "errors"

// Construction errors. These are the only failure paths in the package:
// once an Inbox or Node is constructed, its operations either complete
// or report a would-block outcome via a bool return, never an error.
var (
	// ErrInvalidCapacity is returned by NewInbox when capacity is zero
	// or odd. The library does not require a power of two.
	ErrInvalidCapacity = errors.New("ringmsg: capacity must be positive and even")

	// ErrEmptyName is returned by NewInbox or NewNode when name is "".
	ErrEmptyName = errors.New("ringmsg: name must not be empty")

	// ErrInvalidMsgSize is returned by NewInbox when msgSize is zero.
	ErrInvalidMsgSize = errors.New("ringmsg: message size must be positive")

	// ErrNoInboxes is returned by NewNode when called with zero inboxes.
	ErrNoInboxes = errors.New("ringmsg: node must have at least one inbox")

	// ErrNilInbox is returned by NewNode when one of the inboxes is nil.
	ErrNilInbox = errors.New("ringmsg: node inbox must not be nil")

	// ErrDuplicateInbox is returned by NewNode when the same inbox
	// pointer is passed more than once.
	ErrDuplicateInbox = errors.New("ringmsg: node inboxes must be distinct")
)

// debugTag maps a construction error to the reference library's
// human-readable diagnostic tag, for Reporter.Report.
func debugTag(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCapacity):
		return "INBOX_INCORRECT_SIZE"
	case errors.Is(err, ErrEmptyName):
		return "NAME_EMPTY"
	case errors.Is(err, ErrInvalidMsgSize):
		return "INBOX_INCORRECT_MSG_SIZE"
	case errors.Is(err, ErrNoInboxes):
		return "NODE_INCORRECT_DEFINITION"
	case errors.Is(err, ErrNilInbox):
		return "NODE_NIL_INBOX"
	case errors.Is(err, ErrDuplicateInbox):
		return "NODE_MULTIPLE_EQUAL_INBOXES"
	default:
		return "UNKNOWN"
	}
}
