// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

import "code.hybscloud.com/atomix"

// slotHeader is the three-flag state protocol of one ring slot.
//
// The flags are independent atomics, not bits of a shared word — a
// producer publishing occupied/ready must never observe (or cause) a
// torn read of sharedLocked, which belongs exclusively to the shared
// (multi-consumer) read path.
//
//	occupied     — a producer has reserved the slot for writing.
//	ready        — the payload is fully written and safe to read.
//	sharedLocked — mutual exclusion bit used only by the shared reads.
type slotHeader struct {
	occupied     atomix.Bool
	ready        atomix.Bool
	sharedLocked atomix.Bool
	_            [cacheLineSize - 3]byte // pad header to one cache line
}

// slotRing is the contiguous backing storage for an Inbox: one header
// per slot plus a flat payload buffer sliced msgSize bytes at a time.
//
// Headers and payload bytes live in separate arrays rather than one
// interleaved struct-of-slots layout; this keeps the header array's
// cache-line padding meaningful (each header is its own cache line)
// without forcing every payload region up to a cache-line multiple,
// which spec.md §4.2 leaves as a documented tunable rather than a
// requirement. WithPaddedSlots(true) opts into that tunable for small
// messages that would otherwise false-share adjacent payload regions.
type slotRing struct {
	headers []slotHeader
	payload []byte
	stride  uint64
}

func newSlotRing(capacity, msgSize uint64, padded bool) slotRing {
	stride := msgSize
	if padded {
		stride = roundUpToCacheLine(msgSize)
	}
	return slotRing{
		headers: make([]slotHeader, capacity),
		payload: make([]byte, capacity*stride),
		stride:  stride,
	}
}

func (r *slotRing) at(idx uint64) (*slotHeader, []byte) {
	off := idx * r.stride
	return &r.headers[idx], r.payload[off : off+r.stride]
}

const cacheLineSize = 64

func roundUpToCacheLine(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return (n + cacheLineSize - 1) / cacheLineSize * cacheLineSize
}

// pad and padShort follow the teacher's false-sharing convention:
// isolate fields mutated by distinct parties onto separate cache lines.
type pad [cacheLineSize]byte
type padShort [cacheLineSize - 8]byte
