// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Inbox is a bounded, lock-free ring of fixed-size message slots.
//
// An Inbox has no queue-wide lock; every operation coordinates through
// a single slot's header flags plus the producer counter (writeIdx) and
// consumer counter (readIdx). Capacity must be positive and even — the
// library does not require a power of two, unlike most FAA-based ring
// buffers, because slot selection uses a reciprocal-multiply modulo
// reduction (see fastmod.go) instead of a bitmask.
//
// Which of the six read/write operations to call depends on how many goroutines
// produce into, and consume from, the same Inbox concurrently:
//
//	single producer, non-blocking : TryWrite
//	single producer, spinning     : WriteSpin  (safe for multiple producers)
//	single consumer, non-blocking : TryRead
//	single consumer, spinning     : ReadSpin
//	shared consumers, non-blocking: TryReadShared
//	shared consumers, spinning    : ReadSharedSpin
//
// Mixing shared and non-shared variants on the same Inbox is undefined:
// non-shared reads never touch sharedLocked, so a shared reader racing a
// non-shared reader on the same slot can observe a torn read.
type Inbox struct {
	_          pad
	writeIdx   atomix.Uint64
	_          pad
	readIdx    atomix.Uint64
	_          pad
	capacity   uint64
	msgSize    uint64
	reciprocal uint64
	name       string
	ring       slotRing
	_          pad
}

// NewInbox allocates an Inbox with room for capacity messages of
// msgSize bytes each, addressable later by name (via Node.Select).
//
// Returns ErrInvalidCapacity if capacity is zero or odd,
// ErrInvalidMsgSize if msgSize is zero, or ErrEmptyName if name is "".
// On any of these, the configured Reporter (see WithReporter) receives
// a tagged diagnostic before the error is returned.
func NewInbox(capacity uint64, name string, msgSize uint64, opts ...Option) (*Inbox, error) {
	cfg := newConfig(opts)

	var err error
	switch {
	case capacity == 0 || capacity%2 != 0:
		err = ErrInvalidCapacity
	case name == "":
		err = ErrEmptyName
	case msgSize == 0:
		err = ErrInvalidMsgSize
	}
	if err != nil {
		cfg.reporter.Report(debugTag(err), name)
		return nil, err
	}

	ib := &Inbox{
		capacity:   capacity,
		msgSize:    msgSize,
		reciprocal: reciprocalConstant(capacity),
		name:       name,
		ring:       newSlotRing(capacity, msgSize, cfg.padded),
	}
	return ib, nil
}

// Valid reports whether ib is a live, non-nil Inbox. Call it after
// NewInbox or after Node.Select before using the result.
func (ib *Inbox) Valid() bool { return ib != nil }

// NameIs reports whether ib's name equals cmp.
func (ib *Inbox) NameIs(cmp string) bool { return ib.name == cmp }

// Cap returns the inbox capacity, in slots.
func (ib *Inbox) Cap() uint64 { return ib.capacity }

// Close releases ib's slot storage. Close does not touch any other
// Inbox or Node that may reference ib; callers must ensure no goroutine
// still holds a reference before calling Close (spec.md §5 hazard:
// "freeing an inbox while any thread still references it").
func (ib *Inbox) Close() error {
	ib.ring = slotRing{}
	return nil
}

// TryWrite attempts to publish msg (exactly msgSize bytes) without
// blocking. Returns false, with no side effects, if the next slot is
// still occupied by an unread message.
//
// TryWrite is single-producer only: it does not advance the write
// counter on failure, so a losing producer keeps retrying the same
// slot rather than a new one. This gives prompt failure feedback for
// hit-ratio measurement, but two concurrent TryWrite callers can both
// target the same slot and one will spuriously fail even though the
// ring has free capacity elsewhere. Use WriteSpin for multiple
// producers.
func (ib *Inbox) TryWrite(msg []byte) bool {
	idx := fastIndex(ib.writeIdx.LoadRelaxed(), ib.capacity, ib.reciprocal)
	header, payload := ib.ring.at(idx)

	if !header.occupied.CompareAndSwapAcquire(false, true) {
		return false
	}
	copy(payload, msg)
	ib.writeIdx.AddRelease(1)
	header.ready.StoreRelease(true)
	return true
}

// WriteSpin publishes msg (exactly msgSize bytes), busy-waiting until a
// slot is free. Unlike TryWrite, each call reserves exactly one
// monotonically increasing ticket up front, so WriteSpin is safe to
// call from any number of concurrent producer goroutines.
func (ib *Inbox) WriteSpin(msg []byte) {
	ticket := ib.writeIdx.AddAcqRel(1) - 1
	idx := fastIndex(ticket, ib.capacity, ib.reciprocal)
	header, payload := ib.ring.at(idx)

	sw := spin.Wait{}
	for !header.occupied.CompareAndSwapAcquire(false, true) {
		sw.Once()
	}
	copy(payload, msg)
	header.ready.StoreRelease(true)
}

// TryRead attempts to copy the next unread message into dst without
// blocking. Returns false if no message is ready. TryRead must only be
// called by a single consumer goroutine per Inbox; for multiple
// concurrent consumers use TryReadShared.
func (ib *Inbox) TryRead(dst []byte) bool {
	idx := fastIndex(ib.readIdx.LoadRelaxed(), ib.capacity, ib.reciprocal)
	header, payload := ib.ring.at(idx)

	if !header.occupied.LoadRelaxed() {
		return false
	}
	if !header.ready.LoadAcquire() {
		return false
	}
	copy(dst, payload)
	header.ready.StoreRelaxed(false)
	header.occupied.StoreRelease(false)
	ib.readIdx.AddRelease(1)
	return true
}

// ReadSpin copies the next message into dst, busy-waiting until one is
// ready. ReadSpin must only be called by a single consumer goroutine
// per Inbox; for multiple concurrent consumers use ReadSharedSpin.
func (ib *Inbox) ReadSpin(dst []byte) {
	ticket := ib.readIdx.AddAcqRel(1) - 1
	idx := fastIndex(ticket, ib.capacity, ib.reciprocal)
	header, payload := ib.ring.at(idx)

	sw := spin.Wait{}
	for {
		if header.occupied.LoadRelaxed() && header.ready.LoadAcquire() {
			copy(dst, payload)
			header.ready.StoreRelaxed(false)
			header.occupied.StoreRelease(false)
			return
		}
		sw.Once()
	}
}

// TryReadShared attempts to copy the next unread message into dst
// without blocking, and is safe to call from any number of concurrent
// consumer goroutines on the same Inbox. It serializes competitors per
// slot with sharedLocked rather than per Inbox, so two consumers can
// drain distinct slots simultaneously. Returns false if the slot is
// already locked by another consumer, or if no message is ready.
func (ib *Inbox) TryReadShared(dst []byte) bool {
	idx := fastIndex(ib.readIdx.LoadRelaxed(), ib.capacity, ib.reciprocal)
	header, payload := ib.ring.at(idx)

	if !header.sharedLocked.CompareAndSwapAcquire(false, true) {
		return false
	}
	if !header.occupied.LoadRelaxed() || !header.ready.LoadAcquire() {
		header.sharedLocked.StoreRelease(false)
		return false
	}
	copy(dst, payload)
	ib.readIdx.AddRelease(1)
	header.ready.StoreRelaxed(false)
	header.occupied.StoreRelease(false)
	header.sharedLocked.StoreRelease(false)
	return true
}

// ReadSharedSpin copies the next message into dst, busy-waiting until
// it wins the race to drain a ready slot. Safe for any number of
// concurrent consumer goroutines on the same Inbox.
func (ib *Inbox) ReadSharedSpin(dst []byte) {
	sw := spin.Wait{}
	for !ib.TryReadShared(dst) {
		sw.Once()
	}
}
