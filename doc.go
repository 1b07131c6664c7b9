// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringmsg provides a low-latency, in-process message-passing
// primitive: a lock-free, fixed-capacity ring buffer of fixed-size
// message slots (Inbox), plus a thin named-bundle facade for broadcast
// (Node).
//
// It targets threads pinned to separate cores exchanging fixed-layout
// records with bounded latency and no kernel synchronization — trading
// pipelines, real-time telemetry, simulation meshes. Callers arrange
// their own threads and CPU affinity; ringmsg's only contract with them
// is the operation set below.
//
// # Quick Start
//
//	type quote struct {
//	    bid, ask float64
//	}
//
//	inbox, err := ringmsg.NewInbox(1024, "quotes", uint64(unsafe.Sizeof(quote{})))
//	if err != nil {
//	    // capacity must be positive and even; name and msgSize non-zero.
//	}
//
// # Choosing an operation
//
// Which of the six Inbox read/write operations to use depends on the producer
// and consumer cardinality on that Inbox:
//
//	single producer, non-blocking : TryWrite
//	single producer, spinning     : WriteSpin  (safe for many producers)
//	single consumer, non-blocking : TryRead
//	single consumer, spinning     : ReadSpin
//	shared consumers, non-blocking: TryReadShared
//	shared consumers, spinning    : ReadSharedSpin
//
// TryWrite and TryRead/ReadSpin assume exactly one producer/consumer
// goroutine; WriteSpin and the shared read variants are safe for many.
// Mixing shared and non-shared operations on the same Inbox is
// undefined — non-shared operations never touch the per-slot
// sharedLocked flag.
//
// # Pipeline (single producer, single consumer, spinning)
//
//	inbox, _ := ringmsg.NewInbox(4, "ticks", uint64(unsafe.Sizeof(tick{})))
//
//	go func() { // producer
//	    for t := range source {
//	        buf := encode(t)
//	        inbox.WriteSpin(buf)
//	    }
//	}()
//
//	go func() { // consumer
//	    buf := make([]byte, msgSize)
//	    for {
//	        inbox.ReadSpin(buf)
//	        process(decode(buf))
//	    }
//	}()
//
// # Hit-ratio measurement (non-blocking)
//
//	var attempts, written int
//	for written < total {
//	    attempts++
//	    if inbox.TryWrite(buf) {
//	        written++
//	    }
//	}
//	hitRatio := float64(written) / float64(attempts)
//
// # Broadcast (Node)
//
//	quotesA, _ := ringmsg.NewInbox(4, "a", msgSize)
//	quotesB, _ := ringmsg.NewInbox(4, "b", msgSize)
//	quotesC, _ := ringmsg.NewInbox(4, "c", msgSize)
//	node, _ := ringmsg.NewNode("quote-fanout", []*ringmsg.Inbox{quotesA, quotesB, quotesC})
//
//	node.Broadcast(buf) // WriteSpin to every inbox, in order, blocking until all land
//
//	if ib, ok := node.Select("b"); ok {
//	    ib.ReadSpin(buf)
//	}
//
// # Shared consumers
//
// Any number of goroutines may call TryReadShared or ReadSharedSpin on
// the same Inbox concurrently; the per-slot sharedLocked flag
// guarantees no two consumers ever drain the same slot occurrence.
//
//	go func() { // worker pool member
//	    buf := make([]byte, msgSize)
//	    for {
//	        inbox.ReadSharedSpin(buf)
//	        handle(buf)
//	    }
//	}()
//
// # Diagnostics
//
// Construction is the only failure path — TryWrite/TryRead/
// TryReadShared return a bool would-block outcome, never an error.
// Pass WithReporter to have construction failures logged with the tag
// spec's reference library would have printed under its debug build:
//
//	inbox, err := ringmsg.NewInbox(3, "bad", 8, ringmsg.WithReporter(ringmsg.StdoutReporter{}))
//	// prints: RINGMSG_ERROR: INBOX_INCORRECT_SIZE: bad
//	// err is ringmsg.ErrInvalidCapacity
//
// # Non-goals
//
// Dynamic resizing, persistence, cross-process transport, per-message
// priorities, variable-length messages, and producer/consumer fairness
// are all out of scope. The spinning variants busy-wait; ringmsg never
// parks a goroutine on a futex or condvar, so callers needing to yield
// the OS thread must layer that on themselves.
package ringmsg
