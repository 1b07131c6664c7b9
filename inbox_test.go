// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ringmsg/ringmsg"
)

func TestNewInboxValidation(t *testing.T) {
	cases := []struct {
		name     string
		capacity uint64
		ibName   string
		msgSize  uint64
		wantErr  error
	}{
		{"zero capacity", 0, "a", 8, ringmsg.ErrInvalidCapacity},
		{"odd capacity", 3, "a", 8, ringmsg.ErrInvalidCapacity},
		{"empty name", 4, "", 8, ringmsg.ErrEmptyName},
		{"zero msg size", 4, "a", 0, ringmsg.ErrInvalidMsgSize},
		{"valid", 4, "a", 8, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ib, err := ringmsg.NewInbox(tc.capacity, tc.ibName, tc.msgSize)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("NewInbox: unexpected error %v", err)
				}
				if !ib.Valid() {
					t.Fatalf("NewInbox: got invalid inbox")
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewInbox: got err %v, want %v", err, tc.wantErr)
			}
			if ib.Valid() {
				t.Fatalf("NewInbox: expected invalid inbox on error")
			}
		})
	}
}

type reportCall struct {
	tag, name string
}

type recordingReporter struct{ calls *[]reportCall }

func (r recordingReporter) Report(tag, name string) {
	*r.calls = append(*r.calls, reportCall{tag, name})
}

func TestNewInboxReportsOnFailure(t *testing.T) {
	var calls []reportCall
	_, err := ringmsg.NewInbox(3, "bad-inbox", 8, ringmsg.WithReporter(recordingReporter{&calls}))
	if !errors.Is(err, ringmsg.ErrInvalidCapacity) {
		t.Fatalf("got err %v, want ErrInvalidCapacity", err)
	}
	if len(calls) != 1 || calls[0].tag != "INBOX_INCORRECT_SIZE" || calls[0].name != "bad-inbox" {
		t.Fatalf("unexpected reporter calls: %+v", calls)
	}
}

func TestInboxNameIs(t *testing.T) {
	ib, err := ringmsg.NewInbox(4, "orders", 8)
	if err != nil {
		t.Fatal(err)
	}
	if !ib.NameIs("orders") {
		t.Fatal("NameIs: want true")
	}
	if ib.NameIs("quotes") {
		t.Fatal("NameIs: want false")
	}
}

func TestTryWriteTryReadRoundTrip(t *testing.T) {
	ib, err := ringmsg.NewInbox(4, "roundtrip", 8)
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("abcdefgh")
	if !ib.TryWrite(msg) {
		t.Fatal("TryWrite: want true on empty inbox")
	}

	dst := make([]byte, 8)
	if !ib.TryRead(dst) {
		t.Fatal("TryRead: want true after a successful write")
	}
	if !bytes.Equal(dst, msg) {
		t.Fatalf("TryRead: got %q, want %q", dst, msg)
	}

	if ib.TryRead(dst) {
		t.Fatal("TryRead: want false on empty inbox")
	}
}

func TestTryWriteFillsCapacityThenBlocks(t *testing.T) {
	ib, err := ringmsg.NewInbox(4, "full", 8)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("xxxxxxxx")

	// Each successful TryWrite advances the write counter to the next
	// slot, so a lone producer fills every slot in turn; only once the
	// counter wraps back onto a still-occupied slot does TryWrite fail
	// without advancing, so the failing producer keeps retrying that
	// same head slot until a consumer frees it.
	for i := 0; i < 4; i++ {
		if !ib.TryWrite(msg) {
			t.Fatalf("TryWrite %d: want true", i)
		}
	}
	if ib.TryWrite(msg) {
		t.Fatal("TryWrite on a full ring: want false")
	}
	if ib.TryWrite(msg) {
		t.Fatal("retry on the same head slot: want false")
	}

	dst := make([]byte, 8)
	if !ib.TryRead(dst) {
		t.Fatal("TryRead: want true")
	}
	if !ib.TryWrite(msg) {
		t.Fatal("TryWrite after drain: want true")
	}
}

func TestWriteSpinReadSpinRoundTrip(t *testing.T) {
	ib, err := ringmsg.NewInbox(4, "spin", 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		msg := []byte{byte(i), 0, 0, 0, 0, 0, 0, 0}
		ib.WriteSpin(msg)
	}
	for i := 0; i < 4; i++ {
		dst := make([]byte, 8)
		ib.ReadSpin(dst)
		if dst[0] != byte(i) {
			t.Fatalf("ReadSpin(%d): got %d, want %d", i, dst[0], i)
		}
	}
}

func TestNewInboxWithPaddedSlots(t *testing.T) {
	ib, err := ringmsg.NewInbox(4, "padded", 4, ringmsg.WithPaddedSlots(true))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ib.Cap(), uint64(4); got != want {
		t.Fatalf("Cap() = %d, want %d", got, want)
	}

	for i := uint32(0); uint64(i) < ib.Cap(); i++ {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, i)
		if !ib.TryWrite(buf) {
			t.Fatalf("TryWrite %d: want true", i)
		}
	}

	// A cache-line-padded stride must still round-trip a small payload
	// exactly, with no bleed from an adjacent slot's padding bytes.
	for i := uint32(0); i < 4; i++ {
		dst := make([]byte, 4)
		if !ib.TryRead(dst) {
			t.Fatalf("TryRead %d: want true", i)
		}
		if got := binary.LittleEndian.Uint32(dst); got != i {
			t.Fatalf("message %d: got %d, want %d", i, got, i)
		}
	}
}

func TestTryReadSharedSerializesPerSlot(t *testing.T) {
	ib, err := ringmsg.NewInbox(4, "shared", 8)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("12345678")
	ib.WriteSpin(msg)

	dst1 := make([]byte, 8)
	dst2 := make([]byte, 8)
	first := ib.TryReadShared(dst1)
	second := ib.TryReadShared(dst2)
	if !first {
		t.Fatal("first TryReadShared: want true")
	}
	if second {
		t.Fatal("second TryReadShared on empty ring: want false")
	}
}
