// Copyright 2026 The ringmsg Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmsg

// Node is an immutable, named bundle of Inbox references with
// name-keyed lookup and a broadcast-write helper. A Node does not own
// the inboxes it references unless the caller uses CloseWithInboxes.
type Node struct {
	name    string
	inboxes []*Inbox
}

// NewNode bundles inboxes under name. inboxes is an ordered slice — the
// type-safe rewrite of the reference library's C varargs constructor
// (spec.md §9) — rather than a Go variadic, which leaves the trailing
// variadic slot free for the Option pattern shared with NewInbox.
//
// Returns ErrNoInboxes if inboxes is empty, ErrNilInbox if any element
// is nil, or ErrDuplicateInbox if the same Inbox pointer appears more
// than once. On any of these the configured Reporter (see WithReporter)
// receives a tagged diagnostic before the error is returned.
func NewNode(name string, inboxes []*Inbox, opts ...Option) (*Node, error) {
	cfg := newConfig(opts)

	var err error
	switch {
	case name == "":
		err = ErrEmptyName
	case len(inboxes) == 0:
		err = ErrNoInboxes
	}
	if err == nil {
		for k, ib := range inboxes {
			if ib == nil {
				err = ErrNilInbox
				break
			}
			for j := 0; j < k; j++ {
				if inboxes[j] == ib {
					err = ErrDuplicateInbox
					break
				}
			}
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		cfg.reporter.Report(debugTag(err), name)
		return nil, err
	}

	ordered := make([]*Inbox, len(inboxes))
	copy(ordered, inboxes)
	return &Node{name: name, inboxes: ordered}, nil
}

// Valid reports whether n is a live, non-nil Node.
func (n *Node) Valid() bool { return n != nil }

// NameIs reports whether n's name equals cmp.
func (n *Node) NameIs(cmp string) bool { return n.name == cmp }

// Select returns the inbox in n whose name equals name, and whether one
// was found. Lookup is a linear scan over the ordered inbox list.
func (n *Node) Select(name string) (*Inbox, bool) {
	for _, ib := range n.inboxes {
		if ib.NameIs(name) {
			return ib, true
		}
	}
	return nil, false
}

// Broadcast writes msg to every inbox in n, in list order, using
// WriteSpin. It blocks until every inbox has received the message.
// All inboxes must accept messages of at least len(msg) bytes; this is
// an unchecked precondition, as in spec.md §4.3.4.
func (n *Node) Broadcast(msg []byte) {
	for _, ib := range n.inboxes {
		ib.WriteSpin(msg)
	}
}

// Close releases n's reference table. It does not close the inboxes n
// referenced.
func (n *Node) Close() error {
	n.inboxes = nil
	return nil
}

// CloseWithInboxes closes n and every distinct inbox it references,
// each exactly once, then releases n itself. Only use this when the
// attached inboxes are not shared with other nodes.
func (n *Node) CloseWithInboxes() error {
	closed := make(map[*Inbox]struct{}, len(n.inboxes))
	for _, ib := range n.inboxes {
		if _, done := closed[ib]; done {
			continue
		}
		closed[ib] = struct{}{}
		_ = ib.Close()
	}
	return n.Close()
}
