// Package raveltest provides a recording in-memory backend for testing
// reconciliation behavior. Every mutation is appended to an op log, so
// tests can assert not only on the resulting tree but on exactly which
// backend operations a rebuild emitted.
package raveltest

import (
	"fmt"

	"github.com/ravelui/ravel/pkg/backend"
)

// OpKind names a recorded backend operation.
type OpKind string

// The recorded operation kinds. CreateMarker is folded into Create; a
// move of an attached node or range is recorded as Move rather than
// Insert.
const (
	Create        OpKind = "create"
	SetText       OpKind = "set-text"
	SetAttr       OpKind = "set-attr"
	ClearAttr     OpKind = "clear-attr"
	SetListener   OpKind = "set-listener"
	ClearListener OpKind = "clear-listener"
	Insert        OpKind = "insert"
	Move          OpKind = "move"
	Remove        OpKind = "remove"
)

// Op is one recorded backend operation. Node and Anchor are node IDs;
// an Anchor of 0 means none.
type Op struct {
	Kind   OpKind
	Node   int
	Anchor int
	Detail string
}

func (op Op) String() string {
	s := fmt.Sprintf("%s %d", op.Kind, op.Node)
	if op.Anchor != 0 {
		s += fmt.Sprintf(" before %d", op.Anchor)
	}
	if op.Detail != "" {
		s += " " + op.Detail
	}
	return s
}

// Backend is a recording in-memory backend. The zero value is not
// usable; construct with New.
type Backend struct {
	*backend.Tree
	ops    []Op
	events chan backend.Event
}

// New returns a Backend with a fresh tree and an open event queue.
func New() *Backend {
	return &Backend{Tree: backend.NewTree(), events: make(chan backend.Event, 128)}
}

func id(h backend.Handle) int {
	if h == nil {
		return 0
	}
	return h.(*backend.Node).ID
}

func (b *Backend) record(op Op) { b.ops = append(b.ops, op) }

// Ops returns the operations recorded since the last Reset.
func (b *Backend) Ops() []Op { return b.ops }

// Reset clears the op log.
func (b *Backend) Reset() { b.ops = nil }

// Count returns how many recorded ops have the given kind.
func (b *Backend) Count(kind OpKind) int {
	n := 0
	for _, op := range b.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Fire queues an event for the given listener token.
func (b *Backend) Fire(t backend.Token, typ string, payload any) {
	b.events <- backend.Event{Token: t, Type: typ, Payload: payload}
}

// Close closes the event queue, stopping a driver running against this
// backend.
func (b *Backend) Close() { close(b.events) }

// ListenerToken returns the token registered on h for the named event
// and whether one is present.
func (b *Backend) ListenerToken(h backend.Handle, event string) (backend.Token, bool) {
	t, ok := h.(*backend.Node).Listeners[event]
	return t, ok
}

func (b *Backend) CreateElement(tag string) backend.Handle {
	h := b.Tree.CreateElement(tag)
	b.record(Op{Kind: Create, Node: id(h), Detail: "<" + tag + ">"})
	return h
}

func (b *Backend) CreateText(data string) backend.Handle {
	h := b.Tree.CreateText(data)
	b.record(Op{Kind: Create, Node: id(h), Detail: fmt.Sprintf("%q", data)})
	return h
}

func (b *Backend) CreateMarker() backend.Handle {
	h := b.Tree.CreateMarker()
	b.record(Op{Kind: Create, Node: id(h), Detail: "marker"})
	return h
}

func (b *Backend) SetText(h backend.Handle, data string) {
	b.Tree.SetText(h, data)
	b.record(Op{Kind: SetText, Node: id(h), Detail: fmt.Sprintf("%q", data)})
}

func (b *Backend) SetAttr(h backend.Handle, name, value string, property bool) {
	b.Tree.SetAttr(h, name, value, property)
	b.record(Op{Kind: SetAttr, Node: id(h), Detail: name + "=" + value})
}

func (b *Backend) ClearAttr(h backend.Handle, name string, property bool) {
	b.Tree.ClearAttr(h, name, property)
	b.record(Op{Kind: ClearAttr, Node: id(h), Detail: name})
}

func (b *Backend) SetListener(h backend.Handle, event string, t backend.Token) {
	b.Tree.SetListener(h, event, t)
	b.record(Op{Kind: SetListener, Node: id(h), Detail: event})
}

func (b *Backend) ClearListener(h backend.Handle, event string, t backend.Token) {
	b.Tree.ClearListener(h, event, t)
	b.record(Op{Kind: ClearListener, Node: id(h), Detail: event})
}

func (b *Backend) InsertBefore(parent, h, anchor backend.Handle) {
	kind := Insert
	if h.(*backend.Node).Parent() != nil {
		kind = Move
	}
	b.Tree.InsertBefore(parent, h, anchor)
	b.record(Op{Kind: kind, Node: id(h), Anchor: id(anchor)})
}

// MoveRange implements [backend.RangeMover]: the whole range is
// recorded as a single move of its first node.
func (b *Backend) MoveRange(parent, first, limit, anchor backend.Handle) {
	var nodes []backend.Handle
	for n := first; n != nil && n != limit; n = b.Tree.NextSibling(n) {
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		b.Tree.InsertBefore(parent, n, anchor)
	}
	b.record(Op{Kind: Move, Node: id(first), Anchor: id(anchor)})
}

func (b *Backend) Remove(h backend.Handle) {
	b.Tree.Remove(h)
	b.record(Op{Kind: Remove, Node: id(h)})
}

func (b *Backend) Events() <-chan backend.Event { return b.events }
