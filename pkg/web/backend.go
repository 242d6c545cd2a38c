package web

import (
	"github.com/golang/glog"

	"github.com/ravelui/ravel/pkg/backend"
)

// bridgeBackend mirrors every mutation onto a local shadow tree, which
// answers the reconciler's structural queries synchronously, and
// forwards it to the browser as a notification. Events arrive on the
// events channel from the connection's notification handler.
type bridgeBackend struct {
	*backend.Tree
	notify func(method string, params any)
	events chan backend.Event
}

func newBridgeBackend(notify func(method string, params any)) *bridgeBackend {
	return &bridgeBackend{
		Tree:   backend.NewTree(),
		notify: notify,
		events: make(chan backend.Event, 128),
	}
}

func id(h backend.Handle) int {
	if h == nil {
		return 0
	}
	return h.(*backend.Node).ID
}

func (b *bridgeBackend) CreateElement(tag string) backend.Handle {
	h := b.Tree.CreateElement(tag)
	b.notify(methodCreateElement, createParams{ID: id(h), Tag: tag})
	return h
}

func (b *bridgeBackend) CreateText(data string) backend.Handle {
	h := b.Tree.CreateText(data)
	b.notify(methodCreateText, createParams{ID: id(h), Text: data})
	return h
}

func (b *bridgeBackend) CreateMarker() backend.Handle {
	h := b.Tree.CreateMarker()
	b.notify(methodCreateMarker, createParams{ID: id(h)})
	return h
}

func (b *bridgeBackend) SetText(h backend.Handle, data string) {
	b.Tree.SetText(h, data)
	b.notify(methodSetText, setTextParams{ID: id(h), Text: data})
}

func (b *bridgeBackend) SetAttr(h backend.Handle, name, value string, property bool) {
	b.Tree.SetAttr(h, name, value, property)
	b.notify(methodSetAttr, attrParams{ID: id(h), Name: name, Value: value, Property: property})
}

func (b *bridgeBackend) ClearAttr(h backend.Handle, name string, property bool) {
	b.Tree.ClearAttr(h, name, property)
	b.notify(methodClearAttr, attrParams{ID: id(h), Name: name, Property: property})
}

func (b *bridgeBackend) SetListener(h backend.Handle, event string, t backend.Token) {
	b.Tree.SetListener(h, event, t)
	b.notify(methodSetListener, listenerParams{ID: id(h), Event: event, Token: int(t)})
}

func (b *bridgeBackend) ClearListener(h backend.Handle, event string, t backend.Token) {
	b.Tree.ClearListener(h, event, t)
	b.notify(methodClearListener, listenerParams{ID: id(h), Event: event, Token: int(t)})
}

func (b *bridgeBackend) InsertBefore(parent, h, anchor backend.Handle) {
	b.Tree.InsertBefore(parent, h, anchor)
	b.notify(methodInsertBefore, insertParams{Parent: id(parent), ID: id(h), Anchor: id(anchor)})
}

// MoveRange implements [backend.RangeMover]; the browser walks the
// sibling range itself, so the whole move is one message.
func (b *bridgeBackend) MoveRange(parent, first, limit, anchor backend.Handle) {
	var nodes []backend.Handle
	for n := first; n != nil && n != limit; n = b.Tree.NextSibling(n) {
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		b.Tree.InsertBefore(parent, n, anchor)
	}
	b.notify(methodMoveRange, moveRangeParams{
		Parent: id(parent), First: id(first), Limit: id(limit), Anchor: id(anchor)})
}

func (b *bridgeBackend) Remove(h backend.Handle) {
	b.Tree.Remove(h)
	b.notify(methodRemove, removeParams{ID: id(h)})
}

func (b *bridgeBackend) Events() <-chan backend.Event { return b.events }

// deliver queues an event received from the browser. Events arriving
// after the connection shut the queue down are dropped.
func (b *bridgeBackend) deliver(ev backend.Event) {
	defer func() {
		if recover() != nil {
			glog.V(1).Infof("ravel/web: dropping event %q after close", ev.Type)
		}
	}()
	b.events <- ev
}

func (b *bridgeBackend) close() { close(b.events) }
