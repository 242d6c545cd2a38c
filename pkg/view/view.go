// Package view implements the reconciliation protocol at the heart of
// Ravel: ephemeral view descriptors that build and rebuild long-lived
// retained state, updating the backend in place without ever computing a
// structural diff.
//
// A [View] describes what the UI should look like right now. It is
// materialized anew on every update cycle and consumed by Build (first
// insertion) or Rebuild (subsequent update); no reference to it survives
// the cycle. The [State] a view builds is retained across cycles and
// holds backend handles plus whatever prior values the view needs to
// decide whether to emit a backend mutation.
//
// Two descriptors occupying the same tree position in successive cycles
// share a retained state node exactly when their concrete types are
// identical. Statically shaped containers ([Group], element children)
// rely on this and treat a type change as misuse; [Dyn], [If], [Either]
// and [Keyed] absorb shape changes behind marker nodes.
package view

import (
	"fmt"
	"reflect"

	"github.com/ravelui/ravel/pkg/backend"
)

// View is an ephemeral descriptor of a UI subtree.
//
// Build inserts fresh backend nodes at the cursor, registers any event
// handlers with the sink, and returns the retained state. Rebuild walks
// the existing state and the new descriptor in parallel, mutating
// backend nodes to match; it must only be called with a state built by a
// view of the same concrete type, and advances the cursor to the same
// exit position as Build. Neither operation can fail.
type View interface {
	Build(cx *Cx) State
	Rebuild(cx *Cx, st State)
}

// State is the retained counterpart of a View. It stores only owned
// data and backend handles, never references into a descriptor tree.
//
// Free releases every handler-table entry registered by the subtree. It
// does not touch backend nodes; those are removed by the marker-range
// owner that is discarding the state.
type State interface {
	Free(sink EventSink)
}

// Cx carries the context for a build or rebuild pass: the backend, the
// cursor addressing the current sibling position, and the driver's event
// sink. Cx values are short-lived and may be copied freely within a
// pass.
type Cx struct {
	B    backend.Backend
	Cur  *backend.Cursor
	Sink EventSink
}

// at returns a copy of cx with the cursor replaced.
func (cx *Cx) at(cur *backend.Cursor) *Cx {
	return &Cx{B: cx.B, Cur: cur, Sink: cx.Sink}
}

// Handler reacts to a backend event. Handlers run strictly between
// update cycles, never during a build or rebuild pass, so they may
// freely mutate the application model they close over.
type Handler func(ev backend.Event)

// EventSink is the driver-provided registry of event handlers. Register
// allocates a stable token for the lifetime of the retained node;
// Replace swaps the stored closure on rebuild without touching the
// backend listener; Release frees the slot on teardown.
type EventSink interface {
	Register(h Handler) backend.Token
	Replace(t backend.Token, h Handler)
	Release(t backend.Token)
}

// Attr is an attribute binding attached to an element: a named value
// (string, boolean presence, class list) or an event listener. Bindings
// follow the same build/rebuild contract as views, but apply to the
// owning element instead of inserting nodes at a cursor.
type Attr interface {
	BuildAttr(cx *Cx, el backend.Handle) State
	RebuildAttr(cx *Cx, el backend.Handle, st State)
}

// typeToken identifies the concrete type of a view descriptor. For
// elements the tag is part of the identity, so that a div and a span at
// the same position do not share retained state.
type typeToken struct {
	typ reflect.Type
	tag string
}

func (t typeToken) String() string {
	if t.tag != "" {
		return fmt.Sprintf("%v<%s>", t.typ, t.tag)
	}
	return t.typ.String()
}

func tokenOf(v View) typeToken {
	t := typeToken{typ: reflect.TypeOf(v)}
	if el, ok := v.(*elView); ok {
		t.tag = el.tag
	}
	return t
}
