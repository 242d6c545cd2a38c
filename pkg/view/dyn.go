package view

import "github.com/ravelui/ravel/pkg/backend"

// Dyn erases the concrete type of a view, allowing the child at this
// position to change type between cycles. The retained state stores the
// child's type token; a rebuild with a matching token delegates in
// place, a mismatch tears the old subtree down and builds the new one
// inside the same marker pair.
func Dyn(child View) View { return dyn{child: child} }

type dyn struct {
	child View
}

type dynState struct {
	start, end backend.Handle
	typ        typeToken
	child      State
}

func (v dyn) Build(cx *Cx) State {
	ds := &dynState{typ: tokenOf(v.child)}
	ds.start = cx.Cur.InsertMarker()
	ds.child = v.child.Build(cx)
	ds.end = cx.Cur.InsertMarker()
	return ds
}

func (v dyn) Rebuild(cx *Cx, st State) {
	ds := st.(*dynState)
	parent := cx.Cur.Parent()
	if t := tokenOf(v.child); t == ds.typ {
		v.child.Rebuild(cx.at(backend.After(cx.B, parent, ds.start)), ds.child)
	} else {
		backend.Clear(cx.B, parent, ds.start, ds.end)
		ds.child.Free(cx.Sink)
		ds.typ = t
		ds.child = v.child.Build(cx.at(backend.Before(cx.B, parent, ds.end)))
	}
	cx.Cur.JumpPast(ds.end)
}

func (ds *dynState) Free(sink EventSink) {
	ds.child.Free(sink)
}
