package view

import (
	"fmt"

	"github.com/ravelui/ravel/pkg/backend"
)

// If returns a view that renders child only when cond is true. The
// occupied range is delimited by a pair of marker nodes so that
// surrounding siblings keep their positions when the child comes and
// goes.
func If(cond bool, child View) View {
	if !cond {
		return maybe{}
	}
	return maybe{child: child}
}

// Maybe returns a view rendering child, or nothing when child is nil.
func Maybe(child View) View { return maybe{child: child} }

type maybe struct {
	child View // nil when absent
}

type maybeState struct {
	start, end backend.Handle
	childTyp   typeToken
	child      State // nil when absent
}

func (v maybe) Build(cx *Cx) State {
	ms := &maybeState{}
	ms.start = cx.Cur.InsertMarker()
	if v.child != nil {
		ms.childTyp = tokenOf(v.child)
		ms.child = v.child.Build(cx)
	}
	ms.end = cx.Cur.InsertMarker()
	return ms
}

func (v maybe) Rebuild(cx *Cx, st State) {
	ms := st.(*maybeState)
	parent := cx.Cur.Parent()
	switch {
	case v.child == nil && ms.child == nil:
	case v.child == nil: // absent now, present before
		backend.Clear(cx.B, parent, ms.start, ms.end)
		ms.child.Free(cx.Sink)
		ms.child = nil
		ms.childTyp = typeToken{}
	case ms.child == nil: // present now, absent before
		ms.childTyp = tokenOf(v.child)
		ms.child = v.child.Build(cx.at(backend.Before(cx.B, parent, ms.end)))
	default:
		if t := tokenOf(v.child); t != ms.childTyp {
			panic(fmt.Sprintf(
				"ravel: optional child changed type from %v to %v; wrap it in Dyn",
				ms.childTyp, t))
		}
		v.child.Rebuild(cx.at(backend.After(cx.B, parent, ms.start)), ms.child)
	}
	cx.Cur.JumpPast(ms.end)
}

func (ms *maybeState) Free(sink EventSink) {
	if ms.child != nil {
		ms.child.Free(sink)
	}
}
