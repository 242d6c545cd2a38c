package view

import (
	"fmt"

	"github.com/ravelui/ravel/pkg/backend"
)

// EitherFirst and EitherSecond build the two variants of an alternative
// subtree. Switching variants between cycles tears down the previous
// variant's nodes and builds the new one inside the same marker pair.
func EitherFirst(child View) View { return either{child: child} }

// EitherSecond returns the second variant of an alternative subtree.
func EitherSecond(child View) View { return either{second: true, child: child} }

// Either selects between two subtrees: a when first is true, b
// otherwise. Only the selected child is materialized.
func Either(first bool, a, b View) View {
	if first {
		return EitherFirst(a)
	}
	return EitherSecond(b)
}

type either struct {
	second bool
	child  View
}

type eitherState struct {
	start, end backend.Handle
	second     bool
	childTyp   typeToken
	child      State
}

func (v either) Build(cx *Cx) State {
	es := &eitherState{second: v.second}
	es.start = cx.Cur.InsertMarker()
	es.childTyp = tokenOf(v.child)
	es.child = v.child.Build(cx)
	es.end = cx.Cur.InsertMarker()
	return es
}

func (v either) Rebuild(cx *Cx, st State) {
	es := st.(*eitherState)
	parent := cx.Cur.Parent()
	if v.second != es.second {
		backend.Clear(cx.B, parent, es.start, es.end)
		es.child.Free(cx.Sink)
		es.second = v.second
		es.childTyp = tokenOf(v.child)
		es.child = v.child.Build(cx.at(backend.Before(cx.B, parent, es.end)))
	} else {
		if t := tokenOf(v.child); t != es.childTyp {
			panic(fmt.Sprintf(
				"ravel: either variant changed type from %v to %v; wrap it in Dyn",
				es.childTyp, t))
		}
		v.child.Rebuild(cx.at(backend.After(cx.B, parent, es.start)), es.child)
	}
	cx.Cur.JumpPast(es.end)
}

func (es *eitherState) Free(sink EventSink) {
	es.child.Free(sink)
}
