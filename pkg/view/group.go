package view

import "fmt"

// Group combines heterogeneous children into a single view. The shape of
// a group is static: the number of children and the concrete type at
// each position must be the same on every cycle, which is what lets each
// child keep its retained state by position alone. Children whose type
// or presence varies at runtime must be wrapped in [Dyn], [If], [Either]
// or [Keyed].
func Group(children ...View) View { return group(children) }

type group []View

type groupState struct {
	slots []slot
}

// slot pairs a child's retained state with the type token of the view
// that built it.
type slot struct {
	typ typeToken
	st  State
}

func (g group) Build(cx *Cx) State {
	slots := make([]slot, len(g))
	for i, child := range g {
		slots[i] = slot{typ: tokenOf(child), st: child.Build(cx)}
	}
	return &groupState{slots: slots}
}

func (g group) Rebuild(cx *Cx, st State) {
	gs := st.(*groupState)
	if len(gs.slots) != len(g) {
		panic(fmt.Sprintf(
			"ravel: group length changed from %d to %d; wrap variable children in Keyed or If",
			len(gs.slots), len(g)))
	}
	for i, child := range g {
		if t := tokenOf(child); t != gs.slots[i].typ {
			panic(fmt.Sprintf(
				"ravel: child %d changed type from %v to %v; wrap it in Dyn",
				i, gs.slots[i].typ, t))
		}
		child.Rebuild(cx, gs.slots[i].st)
	}
}

func (gs *groupState) Free(sink EventSink) {
	for _, s := range gs.slots {
		s.st.Free(sink)
	}
}
