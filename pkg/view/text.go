package view

import "github.com/ravelui/ravel/pkg/backend"

// Text returns a view rendering a single text node.
func Text(s string) View { return textView(s) }

type textView string

type textState struct {
	node backend.Handle
	// Last emitted string, kept so that an unchanged value produces no
	// backend mutation.
	value string
}

func (v textView) Build(cx *Cx) State {
	node := cx.B.CreateText(string(v))
	cx.Cur.Insert(node)
	return &textState{node: node, value: string(v)}
}

func (v textView) Rebuild(cx *Cx, st State) {
	ts := st.(*textState)
	if ts.value != string(v) {
		cx.B.SetText(ts.node, string(v))
		ts.value = string(v)
	}
	cx.Cur.Advance()
}

func (*textState) Free(EventSink) {}
