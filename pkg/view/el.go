package view

import "github.com/ravelui/ravel/pkg/backend"

// El returns a view rendering an element with the given tag, attribute
// bindings and children. Attribute updates are applied in declaration
// order before child recursion; sibling children update left to right.
//
// Tag-specific constructors generated from the element manifest (see
// package html) are the usual way to obtain an El.
func El(tag string, attrs []Attr, children ...View) View {
	return &elView{tag: tag, attrs: attrs, body: group(children)}
}

type elView struct {
	tag   string
	attrs []Attr
	body  group
}

type elState struct {
	node  backend.Handle
	attrs []State
	body  State
}

func (v *elView) Build(cx *Cx) State {
	el := cx.B.CreateElement(v.tag)
	attrs := make([]State, len(v.attrs))
	for i, a := range v.attrs {
		attrs[i] = a.BuildAttr(cx, el)
	}
	// The body is built while the element is still detached; it is
	// inserted as a whole afterwards.
	body := v.body.Build(cx.at(backend.Enter(cx.B, el)))
	cx.Cur.Insert(el)
	return &elState{node: el, attrs: attrs, body: body}
}

func (v *elView) Rebuild(cx *Cx, st State) {
	es := st.(*elState)
	for i, a := range v.attrs {
		a.RebuildAttr(cx, es.node, es.attrs[i])
	}
	v.body.Rebuild(cx.at(backend.Enter(cx.B, es.node)), es.body)
	cx.Cur.Advance()
}

func (es *elState) Free(sink EventSink) {
	for _, a := range es.attrs {
		a.Free(sink)
	}
	es.body.Free(sink)
}
