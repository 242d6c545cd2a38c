// Package html provides the HTML-flavored surface of Ravel: attribute
// binding kinds (string, boolean presence, class list, event listener)
// and element/attribute constructors generated from the manifest by
// ravelgen.
//
// Bindings are written inline in the element constructors:
//
//	html.Div(html.Attrs(html.ID("counter"), html.OnClick(inc)),
//		view.Text("+"))
package html

import (
	"strings"

	"github.com/ravelui/ravel/pkg/backend"
	"github.com/ravelui/ravel/pkg/view"
)

//go:generate go run ../../cmd/ravelgen --manifest ../../cmd/ravelgen/manifest.yaml --out .

// Attrs collects attribute bindings for an element constructor. It
// exists so that elements can take attributes and children in one call:
// Div(Attrs(...), children...). A nil list is an element with no
// attributes.
func Attrs(attrs ...view.Attr) []view.Attr { return attrs }

// String returns a plain string attribute binding.
func String(name, value string) view.Attr {
	return stringAttr{name: name, value: value}
}

// Prop returns a string binding applied with property semantics, for
// attributes like value whose live state diverges from the markup
// attribute.
func Prop(name, value string) view.Attr {
	return stringAttr{name: name, value: value, property: true}
}

type stringAttr struct {
	name, value string
	property    bool
}

type stringAttrState struct {
	value string
}

func (a stringAttr) BuildAttr(cx *view.Cx, el backend.Handle) view.State {
	cx.B.SetAttr(el, a.name, a.value, a.property)
	return &stringAttrState{value: a.value}
}

func (a stringAttr) RebuildAttr(cx *view.Cx, el backend.Handle, st view.State) {
	s := st.(*stringAttrState)
	if s.value != a.value {
		cx.B.SetAttr(el, a.name, a.value, a.property)
		s.value = a.value
	}
}

func (*stringAttrState) Free(view.EventSink) {}

// Bool returns a boolean attribute binding: present when on, absent
// otherwise.
func Bool(name string, on bool) view.Attr {
	return boolAttr{name: name, on: on}
}

// BoolProp is Bool with property semantics, for checked and friends.
func BoolProp(name string, on bool) view.Attr {
	return boolAttr{name: name, on: on, property: true}
}

type boolAttr struct {
	name     string
	on       bool
	property bool
}

type boolAttrState struct {
	on bool
}

func (a boolAttr) BuildAttr(cx *view.Cx, el backend.Handle) view.State {
	if a.on {
		cx.B.SetAttr(el, a.name, "", a.property)
	}
	return &boolAttrState{on: a.on}
}

func (a boolAttr) RebuildAttr(cx *view.Cx, el backend.Handle, st view.State) {
	s := st.(*boolAttrState)
	if s.on == a.on {
		return
	}
	if a.on {
		cx.B.SetAttr(el, a.name, "", a.property)
	} else {
		cx.B.ClearAttr(el, a.name, a.property)
	}
	s.on = a.on
}

func (*boolAttrState) Free(view.EventSink) {}

// Classes returns a class attribute binding accumulating the given
// names. Names are emitted space-separated in declaration order, with
// no deduplication; empty strings are skipped, which makes conditional
// classes cheap to express:
//
//	html.Classes("todo", cond(item.Done, "done"))
func Classes(names ...string) view.Attr {
	return classesAttr(names)
}

type classesAttr []string

type classesState struct {
	joined string
}

func (a classesAttr) joined() string {
	var sb strings.Builder
	for _, name := range a {
		if name == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
	}
	return sb.String()
}

func (a classesAttr) BuildAttr(cx *view.Cx, el backend.Handle) view.State {
	j := a.joined()
	if j != "" {
		cx.B.SetAttr(el, "class", j, false)
	}
	return &classesState{joined: j}
}

func (a classesAttr) RebuildAttr(cx *view.Cx, el backend.Handle, st view.State) {
	s := st.(*classesState)
	j := a.joined()
	if j == s.joined {
		return
	}
	if j == "" {
		cx.B.ClearAttr(el, "class", false)
	} else {
		cx.B.SetAttr(el, "class", j, false)
	}
	s.joined = j
}

func (*classesState) Free(view.EventSink) {}

// On returns a listener binding for the named event. The handler is
// registered once at build; rebuilds only replace the stored closure,
// so the backend listener is never detached and reattached.
func On(event string, h view.Handler) view.Attr {
	return onAttr{event: event, h: h}
}

type onAttr struct {
	event string
	h     view.Handler
}

type onState struct {
	event string
	token backend.Token
}

func (a onAttr) BuildAttr(cx *view.Cx, el backend.Handle) view.State {
	t := cx.Sink.Register(a.h)
	cx.B.SetListener(el, a.event, t)
	return &onState{event: a.event, token: t}
}

func (a onAttr) RebuildAttr(cx *view.Cx, el backend.Handle, st view.State) {
	cx.Sink.Replace(st.(*onState).token, a.h)
}

func (s *onState) Free(sink view.EventSink) {
	sink.Release(s.token)
}
