package html_test

import (
	"testing"

	"github.com/ravelui/ravel/pkg/backend"
	"github.com/ravelui/ravel/pkg/html"
	"github.com/ravelui/ravel/pkg/raveltest"
	"github.com/ravelui/ravel/pkg/view"
)

type harness struct {
	b *raveltest.Backend
	d *view.Driver[int]
	v view.View
}

func newHarness() *harness {
	h := &harness{b: raveltest.New()}
	h.d = view.NewDriver(h.b, h.b.Root(), 0, func(*int) view.View { return h.v })
	return h
}

func (h *harness) render(v view.View) {
	h.v = v
	h.d.Render()
}

// node returns the first element under the root.
func (h *harness) node() *backend.Node {
	return h.b.Root().(*backend.Node).Children()[0]
}

func TestStringAttr(t *testing.T) {
	h := newHarness()
	h.render(html.Div(html.Attrs(html.ID("a"), html.Title("x"))))
	n := h.node()
	if got := n.Attrs["id"]; got != "a" {
		t.Errorf(`id = %q, want "a"`, got)
	}
	h.b.Reset()

	// Unchanged values emit nothing; changed values one set-attr.
	h.render(html.Div(html.Attrs(html.ID("a"), html.Title("y"))))
	if got := h.b.Count(raveltest.SetAttr); got != 1 {
		t.Errorf("set-attr ops = %d, want 1: %v", got, h.b.Ops())
	}
	if got := h.node().Attrs["title"]; got != "y" {
		t.Errorf(`title = %q, want "y"`, got)
	}
}

func TestPropertyAttr(t *testing.T) {
	h := newHarness()
	h.render(html.Input(html.Attrs(html.Type_("checkbox"), html.Value("v"), html.Checked(true))))
	n := h.node()
	if got := n.Attrs["type"]; got != "checkbox" {
		t.Errorf(`type attr = %q, want "checkbox"`, got)
	}
	if _, ok := n.Attrs["value"]; ok {
		t.Errorf("value was set as an attribute, want property")
	}
	if got := n.Props["value"]; got != "v" {
		t.Errorf(`value prop = %q, want "v"`, got)
	}
	if _, ok := n.Props["checked"]; !ok {
		t.Errorf("checked prop missing")
	}

	h.render(html.Input(html.Attrs(html.Type_("checkbox"), html.Value("v"), html.Checked(false))))
	if _, ok := h.node().Props["checked"]; ok {
		t.Errorf("checked prop not cleared")
	}
}

func TestBoolAttr(t *testing.T) {
	h := newHarness()
	h.render(html.Button(html.Attrs(html.Disabled(false))))
	if _, ok := h.node().Attrs["disabled"]; ok {
		t.Errorf("disabled set while off")
	}
	h.b.Reset()

	h.render(html.Button(html.Attrs(html.Disabled(true))))
	if _, ok := h.node().Attrs["disabled"]; !ok {
		t.Errorf("disabled not set")
	}
	if got := h.b.Count(raveltest.SetAttr); got != 1 {
		t.Errorf("set-attr ops = %d, want 1", got)
	}

	h.render(html.Button(html.Attrs(html.Disabled(true)))) // no-op
	h.render(html.Button(html.Attrs(html.Disabled(false))))
	if got := h.b.Count(raveltest.ClearAttr); got != 1 {
		t.Errorf("clear-attr ops = %d, want 1", got)
	}
}

func TestClasses(t *testing.T) {
	h := newHarness()
	// Declaration order, no deduplication, empty strings skipped.
	h.render(html.Div(html.Attrs(html.Class("b", "", "a", "b"))))
	if got := h.node().Attrs["class"]; got != "b a b" {
		t.Errorf(`class = %q, want "b a b"`, got)
	}
	h.b.Reset()

	h.render(html.Div(html.Attrs(html.Class("b", "", "a", "b"))))
	if got := len(h.b.Ops()); got != 0 {
		t.Errorf("unchanged class list emitted %d ops", got)
	}

	h.render(html.Div(html.Attrs(html.Class("", ""))))
	if _, ok := h.node().Attrs["class"]; ok {
		t.Errorf("empty class list not cleared")
	}
}

func TestListenerRebuild(t *testing.T) {
	h := newHarness()
	got := ""
	h.render(html.Button(html.Attrs(html.OnClick(func(backend.Event) { got = "first" }))))
	n := h.node()
	tok, ok := n.Listeners["click"]
	if !ok {
		t.Fatalf("no click listener")
	}

	h.render(html.Button(html.Attrs(html.OnClick(func(backend.Event) { got = "second" }))))
	if got := h.b.Count(raveltest.SetListener); got != 1 {
		t.Errorf("set-listener ops = %d, want 1 (token reuse)", got)
	}
	h.d.Dispatch(backend.Event{Token: tok, Type: "click"})
	if got != "second" {
		t.Errorf("dispatched handler wrote %q, want %q", got, "second")
	}
}
