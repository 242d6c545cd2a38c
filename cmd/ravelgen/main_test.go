package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ravelui/ravel/pkg/must"
)

func generate(t *testing.T) (elements, attrs string) {
	t.Helper()
	dir := t.TempDir()
	if err := run(filepath.Join("testdata", "manifest.yaml"), dir); err != nil {
		t.Fatalf("run: %v", err)
	}
	elements = string(must.OK1(os.ReadFile(filepath.Join(dir, "elements.go"))))
	attrs = string(must.OK1(os.ReadFile(filepath.Join(dir, "attrs.go"))))
	return elements, attrs
}

func TestGeneratedElements(t *testing.T) {
	elements, _ := generate(t)
	for _, want := range []string{
		"// Code generated by ravelgen. DO NOT EDIT.",
		"func Div(attrs []view.Attr, children ...view.View) view.View {",
		`return view.El("div", attrs, children...)`,
		"func Input(attrs []view.Attr, children ...view.View) view.View {",
	} {
		if !strings.Contains(elements, want) {
			t.Errorf("elements.go missing %q:\n%s", want, elements)
		}
	}
}

func TestGeneratedAttrs(t *testing.T) {
	_, attrs := generate(t)
	for _, want := range []string{
		// type_name remaps the Go identifier.
		"func ID(value string) view.Attr {",
		"func For_(value string) view.Attr {",
		`return String("for", value)`,
		// bool + property routes to the presence wrapper.
		"func Checked(on bool) view.Attr {",
		`return BoolProp("checked", on)`,
		// the class wrapper accumulates names.
		"func Class(names ...string) view.Attr {",
		"return Classes(names...)",
		// plain property string.
		`return Prop("value", value)`,
		// events, with and without type_name.
		"func OnClick(h view.Handler) view.Attr {",
		"func OnDblClick(h view.Handler) view.Attr {",
		`return On("dblclick", h)`,
	} {
		if !strings.Contains(attrs, want) {
			t.Errorf("attrs.go missing %q:\n%s", want, attrs)
		}
	}
}

func TestGeneratedFilesParse(t *testing.T) {
	elements, attrs := generate(t)
	for name, src := range map[string]string{"elements.go": elements, "attrs.go": attrs} {
		if _, err := parser.ParseFile(token.NewFileSet(), name, src, 0); err != nil {
			t.Errorf("%s does not parse: %v", name, err)
		}
	}
}
