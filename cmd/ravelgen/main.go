// Command ravelgen expands the element/attribute manifest into the
// generated parts of package html.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/docopt/docopt-go"
	"gopkg.in/yaml.v3"
)

const usage = `Generate element and attribute constructors from a manifest.

Usage:
  ravelgen [--manifest=<file>] [--out=<dir>]
  ravelgen -h | --help

Options:
  --manifest=<file>  Manifest to expand [default: manifest.yaml].
  --out=<dir>        Directory to write generated files to [default: ../../pkg/html].
  -h --help          Show this help.
`

type manifest struct {
	Elements   []string    `yaml:"elements"`
	Attributes []attrSpec  `yaml:"attributes"`
	Events     []eventSpec `yaml:"events"`
}

type attrSpec struct {
	Name         string `yaml:"name"`
	TypeName     string `yaml:"type_name"`
	ValueType    string `yaml:"value_type"`
	ValueWrapper string `yaml:"value_wrapper"`
	Property     bool   `yaml:"property"`
}

type eventSpec struct {
	Name     string `yaml:"name"`
	TypeName string `yaml:"type_name"`
}

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	manifestPath, _ := opts.String("--manifest")
	outDir, _ := opts.String("--out")
	if err := run(manifestPath, outDir); err != nil {
		fmt.Fprintln(os.Stderr, "ravelgen:", err)
		os.Exit(1)
	}
}

func run(manifestPath, outDir string) error {
	m, err := parseManifest(manifestPath)
	if err != nil {
		return err
	}
	for name, gen := range map[string]func(*manifest) ([]byte, error){
		"elements.go": genElements,
		"attrs.go":    genAttrs,
	} {
		src, err := gen(m)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outDir, name), src, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func parseManifest(path string) (*manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// goName derives the exported Go identifier for a manifest symbol:
// the type_name override if present, otherwise the capitalized name.
func goName(name, override string) string {
	if override != "" {
		return override
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

var elementsTmpl = template.Must(template.New("elements").Parse(`// Code generated by ravelgen. DO NOT EDIT.

package html

import "github.com/ravelui/ravel/pkg/view"

{{range .}}// {{.GoName}} returns a {{.Name}} element.
func {{.GoName}}(attrs []view.Attr, children ...view.View) view.View {
	return view.El("{{.Name}}", attrs, children...)
}

{{end}}`))

var attrsTmpl = template.Must(template.New("attrs").Parse(`// Code generated by ravelgen. DO NOT EDIT.

package html

import "github.com/ravelui/ravel/pkg/view"

{{range .Attrs}}// {{.GoName}} binds the {{.Name}} attribute.
{{if .Classes -}}
func {{.GoName}}(names ...string) view.Attr {
	return Classes(names...)
}
{{else if .Bool -}}
func {{.GoName}}(on bool) view.Attr {
	return {{.Ctor}}("{{.Name}}", on)
}
{{else -}}
func {{.GoName}}(value string) view.Attr {
	return {{.Ctor}}("{{.Name}}", value)
}
{{end}}
{{end}}{{range .Events}}// {{.GoName}} binds a listener for the {{.Name}} event.
func {{.GoName}}(h view.Handler) view.Attr {
	return On("{{.Name}}", h)
}

{{end}}`))

type elementInfo struct {
	Name, GoName string
}

type attrInfo struct {
	Name, GoName  string
	Bool, Classes bool
	Ctor          string
}

type eventInfo struct {
	Name, GoName string
}

func genElements(m *manifest) ([]byte, error) {
	infos := make([]elementInfo, len(m.Elements))
	for i, name := range m.Elements {
		infos[i] = elementInfo{Name: name, GoName: goName(name, "")}
	}
	return render(elementsTmpl, infos)
}

func genAttrs(m *manifest) ([]byte, error) {
	var attrs []attrInfo
	for _, a := range m.Attributes {
		info := attrInfo{Name: a.Name, GoName: goName(a.Name, a.TypeName)}
		switch {
		case a.ValueWrapper == "classes":
			info.Classes = true
		case a.ValueType == "bool":
			info.Bool = true
			info.Ctor = "Bool"
			if a.Property {
				info.Ctor = "BoolProp"
			}
		default:
			info.Ctor = "String"
			if a.Property {
				info.Ctor = "Prop"
			}
		}
		attrs = append(attrs, info)
	}
	var events []eventInfo
	for _, e := range m.Events {
		name := e.TypeName
		if name == "" {
			name = "On" + goName(e.Name, "")
		}
		events = append(events, eventInfo{Name: e.Name, GoName: name})
	}
	return render(attrsTmpl, struct {
		Attrs  []attrInfo
		Events []eventInfo
	}{attrs, events})
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
