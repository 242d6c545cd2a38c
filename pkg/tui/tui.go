// Package tui renders a Ravel application in a terminal. It exists
// mostly to prove that the reconciler is not DOM-shaped: the same view
// tree drives either backend unchanged.
//
// The rendering model is deliberately plain. Text nodes are written in
// document order; an element whose tag is block-level ends the current
// line. Elements carrying listeners form a focus ring: Tab cycles
// through them, Enter delivers a click event to the focused one, and
// any other printable key delivers a keydown event. The focused
// element's text is shown in reverse video.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ravelui/ravel/pkg/backend"
	"github.com/ravelui/ravel/pkg/sys"
	"github.com/ravelui/ravel/pkg/view"
)

var blockTags = map[string]bool{
	"div": true, "p": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "form": true, "pre": true,
	"header": true, "footer": true, "section": true, "main": true,
	"table": true, "tr": true,
}

// Spec configures a Backend. Zero fields default to the process
// standard streams.
type Spec struct {
	In  *os.File
	Out *os.File
}

// Backend is a terminal implementation of [backend.Backend].
type Backend struct {
	*backend.Tree
	in     io.Reader
	out    io.Writer
	size   func() (rows, cols int)
	events chan backend.Event
	focus  int
}

// New returns a Backend writing to the terminal in spec. It fails when
// the output is not a terminal.
func New(spec Spec) (*Backend, error) {
	in, out := spec.In, spec.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !sys.IsATTY(out.Fd()) {
		return nil, fmt.Errorf("tui: output is not a terminal")
	}
	return NewWithIO(in, out, func() (int, int) { return sys.WinSize(out) }), nil
}

// NewWithIO returns a Backend with explicit streams and size, bypassing
// terminal detection. Tests use it to render into a buffer.
func NewWithIO(in io.Reader, out io.Writer, size func() (rows, cols int)) *Backend {
	return &Backend{
		Tree:   backend.NewTree(),
		in:     in,
		out:    out,
		size:   size,
		events: make(chan backend.Event, 128),
	}
}

func (b *Backend) Events() <-chan backend.Event { return b.events }

// Flush implements [backend.Flusher]: it repaints the whole frame. The
// terminal is cleared and redrawn; no damage tracking.
func (b *Backend) Flush() {
	rows, cols := b.size()
	lines := b.frame()
	if rows > 0 && len(lines) > rows {
		lines = lines[:rows]
	}
	if cols > 0 {
		for i, line := range lines {
			lines[i] = truncate(line, cols)
		}
	}
	fmt.Fprint(b.out, "\x1b[2J\x1b[H"+strings.Join(lines, "\r\n"))
}

// frame renders the tree into lines, highlighting the focused
// focusable.
func (b *Backend) frame() []string {
	focused := b.focusedNode()
	var lines []string
	var cur strings.Builder
	endLine := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}
	var walk func(n *backend.Node)
	walk = func(n *backend.Node) {
		if n.Kind == backend.TextNode {
			cur.WriteString(n.Text)
			return
		}
		if n == focused {
			cur.WriteString("\x1b[7m")
		}
		for _, c := range n.Children() {
			walk(c)
		}
		if n == focused {
			cur.WriteString("\x1b[27m")
		}
		if blockTags[n.Tag] {
			endLine()
		}
	}
	walk(b.Root().(*backend.Node))
	endLine()
	return lines
}

// truncate cuts line to width runes, not counting escape sequences.
func truncate(line string, width int) string {
	w := 0
	esc := false
	for i, r := range line {
		switch {
		case esc:
			if r == 'm' {
				esc = false
			}
		case r == '\x1b':
			esc = true
		default:
			if w == width {
				return line[:i]
			}
			w++
		}
	}
	return line
}

// focusables returns the elements carrying listeners, in document
// order.
func (b *Backend) focusables() []*backend.Node {
	var out []*backend.Node
	var walk func(n *backend.Node)
	walk = func(n *backend.Node) {
		if len(n.Listeners) > 0 {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(b.Root().(*backend.Node))
	return out
}

func (b *Backend) focusedNode() *backend.Node {
	fs := b.focusables()
	if len(fs) == 0 {
		return nil
	}
	return fs[b.focus%len(fs)]
}

// Run drives app against a terminal backend until the input reaches
// EOF, q, or Ctrl-C. All rendering and event handling runs on the
// calling goroutine, in the order keys arrive.
func Run[M any](spec Spec, model M, app func(*M) view.View) error {
	b, err := New(spec)
	if err != nil {
		return err
	}
	return run(b, model, app)
}

func run[M any](b *Backend, model M, app func(*M) view.View) error {
	d := view.NewDriver[M](b, b.Root(), model, app)
	d.Render()
	in := bufio.NewReader(b.in)
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return nil
		}
		switch r {
		case 'q', 0x03, 0x04:
			return nil
		case '\t':
			b.focus++
			b.Flush()
		case '\r', '\n':
			dispatch(b, d, "click", nil)
		default:
			dispatch(b, d, "keydown", string(r))
		}
	}
}

func dispatch[M any](b *Backend, d *view.Driver[M], event string, payload any) {
	n := b.focusedNode()
	if n == nil {
		return
	}
	t, ok := n.Listeners[event]
	if !ok {
		return
	}
	d.Dispatch(backend.Event{Token: t, Type: event, Payload: payload})
	if d.Dirty() {
		d.Render()
	}
}
