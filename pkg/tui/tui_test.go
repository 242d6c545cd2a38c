package tui

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/creack/pty"

	"github.com/ravelui/ravel/pkg/backend"
	"github.com/ravelui/ravel/pkg/html"
	"github.com/ravelui/ravel/pkg/view"
)

func counterApp(m *int) view.View {
	return html.Div(nil,
		view.Text("count: "),
		view.Text(strconv.Itoa(*m)),
		html.Button(
			html.Attrs(html.OnClick(func(backend.Event) { *m++ })),
			view.Text("+")),
	)
}

func TestRunRendersAndClicks(t *testing.T) {
	var out strings.Builder
	// Enter clicks the focused button, q quits.
	b := NewWithIO(strings.NewReader("\rq"), &out, func() (int, int) { return 24, 80 })
	if err := run(b, 0, counterApp); err != nil {
		t.Fatalf("run: %v", err)
	}
	frames := out.String()
	if !strings.Contains(frames, "count: 0") {
		t.Errorf("initial frame missing; output %q", frames)
	}
	if !strings.Contains(frames, "count: 1") {
		t.Errorf("frame after click missing; output %q", frames)
	}
	// The button is focused and drawn in reverse video.
	if !strings.Contains(frames, "\x1b[7m+\x1b[27m") {
		t.Errorf("focused button not highlighted; output %q", frames)
	}
}

func TestFrameBlocksAndTruncation(t *testing.T) {
	var out strings.Builder
	b := NewWithIO(strings.NewReader(""), &out, func() (int, int) { return 1, 4 })
	d := view.NewDriver(b, b.Root(), 0, func(*int) view.View {
		return view.Group(
			html.Div(nil, view.Text("overlong")),
			html.Div(nil, view.Text("dropped")),
		)
	})
	d.Render()
	got := out.String()
	if !strings.HasPrefix(got, "\x1b[2J\x1b[H") {
		t.Errorf("frame does not clear the screen: %q", got)
	}
	body := strings.TrimPrefix(got, "\x1b[2J\x1b[H")
	if body != "over" {
		t.Errorf("frame body = %q, want %q", body, "over")
	}
}

func TestNewRequiresTTY(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if _, err := New(Spec{In: r, Out: w}); err == nil {
		t.Errorf("New accepted a pipe as terminal output")
	}
}

func TestNewOnPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	b, err := New(Spec{In: tty, Out: tty})
	if err != nil {
		t.Fatalf("New on pty: %v", err)
	}
	rows, cols := b.size()
	if rows <= 0 || cols <= 0 {
		t.Errorf("size = %dx%d, want positive", rows, cols)
	}
}
